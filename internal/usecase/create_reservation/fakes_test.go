package create_reservation

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/m04kA/SMC-DetailingStudio/internal/domain"
	memberRepo "github.com/m04kA/SMC-DetailingStudio/internal/infra/storage/member"
)

type fakeReservationRepo struct {
	mu           sync.Mutex
	reservations []*domain.Reservation
	createErr    error
	getErr       error
	createCalls  int
}

func (f *fakeReservationRepo) Create(ctx context.Context, r *domain.Reservation) (*domain.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.createCalls++
	if f.createErr != nil {
		return nil, f.createErr
	}
	r.CreatedAt = time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	r.UpdatedAt = r.CreatedAt
	f.reservations = append(f.reservations, r)
	return r, nil
}

func (f *fakeReservationRepo) GetByDate(ctx context.Context, date time.Time) ([]*domain.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.getErr != nil {
		return nil, f.getErr
	}
	var result []*domain.Reservation
	for _, r := range f.reservations {
		if domain.SameDay(r.ScheduledDate, date) {
			result = append(result, r)
		}
	}
	return result, nil
}

type fakeCatalogRepo struct {
	services []*domain.Service
	err      error
}

func (f *fakeCatalogRepo) List(ctx context.Context, visibleOnly bool) ([]*domain.Service, error) {
	if f.err != nil {
		return nil, f.err
	}
	var result []*domain.Service
	for _, s := range f.services {
		if visibleOnly && !s.IsVisible {
			continue
		}
		result = append(result, s)
	}
	return result, nil
}

type fakeMemberRepo struct {
	members map[string]*domain.Member
	err     error
}

func (f *fakeMemberRepo) GetByEmail(ctx context.Context, email string) (*domain.Member, error) {
	if f.err != nil {
		return nil, f.err
	}
	m, ok := f.members[strings.ToLower(email)]
	if !ok {
		return nil, memberRepo.ErrMemberNotFound
	}
	return m, nil
}

type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fakeNotifier struct {
	mu        sync.Mutex
	summaries []domain.NotificationSummary
	err       error
}

func (f *fakeNotifier) Dispatch(ctx context.Context, summary domain.NotificationSummary) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.summaries = append(f.summaries, summary)
	return f.err
}

type fakeMetrics struct {
	mu        sync.Mutex
	created   map[string]int
	conflicts int
	failed    int
}

func newFakeMetrics() *fakeMetrics {
	return &fakeMetrics{created: make(map[string]int)}
}

func (f *fakeMetrics) IncReservationCreated(status string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created[status]++
}

func (f *fakeMetrics) IncSlotConflict() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.conflicts++
}

func (f *fakeMetrics) IncNotificationFailed() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failed++
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time {
	return f.now
}
