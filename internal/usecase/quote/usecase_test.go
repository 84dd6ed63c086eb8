package quote

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DetailingStudio/internal/booking"
	"github.com/m04kA/SMC-DetailingStudio/internal/domain"
	memberRepo "github.com/m04kA/SMC-DetailingStudio/internal/infra/storage/member"
	"github.com/m04kA/SMC-DetailingStudio/pkg/logger"
)

type fakeCatalogRepo struct {
	services []*domain.Service
	err      error
}

func (f *fakeCatalogRepo) List(ctx context.Context, visibleOnly bool) ([]*domain.Service, error) {
	return f.services, f.err
}

type fakeMemberRepo struct {
	members map[string]*domain.Member
	err     error
}

func (f *fakeMemberRepo) GetByEmail(ctx context.Context, email string) (*domain.Member, error) {
	if f.err != nil {
		return nil, f.err
	}
	if m, ok := f.members[strings.ToLower(email)]; ok {
		return m, nil
	}
	return nil, memberRepo.ErrMemberNotFound
}

func newUseCase(t *testing.T, catalog *fakeCatalogRepo, members *fakeMemberRepo) *UseCase {
	t.Helper()
	grid, err := booking.NewSlotGrid(booking.DefaultSlots())
	require.NoError(t, err)
	return NewUseCase(catalog, members, grid, booking.DefaultPolicy(),
		map[string]string{"Paint Correction": "https://pay.example/paint"},
		"https://pay.example/studio", logger.Nop())
}

func catalog() *fakeCatalogRepo {
	return &fakeCatalogRepo{services: []*domain.Service{
		{Name: "Paint Correction", PriceText: "From 1,500 PLN", IsVisible: true},
		{Name: "Interior Detail", PriceText: "360 PLN", IsVisible: true},
	}}
}

func TestExecute(t *testing.T) {
	uc := newUseCase(t, catalog(), &fakeMemberRepo{})

	resp, err := uc.Execute(context.Background(), &Request{
		Services: []string{"Interior Detail"},
		SlotID:   "evening",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.PriceSummary{Subtotal: 360, Surcharge: 50, Total: 410, Deposit: 72, Balance: 338}, resp.Summary)
	require.NotNil(t, resp.Slot)
	assert.Equal(t, "evening", resp.Slot.ID)
	assert.Equal(t, "https://pay.example/studio", resp.CheckoutURL)
}

func TestExecute_PlatinumMember(t *testing.T) {
	uc := newUseCase(t, catalog(), &fakeMemberRepo{members: map[string]*domain.Member{
		"vip@example.com": {Email: "vip@example.com", Tier: domain.TierPlatinum},
	}})

	resp, err := uc.Execute(context.Background(), &Request{
		Services: []string{"Paint Correction", "Interior Detail"},
		Email:    "vip@example.com",
	})
	require.NoError(t, err)

	assert.True(t, resp.DiscountApplied)
	assert.Nil(t, resp.Slot)
	assert.Equal(t, domain.PriceSummary{Subtotal: 1860, Discount: 372, Total: 1488, Deposit: 372, Balance: 1116}, resp.Summary)
	assert.Equal(t, "https://pay.example/paint", resp.CheckoutURL)
}

func TestExecute_EmptySelection(t *testing.T) {
	uc := newUseCase(t, catalog(), &fakeMemberRepo{})

	resp, err := uc.Execute(context.Background(), &Request{Services: []string{"Nope"}})
	require.NoError(t, err)

	assert.True(t, resp.Summary.IsZero())
	assert.Empty(t, resp.Items)
	assert.Empty(t, resp.CheckoutURL)
}

func TestExecute_Errors(t *testing.T) {
	uc := newUseCase(t, catalog(), &fakeMemberRepo{})
	_, err := uc.Execute(context.Background(), &Request{Services: []string{"Interior Detail"}, SlotID: "midnight"})
	assert.ErrorIs(t, err, ErrInvalidSlot)

	uc = newUseCase(t, &fakeCatalogRepo{err: errors.New("db down")}, &fakeMemberRepo{})
	_, err = uc.Execute(context.Background(), &Request{Services: []string{"Interior Detail"}})
	assert.ErrorIs(t, err, ErrInternal)

	uc = newUseCase(t, catalog(), &fakeMemberRepo{err: errors.New("db down")})
	_, err = uc.Execute(context.Background(), &Request{Services: []string{"Interior Detail"}, Email: "a@b.c"})
	assert.ErrorIs(t, err, ErrInternal)
}
