package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-DetailingStudio/internal/booking"
	"github.com/m04kA/SMC-DetailingStudio/internal/domain"
	memberRepo "github.com/m04kA/SMC-DetailingStudio/internal/infra/storage/member"
	reservationRepo "github.com/m04kA/SMC-DetailingStudio/internal/infra/storage/reservation"
)

const defaultNotificationTimeout = 30 * time.Second

// UseCase use case для создания бронирования
type UseCase struct {
	reservationRepo ReservationRepository
	catalogRepo     CatalogRepository
	memberRepo      MemberRepository
	txManager       TransactionManager
	notifier        Notifier
	metrics         MetricsRecorder
	settings        Settings
	timeProvider    TimeProvider
	logger          Logger

	// Уведомления, которые ещё отправляются
	pending sync.WaitGroup
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	catalogRepo CatalogRepository,
	memberRepo MemberRepository,
	txManager TransactionManager,
	notifier Notifier,
	metrics MetricsRecorder,
	settings Settings,
	logger Logger,
) *UseCase {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	if settings.NotificationTimeout <= 0 {
		settings.NotificationTimeout = defaultNotificationTimeout
	}

	return &UseCase{
		reservationRepo: reservationRepo,
		catalogRepo:     catalogRepo,
		memberRepo:      memberRepo,
		txManager:       txManager,
		notifier:        notifier,
		metrics:         metrics,
		settings:        settings,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute создает онлайн-бронирование в статусе PENDING.
// Возвращает сумму предоплаты и ссылку на оплату; уведомление отправляется после фиксации, асинхронно
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: email=%s, services=%d, date=%s, slot=%s",
		req.CustomerEmail, len(req.Services), req.Date.Format(domain.DateFormat), req.SlotID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата в окне записи
	if err := validateDate(req.Date, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("CreateReservation: date validation failed: %v", err)
		return nil, err
	}

	// 3. Слот
	slot, ok := uc.settings.Grid.Find(req.SlotID)
	if !ok {
		uc.logger.Warn("CreateReservation: unknown slot %q", req.SlotID)
		return nil, fmt.Errorf("%w: %q", ErrInvalidSlot, req.SlotID)
	}

	// 4. Позиции из каталога (только видимые, в порядке каталога)
	catalog, err := uc.catalogRepo.List(ctx, true)
	if err != nil {
		uc.logger.Error("CreateReservation: failed to load catalog: %v", err)
		return nil, fmt.Errorf("%w: failed to load catalog: %v", ErrInternal, err)
	}

	items := booking.ResolveLineItems(req.Services, catalog)
	if len(items) == 0 {
		uc.logger.Warn("CreateReservation: none of %v resolved to a visible service", req.Services)
		return nil, ErrEmptySelection
	}

	// 5. Скидка участника
	discountEligible, err := uc.isDiscountEligible(ctx, req.CustomerEmail)
	if err != nil {
		return nil, err
	}

	// 6. Расчёт стоимости
	summary := uc.settings.Policy.ComputeSummary(items, slot, discountEligible)

	reservation := &domain.Reservation{
		ID:                 uuid.NewString(),
		CustomerName:       req.CustomerName,
		CustomerEmail:      req.CustomerEmail,
		VehicleDescription: req.VehicleDescription,
		Notes:              req.Notes,
		Services:           booking.ItemNames(items),
		Status:             domain.StatusPending,
		ScheduledDate:      domain.DateOnly(req.Date),
		ScheduledSlot:      slot.ID,
		PriceSummary:       summary,
	}

	// 7. Сохраняем с проверкой занятости слота
	created, err := uc.reserve(ctx, reservation)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: created reservation id=%s, total=%d, deposit=%d",
		created.ID, summary.Total, summary.Deposit)

	// 8. Уведомления клиенту и студии
	uc.notifyAsync(created)

	return &Response{
		Reservation:     created,
		Items:           items,
		Slot:            slot,
		DiscountApplied: discountEligible,
		CheckoutURL:     booking.CheckoutURL(items, uc.settings.ServiceLinks, uc.settings.StudioCheckoutURL),
	}, nil
}

// ExecuteMember создает подтверждённое бронирование участника клуба.
// Услуги должны входить в подписку его уровня, оплата не требуется
func (uc *UseCase) ExecuteMember(ctx context.Context, req *MemberRequest) (*Response, error) {
	uc.logger.Info("CreateMemberReservation: email=%s, services=%d, date=%s, slot=%s",
		req.Email, len(req.Services), req.Date.Format(domain.DateFormat), req.SlotID)

	if err := validateMemberRequest(req); err != nil {
		uc.logger.Warn("CreateMemberReservation: validation failed: %v", err)
		return nil, err
	}

	if err := validateDate(req.Date, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("CreateMemberReservation: date validation failed: %v", err)
		return nil, err
	}

	slot, ok := uc.settings.Grid.Find(req.SlotID)
	if !ok {
		uc.logger.Warn("CreateMemberReservation: unknown slot %q", req.SlotID)
		return nil, fmt.Errorf("%w: %q", ErrInvalidSlot, req.SlotID)
	}

	member, err := uc.memberRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, memberRepo.ErrMemberNotFound) {
			uc.logger.Warn("CreateMemberReservation: member %s not found", req.Email)
			return nil, ErrMemberNotFound
		}
		uc.logger.Error("CreateMemberReservation: failed to get member %s: %v", req.Email, err)
		return nil, fmt.Errorf("%w: failed to get member: %v", ErrInternal, err)
	}

	services, err := validateEntitlements(req.Services, member.Tier)
	if err != nil {
		uc.logger.Warn("CreateMemberReservation: %v", err)
		return nil, err
	}

	reservation := &domain.Reservation{
		ID:                 uuid.NewString(),
		CustomerName:       member.Name,
		CustomerEmail:      member.Email,
		VehicleDescription: req.VehicleDescription,
		Notes:              domain.MemberBookingNote(member.Tier),
		Services:           services,
		Status:             domain.StatusConfirmed,
		ScheduledDate:      domain.DateOnly(req.Date),
		ScheduledSlot:      slot.ID,
		IsMemberBooking:    true,
	}

	created, err := uc.reserve(ctx, reservation)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateMemberReservation: created reservation id=%s for member id=%s", created.ID, member.ID)

	uc.notifyAsync(created)

	items := make([]domain.LineItem, 0, len(services))
	for _, name := range services {
		items = append(items, domain.LineItem{Name: name})
	}

	return &Response{
		Reservation: created,
		Items:       items,
		Slot:        slot,
	}, nil
}

// Wait ждёт завершения отправки уже запущенных уведомлений
func (uc *UseCase) Wait() {
	uc.pending.Wait()
}

// isDiscountEligible скидка положена участникам уровня Platinum
func (uc *UseCase) isDiscountEligible(ctx context.Context, email string) (bool, error) {
	member, err := uc.memberRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, memberRepo.ErrMemberNotFound) {
			return false, nil
		}
		uc.logger.Error("CreateReservation: failed to get member %s: %v", email, err)
		return false, fmt.Errorf("%w: failed to get member: %v", ErrInternal, err)
	}
	return member.Tier.DiscountEligible(), nil
}

// reserve проверяет слот и сохраняет бронирование.
// Быстрая проверка выполняется вне транзакции, окончательная внутри сериализуемой транзакции
// и на уровне уникального индекса базы
func (uc *UseCase) reserve(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	date := reservation.ScheduledDate
	slotID := reservation.ScheduledSlot

	existing, err := uc.reservationRepo.GetByDate(ctx, date)
	if err != nil {
		uc.logger.Error("CreateReservation: failed to get reservations for %s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}
	if booking.IsSlotTaken(date, slotID, existing) {
		uc.metrics.IncSlotConflict()
		uc.logger.Warn("CreateReservation: slot %s on %s is taken", slotID, date.Format(domain.DateFormat))
		return nil, ErrSlotNotAvailable
	}

	var result *domain.Reservation

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Перечитываем день с блокировкой (FOR UPDATE)
		reservations, err := uc.reservationRepo.GetByDate(txCtx, date)
		if err != nil {
			return fmt.Errorf("%w: failed to get reservations: %w", ErrInternal, err)
		}

		if booking.IsSlotTaken(date, slotID, reservations) {
			return ErrSlotNotAvailable
		}

		created, err := uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrSlotNotAvailable) {
				return ErrSlotNotAvailable
			}
			return fmt.Errorf("%w: failed to create reservation: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrSlotNotAvailable) {
			uc.metrics.IncSlotConflict()
			uc.logger.Warn("CreateReservation: slot %s on %s was taken concurrently", slotID, date.Format(domain.DateFormat))
			return nil, ErrSlotNotAvailable
		}
		uc.logger.Error("CreateReservation: transaction failed: %v", err)
		if errors.Is(err, ErrInternal) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.metrics.IncReservationCreated(string(result.Status))

	return result, nil
}

// notifyAsync отправляет уведомление в фоне со своим таймаутом.
// Ошибка отправки не влияет на уже сохранённое бронирование
func (uc *UseCase) notifyAsync(reservation *domain.Reservation) {
	if uc.notifier == nil {
		return
	}

	summary := reservation.NotificationSummary()
	id := reservation.ID

	uc.pending.Add(1)
	go func() {
		defer uc.pending.Done()

		ctx, cancel := context.WithTimeout(context.Background(), uc.settings.NotificationTimeout)
		defer cancel()

		if err := uc.notifier.Dispatch(ctx, summary); err != nil {
			uc.metrics.IncNotificationFailed()
			uc.logger.Warn("CreateReservation: notification for reservation id=%s failed: %v", id, err)
		}
	}()
}
