package reservations

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-DetailingStudio/internal/booking"
	"github.com/m04kA/SMC-DetailingStudio/internal/domain"
	memberRepo "github.com/m04kA/SMC-DetailingStudio/internal/infra/storage/member"
	reservationRepo "github.com/m04kA/SMC-DetailingStudio/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-DetailingStudio/internal/service/reservations/models"
	"github.com/m04kA/SMC-DetailingStudio/pkg/txmanager"
)

// Service сервис управления бронированиями для сотрудников студии
type Service struct {
	reservationRepo ReservationRepository
	catalogRepo     CatalogRepository
	memberRepo      MemberRepository
	txManager       TransactionManager
	grid            *booking.SlotGrid
	policy          booking.Policy
	metrics         MetricsRecorder
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	reservationRepo ReservationRepository,
	catalogRepo CatalogRepository,
	memberRepo MemberRepository,
	txManager TransactionManager,
	grid *booking.SlotGrid,
	policy booking.Policy,
	metrics MetricsRecorder,
	logger Logger,
) *Service {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &Service{
		reservationRepo: reservationRepo,
		catalogRepo:     catalogRepo,
		memberRepo:      memberRepo,
		txManager:       txManager,
		grid:            grid,
		policy:          policy,
		metrics:         metrics,
		logger:          logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%s", id)

	if _, err := uuid.Parse(id); err != nil {
		s.logger.Warn("GetByID: malformed id=%s", id)
		return nil, ErrReservationNotFound
	}

	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%s not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservation(reservation), nil
}

// List получает бронирования за период с фильтрацией по статусу и email
func (s *Service) List(ctx context.Context, req *models.ListRequest) (*models.ReservationListResponse, error) {
	filter := domain.ReservationFilter{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Email:     req.Email,
	}

	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		s.logger.Warn("List: endDate before startDate")
		return nil, fmt.Errorf("%w: endDate is before startDate", ErrInvalidInput)
	}

	if req.Status != nil {
		status, err := domain.ParseReservationStatus(*req.Status)
		if err != nil {
			s.logger.Warn("List: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		filter.Status = &status
	}

	reservations, err := s.reservationRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d reservations", len(reservations))
	return models.FromDomainReservationList(reservations), nil
}

// CreateManual создает запись от имени студии сразу в статусе CONFIRMED.
// Дата не ограничена окном онлайн-записи, услуги берутся из всего каталога, включая скрытые
func (s *Service) CreateManual(ctx context.Context, req *models.CreateManualRequest) (*models.ReservationResponse, error) {
	s.logger.Info("CreateManual: customer=%s, date=%s, slot=%s",
		req.CustomerName, req.Date.Format(domain.DateFormat), req.SlotID)

	if strings.TrimSpace(req.CustomerName) == "" || strings.TrimSpace(req.VehicleDescription) == "" {
		return nil, fmt.Errorf("%w: customer name and vehicle are required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(req.Notes) > domain.MaxNotesLength {
		return nil, fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	slot, ok := s.grid.Find(req.SlotID)
	if !ok {
		s.logger.Warn("CreateManual: unknown slot %q", req.SlotID)
		return nil, fmt.Errorf("%w: %q", ErrInvalidSlot, req.SlotID)
	}

	services := []string{models.ManualEntryService}
	var summary domain.PriceSummary

	if len(req.Services) > 0 {
		catalog, err := s.catalogRepo.List(ctx, false)
		if err != nil {
			s.logger.Error("CreateManual: failed to load catalog: %v", err)
			return nil, fmt.Errorf("%w: failed to load catalog: %v", ErrInternal, err)
		}

		// Для сотрудников скрытые услуги тоже доступны
		bookable := make([]*domain.Service, 0, len(catalog))
		for _, svc := range catalog {
			c := *svc
			c.IsVisible = true
			bookable = append(bookable, &c)
		}

		items := booking.ResolveLineItems(req.Services, bookable)
		if len(items) > 0 {
			discountEligible, err := s.isDiscountEligible(ctx, req.CustomerEmail)
			if err != nil {
				return nil, err
			}
			services = booking.ItemNames(items)
			summary = s.policy.ComputeSummary(items, slot, discountEligible)
		}
	}

	reservation := &domain.Reservation{
		ID:                 uuid.NewString(),
		CustomerName:       req.CustomerName,
		CustomerEmail:      req.CustomerEmail,
		VehicleDescription: req.VehicleDescription,
		Notes:              req.Notes,
		Services:           services,
		Status:             domain.StatusConfirmed,
		ScheduledDate:      domain.DateOnly(req.Date),
		ScheduledSlot:      slot.ID,
		PriceSummary:       summary,
	}

	var created *domain.Reservation
	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		existing, err := s.reservationRepo.GetByDate(txCtx, reservation.ScheduledDate)
		if err != nil {
			return fmt.Errorf("%w: failed to get reservations: %w", ErrInternal, err)
		}
		if booking.IsSlotTaken(reservation.ScheduledDate, reservation.ScheduledSlot, existing) {
			return ErrSlotNotAvailable
		}

		created, err = s.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrSlotNotAvailable) {
				return ErrSlotNotAvailable
			}
			return fmt.Errorf("%w: failed to create reservation: %w", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrSlotNotAvailable) {
			s.metrics.IncSlotConflict()
			s.logger.Warn("CreateManual: slot %s on %s is taken", slot.ID, req.Date.Format(domain.DateFormat))
			return nil, ErrSlotNotAvailable
		}
		s.logger.Error("CreateManual: transaction failed: %v", err)
		if errors.Is(err, ErrInternal) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.metrics.IncReservationCreated(string(created.Status))
	s.logger.Info("CreateManual: created reservation id=%s", created.ID)

	return models.FromDomainReservation(created), nil
}

// UpdateStatus меняет статус по таблице переходов:
// PENDING → CONFIRMED → COMPLETED, отмена из PENDING и CONFIRMED
func (s *Service) UpdateStatus(ctx context.Context, id string, req *models.UpdateStatusRequest) (*models.ReservationResponse, error) {
	s.logger.Info("UpdateStatus: updating reservation id=%s to status=%s", id, req.Status)

	newStatus, err := domain.ParseReservationStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for reservation id=%s", req.Status, id)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrReservationNotFound
	}

	// Две параллельные смены статуса не должны пройти проверку по одному снимку
	var updated *domain.Reservation
	err = s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		current, err := s.reservationRepo.GetByID(txCtx, id)
		if err != nil {
			return err
		}

		if !current.Status.CanTransitionTo(newStatus) {
			return fmt.Errorf("%w: %s → %s", ErrInvalidTransition, current.Status, newStatus)
		}

		if err := s.reservationRepo.UpdateStatus(txCtx, id, newStatus); err != nil {
			return err
		}

		updated, err = s.reservationRepo.GetByID(txCtx, id)
		return err
	})

	if err != nil {
		switch {
		case errors.Is(err, reservationRepo.ErrReservationNotFound):
			s.logger.Warn("UpdateStatus: reservation id=%s not found", id)
			return nil, ErrReservationNotFound
		case errors.Is(err, ErrInvalidTransition):
			s.logger.Warn("UpdateStatus: reservation id=%s: %v", id, err)
			return nil, err
		case txmanager.IsSerializationFailure(err):
			s.logger.Warn("UpdateStatus: reservation id=%s changed concurrently: %v", id, err)
			return nil, fmt.Errorf("%w: status changed concurrently", ErrInvalidTransition)
		case errors.Is(err, reservationRepo.ErrSlotNotAvailable):
			return nil, ErrSlotNotAvailable
		}
		s.logger.Error("UpdateStatus: repository error for reservation id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: reservation id=%s is now %s", id, newStatus)
	return models.FromDomainReservation(updated), nil
}

// Delete физически удаляет бронирование
func (s *Service) Delete(ctx context.Context, id string) error {
	s.logger.Info("Delete: deleting reservation id=%s", id)

	if _, err := uuid.Parse(id); err != nil {
		return ErrReservationNotFound
	}

	if err := s.reservationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Delete: reservation id=%s not found", id)
			return ErrReservationNotFound
		}
		s.logger.Error("Delete: repository error for reservation id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: reservation id=%s deleted", id)
	return nil
}

func (s *Service) isDiscountEligible(ctx context.Context, email string) (bool, error) {
	if strings.TrimSpace(email) == "" {
		return false, nil
	}

	member, err := s.memberRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, memberRepo.ErrMemberNotFound) {
			return false, nil
		}
		s.logger.Error("CreateManual: failed to get member %s: %v", email, err)
		return false, fmt.Errorf("%w: failed to get member: %v", ErrInternal, err)
	}

	return member.Tier.DiscountEligible(), nil
}
