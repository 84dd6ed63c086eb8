package quote

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-DetailingStudio/internal/booking"
	"github.com/m04kA/SMC-DetailingStudio/internal/domain"
	memberRepo "github.com/m04kA/SMC-DetailingStudio/internal/infra/storage/member"
)

// UseCase use case для расчёта стоимости
type UseCase struct {
	catalogRepo       CatalogRepository
	memberRepo        MemberRepository
	grid              *booking.SlotGrid
	policy            booking.Policy
	serviceLinks      map[string]string
	studioCheckoutURL string
	logger            Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	catalogRepo CatalogRepository,
	memberRepo MemberRepository,
	grid *booking.SlotGrid,
	policy booking.Policy,
	serviceLinks map[string]string,
	studioCheckoutURL string,
	logger Logger,
) *UseCase {
	return &UseCase{
		catalogRepo:       catalogRepo,
		memberRepo:        memberRepo,
		grid:              grid,
		policy:            policy,
		serviceLinks:      serviceLinks,
		studioCheckoutURL: studioCheckoutURL,
		logger:            logger,
	}
}

// Execute считает стоимость выбора так же, как при бронировании.
// Пустой выбор (или только скрытые услуги) даёт нулевой расчёт
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if len(req.Services) > domain.MaxServicesPerBooking {
		return nil, fmt.Errorf("%w: at most %d services", ErrInvalidInput, domain.MaxServicesPerBooking)
	}

	var slot *domain.TimeSlot
	if req.SlotID != "" {
		s, ok := uc.grid.Find(req.SlotID)
		if !ok {
			uc.logger.Warn("Quote: unknown slot %q", req.SlotID)
			return nil, fmt.Errorf("%w: %q", ErrInvalidSlot, req.SlotID)
		}
		slot = &s
	}

	catalog, err := uc.catalogRepo.List(ctx, true)
	if err != nil {
		uc.logger.Error("Quote: failed to load catalog: %v", err)
		return nil, fmt.Errorf("%w: failed to load catalog: %v", ErrInternal, err)
	}

	items := booking.ResolveLineItems(req.Services, catalog)

	discountEligible := false
	if email := strings.TrimSpace(req.Email); email != "" {
		member, err := uc.memberRepo.GetByEmail(ctx, email)
		switch {
		case err == nil:
			discountEligible = member.Tier.DiscountEligible()
		case errors.Is(err, memberRepo.ErrMemberNotFound):
		default:
			uc.logger.Error("Quote: failed to get member %s: %v", email, err)
			return nil, fmt.Errorf("%w: failed to get member: %v", ErrInternal, err)
		}
	}

	var timeSlot domain.TimeSlot
	if slot != nil {
		timeSlot = *slot
	}

	resp := &Response{
		Items:           items,
		Slot:            slot,
		Summary:         uc.policy.ComputeSummary(items, timeSlot, discountEligible),
		DiscountApplied: discountEligible,
	}
	if len(items) > 0 {
		resp.CheckoutURL = booking.CheckoutURL(items, uc.serviceLinks, uc.studioCheckoutURL)
	}

	return resp, nil
}
