package members

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-DetailingStudio/internal/domain"
	memberRepo "github.com/m04kA/SMC-DetailingStudio/internal/infra/storage/member"
	"github.com/m04kA/SMC-DetailingStudio/internal/service/members/models"
)

// Service сервис клуба участников
type Service struct {
	memberRepo MemberRepository
	tierLinks  map[string]string
	logger     Logger
}

// NewService создает новый экземпляр сервиса; tierLinks ссылки на оплату подписки по коду уровня
func NewService(memberRepo MemberRepository, tierLinks map[string]string, logger Logger) *Service {
	return &Service{
		memberRepo: memberRepo,
		tierLinks:  tierLinks,
		logger:     logger,
	}
}

// Signup регистрирует участника и возвращает ссылку на оплату выбранного уровня
func (s *Service) Signup(ctx context.Context, req *models.SignupRequest) (*models.SignupResponse, error) {
	s.logger.Info("Signup: email=%s, tier=%s", req.Email, req.Tier)

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	email := strings.TrimSpace(req.Email)
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}

	tier, err := domain.ParseMembershipTier(req.Tier)
	if err != nil {
		s.logger.Warn("Signup: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	member := &domain.Member{
		ID:    uuid.NewString(),
		Name:  name,
		Email: email,
		Phone: strings.TrimSpace(req.Phone),
		Tier:  tier,
	}

	created, err := s.memberRepo.Create(ctx, member)
	if err != nil {
		if errors.Is(err, memberRepo.ErrMemberExists) {
			s.logger.Warn("Signup: member %s already exists", email)
			return nil, ErrMemberExists
		}
		s.logger.Error("Signup: repository error for %s: %v", email, err)
		return nil, fmt.Errorf("%w: Signup - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Signup: member id=%s joined tier %s", created.ID, created.Tier)

	return &models.SignupResponse{
		Member:      *models.FromDomainMember(created),
		CheckoutURL: s.tierLinks[string(tier)],
	}, nil
}

// GetByEmail ищет участника по email без учёта регистра
func (s *Service) GetByEmail(ctx context.Context, email string) (*models.MemberResponse, error) {
	member, err := s.memberRepo.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, memberRepo.ErrMemberNotFound) {
			s.logger.Warn("GetByEmail: member %s not found", email)
			return nil, ErrMemberNotFound
		}
		s.logger.Error("GetByEmail: repository error for %s: %v", email, err)
		return nil, fmt.Errorf("%w: GetByEmail - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainMember(member), nil
}

// List возвращает всех участников
func (s *Service) List(ctx context.Context) (*models.MemberListResponse, error) {
	members, err := s.memberRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainMemberList(members), nil
}

// Delete удаляет участника
func (s *Service) Delete(ctx context.Context, id string) error {
	s.logger.Info("Delete: deleting member id=%s", id)

	if _, err := uuid.Parse(id); err != nil {
		return ErrMemberNotFound
	}

	if err := s.memberRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, memberRepo.ErrMemberNotFound) {
			return ErrMemberNotFound
		}
		s.logger.Error("Delete: repository error for member id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	return nil
}
