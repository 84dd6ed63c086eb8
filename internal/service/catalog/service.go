package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	catalogRepo "github.com/m04kA/SMC-DetailingStudio/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-DetailingStudio/internal/service/catalog/models"
)

// Service сервис управления каталогом услуг
type Service struct {
	catalogRepo CatalogRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(catalogRepo CatalogRepository, logger Logger) *Service {
	return &Service{
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// List возвращает каталог; visibleOnly для публичной витрины
func (s *Service) List(ctx context.Context, visibleOnly bool) (*models.ServiceListResponse, error) {
	services, err := s.catalogRepo.List(ctx, visibleOnly)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d services (visibleOnly=%t)", len(services), visibleOnly)
	return models.FromDomainServiceList(services), nil
}

// Create добавляет услугу в каталог
func (s *Service) Create(ctx context.Context, req *models.ServiceRequest) (*models.ServiceResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	s.logger.Info("Create: adding service %q", req.Name)

	created, err := s.catalogRepo.Create(ctx, req.ToDomain())
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceExists) {
			s.logger.Warn("Create: service %q already exists", req.Name)
			return nil, ErrServiceExists
		}
		s.logger.Error("Create: repository error for service %q: %v", req.Name, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainService(created), nil
}

// Update обновляет услугу; переименование разрешено, если новое название свободно.
// Уже созданные бронирования хранят старое название
func (s *Service) Update(ctx context.Context, name string, req *models.ServiceRequest) (*models.ServiceResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	s.logger.Info("Update: updating service %q", name)

	updated, err := s.catalogRepo.Update(ctx, name, req.ToDomain())
	if err != nil {
		switch {
		case errors.Is(err, catalogRepo.ErrServiceNotFound):
			s.logger.Warn("Update: service %q not found", name)
			return nil, ErrServiceNotFound
		case errors.Is(err, catalogRepo.ErrServiceExists):
			s.logger.Warn("Update: service %q already exists", req.Name)
			return nil, ErrServiceExists
		}
		s.logger.Error("Update: repository error for service %q: %v", name, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainService(updated), nil
}

// SetVisibility показывает или скрывает услугу на сайте
func (s *Service) SetVisibility(ctx context.Context, name string, visible bool) (*models.ServiceResponse, error) {
	s.logger.Info("SetVisibility: service %q visible=%t", name, visible)

	if err := s.catalogRepo.SetVisibility(ctx, name, visible); err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			s.logger.Warn("SetVisibility: service %q not found", name)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("SetVisibility: repository error for service %q: %v", name, err)
		return nil, fmt.Errorf("%w: SetVisibility - repository error: %v", ErrInternal, err)
	}

	service, err := s.catalogRepo.GetByName(ctx, name)
	if err != nil {
		s.logger.Error("SetVisibility: failed to re-read service %q: %v", name, err)
		return nil, fmt.Errorf("%w: SetVisibility - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainService(service), nil
}

// Delete удаляет услугу из каталога
func (s *Service) Delete(ctx context.Context, name string) error {
	s.logger.Info("Delete: deleting service %q", name)

	if err := s.catalogRepo.Delete(ctx, name); err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			s.logger.Warn("Delete: service %q not found", name)
			return ErrServiceNotFound
		}
		s.logger.Error("Delete: repository error for service %q: %v", name, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	return nil
}
