package models

import (
	"time"

	"github.com/m04kA/SMC-DetailingStudio/internal/booking"
	"github.com/m04kA/SMC-DetailingStudio/internal/domain"
)

// ServiceRequest данные услуги для создания и обновления
type ServiceRequest struct {
	Name        string   `json:"name" validate:"required,max=200"`
	Price       string   `json:"price" validate:"max=100"` // Свободный текст, например "From 1,200 PLN"
	Category    string   `json:"category" validate:"max=100"`
	Description string   `json:"description" validate:"max=2000"`
	Details     []string `json:"details" validate:"max=50,dive,max=500"`
	IsVisible   *bool    `json:"isVisible"` // По умолчанию true
	Position    int      `json:"position"`
}

// ToDomain конвертирует запрос в domain модель
func (r *ServiceRequest) ToDomain() *domain.Service {
	visible := true
	if r.IsVisible != nil {
		visible = *r.IsVisible
	}

	details := r.Details
	if details == nil {
		details = []string{}
	}

	return &domain.Service{
		Name:        r.Name,
		PriceText:   r.Price,
		Category:    r.Category,
		Description: r.Description,
		Details:     details,
		IsVisible:   visible,
		Position:    r.Position,
	}
}

// ServiceResponse услуга каталога
type ServiceResponse struct {
	Name        string    `json:"name"`
	Price       string    `json:"price"`
	PriceValue  int64     `json:"priceValue"` // Цена, разобранная из текста, в PLN
	Category    string    `json:"category"`
	Description string    `json:"description,omitempty"`
	Details     []string  `json:"details"`
	IsVisible   bool      `json:"isVisible"`
	Position    int       `json:"position"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ServiceListResponse список услуг
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// FromDomainService конвертирует domain модель в DTO
func FromDomainService(s *domain.Service) *ServiceResponse {
	if s == nil {
		return nil
	}

	details := s.Details
	if details == nil {
		details = []string{}
	}

	return &ServiceResponse{
		Name:        s.Name,
		Price:       s.PriceText,
		PriceValue:  booking.ParsePrice(s.PriceText),
		Category:    s.Category,
		Description: s.Description,
		Details:     details,
		IsVisible:   s.IsVisible,
		Position:    s.Position,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

// FromDomainServiceList конвертирует список domain моделей в DTO
func FromDomainServiceList(services []*domain.Service) *ServiceListResponse {
	resp := &ServiceListResponse{Services: make([]ServiceResponse, 0, len(services))}
	for _, s := range services {
		if item := FromDomainService(s); item != nil {
			resp.Services = append(resp.Services, *item)
		}
	}
	return resp
}
