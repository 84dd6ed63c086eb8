package models

import (
	"time"

	"github.com/m04kA/SMC-DetailingStudio/internal/domain"
)

// SignupRequest заявка на вступление в клуб
type SignupRequest struct {
	Name  string
	Email string
	Phone string
	Tier  string // SILVER, GOLD, PLATINUM (допускаются названия вида "Platinum Club")
}

// MemberResponse участник клуба
type MemberResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	Tier         string    `json:"tier"`
	Entitlements []string  `json:"entitlements"`
	Discount     bool      `json:"discount"` // Скидка на услуги каталога
	CreatedAt    time.Time `json:"createdAt"`
}

// SignupResponse участник и ссылка на оплату подписки
type SignupResponse struct {
	Member      MemberResponse `json:"member"`
	CheckoutURL string         `json:"checkoutUrl,omitempty"`
}

// MemberListResponse список участников
type MemberListResponse struct {
	Members []MemberResponse `json:"members"`
}

// FromDomainMember конвертирует domain модель в DTO
func FromDomainMember(m *domain.Member) *MemberResponse {
	if m == nil {
		return nil
	}

	entitlements := m.Tier.Entitlements()
	if entitlements == nil {
		entitlements = []string{}
	}

	return &MemberResponse{
		ID:           m.ID,
		Name:         m.Name,
		Email:        m.Email,
		Phone:        m.Phone,
		Tier:         string(m.Tier),
		Entitlements: entitlements,
		Discount:     m.Tier.DiscountEligible(),
		CreatedAt:    m.CreatedAt,
	}
}

// FromDomainMemberList конвертирует список domain моделей в DTO
func FromDomainMemberList(members []*domain.Member) *MemberListResponse {
	resp := &MemberListResponse{Members: make([]MemberResponse, 0, len(members))}
	for _, m := range members {
		if item := FromDomainMember(m); item != nil {
			resp.Members = append(resp.Members, *item)
		}
	}
	return resp
}
