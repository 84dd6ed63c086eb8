package create_quote

import (
	reservationModels "github.com/m04kA/SMC-DetailingStudio/internal/service/reservations/models"
	"github.com/m04kA/SMC-DetailingStudio/internal/usecase/quote"
)

// QuoteRequest HTTP request model
type QuoteRequest struct {
	Services []string `json:"services" validate:"max=20"`
	SlotID   string   `json:"slotId" validate:"max=50"`
	Email    string   `json:"email" validate:"omitempty,email,max=254"`
}

type LineItemResponse struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

type SlotResponse struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	Window    string `json:"window"`
	Surcharge int64  `json:"surcharge"`
}

// QuoteResponse HTTP response model
type QuoteResponse struct {
	Items           []LineItemResponse                     `json:"items"`
	Slot            *SlotResponse                          `json:"slot,omitempty"`
	Price           reservationModels.PriceSummaryResponse `json:"price"`
	DiscountApplied bool                                   `json:"discountApplied"`
	CheckoutURL     string                                 `json:"checkoutUrl,omitempty"`
}

func (r *QuoteRequest) ToUseCaseRequest() *quote.Request {
	return &quote.Request{
		Services: r.Services,
		SlotID:   r.SlotID,
		Email:    r.Email,
	}
}

func FromUseCaseResponse(resp *quote.Response) *QuoteResponse {
	items := make([]LineItemResponse, 0, len(resp.Items))
	for _, item := range resp.Items {
		items = append(items, LineItemResponse{Name: item.Name, Price: item.Price})
	}

	out := &QuoteResponse{
		Items:           items,
		Price:           reservationModels.FromDomainPriceSummary(resp.Summary),
		DiscountApplied: resp.DiscountApplied,
		CheckoutURL:     resp.CheckoutURL,
	}
	if resp.Slot != nil {
		out.Slot = &SlotResponse{
			ID:        resp.Slot.ID,
			Label:     resp.Slot.Label,
			Window:    resp.Slot.Window,
			Surcharge: resp.Slot.Surcharge,
		}
	}
	return out
}
