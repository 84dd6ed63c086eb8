package get_slot_availability

import (
	"github.com/m04kA/SMC-DetailingStudio/internal/domain"
	getSlotAvailability "github.com/m04kA/SMC-DetailingStudio/internal/usecase/get_slot_availability"
)

// SlotResponse слот с отметкой занятости
type SlotResponse struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	Window    string `json:"window"`
	Surcharge int64  `json:"surcharge"`
	Available bool   `json:"available"`
}

// SlotAvailabilityResponse HTTP response model
type SlotAvailabilityResponse struct {
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
}

func FromUseCaseResponse(resp *getSlotAvailability.Response) *SlotAvailabilityResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			ID:        s.Slot.ID,
			Label:     s.Slot.Label,
			Window:    s.Slot.Window,
			Surcharge: s.Slot.Surcharge,
			Available: !s.Taken,
		})
	}

	return &SlotAvailabilityResponse{
		Date:  resp.Date.Format(domain.DateFormat),
		Slots: slots,
	}
}
