package booking

import (
	"fmt"

	"github.com/m04kA/SMC-DetailingStudio/internal/domain"
)

// SlotGrid упорядоченный набор слотов записи
type SlotGrid struct {
	slots []domain.TimeSlot
	byID  map[string]domain.TimeSlot
}

// NewSlotGrid создает сетку; идентификаторы слотов должны быть уникальны
func NewSlotGrid(slots []domain.TimeSlot) (*SlotGrid, error) {
	g := &SlotGrid{
		slots: make([]domain.TimeSlot, 0, len(slots)),
		byID:  make(map[string]domain.TimeSlot, len(slots)),
	}
	for _, s := range slots {
		if s.ID == "" {
			return nil, fmt.Errorf("slot id is empty")
		}
		if _, exists := g.byID[s.ID]; exists {
			return nil, fmt.Errorf("duplicate slot id %q", s.ID)
		}
		if s.Surcharge < 0 {
			return nil, fmt.Errorf("slot %q: negative surcharge", s.ID)
		}
		g.slots = append(g.slots, s)
		g.byID[s.ID] = s
	}
	return g, nil
}

// DefaultSlots утро/день/вечер (вечер с надбавкой) и почасовые слоты 09:00–20:00
func DefaultSlots() []domain.TimeSlot {
	slots := []domain.TimeSlot{
		{ID: "morning", Label: "Morning Slot", Window: "09:00 - 12:00"},
		{ID: "afternoon", Label: "Afternoon Slot", Window: "13:00 - 16:00"},
		{ID: "evening", Label: "Evening Premium", Window: "17:00 - 20:00", Surcharge: domain.DefaultEveningSurcharge},
	}
	for hour := 9; hour <= 20; hour++ {
		id := fmt.Sprintf("%02d:00", hour)
		slots = append(slots, domain.TimeSlot{ID: id, Label: id, Window: id})
	}
	return slots
}

// Find ищет слот по идентификатору
func (g *SlotGrid) Find(id string) (domain.TimeSlot, bool) {
	s, ok := g.byID[id]
	return s, ok
}

// All возвращает копию слотов в порядке сетки
func (g *SlotGrid) All() []domain.TimeSlot {
	out := make([]domain.TimeSlot, len(g.slots))
	copy(out, g.slots)
	return out
}
