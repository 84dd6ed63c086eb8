package domain

// TimeSlot слот записи: крупный интервал ("evening") или конкретный час ("09:00")
type TimeSlot struct {
	ID        string
	Label     string
	Window    string // Отображаемый интервал, например "17:00 - 20:00"
	Surcharge int64  // Фиксированная надбавка, только для поздних слотов
}

// IsLate возвращает true для слотов с надбавкой
func (s TimeSlot) IsLate() bool {
	return s.Surcharge > 0
}

// SlotAvailability слот на конкретную дату
type SlotAvailability struct {
	Slot  TimeSlot
	Taken bool
}
