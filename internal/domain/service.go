package domain

import "time"

// Service услуга студии из каталога.
// Name уникален в пределах каталога и служит ключом при выборе услуг
type Service struct {
	Name        string
	PriceText   string // Отображаемая цена, например "From 1,200 PLN"
	Category    string
	Description string
	Details     []string
	IsVisible   bool
	Position    int // Порядок в каталоге

	CreatedAt time.Time
	UpdatedAt time.Time
}

// LineItem позиция расчёта: услуга с числовой ценой
type LineItem struct {
	Name  string
	Price int64
}
