package domain

// PriceSummary итог расчёта стоимости в целых PLN
type PriceSummary struct {
	Subtotal  int64
	Discount  int64
	Surcharge int64
	Total     int64
	Deposit   int64
	Balance   int64
}

// IsZero возвращает true для пустого выбора услуг
func (p PriceSummary) IsZero() bool {
	return p == PriceSummary{}
}
