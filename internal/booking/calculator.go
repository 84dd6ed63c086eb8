package booking

import (
	"math"

	"github.com/m04kA/SMC-DetailingStudio/internal/domain"
)

// Policy процентные ставки расчёта
type Policy struct {
	DepositPercent        int64
	MemberDiscountPercent int64
}

// DefaultPolicy 20% предоплата, 20% скидка Platinum
func DefaultPolicy() Policy {
	return Policy{
		DepositPercent:        domain.DefaultDepositPercent,
		MemberDiscountPercent: domain.DefaultMemberDiscountPercent,
	}
}

// RoundHalfUp округление до целого, .5 округляется вверх
func RoundHalfUp(x float64) int64 {
	return int64(math.Floor(x + 0.5))
}

// PercentOf возвращает round(amount * percent / 100) с округлением .5 вверх.
// Считается в целых числах без промежуточного amount*percent, поэтому не переполняется при percent <= 100
func PercentOf(amount, percent int64) int64 {
	if amount <= 0 || percent <= 0 {
		return 0
	}
	return amount/100*percent + (amount%100*percent+50)/100
}

// addCapped сложение неотрицательных сумм с насыщением на math.MaxInt64
func addCapped(a, b int64) int64 {
	if b > 0 && a > math.MaxInt64-b {
		return math.MaxInt64
	}
	return a + b
}

// ComputeSummary считает итог по позициям, слоту и праву на скидку.
//
// Скидка применяется только к сумме услуг, не к надбавке за слот.
// Предоплата всегда считается от суммы услуг без скидки: выгода участника
// целиком переходит в остаток к оплате в студии
func (p Policy) ComputeSummary(items []domain.LineItem, slot domain.TimeSlot, discountEligible bool) domain.PriceSummary {
	var subtotal int64
	for _, item := range items {
		if item.Price > 0 {
			subtotal = addCapped(subtotal, item.Price)
		}
	}

	var discount int64
	if discountEligible {
		discount = PercentOf(subtotal, p.MemberDiscountPercent)
	}

	total := addCapped(subtotal-discount, slot.Surcharge)
	deposit := PercentOf(subtotal, p.DepositPercent)

	return domain.PriceSummary{
		Subtotal:  subtotal,
		Discount:  discount,
		Surcharge: slot.Surcharge,
		Total:     total,
		Deposit:   deposit,
		Balance:   total - deposit,
	}
}

// ComputeSummary расчёт с политикой по умолчанию
func ComputeSummary(items []domain.LineItem, slot domain.TimeSlot, discountEligible bool) domain.PriceSummary {
	return DefaultPolicy().ComputeSummary(items, slot, discountEligible)
}
