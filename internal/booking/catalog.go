package booking

import (
	"strconv"
	"strings"

	"github.com/m04kA/SMC-DetailingStudio/internal/domain"
)

// ParsePrice извлекает целую цену из отображаемой строки: все символы, кроме цифр, отбрасываются.
// Строка без цифр или с ценой выше domain.MaxServicePrice даёт 0.
//
// Примеры:
// - "360 PLN"        → 360
// - "From 1,200 PLN" → 1200
// - ""               → 0
func ParsePrice(priceText string) int64 {
	var digits strings.Builder
	for _, r := range priceText {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	if digits.Len() == 0 {
		return 0
	}

	price, err := strconv.ParseInt(digits.String(), 10, 64)
	if err != nil || price > domain.MaxServicePrice {
		return 0
	}
	return price
}

// ResolveLineItems превращает выбранные названия услуг в позиции с ценами.
// Учитываются только видимые услуги каталога; порядок результата совпадает с порядком каталога.
// Неизвестные и скрытые названия молча отбрасываются
func ResolveLineItems(selectedNames []string, catalog []*domain.Service) []domain.LineItem {
	selected := make(map[string]struct{}, len(selectedNames))
	for _, name := range selectedNames {
		selected[name] = struct{}{}
	}

	items := make([]domain.LineItem, 0, len(selected))
	for _, service := range catalog {
		if service == nil || !service.IsVisible {
			continue
		}
		if _, ok := selected[service.Name]; !ok {
			continue
		}
		items = append(items, domain.LineItem{
			Name:  service.Name,
			Price: ParsePrice(service.PriceText),
		})
		// Повторное вхождение имени в каталоге не должно дублировать позицию
		delete(selected, service.Name)
	}

	return items
}

// ItemNames возвращает названия позиций в исходном порядке
func ItemNames(items []domain.LineItem) []string {
	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.Name
	}
	return names
}
