package booking

import "github.com/m04kA/SMC-DetailingStudio/internal/domain"

// CheckoutURL выбирает ссылку на оплату: ссылка самой дорогой позиции из links,
// при равной цене побеждает более ранняя позиция. Если у неё нет ссылки, то fallback
func CheckoutURL(items []domain.LineItem, links map[string]string, fallback string) string {
	var (
		top   *domain.LineItem
		found bool
	)
	for i := range items {
		if !found || items[i].Price > top.Price {
			top = &items[i]
			found = true
		}
	}

	if found {
		if url, ok := links[top.Name]; ok && url != "" {
			return url
		}
	}
	return fallback
}
