package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-DetailingStudio/internal/domain"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int64
	}{
		{name: "plain", in: "360 PLN", want: 360},
		{name: "prefix and thousands separator", in: "From 1,200 PLN", want: 1200},
		{name: "empty", in: "", want: 0},
		{name: "no digits", in: "Price on request", want: 0},
		{name: "decimals are not supported", in: "99.50 PLN", want: 9950},
		{name: "overflow", in: "99999999999999999999999", want: 0},
		{name: "above ceiling", in: "From 500,000,000,000,000,000 PLN", want: 0},
		{name: "at ceiling", in: "1,000,000,000 PLN", want: 1_000_000_000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParsePrice(tt.in)
			assert.Equal(t, tt.want, got)
			// повторный разбор даёт тот же результат
			assert.Equal(t, got, ParsePrice(tt.in))
		})
	}
}

func TestResolveLineItems(t *testing.T) {
	catalog := []*domain.Service{
		{Name: "Ceramic Coating", PriceText: "From 1,200 PLN", IsVisible: true},
		{Name: "Interior Detail", PriceText: "360 PLN", IsVisible: true},
		{Name: "Paint Correction", PriceText: "900 PLN", IsVisible: false},
		{Name: "Quote Only", PriceText: "ask us", IsVisible: true},
	}

	t.Run("follows catalog order, not selection order", func(t *testing.T) {
		items := ResolveLineItems([]string{"Interior Detail", "Ceramic Coating"}, catalog)
		assert.Equal(t, []domain.LineItem{
			{Name: "Ceramic Coating", Price: 1200},
			{Name: "Interior Detail", Price: 360},
		}, items)
	})

	t.Run("hidden service is never chargeable", func(t *testing.T) {
		items := ResolveLineItems([]string{"Paint Correction"}, catalog)
		assert.Empty(t, items)
	})

	t.Run("single hidden service catalog", func(t *testing.T) {
		hidden := []*domain.Service{{Name: "A", PriceText: "100 PLN", IsVisible: false}}
		assert.Empty(t, ResolveLineItems([]string{"A"}, hidden))
	})

	t.Run("unknown names are dropped", func(t *testing.T) {
		items := ResolveLineItems([]string{"Unknown", "Interior Detail"}, catalog)
		assert.Equal(t, []domain.LineItem{{Name: "Interior Detail", Price: 360}}, items)
	})

	t.Run("malformed price resolves to zero", func(t *testing.T) {
		items := ResolveLineItems([]string{"Quote Only"}, catalog)
		assert.Equal(t, []domain.LineItem{{Name: "Quote Only", Price: 0}}, items)
	})

	t.Run("duplicate selection is priced once", func(t *testing.T) {
		items := ResolveLineItems([]string{"Interior Detail", "Interior Detail"}, catalog)
		assert.Len(t, items, 1)
	})

	t.Run("empty selection", func(t *testing.T) {
		assert.Empty(t, ResolveLineItems(nil, catalog))
	})
}
