package create_quote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DetailingStudio/internal/domain"
	"github.com/m04kA/SMC-DetailingStudio/internal/usecase/quote"
	"github.com/m04kA/SMC-DetailingStudio/pkg/logger"
)

type fakeUseCase struct {
	got  *quote.Request
	resp *quote.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *quote.Request) (*quote.Response, error) {
	f.got = req
	return f.resp, f.err
}

func TestHandle_OK(t *testing.T) {
	uc := &fakeUseCase{resp: &quote.Response{
		Items:           []domain.LineItem{{Name: "Paint Correction", Price: 1500}},
		Slot:            &domain.TimeSlot{ID: "evening", Surcharge: 50},
		Summary:         domain.PriceSummary{Subtotal: 1500, Discount: 300, Surcharge: 50, Total: 1250, Deposit: 250, Balance: 1000},
		DiscountApplied: true,
		CheckoutURL:     "https://pay.example.com/studio",
	}}

	rec := httptest.NewRecorder()
	NewHandler(uc, logger.Nop()).Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/quotes",
		strings.NewReader(`{"services":["Paint Correction"],"slotId":"evening","email":"vip@example.com"}`)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "evening", uc.got.SlotID)

	var body QuoteResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, int64(1250), body.Price.Total)
	assert.Equal(t, int64(300), body.Price.Discount)
	require.NotNil(t, body.Slot)
	assert.Equal(t, int64(50), body.Slot.Surcharge)
	assert.True(t, body.DiscountApplied)
}

func TestHandle_EmptySelection(t *testing.T) {
	uc := &fakeUseCase{resp: &quote.Response{}}

	rec := httptest.NewRecorder()
	NewHandler(uc, logger.Nop()).Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/quotes", strings.NewReader(`{}`)))

	require.Equal(t, http.StatusOK, rec.Code)
	var body QuoteResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Empty(t, body.Items)
	assert.Nil(t, body.Slot)
	assert.Zero(t, body.Price.Total)
	assert.Empty(t, body.CheckoutURL)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{"bad email", `{"email":"nope"}`, nil, http.StatusUnprocessableEntity},
		{"unknown slot", `{"slotId":"midnight"}`, quote.ErrInvalidSlot, http.StatusBadRequest},
		{"internal", `{}`, quote.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			NewHandler(&fakeUseCase{err: tt.err}, logger.Nop()).
				Handle(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body)))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
