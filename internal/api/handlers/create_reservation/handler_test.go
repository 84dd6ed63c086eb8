package create_reservation

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DetailingStudio/internal/domain"
	createReservation "github.com/m04kA/SMC-DetailingStudio/internal/usecase/create_reservation"
	"github.com/m04kA/SMC-DetailingStudio/pkg/logger"
)

type fakeUseCase struct {
	got  *createReservation.Request
	resp *createReservation.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *createReservation.Request) (*createReservation.Response, error) {
	f.got = req
	return f.resp, f.err
}

const validBody = `{
	"customerName": "Jan Kowalski",
	"customerEmail": "jan@example.com",
	"vehicleDescription": "BMW M3",
	"services": ["Ceramic Coating"],
	"date": "2025-06-10",
	"slotId": "evening"
}`

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{resp: &createReservation.Response{
		Reservation: &domain.Reservation{
			ID:            "3f1c1b9e-2a57-4a43-9a53-d5b0b3e1a1c1",
			CustomerName:  "Jan Kowalski",
			Services:      []string{"Ceramic Coating"},
			Status:        domain.StatusPending,
			ScheduledDate: time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
			ScheduledSlot: "evening",
			PriceSummary:  domain.PriceSummary{Subtotal: 1200, Surcharge: 50, Total: 1250, Deposit: 250, Balance: 1000},
		},
		Items:       []domain.LineItem{{Name: "Ceramic Coating", Price: 1200}},
		Slot:        domain.TimeSlot{ID: "evening", Label: "Evening", Window: "17:00 - 20:00", Surcharge: 50},
		CheckoutURL: "https://pay.example.com/ceramic",
	}}
	h := NewHandler(uc, logger.Nop())

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(validBody)))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), uc.got.Date)
	assert.Equal(t, []string{"Ceramic Coating"}, uc.got.Services)

	var body CreateReservationResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "2025-06-10", body.Reservation.ScheduledDate)
	assert.Equal(t, int64(250), body.Reservation.Price.Deposit)
	assert.Equal(t, "PLN", body.Reservation.Price.Currency)
	assert.Equal(t, "https://pay.example.com/ceramic", body.CheckoutURL)
	assert.Equal(t, int64(50), body.Slot.Surcharge)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		ucErr      error
		wantStatus int
	}{
		{name: "broken json", body: `{`, wantStatus: http.StatusBadRequest},
		{name: "missing email", body: strings.Replace(validBody, `"jan@example.com"`, `""`, 1), wantStatus: http.StatusUnprocessableEntity},
		{name: "bad date", body: strings.Replace(validBody, `"2025-06-10"`, `"10.06.2025"`, 1), wantStatus: http.StatusUnprocessableEntity},
		{name: "impossible day", body: strings.Replace(validBody, `"2025-06-10"`, `"2025-02-30"`, 1), wantStatus: http.StatusUnprocessableEntity},
		{name: "impossible month", body: strings.Replace(validBody, `"2025-06-10"`, `"2025-13-45"`, 1), wantStatus: http.StatusUnprocessableEntity},
		{name: "slot taken", body: validBody, ucErr: createReservation.ErrSlotNotAvailable, wantStatus: http.StatusConflict},
		{name: "past date", body: validBody, ucErr: createReservation.ErrInvalidDate, wantStatus: http.StatusBadRequest},
		{name: "too far", body: validBody, ucErr: createReservation.ErrDateTooFarInFuture, wantStatus: http.StatusBadRequest},
		{name: "unknown slot", body: validBody, ucErr: createReservation.ErrInvalidSlot, wantStatus: http.StatusBadRequest},
		{name: "nothing bookable", body: validBody, ucErr: createReservation.ErrEmptySelection, wantStatus: http.StatusBadRequest},
		{name: "internal", body: validBody, ucErr: fmt.Errorf("%w: db down", createReservation.ErrInternal), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tt.ucErr}, logger.Nop())

			rec := httptest.NewRecorder()
			h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
