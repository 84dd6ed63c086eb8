package create_manual_reservation

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DetailingStudio/internal/service/reservations"
	"github.com/m04kA/SMC-DetailingStudio/internal/service/reservations/models"
	"github.com/m04kA/SMC-DetailingStudio/pkg/logger"
)

type fakeService struct {
	got *models.CreateManualRequest
	err error
}

func (f *fakeService) CreateManual(_ context.Context, req *models.CreateManualRequest) (*models.ReservationResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.ReservationResponse{ID: "r-1", Status: "CONFIRMED"}, nil
}

// Email и услуги необязательны для ручной записи
const body = `{"customerName":"Walk-in","vehicleDescription":"Toyota Corolla","date":"2024-01-15","slotId":"09:00"}`

func TestHandle_Created(t *testing.T) {
	svc := &fakeService{}
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.Nop()).Handle(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Empty(t, svc.got.CustomerEmail)
	assert.Empty(t, svc.got.Services)
	assert.Equal(t, 2024, svc.got.Date.Year())
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"slot taken", reservations.ErrSlotNotAvailable, http.StatusConflict},
		{"unknown slot", reservations.ErrInvalidSlot, http.StatusBadRequest},
		{"invalid", reservations.ErrInvalidInput, http.StatusBadRequest},
		{"internal", reservations.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			NewHandler(&fakeService{err: tt.err}, logger.Nop()).
				Handle(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
