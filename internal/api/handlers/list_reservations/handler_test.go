package list_reservations

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DetailingStudio/internal/service/reservations"
	"github.com/m04kA/SMC-DetailingStudio/internal/service/reservations/models"
	"github.com/m04kA/SMC-DetailingStudio/pkg/logger"
)

type fakeService struct {
	got *models.ListRequest
	err error
}

func (f *fakeService) List(_ context.Context, req *models.ListRequest) (*models.ReservationListResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.ReservationListResponse{Reservations: []models.ReservationResponse{}}, nil
}

func TestToServiceRequest(t *testing.T) {
	req, err := ToServiceRequest(url.Values{
		"from":   {"2025-10-01"},
		"to":     {"2025-10-31"},
		"status": {"confirmed"},
	})
	require.NoError(t, err)

	require.NotNil(t, req.StartDate)
	require.NotNil(t, req.EndDate)
	assert.Equal(t, time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC), *req.StartDate)
	assert.Equal(t, time.Date(2025, 10, 31, 0, 0, 0, 0, time.UTC), *req.EndDate)
	assert.Equal(t, "confirmed", *req.Status)
	assert.Nil(t, req.Email)

	_, err = ToServiceRequest(url.Values{"to": {"31.10.2025"}})
	assert.Error(t, err)
}

func TestHandle(t *testing.T) {
	svc := &fakeService{}
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.Nop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/reservations?email=jan@example.com", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.got.Email)
	assert.Equal(t, "jan@example.com", *svc.got.Email)

	rec = httptest.NewRecorder()
	NewHandler(&fakeService{err: reservations.ErrInvalidInput}, logger.Nop()).
		Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/reservations?status=LOST", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	NewHandler(svc, logger.Nop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/reservations?from=yesterday", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
