package get_reservation

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DetailingStudio/internal/service/reservations"
	"github.com/m04kA/SMC-DetailingStudio/internal/service/reservations/models"
	"github.com/m04kA/SMC-DetailingStudio/pkg/logger"
)

type fakeService struct {
	resp *models.ReservationResponse
	err  error
}

func (f *fakeService) GetByID(_ context.Context, id string) (*models.ReservationResponse, error) {
	if f.resp != nil {
		f.resp.ID = id
	}
	return f.resp, f.err
}

func serve(svc ReservationService, path string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/reservations/{id}", NewHandler(svc, logger.Nop()).Handle).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHandle(t *testing.T) {
	rec := serve(&fakeService{resp: &models.ReservationResponse{Status: "PENDING"}}, "/api/v1/reservations/abc")

	require.Equal(t, http.StatusOK, rec.Code)
	var body models.ReservationResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "abc", body.ID)

	assert.Equal(t, http.StatusNotFound, serve(&fakeService{err: reservations.ErrReservationNotFound}, "/api/v1/reservations/x").Code)
	assert.Equal(t, http.StatusInternalServerError, serve(&fakeService{err: errors.New("boom")}, "/api/v1/reservations/x").Code)
}
