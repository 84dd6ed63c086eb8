package list_services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DetailingStudio/internal/service/catalog/models"
	"github.com/m04kA/SMC-DetailingStudio/pkg/logger"
)

type fakeService struct {
	gotVisibleOnly bool
	err            error
}

func (f *fakeService) List(_ context.Context, visibleOnly bool) (*models.ServiceListResponse, error) {
	f.gotVisibleOnly = visibleOnly
	if f.err != nil {
		return nil, f.err
	}
	return &models.ServiceListResponse{Services: []models.ServiceResponse{{Name: "Ceramic Coating", Price: "From 1,200 PLN", PriceValue: 1200}}}, nil
}

func TestHandle(t *testing.T) {
	for _, visibleOnly := range []bool{true, false} {
		svc := &fakeService{}
		rec := httptest.NewRecorder()
		NewHandler(svc, visibleOnly, logger.Nop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/services", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, visibleOnly, svc.gotVisibleOnly)

		var body models.ServiceListResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		require.Len(t, body.Services, 1)
		assert.Equal(t, int64(1200), body.Services[0].PriceValue)
	}

	rec := httptest.NewRecorder()
	NewHandler(&fakeService{err: errors.New("db down")}, true, logger.Nop()).
		Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/services", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
