package create_service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DetailingStudio/internal/service/catalog"
	"github.com/m04kA/SMC-DetailingStudio/internal/service/catalog/models"
	"github.com/m04kA/SMC-DetailingStudio/pkg/logger"
)

type fakeService struct {
	got *models.ServiceRequest
	err error
}

func (f *fakeService) Create(_ context.Context, req *models.ServiceRequest) (*models.ServiceResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.ServiceResponse{Name: req.Name, Price: req.Price}, nil
}

func TestHandle(t *testing.T) {
	svc := &fakeService{}
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.Nop()).Handle(rec, httptest.NewRequest(http.MethodPost, "/",
		strings.NewReader(`{"name":"Headlight Restoration","price":"250 PLN","category":"Exterior","isVisible":false}`)))

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, svc.got.IsVisible)
	assert.False(t, *svc.got.IsVisible)

	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{"missing name", `{"price":"250 PLN"}`, nil, http.StatusUnprocessableEntity},
		{"duplicate", `{"name":"Ceramic Coating"}`, catalog.ErrServiceExists, http.StatusConflict},
		{"internal", `{"name":"Ceramic Coating"}`, catalog.ErrInternal, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			NewHandler(&fakeService{err: tt.err}, logger.Nop()).
				Handle(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body)))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
