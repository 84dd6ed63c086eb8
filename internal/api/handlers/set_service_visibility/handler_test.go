package set_service_visibility

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-DetailingStudio/internal/service/catalog"
	"github.com/m04kA/SMC-DetailingStudio/internal/service/catalog/models"
	"github.com/m04kA/SMC-DetailingStudio/pkg/logger"
)

type fakeService struct {
	gotVisible *bool
	err        error
}

func (f *fakeService) SetVisibility(_ context.Context, name string, visible bool) (*models.ServiceResponse, error) {
	f.gotVisible = &visible
	if f.err != nil {
		return nil, f.err
	}
	return &models.ServiceResponse{Name: name, IsVisible: visible}, nil
}

func serve(svc CatalogService, body string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/admin/services/{name}/visibility", NewHandler(svc, logger.Nop()).Handle)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/api/v1/admin/services/Wax/visibility", strings.NewReader(body)))
	return rec
}

func TestHandle(t *testing.T) {
	svc := &fakeService{}
	assert.Equal(t, http.StatusOK, serve(svc, `{"isVisible":false}`).Code)
	if assert.NotNil(t, svc.gotVisible) {
		assert.False(t, *svc.gotVisible)
	}

	// Поле обязательно: пустое тело не должно молча скрывать услугу
	assert.Equal(t, http.StatusUnprocessableEntity, serve(&fakeService{}, `{}`).Code)
	assert.Equal(t, http.StatusNotFound, serve(&fakeService{err: catalog.ErrServiceNotFound}, `{"isVisible":true}`).Code)
}
