package delete_member

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-DetailingStudio/internal/service/members"
	"github.com/m04kA/SMC-DetailingStudio/pkg/logger"
)

type fakeService struct{ err error }

func (f fakeService) Delete(context.Context, string) error { return f.err }

func TestHandle(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"deleted", nil, http.StatusNoContent},
		{"not found", members.ErrMemberNotFound, http.StatusNotFound},
		{"internal", errors.New("db down"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := mux.NewRouter()
			r.HandleFunc("/api/v1/admin/members/{id}", NewHandler(fakeService{err: tt.err}, logger.Nop()).Handle)

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/admin/members/m-1", nil))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
