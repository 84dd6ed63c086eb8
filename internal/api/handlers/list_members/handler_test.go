package list_members

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DetailingStudio/internal/service/members/models"
	"github.com/m04kA/SMC-DetailingStudio/pkg/logger"
)

type fakeService struct{ err error }

func (f fakeService) List(context.Context) (*models.MemberListResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.MemberListResponse{Members: []models.MemberResponse{{ID: "m-1"}, {ID: "m-2"}}}, nil
}

func TestHandle(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler(fakeService{}, logger.Nop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/members", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body models.MemberListResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Len(t, body.Members, 2)

	rec = httptest.NewRecorder()
	NewHandler(fakeService{err: errors.New("db down")}, logger.Nop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
