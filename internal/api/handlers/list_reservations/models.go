package list_reservations

import (
	"fmt"
	"net/url"
	"time"

	"github.com/m04kA/SMC-DetailingStudio/internal/domain"
	"github.com/m04kA/SMC-DetailingStudio/internal/service/reservations/models"
	"github.com/m04kA/SMC-DetailingStudio/pkg/ptr"
)

// ToServiceRequest собирает фильтр из query-параметров: from, to, status, email
func ToServiceRequest(q url.Values) (*models.ListRequest, error) {
	req := &models.ListRequest{}

	if v := q.Get("from"); v != "" {
		from, err := time.Parse(domain.DateFormat, v)
		if err != nil {
			return nil, fmt.Errorf("from: %w", err)
		}
		req.StartDate = &from
	}

	if v := q.Get("to"); v != "" {
		to, err := time.Parse(domain.DateFormat, v)
		if err != nil {
			return nil, fmt.Errorf("to: %w", err)
		}
		req.EndDate = &to
	}

	if v := q.Get("status"); v != "" {
		req.Status = ptr.Ptr(v)
	}

	if v := q.Get("email"); v != "" {
		req.Email = ptr.Ptr(v)
	}

	return req, nil
}
