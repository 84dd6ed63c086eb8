package reservation

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DetailingStudio/internal/domain"
)

func TestIsActiveSlotViolation(t *testing.T) {
	slotErr := &pq.Error{Code: "23505", Constraint: activeSlotIndex}
	otherUnique := &pq.Error{Code: "23505", Constraint: "reservations_pkey"}
	serialization := &pq.Error{Code: "40001"}

	assert.True(t, isActiveSlotViolation(slotErr))
	assert.True(t, isActiveSlotViolation(fmt.Errorf("wrapped: %w", slotErr)))
	assert.False(t, isActiveSlotViolation(otherUnique))
	assert.False(t, isActiveSlotViolation(serialization))
	assert.False(t, isActiveSlotViolation(errors.New("boom")))
}

func TestBuildListQuery(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)
	status := domain.StatusPending
	email := "Jan@Example.com"

	query, args, err := buildListQuery(domain.ReservationFilter{
		StartDate: &start,
		EndDate:   &end,
		Status:    &status,
		Email:     &email,
	}).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "FROM reservations")
	assert.Contains(t, query, "scheduled_date >= $1")
	assert.Contains(t, query, "scheduled_date <= $2")
	assert.Contains(t, query, "status = $3")
	assert.Contains(t, query, "LOWER(customer_email) = LOWER($4)")
	assert.Contains(t, query, "ORDER BY scheduled_date ASC, scheduled_slot ASC")
	assert.Equal(t, []interface{}{"2025-01-01", "2025-01-31", domain.StatusPending, "Jan@Example.com"}, args)
}

func TestBuildListQuery_NoFilter(t *testing.T) {
	query, args, err := buildListQuery(domain.ReservationFilter{}).ToSql()
	require.NoError(t, err)

	assert.NotContains(t, query, "WHERE")
	assert.Empty(t, args)
}
