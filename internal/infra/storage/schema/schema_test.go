package schema

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDDL_ActiveSlotIndex(t *testing.T) {
	sql := DDL()

	assert.Contains(t, sql, "CREATE UNIQUE INDEX IF NOT EXISTS reservations_active_slot_uidx")
	assert.Contains(t, sql, "WHERE status IN ('PENDING', 'CONFIRMED')")
	assert.True(t, strings.Contains(sql, "CREATE TABLE IF NOT EXISTS services"))
	assert.True(t, strings.Contains(sql, "CREATE TABLE IF NOT EXISTS members"))
}
