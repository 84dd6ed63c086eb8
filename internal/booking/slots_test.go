package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DetailingStudio/internal/domain"
)

func TestDefaultSlots(t *testing.T) {
	grid, err := NewSlotGrid(DefaultSlots())
	require.NoError(t, err)

	evening, ok := grid.Find("evening")
	require.True(t, ok)
	assert.True(t, evening.IsLate())
	assert.Equal(t, int64(50), evening.Surcharge)

	morning, ok := grid.Find("morning")
	require.True(t, ok)
	assert.False(t, morning.IsLate())

	for _, id := range []string{"09:00", "14:00", "20:00"} {
		slot, ok := grid.Find(id)
		require.True(t, ok, id)
		assert.Zero(t, slot.Surcharge)
	}

	_, ok = grid.Find("21:00")
	assert.False(t, ok)
	assert.Len(t, grid.All(), 15)
}

func TestNewSlotGrid_Invalid(t *testing.T) {
	_, err := NewSlotGrid([]domain.TimeSlot{{ID: "a"}, {ID: "a"}})
	assert.Error(t, err)

	_, err = NewSlotGrid([]domain.TimeSlot{{ID: ""}})
	assert.Error(t, err)

	_, err = NewSlotGrid([]domain.TimeSlot{{ID: "late", Surcharge: -1}})
	assert.Error(t, err)
}
