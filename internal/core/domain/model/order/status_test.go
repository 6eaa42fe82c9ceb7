package order_test

import (
	"testing"
	"time"

	"tawsil/internal/core/domain/model/order"
	"tawsil/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFromString(t *testing.T) {
	tests := []struct {
		input   string
		want    order.Status
		wantErr bool
	}{
		{"new", order.StatusNew, false},
		{"inProgress", order.StatusInProgress, false},
		{"delivered", order.StatusDelivered, false},
		{"deliveredLate", order.StatusDeliveredLate, false},
		{"notReceived", order.StatusNotReceived, false},
		{"late", order.StatusUnknown, true}, // displayed-only, never stored
		{"", order.StatusUnknown, true},
		{"NEW", order.StatusUnknown, true},
	}

	for _, tt := range tests {
		t.Run("input_"+tt.input, func(t *testing.T) {
			got, err := order.StatusFromString(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStatus_Validate(t *testing.T) {
	require.NoError(t, order.StatusNew.Validate())
	require.NoError(t, order.StatusNotReceived.Validate())
	require.Error(t, order.StatusUnknown.Validate())
	require.Error(t, order.Status(42).Validate())
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, order.StatusNew.IsTerminal())
	assert.False(t, order.StatusInProgress.IsTerminal())
	assert.True(t, order.StatusDelivered.IsTerminal())
	assert.True(t, order.StatusDeliveredLate.IsTerminal())
	assert.True(t, order.StatusNotReceived.IsTerminal())
}

func TestStatus_Display(t *testing.T) {
	deadline := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	before := deadline.Add(-time.Hour)
	after := deadline.Add(time.Hour)

	t.Run("new_within_window_shows_new", func(t *testing.T) {
		assert.Equal(t, order.DisplayNew, order.StatusNew.Display(deadline, before))
	})

	t.Run("new_past_deadline_shows_late", func(t *testing.T) {
		assert.Equal(t, order.DisplayLate, order.StatusNew.Display(deadline, after))
	})

	t.Run("in_progress_never_shows_late", func(t *testing.T) {
		assert.Equal(t, order.DisplayInProgress, order.StatusInProgress.Display(deadline, after))
	})

	t.Run("terminal_states_mirror_stored_status", func(t *testing.T) {
		assert.Equal(t, order.DisplayDelivered, order.StatusDelivered.Display(deadline, after))
		assert.Equal(t, order.DisplayDeliveredLate, order.StatusDeliveredLate.Display(deadline, after))
		assert.Equal(t, order.DisplayNotReceived, order.StatusNotReceived.Display(deadline, after))
	})
}

func TestNewItem(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		item, err := order.NewItem("water bottles", 3)

		require.NoError(t, err)
		assert.Equal(t, "water bottles", item.Name())
		assert.Equal(t, 3, item.Quantity())
	})

	t.Run("empty_name_rejected", func(t *testing.T) {
		_, err := order.NewItem("", 1)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("non_positive_quantity_rejected", func(t *testing.T) {
		_, err := order.NewItem("water bottles", 0)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = order.NewItem("water bottles", -2)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
