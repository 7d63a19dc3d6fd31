package appointments

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ShahbazAhmad08/Docto-booking2nd/pkg/types"
)

func TestValidateTransition(t *testing.T) {
	tests := []struct {
		name string
		from types.AppointmentStatus
		to   types.AppointmentStatus
		ok   bool
	}{
		{"pending can be cancelled", types.StatusPending, types.StatusCancelled, true},
		{"confirmed can be cancelled", types.StatusConfirmed, types.StatusCancelled, true},
		{"rescheduled can be cancelled", types.StatusRescheduled, types.StatusCancelled, true},
		{"cancelled can be cancelled again", types.StatusCancelled, types.StatusCancelled, true},
		{"completed cannot be cancelled", types.StatusCompleted, types.StatusCancelled, false},

		{"confirmed can be completed", types.StatusConfirmed, types.StatusCompleted, true},
		{"pending cannot be completed", types.StatusPending, types.StatusCompleted, false},
		{"cancelled cannot be completed", types.StatusCancelled, types.StatusCompleted, false},
		{"rescheduled cannot be completed", types.StatusRescheduled, types.StatusCompleted, false},

		{"pending can be rescheduled", types.StatusPending, types.StatusRescheduled, true},
		{"confirmed can be rescheduled", types.StatusConfirmed, types.StatusRescheduled, true},
		{"rescheduled can be rescheduled again", types.StatusRescheduled, types.StatusRescheduled, true},
		{"cancelled cannot be rescheduled", types.StatusCancelled, types.StatusRescheduled, false},
		{"completed cannot be rescheduled", types.StatusCompleted, types.StatusRescheduled, false},

		{"pending can be confirmed", types.StatusPending, types.StatusConfirmed, true},
		{"rescheduled can be confirmed", types.StatusRescheduled, types.StatusConfirmed, true},
		{"cancelled cannot be confirmed", types.StatusCancelled, types.StatusConfirmed, false},

		{"nothing returns to pending", types.StatusConfirmed, types.StatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTransition(tt.from, tt.to)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidateTransition_UnknownTarget(t *testing.T) {
	err := ValidateTransition(types.StatusPending, types.AppointmentStatus("archived"))
	assert.Error(t, err)
	assert.True(t, types.IsValidation(err))
}

func TestCanTakeAction(t *testing.T) {
	now := time.Date(2025, time.March, 10, 9, 0, 0, 0, time.Local)

	tests := []struct {
		name       string
		status     types.AppointmentStatus
		date       string
		clock      string
		actionable bool
	}{
		{"upcoming confirmed", types.StatusConfirmed, "2025-03-11", "09:00", true},
		{"upcoming pending", types.StatusPending, "2025-03-11", "09:00", true},
		{"past confirmed", types.StatusConfirmed, "2025-03-09", "09:00", false},
		{"past pending", types.StatusPending, "2025-03-09", "09:00", false},
		{"rescheduled stays actionable after its instant", types.StatusRescheduled, "2025-03-09", "09:00", true},
		{"cancelled with future slot", types.StatusCancelled, "2025-03-11", "09:00", false},
		{"completed with future slot", types.StatusCompleted, "2025-03-11", "09:00", false},
		{"confirmed without a parseable slot", types.StatusConfirmed, "", "", false},
		{"rescheduled without a parseable slot", types.StatusRescheduled, "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apt := &types.Appointment{Status: tt.status, Date: tt.date, Time: tt.clock}
			assert.Equal(t, tt.actionable, CanTakeAction(apt, now))
		})
	}
}

func TestCanTakeAction_Nil(t *testing.T) {
	assert.False(t, CanTakeAction(nil, time.Now()))
}
