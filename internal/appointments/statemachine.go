package appointments

import (
	"fmt"
	"time"

	"github.com/ShahbazAhmad08/Docto-booking2nd/pkg/types"
)

// CanTakeAction reports whether cancel/complete controls apply to the
// appointment. Rescheduled appointments stay actionable even once their
// instant has passed, since the new slot may still need confirmation.
func CanTakeAction(apt *types.Appointment, now time.Time) bool {
	if apt == nil || !apt.Status.IsActive() {
		return false
	}
	return IsUpcoming(apt, now) || apt.Status == types.StatusRescheduled
}

// ValidateTransition checks whether moving from one status to another is
// legal. A repeated transition to cancelled is reported separately so
// callers can treat it as an idempotent no-op.
func ValidateTransition(from, to types.AppointmentStatus) error {
	if !to.IsValid() {
		return types.NewValidationError(types.ErrCodeInvalidInput,
			fmt.Sprintf("unknown appointment status: %s", to), nil)
	}

	switch to {
	case types.StatusCancelled:
		// Cancellation is legal whenever the appointment is not already
		// cancelled or completed; temporal position is irrelevant.
		if from == types.StatusCompleted {
			return types.NewConflictError(types.ErrCodeInvalidTransition,
				"a completed appointment cannot be cancelled")
		}
		return nil

	case types.StatusCompleted:
		// Completion happens as a side effect of recording a prescription.
		if from != types.StatusConfirmed {
			return types.NewConflictError(types.ErrCodeInvalidTransition,
				fmt.Sprintf("only a confirmed appointment can be completed, not %s", from))
		}
		return nil

	case types.StatusRescheduled:
		// Only reachable through the scheduling protocol.
		if !from.IsActive() {
			return types.NewConflictError(types.ErrCodeInvalidTransition,
				fmt.Sprintf("cannot reschedule a %s appointment", from))
		}
		return nil

	case types.StatusConfirmed:
		if from != types.StatusPending && from != types.StatusRescheduled {
			return types.NewConflictError(types.ErrCodeInvalidTransition,
				fmt.Sprintf("cannot confirm a %s appointment", from))
		}
		return nil

	case types.StatusPending:
		return types.NewConflictError(types.ErrCodeInvalidTransition,
			"an appointment cannot return to pending")
	}

	return nil
}
