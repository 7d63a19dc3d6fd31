package appointments

import (
	"github.com/ShahbazAhmad08/Docto-booking2nd/pkg/types"
)

// OptimisticMove is the two-phase contract behind a drag-and-drop or
// form-driven reschedule: the presentation layer applies Proposed
// immediately, persists afterward, and resolves with the remote result.
// Either the server's record becomes visible or the move reverts to Prior;
// no half-moved state is ever left standing.
type OptimisticMove struct {
	Prior    *types.Appointment
	Proposed *types.Appointment
}

// BeginMove validates the target slot and builds the tentative record the
// view may show while the store call is in flight. A malformed slot fails
// here, before anything is applied or persisted.
func BeginMove(apt *types.Appointment, newDate, newTime string) (*OptimisticMove, error) {
	if apt == nil {
		return nil, types.NewValidationError(types.ErrCodeInvalidInput, "appointment is required", nil)
	}
	if err := ValidateSchedule(newDate, newTime); err != nil {
		return nil, err
	}
	if err := ValidateTransition(apt.Status, types.StatusRescheduled); err != nil {
		return nil, err
	}

	proposed := apt.Clone()
	proposed.Date = newDate
	proposed.Time = newTime
	proposed.Status = types.StatusRescheduled

	return &OptimisticMove{
		Prior:    apt.Clone(),
		Proposed: proposed,
	}, nil
}

// Resolve is a pure function of (prior state, proposed state, remote
// result). On store failure it returns the prior record so the caller
// reverts the visual move and surfaces the error; on success the server's
// record replaces the appointment wholesale.
func (m *OptimisticMove) Resolve(remote *types.Appointment, remoteErr error) (*types.Appointment, error) {
	if remoteErr != nil {
		return m.Prior, remoteErr
	}
	return remote, nil
}
