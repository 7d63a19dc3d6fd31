package prescriptions

import (
	"time"

	"github.com/ShahbazAhmad08/Docto-booking2nd/internal/appointments"
	"github.com/ShahbazAhmad08/Docto-booking2nd/pkg/types"
)

// FindForAppointment returns the prescription linked to the given
// appointment, or nil when none exists. Linkage is authoritative: a
// prescription record naming the appointment id, not the appointment's
// status string, decides whether the visit has been prescribed.
func FindForAppointment(appointmentID string, prescriptions []*types.Prescription) *types.Prescription {
	for _, p := range prescriptions {
		if p != nil && p.AppointmentID == appointmentID {
			return p
		}
	}
	return nil
}

// HasPrescription reports whether the appointment already carries a
// linked prescription.
func HasPrescription(appointmentID string, prescriptions []*types.Prescription) bool {
	return FindForAppointment(appointmentID, prescriptions) != nil
}

// CanPrescribe reports whether a doctor may write a prescription for the
// appointment: the visit was confirmed, its scheduled instant has passed,
// and no prescription is linked yet.
func CanPrescribe(apt *types.Appointment, now time.Time, existing []*types.Prescription) bool {
	if apt == nil || apt.Status != types.StatusConfirmed {
		return false
	}
	if appointments.CanTakeAction(apt, now) {
		return false
	}
	return !HasPrescription(apt.ID, existing)
}
