package types

import "time"

// AppointmentStatus represents the lifecycle state of an appointment
type AppointmentStatus string

const (
	StatusPending     AppointmentStatus = "pending"
	StatusConfirmed   AppointmentStatus = "confirmed"
	StatusCancelled   AppointmentStatus = "cancelled"
	StatusCompleted   AppointmentStatus = "completed"
	StatusRescheduled AppointmentStatus = "rescheduled"
)

// IsValid reports whether the status is one of the known lifecycle states
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted, StatusRescheduled:
		return true
	}
	return false
}

// IsTerminal reports whether the status admits no further transitions
func (s AppointmentStatus) IsTerminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

// IsActive reports whether the appointment is still in play
func (s AppointmentStatus) IsActive() bool {
	return s.IsValid() && !s.IsTerminal()
}

// Role identifies the kind of actor that owns a set of appointments
type Role string

const (
	RoleDoctor  Role = "doctor"
	RolePatient Role = "patient"
)

// Appointment represents a booked visit between a patient and a doctor.
// Date and Time are local wall-clock strings ("2006-01-02" / "15:04"); no
// timezone normalization is applied. DoctorName, PatientName and Specialty
// are denormalized at booking time so lists render without joins.
type Appointment struct {
	ID             string            `json:"id" db:"id"`
	DoctorID       string            `json:"doctor_id" db:"doctor_id"`
	PatientID      string            `json:"patient_id" db:"patient_id"`
	Date           string            `json:"date" db:"visit_date"`
	Time           string            `json:"time" db:"visit_time"`
	Status         AppointmentStatus `json:"status" db:"status"`
	DoctorName     string            `json:"doctor_name" db:"doctor_name"`
	PatientName    string            `json:"patient_name" db:"patient_name"`
	Specialty      string            `json:"specialty" db:"specialty"`
	PrescriptionID string            `json:"prescription_id,omitempty" db:"prescription_id"`
	CreatedAt      time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at" db:"updated_at"`
}

// Clone returns a shallow copy, used when a collection hands out records
// that callers may mutate optimistically.
func (a *Appointment) Clone() *Appointment {
	if a == nil {
		return nil
	}
	cp := *a
	return &cp
}

// ScheduleChange carries the new slot of a reschedule request
type ScheduleChange struct {
	Date string `json:"date"`
	Time string `json:"time"`
}
