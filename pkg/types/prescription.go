package types

import "time"

// Medication is a value entry on a prescription. Order is meaningful
// (display order equals entry order) and duplicates are permitted.
type Medication struct {
	Name         string `json:"name"`
	Dosage       string `json:"dosage"`
	Instructions string `json:"instructions"`
	Duration     string `json:"duration,omitempty"`
}

// Prescription is owned by exactly one appointment. AppointmentID never
// changes after creation; the one-per-appointment rule is enforced by the
// linkage guard, not by the store.
type Prescription struct {
	ID            string       `json:"id" db:"id"`
	AppointmentID string       `json:"appointment_id" db:"appointment_id"`
	DoctorID      string       `json:"doctor_id" db:"doctor_id"`
	PatientID     string       `json:"patient_id" db:"patient_id"`
	Medications   []Medication `json:"medications" db:"medications"`
	Notes         string       `json:"notes" db:"notes"`
	Date          string       `json:"date" db:"issued_date"`
	CreatedAt     time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at" db:"updated_at"`
}

// PrescriptionUpdates represents a partial update to a prescription.
// AppointmentID is deliberately absent: linkage never moves.
type PrescriptionUpdates struct {
	Medications []Medication `json:"medications,omitempty"`
	Notes       *string      `json:"notes,omitempty"`
}
