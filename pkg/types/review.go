package types

import "time"

// Review is patient feedback linked to a single appointment. At most one
// review per appointment is expected but not enforced here.
type Review struct {
	ID            string    `json:"id" db:"id"`
	AppointmentID string    `json:"appointment_id" db:"appointment_id"`
	DoctorID      string    `json:"doctor_id" db:"doctor_id"`
	PatientID     string    `json:"patient_id" db:"patient_id"`
	Rating        int       `json:"rating" db:"rating"`
	ReviewText    string    `json:"review_text" db:"review_text"`
	Date          string    `json:"date" db:"review_date"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}
