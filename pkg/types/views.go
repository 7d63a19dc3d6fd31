package types

import "time"

// Tab names for the appointment list views
const (
	TabUpcoming = "upcoming"
	TabPast     = "past"
)

// DateGroup is one bucket of a date-grouped appointment list. Groups appear
// in first-seen order of their date string; appointments within a group are
// ordered by time of day.
type DateGroup struct {
	Date         string         `json:"date"`
	Appointments []*Appointment `json:"appointments"`
}

// CalendarEvent is the positioned projection of one appointment for the
// calendar view. Start is zero when the appointment has no valid instant.
type CalendarEvent struct {
	ID          string            `json:"id"`
	Start       time.Time         `json:"start"`
	Title       string            `json:"title"`
	PatientName string            `json:"patient_name"`
	Specialty   string            `json:"specialty"`
	Status      AppointmentStatus `json:"status"`
	Color       string            `json:"color"`
}
