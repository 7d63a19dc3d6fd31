package interfaces

import (
	"time"

	"github.com/ShahbazAhmad08/Docto-booking2nd/pkg/types"
)

// AppointmentService defines the interface for the appointment lifecycle
// and scheduling engine
type AppointmentService interface {
	// Booking and retrieval
	BookAppointment(apt *types.Appointment) (*types.Appointment, error)
	GetAppointment(id string) (*types.Appointment, error)
	ListAppointments(ownerID string, role types.Role) ([]*types.Appointment, error)

	// Status state machine
	UpdateStatus(id string, status types.AppointmentStatus) (*types.Appointment, error)
	CancelAppointment(id string) (*types.Appointment, error)

	// Scheduling protocol
	Reschedule(id, newDate, newTime string) (*types.Appointment, error)

	// Read models for presentation
	TabbedAppointments(ownerID string, role types.Role, tab string, now time.Time) ([]*types.Appointment, error)
	GroupedAppointments(ownerID string, role types.Role, tab string, now time.Time) ([]types.DateGroup, error)
	CalendarEvents(ownerID string, role types.Role) ([]types.CalendarEvent, error)
}

// AppointmentRepository defines the interface for appointment persistence.
// Each call is an independent request/response to the store and may fail;
// a failed update leaves the caller's in-memory record unchanged.
type AppointmentRepository interface {
	Create(apt *types.Appointment) error
	GetByID(id string) (*types.Appointment, error)
	ListByOwner(ownerID string, role types.Role) ([]*types.Appointment, error)
	UpdateStatus(id string, status types.AppointmentStatus) (*types.Appointment, error)
	UpdateSchedule(id, newDate, newTime string) (*types.Appointment, error)
	AttachPrescription(id, prescriptionID string) (*types.Appointment, error)
}

// PrescriptionService defines the interface for prescription management
type PrescriptionService interface {
	CreatePrescription(p *types.Prescription) (*types.Prescription, error)
	GetPrescription(id string) (*types.Prescription, error)
	ListByDoctor(doctorID string) ([]*types.Prescription, error)
	ListByAppointment(appointmentID string) ([]*types.Prescription, error)
	UpdatePrescription(id string, updates *types.PrescriptionUpdates) (*types.Prescription, error)
	DeletePrescription(id string) error
	RenderPDF(id string) ([]byte, error)
}

// PrescriptionRepository defines the interface for prescription persistence.
// The store performs no duplicate check per appointment; callers go through
// the linkage guard first.
type PrescriptionRepository interface {
	Create(p *types.Prescription) error
	GetByID(id string) (*types.Prescription, error)
	ListByDoctor(doctorID string) ([]*types.Prescription, error)
	ListByPatient(patientID string) ([]*types.Prescription, error)
	ListByAppointment(appointmentID string) ([]*types.Prescription, error)
	Update(id string, updates *types.PrescriptionUpdates) (*types.Prescription, error)
	Delete(id string) error
}

// ReviewRepository defines the interface for review persistence
type ReviewRepository interface {
	Create(review *types.Review) error
	ListByDoctor(doctorID string) ([]*types.Review, error)
	ListByPatient(patientID string) ([]*types.Review, error)
	GetByAppointment(appointmentID string) (*types.Review, error)
}
