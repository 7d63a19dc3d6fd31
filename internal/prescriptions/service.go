package prescriptions

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ShahbazAhmad08/Docto-booking2nd/internal/appointments"
	"github.com/ShahbazAhmad08/Docto-booking2nd/pkg/config"
	"github.com/ShahbazAhmad08/Docto-booking2nd/pkg/interfaces"
	"github.com/ShahbazAhmad08/Docto-booking2nd/pkg/logger"
	"github.com/ShahbazAhmad08/Docto-booking2nd/pkg/monitoring"
	"github.com/ShahbazAhmad08/Docto-booking2nd/pkg/types"
)

// Service implements prescription management on top of the linkage guard
type Service struct {
	config       *config.Config
	logger       *logger.Logger
	repository   interfaces.PrescriptionRepository
	appointments interfaces.AppointmentRepository
}

var _ interfaces.PrescriptionService = (*Service)(nil)

// NewService creates a new prescription service
func NewService(cfg *config.Config, log *logger.Logger, repo interfaces.PrescriptionRepository, appointments interfaces.AppointmentRepository) *Service {
	return &Service{
		config:       cfg,
		logger:       log,
		repository:   repo,
		appointments: appointments,
	}
}

// CreatePrescription validates the entry, requires a confirmed appointment,
// rejects duplicates before any store write, persists the prescription, and then
// completes the appointment. A failure on that last step is logged and
// surfaced through the appointment record later, not returned: the
// prescription itself is already durable and linkage stays authoritative.
func (s *Service) CreatePrescription(p *types.Prescription) (*types.Prescription, error) {
	if err := s.validatePrescription(p); err != nil {
		return nil, err
	}

	apt, err := s.appointments.GetByID(p.AppointmentID)
	if err != nil {
		return nil, err
	}

	// Recording a prescription completes the appointment, so the same
	// transition rules apply: only a confirmed visit can be completed.
	if err := appointments.ValidateTransition(apt.Status, types.StatusCompleted); err != nil {
		return nil, err
	}

	existing, err := s.repository.ListByAppointment(p.AppointmentID)
	if err != nil {
		return nil, err
	}
	if HasPrescription(p.AppointmentID, existing) {
		monitoring.RecordPrescriptionRejection()
		s.logger.WithAppointment(p.AppointmentID).Warn("Rejected duplicate prescription")
		return nil, types.NewConflictError(types.ErrCodeAlreadyPrescribed,
			fmt.Sprintf("appointment %s already has a prescription", p.AppointmentID))
	}

	p.ID = uuid.New().String()
	p.DoctorID = apt.DoctorID
	p.PatientID = apt.PatientID
	if p.Date == "" {
		p.Date = time.Now().Format("2006-01-02")
	}

	if err := s.repository.Create(p); err != nil {
		return nil, err
	}

	if _, err := s.appointments.AttachPrescription(apt.ID, p.ID); err != nil {
		s.logger.WithAppointment(apt.ID).WithError(err).
			Warn("Prescription created but appointment completion did not persist")
	}

	created, err := s.repository.GetByID(p.ID)
	if err != nil {
		s.logger.WithError(err).Warn("Failed to read back created prescription")
		return p, nil
	}

	return created, nil
}

// GetPrescription retrieves a prescription by ID
func (s *Service) GetPrescription(id string) (*types.Prescription, error) {
	return s.repository.GetByID(id)
}

// ListByDoctor retrieves all prescriptions written by a doctor
func (s *Service) ListByDoctor(doctorID string) ([]*types.Prescription, error) {
	return s.repository.ListByDoctor(doctorID)
}

// ListByAppointment retrieves the prescriptions linked to an appointment
func (s *Service) ListByAppointment(appointmentID string) ([]*types.Prescription, error) {
	return s.repository.ListByAppointment(appointmentID)
}

// UpdatePrescription applies a partial update. Medication updates go
// through the same shape validation as creation.
func (s *Service) UpdatePrescription(id string, updates *types.PrescriptionUpdates) (*types.Prescription, error) {
	if updates == nil {
		return nil, types.NewValidationError(types.ErrCodeInvalidInput, "no updates provided", nil)
	}
	if updates.Medications != nil {
		if err := validateMedications(updates.Medications); err != nil {
			return nil, err
		}
	}

	return s.repository.Update(id, updates)
}

// DeletePrescription removes a prescription. The owning appointment keeps
// its status and prescription stamp; only the linkage record disappears.
func (s *Service) DeletePrescription(id string) error {
	if err := s.repository.Delete(id); err != nil {
		return err
	}

	s.logger.Infof("Deleted prescription %s", id)
	return nil
}

func (s *Service) validatePrescription(p *types.Prescription) error {
	if p == nil {
		return types.NewValidationError(types.ErrCodeInvalidInput, "prescription is required", nil)
	}
	if p.AppointmentID == "" {
		return types.NewValidationError(types.ErrCodeInvalidInput, "appointment_id is required", nil)
	}
	if len(p.Medications) == 0 {
		return types.NewValidationError(types.ErrCodeInvalidInput, "at least one medication is required", nil)
	}

	return validateMedications(p.Medications)
}

func validateMedications(medications []types.Medication) error {
	for i, m := range medications {
		if strings.TrimSpace(m.Name) == "" || strings.TrimSpace(m.Dosage) == "" {
			return types.NewValidationError(types.ErrCodeInvalidInput,
				"every medication needs a name and dosage",
				map[string]interface{}{"index": i})
		}
	}
	return nil
}
