package reviews

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ShahbazAhmad08/Docto-booking2nd/pkg/interfaces"
	"github.com/ShahbazAhmad08/Docto-booking2nd/pkg/logger"
	"github.com/ShahbazAhmad08/Docto-booking2nd/pkg/types"
)

// Service implements review management
type Service struct {
	logger       *logger.Logger
	repository   interfaces.ReviewRepository
	appointments interfaces.AppointmentRepository
}

// NewService creates a new review service
func NewService(log *logger.Logger, repo interfaces.ReviewRepository, appointments interfaces.AppointmentRepository) *Service {
	return &Service{
		logger:       log,
		repository:   repo,
		appointments: appointments,
	}
}

// CreateReview records patient feedback for an appointment. One review per
// appointment; a second attempt is a conflict.
func (s *Service) CreateReview(review *types.Review) (*types.Review, error) {
	if err := s.validateReview(review); err != nil {
		return nil, err
	}

	apt, err := s.appointments.GetByID(review.AppointmentID)
	if err != nil {
		return nil, err
	}

	if existing, err := s.repository.GetByAppointment(review.AppointmentID); err == nil && existing != nil {
		return nil, types.NewConflictError(types.ErrCodeConflict,
			fmt.Sprintf("appointment %s already has a review", review.AppointmentID))
	} else if err != nil && !types.IsNotFound(err) {
		return nil, err
	}

	review.ID = uuid.New().String()
	review.DoctorID = apt.DoctorID
	review.PatientID = apt.PatientID
	if review.Date == "" {
		review.Date = time.Now().Format("2006-01-02")
	}

	if err := s.repository.Create(review); err != nil {
		return nil, err
	}

	return review, nil
}

// ListByDoctor retrieves all reviews for a doctor
func (s *Service) ListByDoctor(doctorID string) ([]*types.Review, error) {
	return s.repository.ListByDoctor(doctorID)
}

// ListByPatient retrieves all reviews written by a patient
func (s *Service) ListByPatient(patientID string) ([]*types.Review, error) {
	return s.repository.ListByPatient(patientID)
}

// GetByAppointment retrieves the review for an appointment
func (s *Service) GetByAppointment(appointmentID string) (*types.Review, error) {
	return s.repository.GetByAppointment(appointmentID)
}

func (s *Service) validateReview(review *types.Review) error {
	if review == nil {
		return types.NewValidationError(types.ErrCodeInvalidInput, "review is required", nil)
	}
	if review.AppointmentID == "" {
		return types.NewValidationError(types.ErrCodeInvalidInput, "appointment_id is required", nil)
	}
	if review.Rating < 1 || review.Rating > 5 {
		return types.NewValidationError(types.ErrCodeInvalidInput, "rating must be between 1 and 5",
			map[string]interface{}{"rating": review.Rating})
	}
	return nil
}
