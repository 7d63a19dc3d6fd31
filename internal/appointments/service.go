package appointments

import (
	"time"

	"github.com/google/uuid"

	"github.com/ShahbazAhmad08/Docto-booking2nd/pkg/config"
	"github.com/ShahbazAhmad08/Docto-booking2nd/pkg/interfaces"
	"github.com/ShahbazAhmad08/Docto-booking2nd/pkg/logger"
	"github.com/ShahbazAhmad08/Docto-booking2nd/pkg/monitoring"
	"github.com/ShahbazAhmad08/Docto-booking2nd/pkg/types"
)

// Service implements the appointment lifecycle and scheduling engine
type Service struct {
	config        *config.Config
	logger        *logger.Logger
	repository    interfaces.AppointmentRepository
	prescriptions interfaces.PrescriptionRepository
}

var _ interfaces.AppointmentService = (*Service)(nil)

// NewService creates a new appointment service
func NewService(cfg *config.Config, log *logger.Logger, repo interfaces.AppointmentRepository, prescriptions interfaces.PrescriptionRepository) *Service {
	return &Service{
		config:        cfg,
		logger:        log,
		repository:    repo,
		prescriptions: prescriptions,
	}
}

// BookAppointment creates a new appointment in status pending
func (s *Service) BookAppointment(apt *types.Appointment) (*types.Appointment, error) {
	if err := s.validateBooking(apt); err != nil {
		return nil, err
	}

	apt.ID = uuid.New().String()
	apt.Status = types.StatusPending

	// No overlap check against the doctor's other appointments: slots may
	// double-book and the last write wins.
	if err := s.repository.Create(apt); err != nil {
		return nil, err
	}

	created, err := s.repository.GetByID(apt.ID)
	if err != nil {
		// The insert went through; hand back what we wrote.
		s.logger.WithError(err).Warnf("Failed to read back appointment %s after booking", apt.ID)
		return apt, nil
	}

	s.logger.WithAppointment(created.ID).Infof("Booked appointment for patient %s with doctor %s", created.PatientID, created.DoctorID)
	return created, nil
}

// GetAppointment retrieves an appointment by ID
func (s *Service) GetAppointment(id string) (*types.Appointment, error) {
	return s.repository.GetByID(id)
}

// ListAppointments retrieves all appointments owned by a doctor or patient
func (s *Service) ListAppointments(ownerID string, role types.Role) ([]*types.Appointment, error) {
	return s.repository.ListByOwner(ownerID, role)
}

// UpdateStatus executes a status transition. A failed store call leaves the
// caller's in-memory record unchanged; there is no automatic retry.
func (s *Service) UpdateStatus(id string, status types.AppointmentStatus) (*types.Appointment, error) {
	existing, err := s.repository.GetByID(id)
	if err != nil {
		return nil, err
	}

	// Repeated cancellation is an idempotent no-op.
	if status == types.StatusCancelled && existing.Status == types.StatusCancelled {
		s.logger.WithAppointment(id).Debug("Appointment already cancelled")
		return existing, nil
	}

	if err := ValidateTransition(existing.Status, status); err != nil {
		monitoring.RecordStatusTransition(string(existing.Status), string(status), err)
		return nil, err
	}

	updated, err := s.repository.UpdateStatus(id, status)
	monitoring.RecordStatusTransition(string(existing.Status), string(status), err)
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// CancelAppointment cancels an appointment. Cancellation is a status, not a
// removal; the record survives.
func (s *Service) CancelAppointment(id string) (*types.Appointment, error) {
	return s.UpdateStatus(id, types.StatusCancelled)
}

// Reschedule moves an appointment to a new slot, forcing its status to
// rescheduled in the same atomic update. The store's returned record
// replaces the appointment wholesale.
func (s *Service) Reschedule(id, newDate, newTime string) (*types.Appointment, error) {
	if err := ValidateSchedule(newDate, newTime); err != nil {
		monitoring.RecordReschedule(err)
		return nil, err
	}

	existing, err := s.repository.GetByID(id)
	if err != nil {
		return nil, err
	}

	// Same gate as the optimistic move path: a terminal appointment is
	// never resurrected into rescheduled.
	if err := ValidateTransition(existing.Status, types.StatusRescheduled); err != nil {
		monitoring.RecordReschedule(err)
		return nil, err
	}

	updated, err := s.repository.UpdateSchedule(id, newDate, newTime)
	monitoring.RecordReschedule(err)
	if err != nil {
		return nil, err
	}

	s.logger.WithAppointment(id).Infof("Rescheduled to %s %s", newDate, newTime)
	return updated, nil
}

// TabbedAppointments returns one tab of an owner's appointments, ordered by
// instant
func (s *Service) TabbedAppointments(ownerID string, role types.Role, tab string, now time.Time) ([]*types.Appointment, error) {
	appts, err := s.repository.ListByOwner(ownerID, role)
	if err != nil {
		return nil, err
	}
	return Partition(SortByInstant(appts), tab, now), nil
}

// GroupedAppointments returns one tab bucketed by date for the list view
func (s *Service) GroupedAppointments(ownerID string, role types.Role, tab string, now time.Time) ([]types.DateGroup, error) {
	appts, err := s.TabbedAppointments(ownerID, role, tab, now)
	if err != nil {
		return nil, err
	}
	return GroupByDate(appts), nil
}

// CalendarEvents returns the full (un-tab-filtered) set projected into
// positioned calendar events
func (s *Service) CalendarEvents(ownerID string, role types.Role) ([]types.CalendarEvent, error) {
	appts, err := s.repository.ListByOwner(ownerID, role)
	if err != nil {
		return nil, err
	}
	return CalendarEvents(SortByInstant(appts)), nil
}

// LoadWorkspace fans out the appointment and prescription fetches for one
// view and joins them into a fresh workspace
func (s *Service) LoadWorkspace(ownerID string, role types.Role) (*Workspace, error) {
	w := NewWorkspace()
	if err := s.RefreshWorkspace(w, ownerID, role); err != nil {
		return nil, err
	}
	return w, nil
}

type appointmentsResult struct {
	appts []*types.Appointment
	err   error
}

type prescriptionsResult struct {
	prescs []*types.Prescription
	err    error
}

// RefreshWorkspace reloads a workspace's collections. The two fetches run
// concurrently; if either fails the whole refresh fails with one error and
// the workspace keeps its previous contents. A refresh that completes after
// the workspace was invalidated is discarded.
func (s *Service) RefreshWorkspace(w *Workspace, ownerID string, role types.Role) error {
	token := w.BeginRefresh()

	aptCh := make(chan appointmentsResult, 1)
	prescCh := make(chan prescriptionsResult, 1)

	go func() {
		appts, err := s.repository.ListByOwner(ownerID, role)
		aptCh <- appointmentsResult{appts: appts, err: err}
	}()

	go func() {
		var prescs []*types.Prescription
		var err error
		if role == types.RoleDoctor {
			prescs, err = s.prescriptions.ListByDoctor(ownerID)
		} else {
			prescs, err = s.prescriptions.ListByPatient(ownerID)
		}
		prescCh <- prescriptionsResult{prescs: prescs, err: err}
	}()

	aptRes := <-aptCh
	prescRes := <-prescCh

	if aptRes.err != nil {
		return types.NewExternalError(types.ErrCodeStoreUnavailable, "failed to load appointments or prescriptions", aptRes.err)
	}
	if prescRes.err != nil {
		return types.NewExternalError(types.ErrCodeStoreUnavailable, "failed to load appointments or prescriptions", prescRes.err)
	}

	if !w.ApplyRefresh(token, aptRes.appts, prescRes.prescs) {
		s.logger.WithActor(ownerID, string(role)).Debug("Discarded stale workspace refresh")
	}
	return nil
}

// validateBooking validates a booking request
func (s *Service) validateBooking(apt *types.Appointment) error {
	if apt == nil {
		return types.NewValidationError(types.ErrCodeInvalidInput, "appointment is required", nil)
	}
	if apt.DoctorID == "" {
		return types.NewValidationError(types.ErrCodeInvalidInput, "doctor ID is required", nil)
	}
	if apt.PatientID == "" {
		return types.NewValidationError(types.ErrCodeInvalidInput, "patient ID is required", nil)
	}
	return ValidateSchedule(apt.Date, apt.Time)
}
