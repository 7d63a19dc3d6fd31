package appointments

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/ShahbazAhmad08/Docto-booking2nd/pkg/database"
	"github.com/ShahbazAhmad08/Docto-booking2nd/pkg/interfaces"
	"github.com/ShahbazAhmad08/Docto-booking2nd/pkg/logger"
	"github.com/ShahbazAhmad08/Docto-booking2nd/pkg/monitoring"
	"github.com/ShahbazAhmad08/Docto-booking2nd/pkg/types"
)

const appointmentColumns = `id, doctor_id, patient_id, visit_date, visit_time, status,
	   doctor_name, patient_name, specialty, prescription_id, created_at, updated_at`

// Repository implements the AppointmentRepository interface
type Repository struct {
	db     *database.DB
	logger *logger.Logger
}

// NewRepository creates a new appointment repository
func NewRepository(db *database.DB, log *logger.Logger) interfaces.AppointmentRepository {
	return &Repository{
		db:     db,
		logger: log,
	}
}

// Create inserts a new appointment record
func (r *Repository) Create(apt *types.Appointment) error {
	query := `
		INSERT INTO appointments (
			id, doctor_id, patient_id, visit_date, visit_time, status,
			doctor_name, patient_name, specialty
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	start := time.Now()
	_, err := r.db.Exec(query,
		apt.ID,
		apt.DoctorID,
		apt.PatientID,
		apt.Date,
		apt.Time,
		apt.Status,
		apt.DoctorName,
		apt.PatientName,
		apt.Specialty,
	)
	monitoring.RecordStoreOperation("insert", "appointments", time.Since(start), err)

	if err != nil {
		r.logger.WithError(err).Error("Failed to create appointment")
		return types.NewExternalError(types.ErrCodeStoreUnavailable, "failed to create appointment", err)
	}

	r.logger.WithAppointment(apt.ID).Infof("Created appointment for patient %s with doctor %s", apt.PatientID, apt.DoctorID)
	return nil
}

// GetByID retrieves an appointment by ID
func (r *Repository) GetByID(id string) (*types.Appointment, error) {
	query := fmt.Sprintf(`SELECT %s FROM appointments WHERE id = $1`, appointmentColumns)

	apt, err := scanAppointment(r.db.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.NewNotFoundError(types.ErrCodeNotFound, fmt.Sprintf("appointment not found: %s", id))
		}
		r.logger.WithError(err).Errorf("Failed to get appointment %s", id)
		return nil, types.NewExternalError(types.ErrCodeStoreUnavailable, "failed to get appointment", err)
	}

	return apt, nil
}

// ListByOwner retrieves all appointments belonging to a doctor or a patient
func (r *Repository) ListByOwner(ownerID string, role types.Role) ([]*types.Appointment, error) {
	column := "patient_id"
	if role == types.RoleDoctor {
		column = "doctor_id"
	}

	query := fmt.Sprintf(`SELECT %s FROM appointments WHERE %s = $1`, appointmentColumns, column)

	start := time.Now()
	rows, err := r.db.Query(query, ownerID)
	monitoring.RecordStoreOperation("list", "appointments", time.Since(start), err)
	if err != nil {
		r.logger.WithError(err).Errorf("Failed to list appointments for %s %s", role, ownerID)
		return nil, types.NewExternalError(types.ErrCodeStoreUnavailable, "failed to list appointments", err)
	}
	defer rows.Close()

	var appointments []*types.Appointment
	for rows.Next() {
		apt, err := scanAppointment(rows)
		if err != nil {
			r.logger.WithError(err).Error("Failed to scan appointment")
			return nil, types.NewExternalError(types.ErrCodeStoreUnavailable, "failed to scan appointment", err)
		}
		appointments = append(appointments, apt)
	}

	if err = rows.Err(); err != nil {
		return nil, types.NewExternalError(types.ErrCodeStoreUnavailable, "error iterating appointments", err)
	}

	return appointments, nil
}

// UpdateStatus persists a status transition and returns the updated record
func (r *Repository) UpdateStatus(id string, status types.AppointmentStatus) (*types.Appointment, error) {
	query := fmt.Sprintf(`
		UPDATE appointments SET status = $2, updated_at = now()
		WHERE id = $1
		RETURNING %s`, appointmentColumns)

	start := time.Now()
	apt, err := scanAppointment(r.db.QueryRow(query, id, status))
	monitoring.RecordStoreOperation("update_status", "appointments", time.Since(start), err)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.NewNotFoundError(types.ErrCodeNotFound, fmt.Sprintf("appointment not found: %s", id))
		}
		r.logger.WithError(err).Errorf("Failed to update status of appointment %s", id)
		return nil, types.NewExternalError(types.ErrCodeStoreUnavailable, "failed to update appointment status", err)
	}

	r.logger.WithAppointment(id).Infof("Updated appointment status to %s", status)
	return apt, nil
}

// UpdateSchedule persists a new slot as one atomic update. The status is
// forced to rescheduled in the same statement.
func (r *Repository) UpdateSchedule(id, newDate, newTime string) (*types.Appointment, error) {
	query := fmt.Sprintf(`
		UPDATE appointments
		SET visit_date = $2, visit_time = $3, status = $4, updated_at = now()
		WHERE id = $1
		RETURNING %s`, appointmentColumns)

	start := time.Now()
	apt, err := scanAppointment(r.db.QueryRow(query, id, newDate, newTime, types.StatusRescheduled))
	monitoring.RecordStoreOperation("update_schedule", "appointments", time.Since(start), err)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.NewNotFoundError(types.ErrCodeNotFound, fmt.Sprintf("appointment not found: %s", id))
		}
		r.logger.WithError(err).Errorf("Failed to reschedule appointment %s", id)
		return nil, types.NewExternalError(types.ErrCodeStoreUnavailable, "failed to update appointment schedule", err)
	}

	r.logger.WithAppointment(id).Infof("Rescheduled appointment to %s %s", newDate, newTime)
	return apt, nil
}

// AttachPrescription stamps the prescription id and completes the
// appointment in one statement
func (r *Repository) AttachPrescription(id, prescriptionID string) (*types.Appointment, error) {
	query := fmt.Sprintf(`
		UPDATE appointments
		SET prescription_id = $2, status = $3, updated_at = now()
		WHERE id = $1
		RETURNING %s`, appointmentColumns)

	start := time.Now()
	apt, err := scanAppointment(r.db.QueryRow(query, id, prescriptionID, types.StatusCompleted))
	monitoring.RecordStoreOperation("attach_prescription", "appointments", time.Since(start), err)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.NewNotFoundError(types.ErrCodeNotFound, fmt.Sprintf("appointment not found: %s", id))
		}
		r.logger.WithError(err).Errorf("Failed to attach prescription to appointment %s", id)
		return nil, types.NewExternalError(types.ErrCodeStoreUnavailable, "failed to attach prescription", err)
	}

	return apt, nil
}

// rowScanner covers both *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(row rowScanner) (*types.Appointment, error) {
	apt := &types.Appointment{}
	var prescriptionID sql.NullString

	err := row.Scan(
		&apt.ID,
		&apt.DoctorID,
		&apt.PatientID,
		&apt.Date,
		&apt.Time,
		&apt.Status,
		&apt.DoctorName,
		&apt.PatientName,
		&apt.Specialty,
		&prescriptionID,
		&apt.CreatedAt,
		&apt.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	apt.PrescriptionID = prescriptionID.String
	return apt, nil
}
