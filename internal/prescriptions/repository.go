package prescriptions

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ShahbazAhmad08/Docto-booking2nd/pkg/database"
	"github.com/ShahbazAhmad08/Docto-booking2nd/pkg/interfaces"
	"github.com/ShahbazAhmad08/Docto-booking2nd/pkg/logger"
	"github.com/ShahbazAhmad08/Docto-booking2nd/pkg/monitoring"
	"github.com/ShahbazAhmad08/Docto-booking2nd/pkg/types"
)

const prescriptionColumns = `id, appointment_id, doctor_id, patient_id, medications,
	   notes, issued_date, created_at, updated_at`

// Repository implements the PrescriptionRepository interface
type Repository struct {
	db     *database.DB
	logger *logger.Logger
}

// NewRepository creates a new prescription repository
func NewRepository(db *database.DB, log *logger.Logger) interfaces.PrescriptionRepository {
	return &Repository{
		db:     db,
		logger: log,
	}
}

// Create inserts a new prescription record. No uniqueness per appointment
// is enforced here; the linkage guard runs before this is reached.
func (r *Repository) Create(p *types.Prescription) error {
	medications, err := json.Marshal(p.Medications)
	if err != nil {
		return types.NewInternalError(types.ErrCodeInternalError, "failed to encode medications", err)
	}

	query := `
		INSERT INTO prescriptions (
			id, appointment_id, doctor_id, patient_id, medications, notes, issued_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7)`

	start := time.Now()
	_, err = r.db.Exec(query,
		p.ID,
		p.AppointmentID,
		p.DoctorID,
		p.PatientID,
		medications,
		p.Notes,
		p.Date,
	)
	monitoring.RecordStoreOperation("insert", "prescriptions", time.Since(start), err)

	if err != nil {
		r.logger.WithError(err).Error("Failed to create prescription")
		return types.NewExternalError(types.ErrCodeStoreUnavailable, "failed to create prescription", err)
	}

	r.logger.WithAppointment(p.AppointmentID).Infof("Created prescription %s", p.ID)
	return nil
}

// GetByID retrieves a prescription by ID
func (r *Repository) GetByID(id string) (*types.Prescription, error) {
	query := fmt.Sprintf(`SELECT %s FROM prescriptions WHERE id = $1`, prescriptionColumns)

	p, err := scanPrescription(r.db.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.NewNotFoundError(types.ErrCodeNotFound, fmt.Sprintf("prescription not found: %s", id))
		}
		r.logger.WithError(err).Errorf("Failed to get prescription %s", id)
		return nil, types.NewExternalError(types.ErrCodeStoreUnavailable, "failed to get prescription", err)
	}

	return p, nil
}

// ListByDoctor retrieves all prescriptions written by a doctor
func (r *Repository) ListByDoctor(doctorID string) ([]*types.Prescription, error) {
	return r.listByColumn("doctor_id", doctorID)
}

// ListByPatient retrieves all prescriptions issued to a patient
func (r *Repository) ListByPatient(patientID string) ([]*types.Prescription, error) {
	return r.listByColumn("patient_id", patientID)
}

// ListByAppointment retrieves the prescriptions linked to an appointment.
// The guard keeps this at most one record long in practice.
func (r *Repository) ListByAppointment(appointmentID string) ([]*types.Prescription, error) {
	return r.listByColumn("appointment_id", appointmentID)
}

func (r *Repository) listByColumn(column, value string) ([]*types.Prescription, error) {
	query := fmt.Sprintf(`SELECT %s FROM prescriptions WHERE %s = $1`, prescriptionColumns, column)

	start := time.Now()
	rows, err := r.db.Query(query, value)
	monitoring.RecordStoreOperation("list", "prescriptions", time.Since(start), err)
	if err != nil {
		r.logger.WithError(err).Errorf("Failed to list prescriptions by %s", column)
		return nil, types.NewExternalError(types.ErrCodeStoreUnavailable, "failed to list prescriptions", err)
	}
	defer rows.Close()

	var prescriptions []*types.Prescription
	for rows.Next() {
		p, err := scanPrescription(rows)
		if err != nil {
			r.logger.WithError(err).Error("Failed to scan prescription")
			return nil, types.NewExternalError(types.ErrCodeStoreUnavailable, "failed to scan prescription", err)
		}
		prescriptions = append(prescriptions, p)
	}

	if err = rows.Err(); err != nil {
		return nil, types.NewExternalError(types.ErrCodeStoreUnavailable, "error iterating prescriptions", err)
	}

	return prescriptions, nil
}

// Update applies a partial update and returns the updated record. The
// appointment linkage is immutable and never part of the statement.
func (r *Repository) Update(id string, updates *types.PrescriptionUpdates) (*types.Prescription, error) {
	current, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}

	medications := current.Medications
	if updates.Medications != nil {
		medications = updates.Medications
	}
	notes := current.Notes
	if updates.Notes != nil {
		notes = *updates.Notes
	}

	encoded, err := json.Marshal(medications)
	if err != nil {
		return nil, types.NewInternalError(types.ErrCodeInternalError, "failed to encode medications", err)
	}

	query := fmt.Sprintf(`
		UPDATE prescriptions
		SET medications = $2, notes = $3, updated_at = now()
		WHERE id = $1
		RETURNING %s`, prescriptionColumns)

	start := time.Now()
	p, err := scanPrescription(r.db.QueryRow(query, id, encoded, notes))
	monitoring.RecordStoreOperation("update", "prescriptions", time.Since(start), err)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.NewNotFoundError(types.ErrCodeNotFound, fmt.Sprintf("prescription not found: %s", id))
		}
		r.logger.WithError(err).Errorf("Failed to update prescription %s", id)
		return nil, types.NewExternalError(types.ErrCodeStoreUnavailable, "failed to update prescription", err)
	}

	return p, nil
}

// Delete removes a prescription. Unknown ids are a not-found error.
func (r *Repository) Delete(id string) error {
	query := `DELETE FROM prescriptions WHERE id = $1`

	start := time.Now()
	result, err := r.db.Exec(query, id)
	monitoring.RecordStoreOperation("delete", "prescriptions", time.Since(start), err)

	if err != nil {
		r.logger.WithError(err).Errorf("Failed to delete prescription %s", id)
		return types.NewExternalError(types.ErrCodeStoreUnavailable, "failed to delete prescription", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return types.NewExternalError(types.ErrCodeStoreUnavailable, "failed to delete prescription", err)
	}
	if affected == 0 {
		return types.NewNotFoundError(types.ErrCodeNotFound, fmt.Sprintf("prescription not found: %s", id))
	}

	r.logger.Infof("Deleted prescription %s", id)
	return nil
}

// rowScanner covers both *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPrescription(row rowScanner) (*types.Prescription, error) {
	p := &types.Prescription{}
	var medications []byte

	err := row.Scan(
		&p.ID,
		&p.AppointmentID,
		&p.DoctorID,
		&p.PatientID,
		&medications,
		&p.Notes,
		&p.Date,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(medications) > 0 {
		if err := json.Unmarshal(medications, &p.Medications); err != nil {
			return nil, err
		}
	}

	return p, nil
}
