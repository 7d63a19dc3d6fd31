package reviews

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

const reviewColumns = `id, appointment_id, doctor_id, patient_id, rating, review_text, review_date, created_at`

// Repository implements the ReviewRepository interface
type Repository struct {
	db     *database.DB
	logger *logger.Logger
}

// NewRepository creates a new review repository
func NewRepository(db *database.DB, log *logger.Logger) interfaces.ReviewRepository {
	return &Repository{
		db:     db,
		logger: log,
	}
}

// Create inserts a new review record
func (r *Repository) Create(review *types.Review) error {
	query := `
		INSERT INTO reviews (
			id, appointment_id, doctor_id, patient_id, rating, review_text, review_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7)`

	start := time.Now()
	_, err := r.db.Exec(query,
		review.ID,
		review.AppointmentID,
		review.DoctorID,
		review.PatientID,
		review.Rating,
		review.ReviewText,
		review.Date,
	)
	monitoring.RecordStoreOperation("insert", "reviews", time.Since(start), err)

	if err != nil {
		r.logger.WithError(err).Error("Failed to create review")
		return types.NewExternalError(types.ErrCodeStoreUnavailable, "failed to create review", err)
	}

	r.logger.WithAppointment(review.AppointmentID).Infof("Created review %s", review.ID)
	return nil
}

// ListByDoctor retrieves all reviews for a doctor
func (r *Repository) ListByDoctor(doctorID string) ([]*types.Review, error) {
	return r.listByColumn("doctor_id", doctorID)
}

// ListByPatient retrieves all reviews written by a patient
func (r *Repository) ListByPatient(patientID string) ([]*types.Review, error) {
	return r.listByColumn("patient_id", patientID)
}

// GetByAppointment retrieves the review for an appointment, if any
func (r *Repository) GetByAppointment(appointmentID string) (*types.Review, error) {
	query := fmt.Sprintf(`SELECT %s FROM reviews WHERE appointment_id = $1`, reviewColumns)

	review, err := scanReview(r.db.QueryRow(query, appointmentID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.NewNotFoundError(types.ErrCodeNotFound,
				fmt.Sprintf("no review for appointment: %s", appointmentID))
		}
		r.logger.WithError(err).Errorf("Failed to get review for appointment %s", appointmentID)
		return nil, types.NewExternalError(types.ErrCodeStoreUnavailable, "failed to get review", err)
	}

	return review, nil
}

func (r *Repository) listByColumn(column, value string) ([]*types.Review, error) {
	query := fmt.Sprintf(`SELECT %s FROM reviews WHERE %s = $1`, reviewColumns, column)

	start := time.Now()
	rows, err := r.db.Query(query, value)
	monitoring.RecordStoreOperation("list", "reviews", time.Since(start), err)
	if err != nil {
		r.logger.WithError(err).Errorf("Failed to list reviews by %s", column)
		return nil, types.NewExternalError(types.ErrCodeStoreUnavailable, "failed to list reviews", err)
	}
	defer rows.Close()

	var reviews []*types.Review
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			r.logger.WithError(err).Error("Failed to scan review")
			return nil, types.NewExternalError(types.ErrCodeStoreUnavailable, "failed to scan review", err)
		}
		reviews = append(reviews, review)
	}

	if err = rows.Err(); err != nil {
		return nil, types.NewExternalError(types.ErrCodeStoreUnavailable, "error iterating reviews", err)
	}

	return reviews, nil
}

// rowScanner covers both *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReview(row rowScanner) (*types.Review, error) {
	review := &types.Review{}

	err := row.Scan(
		&review.ID,
		&review.AppointmentID,
		&review.DoctorID,
		&review.PatientID,
		&review.Rating,
		&review.ReviewText,
		&review.Date,
		&review.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return review, nil
}
