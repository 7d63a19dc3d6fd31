package database

import (
	"context"
	"fmt"
)

// CreateSchema creates the database schema for the booking store
func (db *DB) CreateSchema(ctx context.Context) error {
	db.logger.Info("Creating database schema...")

	tables := []string{
		createAppointmentsTable,
		createPrescriptionsTable,
		createReviewsTable,
	}

	for _, table := range tables {
		if _, err := db.ExecContext(ctx, table); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	indexes := []string{
		createAppointmentsIndexes,
		createPrescriptionsIndexes,
		createReviewsIndexes,
	}

	for _, index := range indexes {
		if _, err := db.ExecContext(ctx, index); err != nil {
			return fmt.Errorf("failed to create indexes: %w", err)
		}
	}

	db.logger.Info("Database schema created successfully")
	return nil
}

const createAppointmentsTable = `
CREATE TABLE IF NOT EXISTS appointments (
	id              TEXT PRIMARY KEY,
	doctor_id       TEXT NOT NULL,
	patient_id      TEXT NOT NULL,
	visit_date      TEXT NOT NULL,
	visit_time      TEXT NOT NULL,
	status          TEXT NOT NULL DEFAULT 'pending',
	doctor_name     TEXT NOT NULL DEFAULT '',
	patient_name    TEXT NOT NULL DEFAULT '',
	specialty       TEXT NOT NULL DEFAULT '',
	prescription_id TEXT,
	created_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at      TIMESTAMPTZ NOT NULL DEFAULT now()
);`

const createAppointmentsIndexes = `
CREATE INDEX IF NOT EXISTS idx_appointments_doctor_id ON appointments (doctor_id);
CREATE INDEX IF NOT EXISTS idx_appointments_patient_id ON appointments (patient_id);
CREATE INDEX IF NOT EXISTS idx_appointments_status ON appointments (status);`

const createPrescriptionsTable = `
CREATE TABLE IF NOT EXISTS prescriptions (
	id             TEXT PRIMARY KEY,
	appointment_id TEXT NOT NULL,
	doctor_id      TEXT NOT NULL,
	patient_id     TEXT NOT NULL,
	medications    JSONB NOT NULL DEFAULT '[]',
	notes          TEXT NOT NULL DEFAULT '',
	issued_date    TEXT NOT NULL,
	created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at     TIMESTAMPTZ NOT NULL DEFAULT now()
);`

// No unique constraint on appointment_id: the store does not enforce the
// one-prescription rule, the linkage guard does.
const createPrescriptionsIndexes = `
CREATE INDEX IF NOT EXISTS idx_prescriptions_appointment_id ON prescriptions (appointment_id);
CREATE INDEX IF NOT EXISTS idx_prescriptions_doctor_id ON prescriptions (doctor_id);`

const createReviewsTable = `
CREATE TABLE IF NOT EXISTS reviews (
	id             TEXT PRIMARY KEY,
	appointment_id TEXT NOT NULL,
	doctor_id      TEXT NOT NULL,
	patient_id     TEXT NOT NULL,
	rating         INTEGER NOT NULL,
	review_text    TEXT NOT NULL DEFAULT '',
	review_date    TEXT NOT NULL,
	created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
);`

const createReviewsIndexes = `
CREATE INDEX IF NOT EXISTS idx_reviews_doctor_id ON reviews (doctor_id);
CREATE INDEX IF NOT EXISTS idx_reviews_patient_id ON reviews (patient_id);`
