package database

import (
	"database/sql"
	"log"
)

// RunMigrations creates the schema if it does not exist. Safe to run on
// every startup.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			username TEXT UNIQUE NOT NULL,
			name TEXT NOT NULL,
			phone VARCHAR(15) NOT NULL DEFAULT '',
			role VARCHAR(20) NOT NULL,
			password TEXT NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS groups (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT NOT NULL,
			meeting_days TEXT[] NOT NULL DEFAULT '{}',
			meeting_time VARCHAR(20) NOT NULL DEFAULT '',
			session_price DECIMAL(10,2) NOT NULL DEFAULT 0 CHECK (session_price >= 0),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS students (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT NOT NULL,
			phone VARCHAR(15) UNIQUE NOT NULL,
			group_id UUID REFERENCES groups(id),
			qr_token VARCHAR(20) UNIQUE NOT NULL,
			is_paid_current BOOLEAN NOT NULL DEFAULT false,
			attendance_count INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS attendance_records (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_id UUID NOT NULL REFERENCES students(id) ON DELETE CASCADE,
			group_id UUID NOT NULL,
			date DATE NOT NULL,
			status VARCHAR(10) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (student_id, date)
		)`,
		// No FK on student_id: ledger entries outlive the student and keep
		// their own name/group snapshots for audit.
		`CREATE TABLE IF NOT EXISTS transactions (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_id UUID NOT NULL,
			group_id UUID NOT NULL,
			student_name TEXT NOT NULL,
			group_name TEXT NOT NULL,
			amount DECIMAL(10,2) NOT NULL,
			date DATE NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS exams (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT NOT NULL,
			group_id UUID NOT NULL REFERENCES groups(id),
			date DATE NOT NULL,
			max_score DOUBLE PRECISION NOT NULL CHECK (max_score > 0),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS exam_scores (
			exam_id UUID NOT NULL REFERENCES exams(id) ON DELETE CASCADE,
			student_id UUID NOT NULL,
			score DOUBLE PRECISION NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			PRIMARY KEY (exam_id, student_id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_students_group ON students (group_id)`,
		`CREATE INDEX IF NOT EXISTS idx_attendance_group_date ON attendance_records (group_id, date)`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_date ON transactions (date)`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_group ON transactions (group_id)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Migration failed: %v", err)
			return err
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}
