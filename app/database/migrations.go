package database

import (
	"database/sql"
	"log"
)

// RunMigrations creates the schema if needed and applies incremental
// column updates. Everything here is idempotent so it can run on every
// startup.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	if err := createTables(db); err != nil {
		return err
	}

	if err := addEnrollmentSnapshotColumns(db); err != nil {
		return err
	}

	if err := addPaymentMethodColumn(db); err != nil {
		return err
	}

	if err := seedLanguages(db); err != nil {
		return err
	}

	if err := seedCashRegister(db); err != nil {
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}

func createTables(db *sql.DB) error {
	schema := `
	CREATE EXTENSION IF NOT EXISTS pgcrypto;

	CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		email TEXT UNIQUE NOT NULL,
		password TEXT NOT NULL,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		role VARCHAR(20) NOT NULL DEFAULT 'teacher',
		is_active BOOLEAN NOT NULL DEFAULT true,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		deleted_at TIMESTAMPTZ
	);

	CREATE TABLE IF NOT EXISTS languages (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name TEXT UNIQUE NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS academic_years (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name TEXT UNIQUE NOT NULL,
		start_date DATE NOT NULL,
		end_date DATE NOT NULL,
		is_current BOOLEAN NOT NULL DEFAULT false,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS students (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		student_code TEXT UNIQUE NOT NULL,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		email TEXT UNIQUE NOT NULL,
		phone_number VARCHAR(20),
		id_document_link TEXT,
		birth_date DATE,
		year_short INTEGER NOT NULL,
		number INTEGER NOT NULL,
		registration_fee_paid BOOLEAN NOT NULL DEFAULT false,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (year_short, number)
	);

	CREATE TABLE IF NOT EXISTS teachers (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		email TEXT UNIQUE NOT NULL,
		phone_number VARCHAR(20),
		specialty TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		deleted_at TIMESTAMPTZ
	);

	CREATE TABLE IF NOT EXISTS groups (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name TEXT NOT NULL,
		language_id UUID NOT NULL REFERENCES languages(id),
		level INTEGER NOT NULL DEFAULT 1,
		mode VARCHAR(30) NOT NULL,
		duration_months INTEGER NOT NULL DEFAULT 3,
		min_students INTEGER NOT NULL DEFAULT 5,
		is_old_pricing BOOLEAN NOT NULL DEFAULT false,
		start_date DATE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS group_teacher (
		group_id UUID NOT NULL REFERENCES groups(id) ON DELETE CASCADE,
		teacher_id UUID NOT NULL REFERENCES teachers(id) ON DELETE CASCADE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		PRIMARY KEY (group_id, teacher_id)
	);

	CREATE TABLE IF NOT EXISTS enrollments (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		student_id UUID NOT NULL REFERENCES students(id) ON DELETE CASCADE,
		group_id UUID NOT NULL REFERENCES groups(id) ON DELETE CASCADE,
		level INTEGER NOT NULL DEFAULT 1,
		total_course_fee NUMERIC NOT NULL,
		includes_registration_fee BOOLEAN NOT NULL DEFAULT false,
		enrollment_active BOOLEAN NOT NULL DEFAULT false,
		enrollment_date TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	CREATE INDEX IF NOT EXISTS idx_enrollments_student ON enrollments(student_id);
	CREATE INDEX IF NOT EXISTS idx_enrollments_group ON enrollments(group_id);

	CREATE TABLE IF NOT EXISTS payments (
		id UUID PRIMARY KEY,
		student_id UUID NOT NULL REFERENCES students(id) ON DELETE CASCADE,
		enrollment_id UUID NOT NULL REFERENCES enrollments(id) ON DELETE CASCADE,
		amount NUMERIC NOT NULL CHECK (amount > 0),
		payment_method VARCHAR(20) NOT NULL DEFAULT 'cash',
		receipt_link TEXT,
		payment_date TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	CREATE INDEX IF NOT EXISTS idx_payments_student ON payments(student_id);
	CREATE INDEX IF NOT EXISTS idx_payments_enrollment ON payments(enrollment_id);
	CREATE INDEX IF NOT EXISTS idx_payments_date ON payments(payment_date);

	CREATE TABLE IF NOT EXISTS cash_register_resets (
		id UUID PRIMARY KEY,
		reset_date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		reset_by TEXT NOT NULL,
		amount_in_register NUMERIC NOT NULL,
		amount_taken NUMERIC NOT NULL,
		amount_left NUMERIC NOT NULL,
		notes TEXT
	);
	CREATE INDEX IF NOT EXISTS idx_cash_resets_date ON cash_register_resets(reset_date);

	CREATE TABLE IF NOT EXISTS attendance (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		enrollment_id UUID NOT NULL REFERENCES enrollments(id) ON DELETE CASCADE,
		date DATE NOT NULL,
		status VARCHAR(20) NOT NULL,
		recorded_by TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (enrollment_id, date)
	);
	`
	if _, err := db.Exec(schema); err != nil {
		log.Printf("Failed to create tables: %v", err)
		return err
	}
	return nil
}

func addEnrollmentSnapshotColumns(db *sql.DB) error {
	query := `
		DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1
				FROM information_schema.columns
				WHERE table_name = 'enrollments'
				AND column_name = 'includes_registration_fee'
			) THEN
				ALTER TABLE enrollments ADD COLUMN includes_registration_fee BOOLEAN NOT NULL DEFAULT false;
				RAISE NOTICE 'Added includes_registration_fee column to enrollments';
			END IF;
		END $$;
	`
	if _, err := db.Exec(query); err != nil {
		log.Printf("Failed to run migration for includes_registration_fee column: %v", err)
		return err
	}
	return nil
}

func addPaymentMethodColumn(db *sql.DB) error {
	query := `
		DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1
				FROM information_schema.columns
				WHERE table_name = 'payments'
				AND column_name = 'payment_method'
			) THEN
				ALTER TABLE payments ADD COLUMN payment_method VARCHAR(20) NOT NULL DEFAULT 'cash';
				RAISE NOTICE 'Added payment_method column to payments';
			END IF;
		END $$;
	`
	if _, err := db.Exec(query); err != nil {
		log.Printf("Failed to run migration for payment_method column: %v", err)
		return err
	}
	return nil
}

func seedLanguages(db *sql.DB) error {
	for _, name := range []string{"Japanese", "Chinese", "Korean"} {
		_, err := db.Exec(`INSERT INTO languages (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, name)
		if err != nil {
			log.Printf("Failed to seed language %s: %v", name, err)
			return err
		}
	}
	return nil
}

// seedCashRegister inserts the initial zero checkpoint so balance
// reconstruction always has a base row.
func seedCashRegister(db *sql.DB) error {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM cash_register_resets`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	_, err := db.Exec(`
		INSERT INTO cash_register_resets (id, reset_by, amount_in_register, amount_taken, amount_left, notes)
		VALUES (gen_random_uuid(), 'System', 0, 0, 0, 'Initial register state')`)
	if err != nil {
		log.Printf("Failed to seed cash register: %v", err)
	}
	return err
}
