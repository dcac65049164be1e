package database

import (
	"database/sql"
	"log"
)

// RunMigrations creates the schema and applies incremental updates.
// Everything here is idempotent so it can run on every startup.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	tables := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			first_name VARCHAR(255) NOT NULL,
			last_name VARCHAR(255) NOT NULL,
			phone VARCHAR(20),
			is_active BOOLEAN DEFAULT true,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			deleted_at TIMESTAMP WITH TIME ZONE
		)`,
		`CREATE TABLE IF NOT EXISTS roles (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(50) UNIQUE NOT NULL,
			is_active BOOLEAN DEFAULT true,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			deleted_at TIMESTAMP WITH TIME ZONE
		)`,
		`CREATE TABLE IF NOT EXISTS user_roles (
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			role_id UUID NOT NULL REFERENCES roles(id) ON DELETE CASCADE,
			PRIMARY KEY (user_id, role_id)
		)`,
		`CREATE TABLE IF NOT EXISTS students (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_code VARCHAR(50) UNIQUE NOT NULL,
			first_name VARCHAR(255) NOT NULL,
			last_name VARCHAR(255) NOT NULL,
			gender VARCHAR(10),
			class_name VARCHAR(100) NOT NULL,
			is_active BOOLEAN DEFAULT true,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			deleted_at TIMESTAMP WITH TIME ZONE
		)`,
		`CREATE TABLE IF NOT EXISTS fees (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_id UUID NOT NULL REFERENCES students(id) ON DELETE CASCADE,
			kind VARCHAR(20) NOT NULL DEFAULT 'tuition',
			title VARCHAR(255) NOT NULL,
			amount BIGINT NOT NULL,
			balance BIGINT NOT NULL DEFAULT 0,
			paid BOOLEAN DEFAULT false,
			due_date DATE NOT NULL,
			paid_at TIMESTAMP WITH TIME ZONE,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			deleted_at TIMESTAMP WITH TIME ZONE
		)`,
		`CREATE TABLE IF NOT EXISTS expenses (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			title VARCHAR(255) NOT NULL,
			category VARCHAR(30) NOT NULL,
			amount BIGINT NOT NULL,
			payee VARCHAR(255) NOT NULL DEFAULT '',
			teacher_id UUID REFERENCES users(id) ON DELETE SET NULL,
			date DATE NOT NULL,
			method VARCHAR(20) NOT NULL DEFAULT 'Cash',
			status VARCHAR(10) NOT NULL DEFAULT 'Pending',
			description TEXT,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			deleted_at TIMESTAMP WITH TIME ZONE
		)`,
		`CREATE TABLE IF NOT EXISTS events (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			title VARCHAR(255) NOT NULL,
			description TEXT,
			start_date TIMESTAMP WITH TIME ZONE NOT NULL,
			end_date TIMESTAMP WITH TIME ZONE NOT NULL,
			audience VARCHAR(20) NOT NULL DEFAULT 'all',
			location VARCHAR(255),
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
	}

	for _, q := range tables {
		if _, err := db.Exec(q); err != nil {
			log.Printf("Error creating tables: %v", err)
			return err
		}
	}

	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_expenses_category ON expenses(category)`,
		`CREATE INDEX IF NOT EXISTS idx_expenses_date ON expenses(date)`,
		`CREATE INDEX IF NOT EXISTS idx_expenses_status ON expenses(status)`,
		`CREATE INDEX IF NOT EXISTS idx_expenses_deleted_at ON expenses(deleted_at)`,
		`CREATE INDEX IF NOT EXISTS idx_fees_student_id ON fees(student_id)`,
		`CREATE INDEX IF NOT EXISTS idx_fees_deleted_at ON fees(deleted_at)`,
		`CREATE INDEX IF NOT EXISTS idx_students_class_name ON students(class_name)`,
		`CREATE INDEX IF NOT EXISTS idx_events_start_date ON events(start_date)`,
	}

	for _, q := range indexes {
		if _, err := db.Exec(q); err != nil {
			// Duplicate index errors differ across PG versions, keep going.
			log.Printf("Error creating index: %v", err)
		}
	}

	seeds := []string{
		`INSERT INTO roles (name) VALUES ('admin') ON CONFLICT (name) DO NOTHING`,
		`INSERT INTO roles (name) VALUES ('bursar') ON CONFLICT (name) DO NOTHING`,
		`INSERT INTO roles (name) VALUES ('teacher') ON CONFLICT (name) DO NOTHING`,
		`INSERT INTO roles (name) VALUES ('student') ON CONFLICT (name) DO NOTHING`,
	}

	for _, q := range seeds {
		if _, err := db.Exec(q); err != nil {
			log.Printf("Error seeding roles: %v", err)
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}
