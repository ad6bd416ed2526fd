package sqlite

import "context"

// Schema creation is idempotent and runs once at process start; it is the
// only migration mechanism.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS patients (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL,
		date_of_birth TEXT NOT NULL,
		address TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS doctors (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL,
		specialty_id INTEGER NOT NULL DEFAULT 0,
		license_number TEXT NOT NULL UNIQUE,
		location TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS admins (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS appointments (
		appointment_id INTEGER PRIMARY KEY AUTOINCREMENT,
		patient_id INTEGER NOT NULL,
		doctor_id INTEGER NOT NULL,
		appointment_date TEXT NOT NULL,
		reason TEXT NOT NULL,
		status TEXT NOT NULL,
		FOREIGN KEY (patient_id) REFERENCES patients(id) ON DELETE CASCADE,
		FOREIGN KEY (doctor_id) REFERENCES doctors(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS doctor_availability (
		availability_id INTEGER PRIMARY KEY AUTOINCREMENT,
		doctor_id INTEGER NOT NULL,
		start_time TEXT NOT NULL,
		end_time TEXT NOT NULL,
		days TEXT NOT NULL,
		FOREIGN KEY (doctor_id) REFERENCES doctors(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS medical_records (
		record_id INTEGER PRIMARY KEY AUTOINCREMENT,
		patient_id INTEGER NOT NULL,
		doctor_id INTEGER NOT NULL,
		diagnosis TEXT,
		prescriptions TEXT,
		notes TEXT,
		ongoing_treatments TEXT,
		created_at TEXT NOT NULL,
		updated_at TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS test_results (
		test_result_id INTEGER PRIMARY KEY AUTOINCREMENT,
		record_id INTEGER NOT NULL,
		test_name TEXT NOT NULL,
		result TEXT NOT NULL,
		date TEXT NOT NULL,
		FOREIGN KEY (record_id) REFERENCES medical_records(record_id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS specialties (
		specialty_id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		description TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS departments (
		department_id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		description TEXT
	)`,
}

// Migrate creates the schema if it does not exist.
func (d *DB) Migrate(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := d.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
