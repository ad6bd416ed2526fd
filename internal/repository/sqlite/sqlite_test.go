package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/medicore/clinic-api/internal/config"
	"github.com/medicore/clinic-api/internal/model"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := NewDB(config.DatabaseConfig{File: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.Migrate(context.Background()))
	return db
}

func seedPatient(t *testing.T, db *DB, name, email string) *model.Patient {
	t.Helper()

	created, err := NewPatientRepository(db).Create(context.Background(), &model.Patient{
		Name:        name,
		Email:       email,
		Password:    "hashed",
		DateOfBirth: "1990-01-01",
		Address:     "12 High Street",
	})
	require.NoError(t, err)
	return created
}

func seedDoctor(t *testing.T, db *DB, name, email, license string, specialtyID int64) *model.Doctor {
	t.Helper()

	created, err := NewDoctorRepository(db).Create(context.Background(), &model.Doctor{
		Name:          name,
		Email:         email,
		Password:      "hashed",
		SpecialtyID:   specialtyID,
		LicenseNumber: license,
	})
	require.NoError(t, err)
	return created
}

func seedSpecialty(t *testing.T, db *DB, name string) int64 {
	t.Helper()

	res, err := db.ExecContext(context.Background(),
		`INSERT INTO specialties (name, description) VALUES (?, ?)`, name, name+" care")
	require.NoError(t, err)

	id, err := res.LastInsertId()
	require.NoError(t, err)
	return id
}
