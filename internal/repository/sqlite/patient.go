package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/medicore/clinic-api/internal/model"
	"github.com/medicore/clinic-api/internal/repository"
	"github.com/medicore/clinic-api/pkg/apperror"
)

type patientRepository struct {
	db *DB
}

func NewPatientRepository(db *DB) repository.PatientRepository {
	return &patientRepository{db: db}
}

func (r *patientRepository) Create(ctx context.Context, patient *model.Patient) (*model.Patient, error) {
	ctx, cancel := r.db.StatementContext(ctx)
	defer cancel()

	query := `
		INSERT INTO patients (name, email, password, date_of_birth, address)
		VALUES (?, ?, ?, ?, ?)
	`
	res, err := r.db.ExecContext(ctx, query,
		patient.Name,
		patient.Email,
		patient.Password,
		patient.DateOfBirth,
		patient.Address,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			return nil, apperror.Conflict("Patient with this email already exists")
		}
		return nil, fmt.Errorf("failed to create patient: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read patient id: %w", err)
	}
	patient.ID = id
	return patient, nil
}

func (r *patientRepository) FindByID(ctx context.Context, id int64) (*model.Patient, error) {
	ctx, cancel := r.db.StatementContext(ctx)
	defer cancel()

	var patient model.Patient
	err := r.db.GetContext(ctx, &patient, `SELECT * FROM patients WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}
	return &patient, nil
}

func (r *patientRepository) FindByName(ctx context.Context, name string) (*model.Patient, error) {
	ctx, cancel := r.db.StatementContext(ctx)
	defer cancel()

	var patient model.Patient
	err := r.db.GetContext(ctx, &patient, `SELECT * FROM patients WHERE name = ?`, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get patient by name: %w", err)
	}
	return &patient, nil
}

func (r *patientRepository) Update(ctx context.Context, patient *model.Patient) (*model.Patient, error) {
	ctx, cancel := r.db.StatementContext(ctx)
	defer cancel()

	query := `UPDATE patients SET name = ?, email = ?, address = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, patient.Name, patient.Email, patient.Address, patient.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to update patient: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows == 0 {
		return nil, apperror.NotFound("Patient")
	}
	return patient, nil
}
