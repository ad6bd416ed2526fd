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

type appointmentRepository struct {
	db *DB
}

func NewAppointmentRepository(db *DB) repository.AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *model.Appointment) (*model.Appointment, error) {
	ctx, cancel := r.db.StatementContext(ctx)
	defer cancel()

	query := `
		INSERT INTO appointments (patient_id, doctor_id, appointment_date, reason, status)
		VALUES (?, ?, ?, ?, ?)
	`
	res, err := r.db.ExecContext(ctx, query,
		appointment.PatientID,
		appointment.DoctorID,
		appointment.AppointmentDate,
		appointment.Reason,
		appointment.Status,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read appointment id: %w", err)
	}
	appointment.AppointmentID = id
	return appointment, nil
}

func (r *appointmentRepository) FindByID(ctx context.Context, id int64) (*model.Appointment, error) {
	ctx, cancel := r.db.StatementContext(ctx)
	defer cancel()

	var appointment model.Appointment
	err := r.db.GetContext(ctx, &appointment, `SELECT * FROM appointments WHERE appointment_id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}
	return &appointment, nil
}

func (r *appointmentRepository) ListByPatient(ctx context.Context, patientID int64) ([]*model.Appointment, error) {
	return r.list(ctx, `SELECT * FROM appointments WHERE patient_id = ? ORDER BY appointment_id`, patientID)
}

func (r *appointmentRepository) ListByDoctor(ctx context.Context, doctorID int64) ([]*model.Appointment, error) {
	return r.list(ctx, `SELECT * FROM appointments WHERE doctor_id = ? ORDER BY appointment_id`, doctorID)
}

func (r *appointmentRepository) list(ctx context.Context, query string, arg interface{}) ([]*model.Appointment, error) {
	ctx, cancel := r.db.StatementContext(ctx)
	defer cancel()

	var appointments []*model.Appointment
	if err := r.db.SelectContext(ctx, &appointments, query, arg); err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appointments, nil
}

// Reschedule updates the date and flips status in place; cancellation is a
// row delete, so there is no transition out of Cancelled.
func (r *appointmentRepository) Reschedule(ctx context.Context, id int64, date string) (*model.Appointment, error) {
	ctx, cancel := r.db.StatementContext(ctx)
	defer cancel()

	query := `UPDATE appointments SET appointment_date = ?, status = ? WHERE appointment_id = ?`
	res, err := r.db.ExecContext(ctx, query, date, model.AppointmentStatusRescheduled, id)
	if err != nil {
		return nil, fmt.Errorf("failed to reschedule appointment: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows == 0 {
		return nil, apperror.NotFound("Appointment")
	}

	var appointment model.Appointment
	if err := r.db.GetContext(ctx, &appointment, `SELECT * FROM appointments WHERE appointment_id = ?`, id); err != nil {
		return nil, fmt.Errorf("failed to reload appointment: %w", err)
	}
	return &appointment, nil
}

func (r *appointmentRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := r.db.StatementContext(ctx)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `DELETE FROM appointments WHERE appointment_id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete appointment: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows == 0 {
		return apperror.NotFound("Appointment")
	}
	return nil
}
