package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medicore/clinic-api/internal/model"
	"github.com/medicore/clinic-api/pkg/apperror"
)

func seedAppointment(t *testing.T, db *DB, patientID, doctorID int64) *model.Appointment {
	t.Helper()

	created, err := NewAppointmentRepository(db).Create(context.Background(), &model.Appointment{
		PatientID:       patientID,
		DoctorID:        doctorID,
		AppointmentDate: "2026-09-15T10:00:00Z",
		Reason:          "Checkup",
		Status:          model.AppointmentStatusBooked,
	})
	require.NoError(t, err)
	return created
}

func TestAppointmentRepository_Lifecycle(t *testing.T) {
	db := newTestDB(t)
	repo := NewAppointmentRepository(db)
	ctx := context.Background()

	patient := seedPatient(t, db, "Jane Roe", "jane@example.com")
	doctor := seedDoctor(t, db, "Dr. Smith", "smith@example.com", "LIC-100", 0)

	created := seedAppointment(t, db, patient.ID, doctor.ID)
	assert.NotZero(t, created.AppointmentID)
	assert.Equal(t, model.AppointmentStatusBooked, created.Status)

	rescheduled, err := repo.Reschedule(ctx, created.AppointmentID, "2026-09-20T14:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, "2026-09-20T14:00:00Z", rescheduled.AppointmentDate)
	assert.Equal(t, model.AppointmentStatusRescheduled, rescheduled.Status)

	require.NoError(t, repo.Delete(ctx, created.AppointmentID))

	gone, err := repo.FindByID(ctx, created.AppointmentID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestAppointmentRepository_ListByPatientAndDoctor(t *testing.T) {
	db := newTestDB(t)
	repo := NewAppointmentRepository(db)
	ctx := context.Background()

	patient := seedPatient(t, db, "Jane Roe", "jane@example.com")
	other := seedPatient(t, db, "John Roe", "john@example.com")
	doctor := seedDoctor(t, db, "Dr. Smith", "smith@example.com", "LIC-100", 0)

	seedAppointment(t, db, patient.ID, doctor.ID)
	seedAppointment(t, db, patient.ID, doctor.ID)
	seedAppointment(t, db, other.ID, doctor.ID)

	byPatient, err := repo.ListByPatient(ctx, patient.ID)
	require.NoError(t, err)
	assert.Len(t, byPatient, 2)

	byDoctor, err := repo.ListByDoctor(ctx, doctor.ID)
	require.NoError(t, err)
	assert.Len(t, byDoctor, 3)

	empty, err := repo.ListByPatient(ctx, 999)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestAppointmentRepository_MissingRowIsNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewAppointmentRepository(db)
	ctx := context.Background()

	_, err := repo.Reschedule(ctx, 999, "2026-09-20T14:00:00Z")
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))

	err = repo.Delete(ctx, 999)
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}
