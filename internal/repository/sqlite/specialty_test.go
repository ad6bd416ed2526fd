package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpecialtyRepository_ListWithNullDescription(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	seedSpecialty(t, db, "Cardiology")
	_, err := db.ExecContext(ctx, `INSERT INTO specialties (name) VALUES ('Neurology')`)
	require.NoError(t, err)

	specialties, err := NewSpecialtyRepository(db).List(ctx)
	require.NoError(t, err)
	require.Len(t, specialties, 2)
	assert.Equal(t, "Cardiology care", specialties[0].Description)
	assert.Equal(t, "Neurology", specialties[1].Name)
	assert.Equal(t, "", specialties[1].Description)
}

func TestSpecialtyRepository_FindByIDWithNullDescription(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	res, err := db.ExecContext(ctx, `INSERT INTO specialties (name) VALUES ('Oncology')`)
	require.NoError(t, err)
	id, err := res.LastInsertId()
	require.NoError(t, err)

	specialty, err := NewSpecialtyRepository(db).FindByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, specialty)
	assert.Equal(t, "Oncology", specialty.Name)
	assert.Equal(t, "", specialty.Description)
}

func TestSpecialtyRepository_FindByIDMissing(t *testing.T) {
	db := newTestDB(t)

	specialty, err := NewSpecialtyRepository(db).FindByID(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, specialty)
}

func TestDepartmentRepository_ListWithNullDescription(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	_, err := db.ExecContext(ctx,
		`INSERT INTO departments (name, description) VALUES ('Emergency', 'Emergency and trauma care')`)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `INSERT INTO departments (name) VALUES ('Radiology')`)
	require.NoError(t, err)

	departments, err := NewDepartmentRepository(db).List(ctx)
	require.NoError(t, err)
	require.Len(t, departments, 2)
	assert.Equal(t, "Emergency and trauma care", departments[0].Description)
	assert.Equal(t, "Radiology", departments[1].Name)
	assert.Equal(t, "", departments[1].Description)
}
