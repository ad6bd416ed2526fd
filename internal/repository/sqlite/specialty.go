package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/medicore/clinic-api/internal/model"
	"github.com/medicore/clinic-api/internal/repository"
)

type specialtyRepository struct {
	db *DB
}

func NewSpecialtyRepository(db *DB) repository.SpecialtyRepository {
	return &specialtyRepository{db: db}
}

// specialtyRow tolerates a NULL description in rows seeded outside the API.
type specialtyRow struct {
	SpecialtyID int64          `db:"specialty_id"`
	Name        string         `db:"name"`
	Description sql.NullString `db:"description"`
}

func (row *specialtyRow) toModel() *model.Specialty {
	return &model.Specialty{
		SpecialtyID: row.SpecialtyID,
		Name:        row.Name,
		Description: row.Description.String,
	}
}

func (r *specialtyRepository) List(ctx context.Context) ([]*model.Specialty, error) {
	ctx, cancel := r.db.StatementContext(ctx)
	defer cancel()

	var rows []*specialtyRow
	err := r.db.SelectContext(ctx, &rows, `SELECT * FROM specialties ORDER BY specialty_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list specialties: %w", err)
	}
	specialties := make([]*model.Specialty, 0, len(rows))
	for _, row := range rows {
		specialties = append(specialties, row.toModel())
	}
	return specialties, nil
}

func (r *specialtyRepository) FindByID(ctx context.Context, id int64) (*model.Specialty, error) {
	ctx, cancel := r.db.StatementContext(ctx)
	defer cancel()

	var row specialtyRow
	err := r.db.GetContext(ctx, &row, `SELECT * FROM specialties WHERE specialty_id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get specialty: %w", err)
	}
	return row.toModel(), nil
}
