package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/medicore/clinic-api/internal/model"
	"github.com/medicore/clinic-api/internal/repository"
)

type departmentRepository struct {
	db *DB
}

func NewDepartmentRepository(db *DB) repository.DepartmentRepository {
	return &departmentRepository{db: db}
}

// departmentRow tolerates a NULL description in rows seeded outside the API.
type departmentRow struct {
	DepartmentID int64          `db:"department_id"`
	Name         string         `db:"name"`
	Description  sql.NullString `db:"description"`
}

func (r *departmentRepository) List(ctx context.Context) ([]*model.Department, error) {
	ctx, cancel := r.db.StatementContext(ctx)
	defer cancel()

	var rows []*departmentRow
	err := r.db.SelectContext(ctx, &rows, `SELECT * FROM departments ORDER BY department_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	departments := make([]*model.Department, 0, len(rows))
	for _, row := range rows {
		departments = append(departments, &model.Department{
			DepartmentID: row.DepartmentID,
			Name:         row.Name,
			Description:  row.Description.String,
		})
	}
	return departments, nil
}
