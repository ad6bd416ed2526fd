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

type adminRepository struct {
	db *DB
}

func NewAdminRepository(db *DB) repository.AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) Create(ctx context.Context, admin *model.Admin) (*model.Admin, error) {
	ctx, cancel := r.db.StatementContext(ctx)
	defer cancel()

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO admins (name, email, password) VALUES (?, ?, ?)`,
		admin.Name, admin.Email, admin.Password,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			return nil, apperror.Conflict("Admin with this email already exists")
		}
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read admin id: %w", err)
	}
	admin.ID = id
	return admin, nil
}

func (r *adminRepository) FindByID(ctx context.Context, id int64) (*model.Admin, error) {
	ctx, cancel := r.db.StatementContext(ctx)
	defer cancel()

	var admin model.Admin
	err := r.db.GetContext(ctx, &admin, `SELECT * FROM admins WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}
	return &admin, nil
}

func (r *adminRepository) FindByEmail(ctx context.Context, email string) (*model.Admin, error) {
	ctx, cancel := r.db.StatementContext(ctx)
	defer cancel()

	var admin model.Admin
	err := r.db.GetContext(ctx, &admin, `SELECT * FROM admins WHERE email = ?`, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get admin by email: %w", err)
	}
	return &admin, nil
}

func (r *adminRepository) Update(ctx context.Context, id int64, name, email string) (*model.Admin, error) {
	ctx, cancel := r.db.StatementContext(ctx)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `UPDATE admins SET name = ?, email = ? WHERE id = ?`, name, email, id)
	if err != nil {
		return nil, fmt.Errorf("failed to update admin: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows == 0 {
		return nil, apperror.NotFound("Admin")
	}

	return &model.Admin{ID: id, Name: name, Email: email}, nil
}
