package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/medicore/clinic-api/internal/model"
	"github.com/medicore/clinic-api/internal/repository"
	"github.com/medicore/clinic-api/pkg/apperror"
)

type doctorRepository struct {
	db *DB
}

func NewDoctorRepository(db *DB) repository.DoctorRepository {
	return &doctorRepository{db: db}
}

func (r *doctorRepository) Create(ctx context.Context, doctor *model.Doctor) (*model.Doctor, error) {
	ctx, cancel := r.db.StatementContext(ctx)
	defer cancel()

	query := `
		INSERT INTO doctors (name, email, password, specialty_id, license_number, location)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	res, err := r.db.ExecContext(ctx, query,
		doctor.Name,
		doctor.Email,
		doctor.Password,
		doctor.SpecialtyID,
		doctor.LicenseNumber,
		doctor.Location,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			return nil, apperror.Conflict("A doctor with this email or license number already exists")
		}
		return nil, fmt.Errorf("failed to create doctor: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read doctor id: %w", err)
	}
	doctor.ID = id
	return doctor, nil
}

func (r *doctorRepository) FindByID(ctx context.Context, id int64) (*model.Doctor, error) {
	return r.findOne(ctx, `SELECT * FROM doctors WHERE id = ?`, id)
}

func (r *doctorRepository) FindByEmail(ctx context.Context, email string) (*model.Doctor, error) {
	return r.findOne(ctx, `SELECT * FROM doctors WHERE email = ?`, email)
}

func (r *doctorRepository) FindByLicenseNumber(ctx context.Context, license string) (*model.Doctor, error) {
	return r.findOne(ctx, `SELECT * FROM doctors WHERE license_number = ?`, license)
}

func (r *doctorRepository) findOne(ctx context.Context, query string, arg interface{}) (*model.Doctor, error) {
	ctx, cancel := r.db.StatementContext(ctx)
	defer cancel()

	var doctor model.Doctor
	err := r.db.GetContext(ctx, &doctor, query, arg)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get doctor: %w", err)
	}
	return &doctor, nil
}

func (r *doctorRepository) Update(ctx context.Context, doctor *model.Doctor) (*model.Doctor, error) {
	ctx, cancel := r.db.StatementContext(ctx)
	defer cancel()

	query := `UPDATE doctors SET name = ?, email = ?, specialty_id = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, doctor.Name, doctor.Email, doctor.SpecialtyID, doctor.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to update doctor: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows == 0 {
		return nil, apperror.NotFound("Doctor")
	}

	var updated model.Doctor
	if err := r.db.GetContext(ctx, &updated, `SELECT * FROM doctors WHERE id = ?`, doctor.ID); err != nil {
		return nil, fmt.Errorf("failed to reload doctor: %w", err)
	}
	return &updated, nil
}

func (r *doctorRepository) UpdateSpecialty(ctx context.Context, doctorID, specialtyID int64) error {
	ctx, cancel := r.db.StatementContext(ctx)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `UPDATE doctors SET specialty_id = ? WHERE id = ?`, specialtyID, doctorID)
	if err != nil {
		return fmt.Errorf("failed to update doctor specialty: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows == 0 {
		return apperror.NotFound("Doctor")
	}
	return nil
}

type doctorSearchRow struct {
	ID            int64          `db:"id"`
	Name          string         `db:"name"`
	Email         string         `db:"email"`
	Location      string         `db:"location"`
	SpecialtyID   sql.NullInt64  `db:"matched_specialty_id"`
	SpecialtyName sql.NullString `db:"specialty_name"`
}

// Search filters doctors and joins their specialty in one statement instead
// of a per-doctor lookup loop.
func (r *doctorRepository) Search(ctx context.Context, filters *model.DoctorSearchFilters) ([]*model.DoctorSearchResult, error) {
	ctx, cancel := r.db.StatementContext(ctx)
	defer cancel()

	conditions := make([]string, 0, 3)
	params := make([]interface{}, 0, 5)

	if filters.SpecialtyID != 0 {
		conditions = append(conditions, "d.specialty_id = ?")
		params = append(params, filters.SpecialtyID)
	}
	if filters.Location != "" {
		conditions = append(conditions, "d.location LIKE ?")
		params = append(params, "%"+filters.Location+"%")
	}
	if filters.Day != "" {
		conditions = append(conditions, `EXISTS (
			SELECT 1 FROM doctor_availability a
			WHERE a.doctor_id = d.id
			  AND a.days LIKE ?
			  AND (? = '' OR a.start_time <= ?)
			  AND (? = '' OR a.end_time >= ?)
		)`)
		params = append(params,
			`%"`+filters.Day+`"%`,
			filters.StartTime, filters.StartTime,
			filters.EndTime, filters.EndTime,
		)
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	query := fmt.Sprintf(`
		SELECT d.id, d.name, d.email, d.location,
		       s.specialty_id AS matched_specialty_id,
		       s.name AS specialty_name
		FROM doctors d
		LEFT JOIN specialties s ON s.specialty_id = d.specialty_id
		%s
		ORDER BY d.id
	`, whereClause)

	var rows []doctorSearchRow
	if err := r.db.SelectContext(ctx, &rows, query, params...); err != nil {
		return nil, fmt.Errorf("failed to search doctors: %w", err)
	}

	results := make([]*model.DoctorSearchResult, 0, len(rows))
	for _, row := range rows {
		result := &model.DoctorSearchResult{
			DoctorID:    row.ID,
			Name:        row.Name,
			Email:       row.Email,
			Location:    row.Location,
			Specialties: []model.SpecialtySummary{},
		}
		if row.SpecialtyID.Valid {
			result.Specialties = append(result.Specialties, model.SpecialtySummary{
				SpecialtyID: row.SpecialtyID.Int64,
				Name:        row.SpecialtyName.String,
			})
		}
		results = append(results, result)
	}
	return results, nil
}
