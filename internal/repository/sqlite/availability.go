package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/medicore/clinic-api/internal/model"
	"github.com/medicore/clinic-api/internal/repository"
)

type availabilityRepository struct {
	db *DB
}

func NewAvailabilityRepository(db *DB) repository.AvailabilityRepository {
	return &availabilityRepository{db: db}
}

type availabilityRow struct {
	AvailabilityID int64  `db:"availability_id"`
	DoctorID       int64  `db:"doctor_id"`
	StartTime      string `db:"start_time"`
	EndTime        string `db:"end_time"`
	Days           string `db:"days"`
}

func (r *availabilityRepository) Create(ctx context.Context, availability *model.Availability) (*model.Availability, error) {
	ctx, cancel := r.db.StatementContext(ctx)
	defer cancel()

	days, err := json.Marshal(availability.Days)
	if err != nil {
		return nil, fmt.Errorf("failed to encode days: %w", err)
	}

	var res sql.Result
	res, err = r.db.ExecContext(ctx, `
		INSERT INTO doctor_availability (doctor_id, start_time, end_time, days)
		VALUES (?, ?, ?, ?)
	`,
		availability.DoctorID,
		availability.StartTime,
		availability.EndTime,
		string(days),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create availability: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read availability id: %w", err)
	}
	availability.AvailabilityID = id
	return availability, nil
}

func (r *availabilityRepository) ListByDoctor(ctx context.Context, doctorID int64) ([]*model.Availability, error) {
	ctx, cancel := r.db.StatementContext(ctx)
	defer cancel()

	var rows []availabilityRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT * FROM doctor_availability WHERE doctor_id = ? ORDER BY availability_id
	`, doctorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list availability: %w", err)
	}

	availability := make([]*model.Availability, 0, len(rows))
	for _, row := range rows {
		slot := &model.Availability{
			AvailabilityID: row.AvailabilityID,
			DoctorID:       row.DoctorID,
			StartTime:      row.StartTime,
			EndTime:        row.EndTime,
			Days:           []string{},
		}
		if row.Days != "" {
			if err := json.Unmarshal([]byte(row.Days), &slot.Days); err != nil {
				return nil, fmt.Errorf("failed to decode days: %w", err)
			}
		}
		availability = append(availability, slot)
	}
	return availability, nil
}
