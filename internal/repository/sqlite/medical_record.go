package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/medicore/clinic-api/internal/model"
	"github.com/medicore/clinic-api/internal/repository"
	"github.com/medicore/clinic-api/pkg/apperror"
)

type medicalRecordRepository struct {
	db *DB
}

func NewMedicalRecordRepository(db *DB) repository.MedicalRecordRepository {
	return &medicalRecordRepository{db: db}
}

type medicalRecordRow struct {
	RecordID          int64          `db:"record_id"`
	PatientID         int64          `db:"patient_id"`
	DoctorID          int64          `db:"doctor_id"`
	Diagnosis         sql.NullString `db:"diagnosis"`
	Prescriptions     sql.NullString `db:"prescriptions"`
	Notes             sql.NullString `db:"notes"`
	OngoingTreatments sql.NullString `db:"ongoing_treatments"`
	CreatedAt         string         `db:"created_at"`
	UpdatedAt         sql.NullString `db:"updated_at"`
}

// Create writes the parent row and its test results in one transaction so a
// crash cannot leave a record without its children.
func (r *medicalRecordRepository) Create(ctx context.Context, record *model.MedicalRecord) (*model.MedicalRecord, error) {
	ctx, cancel := r.db.StatementContext(ctx)
	defer cancel()

	prescriptions, treatments, err := encodeListColumns(record)
	if err != nil {
		return nil, err
	}
	record.CreatedAt = time.Now().UTC().Format(time.RFC3339)

	err = r.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, `
			INSERT INTO medical_records (patient_id, doctor_id, diagnosis, prescriptions, notes, ongoing_treatments, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`,
			record.PatientID,
			record.DoctorID,
			record.Diagnosis,
			prescriptions,
			record.Notes,
			treatments,
			record.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to create medical record: %w", err)
		}

		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to read record id: %w", err)
		}
		record.RecordID = id

		return insertTestResults(ctx, tx, id, record.TestResults)
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}

func (r *medicalRecordRepository) FindByID(ctx context.Context, id int64) (*model.MedicalRecord, error) {
	ctx, cancel := r.db.StatementContext(ctx)
	defer cancel()

	var row medicalRecordRow
	err := r.db.GetContext(ctx, &row, `SELECT * FROM medical_records WHERE record_id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get medical record: %w", err)
	}

	record, err := decodeRecordRow(&row)
	if err != nil {
		return nil, err
	}

	var results []model.TestResult
	err = r.db.SelectContext(ctx, &results,
		`SELECT * FROM test_results WHERE record_id = ? ORDER BY test_result_id`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get test results: %w", err)
	}
	if results == nil {
		results = []model.TestResult{}
	}
	record.TestResults = results
	return record, nil
}

func (r *medicalRecordRepository) ListByPatient(ctx context.Context, patientID int64) ([]*model.MedicalRecord, error) {
	ctx, cancel := r.db.StatementContext(ctx)
	defer cancel()

	var rows []medicalRecordRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT * FROM medical_records WHERE patient_id = ? ORDER BY record_id`, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list medical records: %w", err)
	}

	records := make([]*model.MedicalRecord, 0, len(rows))
	for i := range rows {
		record, err := decodeRecordRow(&rows[i])
		if err != nil {
			return nil, err
		}

		var results []model.TestResult
		err = r.db.SelectContext(ctx, &results,
			`SELECT * FROM test_results WHERE record_id = ? ORDER BY test_result_id`, record.RecordID)
		if err != nil {
			return nil, fmt.Errorf("failed to get test results: %w", err)
		}
		if results == nil {
			results = []model.TestResult{}
		}
		record.TestResults = results
		records = append(records, record)
	}
	return records, nil
}

// Update overwrites the parent row and replaces the test results wholesale
// (delete-all-then-reinsert), all within one transaction.
func (r *medicalRecordRepository) Update(ctx context.Context, record *model.MedicalRecord) (*model.MedicalRecord, error) {
	ctx, cancel := r.db.StatementContext(ctx)
	defer cancel()

	prescriptions, treatments, err := encodeListColumns(record)
	if err != nil {
		return nil, err
	}
	record.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	err = r.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, `
			UPDATE medical_records
			SET diagnosis = ?, prescriptions = ?, notes = ?, ongoing_treatments = ?, updated_at = ?
			WHERE record_id = ?
		`,
			record.Diagnosis,
			prescriptions,
			record.Notes,
			treatments,
			record.UpdatedAt,
			record.RecordID,
		)
		if err != nil {
			return fmt.Errorf("failed to update medical record: %w", err)
		}

		rows, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to read affected rows: %w", err)
		}
		if rows == 0 {
			return apperror.NotFound("Medical record")
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM test_results WHERE record_id = ?`, record.RecordID); err != nil {
			return fmt.Errorf("failed to clear test results: %w", err)
		}
		return insertTestResults(ctx, tx, record.RecordID, record.TestResults)
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}

func insertTestResults(ctx context.Context, tx *sqlx.Tx, recordID int64, results []model.TestResult) error {
	for i := range results {
		res, err := tx.ExecContext(ctx, `
			INSERT INTO test_results (record_id, test_name, result, date)
			VALUES (?, ?, ?, ?)
		`, recordID, results[i].TestName, results[i].Result, results[i].Date)
		if err != nil {
			return fmt.Errorf("failed to insert test result: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to read test result id: %w", err)
		}
		results[i].TestResultID = id
		results[i].RecordID = recordID
	}
	return nil
}

func encodeListColumns(record *model.MedicalRecord) (prescriptions, treatments string, err error) {
	if record.Prescriptions == nil {
		record.Prescriptions = []string{}
	}
	if record.OngoingTreatments == nil {
		record.OngoingTreatments = []string{}
	}

	p, err := json.Marshal(record.Prescriptions)
	if err != nil {
		return "", "", fmt.Errorf("failed to encode prescriptions: %w", err)
	}
	t, err := json.Marshal(record.OngoingTreatments)
	if err != nil {
		return "", "", fmt.Errorf("failed to encode ongoing treatments: %w", err)
	}
	return string(p), string(t), nil
}

func decodeRecordRow(row *medicalRecordRow) (*model.MedicalRecord, error) {
	record := &model.MedicalRecord{
		RecordID:          row.RecordID,
		PatientID:         row.PatientID,
		DoctorID:          row.DoctorID,
		Diagnosis:         row.Diagnosis.String,
		Notes:             row.Notes.String,
		Prescriptions:     []string{},
		OngoingTreatments: []string{},
		CreatedAt:         row.CreatedAt,
		UpdatedAt:         row.UpdatedAt.String,
	}

	if row.Prescriptions.Valid && row.Prescriptions.String != "" {
		if err := json.Unmarshal([]byte(row.Prescriptions.String), &record.Prescriptions); err != nil {
			return nil, fmt.Errorf("failed to decode prescriptions: %w", err)
		}
	}
	if row.OngoingTreatments.Valid && row.OngoingTreatments.String != "" {
		if err := json.Unmarshal([]byte(row.OngoingTreatments.String), &record.OngoingTreatments); err != nil {
			return nil, fmt.Errorf("failed to decode ongoing treatments: %w", err)
		}
	}
	return record, nil
}
