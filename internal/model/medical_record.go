package model

// TestResult rows live in their own table keyed by record_id; the record's
// other list fields are JSON-encoded text columns on the parent row.
type TestResult struct {
	TestResultID int64  `db:"test_result_id" json:"testResultId,omitempty"`
	RecordID     int64  `db:"record_id" json:"-"`
	TestName     string `db:"test_name" json:"testName"`
	Result       string `db:"result" json:"result"`
	Date         string `db:"date" json:"date"`
}

type MedicalRecord struct {
	RecordID          int64        `db:"record_id" json:"recordId"`
	PatientID         int64        `db:"patient_id" json:"patientId"`
	DoctorID          int64        `db:"doctor_id" json:"doctorId"`
	Diagnosis         string       `db:"diagnosis" json:"diagnosis"`
	Prescriptions     []string     `db:"-" json:"prescriptions"`
	Notes             string       `db:"notes" json:"notes"`
	OngoingTreatments []string     `db:"-" json:"ongoingTreatments"`
	TestResults       []TestResult `db:"-" json:"testResults"`
	CreatedAt         string       `db:"created_at" json:"createdAt"`
	UpdatedAt         string       `db:"updated_at" json:"updatedAt,omitempty"`
}

type CreateMedicalRecordRequest struct {
	PatientID         int64        `json:"patientId" binding:"required"`
	DoctorID          int64        `json:"doctorId" binding:"required"`
	Diagnosis         string       `json:"diagnosis" binding:"required"`
	Prescriptions     []string     `json:"prescriptions"`
	Notes             string       `json:"notes"`
	OngoingTreatments []string     `json:"ongoingTreatments"`
	TestResults       []TestResult `json:"testResults"`
}

// UpdateMedicalRecordRequest carries optional fields; present fields fully
// overwrite the stored value, list fields included.
type UpdateMedicalRecordRequest struct {
	Diagnosis         *string       `json:"diagnosis"`
	Prescriptions     *[]string     `json:"prescriptions"`
	Notes             *string       `json:"notes"`
	OngoingTreatments *[]string     `json:"ongoingTreatments"`
	TestResults       *[]TestResult `json:"testResults"`
}
