package patient

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/medicore/clinic-api/internal/config"
	"github.com/medicore/clinic-api/internal/model"
	"github.com/medicore/clinic-api/internal/repository/sqlite"
	appointmentsvc "github.com/medicore/clinic-api/internal/service/appointment"
	medicalrecordsvc "github.com/medicore/clinic-api/internal/service/medicalrecord"
	patientsvc "github.com/medicore/clinic-api/internal/service/patient"
	"github.com/medicore/clinic-api/pkg/security"
)

func setupRouter(t *testing.T) (*gin.Engine, *sqlite.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := sqlite.NewDB(config.DatabaseConfig{File: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.Migrate(context.Background()))

	patientRepo := sqlite.NewPatientRepository(db)
	hasher := security.NewBcryptHasher(bcrypt.MinCost)

	h := NewHandler(
		patientsvc.NewService(patientRepo, hasher),
		appointmentsvc.NewService(sqlite.NewAppointmentRepository(db)),
		medicalrecordsvc.NewService(sqlite.NewMedicalRecordRepository(db), patientRepo),
	)

	engine := gin.New()
	h.RegisterRoutes(engine.Group(""))
	return engine, db
}

func makeRequest(t *testing.T, engine *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func createPatientPayload() map[string]interface{} {
	return map[string]interface{}{
		"name":        "Jane Roe",
		"email":       "jane@example.com",
		"password":    "s3cret",
		"dateOfBirth": "1990-01-01",
		"address":     "12 High Street",
	}
}

func TestCreatePatient(t *testing.T) {
	engine, _ := setupRouter(t)

	rec := makeRequest(t, engine, http.MethodPost, "/patient", createPatientPayload())
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "Jane Roe", body["name"])
	assert.NotZero(t, body["id"])
	assert.NotContains(t, body, "password")
}

func TestCreatePatient_MissingFields(t *testing.T) {
	engine, _ := setupRouter(t)

	rec := makeRequest(t, engine, http.MethodPost, "/patient", map[string]interface{}{
		"name": "Jane Roe",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "All fields are required", decodeBody(t, rec)["error"])
}

func TestCreatePatient_DuplicateName(t *testing.T) {
	engine, _ := setupRouter(t)

	rec := makeRequest(t, engine, http.MethodPost, "/patient", createPatientPayload())
	require.Equal(t, http.StatusCreated, rec.Code)

	dup := createPatientPayload()
	dup["email"] = "jane2@example.com"
	rec = makeRequest(t, engine, http.MethodPost, "/patient", dup)
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Patient with this name already exists", decodeBody(t, rec)["error"])
}

func TestGetPatient(t *testing.T) {
	engine, _ := setupRouter(t)

	rec := makeRequest(t, engine, http.MethodPost, "/patient", createPatientPayload())
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = makeRequest(t, engine, http.MethodGet, "/patient/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "jane@example.com", decodeBody(t, rec)["email"])
}

func TestGetPatient_InvalidID(t *testing.T) {
	engine, _ := setupRouter(t)

	rec := makeRequest(t, engine, http.MethodGet, "/patient/abc", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid patient ID", decodeBody(t, rec)["error"])
}

func TestGetPatient_NotFound(t *testing.T) {
	engine, _ := setupRouter(t)

	rec := makeRequest(t, engine, http.MethodGet, "/patient/999", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Patient not found", decodeBody(t, rec)["error"])
}

func TestUpdatePatient(t *testing.T) {
	engine, _ := setupRouter(t)

	rec := makeRequest(t, engine, http.MethodPost, "/patient", createPatientPayload())
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = makeRequest(t, engine, http.MethodPut, "/patient/1", map[string]interface{}{
		"name":    "Jane Doe",
		"email":   "jane.doe@example.com",
		"address": "56 New Street",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "Jane Doe", body["name"])
	assert.Equal(t, "1990-01-01", body["dateOfBirth"])
}

func TestListAppointments_EmptyIsNotFound(t *testing.T) {
	engine, _ := setupRouter(t)

	rec := makeRequest(t, engine, http.MethodPost, "/patient", createPatientPayload())
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = makeRequest(t, engine, http.MethodGet, "/patient/1/appointment", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Appointments not found", decodeBody(t, rec)["error"])
}

func TestListAppointments(t *testing.T) {
	engine, db := setupRouter(t)

	rec := makeRequest(t, engine, http.MethodPost, "/patient", createPatientPayload())
	require.Equal(t, http.StatusCreated, rec.Code)

	ctx := context.Background()
	_, err := db.ExecContext(ctx, `
		INSERT INTO doctors (name, email, password, license_number)
		VALUES ('Dr. Smith', 'smith@example.com', 'hashed', 'LIC-100')
	`)
	require.NoError(t, err)

	_, err = sqlite.NewAppointmentRepository(db).Create(ctx, &model.Appointment{
		PatientID:       1,
		DoctorID:        1,
		AppointmentDate: "2026-09-15T10:00:00Z",
		Reason:          "Checkup",
		Status:          model.AppointmentStatusBooked,
	})
	require.NoError(t, err)

	rec = makeRequest(t, engine, http.MethodGet, "/patient/1/appointment", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var appointments []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &appointments))
	require.Len(t, appointments, 1)
	assert.Equal(t, "Checkup", appointments[0]["reason"])
}

func TestListMedicalRecords_MissingPatient(t *testing.T) {
	engine, _ := setupRouter(t)

	rec := makeRequest(t, engine, http.MethodGet, "/patient/999/medical-record", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Patient not found", decodeBody(t, rec)["error"])
}

func TestListMedicalRecords_EmptyIsOK(t *testing.T) {
	engine, _ := setupRouter(t)

	rec := makeRequest(t, engine, http.MethodPost, "/patient", createPatientPayload())
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = makeRequest(t, engine, http.MethodGet, "/patient/1/medical-record", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}
