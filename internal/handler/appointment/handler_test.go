package appointment

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

	"github.com/medicore/clinic-api/internal/config"
	"github.com/medicore/clinic-api/internal/repository/sqlite"
	appointmentsvc "github.com/medicore/clinic-api/internal/service/appointment"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := sqlite.NewDB(config.DatabaseConfig{File: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	ctx := context.Background()
	require.NoError(t, db.Migrate(ctx))

	// Appointments reference patient and doctor rows through foreign keys.
	_, err = db.ExecContext(ctx, `
		INSERT INTO patients (name, email, password, date_of_birth, address)
		VALUES ('Jane Roe', 'jane@example.com', 'hashed', '1990-01-01', '12 High Street')
	`)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `
		INSERT INTO doctors (name, email, password, license_number)
		VALUES ('Dr. Smith', 'smith@example.com', 'hashed', 'LIC-100')
	`)
	require.NoError(t, err)

	h := NewHandler(appointmentsvc.NewService(sqlite.NewAppointmentRepository(db)))

	engine := gin.New()
	h.RegisterRoutes(engine.Group(""))
	return engine
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

func bookAppointment(t *testing.T, engine *gin.Engine) map[string]interface{} {
	t.Helper()

	rec := makeRequest(t, engine, http.MethodPost, "/appointment", map[string]interface{}{
		"patientId":       1,
		"doctorId":        1,
		"appointmentDate": "2026-09-15T10:00:00Z",
		"reason":          "Checkup",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	return decodeBody(t, rec)
}

func TestBookAppointment(t *testing.T) {
	engine := setupRouter(t)

	body := bookAppointment(t, engine)
	assert.Equal(t, "Booked", body["status"])
	assert.NotZero(t, body["appointmentId"])
}

func TestBookAppointment_MissingFields(t *testing.T) {
	engine := setupRouter(t)

	rec := makeRequest(t, engine, http.MethodPost, "/appointment", map[string]interface{}{
		"patientId": 1,
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Missing required fields", decodeBody(t, rec)["error"])
}

func TestRescheduleAppointment(t *testing.T) {
	engine := setupRouter(t)
	bookAppointment(t, engine)

	rec := makeRequest(t, engine, http.MethodPut, "/appointment/1", map[string]interface{}{
		"appointmentDate": "2026-09-20T14:00:00Z",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "Rescheduled", body["status"])
	assert.Equal(t, "2026-09-20T14:00:00Z", body["appointmentDate"])
}

func TestRescheduleAppointment_MissingRowIsBadRequest(t *testing.T) {
	engine := setupRouter(t)

	rec := makeRequest(t, engine, http.MethodPut, "/appointment/999", map[string]interface{}{
		"appointmentDate": "2026-09-20T14:00:00Z",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Appointment not found", decodeBody(t, rec)["error"])
}

func TestCancelAppointment(t *testing.T) {
	engine := setupRouter(t)
	bookAppointment(t, engine)

	rec := makeRequest(t, engine, http.MethodDelete, "/appointment/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Appointment canceled successfully", body["message"])
	assert.Equal(t, float64(1), body["appointmentId"])

	rec = makeRequest(t, engine, http.MethodDelete, "/appointment/1", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Appointment not found", decodeBody(t, rec)["error"])
}

func TestCancelAppointment_InvalidID(t *testing.T) {
	engine := setupRouter(t)

	rec := makeRequest(t, engine, http.MethodDelete, "/appointment/abc", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid appointment ID", decodeBody(t, rec)["error"])
}
