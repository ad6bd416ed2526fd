package admin

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
	adminsvc "github.com/medicore/clinic-api/internal/service/admin"
	usersvc "github.com/medicore/clinic-api/internal/service/user"
	"github.com/medicore/clinic-api/pkg/security"
)

func setupRouter(t *testing.T) (*gin.Engine, *sqlite.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := sqlite.NewDB(config.DatabaseConfig{File: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.Migrate(context.Background()))

	h := NewHandler(
		adminsvc.NewService(sqlite.NewAdminRepository(db), security.NewBcryptHasher(bcrypt.MinCost)),
		usersvc.NewService(sqlite.NewUserRepository(db)),
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

func TestCreateAdmin(t *testing.T) {
	engine, _ := setupRouter(t)

	rec := makeRequest(t, engine, http.MethodPost, "/admin", map[string]interface{}{
		"name":     "Sam Admin",
		"email":    "sam@example.com",
		"password": "s3cret",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "Sam Admin", body["name"])
	assert.NotContains(t, body, "password")
}

func TestCreateAdmin_DuplicateEmail(t *testing.T) {
	engine, _ := setupRouter(t)

	payload := map[string]interface{}{
		"name":     "Sam Admin",
		"email":    "sam@example.com",
		"password": "s3cret",
	}
	rec := makeRequest(t, engine, http.MethodPost, "/admin", payload)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = makeRequest(t, engine, http.MethodPost, "/admin", payload)
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Admin with this email already exists", decodeBody(t, rec)["error"])
}

func TestUpdateAndGetAdmin(t *testing.T) {
	engine, _ := setupRouter(t)

	rec := makeRequest(t, engine, http.MethodPost, "/admin", map[string]interface{}{
		"name":     "Sam Admin",
		"email":    "sam@example.com",
		"password": "s3cret",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = makeRequest(t, engine, http.MethodPut, "/admin/1", map[string]interface{}{
		"name":  "Sam Senior",
		"email": "sam.senior@example.com",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Sam Senior", decodeBody(t, rec)["name"])

	rec = makeRequest(t, engine, http.MethodGet, "/admin/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "sam.senior@example.com", decodeBody(t, rec)["email"])

	rec = makeRequest(t, engine, http.MethodGet, "/admin/999", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Admin not found", decodeBody(t, rec)["error"])
}

func TestSearchUsers_RequiresAParameter(t *testing.T) {
	engine, _ := setupRouter(t)

	rec := makeRequest(t, engine, http.MethodGet, "/admin/searchUsers", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "At least one search parameter (role, name, or email) is required.", decodeBody(t, rec)["error"])
}

func TestSearchUsers(t *testing.T) {
	engine, db := setupRouter(t)
	ctx := context.Background()

	rec := makeRequest(t, engine, http.MethodPost, "/admin", map[string]interface{}{
		"name":     "Sam Admin",
		"email":    "sam@example.com",
		"password": "s3cret",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	_, err := sqlite.NewPatientRepository(db).Create(ctx, &model.Patient{
		Name:        "Sam Patient",
		Email:       "sam.patient@example.com",
		Password:    "hashed",
		DateOfBirth: "1990-01-01",
		Address:     "12 High Street",
	})
	require.NoError(t, err)

	rec = makeRequest(t, engine, http.MethodGet, "/admin/searchUsers?name=Sam", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var results []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &results))
	assert.Len(t, results, 2)

	rec = makeRequest(t, engine, http.MethodGet, "/admin/searchUsers?name=Sam&role=patient", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &results))
	require.Len(t, results, 1)
	assert.Equal(t, "Patient", results[0]["role"])
}
