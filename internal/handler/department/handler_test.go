package department

import (
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
	departmentsvc "github.com/medicore/clinic-api/internal/service/department"
)

func TestListDepartments(t *testing.T) {
	gin.SetMode(gin.TestMode)

	db, err := sqlite.NewDB(config.DatabaseConfig{File: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	ctx := context.Background()
	require.NoError(t, db.Migrate(ctx))
	_, err = db.ExecContext(ctx, `INSERT INTO departments (name, description) VALUES (?, ?)`, "Emergency", "24/7 emergency care")
	require.NoError(t, err)

	engine := gin.New()
	NewHandler(departmentsvc.NewService(sqlite.NewDepartmentRepository(db))).RegisterRoutes(engine.Group(""))

	req := httptest.NewRequest(http.MethodGet, "/departments", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var departments []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &departments))
	require.Len(t, departments, 1)
	assert.Equal(t, "Emergency", departments[0]["name"])
}

func TestListDepartments_Empty(t *testing.T) {
	gin.SetMode(gin.TestMode)

	db, err := sqlite.NewDB(config.DatabaseConfig{File: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.Migrate(context.Background()))

	engine := gin.New()
	NewHandler(departmentsvc.NewService(sqlite.NewDepartmentRepository(db))).RegisterRoutes(engine.Group(""))

	req := httptest.NewRequest(http.MethodGet, "/departments", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}
