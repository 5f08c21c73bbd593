package api

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/geomapa/geochem-viewer-go/internal/config"
	"github.com/geomapa/geochem-viewer-go/internal/database"
	"github.com/geomapa/geochem-viewer-go/internal/models"
	"github.com/geomapa/geochem-viewer-go/internal/repository"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.NewMigrationManager(db, "../../migrations").RunMigrations())

	repo := repository.NewSampleRepository(db)
	require.NoError(t, repo.SaveDataset("/data/test.csv", []models.Sample{
		{Latitude: 4.5, Longitude: -74.1, SampleType: "core", Municipality: "Bogota",
			Elements: map[string]string{"Li": "5"}},
		{Latitude: 6.2, Longitude: -75.5, SampleType: "soil", Municipality: "Medellin",
			Elements: map[string]string{"Li": "12"}},
	}))

	cfg := &config.Config{RateLimit: 1000, RateLimitWindow: time.Minute}
	return SetupRouter(cfg, repo)
}

func doGet(t *testing.T, r *gin.Engine, url string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	w := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodGet, url, nil)
	require.NoError(t, err)
	r.ServeHTTP(w, req)

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		body = nil
	}
	return w, body
}

func TestRouter(t *testing.T) {
	t.Run("health", func(t *testing.T) {
		w, body := doGet(t, newTestRouter(t), "/health")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "ok", body["status"])
	})

	t.Run("viewer page", func(t *testing.T) {
		w, _ := doGet(t, newTestRouter(t), "/")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
		assert.Contains(t, w.Body.String(), "Geochemical")
	})

	t.Run("element catalog", func(t *testing.T) {
		w, body := doGet(t, newTestRouter(t), "/api/v1/elements")
		require.Equal(t, http.StatusOK, w.Code)

		data := body["data"].(map[string]interface{})
		assert.EqualValues(t, len(models.Catalog), data["count"])
		first := data["data"].([]interface{})[0].(map[string]interface{})
		assert.Equal(t, "Li", first["symbol"])
	})

	t.Run("sample types", func(t *testing.T) {
		w, body := doGet(t, newTestRouter(t), "/api/v1/sample-types")
		require.Equal(t, http.StatusOK, w.Code)

		data := body["data"].(map[string]interface{})
		assert.EqualValues(t, 2, data["count"])
	})

	t.Run("markers require a sample type selection", func(t *testing.T) {
		w, body := doGet(t, newTestRouter(t), "/api/v1/map/markers?element=Li")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, body["message"], "at least one sample type")
	})

	t.Run("markers reject unknown elements", func(t *testing.T) {
		w, _ := doGet(t, newTestRouter(t), "/api/v1/map/markers?element=Zz&types=core")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("markers for a valid selection", func(t *testing.T) {
		w, body := doGet(t, newTestRouter(t), "/api/v1/map/markers?element=Li&types=core,soil")
		require.Equal(t, http.StatusOK, w.Code)

		view := body["data"].(map[string]interface{})
		assert.EqualValues(t, 2, view["count"])
		markers := view["markers"].([]interface{})
		first := markers[0].(map[string]interface{})
		assert.Equal(t, "Bogota", first["municipality"])
		assert.NotEmpty(t, first["color"])
	})

	t.Run("empty result is a warning, not an error", func(t *testing.T) {
		w, body := doGet(t, newTestRouter(t), "/api/v1/map/markers?element=Cu&types=core")
		require.Equal(t, http.StatusOK, w.Code)

		data := body["data"].(map[string]interface{})
		assert.Equal(t, true, data["empty"])
		assert.Contains(t, body["message"], "No valid data")
	})

	t.Run("element statistics", func(t *testing.T) {
		w, body := doGet(t, newTestRouter(t), "/api/v1/elements/Li/stats?types=core,soil")
		require.Equal(t, http.StatusOK, w.Code)

		data := body["data"].(map[string]interface{})
		stats := data["stats"].(map[string]interface{})
		assert.EqualValues(t, 2, stats["count"])
		assert.EqualValues(t, 5, stats["min"])
		assert.EqualValues(t, 12, stats["max"])
	})
}
