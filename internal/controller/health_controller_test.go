package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Anandakumar9/Ask-Anand-sub000/internal/cache"
	"github.com/Anandakumar9/Ask-Anand-sub000/internal/dto"
	"github.com/Anandakumar9/Ask-Anand-sub000/internal/llm"
)

type stubProvider struct{}

func (stubProvider) Complete(context.Context, string) (string, error) { return "", nil }

func (stubProvider) Name() string { return "stub" }

func newHealthRouter(t *testing.T, provider llm.Provider) (*gin.Engine, *gorm.DB, *cache.MemoryStore) {
	t.Helper()
	dsn := fmt.Sprintf("file:health%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	store := cache.NewMemoryStore()
	t.Cleanup(store.Close)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/healthz", NewHealthController(db, store, provider).Health)
	return r, db, store
}

func getHealth(t *testing.T, router *gin.Engine) (int, dto.HealthResponse) {
	t.Helper()
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	var body dto.HealthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode health response: %v", err)
	}
	return w.Code, body
}

func TestHealthAllComponentsUp(t *testing.T) {
	router, _, _ := newHealthRouter(t, stubProvider{})

	code, body := getHealth(t, router)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body.Status)
	for _, name := range []string{"database", "cache", "generation"} {
		assert.Equal(t, "up", body.Components[name].Status, "component %s", name)
	}
	assert.Equal(t, "stub", body.Components["generation"].Detail, "generation detail carries the provider name")
}

func TestHealthReportsDisabledGeneration(t *testing.T) {
	router, _, _ := newHealthRouter(t, nil)

	code, body := getHealth(t, router)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body.Status, "disabled generation must not degrade overall health")
	assert.Equal(t, "disabled", body.Components["generation"].Status)
}

func TestHealthReportsDatabaseDown(t *testing.T) {
	router, db, _ := newHealthRouter(t, stubProvider{})
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	code, body := getHealth(t, router)
	require.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, "degraded", body.Status)
	assert.Equal(t, "down", body.Components["database"].Status)
}
