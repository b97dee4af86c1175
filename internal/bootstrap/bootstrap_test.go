package bootstrap

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/gradebook/internal/app/models"
	"github.com/yigit/gradebook/internal/config"
	"github.com/yigit/gradebook/internal/seed"
)

func memoryConfig(t *testing.T) *config.Config {
	t.Helper()
	t.Setenv("DB_DRIVER", config.DriverMemory)
	t.Setenv("DB_SEED", "true")
	t.Setenv("RATE_LIMIT_REQUESTS", "2")
	cfg, err := config.LoadConfig("")
	require.NoError(t, err)
	return cfg
}

func TestMemoryStackServesSeededGradebook(t *testing.T) {
	cfg := memoryConfig(t)
	lgr := zerolog.Nop()

	tx, pool, err := SetupDatabase(cfg, lgr)
	require.NoError(t, err)
	assert.Nil(t, pool)

	router := SetupRouter(cfg, BuildDependencies(cfg, tx, lgr), lgr)
	defer gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var students []models.Student
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &students))
	require.Len(t, students, 1)
	assert.Equal(t, seed.DefaultEmail, students[0].EmailAddress)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRateLimiterIsWired(t *testing.T) {
	cfg := memoryConfig(t)
	lgr := zerolog.Nop()

	tx, _, err := SetupDatabase(cfg, lgr)
	require.NoError(t, err)
	router := SetupRouter(cfg, BuildDependencies(cfg, tx, lgr), lgr)
	defer gin.SetMode(gin.TestMode)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}
