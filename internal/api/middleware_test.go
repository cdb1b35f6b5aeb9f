package api

import (
	"bytes"
	"net/http"
	"os"
	"testing"

	"github.com/sos-evolution/soul-math/internal/config"
	"github.com/sos-evolution/soul-math/internal/metrics"
	"github.com/sos-evolution/soul-math/internal/pkg/httputil"
	"github.com/sos-evolution/soul-math/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	logger.SetLevel(logger.DEBUG)
	logger.SetRedactPII(true)
	t.Cleanup(func() {
		logger.SetOutput(os.Stderr)
		logger.SetLevel(logger.INFO)
	})
	return &buf
}

func TestLogsNeverContainBirthDates(t *testing.T) {
	logs := captureLogs(t)
	h := setupTestServer(t)

	rec := do(t, h, http.MethodGet, "/api/v1/life-path?date=1987-6-14", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	rec = do(t, h, http.MethodGet, "/api/v1/life-path?date=1987-06-14", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = do(t, h, http.MethodPost, "/api/v1/profile", `{"birth_date":"1990-02-30"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	rec = do(t, h, http.MethodPost, "/api/v1/profile", `{"birth_date":"1990-05-15"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	out := logs.String()
	require.NotEmpty(t, out)
	for _, raw := range []string{"1987-6-14", "1987-06-14", "1990-02-30", "1990-05-15"} {
		assert.NotContains(t, out, raw)
	}
	assert.Contains(t, out, `"path":"/api/v1/life-path"`)
	assert.Contains(t, out, "1990-**-**")
}

func TestRecovererReturnsErrorEnvelope(t *testing.T) {
	logs := captureLogs(t)

	cfg := config.Default()
	r := SetupRoutes(NewHandlers(metrics.New(), "en"), NewHealthChecker(), metrics.New(), cfg.CORS.AllowedOrigins)
	r.Get("/boom", func(http.ResponseWriter, *http.Request) { panic("kaboom") })

	rec := do(t, r, http.MethodGet, "/boom", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	e := decodeError(t, rec)
	assert.Equal(t, httputil.CodeInternal, e.Code)
	assert.Equal(t, "internal server error", e.Error)
	assert.NotContains(t, rec.Body.String(), "kaboom")

	out := logs.String()
	assert.Contains(t, out, "kaboom")
	assert.Contains(t, out, `"status":"500"`)
}
