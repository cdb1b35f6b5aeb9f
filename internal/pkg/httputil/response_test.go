package httputil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnprocessable(t *testing.T) {
	rec := httptest.NewRecorder()
	Unprocessable(rec, CodeInvalidDate, "bad date")

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "bad date", body.Error)
	assert.Equal(t, CodeInvalidDate, body.Code)
}

func TestDecodeRejectsBadJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{"))

	var dst map[string]any
	assert.False(t, Decode(rec, req, &dst))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), CodeInvalidRequest)
}

func TestDecode(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"birth_date":"1990-05-15"}`))

	var dst struct {
		BirthDate string `json:"birth_date"`
	}
	require.True(t, Decode(rec, req, &dst))
	assert.Equal(t, "1990-05-15", dst.BirthDate)
}
