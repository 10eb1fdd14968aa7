package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pickup-config/models"
)

// failingWriter accepts headers but fails every body write.
type failingWriter struct {
	*httptest.ResponseRecorder
}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("connection reset")
}

func TestWriteJSON_ReadinessReport(t *testing.T) {
	report := models.ReadinessReport{
		Ready:     false,
		CheckedAt: time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC),
		Checks: []models.CheckResult{
			{Name: "backend", Status: models.CheckStatusOK, Attempts: 1, DurationMS: 12},
			{Name: "sms", Status: models.CheckStatusFailed, Error: "unauthorized", Attempts: 1},
			{Name: "database", Status: models.CheckStatusSkipped},
		},
	}
	w := httptest.NewRecorder()

	err := WriteJSON(w, report, http.StatusServiceUnavailable)

	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
	assert.JSONEq(t, `{
		"ready": false,
		"checked_at": "2026-10-18T09:30:00Z",
		"checks": [
			{"name": "backend", "status": "ok", "attempts": 1, "duration_ms": 12},
			{"name": "sms", "status": "failed", "error": "unauthorized", "attempts": 1, "duration_ms": 0},
			{"name": "database", "status": "skipped", "attempts": 0, "duration_ms": 0}
		]
	}`, w.Body.String())
}

func TestWriteJSON_PublicConfig(t *testing.T) {
	public := models.PublicConfig{
		BackendURL:  "https://abcdefghijklmnop.supabase.co",
		BackendKey:  "anon-key",
		SMS:         models.PublicSMS{Provider: "textbelt"},
		Environment: "prod",
		Assets: []models.Asset{{
			Name:    "leaflet",
			Kind:    models.AssetKindScript,
			Version: "1.9.4",
			URL:     "https://unpkg.com/leaflet@1.9.4/dist/leaflet.js",
		}},
	}
	w := httptest.NewRecorder()

	err := WriteJSON(w, public, http.StatusOK)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))

	var got models.PublicConfig
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, public, got)
	assert.NotContains(t, w.Body.String(), "endpoint")
}

func TestWriteJSON_EncodingError(t *testing.T) {
	w := httptest.NewRecorder()

	// channels cannot be encoded
	err := WriteJSON(w, map[string]any{"ready": make(chan int)}, http.StatusOK)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error encoding JSON response")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
	assert.NotContains(t, w.Body.String(), "ready")
}

func TestWriteJSON_WriteError(t *testing.T) {
	w := failingWriter{httptest.NewRecorder()}

	err := WriteJSON(w, models.ReadinessReport{Ready: true}, http.StatusOK)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error writing JSON response")
	assert.Equal(t, http.StatusOK, w.Code)
}
