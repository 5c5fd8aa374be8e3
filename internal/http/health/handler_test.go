package health_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmcortinhal/centavo/internal/http/health"
)

func TestHandler_Root(t *testing.T) {
	h := health.NewHandler(nil, false, false)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.Root(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message": "Centavo backend is running"}`, rec.Body.String())
}

func TestHandler_Status_StoreNotConnected(t *testing.T) {
	// Diagnostics over a missing store must report, not fail.
	tests := []struct {
		name     string
		urlSet   bool
		nameSet  bool
		wantURL  string
		wantName string
	}{
		{
			name:     "NothingConfigured",
			wantURL:  "not set",
			wantName: "not set",
		},
		{
			name:     "URLConfiguredOnly",
			urlSet:   true,
			wantURL:  "set",
			wantName: "not set",
		},
		{
			name:     "BothConfigured",
			urlSet:   true,
			nameSet:  true,
			wantURL:  "set",
			wantName: "set",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := health.NewHandler(nil, tt.urlSet, tt.nameSet)

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			rec := httptest.NewRecorder()
			h.Status(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)

			var resp struct {
				Backend          string   `json:"backend"`
				Database         string   `json:"database"`
				DatabaseURL      string   `json:"database_url"`
				DatabaseName     string   `json:"database_name"`
				ConnectionStatus string   `json:"connection_status"`
				Collections      []string `json:"collections"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

			assert.Equal(t, "running", resp.Backend)
			assert.Equal(t, "not available", resp.Database)
			assert.Equal(t, tt.wantURL, resp.DatabaseURL)
			assert.Equal(t, tt.wantName, resp.DatabaseName)
			assert.Equal(t, "not connected", resp.ConnectionStatus)
			assert.Empty(t, resp.Collections)
		})
	}
}
