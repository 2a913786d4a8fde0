package handlers_test

import (
	"net/http"
	"testing"

	"github.com/Lewis310/MyPortfolio/internal/testutil"
	"github.com/Lewis310/MyPortfolio/internal/version"
)

// TestSystemEndpoints tests the health and version probes.
func TestSystemEndpoints(t *testing.T) {
	t.Run("health reports connected database", func(t *testing.T) {
		server := setupTestServer(t, testutil.NewMockProvider())

		resp, err := http.Get(server.URL + "/api/system/health")
		if err != nil {
			t.Fatalf("GET failed: %v", err)
		}
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("Expected 200, got %d", resp.StatusCode)
		}

		var health struct {
			Status   string `json:"status"`
			Database string `json:"database"`
		}
		decodeBody(t, resp, &health)
		if health.Status != "healthy" || health.Database != "connected" {
			t.Errorf("Expected healthy/connected, got %+v", health)
		}
	})

	t.Run("version reports app version and data source", func(t *testing.T) {
		server := setupTestServer(t, testutil.NewMockProvider())

		resp, err := http.Get(server.URL + "/api/system/version")
		if err != nil {
			t.Fatalf("GET failed: %v", err)
		}
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("Expected 200, got %d", resp.StatusCode)
		}

		var got struct {
			AppVersion string `json:"app_version"`
			DataSource string `json:"data_source"`
		}
		decodeBody(t, resp, &got)
		if got.AppVersion != version.Version {
			t.Errorf("Expected version %q, got %q", version.Version, got.AppVersion)
		}
		if got.DataSource != "demo" {
			t.Errorf("Expected demo data source, got %q", got.DataSource)
		}
	})
}
