package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ericjunior52/MED-SAFE/config"
	"github.com/ericjunior52/MED-SAFE/data"
	"github.com/ericjunior52/MED-SAFE/health"
	"github.com/ericjunior52/MED-SAFE/interactions"
	"github.com/ericjunior52/MED-SAFE/logging"
	"github.com/ericjunior52/MED-SAFE/validation"
)

type memDataset struct {
	headers []string
	rows    [][]string
}

func (d *memDataset) Headers() []string { return d.headers }
func (d *memDataset) Rows() [][]string  { return d.rows }

func testServer(t *testing.T) *Server {
	t.Helper()

	logging.InitLogger(t.TempDir(), "error", 1, 1024*1024)

	table, err := interactions.NewTable(&memDataset{
		headers: []string{"id", "Drug_A", "notes", "Drug_B", "Level"},
		rows:    [][]string{{"1", "Aspirin", "x", "Warfarin", "Major"}},
	})
	if err != nil {
		t.Fatalf("Failed to build table: %v", err)
	}

	container := data.NewContainer()
	container.UpdateTable(table)

	cfg := &config.Config{
		Port:           "8000",
		Address:        "127.0.0.1",
		Env:            config.EnvTest,
		MaxRequestBody: 1048576,
		MaxHeaderSize:  1048576,
	}

	return NewServer(cfg, container, health.NewHealthChecker(container), validation.NewDataValidator())
}

func TestServerRoutes(t *testing.T) {
	srv := testServer(t)

	testCases := []struct {
		path string
		code int
	}{
		{"/interactions/check/aspirin/warfarin", http.StatusOK},
		{"/interactions/check/aspirin/metformin", http.StatusNotFound},
		{"/interactions/drug/aspirin", http.StatusOK},
		{"/database", http.StatusOK},
		{"/database/1", http.StatusOK},
		{"/health", http.StatusOK},
		{"/metrics", http.StatusOK},
	}

	for _, tc := range testCases {
		req := httptest.NewRequest(http.MethodGet, tc.path, nil)
		req.Header.Set("X-Forwarded-For", "203.0.113.10")
		rec := httptest.NewRecorder()
		srv.Router().ServeHTTP(rec, req)

		if rec.Code != tc.code {
			t.Errorf("GET %s: expected %d, got %d", tc.path, tc.code, rec.Code)
		}
	}
}

func TestServerLookupThroughFullStack(t *testing.T) {
	srv := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/interactions/check/warfarin/aspirin", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.11")
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var result interactions.QueryResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if result.Status != interactions.StatusFound {
		t.Errorf("Expected status found, got %s", result.Status)
	}
	if len(result.Records) != 1 || result.Records[0].Level != "Major" {
		t.Errorf("Unexpected records: %+v", result.Records)
	}
}
