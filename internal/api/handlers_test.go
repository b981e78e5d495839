package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/savegress/medforge/internal/config"
	"github.com/savegress/medforge/pkg/models"
)

func testServer() *Server {
	cfg := &config.Config{
		Generation: config.GenerationConfig{
			Seed:          42,
			PatientCount:  20,
			StartDate:     "2024-01-01",
			EndDate:       "2026-01-27",
			RejectionRate: 0.15,
			AberrantRate:  0.05,
		},
	}
	return NewServer(cfg)
}

func TestHealthCheck(t *testing.T) {
	s := testServer()
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest("GET", "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", rec.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body["service"] != "medforge" {
		t.Errorf("service %q, want medforge", body["service"])
	}
}

func TestSummaryBeforeGenerate(t *testing.T) {
	s := testServer()
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest("GET", "/api/v1/medforge/summary", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status %d, want 404 before any generation", rec.Code)
	}
}

func TestGenerateThenQuery(t *testing.T) {
	s := testServer()

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest("POST", "/api/v1/medforge/generate",
		strings.NewReader(`{"patient_count": 15}`)))
	if rec.Code != http.StatusCreated {
		t.Fatalf("generate status %d, want 201: %s", rec.Code, rec.Body.String())
	}

	var summary models.Summary
	if err := json.NewDecoder(rec.Body).Decode(&summary); err != nil {
		t.Fatal(err)
	}
	if summary.Patients != 15 {
		t.Errorf("generated %d patients, want override of 15", summary.Patients)
	}

	rec = httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest("GET", "/api/v1/medforge/tables/patients", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("table status %d, want 200", rec.Code)
	}
	var patients []models.Patient
	if err := json.NewDecoder(rec.Body).Decode(&patients); err != nil {
		t.Fatal(err)
	}
	if len(patients) != 15 {
		t.Errorf("table has %d patients, want 15", len(patients))
	}

	rec = httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest("GET", "/api/v1/medforge/tables/bogus", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown table status %d, want 404", rec.Code)
	}
}

func TestGenerateRejectsBadBody(t *testing.T) {
	s := testServer()
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest("POST", "/api/v1/medforge/generate",
		strings.NewReader(`{not json`)))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400 for malformed body", rec.Code)
	}
}
