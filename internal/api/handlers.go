package api

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/savegress/medforge/internal/config"
	"github.com/savegress/medforge/internal/generator"
	"github.com/savegress/medforge/pkg/models"
)

// Handlers contains all HTTP handlers
type Handlers struct {
	config *config.Config

	// Last generated dataset, held in memory for the query endpoints.
	mu      sync.RWMutex
	dataset *models.Dataset
}

// NewHandlers creates new handlers
func NewHandlers(cfg *config.Config) *Handlers {
	return &Handlers{config: cfg}
}

// HealthCheck handles health check requests
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "medforge",
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
}

// generateRequest overrides the configured generation parameters per call.
// Zero-valued fields fall back to the server config.
type generateRequest struct {
	Seed          *int64   `json:"seed,omitempty"`
	PatientCount  int      `json:"patient_count,omitempty"`
	RejectionRate *float64 `json:"rejection_rate,omitempty"`
	AberrantRate  *float64 `json:"aberrant_rate,omitempty"`
}

// GenerateDataset runs a full generation and keeps the result for querying
func (h *Handlers) GenerateDataset(w http.ResponseWriter, r *http.Request) {
	req := generateRequest{}
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
	}

	gen := h.config.Generation
	if req.Seed != nil {
		gen.Seed = *req.Seed
	}
	if req.PatientCount > 0 {
		gen.PatientCount = req.PatientCount
	}
	if req.RejectionRate != nil {
		gen.RejectionRate = *req.RejectionRate
	}
	if req.AberrantRate != nil {
		gen.AberrantRate = *req.AberrantRate
	}

	start, end, err := gen.Horizon()
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	ds, err := generator.NewEngine(generator.Config{
		Seed:          gen.Seed,
		PatientCount:  gen.PatientCount,
		Start:         start,
		End:           end,
		RejectionRate: gen.RejectionRate,
		AberrantRate:  gen.AberrantRate,
	}).Run()
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	h.mu.Lock()
	h.dataset = ds
	h.mu.Unlock()

	respond(w, http.StatusCreated, ds.Summarize())
}

// GetSummary returns the summary of the last generated dataset
func (h *Handlers) GetSummary(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	ds := h.dataset
	h.mu.RUnlock()

	if ds == nil {
		respondError(w, http.StatusNotFound, "No dataset generated yet")
		return
	}
	respond(w, http.StatusOK, ds.Summarize())
}

// GetTable returns one table of the last generated dataset
func (h *Handlers) GetTable(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	ds := h.dataset
	h.mu.RUnlock()

	if ds == nil {
		respondError(w, http.StatusNotFound, "No dataset generated yet")
		return
	}

	switch chi.URLParam(r, "table") {
	case "patients":
		respond(w, http.StatusOK, ds.Patients)
	case "insurance":
		respond(w, http.StatusOK, ds.Insurance)
	case "prescriptions":
		respond(w, http.StatusOK, ds.Prescriptions)
	case "adjudication":
		respond(w, http.StatusOK, ds.Transactions)
	case "diagnoses":
		respond(w, http.StatusOK, ds.Diagnoses)
	case "labs":
		respond(w, http.StatusOK, ds.Labs)
	case "notes":
		respond(w, http.StatusOK, ds.Notes)
	case "immunizations":
		respond(w, http.StatusOK, ds.Immunizations)
	default:
		respondError(w, http.StatusNotFound, "Unknown table")
	}
}

func respond(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respond(w, status, map[string]string{"error": message})
}
