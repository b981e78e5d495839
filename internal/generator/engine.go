// Package generator orchestrates a full dataset run: one seeded random
// stream driving every table generator in a fixed order, so the same seed
// always yields the same bytes.
package generator

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/savegress/medforge/internal/ehr"
	"github.com/savegress/medforge/internal/pharmacy"
	"github.com/savegress/medforge/internal/population"
	"github.com/savegress/medforge/pkg/models"
)

// Defaults mirror the reference cohort.
const (
	DefaultSeed          = 42
	DefaultPatientCount  = 250
	DefaultRejectionRate = 0.15
	DefaultAberrantRate  = 0.05
)

// DefaultStart and DefaultEnd bound the default simulation horizon.
var (
	DefaultStart = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	DefaultEnd   = time.Date(2026, 1, 27, 0, 0, 0, 0, time.UTC)
)

// Config holds the tunables of one generation run.
type Config struct {
	Seed          int64
	PatientCount  int
	Start         time.Time
	End           time.Time
	RejectionRate float64
	AberrantRate  float64
}

// Engine runs the table generators in dependency order.
type Engine struct {
	cfg Config
}

// NewEngine creates an engine, filling zero-valued config fields with the
// defaults. Seed is the exception: 0 is a valid stream and is kept as-is.
func NewEngine(cfg Config) *Engine {
	if cfg.PatientCount == 0 {
		cfg.PatientCount = DefaultPatientCount
	}
	if cfg.Start.IsZero() {
		cfg.Start = DefaultStart
	}
	if cfg.End.IsZero() {
		cfg.End = DefaultEnd
	}
	if cfg.RejectionRate == 0 {
		cfg.RejectionRate = DefaultRejectionRate
	}
	if cfg.AberrantRate == 0 {
		cfg.AberrantRate = DefaultAberrantRate
	}
	return &Engine{cfg: cfg}
}

// Run generates the complete dataset. Stage order is fixed and every stage
// consumes the same random stream, so reordering stages or adding draws to
// an earlier one changes all downstream tables. Do not reorder.
func (e *Engine) Run() (*models.Dataset, error) {
	if e.cfg.End.Before(e.cfg.Start) {
		return nil, fmt.Errorf("generate: horizon end %s before start %s",
			e.cfg.End.Format("2006-01-02"), e.cfg.Start.Format("2006-01-02"))
	}
	if e.cfg.PatientCount < 0 {
		return nil, fmt.Errorf("generate: negative patient count %d", e.cfg.PatientCount)
	}

	rng := rand.New(rand.NewSource(e.cfg.Seed))
	ds := &models.Dataset{
		RunID: uuid.New().String(),
		Seed:  e.cfg.Seed,
	}

	log.Printf("run %s: generating %d patients (seed %d)", ds.RunID, e.cfg.PatientCount, e.cfg.Seed)
	ds.Patients = population.NewGenerator(e.cfg.Start, e.cfg.End).Generate(rng, e.cfg.PatientCount)

	ds.Insurance = pharmacy.NewInsuranceGenerator(e.cfg.Start).Generate(rng, ds.Patients)
	log.Printf("run %s: %d insurance profiles", ds.RunID, len(ds.Insurance))

	ds.Prescriptions = pharmacy.NewPrescriptionGenerator(pharmacy.PrescriptionConfig{
		Start:        e.cfg.Start,
		End:          e.cfg.End,
		AberrantRate: e.cfg.AberrantRate,
	}).Generate(rng, ds.Patients)
	log.Printf("run %s: %d prescription fills", ds.RunID, len(ds.Prescriptions))

	ds.Transactions = pharmacy.NewAdjudicationGenerator(pharmacy.AdjudicationConfig{
		RejectionRate: e.cfg.RejectionRate,
	}).Generate(rng, ds.Prescriptions, ds.Insurance)
	log.Printf("run %s: %d adjudication transactions", ds.RunID, len(ds.Transactions))

	ds.Diagnoses = ehr.NewDiagnosisGenerator(e.cfg.Start, e.cfg.End).Generate(rng, ds.Patients)
	ds.Labs = ehr.NewLabGenerator(e.cfg.Start, e.cfg.End).Generate(rng, ds.Patients)
	ds.Notes = ehr.NewNoteGenerator(e.cfg.Start, e.cfg.End).Generate(rng, ds.Patients)
	ds.Immunizations = ehr.NewImmunizationGenerator(e.cfg.Start, e.cfg.End).Generate(rng, ds.Patients)
	log.Printf("run %s: %d diagnoses, %d labs, %d notes, %d immunizations",
		ds.RunID, len(ds.Diagnoses), len(ds.Labs), len(ds.Notes), len(ds.Immunizations))

	return ds, nil
}
