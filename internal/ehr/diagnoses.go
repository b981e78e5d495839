// Package ehr generates the EHR-system tables: ICD-10 diagnoses, lab
// results, clinical notes and immunization records, all derived from the
// shared patient roster.
package ehr

import (
	"math/rand"
	"time"

	"github.com/savegress/medforge/internal/draw"
	"github.com/savegress/medforge/internal/reference"
	"github.com/savegress/medforge/pkg/models"
)

// statusSlots gives a 3:1 Active:Resolved split.
var statusSlots = []string{
	models.DiagnosisActive, models.DiagnosisActive, models.DiagnosisActive,
	models.DiagnosisResolved,
}

// DiagnosisGenerator derives one coded diagnosis per (patient, condition).
type DiagnosisGenerator struct {
	start       time.Time
	horizonDays int
}

// NewDiagnosisGenerator creates a diagnosis generator for the given horizon.
func NewDiagnosisGenerator(start, end time.Time) *DiagnosisGenerator {
	return &DiagnosisGenerator{
		start:       start,
		horizonDays: int(end.Sub(start).Hours() / 24),
	}
}

// Generate emits one row per patient condition that maps to an ICD-10 code.
// Conditions without a code are skipped for this table only. Diagnosis dates
// are backdated up to a horizon length before the start, reflecting that
// chronic disease predates the simulated window.
func (g *DiagnosisGenerator) Generate(rng *rand.Rand, patients []models.Patient) []models.Diagnosis {
	var diagnoses []models.Diagnosis
	for i := range patients {
		p := &patients[i]
		for _, conditionName := range p.Conditions {
			code, description, ok := reference.CodeFor(conditionName)
			if !ok {
				continue
			}
			condition, _ := reference.ConditionByName(conditionName)
			chronic := "No"
			if condition.Chronic {
				chronic = "Yes"
			}
			diagnoses = append(diagnoses, models.Diagnosis{
				PatientID:     p.PatientID,
				DiagnosisCode: code,
				Description:   description,
				DiagnosisDate: g.start.AddDate(0, 0, -draw.Between(rng, 0, g.horizonDays)).Format(draw.DateLayout),
				Status:        draw.Pick(rng, statusSlots),
				IsChronic:     chronic,
				ProviderNPI:   draw.NPI(rng),
			})
		}
	}
	return diagnoses
}
