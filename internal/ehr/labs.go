package ehr

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/savegress/medforge/internal/draw"
	"github.com/savegress/medforge/internal/reference"
	"github.com/savegress/medforge/pkg/models"
)

// LabGenerator samples condition-appropriate lab panels for the roster.
type LabGenerator struct {
	start       time.Time
	horizonDays int
}

// NewLabGenerator creates a lab generator for the given horizon.
func NewLabGenerator(start, end time.Time) *LabGenerator {
	return &LabGenerator{
		start:       start,
		horizonDays: int(end.Sub(start).Hours() / 24),
	}
}

// Generate emits results for every (patient, condition) pair with a defined
// panel: 2-4 test events per pair, one shared order/collection date per
// event, one row per panel component. Conditions without a panel contribute
// nothing; condition-free patients get no rows at all.
func (g *LabGenerator) Generate(rng *rand.Rand, patients []models.Patient) []models.LabResult {
	var labs []models.LabResult
	for i := range patients {
		p := &patients[i]
		if !p.HasConditions() {
			continue
		}
		aberrantRate := aberrationRate(len(p.Conditions))

		for _, conditionName := range p.Conditions {
			panel, ok := reference.PanelFor(conditionName)
			if !ok {
				continue
			}

			numEvents := draw.Between(rng, 2, 4)
			for e := 0; e < numEvents; e++ {
				testDate := draw.DateIn(rng, g.start, g.horizonDays)
				resultDate := testDate.AddDate(0, 0, draw.Between(rng, 1, 3))

				for _, pc := range panel {
					value, flag := drawResult(rng, pc, aberrantRate)
					labs = append(labs, models.LabResult{
						PatientID:      p.PatientID,
						OrderDate:      testDate.Format(draw.DateLayout),
						CollectionDate: testDate.Format(draw.DateLayout),
						ResultDate:     resultDate.Format(draw.DateLayout),
						TestName:       pc.TestName,
						TestComponent:  pc.Component,
						ResultValue:    value,
						Unit:           pc.Unit,
						ReferenceRange: fmt.Sprintf("%g-%g", pc.Min, pc.Max),
						Flag:           flag,
						ProviderNPI:    draw.NPI(rng),
						PerformingLab:  draw.Pick(rng, reference.PerformingLabs),
					})
				}
			}
		}
	}
	return labs
}

// aberrationRate scales with comorbidity: the more conditions a patient
// carries, the likelier an out-of-range result.
func aberrationRate(conditionCount int) float64 {
	switch {
	case conditionCount >= 3:
		return 0.20
	case conditionCount == 2:
		return 0.10
	default:
		return 0.05
	}
}

// drawResult draws one component value. The flag always agrees with where
// the value sits relative to the reference range: aberrant draws land
// strictly outside it, normal draws strictly inside.
func drawResult(rng *rand.Rand, pc reference.PanelComponent, aberrantRate float64) (float64, string) {
	if !draw.Bernoulli(rng, aberrantRate) {
		return draw.Round2(pc.Min + rng.Float64()*(pc.Max-pc.Min)), models.FlagNormal
	}

	// Below the floor or above the ceiling with equal probability; a zero
	// floor leaves no room below, so those components only aberrate upward.
	if pc.Min > 0 && draw.Bernoulli(rng, 0.5) {
		v := draw.Round2(pc.Min*0.5 + rng.Float64()*(pc.Min*0.95-pc.Min*0.5))
		if v >= pc.Min {
			// Rounding on a narrow range can climb back to the floor.
			v = draw.Round2(pc.Min - 0.01)
		}
		return v, models.FlagAbnormal
	}

	v := draw.Round2(pc.Max*1.05 + rng.Float64()*(pc.Max*1.5-pc.Max*1.05))
	if v <= pc.Max {
		v = draw.Round2(pc.Max + 0.01)
	}
	return v, models.FlagAbnormal
}
