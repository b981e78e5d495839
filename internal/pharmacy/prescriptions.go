package pharmacy

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/savegress/medforge/internal/draw"
	"github.com/savegress/medforge/internal/reference"
	"github.com/savegress/medforge/pkg/models"
)

// PrescriptionConfig tunes the fill generator.
type PrescriptionConfig struct {
	Start         time.Time
	End           time.Time
	AberrantRate  float64 // share of fills with out-of-policy quantity/supply
	MinPerPatient int
	MaxPerPatient int
}

// PrescriptionGenerator expands each conditioned patient into a prescription
// history with refills for maintenance therapy.
type PrescriptionGenerator struct {
	cfg         PrescriptionConfig
	horizonDays int
}

// NewPrescriptionGenerator creates a fill generator for the given horizon.
func NewPrescriptionGenerator(cfg PrescriptionConfig) *PrescriptionGenerator {
	if cfg.MinPerPatient == 0 {
		cfg.MinPerPatient = 8
	}
	if cfg.MaxPerPatient == 0 {
		cfg.MaxPerPatient = 16
	}
	return &PrescriptionGenerator{
		cfg:         cfg,
		horizonDays: int(cfg.End.Sub(cfg.Start).Hours() / 24),
	}
}

// Generate draws 8-16 prescriptions per conditioned patient. Each picks a
// uniform condition from the patient's set, then a uniform (name, NDC) pair
// from that condition's catalog. Maintenance conditions additionally expand
// into 1-3 refills; a refill family is truncated (not dropped) at the first
// fill date past the horizon end. Condition-free patients get nothing.
func (g *PrescriptionGenerator) Generate(rng *rand.Rand, patients []models.Patient) []models.Prescription {
	var fills []models.Prescription
	rxCounter := 1

	for i := range patients {
		p := &patients[i]
		if !p.HasConditions() {
			continue
		}

		numScripts := draw.Between(rng, g.cfg.MinPerPatient, g.cfg.MaxPerPatient)
		for n := 0; n < numScripts; n++ {
			conditionName := draw.Pick(rng, p.Conditions)
			condition, ok := reference.ConditionByName(conditionName)
			if !ok {
				// Roster conditions are always a subset of the catalog; a miss
				// here is a programmer error, not data.
				panic("pharmacy: unknown condition " + conditionName)
			}
			med := draw.Pick(rng, condition.Medications)

			writtenDate := draw.DateIn(rng, g.cfg.Start, g.horizonDays)
			fillDate := writtenDate.AddDate(0, 0, draw.Between(rng, 0, 7))

			quantity, daysSupply := g.drawDosing(rng, med.Name)

			copay := draw.Money(rng, 5, 75)
			isREMS := "No"
			if condition.REMS {
				// Specialty pricing
				copay = draw.Money(rng, 50, 500)
				isREMS = "Yes"
			}

			rx := models.Prescription{
				RxNumber:       fmt.Sprintf("RX%08d", rxCounter),
				PatientID:      p.PatientID,
				MedicationName: med.Name,
				NDC:            med.NDC,
				Quantity:       quantity,
				DaysSupply:     daysSupply,
				WrittenDate:    writtenDate.Format(draw.DateLayout),
				FillDate:       fillDate.Format(draw.DateLayout),
				RefillNumber:   0,
				Sig:            draw.Pick(rng, reference.Sigs),
				PrescriberNPI:  draw.NPI(rng),
				Copay:          copay,
				Condition:      conditionName,
				IsREMS:         isREMS,
			}
			fills = append(fills, rx)
			rxCounter++

			if condition.Maintenance {
				fills = append(fills, g.expandRefills(rng, rx, fillDate)...)
			}
		}
	}

	return fills
}

// drawDosing applies the dosing policy by medication class.
func (g *PrescriptionGenerator) drawDosing(rng *rand.Rand, medication string) (quantity, daysSupply int) {
	lower := strings.ToLower(medication)
	switch {
	case strings.Contains(lower, "inhaler") || strings.Contains(lower, "hfa"):
		return 1, 30
	case strings.Contains(lower, "insulin"):
		return draw.Pick(rng, []int{1, 3, 5}), 30
	case draw.Bernoulli(rng, g.cfg.AberrantRate):
		// Deliberately aberrant fill to feed downstream anomaly detection.
		return draw.Between(rng, 1, 500), draw.Between(rng, 1, 180)
	default:
		quantity = draw.Pick(rng, []int{30, 60, 90})
		return quantity, quantity
	}
}

// expandRefills emits 1-3 refills spaced days-supply apart. Generation stops
// at the first refill past the horizon end: the family is cut short there,
// earlier refills are kept.
func (g *PrescriptionGenerator) expandRefills(rng *rand.Rand, original models.Prescription, fillDate time.Time) []models.Prescription {
	var refills []models.Prescription
	numRefills := draw.Between(rng, 1, 3)
	for r := 1; r <= numRefills; r++ {
		refillDate := fillDate.AddDate(0, 0, original.DaysSupply*r)
		if refillDate.After(g.cfg.End) {
			break
		}
		refill := original
		refill.FillDate = refillDate.Format(draw.DateLayout)
		refill.RefillNumber = r
		refills = append(refills, refill)
	}
	return refills
}
