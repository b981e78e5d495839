// Package pharmacy generates the pharmacy-system tables: insurance profiles,
// prescription fills with refill expansion, and claim adjudication
// transactions. All generators read the immutable patient roster and draw
// from the single shared random stream.
package pharmacy

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/savegress/medforge/internal/draw"
	"github.com/savegress/medforge/internal/reference"
	"github.com/savegress/medforge/pkg/models"
)

// InsuranceGenerator builds benefit profiles for the roster.
type InsuranceGenerator struct {
	start time.Time
}

// NewInsuranceGenerator creates an insurance generator; profiles become
// effective at the horizon start.
func NewInsuranceGenerator(start time.Time) *InsuranceGenerator {
	return &InsuranceGenerator{start: start}
}

// Generate emits exactly one Primary profile per patient and, for roughly
// 30% of patients, one Secondary. Patients 65+ are routed to Medicare;
// 15% of younger patients to Medicaid.
func (g *InsuranceGenerator) Generate(rng *rand.Rand, patients []models.Patient) []models.InsuranceProfile {
	profiles := make([]models.InsuranceProfile, 0, len(patients))

	for i := range patients {
		p := &patients[i]

		numPlans := drawPlanCount(rng)

		carrier := draw.Pick(rng, reference.Carriers)
		if p.Age >= 65 {
			carrier = reference.CarrierNamed("Medicare")
		} else if draw.Bernoulli(rng, 0.15) {
			carrier = reference.CarrierNamed("Medicaid")
		}

		profiles = append(profiles, g.profile(rng, p.PatientID, models.RankPrimary, carrier))

		if numPlans >= 2 {
			secondary := drawOtherCarrier(rng, carrier)
			profiles = append(profiles, g.profile(rng, p.PatientID, models.RankSecondary, secondary))
		}
	}

	return profiles
}

func (g *InsuranceGenerator) profile(rng *rand.Rand, patientID, rank string, carrier reference.Carrier) models.InsuranceProfile {
	return models.InsuranceProfile{
		PatientID:     patientID,
		Rank:          rank,
		CarrierName:   carrier.Name,
		RxBIN:         carrier.BIN,
		RxPCN:         carrier.PCN,
		RxGroup:       fmt.Sprintf("%s%d", carrier.GroupPrefix, draw.Between(rng, 10000, 99999)),
		CardholderID:  fmt.Sprintf("%d", draw.Between(rng, 100000000, 999999999)),
		PersonCode:    fmt.Sprintf("%02d", draw.Between(rng, 1, 4)),
		EffectiveDate: g.start.Format(draw.DateLayout),
	}
}

// drawPlanCount draws 1, 2 or 3 plans at 70/25/5. A third plan still yields
// only one Secondary profile; the tail probability just raises the secondary
// share slightly.
func drawPlanCount(rng *rand.Rand) int {
	r := rng.Float64()
	switch {
	case r < 0.70:
		return 1
	case r < 0.95:
		return 2
	default:
		return 3
	}
}

func drawOtherCarrier(rng *rand.Rand, exclude reference.Carrier) reference.Carrier {
	others := make([]reference.Carrier, 0, len(reference.Carriers)-1)
	for _, c := range reference.Carriers {
		if c != exclude {
			others = append(others, c)
		}
	}
	return draw.Pick(rng, others)
}

// PrimaryIndex maps patient ID to the patient's Primary profile. Patients
// without a Primary are simply absent.
func PrimaryIndex(profiles []models.InsuranceProfile) map[string]*models.InsuranceProfile {
	idx := make(map[string]*models.InsuranceProfile)
	for i := range profiles {
		if profiles[i].Rank == models.RankPrimary {
			if _, ok := idx[profiles[i].PatientID]; !ok {
				idx[profiles[i].PatientID] = &profiles[i]
			}
		}
	}
	return idx
}
