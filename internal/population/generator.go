// Package population builds the synthetic patient roster: demographics from
// the reference pools, conditions from the age/gender-adjusted prevalence
// model and allergies from independent prevalence tables. The roster is
// generated once per run and is immutable input for every downstream
// generator.
package population

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/savegress/medforge/internal/draw"
	"github.com/savegress/medforge/internal/reference"
	"github.com/savegress/medforge/pkg/models"
)

// ageBracket is one band of the age distribution.
type ageBracket struct {
	lo, hi int
	weight float64
}

// ageDistribution approximates US demographics. Weights sum to 1.
var ageDistribution = []ageBracket{
	{13, 17, 0.07},
	{18, 24, 0.10},
	{25, 34, 0.14},
	{35, 44, 0.13},
	{45, 54, 0.13},
	{55, 64, 0.13},
	{65, 74, 0.11},
	{75, 84, 0.07},
	{85, 97, 0.12},
}

// genderSlots gives ~91% binary genders.
var genderSlots = []string{"M", "F", "M", "F", "M", "F", "M", "F", "M", "F", "X"}

// Generator builds patient rosters anchored to a simulation horizon.
type Generator struct {
	start  time.Time
	anchor time.Time // "today" for age arithmetic; horizon end keeps runs reproducible
}

// NewGenerator creates a roster generator for the given horizon.
func NewGenerator(start, end time.Time) *Generator {
	return &Generator{start: start, anchor: end}
}

// Generate builds count patients, drawing everything from rng in a fixed
// order. Patient IDs are counter-assigned (PT00001...) and never reused.
func (g *Generator) Generate(rng *rand.Rand, count int) []models.Patient {
	patients := make([]models.Patient, 0, count)
	for i := 0; i < count; i++ {
		age := drawAge(rng)
		gender := draw.Pick(rng, genderSlots)

		first := drawFirstName(rng, gender)
		last := draw.Pick(rng, reference.LastNames)

		conditions := AssignConditions(rng, age, gender)

		patients = append(patients, models.Patient{
			PatientID:     fmt.Sprintf("PT%05d", i+1),
			FirstName:     first,
			LastName:      last,
			DateOfBirth:   g.birthDate(age),
			Age:           age,
			Gender:        gender,
			SSN:           drawSSN(rng),
			Phone:         drawPhone(rng),
			Email:         fmt.Sprintf("%s.%s@%s", strings.ToLower(first), strings.ToLower(last), draw.Pick(rng, reference.EmailDomains)),
			Address:       fmt.Sprintf("%d %s", draw.Between(rng, 100, 9999), draw.Pick(rng, reference.StreetNames)),
			City:          draw.Pick(rng, reference.Cities),
			State:         draw.Pick(rng, reference.StateAbbrs),
			ZipCode:       fmt.Sprintf("%05d", draw.Between(rng, 10000, 99999)),
			Conditions:    conditions,
			DrugAllergies: drawAllergies(rng, reference.DrugAllergies),
			FoodAllergies: drawAllergies(rng, reference.FoodAllergies),
			CreatedDate:   g.start.Format(draw.DateLayout),
		})
	}
	return patients
}

// AssignConditions draws a condition set for one patient. Each condition in
// the catalog gets an independent Bernoulli trial at base prevalence times
// its age step factor (clamped to 1); gender-restricted conditions are
// skipped outright for non-matching patients.
//
// When the draws come up empty, half of those patients are force-assigned one
// uniform gender-eligible condition. This is a deliberate population floor,
// not a bug: without it too many patients would be condition-free and starve
// the downstream tables.
func AssignConditions(rng *rand.Rand, age int, gender string) []string {
	var conditions []string
	for i := range reference.Conditions {
		c := &reference.Conditions[i]
		if c.Gender != "" && c.Gender != gender {
			continue
		}
		p := c.Prevalence * c.AgeFactor(age)
		if p > 1.0 {
			p = 1.0
		}
		if draw.Bernoulli(rng, p) {
			conditions = append(conditions, c.Name)
		}
	}

	if len(conditions) == 0 && draw.Bernoulli(rng, 0.5) {
		eligible := reference.EligibleConditions(gender)
		conditions = append(conditions, draw.Pick(rng, eligible).Name)
	}

	return conditions
}

func (g *Generator) birthDate(age int) string {
	days := int(float64(age) * 365.25)
	return g.anchor.AddDate(0, 0, -days).Format(draw.DateLayout)
}

func drawAge(rng *rand.Rand) int {
	r := rng.Float64()
	acc := 0.0
	for _, b := range ageDistribution {
		acc += b.weight
		if r < acc {
			return draw.Between(rng, b.lo, b.hi)
		}
	}
	last := ageDistribution[len(ageDistribution)-1]
	return draw.Between(rng, last.lo, last.hi)
}

func drawFirstName(rng *rand.Rand, gender string) string {
	switch gender {
	case models.GenderMale:
		return draw.Pick(rng, reference.MaleFirstNames)
	case models.GenderFemale:
		return draw.Pick(rng, reference.FemaleFirstNames)
	default:
		// Nonbinary patients draw from both pools.
		if rng.Intn(2) == 0 {
			return draw.Pick(rng, reference.MaleFirstNames)
		}
		return draw.Pick(rng, reference.FemaleFirstNames)
	}
}

func drawSSN(rng *rand.Rand) string {
	return fmt.Sprintf("%03d-%02d-%04d",
		draw.Between(rng, 1, 899), draw.Between(rng, 1, 99), draw.Between(rng, 1, 9999))
}

func drawPhone(rng *rand.Rand) string {
	return fmt.Sprintf("(%d) %d-%d",
		draw.Between(rng, 200, 999), draw.Between(rng, 200, 999), draw.Between(rng, 1000, 9999))
}

func drawAllergies(rng *rand.Rand, table []reference.AllergyPrevalence) []string {
	var out []string
	for _, a := range table {
		if draw.Bernoulli(rng, a.Rate) {
			out = append(out, a.Name)
		}
	}
	return out
}
