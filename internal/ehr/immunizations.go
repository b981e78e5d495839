package ehr

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/savegress/medforge/internal/draw"
	"github.com/savegress/medforge/internal/reference"
	"github.com/savegress/medforge/pkg/models"
)

// ImmunizationGenerator draws per-vaccine coverage for each patient.
// Conditions play no role here: condition-free patients are fully eligible.
type ImmunizationGenerator struct {
	start       time.Time
	end         time.Time
	horizonDays int
}

// NewImmunizationGenerator creates an immunization generator. The horizon
// end doubles as the "today" anchor for backdated doses so runs stay
// reproducible.
func NewImmunizationGenerator(start, end time.Time) *ImmunizationGenerator {
	return &ImmunizationGenerator{
		start:       start,
		end:         end,
		horizonDays: int(end.Sub(start).Hours() / 24),
	}
}

// Generate draws, per patient: one gate for the entire childhood series
// (all-or-none), then independent gates per adult vaccine with their own
// rates and age thresholds. Childhood and in-window doses are clamped into
// the horizon; influenza and Tdap doses falling outside it are skipped
// instead, keeping the historical gap visible.
func (g *ImmunizationGenerator) Generate(rng *rand.Rand, patients []models.Patient) []models.ImmunizationRecord {
	var records []models.ImmunizationRecord
	for i := range patients {
		p := &patients[i]
		records = append(records, g.childhoodSeries(rng, p)...)
		records = append(records, g.influenza(rng, p)...)
		records = append(records, g.tdap(rng, p)...)
		records = append(records, g.shingles(rng, p)...)
		records = append(records, g.pneumococcal(rng, p)...)
		records = append(records, g.covid(rng, p)...)
	}
	return records
}

func (g *ImmunizationGenerator) childhoodSeries(rng *rand.Rand, p *models.Patient) []models.ImmunizationRecord {
	if !draw.Bernoulli(rng, reference.ChildhoodSeriesCoverage) {
		return nil
	}

	var records []models.ImmunizationRecord
	birth := g.end.AddDate(0, 0, -p.Age*365)
	for _, vaccine := range reference.ChildhoodSeries {
		adminDate := birth.AddDate(0, 0, draw.Between(rng, 90, 730))
		if adminDate.Before(g.start) {
			adminDate = g.start.AddDate(0, 0, draw.Between(rng, 0, 30))
		}
		records = append(records, models.ImmunizationRecord{
			PatientID:          p.PatientID,
			VaccineName:        vaccine.Name,
			CVXCode:            fmt.Sprintf("%03d", draw.Between(rng, 1, 200)),
			AdministrationDate: adminDate.Format(draw.DateLayout),
			DoseNumber:         1,
			Route:              draw.Pick(rng, reference.Routes),
			Site:               draw.Pick(rng, reference.Sites),
			LotNumber:          fmt.Sprintf("LOT%06d", draw.Between(rng, 100000, 999999)),
			Manufacturer:       draw.Pick(rng, reference.Manufacturers),
			AdministeredNPI:    draw.NPI(rng),
		})
	}
	return records
}

func (g *ImmunizationGenerator) influenza(rng *rand.Rand, p *models.Patient) []models.ImmunizationRecord {
	if !draw.Bernoulli(rng, reference.InfluenzaCoverage) {
		return nil
	}

	var records []models.ImmunizationRecord
	for year := g.start.Year(); year <= g.end.Year(); year++ {
		// Flu season: one dose in Sep-Nov, skipped when outside the horizon.
		fluDate := time.Date(year, time.Month(draw.Between(rng, 9, 11)), draw.Between(rng, 1, 28), 0, 0, 0, 0, time.UTC)
		if fluDate.Before(g.start) || fluDate.After(g.end) {
			continue
		}
		records = append(records, models.ImmunizationRecord{
			PatientID:          p.PatientID,
			VaccineName:        "Influenza",
			CVXCode:            reference.CVXInfluenza,
			AdministrationDate: fluDate.Format(draw.DateLayout),
			DoseNumber:         1,
			Route:              "Intramuscular",
			Site:               "Left deltoid",
			LotNumber:          fmt.Sprintf("FLU%06d", draw.Between(rng, 100000, 999999)),
			Manufacturer:       draw.Pick(rng, reference.FluMakers),
			AdministeredNPI:    draw.NPI(rng),
		})
	}
	return records
}

func (g *ImmunizationGenerator) tdap(rng *rand.Rand, p *models.Patient) []models.ImmunizationRecord {
	if !draw.Bernoulli(rng, reference.TdapCoverage) {
		return nil
	}
	// Last dose somewhere in the past 10 years; only emitted when it lands
	// inside the horizon (skipped, not clamped).
	tdapDate := g.end.AddDate(0, 0, -draw.Between(rng, 0, 3650))
	if tdapDate.Before(g.start) || tdapDate.After(g.end) {
		return nil
	}
	return []models.ImmunizationRecord{{
		PatientID:          p.PatientID,
		VaccineName:        "Td/Tdap",
		CVXCode:            reference.CVXTdap,
		AdministrationDate: tdapDate.Format(draw.DateLayout),
		DoseNumber:         1,
		Route:              "Intramuscular",
		Site:               "Left deltoid",
		LotNumber:          fmt.Sprintf("TDAP%06d", draw.Between(rng, 100000, 999999)),
		Manufacturer:       draw.Pick(rng, reference.TdapMakers),
		AdministeredNPI:    draw.NPI(rng),
	}}
}

func (g *ImmunizationGenerator) shingles(rng *rand.Rand, p *models.Patient) []models.ImmunizationRecord {
	if p.Age < reference.ShinglesMinAge || !draw.Bernoulli(rng, reference.ShinglesCoverage) {
		return nil
	}
	return []models.ImmunizationRecord{{
		PatientID:          p.PatientID,
		VaccineName:        "Shingles (Shingrix)",
		CVXCode:            reference.CVXShingles,
		AdministrationDate: draw.DateIn(rng, g.start, g.horizonDays).Format(draw.DateLayout),
		DoseNumber:         1,
		Route:              "Intramuscular",
		Site:               "Left deltoid",
		LotNumber:          fmt.Sprintf("SHING%06d", draw.Between(rng, 100000, 999999)),
		Manufacturer:       "GSK",
		AdministeredNPI:    draw.NPI(rng),
	}}
}

func (g *ImmunizationGenerator) pneumococcal(rng *rand.Rand, p *models.Patient) []models.ImmunizationRecord {
	if p.Age < reference.PneumococcalMinAge || !draw.Bernoulli(rng, reference.PneumococcalCoverage) {
		return nil
	}
	return []models.ImmunizationRecord{{
		PatientID:          p.PatientID,
		VaccineName:        "Pneumococcal (PPSV23)",
		CVXCode:            reference.CVXPneumococcal,
		AdministrationDate: draw.DateIn(rng, g.start, g.horizonDays).Format(draw.DateLayout),
		DoseNumber:         1,
		Route:              "Intramuscular",
		Site:               "Left deltoid",
		LotNumber:          fmt.Sprintf("PNEU%06d", draw.Between(rng, 100000, 999999)),
		Manufacturer:       "Merck",
		AdministeredNPI:    draw.NPI(rng),
	}}
}

func (g *ImmunizationGenerator) covid(rng *rand.Rand, p *models.Patient) []models.ImmunizationRecord {
	if !draw.Bernoulli(rng, reference.CovidCoverage) {
		return nil
	}
	return []models.ImmunizationRecord{{
		PatientID:          p.PatientID,
		VaccineName:        "COVID-19",
		CVXCode:            reference.CVXCovid,
		AdministrationDate: draw.DateIn(rng, g.start, g.horizonDays).Format(draw.DateLayout),
		DoseNumber:         draw.Between(rng, 1, 3),
		Route:              "Intramuscular",
		Site:               "Left deltoid",
		LotNumber:          fmt.Sprintf("COVID%06d", draw.Between(rng, 100000, 999999)),
		Manufacturer:       draw.Pick(rng, reference.CovidMakers),
		AdministeredNPI:    draw.NPI(rng),
	}}
}
