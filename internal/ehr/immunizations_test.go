package ehr

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/savegress/medforge/internal/reference"
	"github.com/savegress/medforge/pkg/models"
)

func immunizationsByVaccine(records []models.ImmunizationRecord) map[string][]models.ImmunizationRecord {
	byVaccine := map[string][]models.ImmunizationRecord{}
	for _, r := range records {
		byVaccine[r.VaccineName] = append(byVaccine[r.VaccineName], r)
	}
	return byVaccine
}

func TestImmunizations_AgeGates(t *testing.T) {
	g := NewImmunizationGenerator(testStart, testEnd)
	rng := rand.New(rand.NewSource(1))

	var young []models.Patient
	for i := 0; i < 100; i++ {
		young = append(young, testPatient(fmt.Sprintf("PT%05d", i+1), 40, models.GenderFemale))
	}

	byVaccine := immunizationsByVaccine(g.Generate(rng, young))
	if len(byVaccine["Shingles (Shingrix)"]) != 0 {
		t.Error("shingles doses for patients under 50")
	}
	if len(byVaccine["Pneumococcal (PPSV23)"]) != 0 {
		t.Error("pneumococcal doses for patients under 65")
	}

	var elderly []models.Patient
	for i := 0; i < 100; i++ {
		elderly = append(elderly, testPatient(fmt.Sprintf("PT%05d", i+1), 70, models.GenderMale))
	}
	byVaccine = immunizationsByVaccine(g.Generate(rng, elderly))
	if len(byVaccine["Shingles (Shingrix)"]) == 0 {
		t.Error("no shingles doses across 100 eligible patients")
	}
	if len(byVaccine["Pneumococcal (PPSV23)"]) == 0 {
		t.Error("no pneumococcal doses across 100 eligible patients")
	}
}

func TestImmunizations_ChildhoodSeriesAllOrNone(t *testing.T) {
	g := NewImmunizationGenerator(testStart, testEnd)
	rng := rand.New(rand.NewSource(2))

	var patients []models.Patient
	for i := 0; i < 200; i++ {
		patients = append(patients, testPatient(fmt.Sprintf("PT%05d", i+1), 35, models.GenderFemale))
	}

	childhood := map[string]bool{}
	for _, v := range reference.ChildhoodSeries {
		childhood[v.Name] = true
	}

	perPatient := map[string]int{}
	for _, r := range g.Generate(rng, patients) {
		if childhood[r.VaccineName] {
			perPatient[r.PatientID]++
		}
	}
	for id, count := range perPatient {
		if count != len(reference.ChildhoodSeries) {
			t.Errorf("%s has %d childhood doses, want all %d or none",
				id, count, len(reference.ChildhoodSeries))
		}
	}
	if len(perPatient) == 0 {
		t.Error("no childhood series emitted across 200 patients at 80% coverage")
	}
}

func TestImmunizations_DatesWithinHorizon(t *testing.T) {
	g := NewImmunizationGenerator(testStart, testEnd)
	rng := rand.New(rand.NewSource(3))

	var patients []models.Patient
	for i := 0; i < 100; i++ {
		patients = append(patients, testPatient(fmt.Sprintf("PT%05d", i+1), 75, models.GenderMale))
	}

	for _, r := range g.Generate(rng, patients) {
		date, err := time.Parse("2006-01-02", r.AdministrationDate)
		if err != nil {
			t.Fatalf("unparseable administration date %q: %v", r.AdministrationDate, err)
		}
		if date.Before(testStart) || date.After(testEnd) {
			t.Errorf("%s dose on %s outside horizon", r.VaccineName, r.AdministrationDate)
		}
	}
}

func TestImmunizations_AdultCVXCodesFixed(t *testing.T) {
	g := NewImmunizationGenerator(testStart, testEnd)
	rng := rand.New(rand.NewSource(4))

	var patients []models.Patient
	for i := 0; i < 100; i++ {
		patients = append(patients, testPatient(fmt.Sprintf("PT%05d", i+1), 68, models.GenderFemale))
	}

	want := map[string]string{
		"Influenza":             reference.CVXInfluenza,
		"Td/Tdap":               reference.CVXTdap,
		"Shingles (Shingrix)":   reference.CVXShingles,
		"Pneumococcal (PPSV23)": reference.CVXPneumococcal,
		"COVID-19":              reference.CVXCovid,
	}
	for _, r := range g.Generate(rng, patients) {
		cvx, adult := want[r.VaccineName]
		if adult && r.CVXCode != cvx {
			t.Errorf("%s dose has CVX %s, want %s", r.VaccineName, r.CVXCode, cvx)
		}
		if r.VaccineName == "COVID-19" && (r.DoseNumber < 1 || r.DoseNumber > 3) {
			t.Errorf("COVID dose number %d outside 1-3", r.DoseNumber)
		}
	}
}
