package ehr

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/savegress/medforge/internal/draw"
	"github.com/savegress/medforge/internal/reference"
	"github.com/savegress/medforge/pkg/models"
)

// noteTypeSlots weight SOAP and progress notes over consultations 2:2:1.
var noteTypeSlots = []string{
	models.NoteSOAP, models.NoteSOAP,
	models.NoteProgress, models.NoteProgress,
	models.NoteConsultation,
}

// NoteGenerator writes free-text encounter notes for conditioned patients.
type NoteGenerator struct {
	start       time.Time
	horizonDays int
}

// NewNoteGenerator creates a note generator for the given horizon.
func NewNoteGenerator(start, end time.Time) *NoteGenerator {
	return &NoteGenerator{
		start:       start,
		horizonDays: int(end.Sub(start).Hours() / 24),
	}
}

// Generate emits 3-6 notes per patient with at least one condition.
// Condition-free patients get none; routine-visit filler text would add
// noise without any clinical signal to correlate against.
func (g *NoteGenerator) Generate(rng *rand.Rand, patients []models.Patient) []models.ClinicalNote {
	var notes []models.ClinicalNote
	counter := 1

	for i := range patients {
		p := &patients[i]
		if !p.HasConditions() {
			continue
		}

		numNotes := draw.Between(rng, 3, 6)
		for n := 0; n < numNotes; n++ {
			noteDate := draw.DateIn(rng, g.start, g.horizonDays)
			noteType := draw.Pick(rng, noteTypeSlots)

			notes = append(notes, models.ClinicalNote{
				NoteID:     fmt.Sprintf("NOTE%08d", counter),
				PatientID:  p.PatientID,
				NoteDate:   noteDate.Format(draw.DateLayout),
				NoteType:   noteType,
				NoteText:   g.noteText(rng, p, noteType),
				AuthorNPI:  draw.NPI(rng),
				AuthorName: drawAuthorName(rng),
				Department: draw.Pick(rng, reference.Departments),
			})
			counter++
		}
	}
	return notes
}

func (g *NoteGenerator) noteText(rng *rand.Rand, p *models.Patient, noteType string) string {
	conditionText := summarizeConditions(p.Conditions)

	switch noteType {
	case models.NoteSOAP:
		return g.soapNote(rng, p, conditionText)
	case models.NoteConsultation:
		return g.consultationNote(rng, p, conditionText)
	default:
		return g.progressNote(rng, p, conditionText)
	}
}

func (g *NoteGenerator) soapNote(rng *rand.Rand, p *models.Patient, conditionText string) string {
	subjectives := []string{
		fmt.Sprintf("Patient presents for follow-up of %s. Reports feeling generally well.", conditionText),
		fmt.Sprintf("Patient seen for management of %s. No new complaints today.", conditionText),
		fmt.Sprintf("%d-year-old %s with history of %s presents for routine follow-up.", p.Age, p.Gender, conditionText),
	}
	subjective := draw.Pick(rng, subjectives)

	vitals := fmt.Sprintf("BP %d/%d, HR %d, RR %d, Temp %.1f°F, O2 Sat %d%% on room air",
		draw.Between(rng, 110, 140), draw.Between(rng, 70, 90),
		draw.Between(rng, 60, 90), draw.Between(rng, 12, 20),
		97.8+rng.Float64()*1.4, draw.Between(rng, 95, 100))
	objective := fmt.Sprintf("Vital Signs: %s. General: Alert and oriented. Well-appearing. Physical exam unremarkable for stated conditions.", vitals)

	var stable []string
	for _, c := range p.Conditions {
		stable = append(stable, c+" - stable")
		if len(stable) == 2 {
			break
		}
	}
	assessment := "Assessment: " + strings.Join(stable, ", ")

	planItems := []string{
		"Continue current medications as prescribed",
		"Follow up in 3 months or sooner if concerns",
		"Reinforced medication adherence and lifestyle modifications",
	}
	for _, c := range p.Conditions {
		switch c {
		case "Type 2 Diabetes":
			planItems = append(planItems, "Recheck HbA1c in 3 months")
		case "Hypertension":
			planItems = append(planItems, "Monitor blood pressure at home")
		}
	}
	plan := "Plan: " + strings.Join(planItems, "; ")

	return fmt.Sprintf("SUBJECTIVE:\n%s\n\nOBJECTIVE:\n%s\n\nASSESSMENT:\n%s\n\n%s",
		subjective, objective, assessment, plan)
}

func (g *NoteGenerator) progressNote(rng *rand.Rand, p *models.Patient, conditionText string) string {
	name := p.FirstName + " " + p.LastName
	templates := []string{
		fmt.Sprintf("Progress Note:\nPatient: %s, %dyo %s\nChief Complaint: Follow-up %s\n"+
			"Patient continues management of %s. Current medications reviewed and refilled as appropriate. "+
			"Patient counseled on importance of medication adherence and lifestyle modifications. "+
			"No acute concerns at this time. Will continue current plan of care.",
			name, p.Age, p.Gender, conditionText, conditionText),
		fmt.Sprintf("Visit Note:\n%s seen today for %s management. "+
			"Patient reports good adherence to medications. Reviewed recent lab results with patient. "+
			"Plan to continue current regimen and follow up as scheduled.",
			name, conditionText),
	}
	return draw.Pick(rng, templates)
}

func (g *NoteGenerator) consultationNote(rng *rand.Rand, p *models.Patient, conditionText string) string {
	specialty := draw.Pick(rng, reference.Specialties)
	return fmt.Sprintf("Consultation Note - %s\nPatient: %s %s, %dyo %s\nReason for Consultation: %s\n\n"+
		"Thank you for this consultation. I have reviewed the patient's history and examination. "+
		"Patient has been managing %s. I recommend continuation of current therapy with close monitoring. "+
		"Will coordinate care with primary care provider.",
		specialty, p.FirstName, p.LastName, p.Age, p.Gender, conditionText, conditionText)
}

// summarizeConditions names up to three conditions for the note body.
func summarizeConditions(conditions []string) string {
	if len(conditions) > 3 {
		conditions = conditions[:3]
	}
	return strings.Join(conditions, ", ")
}

func drawAuthorName(rng *rand.Rand) string {
	var first string
	if rng.Intn(2) == 0 {
		first = draw.Pick(rng, reference.MaleFirstNames)
	} else {
		first = draw.Pick(rng, reference.FemaleFirstNames)
	}
	return "Dr. " + first + " " + draw.Pick(rng, reference.LastNames)
}
