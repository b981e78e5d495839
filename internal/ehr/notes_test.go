package ehr

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/savegress/medforge/pkg/models"
)

func TestNotes_OnlyForConditionedPatients(t *testing.T) {
	g := NewNoteGenerator(testStart, testEnd)
	rng := rand.New(rand.NewSource(1))

	patients := []models.Patient{
		testPatient("PT00001", 25, models.GenderFemale),
		testPatient("PT00002", 65, models.GenderMale, "Hypertension"),
	}

	notes := g.Generate(rng, patients)
	if len(notes) < 3 || len(notes) > 6 {
		t.Fatalf("got %d notes, want 3-6 for the one conditioned patient", len(notes))
	}
	for _, n := range notes {
		if n.PatientID != "PT00002" {
			t.Errorf("note for %s, want PT00002 only", n.PatientID)
		}
	}
}

func TestNotes_SequentialIDsAndTypes(t *testing.T) {
	g := NewNoteGenerator(testStart, testEnd)
	rng := rand.New(rand.NewSource(2))

	var patients []models.Patient
	for i := 0; i < 10; i++ {
		patients = append(patients,
			testPatient(fmt.Sprintf("PT%05d", i+1), 50, models.GenderFemale, "Anxiety"))
	}

	notes := g.Generate(rng, patients)
	for i, n := range notes {
		want := fmt.Sprintf("NOTE%08d", i+1)
		if n.NoteID != want {
			t.Fatalf("note %d has ID %s, want %s", i, n.NoteID, want)
		}
		switch n.NoteType {
		case models.NoteSOAP, models.NoteProgress, models.NoteConsultation:
		default:
			t.Errorf("unexpected note type %q", n.NoteType)
		}
		if !strings.HasPrefix(n.AuthorName, "Dr. ") {
			t.Errorf("author name %q missing Dr. prefix", n.AuthorName)
		}
	}
}

func TestNotes_TextMentionsConditions(t *testing.T) {
	g := NewNoteGenerator(testStart, testEnd)
	rng := rand.New(rand.NewSource(3))

	patients := []models.Patient{
		testPatient("PT00001", 58, models.GenderMale, "Type 2 Diabetes"),
	}

	for _, n := range g.Generate(rng, patients) {
		if !strings.Contains(n.NoteText, "Type 2 Diabetes") {
			t.Errorf("%s note does not mention the patient's condition", n.NoteType)
		}
		if n.NoteType == models.NoteSOAP {
			if !strings.Contains(n.NoteText, "SUBJECTIVE:") || !strings.Contains(n.NoteText, "Plan:") {
				t.Error("SOAP note missing section headers")
			}
			if !strings.Contains(n.NoteText, "Recheck HbA1c in 3 months") {
				t.Error("diabetic SOAP plan missing HbA1c recheck")
			}
		}
	}
}

func TestSummarizeConditions_CapsAtThree(t *testing.T) {
	got := summarizeConditions([]string{"A", "B", "C", "D"})
	if got != "A, B, C" {
		t.Errorf("summarizeConditions = %q, want first three joined", got)
	}
}
