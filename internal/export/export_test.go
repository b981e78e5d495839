package export

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/savegress/medforge/pkg/models"
)

func testDataset() *models.Dataset {
	return &models.Dataset{
		RunID: "run-test",
		Seed:  42,
		Patients: []models.Patient{
			{
				PatientID: "PT00001", FirstName: "Maria", LastName: "Chen",
				DateOfBirth: "1956-03-14", Age: 69, Gender: models.GenderFemale,
				Conditions:    []string{"Hypertension", "Type 2 Diabetes"},
				DrugAllergies: []string{"Penicillin"},
				CreatedDate:   "2024-01-01",
			},
			{
				PatientID: "PT00002", FirstName: "James", LastName: "Okafor",
				DateOfBirth: "1990-07-02", Age: 35, Gender: models.GenderMale,
				CreatedDate: "2024-01-01",
			},
		},
		Insurance: []models.InsuranceProfile{
			{PatientID: "PT00001", Rank: models.RankPrimary, CarrierName: "Aetna"},
		},
		Prescriptions: []models.Prescription{
			{RxNumber: "RX00000001", PatientID: "PT00001", MedicationName: "Lisinopril",
				Quantity: 30, DaysSupply: 30, Copay: 12.5, IsREMS: "No"},
		},
		Transactions: []models.AdjudicationTransaction{
			{TransactionID: "TXN0000001", RxNumber: "RX00000001", PatientID: "PT00001",
				SubmittedAmount: 123.456, PaidAmount: 100, Status: models.ClaimApproved},
		},
		Diagnoses: []models.Diagnosis{
			{PatientID: "PT00001", DiagnosisCode: "I10", Status: models.DiagnosisActive},
		},
		Labs: []models.LabResult{
			{PatientID: "PT00001", TestName: "BMP", TestComponent: "Sodium",
				ResultValue: 140.5, Flag: models.FlagNormal},
		},
		Notes: []models.ClinicalNote{
			{NoteID: "NOTE00000001", PatientID: "PT00001", NoteType: models.NoteSOAP},
		},
		Immunizations: []models.ImmunizationRecord{
			{PatientID: "PT00001", VaccineName: "Influenza", CVXCode: "141", DoseNumber: 1},
		},
	}
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	return rows
}

func TestCSVWriter_AllTables(t *testing.T) {
	dir := t.TempDir()
	if err := NewCSVWriter(dir).Write(testDataset()); err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{
		"patients.csv", "insurance.csv", "prescriptions.csv", "adjudication.csv",
		"diagnoses.csv", "lab_results.csv", "clinical_notes.csv", "immunizations.csv",
	} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}
}

func TestCSVWriter_PatientPlaceholders(t *testing.T) {
	dir := t.TempDir()
	if err := NewCSVWriter(dir).Write(testDataset()); err != nil {
		t.Fatal(err)
	}

	rows := readCSV(t, filepath.Join(dir, "patients.csv"))
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want header plus 2 patients", len(rows))
	}
	header := rows[0]
	col := map[string]int{}
	for i, h := range header {
		col[h] = i
	}

	conditioned, bare := rows[1], rows[2]
	if got := conditioned[col["conditions"]]; got != "Hypertension|Type 2 Diabetes" {
		t.Errorf("conditions cell %q, want pipe-joined list", got)
	}
	if got := bare[col["conditions"]]; got != "None" {
		t.Errorf("empty conditions cell %q, want None", got)
	}
	if got := bare[col["drug_allergies"]]; got != "NKDA" {
		t.Errorf("empty drug allergies cell %q, want NKDA", got)
	}
}

func TestCSVWriter_MoneyFormat(t *testing.T) {
	dir := t.TempDir()
	if err := NewCSVWriter(dir).Write(testDataset()); err != nil {
		t.Fatal(err)
	}

	rows := readCSV(t, filepath.Join(dir, "adjudication.csv"))
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want header plus 1 transaction", len(rows))
	}
	col := map[string]int{}
	for i, h := range rows[0] {
		col[h] = i
	}
	if got := rows[1][col["submitted_amount"]]; got != "123.46" {
		t.Errorf("submitted amount %q, want two-decimal 123.46", got)
	}
	if got := rows[1][col["paid_amount"]]; got != "100.00" {
		t.Errorf("paid amount %q, want 100.00", got)
	}
}

func TestSQLiteStore_SaveAndCount(t *testing.T) {
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "medforge.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	ds := testDataset()
	ctx := context.Background()
	if err := store.Save(ctx, ds); err != nil {
		t.Fatal(err)
	}

	counts := map[string]int{
		"patients":       len(ds.Patients),
		"insurance":      len(ds.Insurance),
		"prescriptions":  len(ds.Prescriptions),
		"adjudication":   len(ds.Transactions),
		"diagnoses":      len(ds.Diagnoses),
		"lab_results":    len(ds.Labs),
		"clinical_notes": len(ds.Notes),
		"immunizations":  len(ds.Immunizations),
	}
	for table, want := range counts {
		got, err := store.CountRows(ctx, table, ds.RunID)
		if err != nil {
			t.Fatalf("count %s: %v", table, err)
		}
		if got != want {
			t.Errorf("%s has %d rows, want %d", table, got, want)
		}
	}

	if _, err := store.CountRows(ctx, "patients; DROP TABLE runs", ds.RunID); err == nil {
		t.Error("expected error for unknown table name")
	}
}

func TestSQLiteStore_DuplicateRunRejected(t *testing.T) {
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "medforge.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	ctx := context.Background()
	ds := testDataset()
	if err := store.Save(ctx, ds); err != nil {
		t.Fatal(err)
	}
	if err := store.Save(ctx, ds); err == nil {
		t.Error("expected error saving the same run ID twice")
	}
}
