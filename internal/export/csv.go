// Package export persists a generated dataset: one CSV per table for
// downstream tooling, and a SQLite database for ad-hoc querying.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/savegress/medforge/pkg/models"
)

// CSVWriter writes every dataset table as a CSV file under one directory.
type CSVWriter struct {
	dir string
}

// NewCSVWriter creates a writer rooted at dir. The directory is created on
// the first Write call.
func NewCSVWriter(dir string) *CSVWriter {
	return &CSVWriter{dir: dir}
}

// Write emits all eight table files. Rows keep generation order so two runs
// with the same seed produce byte-identical files.
func (w *CSVWriter) Write(ds *models.Dataset) error {
	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	files := []struct {
		name  string
		write func(*csv.Writer) error
	}{
		{"patients.csv", func(cw *csv.Writer) error { return writePatients(cw, ds.Patients) }},
		{"insurance.csv", func(cw *csv.Writer) error { return writeInsurance(cw, ds.Insurance) }},
		{"prescriptions.csv", func(cw *csv.Writer) error { return writePrescriptions(cw, ds.Prescriptions) }},
		{"adjudication.csv", func(cw *csv.Writer) error { return writeTransactions(cw, ds.Transactions) }},
		{"diagnoses.csv", func(cw *csv.Writer) error { return writeDiagnoses(cw, ds.Diagnoses) }},
		{"lab_results.csv", func(cw *csv.Writer) error { return writeLabs(cw, ds.Labs) }},
		{"clinical_notes.csv", func(cw *csv.Writer) error { return writeNotes(cw, ds.Notes) }},
		{"immunizations.csv", func(cw *csv.Writer) error { return writeImmunizations(cw, ds.Immunizations) }},
	}

	for _, f := range files {
		if err := w.writeFile(f.name, f.write); err != nil {
			return fmt.Errorf("write %s: %w", f.name, err)
		}
	}
	return nil
}

func (w *CSVWriter) writeFile(name string, write func(*csv.Writer) error) error {
	f, err := os.Create(filepath.Join(w.dir, name))
	if err != nil {
		return err
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := write(cw); err != nil {
		return err
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}
	return f.Close()
}

// joinList renders a string list as a single pipe-delimited cell, with a
// placeholder when empty.
func joinList(items []string, empty string) string {
	if len(items) == 0 {
		return empty
	}
	return strings.Join(items, "|")
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func writePatients(cw *csv.Writer, patients []models.Patient) error {
	header := []string{
		"patient_id", "first_name", "last_name", "date_of_birth", "age", "gender",
		"ssn", "phone", "email", "address", "city", "state", "zip_code",
		"conditions", "drug_allergies", "food_allergies", "created_date",
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for i := range patients {
		p := &patients[i]
		err := cw.Write([]string{
			p.PatientID, p.FirstName, p.LastName, p.DateOfBirth, strconv.Itoa(p.Age), p.Gender,
			p.SSN, p.Phone, p.Email, p.Address, p.City, p.State, p.ZipCode,
			joinList(p.Conditions, "None"),
			joinList(p.DrugAllergies, "NKDA"),
			joinList(p.FoodAllergies, "None"),
			p.CreatedDate,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func writeInsurance(cw *csv.Writer, profiles []models.InsuranceProfile) error {
	header := []string{
		"patient_id", "insurance_rank", "carrier_name", "rx_bin", "rx_pcn",
		"rx_group", "cardholder_id", "person_code", "effective_date", "termination_date",
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for i := range profiles {
		p := &profiles[i]
		err := cw.Write([]string{
			p.PatientID, p.Rank, p.CarrierName, p.RxBIN, p.RxPCN,
			p.RxGroup, p.CardholderID, p.PersonCode, p.EffectiveDate, p.TerminationDate,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func writePrescriptions(cw *csv.Writer, fills []models.Prescription) error {
	header := []string{
		"rx_number", "patient_id", "medication_name", "ndc", "quantity", "days_supply",
		"written_date", "fill_date", "refill_number", "sig", "prescriber_npi",
		"copay", "condition", "is_rems",
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for i := range fills {
		f := &fills[i]
		err := cw.Write([]string{
			f.RxNumber, f.PatientID, f.MedicationName, f.NDC,
			strconv.Itoa(f.Quantity), strconv.Itoa(f.DaysSupply),
			f.WrittenDate, f.FillDate, strconv.Itoa(f.RefillNumber),
			f.Sig, f.PrescriberNPI, money(f.Copay), f.Condition, f.IsREMS,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func writeTransactions(cw *csv.Writer, txns []models.AdjudicationTransaction) error {
	header := []string{
		"transaction_id", "rx_number", "patient_id", "fill_date",
		"rx_bin", "rx_pcn", "rx_group", "cardholder_id", "ndc",
		"quantity", "days_supply", "submitted_amount", "paid_amount", "patient_pay",
		"status", "reject_code", "reject_message", "transaction_timestamp",
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for i := range txns {
		t := &txns[i]
		err := cw.Write([]string{
			t.TransactionID, t.RxNumber, t.PatientID, t.FillDate,
			t.RxBIN, t.RxPCN, t.RxGroup, t.CardholderID, t.NDC,
			strconv.Itoa(t.Quantity), strconv.Itoa(t.DaysSupply),
			money(t.SubmittedAmount), money(t.PaidAmount), money(t.PatientPay),
			t.Status, t.RejectCode, t.RejectMessage, t.Timestamp,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func writeDiagnoses(cw *csv.Writer, diagnoses []models.Diagnosis) error {
	header := []string{
		"patient_id", "diagnosis_code", "diagnosis_description", "diagnosis_date",
		"status", "is_chronic", "diagnosing_provider_npi",
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for i := range diagnoses {
		d := &diagnoses[i]
		err := cw.Write([]string{
			d.PatientID, d.DiagnosisCode, d.Description, d.DiagnosisDate,
			d.Status, d.IsChronic, d.ProviderNPI,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func writeLabs(cw *csv.Writer, labs []models.LabResult) error {
	header := []string{
		"patient_id", "order_date", "collection_date", "result_date",
		"test_name", "test_component", "result_value", "unit",
		"reference_range", "flag", "ordering_provider_npi", "performing_lab",
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for i := range labs {
		l := &labs[i]
		err := cw.Write([]string{
			l.PatientID, l.OrderDate, l.CollectionDate, l.ResultDate,
			l.TestName, l.TestComponent, number(l.ResultValue), l.Unit,
			l.ReferenceRange, l.Flag, l.ProviderNPI, l.PerformingLab,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func writeNotes(cw *csv.Writer, notes []models.ClinicalNote) error {
	header := []string{
		"note_id", "patient_id", "note_date", "note_type", "note_text",
		"author_npi", "author_name", "department",
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for i := range notes {
		n := &notes[i]
		err := cw.Write([]string{
			n.NoteID, n.PatientID, n.NoteDate, n.NoteType, n.NoteText,
			n.AuthorNPI, n.AuthorName, n.Department,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func writeImmunizations(cw *csv.Writer, records []models.ImmunizationRecord) error {
	header := []string{
		"patient_id", "vaccine_name", "cvx_code", "administration_date", "dose_number",
		"route", "site", "lot_number", "manufacturer", "administered_by_npi",
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for i := range records {
		r := &records[i]
		err := cw.Write([]string{
			r.PatientID, r.VaccineName, r.CVXCode, r.AdministrationDate,
			strconv.Itoa(r.DoseNumber), r.Route, r.Site, r.LotNumber,
			r.Manufacturer, r.AdministeredNPI,
		})
		if err != nil {
			return err
		}
	}
	return nil
}
