package export

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/savegress/medforge/pkg/models"
)

// SQLiteStore persists datasets into a SQLite database, one schema shared by
// every run and keyed by run_id.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (creating if needed) the database at dbPath.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_synchronous=NORMAL")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}
	return s, nil
}

func (s *SQLiteStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		run_id TEXT PRIMARY KEY,
		seed INTEGER NOT NULL,
		created_at INTEGER DEFAULT (strftime('%s', 'now'))
	);

	CREATE TABLE IF NOT EXISTS patients (
		run_id TEXT NOT NULL,
		patient_id TEXT NOT NULL,
		first_name TEXT, last_name TEXT, date_of_birth TEXT,
		age INTEGER, gender TEXT, ssn TEXT, phone TEXT, email TEXT,
		address TEXT, city TEXT, state TEXT, zip_code TEXT,
		conditions TEXT, drug_allergies TEXT, food_allergies TEXT,
		created_date TEXT,
		PRIMARY KEY (run_id, patient_id)
	);

	CREATE TABLE IF NOT EXISTS insurance (
		run_id TEXT NOT NULL,
		patient_id TEXT NOT NULL,
		insurance_rank TEXT, carrier_name TEXT,
		rx_bin TEXT, rx_pcn TEXT, rx_group TEXT,
		cardholder_id TEXT, person_code TEXT,
		effective_date TEXT, termination_date TEXT
	);

	CREATE TABLE IF NOT EXISTS prescriptions (
		run_id TEXT NOT NULL,
		rx_number TEXT NOT NULL,
		patient_id TEXT NOT NULL,
		medication_name TEXT, ndc TEXT,
		quantity INTEGER, days_supply INTEGER,
		written_date TEXT, fill_date TEXT, refill_number INTEGER,
		sig TEXT, prescriber_npi TEXT, copay REAL,
		condition TEXT, is_rems TEXT
	);

	CREATE TABLE IF NOT EXISTS adjudication (
		run_id TEXT NOT NULL,
		transaction_id TEXT NOT NULL,
		rx_number TEXT, patient_id TEXT, fill_date TEXT,
		rx_bin TEXT, rx_pcn TEXT, rx_group TEXT, cardholder_id TEXT,
		ndc TEXT, quantity INTEGER, days_supply INTEGER,
		submitted_amount REAL, paid_amount REAL, patient_pay REAL,
		status TEXT, reject_code TEXT, reject_message TEXT,
		transaction_timestamp TEXT
	);

	CREATE TABLE IF NOT EXISTS diagnoses (
		run_id TEXT NOT NULL,
		patient_id TEXT NOT NULL,
		diagnosis_code TEXT, diagnosis_description TEXT, diagnosis_date TEXT,
		status TEXT, is_chronic TEXT, diagnosing_provider_npi TEXT
	);

	CREATE TABLE IF NOT EXISTS lab_results (
		run_id TEXT NOT NULL,
		patient_id TEXT NOT NULL,
		order_date TEXT, collection_date TEXT, result_date TEXT,
		test_name TEXT, test_component TEXT, result_value REAL,
		unit TEXT, reference_range TEXT, flag TEXT,
		ordering_provider_npi TEXT, performing_lab TEXT
	);

	CREATE TABLE IF NOT EXISTS clinical_notes (
		run_id TEXT NOT NULL,
		note_id TEXT NOT NULL,
		patient_id TEXT NOT NULL,
		note_date TEXT, note_type TEXT, note_text TEXT,
		author_npi TEXT, author_name TEXT, department TEXT
	);

	CREATE TABLE IF NOT EXISTS immunizations (
		run_id TEXT NOT NULL,
		patient_id TEXT NOT NULL,
		vaccine_name TEXT, cvx_code TEXT, administration_date TEXT,
		dose_number INTEGER, route TEXT, site TEXT,
		lot_number TEXT, manufacturer TEXT, administered_by_npi TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_prescriptions_patient ON prescriptions(run_id, patient_id);
	CREATE INDEX IF NOT EXISTS idx_adjudication_rx ON adjudication(run_id, rx_number);
	CREATE INDEX IF NOT EXISTS idx_labs_patient ON lab_results(run_id, patient_id);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Save writes the full dataset in one transaction.
func (s *SQLiteStore) Save(ctx context.Context, ds *models.Dataset) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO runs (run_id, seed) VALUES (?, ?)`, ds.RunID, ds.Seed); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	if err := s.savePatients(ctx, tx, ds); err != nil {
		return err
	}
	if err := s.saveInsurance(ctx, tx, ds); err != nil {
		return err
	}
	if err := s.savePrescriptions(ctx, tx, ds); err != nil {
		return err
	}
	if err := s.saveTransactions(ctx, tx, ds); err != nil {
		return err
	}
	if err := s.saveEHRTables(ctx, tx, ds); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *SQLiteStore) savePatients(ctx context.Context, tx *sql.Tx, ds *models.Dataset) error {
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO patients
		(run_id, patient_id, first_name, last_name, date_of_birth, age, gender,
		 ssn, phone, email, address, city, state, zip_code,
		 conditions, drug_allergies, food_allergies, created_date)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare patients insert: %w", err)
	}
	defer stmt.Close()

	for i := range ds.Patients {
		p := &ds.Patients[i]
		_, err := stmt.ExecContext(ctx, ds.RunID, p.PatientID, p.FirstName, p.LastName,
			p.DateOfBirth, p.Age, p.Gender, p.SSN, p.Phone, p.Email,
			p.Address, p.City, p.State, p.ZipCode,
			strings.Join(p.Conditions, "|"), strings.Join(p.DrugAllergies, "|"),
			strings.Join(p.FoodAllergies, "|"), p.CreatedDate)
		if err != nil {
			return fmt.Errorf("insert patient %s: %w", p.PatientID, err)
		}
	}
	return nil
}

func (s *SQLiteStore) saveInsurance(ctx context.Context, tx *sql.Tx, ds *models.Dataset) error {
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO insurance
		(run_id, patient_id, insurance_rank, carrier_name, rx_bin, rx_pcn,
		 rx_group, cardholder_id, person_code, effective_date, termination_date)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insurance insert: %w", err)
	}
	defer stmt.Close()

	for i := range ds.Insurance {
		p := &ds.Insurance[i]
		_, err := stmt.ExecContext(ctx, ds.RunID, p.PatientID, p.Rank, p.CarrierName,
			p.RxBIN, p.RxPCN, p.RxGroup, p.CardholderID, p.PersonCode,
			p.EffectiveDate, p.TerminationDate)
		if err != nil {
			return fmt.Errorf("insert insurance for %s: %w", p.PatientID, err)
		}
	}
	return nil
}

func (s *SQLiteStore) savePrescriptions(ctx context.Context, tx *sql.Tx, ds *models.Dataset) error {
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO prescriptions
		(run_id, rx_number, patient_id, medication_name, ndc, quantity, days_supply,
		 written_date, fill_date, refill_number, sig, prescriber_npi, copay, condition, is_rems)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare prescriptions insert: %w", err)
	}
	defer stmt.Close()

	for i := range ds.Prescriptions {
		f := &ds.Prescriptions[i]
		_, err := stmt.ExecContext(ctx, ds.RunID, f.RxNumber, f.PatientID, f.MedicationName,
			f.NDC, f.Quantity, f.DaysSupply, f.WrittenDate, f.FillDate, f.RefillNumber,
			f.Sig, f.PrescriberNPI, f.Copay, f.Condition, f.IsREMS)
		if err != nil {
			return fmt.Errorf("insert prescription %s: %w", f.RxNumber, err)
		}
	}
	return nil
}

func (s *SQLiteStore) saveTransactions(ctx context.Context, tx *sql.Tx, ds *models.Dataset) error {
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO adjudication
		(run_id, transaction_id, rx_number, patient_id, fill_date,
		 rx_bin, rx_pcn, rx_group, cardholder_id, ndc, quantity, days_supply,
		 submitted_amount, paid_amount, patient_pay, status, reject_code,
		 reject_message, transaction_timestamp)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare adjudication insert: %w", err)
	}
	defer stmt.Close()

	for i := range ds.Transactions {
		t := &ds.Transactions[i]
		_, err := stmt.ExecContext(ctx, ds.RunID, t.TransactionID, t.RxNumber, t.PatientID,
			t.FillDate, t.RxBIN, t.RxPCN, t.RxGroup, t.CardholderID, t.NDC,
			t.Quantity, t.DaysSupply, t.SubmittedAmount, t.PaidAmount, t.PatientPay,
			t.Status, t.RejectCode, t.RejectMessage, t.Timestamp)
		if err != nil {
			return fmt.Errorf("insert transaction %s: %w", t.TransactionID, err)
		}
	}
	return nil
}

func (s *SQLiteStore) saveEHRTables(ctx context.Context, tx *sql.Tx, ds *models.Dataset) error {
	dxStmt, err := tx.PrepareContext(ctx, `INSERT INTO diagnoses
		(run_id, patient_id, diagnosis_code, diagnosis_description, diagnosis_date,
		 status, is_chronic, diagnosing_provider_npi)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare diagnoses insert: %w", err)
	}
	defer dxStmt.Close()

	for i := range ds.Diagnoses {
		d := &ds.Diagnoses[i]
		_, err := dxStmt.ExecContext(ctx, ds.RunID, d.PatientID, d.DiagnosisCode,
			d.Description, d.DiagnosisDate, d.Status, d.IsChronic, d.ProviderNPI)
		if err != nil {
			return fmt.Errorf("insert diagnosis for %s: %w", d.PatientID, err)
		}
	}

	labStmt, err := tx.PrepareContext(ctx, `INSERT INTO lab_results
		(run_id, patient_id, order_date, collection_date, result_date,
		 test_name, test_component, result_value, unit, reference_range, flag,
		 ordering_provider_npi, performing_lab)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare labs insert: %w", err)
	}
	defer labStmt.Close()

	for i := range ds.Labs {
		l := &ds.Labs[i]
		_, err := labStmt.ExecContext(ctx, ds.RunID, l.PatientID, l.OrderDate,
			l.CollectionDate, l.ResultDate, l.TestName, l.TestComponent,
			l.ResultValue, l.Unit, l.ReferenceRange, l.Flag, l.ProviderNPI, l.PerformingLab)
		if err != nil {
			return fmt.Errorf("insert lab result for %s: %w", l.PatientID, err)
		}
	}

	noteStmt, err := tx.PrepareContext(ctx, `INSERT INTO clinical_notes
		(run_id, note_id, patient_id, note_date, note_type, note_text,
		 author_npi, author_name, department)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare notes insert: %w", err)
	}
	defer noteStmt.Close()

	for i := range ds.Notes {
		n := &ds.Notes[i]
		_, err := noteStmt.ExecContext(ctx, ds.RunID, n.NoteID, n.PatientID,
			n.NoteDate, n.NoteType, n.NoteText, n.AuthorNPI, n.AuthorName, n.Department)
		if err != nil {
			return fmt.Errorf("insert note %s: %w", n.NoteID, err)
		}
	}

	immStmt, err := tx.PrepareContext(ctx, `INSERT INTO immunizations
		(run_id, patient_id, vaccine_name, cvx_code, administration_date,
		 dose_number, route, site, lot_number, manufacturer, administered_by_npi)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare immunizations insert: %w", err)
	}
	defer immStmt.Close()

	for i := range ds.Immunizations {
		r := &ds.Immunizations[i]
		_, err := immStmt.ExecContext(ctx, ds.RunID, r.PatientID, r.VaccineName,
			r.CVXCode, r.AdministrationDate, r.DoseNumber, r.Route, r.Site,
			r.LotNumber, r.Manufacturer, r.AdministeredNPI)
		if err != nil {
			return fmt.Errorf("insert immunization for %s: %w", r.PatientID, err)
		}
	}
	return nil
}

// CountRows returns the row count of one table for a run.
func (s *SQLiteStore) CountRows(ctx context.Context, table, runID string) (int, error) {
	switch table {
	case "patients", "insurance", "prescriptions", "adjudication",
		"diagnoses", "lab_results", "clinical_notes", "immunizations":
	default:
		return 0, fmt.Errorf("unknown table %q", table)
	}
	var n int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM "+table+" WHERE run_id = ?", runID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return n, nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
