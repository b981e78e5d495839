package models

// Gender codes used across all tables
const (
	GenderMale      = "M"
	GenderFemale    = "F"
	GenderNonBinary = "X"
)

// Patient represents one member of the synthetic population. Created once by
// the population generator and read-only for every downstream generator.
type Patient struct {
	PatientID     string   `json:"patient_id"`
	FirstName     string   `json:"first_name"`
	LastName      string   `json:"last_name"`
	DateOfBirth   string   `json:"date_of_birth"`
	Age           int      `json:"age"`
	Gender        string   `json:"gender"`
	SSN           string   `json:"ssn"`
	Phone         string   `json:"phone"`
	Email         string   `json:"email"`
	Address       string   `json:"address"`
	City          string   `json:"city"`
	State         string   `json:"state"`
	ZipCode       string   `json:"zip_code"`
	Conditions    []string `json:"conditions"`
	DrugAllergies []string `json:"drug_allergies"`
	FoodAllergies []string `json:"food_allergies"`
	CreatedDate   string   `json:"created_date"`
}

// HasConditions reports whether the patient carries at least one condition.
func (p *Patient) HasConditions() bool {
	return len(p.Conditions) > 0
}

// Diagnosis statuses
const (
	DiagnosisActive   = "Active"
	DiagnosisResolved = "Resolved"
)

// Diagnosis is one ICD-10 coded diagnosis row derived from a patient condition.
type Diagnosis struct {
	PatientID     string `json:"patient_id"`
	DiagnosisCode string `json:"diagnosis_code"`
	Description   string `json:"diagnosis_description"`
	DiagnosisDate string `json:"diagnosis_date"`
	Status        string `json:"status"`
	IsChronic     string `json:"is_chronic"`
	ProviderNPI   string `json:"diagnosing_provider_npi"`
}

// Lab result flags
const (
	FlagNormal   = "Normal"
	FlagAbnormal = "Abnormal"
)

// LabResult is one lab panel component result.
type LabResult struct {
	PatientID      string  `json:"patient_id"`
	OrderDate      string  `json:"order_date"`
	CollectionDate string  `json:"collection_date"`
	ResultDate     string  `json:"result_date"`
	TestName       string  `json:"test_name"`
	TestComponent  string  `json:"test_component"`
	ResultValue    float64 `json:"result_value"`
	Unit           string  `json:"unit"`
	ReferenceRange string  `json:"reference_range"`
	Flag           string  `json:"flag"`
	ProviderNPI    string  `json:"ordering_provider_npi"`
	PerformingLab  string  `json:"performing_lab"`
}

// Prescription is one fill: the original (RefillNumber 0) or a refill of it.
// A refill shares every field of its original except FillDate and
// RefillNumber.
type Prescription struct {
	RxNumber       string  `json:"rx_number"`
	PatientID      string  `json:"patient_id"`
	MedicationName string  `json:"medication_name"`
	NDC            string  `json:"ndc"`
	Quantity       int     `json:"quantity"`
	DaysSupply     int     `json:"days_supply"`
	WrittenDate    string  `json:"written_date"`
	FillDate       string  `json:"fill_date"`
	RefillNumber   int     `json:"refill_number"`
	Sig            string  `json:"sig"`
	PrescriberNPI  string  `json:"prescriber_npi"`
	Copay          float64 `json:"copay"`
	Condition      string  `json:"condition"`
	IsREMS         string  `json:"is_rems"`
}

// Insurance ranks
const (
	RankPrimary   = "Primary"
	RankSecondary = "Secondary"
)

// InsuranceProfile is one pharmacy benefit plan for a patient.
type InsuranceProfile struct {
	PatientID       string `json:"patient_id"`
	Rank            string `json:"insurance_rank"`
	CarrierName     string `json:"carrier_name"`
	RxBIN           string `json:"rx_bin"`
	RxPCN           string `json:"rx_pcn"`
	RxGroup         string `json:"rx_group"`
	CardholderID    string `json:"cardholder_id"`
	PersonCode      string `json:"person_code"`
	EffectiveDate   string `json:"effective_date"`
	TerminationDate string `json:"termination_date"`
}

// Adjudication statuses
const (
	ClaimApproved = "Approved"
	ClaimRejected = "Rejected"
)

// AdjudicationTransaction is the payer response for one prescription fill.
type AdjudicationTransaction struct {
	TransactionID   string  `json:"transaction_id"`
	RxNumber        string  `json:"rx_number"`
	PatientID       string  `json:"patient_id"`
	FillDate        string  `json:"fill_date"`
	RxBIN           string  `json:"rx_bin"`
	RxPCN           string  `json:"rx_pcn"`
	RxGroup         string  `json:"rx_group"`
	CardholderID    string  `json:"cardholder_id"`
	NDC             string  `json:"ndc"`
	Quantity        int     `json:"quantity"`
	DaysSupply      int     `json:"days_supply"`
	SubmittedAmount float64 `json:"submitted_amount"`
	PaidAmount      float64 `json:"paid_amount"`
	PatientPay      float64 `json:"patient_pay"`
	Status          string  `json:"status"`
	RejectCode      string  `json:"reject_code,omitempty"`
	RejectMessage   string  `json:"reject_message,omitempty"`
	Timestamp       string  `json:"transaction_timestamp"`
}

// Clinical note types
const (
	NoteSOAP         = "SOAP"
	NoteProgress     = "Progress"
	NoteConsultation = "Consultation"
)

// ClinicalNote is one free-text encounter note.
type ClinicalNote struct {
	NoteID     string `json:"note_id"`
	PatientID  string `json:"patient_id"`
	NoteDate   string `json:"note_date"`
	NoteType   string `json:"note_type"`
	NoteText   string `json:"note_text"`
	AuthorNPI  string `json:"author_npi"`
	AuthorName string `json:"author_name"`
	Department string `json:"department"`
}

// ImmunizationRecord is one administered vaccine dose.
type ImmunizationRecord struct {
	PatientID          string `json:"patient_id"`
	VaccineName        string `json:"vaccine_name"`
	CVXCode            string `json:"cvx_code"`
	AdministrationDate string `json:"administration_date"`
	DoseNumber         int    `json:"dose_number"`
	Route              string `json:"route"`
	Site               string `json:"site"`
	LotNumber          string `json:"lot_number"`
	Manufacturer       string `json:"manufacturer"`
	AdministeredNPI    string `json:"administered_by_npi"`
}

// Dataset is the full output of one generation run: every table as an
// ordered in-memory sequence of rows.
type Dataset struct {
	RunID         string                    `json:"run_id"`
	Seed          int64                     `json:"seed"`
	Patients      []Patient                 `json:"patients"`
	Insurance     []InsuranceProfile        `json:"insurance"`
	Prescriptions []Prescription            `json:"prescriptions"`
	Transactions  []AdjudicationTransaction `json:"transactions"`
	Diagnoses     []Diagnosis               `json:"diagnoses"`
	Labs          []LabResult               `json:"labs"`
	Notes         []ClinicalNote            `json:"notes"`
	Immunizations []ImmunizationRecord      `json:"immunizations"`
}

// Summary holds per-table counts and headline stats for one run.
type Summary struct {
	RunID          string `json:"run_id"`
	Seed           int64  `json:"seed"`
	Patients       int    `json:"patients"`
	WithConditions int    `json:"patients_with_conditions"`
	Insurance      int    `json:"insurance_profiles"`
	Prescriptions  int    `json:"prescriptions"`
	REMSFills      int    `json:"rems_fills"`
	Transactions   int    `json:"transactions"`
	Rejected       int    `json:"rejected_claims"`
	Diagnoses      int    `json:"diagnoses"`
	Labs           int    `json:"lab_results"`
	AbnormalLabs   int    `json:"abnormal_labs"`
	Notes          int    `json:"clinical_notes"`
	Immunizations  int    `json:"immunizations"`
}

// Summarize computes the run summary for a dataset.
func (d *Dataset) Summarize() Summary {
	s := Summary{
		RunID:         d.RunID,
		Seed:          d.Seed,
		Patients:      len(d.Patients),
		Insurance:     len(d.Insurance),
		Prescriptions: len(d.Prescriptions),
		Transactions:  len(d.Transactions),
		Diagnoses:     len(d.Diagnoses),
		Labs:          len(d.Labs),
		Notes:         len(d.Notes),
		Immunizations: len(d.Immunizations),
	}
	for i := range d.Patients {
		if d.Patients[i].HasConditions() {
			s.WithConditions++
		}
	}
	for i := range d.Prescriptions {
		if d.Prescriptions[i].IsREMS == "Yes" {
			s.REMSFills++
		}
	}
	for i := range d.Transactions {
		if d.Transactions[i].Status == ClaimRejected {
			s.Rejected++
		}
	}
	for i := range d.Labs {
		if d.Labs[i].Flag == FlagAbnormal {
			s.AbnormalLabs++
		}
	}
	return s
}
