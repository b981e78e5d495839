package reference

// PanelComponent is one measured component within a condition's lab panel.
type PanelComponent struct {
	TestName  string
	Component string
	Min       float64
	Max       float64
	Unit      string
}

// labPanels maps condition name to its panel. Not every condition has one;
// the lookup reports absence rather than assuming coverage.
var labPanels = map[string][]PanelComponent{
	"Hypertension": {
		{"Basic Metabolic Panel", "Sodium", 135, 145, "mmol/L"},
		{"Basic Metabolic Panel", "Potassium", 3.5, 5.0, "mmol/L"},
		{"Basic Metabolic Panel", "Creatinine", 0.6, 1.2, "mg/dL"},
		{"Lipid Panel", "Total Cholesterol", 125, 200, "mg/dL"},
	},
	"Type 2 Diabetes": {
		{"Hemoglobin A1C", "HbA1c", 4.0, 5.6, "%"},
		{"Basic Metabolic Panel", "Glucose", 70, 100, "mg/dL"},
		{"Comprehensive Metabolic Panel", "Creatinine", 0.6, 1.2, "mg/dL"},
		{"Lipid Panel", "Total Cholesterol", 125, 200, "mg/dL"},
		{"Lipid Panel", "Triglycerides", 0, 150, "mg/dL"},
	},
	"Hyperlipidemia": {
		{"Lipid Panel", "Total Cholesterol", 125, 200, "mg/dL"},
		{"Lipid Panel", "LDL", 0, 100, "mg/dL"},
		{"Lipid Panel", "HDL", 40, 60, "mg/dL"},
		{"Lipid Panel", "Triglycerides", 0, 150, "mg/dL"},
	},
	"Chronic Pain": {
		{"Liver Function Tests", "ALT", 7, 56, "U/L"},
		{"Liver Function Tests", "AST", 10, 40, "U/L"},
		{"Complete Blood Count", "WBC", 4.5, 11.0, "K/uL"},
	},
	"Hypothyroidism": {
		{"Thyroid Function Tests", "TSH", 0.4, 4.0, "mIU/L"},
		{"Thyroid Function Tests", "Free T4", 0.8, 1.8, "ng/dL"},
	},
	"Rheumatoid Arthritis": {
		{"Inflammatory Markers", "CRP", 0, 3.0, "mg/L"},
		{"Inflammatory Markers", "ESR", 0, 20, "mm/hr"},
		{"Complete Blood Count", "WBC", 4.5, 11.0, "K/uL"},
	},
	"COPD": {
		{"Pulmonary Function", "FEV1", 80, 120, "% predicted"},
		{"Arterial Blood Gas", "pH", 7.35, 7.45, ""},
		{"Arterial Blood Gas", "PaO2", 75, 100, "mmHg"},
	},
	"Heart Failure": {
		{"Cardiac Markers", "BNP", 0, 100, "pg/mL"},
		{"Basic Metabolic Panel", "Sodium", 135, 145, "mmol/L"},
		{"Basic Metabolic Panel", "Creatinine", 0.6, 1.2, "mg/dL"},
	},
	"Atrial Fibrillation": {
		{"Coagulation Studies", "INR", 0.8, 1.1, ""},
		{"Cardiac Markers", "Troponin", 0, 0.04, "ng/mL"},
		{"Thyroid Function Tests", "TSH", 0.4, 4.0, "mIU/L"},
	},
}

// PanelFor returns the lab panel defined for a condition, or ok=false when
// the condition has no panel.
func PanelFor(condition string) ([]PanelComponent, bool) {
	panel, ok := labPanels[condition]
	return panel, ok
}

// PerformingLabs are the labs result rows are attributed to.
var PerformingLabs = []string{"Quest Diagnostics", "LabCorp", "Hospital Lab"}
