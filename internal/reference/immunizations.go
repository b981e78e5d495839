package reference

// ChildhoodVaccine is one entry of the fixed childhood series. The series is
// emitted all-or-none per patient.
type ChildhoodVaccine struct {
	Name     string
	Schedule string
}

// ChildhoodSeries per ACIP guidelines.
var ChildhoodSeries = []ChildhoodVaccine{
	{"DTaP", "ages 2, 4, 6, 15-18 months, 4-6 years"},
	{"Hib", "ages 2, 4, 6, 12-15 months"},
	{"Hepatitis B", "birth, 1-2 months, 6-18 months"},
	{"MMR", "ages 12-15 months, 4-6 years"},
	{"Varicella", "ages 12-15 months, 4-6 years"},
	{"Polio", "ages 2, 4, 6-18 months, 4-6 years"},
}

// ChildhoodSeriesCoverage is the single Bernoulli gate for the whole series.
const ChildhoodSeriesCoverage = 0.80

// Adult vaccine coverage rates and age gates.
const (
	InfluenzaCoverage    = 0.45
	TdapCoverage         = 0.26
	ShinglesCoverage     = 0.33
	ShinglesMinAge       = 50
	PneumococcalCoverage = 0.64
	PneumococcalMinAge   = 65
	CovidCoverage        = 0.70
)

// Fixed CVX codes for adult vaccines. Childhood rows get a random 3-digit
// code, as the pharmacy feed does.
const (
	CVXInfluenza    = "141"
	CVXTdap         = "115"
	CVXShingles     = "187"
	CVXPneumococcal = "033"
	CVXCovid        = "208"
)

// Administration attributes.
var (
	Routes        = []string{"Intramuscular", "Subcutaneous"}
	Sites         = []string{"Left deltoid", "Right deltoid", "Left thigh", "Right thigh"}
	Manufacturers = []string{"Pfizer", "Moderna", "GSK", "Merck", "Sanofi"}
	FluMakers     = []string{"Sanofi", "GSK", "Seqirus"}
	TdapMakers    = []string{"Sanofi", "GSK"}
	CovidMakers   = []string{"Pfizer", "Moderna"}
)
