// Package reference holds the static clinical catalogs the generators draw
// from: conditions with their medications and prevalence, lab panels,
// immunization schedules, insurance carriers, rejection codes, allergy
// prevalence and demographic pools. Pure data plus lookups.
package reference

// Medication couples a dispensable name with its NDC so the two can never
// drift apart by index.
type Medication struct {
	Name string
	NDC  string
}

// Condition describes one disease state: its candidate medications, base
// prevalence, an age step factor, an optional gender restriction and the
// flags downstream generators key off.
type Condition struct {
	Name        string
	Medications []Medication
	Prevalence  float64
	AgeFactor   func(age int) float64
	Gender      string // "" means no restriction
	REMS        bool
	ICD10       string
	Chronic     bool // drives the diagnosis chronic flag
	Maintenance bool // refill-eligible
}

// Conditions is the ordered condition universe. Order is load-bearing: the
// prevalence model iterates it in sequence, so reordering changes every
// downstream draw for a given seed.
var Conditions = []Condition{
	{
		Name: "Hypertension",
		Medications: []Medication{
			{"Lisinopril", "00603-5729-21"},
			{"Amlodipine", "00093-7369-98"},
			{"Losartan", "00093-7365-98"},
			{"Metoprolol", "00378-0520-93"},
			{"Hydrochlorothiazide", "00172-4880-60"},
			{"Atenolol", "00378-1050-01"},
		},
		Prevalence:  0.29,
		AgeFactor:   stepOver(45, 1.5, 0.5),
		ICD10:       "I10",
		Chronic:     true,
		Maintenance: true,
	},
	{
		Name: "Type 2 Diabetes",
		Medications: []Medication{
			{"Metformin", "00093-7214-01"},
			{"Glipizide", "00093-7267-01"},
			{"Sitagliptin", "00025-1489-31"},
			{"Empagliflozin", "00597-0143-30"},
			{"Insulin Glargine", "00088-2220-33"},
			{"Dulaglutide", "00002-8977-01"},
		},
		Prevalence:  0.11,
		AgeFactor:   stepOver(45, 2.0, 0.3),
		ICD10:       "E11.9",
		Chronic:     true,
		Maintenance: true,
	},
	{
		Name: "Asthma",
		Medications: []Medication{
			{"Albuterol HFA", "00173-0682-20"},
			{"Fluticasone Prop HFA", "00173-0862-00"},
			{"Montelukast", "00093-7355-56"},
			{"Budesonide/Formoterol", "00186-0791-60"},
			{"Fluticasone/Salmeterol", "00173-0715-20"},
		},
		Prevalence: 0.08,
		AgeFactor: func(age int) float64 {
			if age < 18 || age > 65 {
				return 1.2
			}
			return 1.0
		},
		ICD10:   "J45.909",
		Chronic: true,
	},
	{
		Name: "Hyperlipidemia",
		Medications: []Medication{
			{"Atorvastatin", "00071-0155-23"},
			{"Rosuvastatin", "00093-7663-98"},
			{"Simvastatin", "00093-7352-98"},
			{"Pravastatin", "00093-5108-98"},
			{"Ezetimibe", "00093-7449-98"},
		},
		Prevalence:  0.39,
		AgeFactor:   stepOver(40, 2.5, 0.2),
		ICD10:       "E78.5",
		Maintenance: true,
	},
	{
		Name: "Depression",
		Medications: []Medication{
			{"Sertraline", "00093-7212-01"},
			{"Escitalopram", "00093-5040-98"},
			{"Fluoxetine", "00093-7198-56"},
			{"Bupropion XL", "00591-5443-01"},
			{"Duloxetine", "00093-7383-56"},
			{"Venlafaxine ER", "00093-7390-56"},
		},
		Prevalence: 0.21,
		AgeFactor:  band(18, 44, 1.3, 1.0),
		ICD10:      "F33.1",
	},
	{
		Name: "Anxiety Disorder",
		Medications: []Medication{
			{"Alprazolam", "00093-0253-01"},
			{"Lorazepam", "00054-4469-25"},
			{"Buspirone", "00591-3440-01"},
			{"Hydroxyzine", "00054-3177-25"},
			{"Clonazepam", "00093-0832-01"},
		},
		Prevalence: 0.19,
		AgeFactor:  band(18, 54, 1.2, 0.9),
		ICD10:      "F41.9",
	},
	{
		Name: "GERD",
		Medications: []Medication{
			{"Omeprazole", "00093-7267-56"},
			{"Pantoprazole", "00093-5129-98"},
			{"Esomeprazole", "00093-7711-28"},
			{"Lansoprazole", "00093-2035-98"},
			{"Famotidine", "00093-2748-01"},
		},
		Prevalence: 0.20,
		AgeFactor:  stepOver(50, 1.5, 0.8),
		ICD10:      "K21.9",
	},
	{
		Name: "Hypothyroidism",
		Medications: []Medication{
			{"Levothyroxine 25mcg", "00378-1805-10"},
			{"Levothyroxine 50mcg", "00378-1810-10"},
			{"Levothyroxine 75mcg", "00378-1815-10"},
			{"Levothyroxine 100mcg", "00378-1820-10"},
		},
		Prevalence:  0.05,
		AgeFactor:   stepOver(60, 2.0, 0.5),
		ICD10:       "E03.9",
		Maintenance: true,
	},
	{
		Name: "Osteoarthritis",
		Medications: []Medication{
			{"Meloxicam", "00093-7407-01"},
			{"Celecoxib", "00071-0737-40"},
			{"Diclofenac Sodium", "00591-3699-01"},
			{"Naproxen", "00093-0148-01"},
			{"Tramadol", "00093-0058-01"},
		},
		Prevalence: 0.14,
		AgeFactor:  stepOver(65, 3.0, 0.3),
		ICD10:      "M19.90",
	},
	{
		Name: "Chronic Pain",
		Medications: []Medication{
			{"Hydrocodone/APAP", "00406-0365-01"},
			{"Oxycodone/APAP", "00406-0512-01"},
			{"Morphine Sulfate ER", "00406-8530-01"},
			{"Tramadol", "00093-0058-01"},
			{"Gabapentin", "00093-0366-01"},
		},
		Prevalence: 0.11,
		AgeFactor:  stepOver(50, 1.5, 0.7),
		REMS:       true,
		ICD10:      "G89.29",
	},
	{
		Name: "Schizophrenia",
		Medications: []Medication{
			{"Olanzapine", "00093-7379-56"},
			{"Risperidone", "00093-7243-28"},
			{"Quetiapine", "00093-7725-56"},
			{"Aripiprazole", "00378-3890-93"},
			{"Clozapine", "00378-0555-93"},
		},
		Prevalence: 0.01,
		AgeFactor:  flat(1.0),
		REMS:       true, // clozapine
		ICD10:      "F20.9",
	},
	{
		Name: "Severe Acne",
		Medications: []Medication{
			{"Isotretinoin", "00406-1982-01"},
		},
		Prevalence: 0.001,
		AgeFactor:  band(15, 25, 10.0, 0.01),
		REMS:       true,
		ICD10:      "L70.0",
	},
	{
		Name: "Multiple Sclerosis",
		Medications: []Medication{
			{"Glatiramer Acetate", "00781-5115-31"},
			{"Dimethyl Fumarate", "00555-2020-02"},
			{"Fingolimod", "00078-0607-51"},
		},
		Prevalence: 0.0003,
		AgeFactor:  band(20, 60, 2.0, 0.1),
		REMS:       true, // fingolimod
		ICD10:      "G35",
	},
	{
		Name: "Migraine",
		Medications: []Medication{
			{"Sumatriptan", "00093-2250-11"},
			{"Topiramate", "00093-5074-01"},
			{"Propranolol", "00378-0499-01"},
			{"Amitriptyline", "00093-0057-01"},
			{"Rizatriptan", "00378-6090-93"},
		},
		Prevalence: 0.12,
		AgeFactor:  band(20, 55, 1.5, 0.7),
		ICD10:      "G43.909",
	},
	{
		Name: "Epilepsy",
		Medications: []Medication{
			{"Levetiracetam", "00093-5056-01"},
			{"Lamotrigine", "00093-0160-01"},
			{"Valproic Acid", "00378-1814-01"},
			{"Carbamazepine", "00378-0321-01"},
			{"Phenytoin", "00378-0301-01"},
		},
		Prevalence: 0.01,
		AgeFactor:  flat(1.0),
		ICD10:      "G40.909",
	},
	{
		Name: "Rheumatoid Arthritis",
		Medications: []Medication{
			{"Methotrexate", "00054-0045-25"},
			{"Hydroxychloroquine", "00093-3114-01"},
			{"Sulfasalazine", "00378-6003-01"},
			{"Adalimumab", "00074-4339-02"},
			{"Etanercept", "58406-0435-01"},
		},
		Prevalence: 0.007,
		AgeFactor:  stepOver(50, 2.0, 0.5),
		ICD10:      "M06.9",
	},
	{
		Name: "COPD",
		Medications: []Medication{
			{"Tiotropium Bromide", "00597-0075-41"},
			{"Albuterol/Ipratropium", "00487-9001-99"},
			{"Fluticasone/Vilanterol", "00173-0861-10"},
			{"Umeclidinium/Vilanterol", "00173-0857-10"},
		},
		Prevalence: 0.06,
		AgeFactor:  stepOver(65, 5.0, 0.2),
		ICD10:      "J44.9",
	},
	{
		Name: "Atrial Fibrillation",
		Medications: []Medication{
			{"Apixaban", "00003-0893-21"},
			{"Rivaroxaban", "50458-0597-10"},
			{"Warfarin", "00378-3058-01"},
			{"Metoprolol", "00378-0520-93"},
			{"Diltiazem", "00378-0165-10"},
		},
		Prevalence: 0.033,
		AgeFactor:  stepOver(75, 10.0, 0.1),
		ICD10:      "I48.91",
	},
	{
		Name: "Heart Failure",
		Medications: []Medication{
			{"Furosemide", "00378-0201-01"},
			{"Carvedilol", "00378-1805-01"},
			{"Spironolactone", "00378-0065-01"},
			{"Lisinopril", "00603-5729-21"},
			{"Sacubitril/Valsartan", "00078-0699-15"},
		},
		Prevalence: 0.024,
		AgeFactor:  stepOver(75, 8.0, 0.1),
		ICD10:      "I50.9",
	},
	{
		Name: "Benign Prostatic Hyperplasia",
		Medications: []Medication{
			{"Tamsulosin", "00093-7338-28"},
			{"Finasteride", "00093-1087-01"},
			{"Dutasteride", "00591-3660-01"},
			{"Alfuzosin", "00093-7520-28"},
		},
		Prevalence: 0.14,
		AgeFactor:  stepOver(60, 15.0, 0.0),
		Gender:     "M",
		ICD10:      "N40.0",
	},
	{
		Name: "Overactive Bladder",
		Medications: []Medication{
			{"Oxybutynin", "00378-0685-01"},
			{"Tolterodine", "00093-5147-56"},
			{"Solifenacin", "00093-7667-56"},
			{"Mirabegron", "00591-3752-30"},
		},
		Prevalence: 0.16,
		AgeFactor:  stepOver(65, 3.0, 0.5),
		ICD10:      "N32.81",
	},
}

// stepOver returns a step factor: above when age > threshold, below otherwise.
func stepOver(threshold int, above, below float64) func(int) float64 {
	return func(age int) float64 {
		if age > threshold {
			return above
		}
		return below
	}
}

// band returns inside when lo <= age <= hi, outside otherwise.
func band(lo, hi int, inside, outside float64) func(int) float64 {
	return func(age int) float64 {
		if age >= lo && age <= hi {
			return inside
		}
		return outside
	}
}

// flat returns a constant age factor.
func flat(f float64) func(int) float64 {
	return func(int) float64 { return f }
}

var conditionIndex = buildConditionIndex()

func buildConditionIndex() map[string]*Condition {
	idx := make(map[string]*Condition, len(Conditions))
	for i := range Conditions {
		idx[Conditions[i].Name] = &Conditions[i]
	}
	return idx
}

// ConditionByName looks up a condition definition. The second return is false
// for names outside the universe.
func ConditionByName(name string) (*Condition, bool) {
	c, ok := conditionIndex[name]
	return c, ok
}

// EligibleConditions returns the conditions a patient of the given gender can
// carry, in catalog order.
func EligibleConditions(gender string) []*Condition {
	out := make([]*Condition, 0, len(Conditions))
	for i := range Conditions {
		if Conditions[i].Gender != "" && Conditions[i].Gender != gender {
			continue
		}
		out = append(out, &Conditions[i])
	}
	return out
}

// CodeFor returns the ICD-10 code mapped to a condition name, if any.
func CodeFor(condition string) (code, description string, ok bool) {
	c, found := ConditionByName(condition)
	if !found || c.ICD10 == "" {
		return "", "", false
	}
	return c.ICD10, c.Name, true
}
