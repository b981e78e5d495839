package reference

// AllergyPrevalence pairs an allergen with its independent Bernoulli rate.
type AllergyPrevalence struct {
	Name string
	Rate float64
}

// DrugAllergies in fixed draw order.
var DrugAllergies = []AllergyPrevalence{
	{"Penicillin", 0.10},
	{"Sulfa drugs", 0.03},
	{"Codeine", 0.02},
	{"Aspirin", 0.02},
	{"NSAIDs", 0.015},
	{"Amoxicillin", 0.01},
	{"Cephalosporins", 0.01},
}

// FoodAllergies in fixed draw order.
var FoodAllergies = []AllergyPrevalence{
	{"Peanuts", 0.02},
	{"Tree nuts", 0.015},
	{"Shellfish", 0.02},
	{"Eggs", 0.013},
	{"Milk", 0.026},
	{"Soy", 0.004},
	{"Wheat", 0.01},
	{"Fish", 0.005},
}
