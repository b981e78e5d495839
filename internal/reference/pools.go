package reference

// Demographic pools. All fakery is drawn from these fixed tables through the
// shared random stream so that a seed reproduces the roster byte-for-byte.

var MaleFirstNames = []string{
	"James", "Michael", "Robert", "John", "David", "William", "Richard",
	"Joseph", "Thomas", "Christopher", "Charles", "Daniel", "Matthew",
	"Anthony", "Mark", "Donald", "Steven", "Andrew", "Paul", "Joshua",
	"Kenneth", "Kevin", "Brian", "George", "Timothy", "Ronald", "Jason",
	"Edward", "Jeffrey", "Ryan", "Jacob", "Gary", "Nicholas", "Eric",
	"Jonathan", "Stephen", "Larry", "Justin", "Scott", "Brandon",
}

var FemaleFirstNames = []string{
	"Mary", "Patricia", "Jennifer", "Linda", "Elizabeth", "Barbara", "Susan",
	"Jessica", "Sarah", "Karen", "Lisa", "Nancy", "Betty", "Sandra",
	"Margaret", "Ashley", "Kimberly", "Emily", "Donna", "Michelle", "Carol",
	"Amanda", "Melissa", "Deborah", "Stephanie", "Dorothy", "Rebecca",
	"Sharon", "Laura", "Cynthia", "Amy", "Kathleen", "Angela", "Shirley",
	"Brenda", "Emma", "Anna", "Pamela", "Nicole", "Samantha",
}

var LastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
	"Davis", "Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez",
	"Wilson", "Anderson", "Thomas", "Taylor", "Moore", "Jackson", "Martin",
	"Lee", "Perez", "Thompson", "White", "Harris", "Sanchez", "Clark",
	"Ramirez", "Lewis", "Robinson", "Walker", "Young", "Allen", "King",
	"Wright", "Scott", "Torres", "Nguyen", "Hill", "Flores", "Green",
	"Adams", "Nelson", "Baker", "Hall", "Rivera", "Campbell", "Mitchell",
}

var Cities = []string{
	"Springfield", "Franklin", "Clinton", "Greenville", "Bristol", "Fairview",
	"Salem", "Madison", "Georgetown", "Arlington", "Ashland", "Burlington",
	"Manchester", "Milton", "Newport", "Oakland", "Centerville", "Lebanon",
	"Kingston", "Riverside", "Cleveland", "Dayton", "Lexington", "Milford",
	"Winchester", "Auburn", "Clayton", "Dover", "Hudson", "Jackson",
}

var StreetNames = []string{
	"Main St", "Oak Ave", "Maple Dr", "Cedar Ln", "Park Ave", "Elm St",
	"Washington St", "Lake Dr", "Hill Rd", "Pine St", "Walnut St",
	"Church St", "Spring St", "Ridge Rd", "Meadow Ln", "Sunset Blvd",
	"River Rd", "Highland Ave", "Forest Dr", "Valley View Rd",
}

var StateAbbrs = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "FL", "GA", "HI", "ID",
	"IL", "IN", "IA", "KS", "KY", "LA", "ME", "MD", "MA", "MI", "MN", "MS",
	"MO", "MT", "NE", "NV", "NH", "NJ", "NM", "NY", "NC", "ND", "OH", "OK",
	"OR", "PA", "RI", "SC", "SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV",
	"WI", "WY",
}

var EmailDomains = []string{
	"gmail.com", "yahoo.com", "hotmail.com", "outlook.com", "aol.com",
}

// Sigs are the prescription instruction strings.
var Sigs = []string{
	"Take 1 tablet by mouth daily",
	"Take 1 tablet by mouth twice daily",
	"Take 1 capsule by mouth once daily",
	"Take 2 tablets by mouth twice daily",
	"Inhale 2 puffs twice daily",
	"Apply topically as directed",
	"Take 1 tablet by mouth at bedtime",
	"Take 1-2 tablets by mouth every 4-6 hours as needed",
	"Inject subcutaneously as directed",
}

// Departments clinical notes are filed under.
var Departments = []string{
	"Primary Care", "Internal Medicine", "Family Medicine", "Specialty Clinic",
}

// Specialties used by consultation notes.
var Specialties = []string{
	"Cardiology", "Endocrinology", "Pulmonology", "Neurology",
}
