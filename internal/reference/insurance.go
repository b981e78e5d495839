package reference

import "strings"

// Carrier is one pharmacy benefit carrier with its claim routing identifiers.
type Carrier struct {
	Name        string
	BIN         string
	PCN         string
	GroupPrefix string
}

// Carriers is the carrier catalog. Medicare and Medicaid are looked up by
// name for the age/income routing rules.
var Carriers = []Carrier{
	{"Express Scripts", "003858", "MEDDADV", "RX"},
	{"CVS Caremark", "610020", "CHOICE", "CV"},
	{"OptumRx", "610097", "OPTUM", "OP"},
	{"Humana", "610455", "PBM", "HM"},
	{"Aetna", "610455", "A1", "AE"},
	{"Blue Cross Blue Shield", "610029", "BCBS", "BC"},
	{"Cigna", "011506", "CIGNA", "CI"},
	{"United Healthcare", "610020", "UNITED", "UN"},
	{"Medicare Part D", "610455", "MEDICARE", "MD"},
	{"Medicaid", "610014", "MEDICAID", "MC"},
}

// CarrierNamed returns the first carrier whose name contains the given
// substring. Panics if absent: the routing rules reference catalog members.
func CarrierNamed(substr string) Carrier {
	for _, c := range Carriers {
		if strings.Contains(c.Name, substr) {
			return c
		}
	}
	panic("reference: no carrier named " + substr)
}

// RejectCode pairs an NCPDP-style rejection code with its message.
type RejectCode struct {
	Code    string
	Message string
}

// RejectCodes is the rejection catalog, in fixed draw order.
var RejectCodes = []RejectCode{
	{"M1", "Prior Authorization Required"},
	{"M2", "Step Therapy Required"},
	{"75", "Prior Authorization Required"},
	{"76", "Plan Limitations Exceeded"},
	{"79", "Refill Too Soon"},
	{"70", "Product Not Covered"},
	{"NN", "DUR Reject - Duplicate Therapy"},
	{"88", "DUR Reject - Drug-Drug Interaction"},
	{"MR", "Max Quantity Exceeded"},
}

// IsRejectCode reports membership in the rejection catalog.
func IsRejectCode(code string) bool {
	for _, rc := range RejectCodes {
		if rc.Code == code {
			return true
		}
	}
	return false
}
