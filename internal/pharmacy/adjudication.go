package pharmacy

import (
	"fmt"
	"hash/fnv"
	"math/rand"

	"github.com/savegress/medforge/internal/draw"
	"github.com/savegress/medforge/internal/reference"
	"github.com/savegress/medforge/pkg/models"
)

// AdjudicationConfig tunes the claim generator.
type AdjudicationConfig struct {
	RejectionRate float64
}

// AdjudicationGenerator turns prescription fills into payer transactions
// against each patient's Primary insurance.
type AdjudicationGenerator struct {
	cfg AdjudicationConfig
}

// NewAdjudicationGenerator creates a claim generator.
func NewAdjudicationGenerator(cfg AdjudicationConfig) *AdjudicationGenerator {
	return &AdjudicationGenerator{cfg: cfg}
}

// Generate emits one transaction per fill. Fills whose patient has no
// Primary profile are silently skipped; that is an omission, not an error.
// Rejections pick a uniform catalog code and force paid to zero. Approvals
// price against an average wholesale price discounted 5-30%; the submitted
// amount is an independent draw from the same range and deliberately not
// reconciled with the AWP.
func (g *AdjudicationGenerator) Generate(rng *rand.Rand, fills []models.Prescription, profiles []models.InsuranceProfile) []models.AdjudicationTransaction {
	primary := PrimaryIndex(profiles)

	var txns []models.AdjudicationTransaction
	for i := range fills {
		rx := &fills[i]
		ins, ok := primary[rx.PatientID]
		if !ok {
			continue
		}

		txn := models.AdjudicationTransaction{
			TransactionID: TransactionID(rx.RxNumber, rx.FillDate),
			RxNumber:      rx.RxNumber,
			PatientID:     rx.PatientID,
			FillDate:      rx.FillDate,
			RxBIN:         ins.RxBIN,
			RxPCN:         ins.RxPCN,
			RxGroup:       ins.RxGroup,
			CardholderID:  ins.CardholderID,
			NDC:           rx.NDC,
			Quantity:      rx.Quantity,
			DaysSupply:    rx.DaysSupply,
			PatientPay:    rx.Copay,
		}

		if draw.Bernoulli(rng, g.cfg.RejectionRate) {
			rc := draw.Pick(rng, reference.RejectCodes)
			txn.Status = models.ClaimRejected
			txn.RejectCode = rc.Code
			txn.RejectMessage = rc.Message
			txn.PaidAmount = 0
		} else {
			awp := draw.Money(rng, 50, 800)
			txn.Status = models.ClaimApproved
			txn.PaidAmount = draw.Round2(awp * (0.70 + rng.Float64()*0.25))
		}

		txn.SubmittedAmount = draw.Money(rng, 50, 800)
		txn.Timestamp = fmt.Sprintf("%sT%02d:%02d:00",
			rx.FillDate, draw.Between(rng, 8, 20), draw.Between(rng, 0, 59))

		txns = append(txns, txn)
	}

	return txns
}

// TransactionID derives a stable claim identifier from the fill it pays:
// same rx_number and fill_date always hash to the same ID, so reruns with
// the same seed reproduce the transaction table exactly.
func TransactionID(rxNumber, fillDate string) string {
	h := fnv.New64a()
	h.Write([]byte(rxNumber + fillDate))
	return fmt.Sprintf("TXN%07d", h.Sum64()%10000000)
}
