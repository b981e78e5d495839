package pharmacy

import (
	"math/rand"
	"testing"

	"github.com/savegress/medforge/internal/reference"
	"github.com/savegress/medforge/pkg/models"
)

func testFill(rx, patientID, fillDate string) models.Prescription {
	return models.Prescription{
		RxNumber:   rx,
		PatientID:  patientID,
		FillDate:   fillDate,
		NDC:        "00093-7214-01",
		Quantity:   30,
		DaysSupply: 30,
		Copay:      12.50,
	}
}

func testPrimary(patientID string) models.InsuranceProfile {
	return models.InsuranceProfile{
		PatientID:    patientID,
		Rank:         models.RankPrimary,
		CarrierName:  "Cigna",
		RxBIN:        "011506",
		RxPCN:        "CIGNA",
		RxGroup:      "CI12345",
		CardholderID: "123456789",
	}
}

func TestAdjudication_SkipsUninsured(t *testing.T) {
	g := NewAdjudicationGenerator(AdjudicationConfig{RejectionRate: 0.15})
	rng := rand.New(rand.NewSource(1))

	fills := []models.Prescription{
		testFill("RX00000001", "PT00001", "2024-03-01"),
		testFill("RX00000002", "PT00002", "2024-03-02"),
	}
	profiles := []models.InsuranceProfile{testPrimary("PT00001")}

	txns := g.Generate(rng, fills, profiles)
	if len(txns) != 1 {
		t.Fatalf("got %d transactions, want 1 (uninsured fill skipped silently)", len(txns))
	}
	if txns[0].PatientID != "PT00001" {
		t.Errorf("transaction for %s, want PT00001", txns[0].PatientID)
	}
}

func TestAdjudication_RejectionInvariants(t *testing.T) {
	// Force every claim down the rejection path.
	g := NewAdjudicationGenerator(AdjudicationConfig{RejectionRate: 1.0})
	rng := rand.New(rand.NewSource(2))

	var fills []models.Prescription
	for i := 0; i < 50; i++ {
		fills = append(fills, testFill("RX"+string(rune('A'+i)), "PT00001", "2024-05-01"))
	}

	for _, txn := range g.Generate(rng, fills, []models.InsuranceProfile{testPrimary("PT00001")}) {
		if txn.Status != models.ClaimRejected {
			t.Fatalf("status = %s, want Rejected", txn.Status)
		}
		if txn.PaidAmount != 0 {
			t.Errorf("rejected claim paid %.2f, want 0", txn.PaidAmount)
		}
		if !reference.IsRejectCode(txn.RejectCode) {
			t.Errorf("reject code %q not in catalog", txn.RejectCode)
		}
		if txn.RejectMessage == "" {
			t.Error("rejected claim missing message")
		}
	}
}

func TestAdjudication_ApprovalInvariants(t *testing.T) {
	g := NewAdjudicationGenerator(AdjudicationConfig{RejectionRate: 0.0})
	rng := rand.New(rand.NewSource(3))

	var fills []models.Prescription
	for i := 0; i < 50; i++ {
		fills = append(fills, testFill("RX"+string(rune('A'+i)), "PT00001", "2024-05-01"))
	}

	for _, txn := range g.Generate(rng, fills, []models.InsuranceProfile{testPrimary("PT00001")}) {
		if txn.Status != models.ClaimApproved {
			t.Fatalf("status = %s, want Approved", txn.Status)
		}
		if txn.RejectCode != "" || txn.RejectMessage != "" {
			t.Error("approved claim carries a reject code")
		}
		// Paid is AWP in [50,800) discounted to 70-95%.
		if txn.PaidAmount < 50*0.70 || txn.PaidAmount > 800*0.95 {
			t.Errorf("paid amount %.2f outside plausible AWP discount range", txn.PaidAmount)
		}
		if txn.SubmittedAmount < 50 || txn.SubmittedAmount > 800 {
			t.Errorf("submitted amount %.2f outside 50-800", txn.SubmittedAmount)
		}
	}
}

func TestAdjudication_RoutingFromPrimary(t *testing.T) {
	g := NewAdjudicationGenerator(AdjudicationConfig{RejectionRate: 0.15})
	rng := rand.New(rand.NewSource(4))

	fills := []models.Prescription{testFill("RX00000001", "PT00001", "2024-03-01")}
	ins := testPrimary("PT00001")

	txns := g.Generate(rng, fills, []models.InsuranceProfile{ins})
	if len(txns) != 1 {
		t.Fatal("expected one transaction")
	}
	txn := txns[0]
	if txn.RxBIN != ins.RxBIN || txn.RxPCN != ins.RxPCN || txn.RxGroup != ins.RxGroup || txn.CardholderID != ins.CardholderID {
		t.Error("transaction routing fields should copy the primary profile")
	}
	if txn.PatientPay != fills[0].Copay {
		t.Errorf("patient pay %.2f, want copay %.2f", txn.PatientPay, fills[0].Copay)
	}
	if len(txn.Timestamp) != 19 || txn.Timestamp[:10] != "2024-03-01" || txn.Timestamp[10] != 'T' {
		t.Errorf("timestamp %q not fill-date anchored", txn.Timestamp)
	}
}

func TestTransactionID_Deterministic(t *testing.T) {
	a := TransactionID("RX00000001", "2024-03-01")
	b := TransactionID("RX00000001", "2024-03-01")
	if a != b {
		t.Error("same fill should produce the same transaction ID")
	}
	if a == TransactionID("RX00000001", "2024-03-02") {
		t.Error("different fill dates should produce different IDs")
	}
	if len(a) != 10 || a[:3] != "TXN" {
		t.Errorf("transaction ID %q not TXN-prefixed fixed width", a)
	}
}
