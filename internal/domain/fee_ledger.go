package domain

import (
	"time"

	"github.com/google/uuid"
)

// Ledger purposes
const (
	FeePurposeJobPosting     = "job_posting_fee"
	FeePurposeJobApplication = "job_application_fee"
)

// FeePolicy is the configured payment policy for the two gated creations.
// Amounts are in gwei; payments at or above the minimum are accepted and
// ledgered in full to the treasury identity.
type FeePolicy struct {
	PostingFee       int64
	ApplicationFee   int64
	TreasuryIdentity string
}

// FeeLedgerEntry records one accepted payment. Entries are written in the
// same transaction as the entity they paid for, so a fee can be neither
// dropped nor counted twice.
type FeeLedgerEntry struct {
	ID                  uuid.UUID `json:"id"`
	PayerIdentity       string    `json:"payer_identity"`
	BeneficiaryIdentity string    `json:"beneficiary_identity"`
	EntityID            uuid.UUID `json:"entity_id"`
	Purpose             string    `json:"purpose"`
	Amount              int64     `json:"amount"`
	CreatedAt           time.Time `json:"created_at"`
}

// NewFeeLedgerEntry builds a ledger entry for a payment toward entityID.
func NewFeeLedgerEntry(payer, beneficiary string, entityID uuid.UUID, purpose string, amount int64) *FeeLedgerEntry {
	return &FeeLedgerEntry{
		ID:                  uuid.New(),
		PayerIdentity:       payer,
		BeneficiaryIdentity: beneficiary,
		EntityID:            entityID,
		Purpose:             purpose,
		Amount:              amount,
		CreatedAt:           time.Now().UTC(),
	}
}
