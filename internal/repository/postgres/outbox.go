package postgres

import (
	"context"
	"encoding/json"

	"decentralhire-backend/internal/domain"

	"github.com/jackc/pgx/v5"
)

// insertEvent writes the event row inside the caller's transaction, so an
// event exists iff the mutation it describes committed.
func insertEvent(ctx context.Context, tx pgx.Tx, e *domain.Event) error {
	payload, err := json.Marshal(e.Payload)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO events (id, name, actor_identity, entity_id, payload, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		e.ID, e.Name, e.ActorIdentity, e.EntityID, payload, e.CreatedAt,
	)
	return err
}

// insertFeeLedgerEntry writes the payment record inside the caller's
// transaction; the fee and the entity it paid for commit or fail together.
func insertFeeLedgerEntry(ctx context.Context, tx pgx.Tx, fee *domain.FeeLedgerEntry) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO fee_ledger (id, payer_identity, beneficiary_identity, entity_id, purpose, amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		fee.ID, fee.PayerIdentity, fee.BeneficiaryIdentity, fee.EntityID, fee.Purpose, fee.Amount, fee.CreatedAt,
	)
	return err
}
