package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// The store is deliberately key-value shaped: each slot holds one JSON
// document that is read and rewritten whole. Slot keys are part of the
// stored contract and must not change.
const (
	slotTransactions = "transactions"
	slotInvestments  = "investments"
	slotPending      = "pending-transactions"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx, so slot helpers
// work inside and outside explicit transactions.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// readSlot unmarshals the payload of key into dest. A missing slot leaves
// dest untouched, so callers get their zero value for a never-written slot.
func readSlot(ctx context.Context, q querier, key string, dest any) error {
	var payload []byte
	err := q.QueryRow(ctx, `SELECT payload FROM storage_slots WHERE slot_key = $1;`, key).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read slot %s: %w", key, err)
	}
	if err := json.Unmarshal(payload, dest); err != nil {
		return fmt.Errorf("failed to decode slot %s: %w", key, err)
	}
	return nil
}

// readSlotForUpdate is readSlot with a row lock, for read-modify-write
// sequences inside a transaction.
func readSlotForUpdate(ctx context.Context, tx pgx.Tx, key string, dest any) error {
	var payload []byte
	err := tx.QueryRow(ctx, `SELECT payload FROM storage_slots WHERE slot_key = $1 FOR UPDATE;`, key).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read slot %s: %w", key, err)
	}
	if err := json.Unmarshal(payload, dest); err != nil {
		return fmt.Errorf("failed to decode slot %s: %w", key, err)
	}
	return nil
}

// writeSlot replaces the payload of key with the JSON encoding of value.
func writeSlot(ctx context.Context, q querier, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode slot %s: %w", key, err)
	}
	query := `
		INSERT INTO storage_slots (slot_key, payload)
		VALUES ($1, $2)
		ON CONFLICT (slot_key) DO UPDATE SET payload = EXCLUDED.payload;
	`
	if _, err := q.Exec(ctx, query, key, payload); err != nil {
		return fmt.Errorf("failed to write slot %s: %w", key, err)
	}
	return nil
}
