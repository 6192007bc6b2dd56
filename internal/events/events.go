// Package events defines the payloads published after successful
// mutations. Publishing is best-effort; consumers must not assume
// delivery.
package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	TopicAccountCreated = "account_created"
	TopicEntryAppended  = "ledger_entry_appended"
)

type AccountCreated struct {
	EventID           string    `json:"event_id"`
	CustomerAccountID string    `json:"customer_account_id"`
	OccurredAt        time.Time `json:"occurred_at"`
}

type EntryAppended struct {
	EventID           string    `json:"event_id"`
	CustomerAccountID string    `json:"customer_account_id"`
	LedgerName        string    `json:"ledger_name"`
	Balance           int64     `json:"balance"`
	OccurredAt        time.Time `json:"occurred_at"`
}

func NewAccountCreated(customerAccountID string, occurredAt time.Time) AccountCreated {
	return AccountCreated{
		EventID:           uuid.New().String(),
		CustomerAccountID: customerAccountID,
		OccurredAt:        occurredAt,
	}
}

func NewEntryAppended(customerAccountID, ledgerName string, balance int64, occurredAt time.Time) EntryAppended {
	return EntryAppended{
		EventID:           uuid.New().String(),
		CustomerAccountID: customerAccountID,
		LedgerName:        ledgerName,
		Balance:           balance,
		OccurredAt:        occurredAt,
	}
}
