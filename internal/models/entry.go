package models

import "time"

// Entry is a single point in a ledger's balance history.
type Entry struct {
	Timestamp time.Time `json:"timestamp"`
	Balance   int64     `json:"balance"` // may be negative (e.g. a credit)
}
