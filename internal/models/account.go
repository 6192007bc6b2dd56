package models

import "time"

// The six ledgers every account carries. No ledger is ever added or
// removed after creation; only entries are appended.
const (
	LedgerPrincipal       = "principal"
	LedgerApplicationFee  = "applicationFee"
	LedgerPrincipalPaid   = "principalPaid"
	LedgerInterestFee     = "interestFee"
	LedgerInterestFeePaid = "interestFeePaid"
	LedgerLateFees        = "lateFees"
)

// LedgerNames lists the fixed ledger set in a stable order.
var LedgerNames = []string{
	LedgerPrincipal,
	LedgerApplicationFee,
	LedgerPrincipalPaid,
	LedgerInterestFee,
	LedgerInterestFeePaid,
	LedgerLateFees,
}

// Account is a customer's identity plus its ledger set. Identity fields
// are set once at creation and never change.
type Account struct {
	CustomerAccountID string             `json:"customerAccountId"`
	FirstName         string             `json:"firstName"`
	LastName          string             `json:"lastName"`
	Ledgers           map[string][]Entry `json:"ledgers"`
}

// NewAccount builds an account with all six ledgers seeded with one
// zero-balance entry sharing the given creation timestamp.
func NewAccount(id, firstName, lastName string, createdAt time.Time) *Account {
	ledgers := make(map[string][]Entry, len(LedgerNames))
	for _, name := range LedgerNames {
		ledgers[name] = []Entry{{Timestamp: createdAt, Balance: 0}}
	}
	return &Account{
		CustomerAccountID: id,
		FirstName:         firstName,
		LastName:          lastName,
		Ledgers:           ledgers,
	}
}
