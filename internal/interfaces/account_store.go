package interfaces

import (
	"context"

	"github.com/sheikh-saqib/customer-account-ledger/internal/models"
)

// AccountStore is the persistence boundary for customer accounts and their
// ledger logs. Implementations must return snapshots from reads (callers
// may mutate what they get back) and make AppendEntry atomic per account.
type AccountStore interface {
	ListAccountIDs(ctx context.Context) ([]string, error)
	FindAccount(ctx context.Context, customerAccountID string) (*models.Account, error)
	InsertAccount(ctx context.Context, account *models.Account) error
	AppendEntry(ctx context.Context, customerAccountID, ledgerName string, entry models.Entry) error
}
