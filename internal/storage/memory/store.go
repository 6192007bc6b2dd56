package memory

import (
	"context"
	"sync"

	"github.com/sheikh-saqib/customer-account-ledger/internal/interfaces"
	"github.com/sheikh-saqib/customer-account-ledger/internal/models"
	"github.com/sheikh-saqib/customer-account-ledger/internal/storage"
)

// MemoryAccountStore is an in-memory implementation of
// interfaces.AccountStore. A single mutex serializes all access, so
// concurrent appends to the same ledger are atomic and totally ordered.
type MemoryAccountStore struct {
	mu       sync.Mutex
	accounts map[string]*models.Account
	order    []string // insertion order of account ids
}

func NewMemoryAccountStore() *MemoryAccountStore {
	return &MemoryAccountStore{
		accounts: make(map[string]*models.Account),
	}
}

func (m *MemoryAccountStore) ListAccountIDs(ctx context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ids := make([]string, len(m.order))
	copy(ids, m.order)
	return ids, nil
}

func (m *MemoryAccountStore) FindAccount(ctx context.Context, customerAccountID string) (*models.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	account, ok := m.accounts[customerAccountID]
	if !ok {
		return nil, storage.ErrNotExist
	}
	return copyAccount(account), nil
}

func (m *MemoryAccountStore) InsertAccount(ctx context.Context, account *models.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.accounts[account.CustomerAccountID]; ok {
		return storage.ErrExists
	}
	m.accounts[account.CustomerAccountID] = copyAccount(account)
	m.order = append(m.order, account.CustomerAccountID)
	return nil
}

func (m *MemoryAccountStore) AppendEntry(ctx context.Context, customerAccountID, ledgerName string, entry models.Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	account, ok := m.accounts[customerAccountID]
	if !ok {
		return storage.ErrNotExist
	}
	account.Ledgers[ledgerName] = append(account.Ledgers[ledgerName], entry)
	return nil
}

// copyAccount deep-copies an account so callers can never reach the
// store's internal state.
func copyAccount(a *models.Account) *models.Account {
	out := &models.Account{
		CustomerAccountID: a.CustomerAccountID,
		FirstName:         a.FirstName,
		LastName:          a.LastName,
		Ledgers:           make(map[string][]models.Entry, len(a.Ledgers)),
	}
	for name, entries := range a.Ledgers {
		copied := make([]models.Entry, len(entries))
		copy(copied, entries)
		out.Ledgers[name] = copied
	}
	return out
}

var _ interfaces.AccountStore = (*MemoryAccountStore)(nil)
