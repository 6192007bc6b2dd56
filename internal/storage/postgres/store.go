package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"github.com/sheikh-saqib/customer-account-ledger/internal/interfaces"
	"github.com/sheikh-saqib/customer-account-ledger/internal/models"
	"github.com/sheikh-saqib/customer-account-ledger/internal/storage"
)

// PostgresAccountStore persists accounts and their ledger logs in two
// tables (see migrations/schema.sql). Ledger entries keep insertion order
// through their bigserial key, never through sorting by timestamp.
type PostgresAccountStore struct {
	db *sql.DB
}

func NewPostgresAccountStore(db *sql.DB) *PostgresAccountStore {
	return &PostgresAccountStore{db: db}
}

func (p *PostgresAccountStore) ListAccountIDs(ctx context.Context) ([]string, error) {
	const query = `SELECT customer_account_id FROM accounts ORDER BY seq`

	rows, err := p.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (p *PostgresAccountStore) FindAccount(ctx context.Context, customerAccountID string) (*models.Account, error) {
	const accountQuery = `SELECT customer_account_id, first_name, last_name
	FROM accounts WHERE customer_account_id = $1`

	account := &models.Account{Ledgers: make(map[string][]models.Entry)}
	err := p.db.QueryRowContext(ctx, accountQuery, customerAccountID).
		Scan(&account.CustomerAccountID, &account.FirstName, &account.LastName)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotExist
	}
	if err != nil {
		return nil, err
	}

	const entriesQuery = `SELECT ledger_name, balance, created_at
	FROM ledger_entries WHERE customer_account_id = $1 ORDER BY id`

	rows, err := p.db.QueryContext(ctx, entriesQuery, customerAccountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			ledgerName string
			entry      models.Entry
		)
		if err := rows.Scan(&ledgerName, &entry.Balance, &entry.Timestamp); err != nil {
			return nil, err
		}
		account.Ledgers[ledgerName] = append(account.Ledgers[ledgerName], entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return account, nil
}

func (p *PostgresAccountStore) InsertAccount(ctx context.Context, account *models.Account) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	const insertAccount = `INSERT INTO accounts (customer_account_id, first_name, last_name)
	VALUES ($1, $2, $3)`

	_, err = tx.ExecContext(ctx, insertAccount,
		account.CustomerAccountID, account.FirstName, account.LastName)
	if isUniqueViolation(err) {
		return storage.ErrExists
	}
	if err != nil {
		return err
	}

	const insertEntry = `INSERT INTO ledger_entries (customer_account_id, ledger_name, balance, created_at)
	VALUES ($1, $2, $3, $4)`

	for _, ledgerName := range models.LedgerNames {
		for _, entry := range account.Ledgers[ledgerName] {
			_, err = tx.ExecContext(ctx, insertEntry,
				account.CustomerAccountID, ledgerName, entry.Balance, entry.Timestamp)
			if err != nil {
				return err
			}
		}
	}
	return tx.Commit()
}

func (p *PostgresAccountStore) AppendEntry(ctx context.Context, customerAccountID, ledgerName string, entry models.Entry) error {
	const query = `INSERT INTO ledger_entries (customer_account_id, ledger_name, balance, created_at)
	VALUES ($1, $2, $3, $4)`

	_, err := p.db.ExecContext(ctx, query, customerAccountID, ledgerName, entry.Balance, entry.Timestamp)
	if isForeignKeyViolation(err) {
		return storage.ErrNotExist
	}
	return err
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23503"
}

var _ interfaces.AccountStore = (*PostgresAccountStore)(nil)
