// Package ledger implements the customer account ledger: account
// creation, append-only balance mutation and the balance query
// operations, on top of an injected AccountStore.
package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/sheikh-saqib/customer-account-ledger/internal/events"
	"github.com/sheikh-saqib/customer-account-ledger/internal/interfaces"
	"github.com/sheikh-saqib/customer-account-ledger/internal/ledgererr"
	"github.com/sheikh-saqib/customer-account-ledger/internal/models"
	"github.com/sheikh-saqib/customer-account-ledger/internal/storage"
	"github.com/sheikh-saqib/customer-account-ledger/internal/timeparse"
)

const defaultCacheTTL = time.Minute

// Service is the core ledger service. It holds no state of its own;
// everything lives in the injected store. The redis client is optional
// and only accelerates CurrentBalances.
type Service struct {
	store     interfaces.AccountStore
	publisher interfaces.EventPublisher
	cache     *redis.Client
	cacheTTL  time.Duration
	logger    *zap.Logger
	now       func() time.Time
}

func NewService(store interfaces.AccountStore, publisher interfaces.EventPublisher, cache *redis.Client, logger *zap.Logger) *Service {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:     store,
		publisher: publisher,
		cache:     cache,
		cacheTTL:  defaultCacheTTL,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// SetCacheTTL overrides the lifetime of cached balance reads.
func (s *Service) SetCacheTTL(ttl time.Duration) {
	if ttl > 0 {
		s.cacheTTL = ttl
	}
}

// ListAccountIDs returns every known customer account id.
func (s *Service) ListAccountIDs(ctx context.Context) ([]string, error) {
	ids, err := s.store.ListAccountIDs(ctx)
	if err != nil {
		return nil, ledgererr.Wrap(ledgererr.StoreUnavailable, "listing account ids", err)
	}
	return ids, nil
}

// GetAccount returns the full account snapshot, ledgers included.
func (s *Service) GetAccount(ctx context.Context, customerAccountID string) (*models.Account, error) {
	if customerAccountID == "" {
		return nil, ledgererr.New(ledgererr.InvalidInput, "customerAccountId is required")
	}
	return s.findAccount(ctx, customerAccountID)
}

// CreateAccount creates an account with the six fixed ledgers, each
// seeded with a single zero-balance entry at one shared creation instant.
// Duplicate ids are rejected.
func (s *Service) CreateAccount(ctx context.Context, customerAccountID, firstName, lastName string) (*models.Account, error) {
	if customerAccountID == "" || firstName == "" || lastName == "" {
		return nil, ledgererr.New(ledgererr.InvalidInput, "customerAccountId, firstName and lastName are required")
	}

	createdAt := s.now()
	account := models.NewAccount(customerAccountID, firstName, lastName, createdAt)

	if err := s.store.InsertAccount(ctx, account); err != nil {
		if errors.Is(err, storage.ErrExists) {
			return nil, ledgererr.New(ledgererr.Conflict,
				fmt.Sprintf("customer account %q already exists", customerAccountID))
		}
		return nil, ledgererr.Wrap(ledgererr.StoreUnavailable, "creating account", err)
	}

	s.publish(ctx, events.TopicAccountCreated, events.NewAccountCreated(customerAccountID, createdAt))
	return account, nil
}

// AppendEntry appends a (now, balance) entry to one of the account's
// ledgers and returns the entry. Names outside the account's fixed
// ledger set are rejected; appending never creates a new ledger.
func (s *Service) AppendEntry(ctx context.Context, customerAccountID, ledgerName string, balance int64) (models.Entry, error) {
	if customerAccountID == "" {
		return models.Entry{}, ledgererr.New(ledgererr.InvalidInput, "customerAccountId is required")
	}
	if ledgerName == "" {
		return models.Entry{}, ledgererr.New(ledgererr.InvalidInput, "ledgerName is required")
	}

	account, err := s.findAccount(ctx, customerAccountID)
	if err != nil {
		return models.Entry{}, err
	}
	if _, ok := account.Ledgers[ledgerName]; !ok {
		return models.Entry{}, unknownLedger(ledgerName)
	}

	entry := models.Entry{Timestamp: s.now(), Balance: balance}
	if err := s.store.AppendEntry(ctx, customerAccountID, ledgerName, entry); err != nil {
		if errors.Is(err, storage.ErrNotExist) {
			return models.Entry{}, notFound(customerAccountID)
		}
		return models.Entry{}, ledgererr.Wrap(ledgererr.StoreUnavailable, "appending ledger entry", err)
	}

	s.invalidateBalances(ctx, customerAccountID)
	s.publish(ctx, events.TopicEntryAppended,
		events.NewEntryAppended(customerAccountID, ledgerName, balance, entry.Timestamp))
	return entry, nil
}

// CurrentBalances returns the latest balance of every ledger. Reads go
// through the redis cache when one is configured; any cache failure falls
// back to the store.
func (s *Service) CurrentBalances(ctx context.Context, customerAccountID string) (map[string]int64, error) {
	if customerAccountID == "" {
		return nil, ledgererr.New(ledgererr.InvalidInput, "customerAccountId is required")
	}

	cacheKey := balancesCacheKey(customerAccountID)
	if s.cache != nil {
		if val, err := s.cache.Get(ctx, cacheKey).Result(); err == nil {
			var balances map[string]int64
			if jsonErr := json.Unmarshal([]byte(val), &balances); jsonErr == nil {
				return balances, nil
			}
		}
	}

	account, err := s.findAccount(ctx, customerAccountID)
	if err != nil {
		return nil, err
	}

	balances := make(map[string]int64, len(account.Ledgers))
	for name, entries := range account.Ledgers {
		if len(entries) == 0 {
			continue
		}
		balances[name] = entries[len(entries)-1].Balance
	}

	if s.cache != nil {
		if data, err := json.Marshal(balances); err == nil {
			_ = s.cache.Set(ctx, cacheKey, data, s.cacheTTL).Err()
		}
	}
	return balances, nil
}

// PreviousBalance returns the second-to-last balance of one ledger,
// clamped to the oldest entry when the log holds fewer than two.
func (s *Service) PreviousBalance(ctx context.Context, customerAccountID, ledgerName string) (int64, error) {
	entries, err := s.ledgerEntries(ctx, customerAccountID, ledgerName)
	if err != nil {
		return 0, err
	}

	if len(entries) < 2 {
		return entries[0].Balance, nil
	}
	return entries[len(entries)-2].Balance, nil
}

// BalanceAsOf returns the entry in effect at the given time for one
// ledger. The raw timestamp is parsed leniently; a target predating all
// history yields NoPriorBalance.
func (s *Service) BalanceAsOf(ctx context.Context, customerAccountID, ledgerName, rawTimestamp string) (models.Entry, error) {
	entries, err := s.ledgerEntries(ctx, customerAccountID, ledgerName)
	if err != nil {
		return models.Entry{}, err
	}

	target, ok := timeparse.Parse(rawTimestamp)
	if !ok {
		return models.Entry{}, ledgererr.New(ledgererr.InvalidInput,
			fmt.Sprintf("unparsable timestamp %q", rawTimestamp))
	}

	entry, ok := asOf(target, entries)
	if !ok {
		return models.Entry{}, ledgererr.New(ledgererr.NoPriorBalance,
			fmt.Sprintf("no balance on ledger %q at or before %s", ledgerName, target.Format(time.RFC3339)))
	}
	return entry, nil
}

// ledgerEntries resolves one ledger's log, validating the account and
// ledger name. The returned log is never empty: creation seeds one entry
// and appends only add, but the guard stays in case a store is loaded
// with hand-written data.
func (s *Service) ledgerEntries(ctx context.Context, customerAccountID, ledgerName string) ([]models.Entry, error) {
	if customerAccountID == "" {
		return nil, ledgererr.New(ledgererr.InvalidInput, "customerAccountId is required")
	}
	if ledgerName == "" {
		return nil, ledgererr.New(ledgererr.InvalidInput, "ledgerName is required")
	}

	account, err := s.findAccount(ctx, customerAccountID)
	if err != nil {
		return nil, err
	}

	entries, ok := account.Ledgers[ledgerName]
	if !ok || len(entries) == 0 {
		return nil, unknownLedger(ledgerName)
	}
	return entries, nil
}

func (s *Service) findAccount(ctx context.Context, customerAccountID string) (*models.Account, error) {
	account, err := s.store.FindAccount(ctx, customerAccountID)
	if errors.Is(err, storage.ErrNotExist) {
		return nil, notFound(customerAccountID)
	}
	if err != nil {
		return nil, ledgererr.Wrap(ledgererr.StoreUnavailable, "finding account", err)
	}
	return account, nil
}

func (s *Service) publish(ctx context.Context, topic string, event any) {
	if err := s.publisher.Publish(ctx, topic, event); err != nil {
		s.logger.Warn("event publish failed", zap.String("topic", topic), zap.Error(err))
	}
}

func (s *Service) invalidateBalances(ctx context.Context, customerAccountID string) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Del(ctx, balancesCacheKey(customerAccountID)).Err()
}

func balancesCacheKey(customerAccountID string) string {
	return "balances:" + customerAccountID
}

func notFound(customerAccountID string) error {
	return ledgererr.New(ledgererr.NotFound,
		fmt.Sprintf("no customer account %q", customerAccountID))
}

func unknownLedger(ledgerName string) error {
	return ledgererr.New(ledgererr.UnknownLedger,
		fmt.Sprintf("no ledger %q on this account", ledgerName))
}
