package ledger

import (
	"time"

	"github.com/sheikh-saqib/customer-account-ledger/internal/models"
)

// asOf returns the last entry whose timestamp is at or before target.
// Entries are scanned forward in log order: the scan advances to the first
// entry strictly after target and yields its predecessor. The log is
// treated purely as a sequence; it is never sorted. ok is false when
// target predates the first entry or the log is empty.
func asOf(target time.Time, entries []models.Entry) (models.Entry, bool) {
	i := 0
	for i < len(entries) && !entries[i].Timestamp.After(target) {
		i++
	}
	if i == 0 {
		return models.Entry{}, false
	}
	return entries[i-1], true
}
