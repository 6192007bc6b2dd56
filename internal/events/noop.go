package events

import (
	"context"

	"github.com/sheikh-saqib/customer-account-ledger/internal/interfaces"
)

// NopPublisher discards every event. Used when no brokers are configured.
type NopPublisher struct{}

func (NopPublisher) Publish(ctx context.Context, topic string, event any) error { return nil }

var _ interfaces.EventPublisher = NopPublisher{}
