package events

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNopPublisher(t *testing.T) {
	assert.NoError(t, NopPublisher{}.Publish(context.Background(), TopicAccountCreated, nil))
}

func TestEventConstructors(t *testing.T) {
	occurred := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	created := NewAccountCreated("A1", occurred)
	assert.NotEmpty(t, created.EventID)
	assert.Equal(t, "A1", created.CustomerAccountID)
	assert.Equal(t, occurred, created.OccurredAt)

	appended := NewEntryAppended("A1", "principal", 500, occurred)
	assert.NotEmpty(t, appended.EventID)
	assert.NotEqual(t, created.EventID, appended.EventID)
	assert.Equal(t, int64(500), appended.Balance)
}
