package ledgererr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	err := New(NotFound, "no customer account")
	assert.Equal(t, NotFound, KindOf(err))
	assert.True(t, Is(err, NotFound))
	assert.False(t, Is(err, Conflict))

	assert.Equal(t, Kind(0), KindOf(nil))
	assert.Equal(t, Kind(0), KindOf(errors.New("plain")))
}

func TestKindOfWrapped(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(StoreUnavailable, "finding account", cause)

	assert.True(t, Is(err, StoreUnavailable))
	assert.ErrorIs(t, err, cause)

	// Kind survives another layer of wrapping.
	outer := fmt.Errorf("handler: %w", err)
	assert.True(t, Is(outer, StoreUnavailable))
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "conflict: id exists", New(Conflict, "id exists").Error())
	assert.Contains(t, Wrap(StoreUnavailable, "insert", errors.New("boom")).Error(), "boom")
}
