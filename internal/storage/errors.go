// Package storage declares the sentinel errors AccountStore
// implementations use to signal outcomes the service layer must
// distinguish from plain store failures.
package storage

import "errors"

var (
	// ErrNotExist signals the requested account id is not in the store.
	ErrNotExist = errors.New("account does not exist")
	// ErrExists signals an insert collided with an existing account id.
	ErrExists = errors.New("account already exists")
)
