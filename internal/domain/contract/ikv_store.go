package contract

import (
	"context"
	"errors"
)

// ErrStorageUnavailable is returned by key-value stores that cannot be reached.
var ErrStorageUnavailable = errors.New("storage unavailable")

// IKeyValueStore is the persisted string store that backs visitor preferences.
// Get reports found=false with a nil error when the key has never been set.
type IKeyValueStore interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
}

// IPreferenceScoper hands out the key-value view that belongs to one visitor.
type IPreferenceScoper interface {
	ForVisitor(visitorID string) IKeyValueStore
}
