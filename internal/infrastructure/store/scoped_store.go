package store

import (
	"context"
	"fmt"

	"github.com/mikiasgoitom/Prompaty/internal/domain/contract"
)

func visitorKey(visitorID, key string) string { return fmt.Sprintf("visitor:%s:%s", visitorID, key) }

// ScopedStore confines a visitor to its own slice of the underlying store.
type ScopedStore struct {
	kv        contract.IKeyValueStore
	visitorID string
}

var _ contract.IKeyValueStore = (*ScopedStore)(nil)

func (s *ScopedStore) Get(ctx context.Context, key string) (string, bool, error) {
	return s.kv.Get(ctx, visitorKey(s.visitorID, key))
}

func (s *ScopedStore) Set(ctx context.Context, key, value string) error {
	return s.kv.Set(ctx, visitorKey(s.visitorID, key), value)
}

// VisitorScope hands out ScopedStores over one shared store.
type VisitorScope struct {
	kv contract.IKeyValueStore
}

var _ contract.IPreferenceScoper = (*VisitorScope)(nil)

func NewVisitorScope(kv contract.IKeyValueStore) *VisitorScope {
	return &VisitorScope{kv: kv}
}

func (v *VisitorScope) ForVisitor(visitorID string) contract.IKeyValueStore {
	return &ScopedStore{kv: v.kv, visitorID: visitorID}
}
