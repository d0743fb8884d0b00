package usecase

import (
	"context"
	"encoding/json"

	"github.com/mikiasgoitom/Prompaty/internal/domain/contract"
	"github.com/mikiasgoitom/Prompaty/internal/infrastructure/metrics"
	usecasecontract "github.com/mikiasgoitom/Prompaty/internal/usecase/contract"
)

// Preference keys. The values are byte-compatible with the browser layout:
// a JSON array of prompt ids and a JSON object of post id to reaction tag.
const (
	LikedPromptsKey      = "likedPrompts"
	UserPostReactionsKey = "userPostReactions"
)

// loadPreference decodes the JSON stored under key into dst.
// A missing key leaves dst untouched and counts as success. Read and decode
// failures are logged and reported as false; callers then keep their
// in-memory state.
func loadPreference(ctx context.Context, kv contract.IKeyValueStore, key string, dst interface{}, logger usecasecontract.IAppLogger) bool {
	raw, found, err := kv.Get(ctx, key)
	if err != nil {
		metrics.IncPreferenceFailure("read")
		logger.Errorf("Error reading %s from preference store: %v", key, err)
		return false
	}
	if !found || raw == "" {
		return true
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		metrics.IncPreferenceFailure("decode")
		logger.Errorf("Error decoding %s from preference store: %v", key, err)
		return false
	}
	return true
}

// savePreference encodes v as JSON and writes it under key. Failures are
// logged, never returned.
func savePreference(ctx context.Context, kv contract.IKeyValueStore, key string, v interface{}, logger usecasecontract.IAppLogger) bool {
	data, err := json.Marshal(v)
	if err != nil {
		metrics.IncPreferenceFailure("encode")
		logger.Errorf("Error encoding %s for preference store: %v", key, err)
		return false
	}
	if err := kv.Set(ctx, key, string(data)); err != nil {
		metrics.IncPreferenceFailure("write")
		logger.Errorf("Error saving %s to preference store: %v", key, err)
		return false
	}
	return true
}
