package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mikiasgoitom/Prompaty/internal/domain/contract"
	"github.com/mikiasgoitom/Prompaty/internal/domain/entity"
)

// ContentCacheStore caches prompts and posts as JSON in Redis.
type ContentCacheStore struct {
	rdb *redis.Client
	ttl time.Duration
}

var _ contract.IContentCache = (*ContentCacheStore)(nil)

func NewContentCacheStore(rdb *redis.Client, ttl time.Duration) *ContentCacheStore {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &ContentCacheStore{rdb: rdb, ttl: ttl}
}

func promptKey(id string) string { return fmt.Sprintf("content:prompt:%s", id) }
func postKey(id string) string   { return fmt.Sprintf("content:post:%s", id) }

func (c *ContentCacheStore) GetPrompt(ctx context.Context, id string) (*entity.Prompt, bool, error) {
	var p entity.Prompt
	found, err := c.getJSON(ctx, promptKey(id), &p)
	if err != nil || !found {
		return nil, false, err
	}
	return &p, true, nil
}

func (c *ContentCacheStore) SetPrompt(ctx context.Context, prompt *entity.Prompt) error {
	return c.setJSON(ctx, promptKey(prompt.ID), prompt)
}

func (c *ContentCacheStore) InvalidatePrompt(ctx context.Context, id string) error {
	return c.rdb.Del(ctx, promptKey(id)).Err()
}

func (c *ContentCacheStore) GetPost(ctx context.Context, id string) (*entity.Post, bool, error) {
	var p entity.Post
	found, err := c.getJSON(ctx, postKey(id), &p)
	if err != nil || !found {
		return nil, false, err
	}
	return &p, true, nil
}

func (c *ContentCacheStore) SetPost(ctx context.Context, post *entity.Post) error {
	return c.setJSON(ctx, postKey(post.ID), post)
}

func (c *ContentCacheStore) InvalidatePost(ctx context.Context, id string) error {
	return c.rdb.Del(ctx, postKey(id)).Err()
}

func (c *ContentCacheStore) getJSON(ctx context.Context, key string, dst interface{}) (bool, error) {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, err
	}
	// A corrupt entry is treated as a miss and overwritten on the next set.
	if err := json.Unmarshal(b, dst); err != nil {
		return false, nil
	}
	return true, nil
}

func (c *ContentCacheStore) setJSON(ctx context.Context, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, data, c.ttl).Err()
}
