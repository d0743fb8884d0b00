package redisclient

import (
	"context"

	"github.com/redis/go-redis/v9"

	usecasecontract "github.com/mikiasgoitom/Prompaty/internal/usecase/contract"
)

// NewRedisFromURL parses a redis:// URL and pings the server.
// A failed ping is logged; the client still retries on use.
func NewRedisFromURL(ctx context.Context, url string, logger usecasecontract.IAppLogger) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Warningf("redis ping failed: %v", err)
	}
	return rdb, nil
}

func Close(rdb *redis.Client, logger usecasecontract.IAppLogger) {
	if rdb == nil {
		return
	}
	if err := rdb.Close(); err != nil {
		logger.Errorf("redis close failed: %v", err)
	}
}
