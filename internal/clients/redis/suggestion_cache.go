package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/yungbote/tripwise-backend/internal/logger"
	"github.com/yungbote/tripwise-backend/internal/normalization"
	"github.com/yungbote/tripwise-backend/internal/types"
)

// SuggestionCache memoizes activity suggestions per destination so
// repeated requests for the same place skip the generation call.
type SuggestionCache interface {
	Get(ctx context.Context, destination string) ([]types.Activity, bool, error)
	Set(ctx context.Context, destination string, activities []types.Activity, ttl time.Duration) error
	Close() error
}

type suggestionCache struct {
	log    *logger.Logger
	rdb    *goredis.Client
	prefix string
}

func NewSuggestionCache(log *logger.Logger) (SuggestionCache, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}

	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}
	prefix := strings.TrimSpace(os.Getenv("REDIS_SUGGESTION_PREFIX"))
	if prefix == "" {
		prefix = "suggestions"
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &suggestionCache{
		log:    log.With("service", "RedisSuggestionCache"),
		rdb:    rdb,
		prefix: prefix,
	}, nil
}

func (c *suggestionCache) key(destination string) string {
	return c.prefix + ":" + normalization.ParseInputString(destination)
}

func (c *suggestionCache) Get(ctx context.Context, destination string) ([]types.Activity, bool, error) {
	raw, err := c.rdb.Get(ctx, c.key(destination)).Bytes()
	if err == goredis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get: %w", err)
	}
	var activities []types.Activity
	if err := json.Unmarshal(raw, &activities); err != nil {
		// A corrupt entry is treated as a miss; it will be overwritten.
		c.log.Warn("Discarding unreadable cache entry", "destination", destination, "error", err)
		return nil, false, nil
	}
	return activities, true, nil
}

func (c *suggestionCache) Set(ctx context.Context, destination string, activities []types.Activity, ttl time.Duration) error {
	raw, err := json.Marshal(activities)
	if err != nil {
		return fmt.Errorf("marshal activities: %w", err)
	}
	if err := c.rdb.Set(ctx, c.key(destination), raw, ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (c *suggestionCache) Close() error {
	return c.rdb.Close()
}
