package services

import (
	"context"
	"encoding/json"
	"errors"
	"favour_crochet_server/structs"
	"favour_crochet_server/structs/views"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	productKeyPrefix  = "product:"
	categoryKeyPrefix = "categories:"
	cacheRetries      = 2
)

// CacheService is a read-through cache for catalog reads and the rate limiter's
// counters. A disabled service misses every read and ignores every write.
type CacheService struct {
	logger *gecho.Logger
	config *structs.CacheConfig
	client *redis.Client
}

func NewCacheService(logger *gecho.Logger, cfg *structs.Config) *CacheService {
	cs := &CacheService{logger: logger, config: cfg.Cache}
	if !cfg.Cache.Enabled {
		return cs
	}

	cs.client = redis.NewClient(&redis.Options{
		Addr:     cfg.Cache.Address,
		Username: cfg.Cache.Username,
		Password: cfg.Cache.Password,
		DB:       cfg.Cache.DB,

		PoolSize:        cfg.Cache.PoolSize,
		MinIdleConns:    cfg.Cache.MinIdleConns,
		MaxIdleConns:    cfg.Cache.MaxIdleConns,
		PoolTimeout:     cfg.Cache.PoolTimeout,
		ConnMaxIdleTime: cfg.Cache.IdleTimeout,

		DialTimeout:  cfg.Cache.DialTimeout,
		ReadTimeout:  cfg.Cache.ReadTimeout,
		WriteTimeout: cfg.Cache.WriteTimeout,

		MaxRetries:      cfg.Cache.MaxRetries,
		MinRetryBackoff: cfg.Cache.MinRetryBackoff,
		MaxRetryBackoff: cfg.Cache.MaxRetryBackoff,
	})
	return cs
}

func (cs *CacheService) Enabled() bool {
	return cs != nil && cs.client != nil
}

func (cs *CacheService) Close() error {
	if !cs.Enabled() {
		return nil
	}
	return cs.client.Close()
}

// withRetry runs op again on network failures, backing off with jitter.
func (cs *CacheService) withRetry(ctx context.Context, op func() error) error {
	var lastErr error
	for attempt := 0; attempt <= cacheRetries; attempt++ {
		lastErr = op()
		if lastErr == nil || !isRetryableCacheError(lastErr) || attempt == cacheRetries {
			break
		}

		backoff := min(100*time.Millisecond<<attempt, 2*time.Second)
		wait := backoff/2 + rand.N(backoff/2+1)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
	return lastErr
}

func isRetryableCacheError(err error) bool {
	if err == nil || errors.Is(err, redis.Nil) {
		return false
	}
	msg := err.Error()
	for _, s := range []string{"connection refused", "connection reset", "timeout", "broken pipe", "no such host", "network is unreachable"} {
		if strings.Contains(msg, s) {
			return true
		}
	}
	return false
}

func setJSON[T any](ctx context.Context, cs *CacheService, key string, value T, ttl time.Duration) error {
	if !cs.Enabled() {
		return nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return cs.withRetry(ctx, func() error {
		return cs.client.Set(ctx, key, data, ttl).Err()
	})
}

// getJSON returns nil, nil on a miss.
func getJSON[T any](ctx context.Context, cs *CacheService, key string) (*T, error) {
	if !cs.Enabled() {
		return nil, nil
	}

	var raw []byte
	err := cs.withRetry(ctx, func() error {
		var err error
		raw, err = cs.client.Get(ctx, key).Bytes()
		return err
	})
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func productKey(id uuid.UUID) string {
	return fmt.Sprintf("%sid:%s", productKeyPrefix, id)
}

func (cs *CacheService) GetProductDetail(ctx context.Context, id uuid.UUID) (*views.ProductDetail, error) {
	return getJSON[views.ProductDetail](ctx, cs, productKey(id))
}

func (cs *CacheService) SetProductDetail(ctx context.Context, p *views.ProductDetail) error {
	return setJSON(ctx, cs, productKey(p.ID), p, cs.config.ProductTTL)
}

func (cs *CacheService) GetCategories(ctx context.Context) ([]views.CategoryView, error) {
	cats, err := getJSON[[]views.CategoryView](ctx, cs, categoryKeyPrefix+"active")
	if err != nil || cats == nil {
		return nil, err
	}
	return *cats, nil
}

func (cs *CacheService) SetCategories(ctx context.Context, cats []views.CategoryView) error {
	return setJSON(ctx, cs, categoryKeyPrefix+"active", cats, cs.config.CategoryTTL)
}

// InvalidateCatalog drops every cached product and category. Failures are logged, not returned,
// so a write never fails because the cache is down.
func (cs *CacheService) InvalidateCatalog(ctx context.Context) {
	if !cs.Enabled() {
		return
	}
	for _, pattern := range []string{productKeyPrefix + "*", categoryKeyPrefix + "*"} {
		if err := cs.DeletePattern(ctx, pattern); err != nil {
			cs.logger.Warn("Failed to invalidate catalog cache", gecho.Field("pattern", pattern), gecho.Field("error", err))
		}
	}
}

// DeletePattern removes all keys matching a pattern using SCAN.
func (cs *CacheService) DeletePattern(ctx context.Context, pattern string) error {
	if !cs.Enabled() {
		return nil
	}
	return cs.withRetry(ctx, func() error {
		var cursor uint64
		for {
			keys, next, err := cs.client.Scan(ctx, cursor, pattern, 100).Result()
			if err != nil {
				return fmt.Errorf("scan failed: %w", err)
			}
			if len(keys) > 0 {
				if err := cs.client.Del(ctx, keys...).Err(); err != nil {
					return fmt.Errorf("delete failed: %w", err)
				}
			}
			cursor = next
			if cursor == 0 {
				return nil
			}
		}
	})
}

func (cs *CacheService) ClearAll(ctx context.Context) error {
	if !cs.Enabled() {
		return nil
	}
	return cs.withRetry(ctx, func() error {
		return cs.client.FlushDB(ctx).Err()
	})
}

// IncrementRateLimit bumps the counter for ip and bucket. The window starts with the first
// hit: EXPIRE NX runs with every INCR, so a lost reply that triggers a retry cannot leave
// the key without a TTL.
func (cs *CacheService) IncrementRateLimit(ctx context.Context, ip, bucket string, window time.Duration) (int, error) {
	if !cs.Enabled() {
		return 0, nil
	}
	key := fmt.Sprintf("ratelimit:%s:%s", ip, bucket)

	var count int64
	err := cs.withRetry(ctx, func() error {
		var incr *redis.IntCmd
		_, err := cs.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			incr = pipe.Incr(ctx, key)
			pipe.ExpireNX(ctx, key, window)
			return nil
		})
		if err != nil {
			return err
		}
		count = incr.Val()
		return nil
	})
	return int(count), err
}

func (cs *CacheService) Ping(ctx context.Context) error {
	if !cs.Enabled() {
		return nil
	}
	return cs.client.Ping(ctx).Err()
}

func (cs *CacheService) ConnectionStats() map[string]any {
	if !cs.Enabled() {
		return map[string]any{"enabled": false}
	}
	stats := cs.client.PoolStats()
	return map[string]any{
		"enabled":     true,
		"hits":        stats.Hits,
		"misses":      stats.Misses,
		"timeouts":    stats.Timeouts,
		"total_conns": stats.TotalConns,
		"idle_conns":  stats.IdleConns,
	}
}
