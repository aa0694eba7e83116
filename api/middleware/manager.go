package middleware

import (
	"context"
	"favour_crochet_server/structs"
	"time"

	"github.com/MonkyMars/gecho"
)

// RateLimiter counts hits per client and bucket within a window.
type RateLimiter interface {
	IncrementRateLimit(ctx context.Context, ip, bucket string, window time.Duration) (int, error)
}

type Middleware struct {
	cfg     *structs.Config
	logger  *gecho.Logger
	limiter RateLimiter
}

// NewMiddleware wires the shared middleware. limiter may be nil when rate limiting is off.
func NewMiddleware(cfg *structs.Config, logger *gecho.Logger, limiter RateLimiter) *Middleware {
	return &Middleware{
		cfg:     cfg,
		logger:  logger,
		limiter: limiter,
	}
}
