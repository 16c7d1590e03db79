package middleware

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/deppfellow/registration-validator/internal/config"
	"github.com/deppfellow/registration-validator/internal/errs"
	"github.com/deppfellow/registration-validator/internal/server"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

// RedisCommandTimeout bounds a single rate limit lookup.
const RedisCommandTimeout = 100 * time.Millisecond

// RateLimitMiddleware throttles clients by IP.
//
// With Redis configured the counters are shared by every instance of the
// service; otherwise each instance keeps its own in-memory token buckets.
type RateLimitMiddleware struct {
	server *server.Server
	store  echoMiddleware.RateLimiterStore
}

func NewRateLimitMiddleware(s *server.Server) *RateLimitMiddleware {
	cfg := s.Config.RateLimit

	var store echoMiddleware.RateLimiterStore
	if s.Redis != nil {
		store = NewRedisRateLimiterStore(s.Redis, cfg)
	} else {
		store = echoMiddleware.NewRateLimiterMemoryStoreWithConfig(echoMiddleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(cfg.Rate),
			Burst:     cfg.Burst,
			ExpiresIn: cfg.ExpiresIn,
		})
	}

	return &RateLimitMiddleware{
		server: s,
		store:  store,
	}
}

// Limit returns the Echo rate limiter middleware, or a pass-through when disabled.
//
// The status endpoint is never throttled so monitors keep working under load.
func (r *RateLimitMiddleware) Limit() echo.MiddlewareFunc {
	if !r.server.Config.RateLimit.Enabled {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return next
		}
	}

	return echoMiddleware.RateLimiterWithConfig(echoMiddleware.RateLimiterConfig{
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/status"
		},
		Store: r.store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			r.RecordRateLimitHit(c.Path())

			GetLogger(c).Warn().
				Str("identifier", identifier).
				Msg("rate limit exceeded")

			retryAfter := r.retryAfter()
			c.Response().Header().Set("Retry-After", retryAfter)

			return errs.NewTooManyRequestsError("Too many requests", retryAfter)
		},
	})
}

// retryAfter is the number of whole seconds until one more request is allowed.
func (r *RateLimitMiddleware) retryAfter() string {
	limit := r.server.Config.RateLimit.Rate
	if limit <= 0 {
		return "1"
	}
	return strconv.Itoa(int(math.Ceil(1 / limit)))
}

// RecordRateLimitHit records a New Relic custom event for a denied request.
func (r *RateLimitMiddleware) RecordRateLimitHit(endpoint string) {
	r.server.LoggerService.RecordCustomEvent("RateLimitHit", map[string]interface{}{
		"endpoint": endpoint,
	})
}

// RedisRateLimiterStore is a fixed-window echo RateLimiterStore backed by Redis.
//
// A window lasts Burst/Rate seconds and admits Burst requests, which keeps the
// long-run average at Rate requests per second.
type RedisRateLimiterStore struct {
	client *redis.Client
	limit  int64
	window time.Duration
	prefix string
	now    func() time.Time
}

// NewRedisRateLimiterStore builds a store from the rate limit config.
func NewRedisRateLimiterStore(client *redis.Client, cfg config.RateLimitConfig) *RedisRateLimiterStore {
	limit, window := fixedWindow(cfg)

	return &RedisRateLimiterStore{
		client: client,
		limit:  limit,
		window: window,
		prefix: "ratelimit:" + config.ServiceName,
		now:    time.Now,
	}
}

func fixedWindow(cfg config.RateLimitConfig) (int64, time.Duration) {
	limit := int64(cfg.Burst)
	if limit < 1 {
		limit = 1
	}

	if cfg.Rate <= 0 {
		return limit, time.Second
	}

	window := time.Duration(float64(limit) / cfg.Rate * float64(time.Second))
	if window < time.Second {
		window = time.Second
	}

	return limit, window
}

// key names the counter for identifier in the window containing t.
func (s *RedisRateLimiterStore) key(identifier string, t time.Time) string {
	return fmt.Sprintf("%s:%s:%d", s.prefix, identifier, t.UnixNano()/int64(s.window))
}

// Allow implements echo's RateLimiterStore.
//
// Redis errors let the request through. The error is still returned alongside
// true and reaches the DenyHandler only if the limiter ever denies.
func (s *RedisRateLimiterStore) Allow(identifier string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), RedisCommandTimeout)
	defer cancel()

	key := s.key(identifier, s.now())

	pipe := s.client.TxPipeline()
	count := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, s.window)

	if _, err := pipe.Exec(ctx); err != nil {
		return true, fmt.Errorf("rate limit lookup for %s: %w", identifier, err)
	}

	return count.Val() <= s.limit, nil
}
