package middleware

import (
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/registration-validator/internal/config"
)

func TestFixedWindow(t *testing.T) {
	tests := []struct {
		name   string
		cfg    config.RateLimitConfig
		limit  int64
		window time.Duration
	}{
		{"burst over rate", config.RateLimitConfig{Rate: 10, Burst: 30}, 30, 3 * time.Second},
		{"window never under a second", config.RateLimitConfig{Rate: 100, Burst: 5}, 5, time.Second},
		{"zero burst still admits one", config.RateLimitConfig{Rate: 0.5, Burst: 0}, 1, 2 * time.Second},
		{"zero rate", config.RateLimitConfig{Rate: 0, Burst: 4}, 4, time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limit, window := fixedWindow(tt.cfg)
			assert.Equal(t, tt.limit, limit)
			assert.Equal(t, tt.window, window)
		})
	}
}

func TestRedisRateLimiterStore_Key(t *testing.T) {
	store := NewRedisRateLimiterStore(nil, config.RateLimitConfig{Rate: 1, Burst: 10})

	start := time.Unix(1_000_000, 0)

	assert.Equal(t, store.key("10.0.0.1", start), store.key("10.0.0.1", start.Add(9*time.Second)))
	assert.NotEqual(t, store.key("10.0.0.1", start), store.key("10.0.0.1", start.Add(10*time.Second)))
	assert.NotEqual(t, store.key("10.0.0.1", start), store.key("10.0.0.2", start))
	assert.Contains(t, store.key("10.0.0.1", start), "ratelimit:"+config.ServiceName+":10.0.0.1:")
}

func TestRedisRateLimiterStore_FailsOpen(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:       "127.0.0.1:1",
		MaxRetries: -1,
	})
	t.Cleanup(func() { _ = client.Close() })

	store := NewRedisRateLimiterStore(client, config.RateLimitConfig{Rate: 1, Burst: 1})

	allowed, err := store.Allow("10.0.0.1")
	require.Error(t, err)
	assert.True(t, allowed)
}
