package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/capturesangli/studio-api/internal/pkg/response"
)

// SubmitCounter counts submissions per key within a window.
type SubmitCounter interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

// RedisSubmitCounter implements SubmitCounter on Redis INCR + EXPIRE.
type RedisSubmitCounter struct {
	client *redis.Client
}

// NewRedisSubmitCounter creates a Redis-backed submit counter.
func NewRedisSubmitCounter(client *redis.Client) *RedisSubmitCounter {
	return &RedisSubmitCounter{client: client}
}

func (c *RedisSubmitCounter) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	pipe := c.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return incr.Val(), nil
}

// SubmitThrottle limits public form submissions per client IP. A counter
// backend error fails open: the submission proceeds and a warning is logged.
func SubmitThrottle(counter SubmitCounter, limit int, window time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if counter == nil || limit <= 0 {
				next.ServeHTTP(w, r)
				return
			}

			key := "throttle:" + r.URL.Path + ":" + ClientIP(r)
			count, err := counter.Incr(r.Context(), key, window)
			if err != nil {
				log.Warn().Err(err).Str("key", key).Msg("Submit throttle unavailable, failing open")
				next.ServeHTTP(w, r)
				return
			}

			if count > int64(limit) {
				log.Info().Str("ip", ClientIP(r)).Str("path", r.URL.Path).Int64("count", count).Msg("Submission throttled")
				response.TooManyRequests(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
