package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"

	"portfolio-backend/internal/shared/response"
)

// RateLimit giới hạn request theo client IP, rate dạng "5-M".
// Dùng Redis store khi có client, lỗi thì fallback về memory store.
func RateLimit(rate, prefix string, client *redis.Client) (gin.HandlerFunc, error) {
	r, err := limiter.NewRateFromFormatted(rate)
	if err != nil {
		return nil, fmt.Errorf("invalid rate %q: %w", rate, err)
	}

	store := newLimiterStore(prefix, client)

	return mgin.NewMiddleware(
		limiter.New(store, r),
		mgin.WithLimitReachedHandler(func(c *gin.Context) {
			response.Abort(c, http.StatusTooManyRequests, "RATE_LIMITED", "too many requests, please try again later")
		}),
		mgin.WithErrorHandler(func(c *gin.Context, err error) {
			// limiter hỏng thì cho request đi tiếp
			log.Warn().Err(err).Str("request_id", c.GetString(ContextRequestID)).Msg("Rate limiter error")
			c.Next()
		}),
	), nil
}

func newLimiterStore(prefix string, client *redis.Client) limiter.Store {
	if client != nil {
		store, err := sredis.NewStoreWithOptions(client, limiter.StoreOptions{
			Prefix:   prefix,
			MaxRetry: 3,
		})
		if err == nil {
			return store
		}
		log.Warn().Err(err).Msg("Failed to create Redis store for rate limiting, falling back to memory")
	}
	return memory.NewStoreWithOptions(limiter.StoreOptions{Prefix: prefix})
}
