package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	ginmiddleware "github.com/ulule/limiter/v3/drivers/middleware/gin"
	memorystore "github.com/ulule/limiter/v3/drivers/store/memory"
	redisstore "github.com/ulule/limiter/v3/drivers/store/redis"

	"kivulounge/internal/pkg/logger"
)

// RateLimit limits a route by client IP. rateStr uses the limiter format,
// e.g. "20-M" for 20 requests per minute. Counters live in Redis when a
// client is provided and in process memory otherwise, so a missing Redis
// never takes the route down.
func RateLimit(rdb *redis.Client, rateStr, prefix string) gin.HandlerFunc {
	rate, err := limiter.NewRateFromFormatted(rateStr)
	if err != nil {
		logger.ErrorLogger.Errorf("invalid rate %q for %s: %v", rateStr, prefix, err)
		return func(c *gin.Context) { c.Next() }
	}

	var store limiter.Store
	if rdb != nil {
		store, err = redisstore.NewStoreWithOptions(rdb, limiter.StoreOptions{
			Prefix: "ratelimit:" + prefix,
		})
		if err != nil {
			logger.ErrorLogger.Errorf("redis rate limit store for %s unavailable, using memory: %v", prefix, err)
			store = memorystore.NewStore()
		}
	} else {
		store = memorystore.NewStore()
	}

	return ginmiddleware.NewMiddleware(limiter.New(store, rate))
}
