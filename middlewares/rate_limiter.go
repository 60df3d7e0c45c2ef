package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/speedywheel/rental/config/redis"
	"github.com/speedywheel/rental/logger"
	"github.com/ulule/limiter/v3"
	ginmiddleware "github.com/ulule/limiter/v3/drivers/middleware/gin"
	redisstore "github.com/ulule/limiter/v3/drivers/store/redis"
)

// createRedisStore creates a Redis-backed rate limiter store with a
// route-specific prefix. Keys expire with the rate's period.
func createRedisStore(routeID string, period time.Duration) (limiter.Store, error) {
	rdb, err := redis.GetRedisClient()
	if err != nil {
		return nil, err
	}

	store, err := redisstore.NewStoreWithOptions(rdb, limiter.StoreOptions{
		Prefix:          fmt.Sprintf("rate_limiter:%s", routeID),
		MaxRetry:        3,
		CleanUpInterval: period,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create redis store for route %s: %w", routeID, err)
	}
	return store, nil
}

// ParseCustomRate allows formats like "10-2m", "30-60m", "5-1h", "20-10s".
func ParseCustomRate(rateStr string) (limiter.Rate, error) {
	parts := strings.Split(rateStr, "-")
	if len(parts) != 2 {
		return limiter.Rate{}, fmt.Errorf("invalid rate format: %s", rateStr)
	}

	limit, err := strconv.Atoi(parts[0])
	if err != nil {
		return limiter.Rate{}, fmt.Errorf("invalid limit: %s", parts[0])
	}

	durationStr := parts[1]
	if durationStr == "" {
		return limiter.Rate{}, fmt.Errorf("invalid rate format: %s", rateStr)
	}
	unit := durationStr[len(durationStr)-1:]
	value, err := strconv.Atoi(durationStr[:len(durationStr)-1])
	if err != nil {
		return limiter.Rate{}, fmt.Errorf("invalid period: %s", durationStr)
	}

	var period time.Duration
	switch unit {
	case "s":
		period = time.Duration(value) * time.Second
	case "m":
		period = time.Duration(value) * time.Minute
	case "h":
		period = time.Duration(value) * time.Hour
	default:
		return limiter.Rate{}, fmt.Errorf("unsupported period unit: %s", unit)
	}

	return limiter.Rate{
		Period: period,
		Limit:  int64(limit),
	}, nil
}

// NewRateLimiter creates middleware limiting a route per client IP, with
// custom periods like "10-2m". When Redis is not configured the limiter
// degrades to a pass-through so the API keeps serving.
func NewRateLimiter(rateStr, routeID string) gin.HandlerFunc {
	rate, err := ParseCustomRate(rateStr)
	if err != nil {
		logger.ErrorLogger.Errorf("Error parsing rate for route %s: %v", routeID, err)
		return func(c *gin.Context) {
			c.Next()
		}
	}

	store, err := createRedisStore(routeID, rate.Period)
	if err != nil {
		logger.WarnLogger.Warnf("Rate limiting disabled for route %s: %v", routeID, err)
		return func(c *gin.Context) {
			c.Next()
		}
	}

	limiterInstance := limiter.New(store, rate)

	return ginmiddleware.NewMiddleware(limiterInstance, ginmiddleware.WithKeyGetter(func(c *gin.Context) string {
		return c.ClientIP()
	}))
}

// CombinedRateLimiter stacks multiple rate windows on one route, e.g. a tight
// per-minute limit together with a looser hourly one. Windows that fail to
// set up (bad rate string, Redis unavailable) are skipped so the route keeps
// serving.
func CombinedRateLimiter(routeID string, rateStrings ...string) gin.HandlerFunc {
	var limiters []*limiter.Limiter
	for i, rateStr := range rateStrings {
		rate, err := ParseCustomRate(rateStr)
		if err != nil {
			logger.ErrorLogger.Errorf("Error parsing rate for route %s: %v", routeID, err)
			continue
		}

		store, err := createRedisStore(fmt.Sprintf("%s_%d", routeID, i), rate.Period)
		if err != nil {
			logger.WarnLogger.Warnf("Rate limiting disabled for route %s: %v", routeID, err)
			continue
		}

		limiters = append(limiters, limiter.New(store, rate))
	}

	return combineLimiters(limiters)
}

// combineLimiters consults every window before the handler runs, so a later
// window can block a request even when an earlier one still has budget.
func combineLimiters(limiters []*limiter.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, l := range limiters {
			lctx, err := l.Get(c.Request.Context(), c.ClientIP())
			if err != nil {
				logger.WarnLogger.Warnf("Rate limiter store error: %v", err)
				continue
			}
			if lctx.Reached {
				c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
				return
			}
		}
		c.Next()
	}
}
