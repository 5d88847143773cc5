package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/hardlevel/hardlevel-core/pkg/logger"
)

// RateLimiterMiddleware is a fixed-window counter per client IP. It fails open when Redis is down.
func RateLimiterMiddleware(rdb *redis.Client, limit int, window time.Duration, log *zap.Logger) gin.HandlerFunc {
	if log == nil {
		log = zap.NewNop()
	}

	return func(c *gin.Context) {
		ctx := c.Request.Context()
		key := fmt.Sprintf("rate_limit:%s", c.ClientIP())

		count, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			logger.WithRequestID(ctx, log).Warn("rate limiter skipped", zap.Error(err))
			c.Next()
			return
		}

		if count == 1 {
			if err := rdb.Expire(ctx, key, window).Err(); err != nil {
				logger.WithRequestID(ctx, log).Warn("rate limiter expire failed, dropping key", zap.Error(err))
				rdb.Del(ctx, key)
				c.Next()
				return
			}
		}

		ttl, err := rdb.TTL(ctx, key).Result()
		if err != nil || ttl < 0 {
			ttl = window
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(max(0, int64(limit)-count), 10))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(ttl).Unix(), 10))

		if count > int64(limit) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":      "too many requests",
				"retry_in_s": int(ttl.Seconds()),
			})
			return
		}

		c.Next()
	}
}
