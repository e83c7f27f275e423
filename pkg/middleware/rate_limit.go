package middleware

import (
	"fmt"
	"time"

	"streamtube/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RateLimitMiddleware enforces a fixed-window request limit per principal
// (or per client IP for anonymous requests) using a redis counter.
func RateLimitMiddleware(redisClient *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := c.GetString(UserIDKey)
		if principal == "" {
			principal = c.ClientIP()
		}

		key := fmt.Sprintf("rate_limit:%s:%s", c.Request.URL.Path, principal)

		ctx := c.Request.Context()
		count, err := redisClient.Incr(ctx, key).Result()
		if err != nil {
			response.Abort(c, response.Upstream("Rate limit check failed"))
			return
		}

		if count == 1 {
			redisClient.Expire(ctx, key, window)
		}

		if count > int64(limit) {
			response.Abort(c, &response.Error{Code: 429, Message: "Rate limit exceeded"})
			return
		}

		c.Next()
	}
}
