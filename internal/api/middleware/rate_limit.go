package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"eldercare-mis/pkg/redis"
	"eldercare-mis/pkg/response"
)

// RateLimit sliding-window limit per client and route, backed by Redis.
// A nil client, a non-positive limit or a Redis error lets the request through.
func RateLimit(rdb *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil || limit <= 0 {
			c.Next()
			return
		}

		key := fmt.Sprintf("rate_limit:%s:%s", c.ClientIP(), c.FullPath())
		allowed, err := rdb.CheckRateLimit(c.Request.Context(), key, limit, window)
		if err != nil {
			c.Next()
			return
		}

		if !allowed {
			response.TooManyRequests(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
