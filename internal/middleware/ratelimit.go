package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"portfolio-api/pkg/apperror"
	"portfolio-api/pkg/response"
)

// RateLimit throttles an action per client IP using a redis SetNX lock with
// a TTL. A nil client disables throttling entirely.
func RateLimit(rdb *redis.Client, action string, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}

		key := fmt.Sprintf("rate_limit:ip:%s:%s", c.ClientIP(), action)

		wasSet, err := rdb.SetNX(c.Request.Context(), key, "locked", window).Result()
		if err != nil {
			// Redis being down should not take the endpoint with it.
			c.Next()
			return
		}

		if !wasSet {
			response.AbortError(c, apperror.New(
				http.StatusTooManyRequests,
				"Too many requests. Please try again later.",
				apperror.ErrTooManyReq,
			))
			return
		}

		c.Next()
	}
}
