package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/saitej-a/Leave-System/internal/shared/response"
)

// Idempotency guards POST endpoints against duplicate submissions. A request
// carrying an Idempotency-Key takes a short-lived redis lock; a second request
// with the same key while the first is in flight is rejected.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempKey := c.GetHeader("Idempotency-Key")
		if idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		caller := c.GetString(KeyCallerEmail)
		lockKey := fmt.Sprintf("idemp:%s:%s:%s", c.FullPath(), caller, idempKey)

		// Expires on its own so a crashed request cannot wedge the key.
		isNew, err := rdb.SetNX(c.Request.Context(), lockKey, "locked", 30*time.Second).Result()
		if err != nil {
			c.Next()
			return
		}
		if !isNew {
			response.Details(c, http.StatusConflict, "A request with this idempotency key is already being processed")
			c.Abort()
			return
		}

		c.Next()
	}
}
