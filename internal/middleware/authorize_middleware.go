package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/saitej-a/Leave-System/internal/authz"
	"github.com/saitej-a/Leave-System/internal/shared/response"
)

// Authorize enforces the role-level policy for one resource kind and action.
// Ownership of individual records is checked by the services, not here.
func Authorize(a authz.Authorizer, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(KeyCallerEmail) == "" {
			response.Details(c, http.StatusUnauthorized, "Missing auth context")
			c.Abort()
			return
		}

		caller := CallerFrom(c)
		allowed, err := a.Allow(caller, resource, action)
		if err != nil {
			response.Details(c, http.StatusInternalServerError, "An unexpected error occurred")
			c.Abort()
			return
		}

		if !allowed {
			response.Details(c, http.StatusForbidden, "You do not have permission to perform this action")
			c.Abort()
			return
		}
		c.Next()
	}
}
