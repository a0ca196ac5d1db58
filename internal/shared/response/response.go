package response

import (
	"github.com/gin-gonic/gin"

	"github.com/saitej-a/Leave-System/internal/shared/apperror"
)

// JSON writes a success body as-is.
func JSON(c *gin.Context, status int, data any) {
	c.JSON(status, data)
}

// Details writes the uniform error body {"details": "<message>"}.
func Details(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"details": message})
}

// FromError maps a service error to its HTTP shape and writes it.
func FromError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	Details(c, httpErr.Status, httpErr.Message)
}
