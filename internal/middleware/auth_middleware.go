package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	autherrors "github.com/saitej-a/Leave-System/internal/auth/errors"
	"github.com/saitej-a/Leave-System/internal/auth/token"
	"github.com/saitej-a/Leave-System/internal/authz"
	"github.com/saitej-a/Leave-System/internal/shared/contextutil"
	"github.com/saitej-a/Leave-System/internal/shared/response"
)

const (
	KeyCallerEmail = "caller_email"
	KeyCallerIsHR  = "caller_is_hr"
)

// CallerFrom rebuilds the authenticated caller from the gin context. Only valid
// after AuthMiddleware has run.
func CallerFrom(c *gin.Context) authz.Caller {
	return authz.Caller{
		Email: c.GetString(KeyCallerEmail),
		IsHR:  c.GetBool(KeyCallerIsHR),
	}
}

func bearerToken(c *gin.Context) string {
	token, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
	if !found {
		return ""
	}
	return token
}

func AuthMiddleware(tokens token.Service, denylist token.Denylist) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			response.Details(c, http.StatusUnauthorized, "Token not found")
			c.Abort()
			return
		}

		claims, err := tokens.VerifyToken(tokenString)
		if err != nil {
			response.FromError(c, err)
			c.Abort()
			return
		}
		if claims.Kind != token.KindAccess {
			response.FromError(c, autherrors.ErrInvalidToken)
			c.Abort()
			return
		}

		if denylist != nil {
			revoked, err := denylist.IsRevoked(c.Request.Context(), tokenString)
			if err != nil {
				response.Details(c, http.StatusInternalServerError, "An unexpected error occurred")
				c.Abort()
				return
			}
			if revoked {
				response.FromError(c, autherrors.ErrTokenRevoked)
				c.Abort()
				return
			}
		}

		c.Set(KeyCallerEmail, claims.Email)
		c.Set(KeyCallerIsHR, claims.IsHR)

		// ContextLogger runs before authentication, so the caller email is
		// propagated to the standard context here.
		ctx := contextutil.WithUserEmail(c.Request.Context(), claims.Email)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// GuestOnly rejects callers that already hold a valid access token. The
// original API answers re-auth attempts with 302 and a hint to log out first.
func GuestOnly(tokens token.Service, authErr error) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			c.Next()
			return
		}

		claims, err := tokens.VerifyToken(tokenString)
		if err != nil || claims.Kind != token.KindAccess {
			c.Next()
			return
		}

		response.FromError(c, authErr)
		c.Abort()
	}
}
