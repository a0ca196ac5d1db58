package auth

import (
	"github.com/gin-gonic/gin"

	autherrors "github.com/saitej-a/Leave-System/internal/auth/errors"
	"github.com/saitej-a/Leave-System/internal/auth/token"
	"github.com/saitej-a/Leave-System/internal/middleware"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	tokens token.Service,
	denylist token.Denylist,
) {
	group := r.Group("/auth")
	{
		group.POST("/register",
			middleware.GuestOnly(tokens, autherrors.ErrRegisterWhileAuthenticated),
			middleware.RateLimitByIP(0.5, 3),
			handler.Register,
		)
		group.POST("/login",
			middleware.GuestOnly(tokens, autherrors.ErrLoginWhileAuthenticated),
			middleware.RateLimitByIP(0.5, 5),
			handler.Login,
		)
		group.POST("/refresh", handler.Refresh)
		group.POST("/logout", middleware.AuthMiddleware(tokens, denylist), handler.Logout)
	}
}
