package employee

import (
	"github.com/gin-gonic/gin"

	"github.com/saitej-a/Leave-System/internal/auth/token"
	"github.com/saitej-a/Leave-System/internal/authz"
	"github.com/saitej-a/Leave-System/internal/middleware"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	authorizer authz.Authorizer,
	tokens token.Service,
	denylist token.Denylist,
) {
	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware(tokens, denylist))
	{
		employees.GET("", middleware.Authorize(authorizer, authz.KindEmployee, authz.ActionList), handler.GetAll)
		employees.POST("", middleware.Authorize(authorizer, authz.KindEmployee, authz.ActionCreate), handler.Create)
		employees.GET("/me", handler.GetOwn)
		employees.GET("/:id", middleware.Authorize(authorizer, authz.KindEmployee, authz.ActionRead), handler.GetByID)
		// HR-only field policy enforced in the service so the legacy
		// response message is preserved.
		employees.PATCH("/:id", handler.Update)
		employees.DELETE("/:id", middleware.Authorize(authorizer, authz.KindEmployee, authz.ActionDelete), handler.Delete)
	}
}
