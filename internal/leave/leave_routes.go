package leave

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

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
	rdb *redis.Client,
) {
	requests := r.Group("/leaverequests")
	requests.Use(middleware.AuthMiddleware(tokens, denylist))
	{
		requests.GET("", middleware.Authorize(authorizer, authz.KindLeaveRequest, authz.ActionList), handler.GetAll)
		requests.POST("",
			middleware.Authorize(authorizer, authz.KindLeaveRequest, authz.ActionCreate),
			middleware.RateLimitByCaller(1, 10),
			middleware.Idempotency(rdb),
			handler.Create,
		)
		requests.GET("/:id", middleware.Authorize(authorizer, authz.KindLeaveRequest, authz.ActionRead), handler.GetByID)
		requests.PATCH("/:id", middleware.Authorize(authorizer, authz.KindLeaveRequest, authz.ActionUpdate), handler.PartialUpdate)
		requests.DELETE("/:id", middleware.Authorize(authorizer, authz.KindLeaveRequest, authz.ActionDelete), handler.Delete)
	}
}
