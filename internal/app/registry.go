package app

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/saitej-a/Leave-System/internal/auth"
	"github.com/saitej-a/Leave-System/internal/auth/token"
	"github.com/saitej-a/Leave-System/internal/authz"
	"github.com/saitej-a/Leave-System/internal/authz/infra"
	"github.com/saitej-a/Leave-System/internal/employee"
	"github.com/saitej-a/Leave-System/internal/leave"
	"github.com/saitej-a/Leave-System/internal/messaging/kafka"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	authRepo := auth.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Authorization Core ---
	enforcer, err := infra.NewEnforcer(
		filepath.Join("internal", "authz", "infra", "model.conf"),
		filepath.Join("internal", "authz", "infra", "policy.csv"),
	)
	if err != nil {
		return err
	}
	authorizer := authz.NewService(enforcer)

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}

	tokens := token.NewJWTService(jwtSecret)
	denylist := token.NewRedisDenylist(rdb)
	hasher := auth.NewBcryptHasher()

	// --- Services ---
	authService := auth.NewService(authRepo, hasher, tokens, denylist)
	employeeService := employee.NewServiceWithOutbox(db, employeeRepo, authorizer, outboxRepo)
	leaveService := leave.NewServiceWithOutbox(db, leaveRepo, employeeRepo, authorizer, outboxRepo)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	employeeHandler := employee.NewHandler(employeeService)
	leaveHandler := leave.NewHandler(leaveService)

	// --- Routes Registration ---
	api := router.Group("/api")
	{
		auth.RegisterRoutes(api, authHandler, tokens, denylist)
		employee.RegisterRoutes(api, employeeHandler, authorizer, tokens, denylist)
		leave.RegisterRoutes(api, leaveHandler, authorizer, tokens, denylist, rdb)
	}

	return nil
}
