package app

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/saitej-a/Leave-System/internal/auth"
	"github.com/saitej-a/Leave-System/internal/employee"
	"github.com/saitej-a/Leave-System/internal/leave"
	"github.com/saitej-a/Leave-System/internal/messaging/kafka"
	"github.com/saitej-a/Leave-System/internal/middleware"
	"github.com/saitej-a/Leave-System/internal/shared/connection"
)

func BuildApp(router *gin.Engine) error {
	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	db, err := gormDB.DB()
	if err != nil {
		return err
	}

	if err := gormDB.AutoMigrate(
		&auth.Account{},
		&employee.Employee{},
		&leave.LeaveRequest{},
	); err != nil {
		return err
	}

	if err := kafka.EnsureOutboxTable(context.Background(), db); err != nil {
		return err
	}

	rdb, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}

	router.Use(middleware.ContextLogger(zap.L()))

	return registerModules(router, db, gormDB, rdb)
}
