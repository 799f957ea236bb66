package app

import (
	"context"
	"os"

	"go-timeclock/internal/employee"
	"go-timeclock/internal/lunchbreak"
	"go-timeclock/internal/shared/connection"
	"go-timeclock/internal/timeentry"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func BuildApp(router *gin.Engine) error {
	// 1. Setup infrastructure
	gormDB, err := openDatabase()
	if err != nil {
		return err
	}

	if err := gormDB.AutoMigrate(
		&employee.Employee{},
		&timeentry.TimeEntry{},
		&lunchbreak.LunchBreak{},
	); err != nil {
		return err
	}

	// Seed the well-known admin on first run
	if err := employee.NewRepository(gormDB).EnsureBootstrapAdmin(context.Background()); err != nil {
		return err
	}

	db, err := gormDB.DB()
	if err != nil {
		return err
	}

	var rdb *redis.Client
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		rdb, err = connection.ConnectRedisWithRetry(addr, 5)
		if err != nil {
			return err
		}
	} else {
		zap.L().Info("REDIS_ADDR not set; idempotency and overview cache disabled")
	}

	// 2. Register modules & routes
	return registerModules(router, db, gormDB, rdb)
}

func openDatabase() (*gorm.DB, error) {
	// DB_DRIVER=sqlite (or no DB_HOST at all) selects the local file store
	if os.Getenv("DB_DRIVER") == "sqlite" || os.Getenv("DB_HOST") == "" {
		return connection.ConnectSQLite(os.Getenv("SQLITE_PATH"))
	}

	return connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
}
