package app

import (
	"database/sql"

	"go-timeclock/internal/admin"
	"go-timeclock/internal/bootstrap"
	"go-timeclock/internal/employee"
	"go-timeclock/internal/lunchbreak"
	"go-timeclock/internal/middleware"
	"go-timeclock/internal/report"
	"go-timeclock/internal/timeentry"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	adminRepo := admin.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	lunchBreakRepo := lunchbreak.NewRepository(gormDB)
	reportRepo := report.NewRepository(gormDB)
	timeEntryRepo := timeentry.NewRepository(gormDB)

	// --- Services ---
	auditLogger := bootstrap.NewStdoutAuditLogger()
	adminService := admin.NewService(adminRepo, rdb, auditLogger)
	employeeService := employee.NewService(db, employeeRepo)
	lunchBreakService := lunchbreak.NewService(db, lunchBreakRepo)
	reportService := report.NewService(reportRepo)
	timeEntryService := timeentry.NewService(db, timeEntryRepo)

	// --- Handlers ---
	adminHandler := admin.NewHandler(adminService)
	employeeHandler := employee.NewHandler(employeeService)
	lunchBreakHandler := lunchbreak.NewHandler(lunchBreakService)
	reportHandler := report.NewHandler(reportService)
	timeEntryHandler := timeentry.NewHandler(timeEntryService)

	// --- Global middleware & metrics ---
	router.Use(
		middleware.RequestID(),
		middleware.ContextLogger(zap.L()),
		middleware.Metrics(),
	)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Clock/lunch POSTs can be retried by flaky clients; guard them with
	// the idempotency key when Redis is available
	var writeGuards []gin.HandlerFunc
	if rdb != nil {
		writeGuards = append(writeGuards, middleware.Idempotency(rdb))
	}

	// --- Routes registration ---
	api := router.Group("/api")
	api.Use(middleware.RateLimitByIP(rate.Limit(20), 40))
	{
		admin.RegisterRoutes(api, adminHandler)
		employee.RegisterRoutes(api, employeeHandler)
		lunchbreak.RegisterRoutes(api, lunchBreakHandler, writeGuards...)
		report.RegisterRoutes(api, reportHandler)
		timeentry.RegisterRoutes(api, timeEntryHandler, writeGuards...)
	}

	return nil
}
