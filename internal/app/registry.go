package app

import (
	"database/sql"
	"os"

	"go-urenstaat/internal/caorate"
	"go-urenstaat/internal/driver"
	"go-urenstaat/internal/holiday"
	"go-urenstaat/internal/messaging/kafka"
	"go-urenstaat/internal/middleware"
	"go-urenstaat/internal/shared/counter"
	"go-urenstaat/internal/shift"
	"go-urenstaat/internal/timesheet"
	"go-urenstaat/internal/tvt"
	"go-urenstaat/internal/vacation"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	logger := zap.L()

	// --- Repositories ---
	counterRepo := counter.NewRepository(gormDB)
	driverRepo := driver.NewRepository(gormDB)
	shiftRepo := shift.NewRepository(gormDB)
	caorateRepo := caorate.NewRepository(gormDB)
	holidayRepo := holiday.NewRepository(gormDB)
	vacationRepo := vacation.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Services ---
	driverService := driver.NewService(db, driverRepo, counterRepo)
	shiftService := shift.NewServiceWithOutbox(db, shiftRepo, outboxRepo)
	caorateService := caorate.NewService(db, caorateRepo)
	holidayService := holiday.NewService(holidayRepo, rdb)
	vacationService := vacation.NewService(db, vacationRepo, driverService)
	tvtService := tvt.NewService(shiftRepo, driverService)
	timesheetService := timesheet.NewService(
		driverService,
		shiftRepo,
		caorateService,
		holidayService,
		vacationService,
		tvtService,
		rdb,
		os.Getenv("COMPANY_NAME"),
	)

	// --- Handlers ---
	driverHandler := driver.NewHandler(driverService)
	shiftHandler := shift.NewHandlerWithRedis(shiftService, rdb)
	caorateHandler := caorate.NewHandler(caorateService)
	holidayHandler := holiday.NewHandler(holidayService)
	vacationHandler := vacation.NewHandler(vacationService)
	tvtHandler := tvt.NewHandler(tvtService)
	timesheetHandler := timesheet.NewHandler(timesheetService)

	router.Use(middleware.RequestID())
	router.Use(middleware.ContextLogger(logger))

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		driver.RegisterRoutes(api, driverHandler)
		shift.RegisterRoutes(api, shiftHandler, rdb)
		caorate.RegisterRoutes(api, caorateHandler)
		holiday.RegisterRoutes(api, holidayHandler)
		vacation.RegisterRoutes(api, vacationHandler)
		tvt.RegisterRoutes(api, tvtHandler)
		timesheet.RegisterRoutes(api, timesheetHandler)
	}

	return nil
}
