// File: xscheduler/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"

	"xscheduler/config"
	"xscheduler/cron"
	"xscheduler/database"
	appointmentRepo "xscheduler/database/repository/appointment"
	blockedRepo "xscheduler/database/repository/blocked"
	scheduleRepo "xscheduler/database/repository/schedule"
	serviceRepo "xscheduler/database/repository/service"
	"xscheduler/handlers"
	"xscheduler/middleware"
	"xscheduler/routes"
	appointmentSvc "xscheduler/services/appointment"
	"xscheduler/services/calendar"
	"xscheduler/services/scheduling"
	"xscheduler/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	apptRepo := appointmentRepo.NewMongoAppointmentRepo()
	blkRepo := blockedRepo.NewMongoBlockedTimeRepo()
	schedRepo := scheduleRepo.NewMongoScheduleRepo()
	svcRepo := serviceRepo.NewMongoServiceRepo()

	// reminder queue client.
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer asynqClient.Close()

	// services.
	availabilitySvc := &scheduling.DefaultAvailabilityService{
		Services:     svcRepo,
		Schedules:    schedRepo,
		Appointments: apptRepo,
		Blocked:      blkRepo,
		Cache:        utils.GetCacheClient(),
	}
	conflictSvc := &scheduling.DefaultConflictService{
		Appointments: apptRepo,
		Blocked:      blkRepo,
	}
	apptService := &appointmentSvc.DefaultAppointmentService{
		Repo:        apptRepo,
		Services:    svcRepo,
		Conflicts:   conflictSvc,
		AsynqClient: asynqClient,
	}
	calendarSvc := &calendar.DefaultCalendarService{
		Appointments: apptRepo,
		Availability: availabilitySvc,
	}

	handlers.SetAvailabilityService(availabilitySvc)
	handlers.SetConflictService(conflictSvc)
	handlers.SetAppointmentService(apptService)
	handlers.SetCalendarService(calendarSvc)
	handlers.SetServiceRepo(svcRepo)
	handlers.SetBlockedRepo(blkRepo)
	handlers.SetScheduleRepo(schedRepo)

	routes.SetupRouter(router)

	// Start the reminder worker in the background.
	cron.InitReminderWorker()

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: router,
	}

	go func() {
		logger.Sugar().Infof("listening on :%s", config.AppConfig.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("forced shutdown: %v", err)
	}
	logger.Info("server exited")
}
