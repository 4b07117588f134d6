package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"xscheduler/handlers"
	"xscheduler/middleware"
)

// SetupRouter wires all endpoints onto the router.
func SetupRouter(r *gin.Engine) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	RegisterAvailabilityRoutes(r)
	RegisterAppointmentRoutes(r)
	RegisterCalendarRoutes(r)
	RegisterAdminRoutes(r)
}

// RegisterAvailabilityRoutes registers slot lookup and conflict check endpoints.
func RegisterAvailabilityRoutes(r *gin.Engine) {
	api := r.Group("/api/availability")
	{
		api.GET("/slots", handlers.GetAvailableSlots)
		api.GET("/calendar", handlers.GetCalendarAvailability)
		api.POST("/check", handlers.CheckSlot)
	}
}

// RegisterAppointmentRoutes registers the booking endpoints.
func RegisterAppointmentRoutes(r *gin.Engine) {
	api := r.Group("/api/appointments")
	{
		api.GET("", handlers.ListAppointments)
		api.POST("", handlers.BookAppointment)
		api.GET("/:id", handlers.GetAppointment)
		api.PUT("/:id", handlers.RescheduleAppointment)
		api.POST("/:id/cancel", handlers.CancelAppointment)
	}
}

// RegisterCalendarRoutes registers the calendar view endpoints.
func RegisterCalendarRoutes(r *gin.Engine) {
	api := r.Group("/api/calendar")
	{
		api.GET("/day", handlers.GetDayView)
		api.GET("/week", handlers.GetWeekView)
		api.GET("/month", handlers.GetMonthView)
	}
}

// RegisterAdminRoutes registers administrative CRUD behind admin auth.
func RegisterAdminRoutes(r *gin.Engine) {
	admin := r.Group("/api/admin")
	admin.Use(middleware.AdminAuthMiddleware())
	{
		admin.GET("/services", handlers.ListServices)
		admin.POST("/services", handlers.CreateService)
		admin.PUT("/services/:id", handlers.UpdateService)
		admin.DELETE("/services/:id", handlers.DeleteService)

		admin.GET("/blocked-times", handlers.ListBlockedTimes)
		admin.POST("/blocked-times", handlers.CreateBlockedTime)
		admin.DELETE("/blocked-times/:id", handlers.DeleteBlockedTime)

		admin.GET("/providers/:providerId/schedule", handlers.GetProviderSchedule)
		admin.PUT("/providers/:providerId/schedule", handlers.UpsertProviderSchedule)
		admin.PUT("/business-hours", handlers.UpsertBusinessHours)
	}
}
