package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"itacatech/internal/handlers"
	"itacatech/internal/middleware"
)

func SetupRoutes(
	r *gin.Engine,
	jwtKey []byte,
	authHandler *handlers.AuthHandler,
	teamHandler *handlers.TeamHandler,
	leadHandler *handlers.LeadHandler,
	taskHandler *handlers.TaskHandler,
	appointmentHandler *handlers.AppointmentHandler,
	alertHandler *handlers.AlertHandler,
	settingsHandler *handlers.SettingsHandler,
	aiHandler *handlers.AIHandler,
	reportHandler *handlers.ReportHandler,
) *gin.Engine {

	// ---- public
	r.POST("/login", authHandler.Login)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// ---- protected
	r.Use(middleware.AuthMiddleware(jwtKey))

	r.POST("/logout", authHandler.Logout)
	r.GET("/me", authHandler.Me)

	// TEAM (listing is open to everyone, managing is admin only)
	team := r.Group("/team")
	{
		team.GET("/", teamHandler.List)
		team.POST("/", middleware.RequireAdmin(), teamHandler.Create)
		team.PUT("/:id", middleware.RequireAdmin(), teamHandler.Update)
	}

	// LEADS
	leads := r.Group("/leads")
	{
		leads.GET("/", leadHandler.List)
		leads.POST("/", leadHandler.Create)
		leads.PUT("/:id/status", leadHandler.UpdateStatus)
		leads.DELETE("/:id", leadHandler.Delete)
	}

	// TASKS
	tasks := r.Group("/tasks")
	{
		tasks.GET("/", taskHandler.List)
		tasks.POST("/", taskHandler.Create)
		tasks.PUT("/:id", taskHandler.Update)
		tasks.PUT("/:id/toggle", taskHandler.Toggle)
		tasks.DELETE("/:id", taskHandler.Delete)
	}

	// APPOINTMENTS
	appointments := r.Group("/appointments")
	{
		appointments.GET("/", appointmentHandler.List)
		appointments.POST("/", appointmentHandler.Create)
		appointments.PUT("/:id", appointmentHandler.Update)
		appointments.DELETE("/:id", appointmentHandler.Delete)
	}

	// ALERTS
	alerts := r.Group("/alerts")
	{
		alerts.GET("/", alertHandler.List)
		alerts.POST("/", alertHandler.Create)
		alerts.DELETE("/:id", alertHandler.Delete)
	}

	// SETTINGS
	settings := r.Group("/settings")
	{
		settings.GET("/", settingsHandler.Get)
		settings.PUT("/api-key", settingsHandler.SetAPIKey)
		settings.PUT("/risk-profile", settingsHandler.SetRiskProfile)
		settings.PUT("/sales-goals", settingsHandler.SetSalesGoals)
	}

	// AI
	ai := r.Group("/ai")
	{
		ai.POST("/script", aiHandler.Script)
		ai.POST("/prospect", aiHandler.Prospect)
	}

	// REPORTS
	reports := r.Group("/reports")
	{
		reports.GET("/summary", reportHandler.Summary)
		reports.GET("/weekly", reportHandler.Weekly)
		reports.GET("/weekly/pdf", reportHandler.WeeklyPDF)
	}

	return r
}
