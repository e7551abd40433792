package app

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"

	_ "itacatech/docs"
	"itacatech/internal/config"
	"itacatech/internal/events"
	"itacatech/internal/gemini"
	"itacatech/internal/handlers"
	"itacatech/internal/models"
	"itacatech/internal/pdf"
	"itacatech/internal/repositories"
	"itacatech/internal/routes"
	"itacatech/internal/services"
	"itacatech/internal/storage"
)

func Run() {
	cfg := config.LoadConfig()

	// === Storage ===
	store, err := openStore(cfg.Storage)
	if err != nil {
		log.Fatal("failed to open storage: ", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("[app] close storage: %v", err)
		}
	}()

	// === Repos ===
	userRepo, err := repositories.NewUserRepository(store)
	if err != nil {
		log.Fatal("failed to init user repository: ", err)
	}
	leadRepo, err := repositories.NewLeadRepository(store)
	if err != nil {
		log.Fatal("failed to init lead repository: ", err)
	}
	taskRepo, err := repositories.NewTaskRepository(store)
	if err != nil {
		log.Fatal("failed to init task repository: ", err)
	}
	appointmentRepo, err := repositories.NewAppointmentRepository(store)
	if err != nil {
		log.Fatal("failed to init appointment repository: ", err)
	}
	settingsRepo, err := repositories.NewSettingsRepository(store)
	if err != nil {
		log.Fatal("failed to init settings repository: ", err)
	}
	alertRepo := repositories.NewAlertRepository()

	// === Services ===
	dispatcher := events.NewDispatcher()

	authService := services.NewAuthService(userRepo)
	leadService := services.NewLeadService(leadRepo)
	taskService := services.NewTaskService(taskRepo)
	appointmentService := services.NewAppointmentService(appointmentRepo, dispatcher)
	alertService := services.NewAlertService(alertRepo, dispatcher)
	settingsService := services.NewSettingsService(settingsRepo, cfg.Gemini.APIKey)

	geminiClient := gemini.NewClient(cfg.Gemini.Model)
	scriptService := services.NewScriptService(geminiClient, settingsService)
	prospectService := services.NewProspectService(geminiClient, settingsService, leadService)

	reportService := services.NewReportService(leadService, taskService, appointmentService, settingsService)

	var emailService services.EmailService
	if cfg.Email.SMTPHost != "" {
		emailService = services.NewEmailService(
			cfg.Email.SMTPHost,
			cfg.Email.SMTPPort,
			cfg.Email.SMTPUser,
			cfg.Email.SMTPPassword,
			cfg.Email.FromEmail,
		)
	}

	var telegramService *services.TelegramService
	if cfg.Telegram.BotToken != "" {
		telegramService, err = services.NewTelegramService(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
		if err != nil {
			log.Printf("[app] telegram disabled: %v", err)
		}
	}

	// === Event wiring ===
	dispatcher.Subscribe(events.AppointmentScheduled, func(ev events.Event) {
		apt, ok := ev.Payload.(models.Appointment)
		if !ok {
			return
		}
		if _, err := alertService.Add(models.AlertInfo, services.ScheduledMessage(apt)); err != nil {
			log.Printf("[app][appointment] alert failed: %v", err)
		}
		if emailService != nil {
			if err := emailService.SendAppointmentConfirmation(apt.ClientEmail, apt.ClientName, apt.Date, apt.Time); err != nil {
				log.Printf("[app][appointment] confirmation mail failed: %v", err)
			}
		}
	})
	dispatcher.Subscribe(events.AlertRaised, func(ev events.Event) {
		alert, ok := ev.Payload.(models.Alert)
		if !ok {
			return
		}
		telegramService.NotifyAlert(alert)
	})

	// === Handlers ===
	jwtKey := []byte(cfg.Auth.JWTSecret)
	authHandler := handlers.NewAuthHandler(authService, jwtKey)
	teamHandler := handlers.NewTeamHandler(authService)
	leadHandler := handlers.NewLeadHandler(leadService)
	taskHandler := handlers.NewTaskHandler(taskService)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentService)
	alertHandler := handlers.NewAlertHandler(alertService)
	settingsHandler := handlers.NewSettingsHandler(settingsService)
	aiHandler := handlers.NewAIHandler(scriptService, prospectService)
	reportHandler := handlers.NewReportHandler(reportService, pdf.NewReportGenerator())

	// === Gin ===
	router := gin.Default()
	router.Use(corsMiddleware())

	routes.SetupRoutes(
		router,
		jwtKey,
		authHandler,
		teamHandler,
		leadHandler,
		taskHandler,
		appointmentHandler,
		alertHandler,
		settingsHandler,
		aiHandler,
		reportHandler,
	)

	// === Run ===
	listenAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("[app] listening on %s (storage=%s)", listenAddr, cfg.Storage.Backend)
	if err := router.Run(listenAddr); err != nil {
		log.Fatal("server stopped: ", err)
	}
}

func openStore(cfg config.StorageConfig) (storage.Store, error) {
	switch cfg.Backend {
	case "postgres":
		return storage.NewPostgresStore(cfg.DSN)
	case "badger", "":
		return storage.NewBadgerStore(cfg.Dir)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
