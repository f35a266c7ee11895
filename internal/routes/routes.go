package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/studiohair/salon-scheduler/internal/audit"
	"github.com/studiohair/salon-scheduler/internal/config"
	"github.com/studiohair/salon-scheduler/internal/handlers"
	infraRepo "github.com/studiohair/salon-scheduler/internal/infra/repository"
	"github.com/studiohair/salon-scheduler/internal/media"
	"github.com/studiohair/salon-scheduler/internal/middleware"
	"github.com/studiohair/salon-scheduler/internal/notify"
	"github.com/studiohair/salon-scheduler/internal/realtime"
	ucAppointment "github.com/studiohair/salon-scheduler/internal/usecase/appointment"
	ucFinance "github.com/studiohair/salon-scheduler/internal/usecase/finance"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, rdb *redis.Client) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	reminderScheduler := notify.NewScheduler(rdb)
	eventBroker := realtime.NewBroker()
	uploader := media.NewUploader(cfg)

	// ======================================================
	// 🧠 USE CASES — APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		auditDispatcher,
		reminderScheduler,
		eventBroker,
	)

	updateAppointmentUC := ucAppointment.NewUpdateAppointment(
		appointmentRepo,
		auditDispatcher,
		eventBroker,
	)

	setStatusUC := ucAppointment.NewSetStatus(
		appointmentRepo,
		auditDispatcher,
		eventBroker,
	)

	listAppointmentsByDateUC := ucAppointment.NewListAppointmentsByDate(
		appointmentRepo,
	)

	listAppointmentsByMonthUC := ucAppointment.NewListAppointmentsByMonth(
		appointmentRepo,
	)

	// ======================================================
	// 🧠 USE CASES — FINANÇAS
	// ======================================================
	financeReportsUC := ucFinance.NewReports(appointmentRepo)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	salonHandler := handlers.NewSalonHandler(db, uploader)

	clientHandler := handlers.NewClientHandler(db, uploader)
	serviceHandler := handlers.NewServiceHandler(db)
	businessHoursHandler := handlers.NewBusinessHoursHandler(db)
	daysOffHandler := handlers.NewDaysOffHandler(db)
	notificationSettingsHandler := handlers.NewNotificationSettingsHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		updateAppointmentUC,
		setStatusUC,
		listAppointmentsByDateUC,
		listAppointmentsByMonthUC,
	)

	financeHandler := handlers.NewFinanceHandler(financeReportsUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)
	realtimeHandler := handlers.NewRealtimeHandler(eventBroker)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/salon", salonHandler.Get)
			secured.PATCH("/salon", salonHandler.Update)
			secured.POST("/salon/logo", salonHandler.UploadLogo)

			secured.GET("/clients", clientHandler.List)
			secured.POST("/clients", clientHandler.Create)
			secured.GET("/clients/:id", clientHandler.Get)
			secured.PATCH("/clients/:id", clientHandler.Update)
			secured.POST("/clients/:id/photo", clientHandler.UploadPhoto)
			secured.DELETE("/clients/:id", clientHandler.Delete)

			secured.GET("/services", serviceHandler.List)
			secured.POST("/services", serviceHandler.Create)
			secured.GET("/services/:id", serviceHandler.Get)
			secured.PATCH("/services/:id", serviceHandler.Update)
			secured.DELETE("/services/:id", serviceHandler.Delete)

			secured.GET("/business-hours", businessHoursHandler.Get)
			secured.PUT("/business-hours", businessHoursHandler.Update)

			secured.GET("/days-off", daysOffHandler.List)
			secured.POST("/days-off", daysOffHandler.Create)
			secured.PATCH("/days-off/:id", daysOffHandler.Toggle)
			secured.DELETE("/days-off/:id", daysOffHandler.Delete)

			secured.GET("/notification-settings", notificationSettingsHandler.Get)
			secured.PUT("/notification-settings", notificationSettingsHandler.Update)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments", appointmentHandler.ListByDate)
			secured.GET("/appointments/month", appointmentHandler.ListByMonth)
			secured.PUT("/appointments/:id", appointmentHandler.Update)
			secured.PATCH("/appointments/:id/status", appointmentHandler.SetStatus)

			// ------------------------------
			// FINANÇAS
			// ------------------------------
			secured.GET("/finance/summary", financeHandler.Summary)
			secured.GET("/finance/monthly", financeHandler.Monthly)

			secured.GET("/audit-logs", auditLogsHandler.List)

			secured.GET("/events", realtimeHandler.Stream)
		}
	}
}
