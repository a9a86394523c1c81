package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DeQuirozJanPaul200408/Happy-Paws-Vet-Clinic/internal/audit"
	"github.com/DeQuirozJanPaul200408/Happy-Paws-Vet-Clinic/internal/config"
	"github.com/DeQuirozJanPaul200408/Happy-Paws-Vet-Clinic/internal/handlers"
	infraRepo "github.com/DeQuirozJanPaul200408/Happy-Paws-Vet-Clinic/internal/infra/repository"
	"github.com/DeQuirozJanPaul200408/Happy-Paws-Vet-Clinic/internal/mailer"
	"github.com/DeQuirozJanPaul200408/Happy-Paws-Vet-Clinic/internal/middleware"
	"github.com/DeQuirozJanPaul200408/Happy-Paws-Vet-Clinic/internal/otp"
	"github.com/DeQuirozJanPaul200408/Happy-Paws-Vet-Clinic/internal/ratelimit"
	"github.com/DeQuirozJanPaul200408/Happy-Paws-Vet-Clinic/internal/timezone"
	ucAppointment "github.com/DeQuirozJanPaul200408/Happy-Paws-Vet-Clinic/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	otpRepo := infraRepo.NewOTPGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	smtpMailer := mailer.NewSMTPMailer(cfg)
	otpLimiter := ratelimit.NewRedisLimiter(cfg.RedisAddr, 5, 10*time.Minute)
	otpService := otp.NewService(otpRepo, smtpMailer, otpLimiter)

	clinicLoc := timezone.Location(cfg.ClinicTimezone)

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		auditDispatcher,
		clinicLoc,
	)

	updateAppointmentUC := ucAppointment.NewUpdateAppointment(
		appointmentRepo,
		auditDispatcher,
		clinicLoc,
	)

	cancelAppointmentUC := ucAppointment.NewCancelAppointment(
		appointmentRepo,
		auditDispatcher,
		clinicLoc,
	)

	deleteAppointmentUC := ucAppointment.NewDeleteAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	listAppointmentsUC := ucAppointment.NewListAppointments(
		appointmentRepo,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, otpService)
	meHandler := handlers.NewMeHandler(db)
	petHandler := handlers.NewPetHandler(db)
	catalogHandler := handlers.NewCatalogHandler()

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		updateAppointmentUC,
		cancelAppointmentUC,
		deleteAppointmentUC,
		listAppointmentsUC,
	)

	adminHandler := handlers.NewAdminHandler(db, listAppointmentsUC)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/services", catalogHandler.ListServices)
			publicAPI.GET("/staff", catalogHandler.ListStaff)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/register/verify", authHandler.RegisterVerify)
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/login/verify", authHandler.LoginVerify)

		// ------------------------------
		// PRIVATE
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/me/pets", petHandler.List)
			secured.POST("/me/pets", petHandler.Create)
			secured.PATCH("/me/pets/:id", petHandler.Update)
			secured.DELETE("/me/pets/:id", petHandler.Delete)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.GET("/me/appointments", appointmentHandler.List)
			secured.POST("/me/appointments", appointmentHandler.Create)
			secured.PATCH("/me/appointments/:id", appointmentHandler.Update)
			secured.PATCH("/me/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.DELETE("/me/appointments/:id", appointmentHandler.Delete)

			// ------------------------------
			// ADMIN
			// ------------------------------
			adminAPI := secured.Group("/admin")
			adminAPI.Use(middleware.RequireRole(middleware.RoleAdmin))
			{
				adminAPI.GET("/stats", adminHandler.Stats)
				adminAPI.GET("/users", adminHandler.ListUsers)
				adminAPI.GET("/pets", adminHandler.ListPets)
				adminAPI.GET("/appointments", adminHandler.ListAppointments)

				adminAPI.DELETE("/users/:id", adminHandler.DeleteUser)
				adminAPI.DELETE("/pets/:id", adminHandler.DeletePet)
				adminAPI.DELETE("/appointments/:id", adminHandler.DeleteAppointment)
			}
		}
	}
}
