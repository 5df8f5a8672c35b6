package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/botovelho/barbearia-api/internal/audit"
	"github.com/botovelho/barbearia-api/internal/cache"
	"github.com/botovelho/barbearia-api/internal/config"
	"github.com/botovelho/barbearia-api/internal/handlers"
	"github.com/botovelho/barbearia-api/internal/middleware"
	"github.com/botovelho/barbearia-api/internal/store"
	"github.com/botovelho/barbearia-api/internal/uploader"
	ucBooking "github.com/botovelho/barbearia-api/internal/usecase/booking"
)

func RegisterRoutes(
	r *gin.Engine,
	st *store.Store,
	availabilityCache *cache.Availability,
	cfg *config.Config,
	logger zerolog.Logger,
) {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	auditLogger := audit.New(st)
	auditDispatcher := audit.NewDispatcher(auditLogger, logger)

	uploadService := uploader.New(cfg, logger)

	// ======================================================
	// 🧠 USE CASES — BOOKING
	// ======================================================
	getAvailabilityUC := ucBooking.NewGetAvailability(st, availabilityCache)
	getDatesUC := ucBooking.NewGetAvailableDates(st)
	createAppointmentUC := ucBooking.NewCreateAppointment(st, availabilityCache, auditDispatcher)
	cancelAppointmentUC := ucBooking.NewCancelAppointment(st, availabilityCache, auditDispatcher)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	publicHandler := handlers.NewPublicHandler(
		st,
		getAvailabilityUC,
		getDatesUC,
		createAppointmentUC,
		cancelAppointmentUC,
	)
	authHandler := handlers.NewAuthHandler(st, cfg)
	adminHandler := handlers.NewAdminHandler(st, availabilityCache, auditDispatcher)
	uploadHandler := handlers.NewUploadHandler(uploadService, cfg.UploadMaxMB)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/business", publicHandler.Business)
			publicAPI.GET("/availability", publicHandler.Availability)
			publicAPI.GET("/availability/dates", publicHandler.AvailableDates)
			publicAPI.GET("/appointments", publicHandler.ListAppointments)
			publicAPI.POST("/appointments", publicHandler.CreateAppointment)
			publicAPI.DELETE("/appointments/:id", publicHandler.CancelAppointment)
		}

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)
		api.GET("/auth/check", authHandler.Check)

		// ------------------------------
		// 🔐 API ADMIN
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(cfg))
		{
			admin.GET("/schedule", adminHandler.GetSchedule)
			admin.PUT("/schedule", adminHandler.UpdateSchedule)

			admin.GET("/barbers", adminHandler.GetBarbers)
			admin.PUT("/barbers", adminHandler.UpdateBarbers)

			admin.GET("/business", adminHandler.GetBusiness)
			admin.PUT("/business", adminHandler.UpdateBusiness)

			admin.GET("/services", adminHandler.GetServices)
			admin.PUT("/services", adminHandler.UpdateServices)

			admin.GET("/about", adminHandler.GetAbout)
			admin.PUT("/about", adminHandler.UpdateAbout)

			admin.GET("/appointments", adminHandler.ListAppointments)
			admin.GET("/audit-logs", adminHandler.ListAuditLog)

			admin.POST("/upload", uploadHandler.Upload)
		}
	}
}
