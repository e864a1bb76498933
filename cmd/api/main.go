package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/healthmatch/healthmatch-api/internal/audit"
	"github.com/healthmatch/healthmatch-api/internal/config"
	"github.com/healthmatch/healthmatch-api/internal/datastore"
	"github.com/healthmatch/healthmatch-api/internal/handlers"
	"github.com/healthmatch/healthmatch-api/internal/middleware"
	"github.com/healthmatch/healthmatch-api/internal/storage"
	"github.com/healthmatch/healthmatch-api/internal/utils"
)

func main() {
	cfg := config.Load()
	if cfg.JWTSecret != "" {
		log.Println("JWT_SECRET is SET.")
	} else {
		log.Println("JWT_SECRET is NOT SET.")
	}
	utils.SetJWTSecret(cfg.JWTSecret)

	// --- Storage ---
	store, err := storage.NewFileStore(cfg.DataDir)
	if err != nil {
		log.Fatalf("Failed to open data directory %q: %v", cfg.DataDir, err)
	}

	// --- Data core ---
	data := datastore.New(store)
	if err := data.Bootstrap(); err != nil {
		log.Fatalf("Failed to bootstrap seed data: %v", err)
	}
	log.Println("Seed data reconciled.")

	auditLog := audit.NewLogger(store)
	auditLog.Add("Server started", nil)

	h := handlers.NewHandler(data, auditLog)

	// --- Gin Router ---
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	// --- Routes ---
	authRoutes := r.Group("/auth")
	{
		authRoutes.POST("/register", h.RegisterUser)
		authRoutes.POST("/login", h.Login)
	}

	apiRoutes := r.Group("/api")
	apiRoutes.Use(middleware.AuthMiddleware()) // Protect all /api routes
	{
		apiRoutes.GET("/me", h.GetCurrentUser)
		apiRoutes.PUT("/me", h.UpdateCurrentUser)

		// User administration
		apiRoutes.GET("/users", h.ListUsers)
		apiRoutes.PUT("/users/:id", h.UpdateUser)
		apiRoutes.DELETE("/users/:id", h.RemoveUser)

		// Doctor profiles
		apiRoutes.GET("/doctors", h.ListDoctors)
		apiRoutes.GET("/doctors/search", h.SearchDoctors)
		apiRoutes.GET("/doctors/:id/profile", h.GetDoctorProfile)
		apiRoutes.POST("/doctors/:id/profile", h.CreateDoctorProfile)
		apiRoutes.PUT("/doctors/:id/profile", h.UpdateDoctorProfile)

		// Patient records
		apiRoutes.GET("/patients/:id", h.GetPatientData)
		apiRoutes.PUT("/patients/:id", h.UpdatePatientData)
		apiRoutes.POST("/patients/:id/symptoms", h.AddSymptomEntry)

		// Appointments
		apiRoutes.GET("/appointments", h.GetAppointments)
		apiRoutes.POST("/appointments", h.CreateAppointment)
		apiRoutes.GET("/appointments/:id", h.GetAppointment)
		apiRoutes.PUT("/appointments/:id", h.UpdateAppointment)
		apiRoutes.PATCH("/appointments/:id/cancel", h.CancelAppointment)

		// System log
		apiRoutes.GET("/logs", h.GetLogs)
		apiRoutes.DELETE("/logs", h.ClearLogs)

		// Demo data reset
		apiRoutes.POST("/admin/reset", h.ResetAppData)
	}

	log.Printf("Starting server on port %s", cfg.Port)
	r.Run(":" + cfg.Port)
}
