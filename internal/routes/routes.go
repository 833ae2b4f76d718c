package routes

import (
	"log"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dentalcare/clinic-scheduler/internal/audit"
	"github.com/dentalcare/clinic-scheduler/internal/config"
	"github.com/dentalcare/clinic-scheduler/internal/handlers"
	"github.com/dentalcare/clinic-scheduler/internal/middleware"
	"github.com/dentalcare/clinic-scheduler/internal/namecache"
	"github.com/dentalcare/clinic-scheduler/internal/statscache"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	names, err := namecache.New(db)
	if err != nil {
		log.Fatalf("failed to init name cache: %v", err)
	}

	stats, err := statscache.New(cfg.RedisURL)
	if err != nil {
		log.Fatalf("failed to init stats cache: %v", err)
	}

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	patientHandler := handlers.NewPatientHandler(db, names)
	staffHandler := handlers.NewStaffHandler(db, names)
	userHandler := handlers.NewUserHandler(db, names)
	appointmentHandler := handlers.NewAppointmentHandler(db, cfg, names, auditDispatcher)
	dashboardHandler := handlers.NewDashboardHandler(db, cfg, stats)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			// ------------------------------
			// PATIENTS
			// ------------------------------
			secured.GET("/patients", patientHandler.List)
			secured.GET("/patients/:id", patientHandler.Get)
			secured.POST("/patients", patientHandler.Create)
			secured.PUT("/patients/:id", patientHandler.Update)
			secured.DELETE("/patients/:id", patientHandler.Delete)

			// ------------------------------
			// STAFF
			// ------------------------------
			secured.GET("/staff", staffHandler.List)
			secured.GET("/staff/:id", staffHandler.Get)
			secured.POST("/staff", staffHandler.Create)
			secured.PUT("/staff/:id", staffHandler.Update)
			secured.DELETE("/staff/:id", staffHandler.Delete)

			secured.GET("/dentists", staffHandler.ListDentists)

			// ------------------------------
			// USERS
			// ------------------------------
			secured.GET("/users", userHandler.List)
			secured.POST("/users", userHandler.Create)
			secured.PUT("/users/:id", userHandler.Update)
			secured.PUT("/users/:id/password", userHandler.ChangePassword)
			secured.PUT("/users/:id/activate", userHandler.SetActive(true))
			secured.PUT("/users/:id/deactivate", userHandler.SetActive(false))
			secured.POST("/users/:id/link-staff/:staffId", userHandler.LinkStaff)
			secured.DELETE("/users/:id/unlink-staff", userHandler.UnlinkStaff)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.GET("/appointments", appointmentHandler.List)
			secured.GET("/appointments/statuses", appointmentHandler.ListStatuses)
			secured.GET("/appointments/:id", appointmentHandler.Get)
			secured.POST("/appointments", appointmentHandler.Create)
			secured.PUT("/appointments/:id", appointmentHandler.Update)
			secured.DELETE("/appointments/:id", appointmentHandler.Delete)

			// ------------------------------
			// DASHBOARD
			// ------------------------------
			secured.GET("/dashboard/stats", dashboardHandler.Stats)
		}
	}
}
