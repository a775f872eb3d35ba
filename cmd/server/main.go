package main

import (
	"context"
	"log"

	"github.com/gin-contrib/sessions"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/obratrack/project-tracking-api/internal/config"
	"github.com/obratrack/project-tracking-api/internal/constants"
	"github.com/obratrack/project-tracking-api/internal/database"
	"github.com/obratrack/project-tracking-api/internal/handlers"
	"github.com/obratrack/project-tracking-api/internal/middleware"
	"github.com/obratrack/project-tracking-api/internal/repository"
	"github.com/obratrack/project-tracking-api/internal/services"
	"github.com/obratrack/project-tracking-api/internal/storage"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	if err := database.MigrateDatabase(database.GetDB()); err != nil {
		log.Fatalf("Failed to add database indexes: %v", err)
	}

	// Report storage
	reportStore, err := storage.FromConfig(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to initialize report storage: %v", err)
	}

	// Initialize Gin router
	r := gin.Default()

	// Setup session middleware with Redis
	redisAddr := cfg.RedisHost + ":" + cfg.RedisPort
	store, err := redisStore.NewStore(
		10,        // Redis pool size
		"tcp",     // network type
		redisAddr, // Redis address from config
		"",        // username (empty for default user)
		"",        // password (empty = no password)
		[]byte(cfg.SessionSecret), // authentication key
	)
	if err != nil {
		log.Fatalf("Failed to create Redis store: %v", err)
	}
	// Configure session options based on environment
	isProduction := cfg.GinMode == "release"
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   isProduction, // true in production (HTTPS), false in development
		SameSite: 2,            // SameSite=Lax (1=Strict, 2=Lax, 3=None)
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	// Repositories
	db := database.GetDB()
	projectRepo := repository.NewProjectRepository(db)
	orgRepo := repository.NewOrganizationRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	auditRepo := repository.NewAuditLogRepository(db)

	// Completion-email notifier (best effort; disabled without a relay URL)
	var notifier services.Notifier
	if cfg.RelayURL != "" {
		notifier = services.NewRelayNotifier(cfg.RelayURL)
	}

	// Per-user project stores
	stores := services.NewStoreManager(services.StoreDeps{
		Projects:  projectRepo,
		Orgs:      orgRepo,
		Profiles:  profileRepo,
		AuditLogs: auditRepo,
		Reports:   reportStore,
		Notifier:  notifier,
	})

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.NewAuthService(profileRepo))
	projectHandler := handlers.NewProjectHandler(stores, projectRepo)
	orgHandler := handlers.NewOrganizationHandler(orgRepo)
	auditHandler := handlers.NewAuditHandler(auditRepo)
	pageHandler := handlers.NewPageHandler()

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Project Tracking API is running",
		})
	})

	// Page routes behind the session guard
	r.GET(constants.RouteAuth, middleware.RedirectIfAuthenticated(), pageHandler.AuthPage)
	r.GET(constants.RouteDashboard, middleware.RequirePageAuth(), pageHandler.DashboardPage)
	r.GET(constants.RouteNewProject, middleware.RequirePageAuth(), pageHandler.NewProjectPage)

	// Public URLs for locally stored reports
	if cfg.StorageDriver == "" || cfg.StorageDriver == "local" {
		r.Static("/storage/reports", cfg.StorageDir)
	}

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", middleware.RequireAuth(), authHandler.GetCurrentUser)
		}

		// Project routes (protected)
		projects := api.Group("/projects")
		projects.Use(middleware.RequireAuth())
		{
			projects.GET("", projectHandler.ListProjects)
			projects.POST("", projectHandler.CreateProject)
			projects.PATCH("/:id/status", projectHandler.UpdateStatus)
			projects.POST("/:id/report", projectHandler.UploadReport)
		}

		// Security self-test (protected)
		api.POST("/security/verify", middleware.RequireAuth(), projectHandler.VerifySecurity)

		// Memberships (protected)
		api.GET("/organizations", middleware.RequireAuth(), orgHandler.ListMemberships)

		// Audit trail (admin only)
		api.GET("/audit-logs", middleware.RequireAuth(), middleware.RequireAdmin(), auditHandler.ListAuditLogs)
	}

	// Start server
	log.Println("Server starting on :8080")
	if err := r.Run(":8080"); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
