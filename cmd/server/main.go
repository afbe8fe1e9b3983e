package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-blog-app/internal/auth"
	"go-blog-app/internal/config"
	"go-blog-app/internal/content"
	"go-blog-app/internal/data"
	"go-blog-app/internal/handler"
	"go-blog-app/internal/logger"
	"go-blog-app/internal/markdown"
	"go-blog-app/internal/middleware"
	"go-blog-app/internal/service"
	"go-blog-app/internal/view"
	"go-blog-app/web"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
)

func main() {
	// --- Configuration Loading ---
	cfg, err := config.LoadConfig()
	if err != nil {
		// Use fmt.Printf here because the logger is not yet initialized.
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// --- Logger Initialization ---
	log := logger.New(cfg.Log, nil)

	// --- Database Initialization and Migration ---
	log.Info("Applying database migrations...")
	if err := data.ApplyMigrations(cfg.DB.DSN, "migrations"); err != nil {
		log.Fatal(err, "Failed to apply migrations")
	}
	log.Info("Migrations applied successfully.")

	log.Info("Connecting to the database...")
	db, err := data.NewDB(cfg.DB.DSN)
	if err != nil {
		log.Fatal(err, "Failed to connect to database")
	}
	defer db.Close()
	log.Info("Database connection successful.")

	// --- Session Management Setup ---
	sessionManager := scs.New()
	sessionManager.Store = sqlite3store.New(db.DB)
	sessionManager.Lifetime = time.Duration(cfg.Session.Lifetime) * time.Hour
	sessionManager.Cookie.Persist = true
	sessionManager.Cookie.SameSite = http.SameSiteLaxMode
	sessionManager.Cookie.HttpOnly = true

	// --- Authorization Setup ---
	log.Info("Initializing authorization...")
	enforcer, err := auth.NewEnforcer("sqlite", cfg.DB.DSN, "auth_model.conf")
	if err != nil {
		log.Fatal(err, "Failed to initialize enforcer")
	}
	auth.SeedDefaultPolicies(enforcer, log)
	log.Info("Authorization initialized and policies seeded.")

	// --- View Template Initialization ---
	log.Info("Initializing view templates...")
	viewService, err := view.New(web.TemplateFS)
	if err != nil {
		log.Fatal(err, "Failed to initialize view templates")
	}
	log.Info("View templates initialized.")

	// --- Dependency Injection and Handler Initialization ---
	// Initialize the application layers, injecting dependencies from top to bottom.
	files := content.NewStore(cfg.Content, log)
	renderer := markdown.NewRenderer()

	blogPostRepository := data.NewBlogPostRepository(db)
	presentationRepository := data.NewPresentationRepository(db)
	conferenceRepository := data.NewConferenceRepository(db)
	bioRepository := data.NewBioRepository(db)
	contactInfoRepository := data.NewContactInfoRepository(db)
	userRepository := data.NewUserRepository(db)

	blogService := service.NewBlogService(blogPostRepository, files, renderer)
	presentationService := service.NewPresentationService(presentationRepository, conferenceRepository)
	settingsService := service.NewSettingsService(bioRepository, contactInfoRepository)
	authService := service.NewAuthService(userRepository)

	blogHandler := handler.NewBlogHandler(blogService, viewService, log)
	pagesHandler := handler.NewPagesHandler(presentationService, settingsService, viewService, log)
	sessionHandler := handler.NewSessionHandler(authService, sessionManager, viewService, log)
	adminHandler := handler.NewAdminHandler(blogService, presentationService, settingsService, files, sessionManager, viewService, log)

	authzMiddleware := middleware.Authorizer(enforcer, sessionManager, authService)
	errorMiddleware := middleware.Error(log, viewService)
	requestLogger := middleware.RequestLogger(log)

	// --- Router Setup ---
	// The router is the central hub that directs incoming requests to the correct handlers.
	router := handler.NewRouter(
		blogHandler,
		pagesHandler,
		sessionHandler,
		adminHandler,
		authzMiddleware,
		errorMiddleware,
		requestLogger,
		sessionManager,
		web.StaticFS,
		handler.StaticDirs{
			BlogPosts:     cfg.Content.BlogPostsDir,
			Presentations: cfg.Content.PresentationsDir,
		},
	)

	// --- Server Initialization and Graceful Shutdown ---
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: router,
	}
	go func() {
		log.Info(fmt.Sprintf("Starting HTTP server on %s", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err, "Could not start HTTP server")
		}
	}()
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Warn("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatal(err, "Server forced to shutdown")
	}
	log.Info("Server exiting")
}
