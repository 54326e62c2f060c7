package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/iamtidu/Ats-Score-Checker-Using-Gemini/internal/config"
	"github.com/iamtidu/Ats-Score-Checker-Using-Gemini/internal/handlers"
	"github.com/iamtidu/Ats-Score-Checker-Using-Gemini/internal/repositories"
	"github.com/iamtidu/Ats-Score-Checker-Using-Gemini/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// The API key is the one fatal startup condition: without it every
	// action would fail, so halt immediately with a visible error.
	if cfg.Gemini.APIKey == "" {
		log.Fatal("❌ Gemini API key not found. Please set GEMINI_API_KEY in the environment or a .env file.")
	}

	// Initialize session repository
	sessionRepo := repositories.NewSessionRepository()
	log.Println("✅ Session repository initialized")

	// Initialize services
	pdfParser := services.NewPDFParserService()

	geminiService, err := services.NewGeminiService(cfg.Gemini.APIKey, cfg.Gemini.Model)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
	}
	log.Printf("✅ Gemini AI initialized successfully (model: %s)\n", cfg.Gemini.Model)

	analyzerService := services.NewAnalyzerService(geminiService)
	log.Println("✅ Analyzer service initialized")

	// Start session janitor
	janitor := services.NewSessionJanitor(
		sessionRepo,
		cfg.Session.TTL,
		cfg.Session.JanitorInterval,
	)
	janitor.Start()

	// Initialize Handlers
	sessionHandler := handlers.NewSessionHandler(sessionRepo)
	uploadHandler := handlers.NewUploadHandler(
		sessionRepo,
		pdfParser,
		cfg.Upload.MaxFileSize,
	)
	analysisHandler := handlers.NewAnalysisHandler(sessionRepo, analyzerService)
	chatHandler := handlers.NewChatHandler(sessionRepo, analyzerService)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "AI Resume Analyzer API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Upload.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// API endpoints
	api.Post("/sessions", sessionHandler.HandleCreate)
	api.Get("/sessions/:id", sessionHandler.HandleGet)
	api.Put("/sessions/:id/job", sessionHandler.HandleSetJobDescription)
	api.Post("/sessions/:id/resume", uploadHandler.HandleUpload)
	api.Post("/sessions/:id/analyze", analysisHandler.HandleAnalyze)
	api.Post("/sessions/:id/chat", chatHandler.HandleChat)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "AI Resume Analyzer powered by Gemini",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/sessions",
				"GET /api/v1/sessions/:id",
				"PUT /api/v1/sessions/:id/job",
				"POST /api/v1/sessions/:id/resume",
				"POST /api/v1/sessions/:id/analyze",
				"POST /api/v1/sessions/:id/chat",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		janitor.Stop()
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
