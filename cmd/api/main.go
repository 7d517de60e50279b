package main

import (
	"context"
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

	"github.com/rashigupta12/recuritment-sub001/internal/config"
	"github.com/rashigupta12/recuritment-sub001/internal/handlers"
	"github.com/rashigupta12/recuritment-sub001/internal/repositories"
	"github.com/rashigupta12/recuritment-sub001/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Extraction history lives in Postgres. The pipeline itself is
	// stateless, so a missing database only disables history.
	var extractionRepo repositories.ExtractionRepository
	if db, err := config.InitDatabase(cfg); err != nil {
		log.Printf("⚠️  Database unavailable, extraction history disabled: %v\n", err)
	} else {
		extractionRepo = repositories.NewExtractionRepository(db)
		log.Println("✅ Repositories initialized successfully")
	}

	// Initialize storage
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}
	log.Println("✅ Storage initialized successfully")

	// Initialize Gemini AI. A missing key is a deployment error surfaced
	// per-request as HTTP 500, not a startup crash.
	var llmService services.LLMService
	if cfg.Gemini.APIKey == "" {
		log.Println("⚠️  GEMINI_API_KEY not set, extraction requests will fail with a configuration error")
	} else {
		svc, err := services.NewGeminiService(cfg.Gemini.APIKey, cfg.Gemini.Model)
		if err != nil {
			log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
		}
		llmService = svc
		log.Println("✅ Gemini AI initialized successfully")
	}

	// Initialize the resume index
	var resumeIndex services.ResumeIndex
	var indexer services.Indexer
	if llmService != nil {
		index, err := services.NewResumeIndex(
			cfg.Qdrant.URL,
			cfg.Qdrant.APIKey,
			cfg.Qdrant.Collection,
		)
		if err != nil {
			log.Printf("⚠️  Qdrant unavailable, resume search disabled: %v\n", err)
		} else if err := index.InitCollection(); err != nil {
			log.Printf("⚠️  Qdrant collection init failed, resume search disabled: %v\n", err)
		} else {
			resumeIndex = index
			indexer = services.NewIndexer(llmService, resumeIndex, 2)
			log.Println("✅ Resume index initialized successfully")
		}
	}

	// Initialize pipeline
	pipeline := services.NewPipeline(llmService, cfg.Pipeline)
	log.Println("✅ Extraction pipeline initialized")

	// Start indexer
	ctx := context.Background()
	if indexer != nil {
		indexer.Start(ctx)
		log.Println("✅ Resume indexer started successfully")
	}

	// Initialize handlers
	applicantHandler := handlers.NewApplicantHandler(
		pipeline,
		extractionRepo,
		storageService,
		indexer,
		cfg.Storage.MaxFileSize,
		cfg.IsProduction(),
	)
	descriptionHandler := handlers.NewDescriptionHandler(
		pipeline,
		extractionRepo,
		storageService,
		cfg.Storage.MaxFileSize,
		cfg.IsProduction(),
	)
	log.Println("✅ Handlers initialized")

	// Create Fiber app. BodyLimit sits above the documented file cap so the
	// handler can answer 413 with the shared envelope.
	app := fiber.New(fiber.Config{
		AppName:      "Recruitment Intake API",
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize) + 1024*1024,
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
	api := app.Group("/api")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Pipeline endpoints
	api.Post("/jobapplicant", applicantHandler.HandleExtract)
	api.Post("/jobdescription", descriptionHandler.HandleSummarize)

	// Extraction history
	if extractionRepo != nil {
		extractionHandler := handlers.NewExtractionHandler(extractionRepo)
		api.Get("/extractions", extractionHandler.HandleList)
		api.Get("/extractions/:id", extractionHandler.HandleGet)
	}

	// Resume similarity search
	if resumeIndex != nil {
		searchHandler := handlers.NewSearchHandler(llmService, resumeIndex)
		api.Post("/resumes/search", searchHandler.HandleSearch)
	} else {
		api.Post("/resumes/search", func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"error": "Resume search is not configured",
			})
		})
	}

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Recruitment Intake API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/jobapplicant",
				"POST /api/jobdescription",
				"GET /api/extractions/:id",
				"POST /api/resumes/search",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if indexer != nil {
			indexer.Stop()
		}
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
		"error":     err.Error(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
