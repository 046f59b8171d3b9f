package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "makecut/docs"

	"makecut/internal/delivery/http/routers"
	"makecut/internal/domain/dto"
	"makecut/internal/domain/repositories"
	"makecut/internal/infrastructure/billing"
	"makecut/internal/infrastructure/db"
	infra_repo "makecut/internal/infrastructure/repositories"
	"makecut/internal/infrastructure/storage"
	"makecut/internal/pkg/config"
	"makecut/internal/usecases"
	"makecut/pkg/constants"

	_ "makecut/migrations"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
	"github.com/robfig/cron/v3"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/swagger"
)

// @title        MakeCut API
// @version      1.0
// @description  Backend for the MakeCut browser video-cutting product
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}
	cfg := config.LoadConfig()
	if err := cfg.EnsureDirs(); err != nil {
		log.Fatalf("Could not create upload dirs: %v", err)
	}

	mediaStore := newMediaStore(cfg)
	accountRepo := newAccountRepository(cfg)

	ingestService := usecases.NewIngestService(cfg.Upload.MaxFileSize, cfg.Upload.MemoryLimit, cfg.Upload.TempDir)
	builder := usecases.NewCutURLBuilder(cfg.Media.DeliveryURL, cfg.Media.CloudName)
	videoService := usecases.NewVideoService(ingestService, mediaStore, builder, cfg.Media.UploadFolder)
	accountService := usecases.NewAccountService(accountRepo)
	checkoutClient := billing.NewCheckoutClient(cfg.Payment.BaseURL, cfg.Payment.SecretKey, cfg.Payment.SuccessURL, cfg.Payment.CancelURL)
	checkoutService := usecases.NewCheckoutService(checkoutClient, accountRepo)

	app := fiber.New(fiber.Config{
		// A little headroom over the ceiling so oversized uploads reach the
		// ingest check and get the structured payload_too_large body instead
		// of fiber's bare 413.
		BodyLimit: int(cfg.Upload.MaxFileSize) + 10*1024*1024,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORS.AllowedOrigins,
	}))

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Liveness/info, same envelope the frontend has always consumed.
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(dto.InfoResponse{
			Message:   "MakeCut API up and running",
			Status:    constants.StatusOK,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": constants.StatusOK})
	})

	// Routes
	routers.SetupVideoRoutes(app, videoService)
	routers.SetupAuthRoutes(app, accountService)
	routers.SetupBillingRoutes(app, checkoutService, cfg.Payment.WebhookSecret)

	// Periodic cleanup of ingest buffers left behind by aborted requests.
	cleanupService := usecases.NewCleanupService(cfg.Upload.TempDir)
	c := cron.New(cron.WithSeconds())
	c.AddFunc("0 */5 * * * *", func() {
		if err := cleanupService.CleanupOldTempFiles(time.Duration(cfg.Upload.CleanupAge) * time.Hour); err != nil {
			log.Printf("Error cleaning up old temp files: %v", err)
		}
	})
	c.Start()

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	log.Printf("Server starting on %s", addr)

	go func() {
		if err := app.Listen(addr); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Print("Shutdown signal received, stopping server...")

	c.Stop()
	ctxShut, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctxShut); err != nil {
		log.Fatalf("Server did not shut down cleanly: %v", err)
	}
	log.Println("Server stopped cleanly")
}

func newMediaStore(cfg *config.Config) repositories.MediaStore {
	switch cfg.Media.Driver {
	case "s3":
		store, err := storage.NewS3Storage(context.Background(), cfg.Media.S3Bucket, cfg.Media.S3Region)
		if err != nil {
			log.Fatalf("Could not init S3 storage: %v", err)
		}
		return store
	case "gcs":
		store, err := storage.NewGCSStorage(context.Background(), cfg.Media.GCSBucket, []byte(cfg.Media.GCSCredsJSON))
		if err != nil {
			log.Fatalf("Could not init GCS storage: %v", err)
		}
		return store
	case "local":
		return storage.NewLocalStorage(cfg.Upload.UploadsDir)
	default:
		return storage.NewMediaAPIStorage(cfg.Media.BaseURL, cfg.Media.CloudName, cfg.Media.APIKey, cfg.Media.APISecret)
	}
}

func newAccountRepository(cfg *config.Config) repositories.AccountRepository {
	switch cfg.Accounts.Driver {
	case "redis":
		rdb := redis.NewClient(&redis.Options{
			Addr: fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
		})
		return infra_repo.NewRedisAccountRepository(rdb)
	case "postgres":
		database, err := db.NewPostgresDB(&cfg.Database)
		if err != nil {
			log.Fatalf("DB connection failed: %v", err)
		}
		if cfg.Database.AutoMig {
			sqlDB, err := database.DB()
			if err != nil {
				log.Fatalf("Could not get sql.DB: %v", err)
			}
			goose.SetBaseFS(nil)
			if err := goose.SetDialect("postgres"); err != nil {
				log.Fatalf("failed to set migration dialect: %v", err)
			}
			if err := goose.Up(sqlDB, "."); err != nil {
				log.Fatalf("failed to apply migrations: %v", err)
			}
		}
		return infra_repo.NewPostgresAccountRepository(database)
	default:
		return infra_repo.NewInMemoryAccountRepository()
	}
}
