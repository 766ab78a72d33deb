package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dropbuddy/core/apperror"
	"dropbuddy/core/config"
	"dropbuddy/core/cors"
	"dropbuddy/core/database"
	"dropbuddy/core/loader"
	"dropbuddy/core/logger"
	"dropbuddy/core/middleware/requestid"
	"dropbuddy/core/storage"

	"dropbuddy/feature/auth"
	"dropbuddy/feature/system"
	"dropbuddy/feature/upload"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "dropbuddy/docs/swagger"
)

// @title DropBuddy API
// @version 1.0
// @description Boilerplate HTTP API service.
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the API server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration. Any error here is terminal: the process
		// aborts before a listener is bound.
		cfg, err := config.Load(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		logg.Info("configuration resolved",
			zap.String("addr", cfg.Server.Addr()),
			zap.Int("db_max_connections", cfg.Database.MaxConnections),
			zap.String("log_level", cfg.Log.Level),
		)

		// 3. Connect to Database
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Failed to connect to database", zap.Error(err))
		}
		if err := db.AutoMigrate(&auth.User{}); err != nil {
			logg.Fatal("Failed to run database migration", zap.Error(err))
		}

		// 4. Initialize Storage (Optional)
		// The upload feature disables itself when no client is available.
		var store storage.Client
		if client, err := storage.NewClient(cfg.Storage); err != nil {
			logg.Warn("Optional storage client unavailable", zap.Error(err))
		} else {
			ctx, cancel := context.WithTimeout(context.Background(),
				time.Duration(cfg.Storage.TimeoutSeconds)*time.Second)
			if err := storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region); err != nil {
				logg.Warn("Optional storage bucket check failed", zap.Error(err))
			} else {
				store = client
			}
			cancel()
		}

		if cfg.Secrets.RedisURL != "" {
			logg.Info("cache URL configured")
		}

		// 5. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We log our own startup message
			ReadTimeout:           time.Duration(cfg.Server.Timeout) * time.Second,
			WriteTimeout:          time.Duration(cfg.Server.Timeout) * time.Second,
			BodyLimit:             int(cfg.Storage.MaxUploadBytes()) + 1024*1024,
			ErrorHandler:          apperror.ErrorHandler(logg),
		})

		// Middleware Registration
		// Request ID must be first so everything downstream is traceable.
		app.Use(requestid.New())

		// Logging middleware (Zap + request id)
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRequestID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// CORS
		corsHandler, err := cors.New(&cfg.Cors)
		if err != nil {
			logg.Fatal("Invalid CORS configuration", zap.Error(err))
		}
		logg.Info("CORS configured",
			zap.Strings("allow_origins", cfg.Cors.AllowOrigins),
			zap.Bool("allow_credentials", cfg.Cors.AllowCredentials),
		)
		app.Use(corsHandler)

		// Rate limiting: 10 req/s sustained with a burst of 20.
		app.Use(limiter.New(limiter.Config{
			Max:        20,
			Expiration: 2 * time.Second,
		}))

		// Response compression
		app.Use(compress.New())

		// Swagger documentation, debug builds only
		if cfg.Log.Debug() {
			app.Get("/swagger/*", swagger.HandlerDefault)
		}

		// 6. Load Features
		mgr := loader.NewManager()
		mgr.Register(system.NewFeature(logg))
		mgr.Register(auth.NewFeature(db, cfg.Secrets.JWTSecret, logg))
		mgr.Register(upload.NewFeature(store, cfg.Storage, logg))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// Catch-all 404 page, registered after every feature route.
		app.Use(system.NotFoundHandler(logg))

		// 7. Start Server
		go func() {
			logg.Info("Starting server", zap.String("addr", cfg.Server.Addr()))
			if err := app.Listen(cfg.Server.Addr()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 8. Graceful Shutdown: stop accepting new connections and let
		// in-flight requests complete.
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		logg.Info("Shutting down server...")
		_ = app.Shutdown()

		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
		logg.Info("Server stopped")
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
