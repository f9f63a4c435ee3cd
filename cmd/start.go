package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"reconciler/core/database"
	"reconciler/core/loader"
	"reconciler/core/logger"
	"reconciler/core/metrics"
	"reconciler/core/middleware/auth"
	"reconciler/core/middleware/rayid"

	"reconciler/feature/integrity"
	"reconciler/feature/reconciliation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "reconciler/docs/swagger"
)

// @title Reconciler API
// @version 1.0
// @description API for reconciling invoice exports and browsing run history.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the reconciliation server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration and Logger
		rt, err := bootstrap()
		if err != nil {
			log.Fatalf("Failed to start: %v", err)
		}
		cfg, logg := rt.cfg, rt.logger
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		if err := cfg.Server.Validate(); err != nil {
			logg.Fatal("Invalid server configuration", zap.Error(err))
		}

		// 2. Connect to Database (Optional)
		// Without a database, runs are computed but not kept.
		var db *gorm.DB
		if conn, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Run history disabled: database connection failed", zap.Error(err))
		} else {
			db = conn
			logg.Info("Connected to run history database", zap.String("driver", cfg.Database.Driver))
		}

		if rt.client == nil {
			logg.Info("Object storage disabled")
		}

		// 3. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			BodyLimit:             cfg.Server.BodyLimit(),
			ReadTimeout:           time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
		})

		// 4. Initialize Feature Loader
		mgr := loader.NewManager(logg)
		mgr.Register(reconciliation.NewFeature(db, rt.client, cfg.Storage, cfg.Reconcile, logg))
		mgr.Register(integrity.NewFeature(rt.client, cfg.Storage, db, logg))

		// Middleware Registration
		// RayID must be first so every log line carries it.
		app.Use(rayid.New())
		app.Use(logger.Middleware(logg))
		app.Use(metrics.Middleware())

		// Public endpoints
		metrics.Register()
		app.Get("/metrics", metrics.Handler())
		app.Get("/swagger/*", swagger.HandlerDefault)

		// Auth protects everything registered after it.
		app.Use(auth.New(auth.Config{
			ApiKey:         cfg.Server.ApiKey,
			PublicPrefixes: []string{"/metrics", "/swagger"},
		}))

		// 5. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 6. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(cfg.Server.Address()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 7. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
