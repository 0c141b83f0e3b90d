package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"team-inventory/core/config"
	"team-inventory/core/database"
	"team-inventory/core/loader"
	"team-inventory/core/lock"
	"team-inventory/core/logger"
	"team-inventory/core/metrics"
	"team-inventory/core/middleware/auth"
	"team-inventory/core/middleware/rayid"
	teammw "team-inventory/core/middleware/team"
	"team-inventory/core/storage"

	"team-inventory/feature/bom"
	"team-inventory/feature/integrity"
	"team-inventory/feature/inventory"
	"team-inventory/feature/team"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "team-inventory/docs/swagger"
)

// @title Team Inventory API
// @version 1.0
// @description API for robotics team inventory, budgets and BOM reconciliation.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the inventory server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
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

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// 3. Connect to Database
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Database connection failed", zap.Error(err))
		}
		if cfg.Database.AutoMigrate {
			if err := database.Migrate(db, Models()...); err != nil {
				logg.Fatal("Migration failed", zap.Error(err))
			}
		}
		logg.Info("Connected to database", zap.String("driver", cfg.Database.Driver))

		// 4. Initialize Storage (archive is optional)
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}
		var archiver *bom.Archiver
		if cfg.Storage.ArchiveUploads {
			if err := storage.EnsureBucket(ctx, store, cfg.Storage.Bucket, cfg.Storage.Region); err != nil {
				logg.Warn("BOM archiving disabled", zap.Error(err))
			} else {
				archiver = bom.NewArchiver(store, cfg.Storage.Bucket)
			}
		}

		// 5. BOM lock (Redis when configured)
		locker, closeLocker, err := lock.New(ctx, cfg.Redis)
		if err != nil {
			logg.Fatal("Failed to initialize BOM lock", zap.Error(err))
		}
		defer closeLocker()

		// 6. Metrics
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		bomMetrics := metrics.NewBOMMetrics(reg)

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			BodyLimit:             10 * 1024 * 1024,
		})

		// 7. Features
		teamFeature := team.NewFeature(db, logg, cfg.Server)
		guard := teammw.New(teammw.Config{
			Resolver:   teamFeature.Service(),
			CookieName: cfg.Server.CookieName(),
			Logger:     logg,
		})
		teamFeature.SetGuard(guard)

		mgr := loader.NewManager()
		mgr.Register(teamFeature)
		mgr.Register(inventory.NewFeature(db, logg, guard))
		mgr.Register(bom.NewFeature(bom.Deps{
			DB:       db,
			Spend:    teamFeature.Service(),
			Locker:   locker,
			Metrics:  bomMetrics,
			Archiver: archiver,
			Logger:   logg,
		}, guard))
		mgr.Register(integrity.NewFeature(store, cfg.Storage.Bucket, logg, db, Models()...))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Request logging
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
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

		// 3. Public endpoints
		app.Get("/swagger/*", swagger.HandlerDefault)
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

		// 4. Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 8. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 9. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.ShutdownWithTimeout(10 * time.Second)
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
