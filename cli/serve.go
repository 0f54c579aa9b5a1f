package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"travelcms/commands"
	"travelcms/config"
	"travelcms/jobs"
	"travelcms/middleware"
	"travelcms/routes"
	"travelcms/services"
	"travelcms/services/logger"
	"travelcms/services/metrics"
	"travelcms/services/notification"
)

func serveCmd(level *string) *cobra.Command {
	var migrate bool

	c := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API, websocket hub and nightly jobs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			router, m, cr, err := config.InitApp()
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}
			defer cr.Stop()

			log, done := appLogger(*level)
			defer done()

			if migrate {
				if err := migrateTables(cmd.Context()); err != nil {
					return err
				}
				log.Info("tables migrated")
			}

			reg := metrics.InitRegistry()
			router.Use(middleware.RequestID(), middleware.Logger(log.Zerolog()), middleware.Metrics(), middleware.ErrorHandler())

			cache := services.NewCache(config.RedisClient, config.App.CacheTTL, log)
			notifier := notification.NewMelodyService(m)
			geo := services.NewGeographyService(services.GeographyServiceOptions{DB: config.DB, Logger: log, Cache: cache})
			packages := services.NewPackageService(services.PackageServiceOptions{DB: config.DB, Logger: log, Cache: cache})
			homepage := services.NewHomepageService(services.HomepageServiceOptions{
				DB:         config.DB,
				Logger:     log,
				Cache:      cache,
				Packages:   packages,
				Continents: geo,
			})
			auth := services.NewAuthService(services.AuthServiceOptions{
				DB:             config.DB,
				Logger:         log,
				Secret:         config.App.JWTSecret,
				GoogleClientID: config.App.GoogleClientID,
			})

			var media *services.MediaService
			if config.Cloudinary != nil {
				media = services.NewMediaService(&config.Cloudinary.Upload, log)
			} else {
				media = services.NewMediaService(nil, log)
			}

			deps := routes.Deps{
				Logger:    log,
				Cache:     cache,
				Repos:     services.NewCatalogRepositories(config.DB),
				Geography: geo,
				Packages:  packages,
				Copier: services.NewPackageCopyService(services.PackageCopyServiceOptions{
					DB:       config.DB,
					Logger:   log.With("component", "copy"),
					Cache:    cache,
					Notifier: notifier,
				}),
				Homepage: homepage,
				Writer: services.NewPerplexityClient(services.PerplexityOptions{
					URL:               config.App.PerplexityURL,
					APIKey:            config.App.PerplexityAPIKey,
					Model:             config.App.PerplexityModel,
					RequestsPerMinute: config.App.AIRequestsPerMin,
					Logger:            log.With("component", "ai"),
				}),
				PDF:     services.NewItineraryPDFRenderer(config.App.PDFFontPath, log),
				Media:   media,
				Auth:    auth,
				Metrics: metrics.MetricsHandler(reg),
			}

			maintenance := &jobs.Maintenance{
				Commands: []commands.Command{commands.NewPopulateSlugsCommand(config.DB, log)},
				Homepage: homepage,
				Notifier: notifier,
				Logger:   log.With("component", "cron"),
			}
			if err := jobs.InitCronJobs(cr, maintenance); err != nil {
				return fmt.Errorf("failed to initialize cron jobs: %w", err)
			}

			config.InitWebSocket(router, m, middleware.AuthMiddleware(auth))
			routes.SetupRoutes(router, deps)

			go warmHomepage(homepage, log)

			log.Info("server starting on port %s...", config.App.Port)
			return router.Run(":" + config.App.Port)
		},
	}

	c.Flags().BoolVar(&migrate, "migrate", false, "run table migrations before serving")
	return c
}

func warmHomepage(h *services.HomepageService, log logger.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if _, err := h.Refresh(ctx); err != nil {
		log.Error("homepage warmup failed: %v", err)
	}
}
