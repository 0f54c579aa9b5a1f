package cli

import (
	"os"

	zlog "github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"travelcms/config"
	"travelcms/services/logger"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var level string

	cmd := &cobra.Command{
		Use:          "travelcms",
		Short:        "Travel package catalog API and maintenance tools",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&level, "log-level", envOr("LOG_LEVEL", "info"), "debug, info or error")

	cmd.AddCommand(
		serveCmd(&level),
		migrateCmd(&level),
		seedContinentsCmd(&level),
		assignContinentsCmd(&level),
		populateSlugsCmd(&level),
		createAdminCmd(&level),
	)
	return cmd
}

// appLogger builds the process logger and makes it the zerolog global
func appLogger(level string) (*logger.ZeroLogger, func()) {
	zl, closer, err := logger.NewWithFile(config.App.AppEnv, config.App.LogDir)
	if err != nil {
		zl.Warn().Err(err).Msg("file logging disabled")
	}
	zlog.Logger = zl
	return logger.NewZeroLogger(zl, logger.ParseLevel(level)), func() { _ = closer.Close() }
}

// connectDB is the light init used by one-shot maintenance commands
func connectDB() error {
	if err := config.LoadEnv(); err != nil {
		return err
	}
	config.LoadSettings()
	return config.ConnectDB()
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
