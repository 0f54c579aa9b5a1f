package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"travelcms/commands"
	"travelcms/config"
	"travelcms/models"
	"travelcms/services"
)

func migrateCmd(level *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update every table",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := connectDB(); err != nil {
				return err
			}
			log, done := appLogger(*level)
			defer done()

			if err := migrateTables(cmd.Context()); err != nil {
				return err
			}
			log.Info("tables migrated")
			return nil
		},
	}
}

func migrateTables(ctx context.Context) error {
	if err := models.AutoMigrate(config.DB.WithContext(ctx)); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

func seedContinentsCmd(level *string) *cobra.Command {
	return &cobra.Command{
		Use:   "seed-continents",
		Short: "Insert or update the default continents",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := connectDB(); err != nil {
				return err
			}
			log, done := appLogger(*level)
			defer done()

			return commands.Run(cmd.Context(), log, commands.NewSeedContinentsCommand(config.DB, log))
		},
	}
}

func assignContinentsCmd(level *string) *cobra.Command {
	var file string

	c := &cobra.Command{
		Use:   "assign-continents",
		Short: "Link countries to continents from the name mapping",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := connectDB(); err != nil {
				return err
			}
			log, done := appLogger(*level)
			defer done()

			if file == "" {
				file = config.App.CountryMappingFile
			}
			return commands.Run(cmd.Context(), log, commands.NewAssignContinentsCommand(config.DB, log, file))
		},
	}

	c.Flags().StringVarP(&file, "file", "f", "", "YAML mapping of continent names to country names (defaults to the built-in list)")
	return c
}

func populateSlugsCmd(level *string) *cobra.Command {
	return &cobra.Command{
		Use:   "populate-slugs",
		Short: "Fill missing country, city and package slugs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := connectDB(); err != nil {
				return err
			}
			log, done := appLogger(*level)
			defer done()

			populate := commands.NewPopulateSlugsCommand(config.DB, log)
			if err := commands.Run(cmd.Context(), log, populate); err != nil {
				return err
			}
			if !populate.Complete() {
				return fmt.Errorf("some slugs still need manual review")
			}
			return nil
		},
	}
}

func createAdminCmd(level *string) *cobra.Command {
	var email, name, password string

	c := &cobra.Command{
		Use:   "create-admin",
		Short: "Create or reset an admin account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := connectDB(); err != nil {
				return err
			}
			log, done := appLogger(*level)
			defer done()

			auth := services.NewAuthService(services.AuthServiceOptions{
				DB:     config.DB,
				Logger: log,
				Secret: config.App.JWTSecret,
			})
			admin, err := auth.CreateAdmin(cmd.Context(), email, name, password)
			if err != nil {
				return err
			}
			log.Info("admin %d ready for %s", admin.ID, admin.Email)
			return nil
		},
	}

	c.Flags().StringVar(&email, "email", "", "Admin email (required)")
	c.Flags().StringVar(&name, "name", "", "Display name")
	c.Flags().StringVar(&password, "password", "", "Password (required)")
	_ = c.MarkFlagRequired("email")
	_ = c.MarkFlagRequired("password")
	return c
}
