package config

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var DB *gorm.DB

func getDBConfigByEnv(env string) (string, error) {
	var prefix string

	switch env {
	case "dev":
		prefix = "DEV"
	case "qc":
		prefix = "QC"
	case "prod":
		prefix = "PROD"
	default:
		return "", fmt.Errorf("unknown environment: %q", env)
	}

	sslMode := os.Getenv(prefix + "_DB_SSLMODE")
	if sslMode == "" {
		sslMode = "require"
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=Asia/Taipei",
		os.Getenv(prefix+"_DB_HOST"),
		os.Getenv(prefix+"_DB_USER"),
		os.Getenv(prefix+"_DB_PASSWORD"),
		os.Getenv(prefix+"_DB_NAME"),
		os.Getenv(prefix+"_DB_PORT"),
		sslMode,
	)
	return dsn, nil
}

// OpenDB opens a postgres connection. Unique violations surface as gorm.ErrDuplicatedKey.
func OpenDB(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	})
}

func ConnectDB() error {
	env := os.Getenv("ENV")
	if env == "" {
		env = "dev"
	}
	dsn, err := getDBConfigByEnv(env)
	if err != nil {
		return err
	}

	DB, err = OpenDB(dsn)
	if err != nil {
		return fmt.Errorf("connect to db: %w", err)
	}

	log.Info().Str("env", env).Msg("successfully connected to db")
	return nil
}
