package config

import (
	"os"
	"strconv"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

var Cloudinary *cloudinary.Cloudinary

// Settings holds the environment driven settings shared by the app
type Settings struct {
	AppEnv             string
	Port               string
	JWTSecret          string
	GoogleClientID     string
	PerplexityAPIKey   string
	PerplexityModel    string
	PerplexityURL      string
	AIRequestsPerMin   int
	PDFFontPath        string
	CacheTTL           time.Duration
	CountryMappingFile string
	LogDir             string
}

var App Settings

func LoadSettings() Settings {
	App = Settings{
		AppEnv:             envOr("APP_ENV", "prod"),
		Port:               envOr("PORT", "8083"),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		GoogleClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		PerplexityAPIKey:   os.Getenv("PERPLEXITY_API_KEY"),
		PerplexityModel:    envOr("PERPLEXITY_MODEL", "llama-3.1-sonar-small-128k-online"),
		PerplexityURL:      envOr("PERPLEXITY_API_URL", "https://api.perplexity.ai/chat/completions"),
		AIRequestsPerMin:   envInt("AI_REQUESTS_PER_MINUTE", 20),
		PDFFontPath:        envOr("PDF_FONT_PATH", "fonts/NotoSansTC-Regular.ttf"),
		CacheTTL:           time.Duration(envInt("CACHE_TTL_SECONDS", 300)) * time.Second,
		CountryMappingFile: os.Getenv("COUNTRY_MAPPING_FILE"),
		LogDir:             os.Getenv("LOG_DIR"),
	}
	if App.JWTSecret == "" {
		log.Warn().Msg("JWT_SECRET is empty, admin tokens cannot be issued")
	}
	if App.PerplexityAPIKey == "" {
		log.Warn().Msg("PERPLEXITY_API_KEY is empty, AI descriptions are disabled")
	}
	return App
}

func ConnectCloudinary() error {
	var err error
	if url := os.Getenv("CLOUDINARY_URL"); url != "" {
		Cloudinary, err = cloudinary.NewFromURL(url)
		return err
	}
	Cloudinary, err = cloudinary.NewFromParams(
		os.Getenv("CLOUDINARY_CLOUD_NAME"),
		os.Getenv("CLOUDINARY_API_KEY"),
		os.Getenv("CLOUDINARY_API_SECRET"),
	)
	return err
}

func LoadEnv() error {
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("no .env file, using process environment")
	}
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
