package config

import (
	"fmt"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// InitApp loads settings, connects components and builds the router, websocket hub and scheduler.
func InitApp() (*gin.Engine, *melody.Melody, *cron.Cron, error) {
	if err := initComponents(); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to initialize components: %w", err)
	}

	if App.AppEnv != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.HandleMethodNotAllowed = true

	configCors := cors.DefaultConfig()
	configCors.AddAllowHeaders("Authorization", "X-Request-ID")
	configCors.AddExposeHeaders("Content-Disposition", "X-Request-ID")
	configCors.AllowCredentials = true
	configCors.AllowAllOrigins = false
	configCors.AllowOriginFunc = func(origin string) bool {
		return true
	}
	router.Use(cors.New(configCors))

	router.SetTrustedProxies(nil)

	m := melody.New()

	c := cron.New()

	return router, m, c, nil
}

func initComponents() error {
	if err := LoadEnv(); err != nil {
		return fmt.Errorf("failed to load .env file: %w", err)
	}
	LoadSettings()

	if err := ConnectDB(); err != nil {
		return err
	}

	if err := ConnectCloudinary(); err != nil {
		log.Warn().Err(err).Msg("cloudinary not configured, uploads disabled")
	}

	var err error
	RedisClient, err = ConnectRedis()
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	log.Info().Msg("all components initialized successfully")
	return nil
}

// InitWebSocket mounts /ws on the admin-only handlers and hands upgrades to melody
func InitWebSocket(router *gin.Engine, m *melody.Melody, guard ...gin.HandlerFunc) {
	handlers := append(guard, func(c *gin.Context) {
		if err := m.HandleRequest(c.Writer, c.Request); err != nil {
			log.Warn().Err(err).Msg("websocket upgrade failed")
		}
	})
	router.GET("/ws", handlers...)
	log.Info().Msg("websocket initialized successfully")
}
