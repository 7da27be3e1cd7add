package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"petclinic/internal/platform/logger"
	"petclinic/internal/platform/paging"
)

// Config agrupa los settings del proceso, leídos de env (y .env si existe).
type Config struct {
	Port string

	// DBDSN vacío => store in-memory con datos de ejemplo.
	DBDSN     string
	DBMigrate bool

	PageSize int

	LogLevel  logger.Level
	LogFormat logger.Format
	AppName   string

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

func (c Config) Addr() string {
	return ":" + c.Port
}

// Load lee la configuración. Un .env ausente no es error.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("DB_DSN", "")
	v.SetDefault("DB_MIGRATE", true)
	v.SetDefault("PAGE_SIZE", paging.DefaultSize)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("APP_NAME", "petclinic")
	v.SetDefault("HTTP_READ_TIMEOUT", 5*time.Second)
	v.SetDefault("HTTP_WRITE_TIMEOUT", 10*time.Second)
	v.SetDefault("SHUTDOWN_TIMEOUT", 10*time.Second)

	cfg := Config{
		Port:            strings.TrimSpace(v.GetString("PORT")),
		DBDSN:           strings.TrimSpace(v.GetString("DB_DSN")),
		DBMigrate:       v.GetBool("DB_MIGRATE"),
		PageSize:        v.GetInt("PAGE_SIZE"),
		LogLevel:        logger.ParseLevel(v.GetString("LOG_LEVEL")),
		LogFormat:       logger.ParseFormat(v.GetString("LOG_FORMAT")),
		AppName:         strings.TrimSpace(v.GetString("APP_NAME")),
		ReadTimeout:     v.GetDuration("HTTP_READ_TIMEOUT"),
		WriteTimeout:    v.GetDuration("HTTP_WRITE_TIMEOUT"),
		ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
	}

	if cfg.Port == "" {
		return Config{}, fmt.Errorf("PORT must not be empty")
	}
	if cfg.PageSize <= 0 {
		return Config{}, fmt.Errorf("PAGE_SIZE must be a positive integer")
	}
	if cfg.ReadTimeout <= 0 || cfg.WriteTimeout <= 0 || cfg.ShutdownTimeout <= 0 {
		return Config{}, fmt.Errorf("timeouts must be positive durations")
	}
	return cfg, nil
}
