package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	Server  ServerConfig
	MongoDB MongoDBConfig
	Uploads UploadsConfig
	Email   EmailConfig
	Log     LogConfig
}

type ServerConfig struct {
	Port           string
	Host           string
	GinMode        string
	AllowedOrigins []string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
}

type MongoDBConfig struct {
	URI      string
	Database string
	Timeout  time.Duration
}

type UploadsConfig struct {
	Dir         string
	MaxUploadMB int64
}

// EmailConfig describes the SMTP account used for form notifications.
// Username doubles as the sender address, Recipient receives every notification.
type EmailConfig struct {
	Enabled   bool
	Host      string
	Port      int
	Username  string
	Password  string
	Recipient string
	Timeout   time.Duration
}

type LogConfig struct {
	Level string
	File  string
}

var ErrMissingMongoURI = errors.New("MONGODB_URI is required")

// LoadConfig loads configuration from environment variables and an optional .env file.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "5000")
	v.SetDefault("HOST", "0.0.0.0")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("MONGODB_DATABASE", "flyAmbitionDB")
	v.SetDefault("MONGODB_TIMEOUT", 10)
	v.SetDefault("UPLOAD_DIR", "uploads")
	v.SetDefault("MAX_UPLOAD_MB", 10)
	v.SetDefault("EMAIL_ENABLED", true)
	v.SetDefault("SMTP_HOST", "smtp.gmail.com")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("SMTP_TIMEOUT", 30)
	v.SetDefault("LOG_LEVEL", "info")

	cfg := &Config{
		Server: ServerConfig{
			Port:           v.GetString("PORT"),
			Host:           v.GetString("HOST"),
			GinMode:        v.GetString("GIN_MODE"),
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
			ReadTimeout:    30 * time.Second,
			WriteTimeout:   60 * time.Second,
		},
		MongoDB: MongoDBConfig{
			URI:      strings.TrimSpace(v.GetString("MONGODB_URI")),
			Database: v.GetString("MONGODB_DATABASE"),
			Timeout:  time.Duration(v.GetInt("MONGODB_TIMEOUT")) * time.Second,
		},
		Uploads: UploadsConfig{
			Dir:         v.GetString("UPLOAD_DIR"),
			MaxUploadMB: v.GetInt64("MAX_UPLOAD_MB"),
		},
		Email: EmailConfig{
			Enabled:   v.GetBool("EMAIL_ENABLED"),
			Host:      v.GetString("SMTP_HOST"),
			Port:      v.GetInt("SMTP_PORT"),
			Username:  v.GetString("EMAIL_USER"),
			Password:  v.GetString("EMAIL_PASS"),
			Recipient: v.GetString("TO_EMAIL"),
			Timeout:   time.Duration(v.GetInt("SMTP_TIMEOUT")) * time.Second,
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
			File:  v.GetString("LOG_FILE"),
		},
	}

	if cfg.MongoDB.URI == "" {
		return nil, ErrMissingMongoURI
	}
	if cfg.Uploads.MaxUploadMB <= 0 {
		cfg.Uploads.MaxUploadMB = 10
	}
	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return c.Server.Host + ":" + c.Server.Port
}

func splitList(s string) []string {
	out := []string{}
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
