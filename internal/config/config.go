package config

import (
	"os"

	"github.com/legend1349/USYDSTRATA2025/internal/utils"
)

const AppName = "strata-portal"

type Config struct {
	AppName string
	AppPort string
	AppUrl  string

	DBUrl         string
	SessionSecret []byte

	// Optional maintenance notification email settings. All three must be
	// set for notifications to go out.
	SendgridAPIKey  string
	NotifyFromEmail string
	NotifyToEmail   string

	// Optional bootstrap account created on startup if it does not exist.
	AdminEmail    string
	AdminPassword string
	AdminName     string
}

// LoadConfig reads runtime configuration from the environment and fails
// fast on anything required.
func LoadConfig() *Config {
	utils.Logger.Info("Loading config for app: ", AppName)

	appPort := os.Getenv("APP_PORT")
	if appPort == "" {
		utils.Logger.Fatal("APP_PORT env var is missing")
	}
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		utils.Logger.Fatal("DATABASE_URL env var is missing")
	}
	sessionSecret := os.Getenv("SESSION_SECRET")
	if sessionSecret == "" {
		utils.Logger.Fatal("SESSION_SECRET env var is missing")
	}

	appURL := os.Getenv("APP_URL")
	if appURL == "" {
		appURL = "http://localhost:3000"
	}

	cfg := &Config{
		AppName:         AppName,
		AppPort:         appPort,
		AppUrl:          appURL,
		DBUrl:           dbURL,
		SessionSecret:   []byte(sessionSecret),
		SendgridAPIKey:  os.Getenv("SENDGRID_API_KEY"),
		NotifyFromEmail: os.Getenv("NOTIFY_FROM_EMAIL"),
		NotifyToEmail:   os.Getenv("NOTIFY_TO_EMAIL"),
		AdminEmail:      os.Getenv("ADMIN_EMAIL"),
		AdminPassword:   os.Getenv("ADMIN_PASSWORD"),
		AdminName:       os.Getenv("ADMIN_NAME"),
	}

	if cfg.SendgridAPIKey == "" {
		utils.Logger.Info("SENDGRID_API_KEY not set; maintenance notifications disabled")
	}
	return cfg
}

// NotificationsEnabled reports whether outbound email is fully configured.
func (c *Config) NotificationsEnabled() bool {
	return c.SendgridAPIKey != "" && c.NotifyFromEmail != "" && c.NotifyToEmail != ""
}
