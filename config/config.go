package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig

	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// KaziLeo specifics
	Postgres PostgresConfig
	WhatsApp WhatsAppConfig
	Gemini   GeminiConfig
	Session  SessionConfig
	Webhook  WebhookConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// PostgresConfig configures the session database.
type PostgresConfig struct {
	URL string
}

// WhatsAppConfig configures the WhatsApp Cloud API integration.
type WhatsAppConfig struct {
	Token       string
	PhoneID     string
	VerifyToken string // webhook verification handshake token
	AppSecret   string // X-Hub-Signature-256 HMAC secret (optional)
}

// GeminiConfig configures the AI collaborator.
type GeminiConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

// SessionConfig configures dialogue session behavior.
type SessionConfig struct {
	Timeout time.Duration // inactivity window before transient state resets
}

// WebhookConfig configures inbound webhook protection.
type WebhookConfig struct {
	RateLimitPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Postgres
	cfg.Postgres.URL = viper.GetString("postgres.url")
	if dbURL := viper.GetString("database_url"); dbURL != "" {
		cfg.Postgres.URL = dbURL
	}

	// WhatsApp
	cfg.WhatsApp.Token = viper.GetString("whatsapp.token")
	cfg.WhatsApp.PhoneID = viper.GetString("whatsapp.phone_id")
	cfg.WhatsApp.VerifyToken = viper.GetString("whatsapp.verify_token")
	cfg.WhatsApp.AppSecret = viper.GetString("whatsapp.app_secret")
	if token := viper.GetString("whatsapp_token"); token != "" {
		cfg.WhatsApp.Token = token
	}
	if phoneID := viper.GetString("whatsapp_phone_id"); phoneID != "" {
		cfg.WhatsApp.PhoneID = phoneID
	}
	if verify := viper.GetString("verify_token"); verify != "" {
		cfg.WhatsApp.VerifyToken = verify
	}

	// Gemini
	cfg.Gemini.APIKey = viper.GetString("gemini.api_key")
	cfg.Gemini.Model = viper.GetString("gemini.model")
	if key := viper.GetString("gemini_api_key"); key != "" {
		cfg.Gemini.APIKey = key
	}
	timeout, err := time.ParseDuration(viper.GetString("gemini.timeout"))
	if err != nil {
		return nil, fmt.Errorf("invalid gemini.timeout: %w", err)
	}
	cfg.Gemini.Timeout = timeout

	// Session
	cfg.Session.Timeout = time.Duration(viper.GetInt("session.timeout_minutes")) * time.Minute

	// Webhook protection
	cfg.Webhook.RateLimitPerMin = viper.GetInt("webhook.rate_limit_per_min")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("gemini.model", "gemini-2.5-flash")
	viper.SetDefault("gemini.timeout", "60s")
	viper.SetDefault("session.timeout_minutes", 5)
	viper.SetDefault("webhook.rate_limit_per_min", 60)
}
