package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration. Loaded once at startup and
// consumed read-only by every component.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// GitHub App credentials
	GitHub GitHubConfig

	// OAuth app credentials
	OAuth OAuthConfig

	// Webhook hardening
	Webhook WebhookConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Host string
	Port int
	Mode string
	// ExternalURL is the public base URL of this deployment, used to build
	// the OAuth callback URL (e.g. https://bridge.example.com). Defaults to
	// http://<host>:<port>.
	ExternalURL string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// GitHubConfig holds the GitHub App credential set.
type GitHubConfig struct {
	AppID          int64
	PrivateKeyPath string
	WebhookSecret  string
}

// OAuthConfig holds the OAuth app credential pair.
type OAuthConfig struct {
	ClientID     string
	ClientSecret string
}

// WebhookConfig holds webhook hardening settings.
type WebhookConfig struct {
	Secret          string
	AllowedIPs      []string
	RateLimitPerMin int
	DedupTTL        string // delivery-id dedup window, Go duration string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
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
	cfg.HTTPServer.Host = viper.GetString("http_server.host")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.ExternalURL = viper.GetString("http_server.external_url")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	if cfg.HTTPServer.ExternalURL == "" {
		cfg.HTTPServer.ExternalURL = fmt.Sprintf("http://%s:%d", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	}

	// GitHub App
	cfg.GitHub.AppID = viper.GetInt64("github.app_id")
	cfg.GitHub.PrivateKeyPath = viper.GetString("github.private_key_path")
	cfg.GitHub.WebhookSecret = viper.GetString("github.webhook_secret")
	if appID := viper.GetInt64("app_id"); appID != 0 {
		cfg.GitHub.AppID = appID
	}
	if keyPath := viper.GetString("private_key_path"); keyPath != "" {
		cfg.GitHub.PrivateKeyPath = keyPath
	}
	if webhookSecret := viper.GetString("webhook_secret"); webhookSecret != "" {
		cfg.GitHub.WebhookSecret = webhookSecret
	}

	// OAuth app
	cfg.OAuth.ClientID = viper.GetString("oauth.client_id")
	cfg.OAuth.ClientSecret = viper.GetString("oauth.client_secret")
	if clientID := viper.GetString("github_client_id"); clientID != "" {
		cfg.OAuth.ClientID = clientID
	}
	if clientSecret := viper.GetString("github_client_secret"); clientSecret != "" {
		cfg.OAuth.ClientSecret = clientSecret
	}

	// Webhook hardening
	cfg.Webhook.Secret = cfg.GitHub.WebhookSecret
	cfg.Webhook.RateLimitPerMin = viper.GetInt("webhook.rate_limit_per_min")
	cfg.Webhook.DedupTTL = viper.GetString("webhook.dedup_ttl")

	// Split allowed IPs since viper might not parse array seamlessly from env
	var ips []string
	if rawIps := viper.GetString("webhook.allowed_ips"); rawIps != "" {
		for _, ip := range strings.Split(rawIps, ",") {
			ip = strings.TrimSpace(ip)
			if ip != "" {
				ips = append(ips, ip)
			}
		}
	}
	cfg.Webhook.AllowedIPs = ips

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.host", "localhost")
	viper.SetDefault("http_server.port", 3000)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("webhook.rate_limit_per_min", 60)
	viper.SetDefault("webhook.dedup_ttl", "10m")
}

// validate rejects configurations that cannot serve traffic at all.
// Optional integrations (GitHub App credentials) degrade at runtime instead.
func validate(cfg *Config) error {
	if cfg.HTTPServer.Port == 0 {
		return fmt.Errorf("http_server.port is required")
	}
	if cfg.GitHub.WebhookSecret == "" {
		return fmt.Errorf("github.webhook_secret is required - webhook deliveries cannot be verified without it")
	}
	return nil
}
