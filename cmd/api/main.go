package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github-event-bridge/config"
	_ "github-event-bridge/docs" // Swagger docs
	"github-event-bridge/internal/dispatch"
	"github-event-bridge/internal/httpserver"
	"github-event-bridge/internal/installation"
	"github-event-bridge/internal/middleware"
	"github-event-bridge/internal/oauth"
	"github-event-bridge/internal/webhook"
	"github-event-bridge/internal/workflowrun"
	"github-event-bridge/pkg/ghapp"
	"github-event-bridge/pkg/log"
)

// @title       GitHub Event Bridge API
// @description GitHub App webhook ingestion with signed-delivery dispatch and OAuth token exchange.
// @version     1
// @host        localhost:3000
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting GitHub Event Bridge...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Event dispatcher and handlers
	dispatcher := dispatch.New(logger)

	if cfg.GitHub.AppID != 0 && cfg.GitHub.PrivateKeyPath != "" {
		appClient, appErr := ghapp.NewClient(cfg.GitHub.AppID, cfg.GitHub.PrivateKeyPath, logger)
		if appErr != nil {
			logger.Warnf(ctx, "GitHub App client not available (optional): %v", appErr)
		} else {
			installationHandler := installation.New(appClient, logger)
			dispatcher.On("installation.created", installationHandler.HandleInstallationCreated)
			logger.Info(ctx, "✅ Installation token handler registered")
		}
	} else {
		logger.Warn(ctx, "Installation handler skipped: APP_ID or PRIVATE_KEY_PATH is missing")
	}

	workflowHandler := workflowrun.New(logger)
	dispatcher.On("workflow_run", workflowHandler.HandleWorkflowRun)

	// 4. Webhook ingestion
	dedupTTL, ttlErr := time.ParseDuration(cfg.Webhook.DedupTTL)
	if ttlErr != nil {
		logger.Warnf(ctx, "Invalid dedup_ttl %q, using default: %v", cfg.Webhook.DedupTTL, ttlErr)
		dedupTTL = 0
	}
	webhookHandler := webhook.NewHandler(dispatcher, webhook.Config{
		Security: webhook.SecurityConfig{
			Secret:          cfg.Webhook.Secret,
			AllowedIPs:      cfg.Webhook.AllowedIPs,
			RateLimitPerMin: cfg.Webhook.RateLimitPerMin,
		},
		DedupTTL: dedupTTL,
	}, logger)

	// 5. OAuth exchange flow
	var oauthHandler *oauth.Handler
	if cfg.OAuth.ClientID != "" && cfg.OAuth.ClientSecret != "" {
		oauthHandler = oauth.New(oauth.Config{
			ClientID:     cfg.OAuth.ClientID,
			ClientSecret: cfg.OAuth.ClientSecret,
			ExternalURL:  cfg.HTTPServer.ExternalURL,
		}, logger)
		logger.Infof(ctx, "✅ OAuth login enabled, callback at %s%s", cfg.HTTPServer.ExternalURL, oauth.CallbackPath)
	} else {
		logger.Warn(ctx, "OAuth skipped: GITHUB_CLIENT_ID or GITHUB_CLIENT_SECRET is missing")
	}

	// 6. HTTP Server
	serverCfg := httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		Middleware:     middleware.New(logger),
		WebhookHandler: webhookHandler,
	}
	if oauthHandler != nil {
		serverCfg.OAuthHandler = oauthHandler
	}

	httpServer, err := httpserver.New(logger, serverCfg)
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
