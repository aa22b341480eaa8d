package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github-event-bridge/internal/model"
	"github-event-bridge/pkg/response"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	// Catch-all: any unmatched method/path gets a logged 404
	srv.gin.NoRoute(func(c *gin.Context) {
		srv.l.Infof(c.Request.Context(), "Unmatched route: %s %s", c.Request.Method, c.Request.URL.Path)
		response.NotFound(c)
	})

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.mw.RequestLogger())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "Server mode: production")
	} else {
		srv.l.Infof(ctx, "Server mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
	srv.gin.GET("/test", srv.testCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	// Webhook ingestion
	if srv.webhookHandler != nil {
		srv.gin.POST("/github/webhooks", srv.webhookHandler.HandleGitHubWebhook)
		srv.l.Infof(ctx, "GitHub webhook route registered at POST /github/webhooks")
	} else {
		srv.l.Infof(ctx, "Webhook handler not configured, skipping webhook route")
	}

	// OAuth exchange flow
	if srv.oauthHandler != nil {
		srv.gin.GET("/login/github", srv.oauthHandler.Login)
		srv.gin.GET("/oauth/callback", srv.oauthHandler.Callback)
		srv.l.Infof(ctx, "OAuth routes registered at GET /login/github and GET /oauth/callback")
	} else {
		srv.l.Infof(ctx, "OAuth handler not configured, skipping login routes")
	}

	return nil
}
