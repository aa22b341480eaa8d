package httpserver

import (
	"github.com/gin-gonic/gin"

	"github-event-bridge/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "From GitHub Event Bridge With Love"
	HealthVersion = "1.0.0"
	ServiceName   = "github-event-bridge"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck handles readiness check requests.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "ready",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// testCheck is the plain-text probe kept for parity with older deployments.
// @Summary Test Route
// @Description Plain confirmation that the server is running
// @Tags Health
// @Produce plain
// @Success 200 {string} string "Server is running"
// @Router /test [get]
func (srv HTTPServer) testCheck(c *gin.Context) {
	c.String(200, "Server is running")
}
