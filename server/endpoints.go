package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ubcspin/REMO1-dataProcessing/observability"
)

// Health returns a handler that aggregates the component health checkers
// into a service health report. A degraded or down component maps to 503.
func Health(serviceName, version string, checkers ...observability.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := observability.NewServiceHealth(serviceName, version)
		for _, checker := range checkers {
			health.AddComponent(checker.CheckHealth(c.Request.Context()))
		}

		status := http.StatusOK
		if health.Status != observability.HealthStatusUp {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, health)
	}
}

// Version returns a handler reporting the service name and version.
func Version(serviceName, version string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": serviceName,
			"version": version,
		})
	}
}
