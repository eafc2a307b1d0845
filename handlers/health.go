package handlers

import (
	"net/http"

	"flightly/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports liveness plus the state of configured dependencies.
// A degraded dependency still answers 200 so the process is not restarted.
func HealthHandler(checker *utils.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := checker.Check(c.Request.Context())
		c.JSON(http.StatusOK, status)
	}
}
