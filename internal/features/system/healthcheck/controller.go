package system_healthcheck

import (
	"net/http"

	"meetplan/internal/util/logger"

	"github.com/gin-gonic/gin"
)

type HealthcheckController struct {
	healthcheckService *HealthcheckService
}

func (c *HealthcheckController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/system/health", c.CheckHealth)
}

// CheckHealth
// @Summary Check system health
// @Description Checks database, cache and free disk space
// @Tags system/health
// @Produce json
// @Success 200 {object} system_healthcheck.HealthStatusDTO
// @Failure 503 {object} system_healthcheck.HealthStatusDTO
// @Router /system/health [get]
func (c *HealthcheckController) CheckHealth(ctx *gin.Context) {
	status, err := c.healthcheckService.IsHealthy()
	if err != nil {
		logger.GetLogger().Warn("healthcheck failed", "error", err)
		ctx.JSON(http.StatusServiceUnavailable, status)
		return
	}

	ctx.JSON(http.StatusOK, status)
}
