package audit_logs

import (
	"errors"
	"net/http"

	users_middleware "meetplan/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
)

type AuditLogController struct {
	auditLogService *AuditLogService
}

func (c *AuditLogController) RegisterRoutes(router *gin.RouterGroup) {
	auditRoutes := router.Group("/audit-logs")

	auditRoutes.GET("/global", c.GetGlobalAuditLogs)
	auditRoutes.GET("/me", c.GetMyAuditLogs)
}

// GetGlobalAuditLogs
// @Summary Get global audit logs (admin only)
// @Description Retrieve the latest 100 audit logs across the system
// @Tags audit-logs
// @Produce json
// @Security BearerAuth
// @Success 200 {array} AuditLogDTO
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /audit-logs/global [get]
func (c *AuditLogController) GetGlobalAuditLogs(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	auditLogs, err := c.auditLogService.GetGlobalAuditLogs(user)
	if err != nil {
		if errors.Is(err, ErrInsufficientPermissions) {
			ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve audit logs"})
		return
	}

	ctx.JSON(http.StatusOK, auditLogs)
}

// GetMyAuditLogs
// @Summary Get own audit logs
// @Description Retrieve the latest 100 audit logs written for the authenticated user
// @Tags audit-logs
// @Produce json
// @Security BearerAuth
// @Success 200 {array} AuditLogDTO
// @Failure 401 {object} map[string]string
// @Router /audit-logs/me [get]
func (c *AuditLogController) GetMyAuditLogs(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	auditLogs, err := c.auditLogService.GetUserAuditLogs(user)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve audit logs"})
		return
	}

	ctx.JSON(http.StatusOK, auditLogs)
}
