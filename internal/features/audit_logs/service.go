package audit_logs

import (
	"errors"
	"log/slog"
	"time"

	users_models "meetplan/internal/features/users/models"

	"github.com/google/uuid"
)

// Activity lists are not paginated, only the latest entries are returned
const latestAuditLogsLimit = 100

var ErrInsufficientPermissions = errors.New("only administrators can view global audit logs")

type AuditLogService struct {
	auditLogRepository *AuditLogRepository
	logger             *slog.Logger
}

// WriteAuditLog never fails the caller, a lost entry is only logged
func (s *AuditLogService) WriteAuditLog(
	message string,
	userID *uuid.UUID,
	projectID *uuid.UUID,
) {
	auditLog := &AuditLog{
		UserID:    userID,
		ProjectID: projectID,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.auditLogRepository.Create(auditLog); err != nil {
		s.logger.Error("failed to create audit log", "error", err, "message", message)
	}
}

func (s *AuditLogService) GetGlobalAuditLogs(user *users_models.User) ([]*AuditLogDTO, error) {
	if !user.IsAdmin {
		return nil, ErrInsufficientPermissions
	}

	return s.auditLogRepository.GetGlobal(latestAuditLogsLimit)
}

func (s *AuditLogService) GetUserAuditLogs(user *users_models.User) ([]*AuditLogDTO, error) {
	return s.auditLogRepository.GetByUser(user.ID, latestAuditLogsLimit)
}

// GetProjectAuditLogs does not check access, callers resolve it first
func (s *AuditLogService) GetProjectAuditLogs(projectID uuid.UUID) ([]*AuditLogDTO, error) {
	return s.auditLogRepository.GetByProject(projectID, latestAuditLogsLimit)
}
