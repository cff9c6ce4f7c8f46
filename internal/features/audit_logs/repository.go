package audit_logs

import (
	"meetplan/internal/storage"

	"github.com/google/uuid"
)

const selectAuditLogsSQL = `
	SELECT
		al.id,
		al.user_id,
		al.project_id,
		al.message,
		al.created_at,
		u.name as user_name,
		u.email as user_email,
		p.name as project_name
	FROM audit_logs al
	LEFT JOIN users u ON al.user_id = u.id
	LEFT JOIN projects p ON al.project_id = p.id`

type AuditLogRepository struct{}

func (r *AuditLogRepository) Create(auditLog *AuditLog) error {
	if auditLog.ID == uuid.Nil {
		auditLog.ID = uuid.New()
	}

	return storage.GetDb().Create(auditLog).Error
}

func (r *AuditLogRepository) GetGlobal(limit int) ([]*AuditLogDTO, error) {
	var auditLogs = make([]*AuditLogDTO, 0)

	err := storage.GetDb().
		Raw(selectAuditLogsSQL+" ORDER BY al.created_at DESC, al.id DESC LIMIT ?", limit).
		Scan(&auditLogs).Error

	return auditLogs, err
}

func (r *AuditLogRepository) GetByUser(userID uuid.UUID, limit int) ([]*AuditLogDTO, error) {
	var auditLogs = make([]*AuditLogDTO, 0)

	err := storage.GetDb().
		Raw(selectAuditLogsSQL+" WHERE al.user_id = ? ORDER BY al.created_at DESC, al.id DESC LIMIT ?", userID, limit).
		Scan(&auditLogs).Error

	return auditLogs, err
}

func (r *AuditLogRepository) GetByProject(projectID uuid.UUID, limit int) ([]*AuditLogDTO, error) {
	var auditLogs = make([]*AuditLogDTO, 0)

	err := storage.GetDb().
		Raw(selectAuditLogsSQL+" WHERE al.project_id = ? ORDER BY al.created_at DESC, al.id DESC LIMIT ?", projectID, limit).
		Scan(&auditLogs).Error

	return auditLogs, err
}
