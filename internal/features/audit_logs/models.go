package audit_logs

import (
	"time"

	"github.com/google/uuid"
)

type AuditLog struct {
	ID        uuid.UUID  `json:"id"         gorm:"column:id"`
	UserID    *uuid.UUID `json:"user_id"    gorm:"column:user_id"`
	ProjectID *uuid.UUID `json:"project_id" gorm:"column:project_id"`
	Message   string     `json:"message"    gorm:"column:message"`
	CreatedAt time.Time  `json:"created_at" gorm:"column:created_at"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}
