package audit_logs

import (
	"time"

	"github.com/google/uuid"
)

type AuditLogDTO struct {
	ID          uuid.UUID  `json:"id"           gorm:"column:id"`
	UserID      *uuid.UUID `json:"user_id"      gorm:"column:user_id"`
	ProjectID   *uuid.UUID `json:"project_id"   gorm:"column:project_id"`
	Message     string     `json:"message"      gorm:"column:message"`
	CreatedAt   time.Time  `json:"created_at"   gorm:"column:created_at"`
	UserName    *string    `json:"user_name"    gorm:"column:user_name"`
	UserEmail   *string    `json:"user_email"   gorm:"column:user_email"`
	ProjectName *string    `json:"project_name" gorm:"column:project_name"`
}
