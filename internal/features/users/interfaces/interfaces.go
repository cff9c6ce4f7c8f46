package users_interfaces

import (
	"github.com/google/uuid"
)

// AuditLogWriter is implemented by the audit_logs feature and injected at
// start-up, audit_logs already imports the users feature.
type AuditLogWriter interface {
	WriteAuditLog(message string, userID *uuid.UUID, projectID *uuid.UUID)
}
