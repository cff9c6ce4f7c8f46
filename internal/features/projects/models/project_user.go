package projects_models

import (
	"time"

	"github.com/google/uuid"
)

// ProjectUser is a membership of a user in a project. Accepted is false
// while the invitation is pending. Attending stays nil until the member
// answers.
type ProjectUser struct {
	ID        uuid.UUID `json:"id"         gorm:"column:id"`
	UserID    uuid.UUID `json:"user_id"    gorm:"column:user_id"`
	ProjectID uuid.UUID `json:"project_id" gorm:"column:project_id"`
	Attending *bool     `json:"attending"  gorm:"column:attending"`
	Accepted  bool      `json:"accepted"   gorm:"column:accepted"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
}

func (ProjectUser) TableName() string {
	return "project_users"
}
