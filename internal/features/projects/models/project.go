package projects_models

import (
	"time"

	"github.com/google/uuid"
)

type Project struct {
	ID            uuid.UUID  `json:"id"              gorm:"column:id"`
	Name          string     `json:"name"            gorm:"column:name"`
	UserID        uuid.UUID  `json:"user_id"         gorm:"column:user_id"`
	MeetingDateID *uuid.UUID `json:"meeting_date_id" gorm:"column:meeting_date_id"`
	CreatedAt     time.Time  `json:"created_at"      gorm:"column:created_at"`
	UpdatedAt     time.Time  `json:"updated_at"      gorm:"column:updated_at"`

	// Cached marker for ids that have no project
	IsNotExists bool `json:"is_not_exists,omitempty" gorm:"-"`
}

func (Project) TableName() string {
	return "projects"
}
