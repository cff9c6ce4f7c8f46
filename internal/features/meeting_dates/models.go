package meeting_dates

import (
	"time"

	"github.com/google/uuid"
)

type MeetingDate struct {
	ID        uuid.UUID `json:"id"         gorm:"column:id"`
	ProjectID uuid.UUID `json:"project_id" gorm:"column:project_id"`
	Date      time.Time `json:"date"       gorm:"column:date"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
}

func (MeetingDate) TableName() string {
	return "meeting_dates"
}

// MeetingDateVote keeps project_id next to the date so the database can
// hold a user to one vote per project
type MeetingDateVote struct {
	UserID        uuid.UUID `json:"user_id"         gorm:"column:user_id;primaryKey"`
	MeetingDateID uuid.UUID `json:"meeting_date_id" gorm:"column:meeting_date_id;primaryKey"`
	ProjectID     uuid.UUID `json:"project_id"      gorm:"column:project_id"`
	CreatedAt     time.Time `json:"created_at"      gorm:"column:created_at"`
}

func (MeetingDateVote) TableName() string {
	return "meeting_date_votes"
}
