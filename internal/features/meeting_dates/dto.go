package meeting_dates

import (
	"time"

	"github.com/google/uuid"
)

// DateRequestDTO accepts an RFC3339 string, a "2006-01-02" day or unix
// seconds/milliseconds
type DateRequestDTO struct {
	Date any `json:"date" swaggertype:"string" example:"2025-06-01T18:00:00Z"`
}

type VoteResponseDTO struct {
	MeetingDateID uuid.UUID `json:"meeting_date_id"`
	Votes         int64     `json:"votes"`
}

type ProjectDateDTO struct {
	ID        uuid.UUID `json:"id"         gorm:"column:id"`
	ProjectID uuid.UUID `json:"project_id" gorm:"column:project_id"`
	Date      time.Time `json:"date"       gorm:"column:date"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
	Votes     int64     `json:"votes"      gorm:"column:votes"`
	Voted     bool      `json:"voted"      gorm:"column:voted"`
	IsPicked  bool      `json:"picked"     gorm:"-"`
}
