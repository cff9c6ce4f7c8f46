package meeting_dates

import (
	"errors"
	"time"

	"meetplan/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MeetingDateRepository struct{}

// CreateMeetingDates inserts every date with one statement
func (r *MeetingDateRepository) CreateMeetingDates(meetingDates []*MeetingDate) error {
	now := time.Now().UTC()
	for _, meetingDate := range meetingDates {
		if meetingDate.ID == uuid.Nil {
			meetingDate.ID = uuid.New()
		}
		if meetingDate.CreatedAt.IsZero() {
			meetingDate.CreatedAt = now
		}
	}

	return storage.GetDb().Create(&meetingDates).Error
}

// GetMeetingDateByID returns nil without error when the date does not exist
func (r *MeetingDateRepository) GetMeetingDateByID(meetingDateID uuid.UUID) (*MeetingDate, error) {
	var meetingDate MeetingDate

	if err := storage.GetDb().Where("id = ?", meetingDateID).First(&meetingDate).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &meetingDate, nil
}

// ReplaceVote drops the user's votes on every date of the project and
// stores the new one. The upsert on (user_id, project_id) covers a vote
// committed concurrently between the delete and the insert.
func (r *MeetingDateRepository) ReplaceVote(userID, projectID, meetingDateID uuid.UUID) error {
	return storage.GetDb().Transaction(func(tx *gorm.DB) error {
		projectDates := tx.Model(&MeetingDate{}).Select("id").Where("project_id = ?", projectID)

		if err := tx.
			Where("user_id = ? AND meeting_date_id IN (?)", userID, projectDates).
			Delete(&MeetingDateVote{}).Error; err != nil {
			return err
		}

		vote := &MeetingDateVote{
			UserID:        userID,
			MeetingDateID: meetingDateID,
			ProjectID:     projectID,
			CreatedAt:     time.Now().UTC(),
		}

		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "project_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"meeting_date_id", "created_at"}),
		}).Create(vote).Error
	})
}

func (r *MeetingDateRepository) CountVotes(meetingDateID uuid.UUID) (int64, error) {
	var count int64

	err := storage.GetDb().
		Model(&MeetingDateVote{}).
		Where("meeting_date_id = ?", meetingDateID).
		Count(&count).Error

	return count, err
}

// GetProjectDates lists the dates in chronological order with their vote
// count and whether userID voted for them
func (r *MeetingDateRepository) GetProjectDates(projectID, userID uuid.UUID) ([]*ProjectDateDTO, error) {
	dates := make([]*ProjectDateDTO, 0)

	err := storage.GetDb().Raw(`
		SELECT
			md.id,
			md.project_id,
			md.date,
			md.created_at,
			COUNT(v.user_id) AS votes,
			COALESCE(BOOL_OR(v.user_id = ?), FALSE) AS voted
		FROM meeting_dates md
		LEFT JOIN meeting_date_votes v ON v.meeting_date_id = md.id
		WHERE md.project_id = ?
		GROUP BY md.id
		ORDER BY md.date ASC, md.id ASC`,
		userID,
		projectID,
	).Scan(&dates).Error

	return dates, err
}
