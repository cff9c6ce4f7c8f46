package projects_repositories

import (
	"time"

	projects_models "meetplan/internal/features/projects/models"
	"meetplan/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProjectRepository struct{}

func (r *ProjectRepository) CreateProject(project *projects_models.Project) error {
	if project.ID == uuid.Nil {
		project.ID = uuid.New()
	}

	now := time.Now().UTC()
	if project.CreatedAt.IsZero() {
		project.CreatedAt = now
	}
	project.UpdatedAt = now

	return storage.GetDb().Create(project).Error
}

func (r *ProjectRepository) GetProjectByID(projectID uuid.UUID) (*projects_models.Project, error) {
	var project projects_models.Project

	if err := storage.GetDb().Where("id = ?", projectID).First(&project).Error; err != nil {
		return nil, err
	}

	return &project, nil
}

func (r *ProjectRepository) UpdateProjectName(projectID uuid.UUID, name string) error {
	return storage.GetDb().
		Model(&projects_models.Project{}).
		Where("id = ?", projectID).
		Updates(map[string]any{
			"name":       name,
			"updated_at": time.Now().UTC(),
		}).Error
}

// SetMeetingDate runs inside the caller's transaction
func (r *ProjectRepository) SetMeetingDate(tx *gorm.DB, projectID, meetingDateID uuid.UUID) error {
	return tx.
		Model(&projects_models.Project{}).
		Where("id = ?", projectID).
		Updates(map[string]any{
			"meeting_date_id": meetingDateID,
			"updated_at":      time.Now().UTC(),
		}).Error
}

func (r *ProjectRepository) CountOwnedProject(projectID, userID uuid.UUID) (int64, error) {
	var count int64

	err := storage.GetDb().
		Model(&projects_models.Project{}).
		Where("id = ? AND user_id = ?", projectID, userID).
		Count(&count).Error

	return count, err
}

// GetOwnedProjects returns the admin projects of a user, newest first
func (r *ProjectRepository) GetOwnedProjects(userID uuid.UUID) ([]*projects_models.Project, error) {
	projects := make([]*projects_models.Project, 0)

	err := storage.GetDb().
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&projects).Error

	return projects, err
}
