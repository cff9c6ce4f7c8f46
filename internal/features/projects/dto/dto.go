package projects_dto

import (
	"time"

	projects_models "meetplan/internal/features/projects/models"

	"github.com/google/uuid"
)

type CreateProjectRequestDTO struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
}

type UpdateProjectRequestDTO struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
}

type ProjectResponseDTO struct {
	ID            uuid.UUID  `json:"id"`
	Name          string     `json:"name"`
	UserID        uuid.UUID  `json:"user_id"`
	MeetingDateID *uuid.UUID `json:"meeting_date_id"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// UserProjectsResponseDTO groups the projects of a user by access tier
type UserProjectsResponseDTO struct {
	Admin    []ProjectResponseDTO `json:"admin"`
	Accepted []ProjectResponseDTO `json:"accepted"`
	Pending  []ProjectResponseDTO `json:"pending"`
}

type InviteUserRequestDTO struct {
	Email string `json:"email" binding:"required,email"`
}

type ProjectMemberResponseDTO struct {
	ID        uuid.UUID `json:"id"         gorm:"column:id"`
	UserID    uuid.UUID `json:"user_id"    gorm:"column:user_id"`
	Name      string    `json:"name"       gorm:"column:name"`
	Email     string    `json:"email"      gorm:"column:email"`
	Accepted  bool      `json:"accepted"   gorm:"column:accepted"`
	Attending *bool     `json:"attending"  gorm:"column:attending"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
}

func ToProjectResponse(project *projects_models.Project) ProjectResponseDTO {
	return ProjectResponseDTO{
		ID:            project.ID,
		Name:          project.Name,
		UserID:        project.UserID,
		MeetingDateID: project.MeetingDateID,
		CreatedAt:     project.CreatedAt,
		UpdatedAt:     project.UpdatedAt,
	}
}

func ToProjectResponses(projects []*projects_models.Project) []ProjectResponseDTO {
	responses := make([]ProjectResponseDTO, 0, len(projects))
	for _, project := range projects {
		responses = append(responses, ToProjectResponse(project))
	}

	return responses
}
