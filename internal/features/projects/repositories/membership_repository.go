package projects_repositories

import (
	"errors"
	"time"

	projects_dto "meetplan/internal/features/projects/dto"
	projects_models "meetplan/internal/features/projects/models"
	"meetplan/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const membershipRecencyOrder = "pu.created_at DESC, pu.id DESC"

type MembershipRepository struct{}

func (r *MembershipRepository) CreateMembership(membership *projects_models.ProjectUser) error {
	if membership.ID == uuid.Nil {
		membership.ID = uuid.New()
	}

	if membership.CreatedAt.IsZero() {
		membership.CreatedAt = time.Now().UTC()
	}

	return storage.GetDb().Create(membership).Error
}

// GetMembership returns nil without error when the user has no membership
func (r *MembershipRepository) GetMembership(userID, projectID uuid.UUID) (*projects_models.ProjectUser, error) {
	var membership projects_models.ProjectUser

	err := storage.GetDb().
		Where("user_id = ? AND project_id = ?", userID, projectID).
		First(&membership).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &membership, nil
}

// EnsureAttendingMembership upserts the (user, project) row inside the
// caller's transaction. An existing row only gets attending=true, a new one
// is created attending and accepted.
func (r *MembershipRepository) EnsureAttendingMembership(tx *gorm.DB, userID, projectID uuid.UUID) error {
	attending := true
	membership := &projects_models.ProjectUser{
		ID:        uuid.New(),
		UserID:    userID,
		ProjectID: projectID,
		Attending: &attending,
		Accepted:  true,
		CreatedAt: time.Now().UTC(),
	}

	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "project_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"attending"}),
	}).Create(membership).Error
}

// UpdateAttending returns false when there is no row to update
func (r *MembershipRepository) UpdateAttending(userID, projectID uuid.UUID, attending bool) (bool, error) {
	result := storage.GetDb().
		Model(&projects_models.ProjectUser{}).
		Where("user_id = ? AND project_id = ?", userID, projectID).
		Update("attending", attending)

	return result.RowsAffected > 0, result.Error
}

// AcceptMembership returns false when there is no pending row to accept
func (r *MembershipRepository) AcceptMembership(userID, projectID uuid.UUID) (bool, error) {
	result := storage.GetDb().
		Model(&projects_models.ProjectUser{}).
		Where("user_id = ? AND project_id = ? AND accepted = ?", userID, projectID, false).
		Update("accepted", true)

	return result.RowsAffected > 0, result.Error
}

func (r *MembershipRepository) GetProjectMembers(
	projectID uuid.UUID,
) ([]*projects_dto.ProjectMemberResponseDTO, error) {
	members := make([]*projects_dto.ProjectMemberResponseDTO, 0)

	err := storage.GetDb().
		Table("project_users pu").
		Select("pu.id, pu.user_id, u.name, u.email, pu.accepted, pu.attending, pu.created_at").
		Joins("JOIN users u ON pu.user_id = u.id").
		Where("pu.project_id = ?", projectID).
		Order("pu.created_at ASC, pu.id ASC").
		Scan(&members).Error

	return members, err
}

// GetAcceptedProjects excludes projects the user owns
func (r *MembershipRepository) GetAcceptedProjects(userID uuid.UUID) ([]*projects_models.Project, error) {
	return r.getMemberProjects(userID, "pu.accepted = ? AND p.user_id <> ?", true, userID)
}

// GetPendingProjects excludes projects the user owns
func (r *MembershipRepository) GetPendingProjects(userID uuid.UUID) ([]*projects_models.Project, error) {
	return r.getMemberProjects(userID, "pu.accepted = ? AND p.user_id <> ?", false, userID)
}

func (r *MembershipRepository) GetAttendingProjects(userID uuid.UUID) ([]*projects_models.Project, error) {
	return r.getMemberProjects(userID, "pu.attending = ?", true)
}

func (r *MembershipRepository) getMemberProjects(
	userID uuid.UUID,
	condition string,
	args ...any,
) ([]*projects_models.Project, error) {
	projects := make([]*projects_models.Project, 0)

	err := storage.GetDb().
		Table("projects p").
		Select("p.*").
		Joins("JOIN project_users pu ON pu.project_id = p.id").
		Where("pu.user_id = ?", userID).
		Where(condition, args...).
		Order(membershipRecencyOrder).
		Scan(&projects).Error

	return projects, err
}
