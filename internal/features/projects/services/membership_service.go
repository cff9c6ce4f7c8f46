package projects_services

import (
	"fmt"

	"meetplan/internal/features/audit_logs"
	projects_dto "meetplan/internal/features/projects/dto"
	projects_models "meetplan/internal/features/projects/models"
	projects_repositories "meetplan/internal/features/projects/repositories"
	users_models "meetplan/internal/features/users/models"
	users_services "meetplan/internal/features/users/services"

	"github.com/google/uuid"
)

type MembershipService struct {
	membershipRepository *projects_repositories.MembershipRepository
	userService          *users_services.UserService
	auditLogService      *audit_logs.AuditLogService
	projectService       *ProjectService
}

func (s *MembershipService) GetMembers(
	projectID uuid.UUID,
	user *users_models.User,
) ([]*projects_dto.ProjectMemberResponseDTO, error) {
	canAccess, err := s.projectService.CanUserAccessProject(projectID, user)
	if err != nil {
		return nil, err
	}
	if !canAccess {
		return nil, ErrProjectNotFound
	}

	members, err := s.membershipRepository.GetProjectMembers(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get project members: %w", err)
	}

	return members, nil
}

// InviteUser creates a pending membership for an existing user. Only the
// owner may invite, everyone else sees ErrProjectNotFound.
func (s *MembershipService) InviteUser(
	projectID uuid.UUID,
	request *projects_dto.InviteUserRequestDTO,
	owner *users_models.User,
) error {
	isOwner, err := s.projectService.IsProjectOwner(projectID, owner)
	if err != nil {
		return err
	}
	if !isOwner {
		return ErrProjectNotFound
	}

	invitedUser, err := s.userService.GetUserByEmail(request.Email)
	if err != nil {
		return fmt.Errorf("failed to get invited user: %w", err)
	}
	if invitedUser == nil {
		return ErrInvitedUserNotFound
	}

	if invitedUser.ID == owner.ID {
		return ErrCannotInviteYourself
	}

	existingMembership, err := s.membershipRepository.GetMembership(invitedUser.ID, projectID)
	if err != nil {
		return fmt.Errorf("failed to check membership: %w", err)
	}
	if existingMembership != nil {
		return ErrAlreadyMember
	}

	membership := &projects_models.ProjectUser{
		UserID:    invitedUser.ID,
		ProjectID: projectID,
		Accepted:  false,
	}
	if err := s.membershipRepository.CreateMembership(membership); err != nil {
		return fmt.Errorf("failed to create membership: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("User invited: %s", invitedUser.Email),
		&owner.ID,
		&projectID,
	)

	return nil
}

func (s *MembershipService) AcceptInvitation(projectID uuid.UUID, user *users_models.User) error {
	isAccepted, err := s.membershipRepository.AcceptMembership(user.ID, projectID)
	if err != nil {
		return fmt.Errorf("failed to accept invitation: %w", err)
	}
	if !isAccepted {
		return ErrNoPendingInvitation
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Invitation accepted by: %s", user.Email),
		&user.ID,
		&projectID,
	)

	return nil
}

func (s *MembershipService) WillAttend(projectID uuid.UUID, user *users_models.User) error {
	return s.setAttending(projectID, user, true)
}

func (s *MembershipService) WillNotAttend(projectID uuid.UUID, user *users_models.User) error {
	return s.setAttending(projectID, user, false)
}

// setAttending never creates a membership, both failures are bad requests
func (s *MembershipService) setAttending(projectID uuid.UUID, user *users_models.User, attending bool) error {
	canAccess, err := s.projectService.CanUserAccessProject(projectID, user)
	if err != nil {
		return err
	}
	if !canAccess {
		return ErrNoProjectAccess
	}

	isUpdated, err := s.membershipRepository.UpdateAttending(user.ID, projectID, attending)
	if err != nil {
		return fmt.Errorf("failed to update attendance: %w", err)
	}
	if !isUpdated {
		return ErrMembershipNotFound
	}

	message := fmt.Sprintf("%s will attend", user.Email)
	if !attending {
		message = fmt.Sprintf("%s will not attend", user.Email)
	}
	s.auditLogService.WriteAuditLog(message, &user.ID, &projectID)

	return nil
}
