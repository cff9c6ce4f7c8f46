package projects_services

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"meetplan/internal/features/audit_logs"
	projects_dto "meetplan/internal/features/projects/dto"
	projects_models "meetplan/internal/features/projects/models"
	projects_repositories "meetplan/internal/features/projects/repositories"
	users_enums "meetplan/internal/features/users/enums"
	users_models "meetplan/internal/features/users/models"
	"meetplan/internal/storage"
	cache_utils "meetplan/internal/util/cache"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

type ProjectService struct {
	projectRepository    *projects_repositories.ProjectRepository
	membershipRepository *projects_repositories.MembershipRepository
	auditLogService      *audit_logs.AuditLogService

	projectCacheUtil *cache_utils.CacheUtil[projects_models.Project]
	singleflight     singleflight.Group
}

func (s *ProjectService) CreateProject(
	request *projects_dto.CreateProjectRequestDTO,
	creator *users_models.User,
) (*projects_dto.ProjectResponseDTO, error) {
	project := &projects_models.Project{
		ID:     uuid.New(),
		Name:   strings.TrimSpace(request.Name),
		UserID: creator.ID,
	}

	if err := s.projectRepository.CreateProject(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	s.projectCacheUtil.Set(project.ID.String(), project)

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Project created: %s", project.Name),
		&creator.ID,
		&project.ID,
	)

	response := projects_dto.ToProjectResponse(project)
	return &response, nil
}

func (s *ProjectService) GetProject(projectID uuid.UUID, user *users_models.User) (*projects_models.Project, error) {
	canAccess, err := s.CanUserAccessProject(projectID, user)
	if err != nil {
		return nil, err
	}
	if !canAccess {
		return nil, ErrProjectNotFound
	}

	return s.GetProjectWithCache(projectID)
}

func (s *ProjectService) UpdateProject(
	projectID uuid.UUID,
	request *projects_dto.UpdateProjectRequestDTO,
	user *users_models.User,
) (*projects_models.Project, error) {
	isOwner, err := s.IsProjectOwner(projectID, user)
	if err != nil {
		return nil, err
	}
	if !isOwner {
		return nil, ErrProjectNotFound
	}

	name := strings.TrimSpace(request.Name)
	if err := s.projectRepository.UpdateProjectName(projectID, name); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	s.projectCacheUtil.Invalidate(projectID.String())

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Project renamed to: %s", name),
		&user.ID,
		&projectID,
	)

	return s.projectRepository.GetProjectByID(projectID)
}

func (s *ProjectService) GetUserProjects(user *users_models.User) (*projects_dto.UserProjectsResponseDTO, error) {
	ownedProjects, err := s.projectRepository.GetOwnedProjects(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get admin projects: %w", err)
	}

	acceptedProjects, err := s.membershipRepository.GetAcceptedProjects(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get accepted projects: %w", err)
	}

	pendingProjects, err := s.membershipRepository.GetPendingProjects(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get pending projects: %w", err)
	}

	return &projects_dto.UserProjectsResponseDTO{
		Admin:    projects_dto.ToProjectResponses(ownedProjects),
		Accepted: projects_dto.ToProjectResponses(acceptedProjects),
		Pending:  projects_dto.ToProjectResponses(pendingProjects),
	}, nil
}

func (s *ProjectService) GetAttendingProjects(user *users_models.User) ([]projects_dto.ProjectResponseDTO, error) {
	projects, err := s.membershipRepository.GetAttendingProjects(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get attending projects: %w", err)
	}

	return projects_dto.ToProjectResponses(projects), nil
}

// GetUserAccessTier resolves the best tier of the user for the project.
// The queries run in tier order and stop at the first match.
func (s *ProjectService) GetUserAccessTier(
	projectID uuid.UUID,
	user *users_models.User,
) (users_enums.ProjectAccessTier, error) {
	ownedCount, err := s.projectRepository.CountOwnedProject(projectID, user.ID)
	if err != nil {
		return users_enums.ProjectAccessTierNone, fmt.Errorf("failed to count owned projects: %w", err)
	}
	if ownedCount != 0 {
		return users_enums.ProjectAccessTierAdmin, nil
	}

	acceptedProjects, err := s.membershipRepository.GetAcceptedProjects(user.ID)
	if err != nil {
		return users_enums.ProjectAccessTierNone, fmt.Errorf("failed to get accepted projects: %w", err)
	}
	if containsProject(acceptedProjects, projectID) {
		return users_enums.ProjectAccessTierAccepted, nil
	}

	pendingProjects, err := s.membershipRepository.GetPendingProjects(user.ID)
	if err != nil {
		return users_enums.ProjectAccessTierNone, fmt.Errorf("failed to get pending projects: %w", err)
	}
	if containsProject(pendingProjects, projectID) {
		return users_enums.ProjectAccessTierPending, nil
	}

	return users_enums.ProjectAccessTierNone, nil
}

func (s *ProjectService) CanUserAccessProject(projectID uuid.UUID, user *users_models.User) (bool, error) {
	tier, err := s.GetUserAccessTier(projectID, user)
	if err != nil {
		return false, err
	}

	return tier.CanAccess(), nil
}

func (s *ProjectService) IsProjectOwner(projectID uuid.UUID, user *users_models.User) (bool, error) {
	ownedCount, err := s.projectRepository.CountOwnedProject(projectID, user.ID)
	if err != nil {
		return false, fmt.Errorf("failed to count owned projects: %w", err)
	}

	return ownedCount != 0, nil
}

// FinalizeMeetingDate stores the chosen date and enrolls the owner as
// attending in one transaction. Ownership and the date's project are
// checked by the caller.
func (s *ProjectService) FinalizeMeetingDate(projectID, meetingDateID uuid.UUID, owner *users_models.User) error {
	err := storage.GetDb().Transaction(func(tx *gorm.DB) error {
		if err := s.projectRepository.SetMeetingDate(tx, projectID, meetingDateID); err != nil {
			return fmt.Errorf("failed to set meeting date: %w", err)
		}

		if err := s.membershipRepository.EnsureAttendingMembership(tx, owner.ID, projectID); err != nil {
			return fmt.Errorf("failed to ensure owner membership: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.projectCacheUtil.Invalidate(projectID.String())

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Meeting date picked: %s", meetingDateID),
		&owner.ID,
		&projectID,
	)

	return nil
}

func (s *ProjectService) GetProjectActivity(
	projectID uuid.UUID,
	user *users_models.User,
) ([]*audit_logs.AuditLogDTO, error) {
	canAccess, err := s.CanUserAccessProject(projectID, user)
	if err != nil {
		return nil, err
	}
	if !canAccess {
		return nil, ErrProjectNotFound
	}

	return s.auditLogService.GetProjectAuditLogs(projectID)
}

// GetProjectWithCache reads through valkey. Missing projects are cached
// too so repeated lookups of unknown ids stay off the database.
func (s *ProjectService) GetProjectWithCache(projectID uuid.UUID) (*projects_models.Project, error) {
	projectIDStr := projectID.String()

	if cachedProject := s.projectCacheUtil.Get(projectIDStr); cachedProject != nil {
		if cachedProject.IsNotExists {
			return nil, ErrProjectNotFound
		}

		return cachedProject, nil
	}

	result, err, _ := s.singleflight.Do(projectIDStr, func() (any, error) {
		return s.projectRepository.GetProjectByID(projectID)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.projectCacheUtil.Set(projectIDStr, &projects_models.Project{
				ID:          projectID,
				IsNotExists: true,
			})
			return nil, ErrProjectNotFound
		}

		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	project, ok := result.(*projects_models.Project)
	if !ok {
		return nil, fmt.Errorf("failed to cast result to Project")
	}

	s.projectCacheUtil.Set(projectIDStr, project)

	return project, nil
}

func containsProject(projects []*projects_models.Project, projectID uuid.UUID) bool {
	return slices.ContainsFunc(projects, func(project *projects_models.Project) bool {
		return project.ID == projectID
	})
}
