package projects_services

import (
	"meetplan/internal/cache"
	"meetplan/internal/features/audit_logs"
	projects_models "meetplan/internal/features/projects/models"
	projects_repositories "meetplan/internal/features/projects/repositories"
	users_services "meetplan/internal/features/users/services"
	cache_utils "meetplan/internal/util/cache"

	"golang.org/x/sync/singleflight"
)

var projectRepository = &projects_repositories.ProjectRepository{}
var membershipRepository = &projects_repositories.MembershipRepository{}

var projectService = &ProjectService{
	projectRepository,
	membershipRepository,
	audit_logs.GetAuditLogService(),
	cache_utils.NewCacheUtil[projects_models.Project](cache.GetCache(), "mp_project:"),
	singleflight.Group{},
}

var membershipService = &MembershipService{
	membershipRepository,
	users_services.GetUserService(),
	audit_logs.GetAuditLogService(),
	projectService,
}

func GetProjectService() *ProjectService {
	return projectService
}

func GetMembershipService() *MembershipService {
	return membershipService
}
