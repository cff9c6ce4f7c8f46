package projects_controllers

import (
	"errors"
	"net/http"

	projects_dto "meetplan/internal/features/projects/dto"
	projects_services "meetplan/internal/features/projects/services"
	users_middleware "meetplan/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProjectController struct {
	projectService *projects_services.ProjectService
}

func (c *ProjectController) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/project", c.CreateProject)
	router.GET("/projects", c.GetProjects)
	router.GET("/projects/attending", c.GetAttendingProjects)

	projectRoutes := router.Group("/project/:id")

	projectRoutes.GET("", c.GetProject)
	projectRoutes.PUT("", c.UpdateProject)
	projectRoutes.GET("/activity", c.GetProjectActivity)
}

// CreateProject
// @Summary Create a new project
// @Description Create a project owned by the authenticated user
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body projects_dto.CreateProjectRequestDTO true "Project creation data"
// @Success 200 {object} projects_dto.ProjectResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /project [post]
func (c *ProjectController) CreateProject(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var request projects_dto.CreateProjectRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	response, err := c.projectService.CreateProject(&request, user)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project"})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetProjects
// @Summary List user's projects
// @Description Projects grouped by tier: owned (admin), accepted invitations and pending invitations
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Success 200 {object} projects_dto.UserProjectsResponseDTO
// @Failure 401 {object} map[string]string
// @Router /projects [get]
func (c *ProjectController) GetProjects(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	response, err := c.projectService.GetUserProjects(user)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve projects"})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetAttendingProjects
// @Summary List attending projects
// @Description Projects the authenticated user will attend
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Success 200 {array} projects_dto.ProjectResponseDTO
// @Failure 401 {object} map[string]string
// @Router /projects/attending [get]
func (c *ProjectController) GetAttendingProjects(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	response, err := c.projectService.GetAttendingProjects(user)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve projects"})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetProject
// @Summary Get project details
// @Description Get a project the user owns or is invited to
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Success 200 {object} projects_dto.ProjectResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /project/{id} [get]
func (c *ProjectController) GetProject(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	projectID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}

	project, err := c.projectService.GetProject(projectID, user)
	if err != nil {
		writeServiceError(ctx, err, "Failed to get project")
		return
	}

	ctx.JSON(http.StatusOK, projects_dto.ToProjectResponse(project))
}

// UpdateProject
// @Summary Rename project
// @Description Rename a project, only the owner can do it
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Param request body projects_dto.UpdateProjectRequestDTO true "Project data"
// @Success 200 {object} projects_dto.ProjectResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /project/{id} [put]
func (c *ProjectController) UpdateProject(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	projectID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}

	var request projects_dto.UpdateProjectRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	project, err := c.projectService.UpdateProject(projectID, &request, user)
	if err != nil {
		writeServiceError(ctx, err, "Failed to update project")
		return
	}

	ctx.JSON(http.StatusOK, projects_dto.ToProjectResponse(project))
}

// GetProjectActivity
// @Summary Get project activity
// @Description Latest 100 audit log entries of the project
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Success 200 {array} audit_logs.AuditLogDTO
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /project/{id}/activity [get]
func (c *ProjectController) GetProjectActivity(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	projectID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}

	activity, err := c.projectService.GetProjectActivity(projectID, user)
	if err != nil {
		writeServiceError(ctx, err, "Failed to retrieve project activity")
		return
	}

	ctx.JSON(http.StatusOK, activity)
}

func writeServiceError(ctx *gin.Context, err error, fallbackMessage string) {
	switch {
	case errors.Is(err, projects_services.ErrProjectNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, projects_services.ErrNoProjectAccess),
		errors.Is(err, projects_services.ErrMembershipNotFound),
		errors.Is(err, projects_services.ErrInvitedUserNotFound),
		errors.Is(err, projects_services.ErrCannotInviteYourself),
		errors.Is(err, projects_services.ErrAlreadyMember),
		errors.Is(err, projects_services.ErrNoPendingInvitation):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": fallbackMessage})
	}
}
