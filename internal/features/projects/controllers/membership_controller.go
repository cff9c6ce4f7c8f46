package projects_controllers

import (
	"net/http"

	projects_dto "meetplan/internal/features/projects/dto"
	projects_services "meetplan/internal/features/projects/services"
	users_middleware "meetplan/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MembershipController struct {
	membershipService *projects_services.MembershipService
}

func (c *MembershipController) RegisterRoutes(router *gin.RouterGroup) {
	projectRoutes := router.Group("/project/:id")

	projectRoutes.GET("/members", c.GetMembers)
	projectRoutes.POST("/invite", c.InviteUser)
	projectRoutes.PATCH("/accept", c.AcceptInvitation)
	projectRoutes.PATCH("/attend", c.WillAttend)
	projectRoutes.PATCH("/notAttend", c.WillNotAttend)
}

// GetMembers
// @Summary Get project members
// @Description Members of the project with invitation and attendance state
// @Tags project-membership
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Success 200 {array} projects_dto.ProjectMemberResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /project/{id}/members [get]
func (c *MembershipController) GetMembers(ctx *gin.Context) {
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

	members, err := c.membershipService.GetMembers(projectID, user)
	if err != nil {
		writeServiceError(ctx, err, "Failed to get project members")
		return
	}

	ctx.JSON(http.StatusOK, members)
}

// InviteUser
// @Summary Invite user to project
// @Description Create a pending invitation for an existing user, owner only
// @Tags project-membership
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Param request body projects_dto.InviteUserRequestDTO true "Invitee"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /project/{id}/invite [post]
func (c *MembershipController) InviteUser(ctx *gin.Context) {
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

	var request projects_dto.InviteUserRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := c.membershipService.InviteUser(projectID, &request, user); err != nil {
		writeServiceError(ctx, err, "Failed to invite user")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "User invited successfully"})
}

// AcceptInvitation
// @Summary Accept project invitation
// @Tags project-membership
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /project/{id}/accept [patch]
func (c *MembershipController) AcceptInvitation(ctx *gin.Context) {
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

	if err := c.membershipService.AcceptInvitation(projectID, user); err != nil {
		writeServiceError(ctx, err, "Failed to accept invitation")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Invitation accepted"})
}

// WillAttend
// @Summary Attend project meeting
// @Description Mark the authenticated member as attending
// @Tags project-membership
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /project/{id}/attend [patch]
func (c *MembershipController) WillAttend(ctx *gin.Context) {
	c.setAttending(ctx, true)
}

// WillNotAttend
// @Summary Decline project meeting
// @Description Mark the authenticated member as not attending
// @Tags project-membership
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /project/{id}/notAttend [patch]
func (c *MembershipController) WillNotAttend(ctx *gin.Context) {
	c.setAttending(ctx, false)
}

func (c *MembershipController) setAttending(ctx *gin.Context, attending bool) {
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

	if attending {
		err = c.membershipService.WillAttend(projectID, user)
	} else {
		err = c.membershipService.WillNotAttend(projectID, user)
	}
	if err != nil {
		writeServiceError(ctx, err, "Failed to update attendance")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Attendance updated"})
}
