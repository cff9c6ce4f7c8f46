package meeting_dates

import (
	"errors"
	"net/http"

	projects_services "meetplan/internal/features/projects/services"
	users_middleware "meetplan/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MeetingDateController struct {
	meetingDateService *MeetingDateService
}

func (c *MeetingDateController) RegisterRoutes(router *gin.RouterGroup) {
	projectRoutes := router.Group("/project/:id")

	projectRoutes.GET("/dates", c.GetProjectDates)
	projectRoutes.POST("/dates", c.AddDatesToProject)
	projectRoutes.POST("/date", c.AddDateToProject)
	projectRoutes.PATCH("/date/:dateId", c.PickDate)

	router.POST("/vote/:dateId", c.Vote)
}

// AddDatesToProject
// @Summary Add candidate dates
// @Description Add several candidate dates at once. Nothing is stored if any element is invalid
// @Tags meeting-dates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Param request body []meeting_dates.DateRequestDTO true "Dates"
// @Success 200 {array} meeting_dates.MeetingDate
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /project/{id}/dates [post]
func (c *MeetingDateController) AddDatesToProject(ctx *gin.Context) {
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

	var requests []DateRequestDTO
	if err := ctx.ShouldBindJSON(&requests); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	meetingDates, err := c.meetingDateService.AddDatesToProject(projectID, requests, user)
	if err != nil {
		writeServiceError(ctx, err, "Failed to add meeting dates")
		return
	}

	ctx.JSON(http.StatusOK, meetingDates)
}

// AddDateToProject
// @Summary Add a candidate date
// @Tags meeting-dates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Param request body meeting_dates.DateRequestDTO true "Date"
// @Success 200 {object} meeting_dates.MeetingDate
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /project/{id}/date [post]
func (c *MeetingDateController) AddDateToProject(ctx *gin.Context) {
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

	var request DateRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	meetingDate, err := c.meetingDateService.AddDateToProject(projectID, &request, user)
	if err != nil {
		writeServiceError(ctx, err, "Failed to add meeting date")
		return
	}

	ctx.JSON(http.StatusOK, meetingDate)
}

// PickDate
// @Summary Pick the meeting date
// @Description Finalize the project on one of its dates, the owner is marked as attending
// @Tags meeting-dates
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Param dateId path string true "Meeting date ID"
// @Success 200
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /project/{id}/date/{dateId} [patch]
func (c *MeetingDateController) PickDate(ctx *gin.Context) {
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

	meetingDateID, err := uuid.Parse(ctx.Param("dateId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid meeting date ID"})
		return
	}

	if err := c.meetingDateService.PickDate(projectID, meetingDateID, user); err != nil {
		writeServiceError(ctx, err, "Failed to pick meeting date")
		return
	}

	ctx.Status(http.StatusOK)
}

// Vote
// @Summary Vote for a date
// @Description Replaces the user's previous vote in the same project
// @Tags meeting-dates
// @Produce json
// @Security BearerAuth
// @Param dateId path string true "Meeting date ID"
// @Success 200 {object} meeting_dates.VoteResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /vote/{dateId} [post]
func (c *MeetingDateController) Vote(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	meetingDateID, err := uuid.Parse(ctx.Param("dateId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid meeting date ID"})
		return
	}

	response, err := c.meetingDateService.Vote(meetingDateID, user)
	if err != nil {
		writeServiceError(ctx, err, "Failed to vote")
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetProjectDates
// @Summary List candidate dates
// @Description Dates in chronological order with vote counts
// @Tags meeting-dates
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Success 200 {array} meeting_dates.ProjectDateDTO
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /project/{id}/dates [get]
func (c *MeetingDateController) GetProjectDates(ctx *gin.Context) {
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

	dates, err := c.meetingDateService.GetProjectDates(projectID, user)
	if err != nil {
		writeServiceError(ctx, err, "Failed to get meeting dates")
		return
	}

	ctx.JSON(http.StatusOK, dates)
}

func writeServiceError(ctx *gin.Context, err error, fallbackMessage string) {
	switch {
	case errors.Is(err, projects_services.ErrProjectNotFound),
		errors.Is(err, ErrMeetingDateNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, ErrInvalidDate),
		errors.Is(err, ErrDateProjectMissing):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": fallbackMessage})
	}
}
