package meeting_dates

import (
	"encoding/json"
	"fmt"
	"net/http"

	projects_dto "meetplan/internal/features/projects/dto"
	projects_testing "meetplan/internal/features/projects/testing"
	users_testing "meetplan/internal/features/users/testing"

	"github.com/gin-gonic/gin"
)

// CreateTestMeetingDates adds the given dates to the project through the API
func CreateTestMeetingDates(
	project *projects_dto.ProjectResponseDTO,
	owner *users_testing.TestUser,
	router *gin.Engine,
	dates ...any,
) []*MeetingDate {
	requests := make([]DateRequestDTO, 0, len(dates))
	for _, date := range dates {
		requests = append(requests, DateRequestDTO{Date: date})
	}

	w := projects_testing.MakeAPIRequest(
		router,
		"POST",
		"/api/v1/project/"+project.ID.String()+"/dates",
		"Bearer "+owner.Token,
		requests,
	)
	if w.Code != http.StatusOK {
		panic(fmt.Sprintf("Failed to add meeting dates. Status: %d, Body: %s", w.Code, w.Body.String()))
	}

	var response []*MeetingDate
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		panic(err)
	}

	return response
}

func GetTestProjectDates(
	project *projects_dto.ProjectResponseDTO,
	user *users_testing.TestUser,
	router *gin.Engine,
) []*ProjectDateDTO {
	w := projects_testing.MakeAPIRequest(
		router,
		"GET",
		"/api/v1/project/"+project.ID.String()+"/dates",
		"Bearer "+user.Token,
		nil,
	)
	if w.Code != http.StatusOK {
		panic(fmt.Sprintf("Failed to get meeting dates. Status: %d, Body: %s", w.Code, w.Body.String()))
	}

	var response []*ProjectDateDTO
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		panic(err)
	}

	return response
}
