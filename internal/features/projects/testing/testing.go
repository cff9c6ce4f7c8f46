package projects_testing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"

	"meetplan/internal/features/audit_logs"
	projects_dto "meetplan/internal/features/projects/dto"
	users_middleware "meetplan/internal/features/users/middleware"
	users_services "meetplan/internal/features/users/services"
	users_testing "meetplan/internal/features/users/testing"

	"github.com/gin-gonic/gin"
)

func CreateTestRouter(controllers ...ControllerInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	v1 := router.Group("/api/v1")
	protected := v1.Group("").Use(users_middleware.AuthMiddleware(users_services.GetUserService()))

	for _, controller := range controllers {
		if routerGroup, ok := protected.(*gin.RouterGroup); ok {
			controller.RegisterRoutes(routerGroup)
		}
	}

	audit_logs.SetupDependencies()

	return router
}

func CreateTestProject(name string, owner *users_testing.TestUser, router *gin.Engine) *projects_dto.ProjectResponseDTO {
	request := projects_dto.CreateProjectRequestDTO{Name: name}
	w := MakeAPIRequest(router, "POST", "/api/v1/project", "Bearer "+owner.Token, request)

	if w.Code != http.StatusOK {
		panic(fmt.Sprintf("Failed to create project. Status: %d, Body: %s", w.Code, w.Body.String()))
	}

	var response projects_dto.ProjectResponseDTO
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		panic(err)
	}

	return &response
}

func InviteUserToProject(
	project *projects_dto.ProjectResponseDTO,
	invitee *users_testing.TestUser,
	ownerToken string,
	router *gin.Engine,
) {
	request := projects_dto.InviteUserRequestDTO{Email: invitee.Email}
	w := MakeAPIRequest(
		router,
		"POST",
		"/api/v1/project/"+project.ID.String()+"/invite",
		"Bearer "+ownerToken,
		request,
	)

	if w.Code != http.StatusOK {
		panic("Failed to invite user to project via API: " + w.Body.String())
	}
}

func AcceptInvitation(project *projects_dto.ProjectResponseDTO, member *users_testing.TestUser, router *gin.Engine) {
	w := MakeAPIRequest(
		router,
		"PATCH",
		"/api/v1/project/"+project.ID.String()+"/accept",
		"Bearer "+member.Token,
		nil,
	)

	if w.Code != http.StatusOK {
		panic("Failed to accept invitation via API: " + w.Body.String())
	}
}

// AddAcceptedMember invites the member and accepts on their behalf
func AddAcceptedMember(
	project *projects_dto.ProjectResponseDTO,
	member *users_testing.TestUser,
	ownerToken string,
	router *gin.Engine,
) {
	InviteUserToProject(project, member, ownerToken, router)
	AcceptInvitation(project, member, router)
}

func GetProjectMembers(
	project *projects_dto.ProjectResponseDTO,
	requesterToken string,
	router *gin.Engine,
) []projects_dto.ProjectMemberResponseDTO {
	w := MakeAPIRequest(
		router,
		"GET",
		"/api/v1/project/"+project.ID.String()+"/members",
		"Bearer "+requesterToken,
		nil,
	)

	if w.Code != http.StatusOK {
		panic("Failed to get project members via API: " + w.Body.String())
	}

	var response []projects_dto.ProjectMemberResponseDTO
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		panic(err)
	}

	return response
}

func MakeAPIRequest(router *gin.Engine, method, url, authToken string, body any) *httptest.ResponseRecorder {
	var requestBody *bytes.Buffer
	if body != nil {
		bodyJSON, err := json.Marshal(body)
		if err != nil {
			panic(err)
		}
		requestBody = bytes.NewBuffer(bodyJSON)
	} else {
		requestBody = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, url, requestBody)
	if err != nil {
		panic(err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authToken != "" {
		req.Header.Set("Authorization", authToken)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
