package api_keys

import (
	"encoding/json"
	"fmt"
	"net/http"

	projects_testing "meetplan/internal/features/projects/testing"

	"github.com/gin-gonic/gin"
)

func CreateApiKeyTestRouter(additionalControllers ...projects_testing.ControllerInterface) *gin.Engine {
	controllers := []projects_testing.ControllerInterface{GetApiKeyController()}
	controllers = append(controllers, additionalControllers...)
	return projects_testing.CreateTestRouter(controllers...)
}

func CreateTestApiKey(name string, adminToken string, router *gin.Engine) *ApiKey {
	request := CreateApiKeyRequestDTO{
		Name: name,
	}

	w := projects_testing.MakeAPIRequest(router, "POST", "/api/v1/api-keys", "Bearer "+adminToken, request)
	if w.Code != http.StatusOK {
		panic(fmt.Sprintf("Failed to create API key. Status: %d, Body: %s", w.Code, w.Body.String()))
	}

	var response ApiKey
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		panic(err)
	}

	return &response
}
