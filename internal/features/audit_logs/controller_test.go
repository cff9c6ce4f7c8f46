package audit_logs

import (
	"fmt"
	"net/http"
	"testing"

	users_middleware "meetplan/internal/features/users/middleware"
	users_services "meetplan/internal/features/users/services"
	users_testing "meetplan/internal/features/users/testing"
	test_utils "meetplan/internal/util/testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func Test_GetGlobalAuditLogs_WithDifferentUsers_EnforcesPermissionsCorrectly(t *testing.T) {
	adminUser := users_testing.CreateTestAdmin()
	memberUser := users_testing.CreateTestUser()
	router := createRouter()
	service := GetAuditLogService()
	projectID := uuid.New()
	testID := uuid.New().String()

	userLogMessage := fmt.Sprintf("Test log with user %s", testID)
	projectLogMessage := fmt.Sprintf("Test log with project %s", testID)

	createAuditLog(service, userLogMessage, &adminUser.UserID, nil)
	createAuditLog(service, projectLogMessage, nil, &projectID)

	var response []*AuditLogDTO
	test_utils.MakeGetRequestAndUnmarshal(t, router,
		"/api/v1/audit-logs/global", "Bearer "+adminUser.Token, http.StatusOK, &response)

	messages := extractMessages(response)
	assert.Contains(t, messages, userLogMessage)
	assert.Contains(t, messages, projectLogMessage)

	resp := test_utils.MakeGetRequest(t, router, "/api/v1/audit-logs/global",
		"Bearer "+memberUser.Token, http.StatusForbidden)
	assert.Contains(t, string(resp.Body), "only administrators can view global audit logs")
}

func Test_GetMyAuditLogs_WithSeveralUsers_ReturnsOnlyOwnLogs(t *testing.T) {
	user1 := users_testing.CreateTestUser()
	user2 := users_testing.CreateTestUser()
	router := createRouter()
	service := GetAuditLogService()
	testID := uuid.New().String()

	user1Message := fmt.Sprintf("User1 log %s", testID)
	user2Message := fmt.Sprintf("User2 log %s", testID)

	createAuditLog(service, user1Message, &user1.UserID, nil)
	createAuditLog(service, user2Message, &user2.UserID, nil)

	var response []*AuditLogDTO
	test_utils.MakeGetRequestAndUnmarshal(t, router,
		"/api/v1/audit-logs/me", "Bearer "+user1.Token, http.StatusOK, &response)

	messages := extractMessages(response)
	assert.Contains(t, messages, user1Message)
	assert.NotContains(t, messages, user2Message)

	for _, log := range response {
		assert.Equal(t, &user1.UserID, log.UserID)
		if assert.NotNil(t, log.UserEmail) {
			assert.Equal(t, user1.Email, *log.UserEmail)
		}
	}
}

func Test_GetMyAuditLogs_WithoutAuth_ReturnsUnauthorized(t *testing.T) {
	router := createRouter()

	test_utils.MakeGetRequest(t, router, "/api/v1/audit-logs/me", "", http.StatusUnauthorized)
}

func createRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	SetupDependencies()

	v1 := router.Group("/api/v1")
	protected := v1.Group("").Use(users_middleware.AuthMiddleware(users_services.GetUserService()))
	GetAuditLogController().RegisterRoutes(protected.(*gin.RouterGroup))

	return router
}
