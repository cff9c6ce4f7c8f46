package audit_logs

import (
	"fmt"
	"testing"

	users_testing "meetplan/internal/features/users/testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func Test_AuditLogs_ProjectSpecificLogs(t *testing.T) {
	service := GetAuditLogService()
	user1 := users_testing.CreateTestUser()
	user2 := users_testing.CreateTestUser()
	project1ID, project2ID := uuid.New(), uuid.New()

	createAuditLog(service, "Test project1 log first", &user1.UserID, &project1ID)
	createAuditLog(service, "Test project1 log second", &user2.UserID, &project1ID)
	createAuditLog(service, "Test project2 log first", &user1.UserID, &project2ID)
	createAuditLog(service, "Test no project log", &user1.UserID, nil)

	project1Logs, err := service.GetProjectAuditLogs(project1ID)
	assert.NoError(t, err)
	assert.Equal(t, 2, len(project1Logs))

	messages := extractMessages(project1Logs)
	assert.Contains(t, messages, "Test project1 log first")
	assert.Contains(t, messages, "Test project1 log second")
	for _, log := range project1Logs {
		assert.Equal(t, &project1ID, log.ProjectID)
		assert.NotNil(t, log.UserEmail, "User email should be present for logs with user_id")
	}

	project2Logs, err := service.GetProjectAuditLogs(project2ID)
	assert.NoError(t, err)
	assert.Equal(t, []string{"Test project2 log first"}, extractMessages(project2Logs))
}

func Test_AuditLogs_WhenMoreThanLimit_ReturnsLatestFirst(t *testing.T) {
	service := GetAuditLogService()
	projectID := uuid.New()

	for i := 0; i < latestAuditLogsLimit+5; i++ {
		createAuditLog(service, fmt.Sprintf("entry %d", i), nil, &projectID)
	}

	logs, err := service.GetProjectAuditLogs(projectID)
	assert.NoError(t, err)
	assert.Equal(t, latestAuditLogsLimit, len(logs))
	assert.Equal(t, fmt.Sprintf("entry %d", latestAuditLogsLimit+4), logs[0].Message)

	for i := 1; i < len(logs); i++ {
		assert.False(t, logs[i].CreatedAt.After(logs[i-1].CreatedAt))
	}
}

func createAuditLog(service *AuditLogService, message string, userID, projectID *uuid.UUID) {
	service.WriteAuditLog(message, userID, projectID)
}

func extractMessages(logs []*AuditLogDTO) []string {
	messages := make([]string, len(logs))
	for i, log := range logs {
		messages[i] = log.Message
	}
	return messages
}
