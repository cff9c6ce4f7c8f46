package projects_controllers

import (
	"net/http"
	"testing"

	projects_dto "meetplan/internal/features/projects/dto"
	projects_testing "meetplan/internal/features/projects/testing"
	users_testing "meetplan/internal/features/users/testing"
	test_utils "meetplan/internal/util/testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func Test_GetProjectMembers_WhenUserIsProjectMember_ReturnsMembers(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController(), GetMembershipController())
	owner := users_testing.CreateTestUser()
	acceptedMember := users_testing.CreateTestUser()
	pendingMember := users_testing.CreateTestUser()
	project := projects_testing.CreateTestProject("Test Project", owner, router)

	projects_testing.AddAcceptedMember(project, acceptedMember, owner.Token, router)
	projects_testing.InviteUserToProject(project, pendingMember, owner.Token, router)

	var members []projects_dto.ProjectMemberResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/project/"+project.ID.String()+"/members",
		"Bearer "+pendingMember.Token,
		http.StatusOK,
		&members,
	)

	assert.Len(t, members, 2)
	assert.Equal(t, acceptedMember.UserID, members[0].UserID)
	assert.Equal(t, acceptedMember.Email, members[0].Email)
	assert.True(t, members[0].Accepted)
	assert.Nil(t, members[0].Attending)
	assert.Equal(t, pendingMember.UserID, members[1].UserID)
	assert.False(t, members[1].Accepted)
}

func Test_GetProjectMembers_WhenUserIsNotProjectMember_ReturnsNotFound(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController(), GetMembershipController())
	owner := users_testing.CreateTestUser()
	nonMember := users_testing.CreateTestUser()
	project := projects_testing.CreateTestProject("Test Project", owner, router)

	resp := test_utils.MakeGetRequest(
		t,
		router,
		"/api/v1/project/"+project.ID.String()+"/members",
		"Bearer "+nonMember.Token,
		http.StatusNotFound,
	)
	assert.Contains(t, string(resp.Body), "project not found")
}

func Test_GetProjectMembers_WithInvalidProjectID_ReturnsBadRequest(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetMembershipController())
	owner := users_testing.CreateTestUser()

	test_utils.MakeGetRequest(t, router, "/api/v1/project/invalid/members", "Bearer "+owner.Token, http.StatusBadRequest)
}

func Test_InviteUser_WhenUserIsProjectOwner_PendingMembershipCreated(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController(), GetMembershipController())
	owner := users_testing.CreateTestUser()
	invitee := users_testing.CreateTestUser()
	project := projects_testing.CreateTestProject("Test Project", owner, router)

	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/project/"+project.ID.String()+"/invite",
		"Bearer "+owner.Token,
		projects_dto.InviteUserRequestDTO{Email: invitee.Email},
		http.StatusOK,
	)

	members := projects_testing.GetProjectMembers(project, owner.Token, router)
	assert.Len(t, members, 1)
	assert.Equal(t, invitee.UserID, members[0].UserID)
	assert.False(t, members[0].Accepted)
}

func Test_InviteUser_WhenUserIsNotOwner_ReturnsNotFound(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController(), GetMembershipController())
	owner := users_testing.CreateTestUser()
	member := users_testing.CreateTestUser()
	invitee := users_testing.CreateTestUser()
	project := projects_testing.CreateTestProject("Test Project", owner, router)
	projects_testing.AddAcceptedMember(project, member, owner.Token, router)

	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/project/"+project.ID.String()+"/invite",
		"Bearer "+member.Token,
		projects_dto.InviteUserRequestDTO{Email: invitee.Email},
		http.StatusNotFound,
	)
}

func Test_InviteUser_WithInvalidInvitee_ReturnsBadRequest(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController(), GetMembershipController())
	owner := users_testing.CreateTestUser()
	member := users_testing.CreateTestUser()
	project := projects_testing.CreateTestProject("Test Project", owner, router)
	projects_testing.InviteUserToProject(project, member, owner.Token, router)

	testCases := []struct {
		name          string
		email         string
		expectedError string
	}{
		{name: "unknown user", email: "unknown" + uuid.New().String() + "@example.com", expectedError: "not found"},
		{name: "self invitation", email: owner.Email, expectedError: "cannot invite yourself"},
		{name: "existing membership", email: member.Email, expectedError: "already a member"},
		{name: "malformed email", email: "not-an-email", expectedError: "Invalid request format"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resp := test_utils.MakePostRequest(
				t,
				router,
				"/api/v1/project/"+project.ID.String()+"/invite",
				"Bearer "+owner.Token,
				projects_dto.InviteUserRequestDTO{Email: tc.email},
				http.StatusBadRequest,
			)
			assert.Contains(t, string(resp.Body), tc.expectedError)
		})
	}
}

func Test_AcceptInvitation_WhenInvitationIsPending_MembershipAccepted(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController(), GetMembershipController())
	owner := users_testing.CreateTestUser()
	invitee := users_testing.CreateTestUser()
	project := projects_testing.CreateTestProject("Test Project", owner, router)
	projects_testing.InviteUserToProject(project, invitee, owner.Token, router)

	test_utils.MakePatchRequest(
		t,
		router,
		"/api/v1/project/"+project.ID.String()+"/accept",
		"Bearer "+invitee.Token,
		http.StatusOK,
	)

	members := projects_testing.GetProjectMembers(project, owner.Token, router)
	assert.Len(t, members, 1)
	assert.True(t, members[0].Accepted)

	// accepting twice finds no pending invitation
	test_utils.MakePatchRequest(
		t,
		router,
		"/api/v1/project/"+project.ID.String()+"/accept",
		"Bearer "+invitee.Token,
		http.StatusBadRequest,
	)
}

func Test_AcceptInvitation_WithoutInvitation_ReturnsBadRequest(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController(), GetMembershipController())
	owner := users_testing.CreateTestUser()
	stranger := users_testing.CreateTestUser()
	project := projects_testing.CreateTestProject("Test Project", owner, router)

	resp := test_utils.MakePatchRequest(
		t,
		router,
		"/api/v1/project/"+project.ID.String()+"/accept",
		"Bearer "+stranger.Token,
		http.StatusBadRequest,
	)
	assert.Contains(t, string(resp.Body), "no pending invitation")
}

func Test_WillAttend_WhenUserIsMember_AttendingToggled(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController(), GetMembershipController())
	owner := users_testing.CreateTestUser()
	member := users_testing.CreateTestUser()
	project := projects_testing.CreateTestProject("Test Project", owner, router)
	projects_testing.InviteUserToProject(project, member, owner.Token, router)

	// a pending member may already answer
	test_utils.MakePatchRequest(
		t,
		router,
		"/api/v1/project/"+project.ID.String()+"/attend",
		"Bearer "+member.Token,
		http.StatusOK,
	)

	members := projects_testing.GetProjectMembers(project, owner.Token, router)
	if assert.NotNil(t, members[0].Attending) {
		assert.True(t, *members[0].Attending)
	}

	test_utils.MakePatchRequest(
		t,
		router,
		"/api/v1/project/"+project.ID.String()+"/notAttend",
		"Bearer "+member.Token,
		http.StatusOK,
	)

	members = projects_testing.GetProjectMembers(project, owner.Token, router)
	if assert.NotNil(t, members[0].Attending) {
		assert.False(t, *members[0].Attending)
	}
}

func Test_WillAttend_WhenOwnerHasNoMembership_ReturnsBadRequest(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController(), GetMembershipController())
	owner := users_testing.CreateTestUser()
	project := projects_testing.CreateTestProject("Test Project", owner, router)

	for _, action := range []string{"attend", "notAttend"} {
		t.Run(action, func(t *testing.T) {
			resp := test_utils.MakePatchRequest(
				t,
				router,
				"/api/v1/project/"+project.ID.String()+"/"+action,
				"Bearer "+owner.Token,
				http.StatusBadRequest,
			)
			assert.Contains(t, string(resp.Body), "not a member")
		})
	}

	// no membership is created implicitly
	assert.Empty(t, projects_testing.GetProjectMembers(project, owner.Token, router))
}

func Test_WillAttend_WhenUserHasNoAccess_ReturnsBadRequest(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController(), GetMembershipController())
	owner := users_testing.CreateTestUser()
	stranger := users_testing.CreateTestUser()
	project := projects_testing.CreateTestProject("Test Project", owner, router)

	resp := test_utils.MakePatchRequest(
		t,
		router,
		"/api/v1/project/"+project.ID.String()+"/attend",
		"Bearer "+stranger.Token,
		http.StatusBadRequest,
	)
	assert.Contains(t, string(resp.Body), "do not have access")
}
