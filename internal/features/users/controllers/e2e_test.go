package users_controllers

import (
	"net/http"
	"testing"

	users_dto "meetplan/internal/features/users/dto"
	users_services "meetplan/internal/features/users/services"
	test_utils "meetplan/internal/util/testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func Test_UserLifecycleE2E_CompletesSuccessfully(t *testing.T) {
	router := createUserTestRouter()

	// 1. User registers
	userEmail := "testuser" + uuid.New().String() + "@example.com"
	signUpResponse := signUpUser(t, router, userEmail, "userpassword123")

	// 2. User signs in, the signup token stops working
	var signInResponse users_dto.UserResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/users/signin",
		"",
		users_dto.SignInRequestDTO{Email: userEmail, Password: "userpassword123"},
		http.StatusOK,
		&signInResponse,
	)
	assert.Equal(t, signUpResponse.ID, signInResponse.ID)
	test_utils.MakeGetRequest(t, router, "/api/v1/users/me", "Bearer "+*signUpResponse.Token, http.StatusUnauthorized)

	// 3. User gets own profile
	var profileResponse users_dto.UserResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/users/me",
		"Bearer "+*signInResponse.Token,
		http.StatusOK,
		&profileResponse,
	)
	assert.Equal(t, signInResponse.ID, profileResponse.ID)
	assert.Equal(t, userEmail, profileResponse.Email)
	assert.False(t, profileResponse.Admin)

	// 4. Password is reset from the command line and the user is promoted
	err := users_services.GetUserService().ChangeUserPasswordByEmail(userEmail, "resetpassword123")
	assert.NoError(t, err)
	err = users_services.GetUserService().MakeAdminByEmail(userEmail)
	assert.NoError(t, err)

	test_utils.MakeGetRequest(t, router, "/api/v1/users/me", "Bearer "+*signInResponse.Token, http.StatusUnauthorized)

	// 5. User signs in with the new password as admin
	var adminResponse users_dto.UserResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/users/signin",
		"",
		users_dto.SignInRequestDTO{Email: userEmail, Password: "resetpassword123"},
		http.StatusOK,
		&adminResponse,
	)
	assert.True(t, adminResponse.Admin)
}

func Test_MakeAdminByEmail_WhenUserDoesNotExist_ReturnsUserNotFound(t *testing.T) {
	err := users_services.GetUserService().MakeAdminByEmail("missing" + uuid.New().String() + "@example.com")

	assert.ErrorIs(t, err, users_services.ErrUserNotFound)
}
