package users_controllers

import (
	"net/http"
	"testing"

	users_dto "meetplan/internal/features/users/dto"
	users_middleware "meetplan/internal/features/users/middleware"
	users_services "meetplan/internal/features/users/services"
	users_testing "meetplan/internal/features/users/testing"
	test_utils "meetplan/internal/util/testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func Test_SignUpUser_WithValidData_UserCreated(t *testing.T) {
	router := createUserTestRouter()
	id := uuid.New().String()

	request := users_dto.SignUpRequestDTO{
		Name:     "Alice",
		Email:    "Alice" + id + "@Example.com",
		Password: "testpassword123",
	}

	var response users_dto.UserResponseDTO
	resp := test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/users/signup",
		"",
		request,
		http.StatusOK,
		&response,
	)

	assert.NotEqual(t, uuid.Nil, response.ID)
	assert.Equal(t, "Alice", response.Name)
	assert.Equal(t, "alice"+id+"@example.com", response.Email)
	assert.False(t, response.Admin)
	assert.NotNil(t, response.Token)
	assert.NotContains(t, string(resp.Body), "password")
	assert.Contains(t, resp.Headers.Get("Set-Cookie"), users_middleware.TokenCookieName+"=")
}

func Test_SignUpUser_WithInvalidJSON_ReturnsBadRequest(t *testing.T) {
	router := createUserTestRouter()

	resp := test_utils.MakeRequest(t, router, test_utils.RequestOptions{
		Method:         "POST",
		URL:            "/api/v1/users/signup",
		Body:           "invalid json",
		ExpectedStatus: http.StatusBadRequest,
	})

	assert.Contains(t, string(resp.Body), "Invalid request format")
}

func Test_SignUpUser_WithDuplicateEmail_ReturnsBadRequest(t *testing.T) {
	router := createUserTestRouter()
	email := "duplicate" + uuid.New().String() + "@example.com"

	request := users_dto.SignUpRequestDTO{
		Name:     "Bob",
		Email:    email,
		Password: "testpassword123",
	}

	test_utils.MakePostRequest(t, router, "/api/v1/users/signup", "", request, http.StatusOK)

	resp := test_utils.MakePostRequest(t, router, "/api/v1/users/signup", "", request, http.StatusBadRequest)
	assert.Contains(t, string(resp.Body), "already exists")
}

func Test_SignUpUser_WithValidationErrors_ReturnsBadRequest(t *testing.T) {
	router := createUserTestRouter()

	testCases := []struct {
		name    string
		request users_dto.SignUpRequestDTO
	}{
		{
			name: "missing name",
			request: users_dto.SignUpRequestDTO{
				Email:    "test@example.com",
				Password: "testpassword123",
			},
		},
		{
			name: "missing email",
			request: users_dto.SignUpRequestDTO{
				Name:     "Carol",
				Password: "testpassword123",
			},
		},
		{
			name: "invalid email",
			request: users_dto.SignUpRequestDTO{
				Name:     "Carol",
				Email:    "not-an-email",
				Password: "testpassword123",
			},
		},
		{
			name: "short password",
			request: users_dto.SignUpRequestDTO{
				Name:     "Carol",
				Email:    "test@example.com",
				Password: "short",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			test_utils.MakePostRequest(t, router, "/api/v1/users/signup", "", tc.request, http.StatusBadRequest)
		})
	}
}

func Test_SignInUser_WithValidCredentials_ReturnsToken(t *testing.T) {
	router := createUserTestRouter()
	email := "signin" + uuid.New().String() + "@example.com"
	password := "testpassword123"

	signUpUser(t, router, email, password)

	var response users_dto.UserResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/users/signin",
		"",
		users_dto.SignInRequestDTO{Email: email, Password: password},
		http.StatusOK,
		&response,
	)

	assert.NotNil(t, response.Token)
	assert.NotEqual(t, uuid.Nil, response.ID)
	assert.Equal(t, email, response.Email)
}

func Test_SignInUser_WhenSignedInTwice_PreviousTokenRevoked(t *testing.T) {
	router := createUserTestRouter()
	email := "twice" + uuid.New().String() + "@example.com"
	password := "testpassword123"

	signUpResponse := signUpUser(t, router, email, password)
	firstToken := *signUpResponse.Token

	var signInResponse users_dto.UserResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/users/signin",
		"",
		users_dto.SignInRequestDTO{Email: email, Password: password},
		http.StatusOK,
		&signInResponse,
	)

	assert.NotEqual(t, firstToken, *signInResponse.Token)

	test_utils.MakeGetRequest(t, router, "/api/v1/users/me", "Bearer "+firstToken, http.StatusUnauthorized)
	test_utils.MakeGetRequest(
		t,
		router,
		"/api/v1/users/me",
		"Bearer "+*signInResponse.Token,
		http.StatusOK,
	)
}

func Test_SignInUser_WithWrongPassword_ReturnsBadRequest(t *testing.T) {
	router := createUserTestRouter()
	email := "signin2" + uuid.New().String() + "@example.com"

	signUpUser(t, router, email, "testpassword123")

	resp := test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/users/signin",
		"",
		users_dto.SignInRequestDTO{Email: email, Password: "wrongpassword"},
		http.StatusBadRequest,
	)
	assert.Contains(t, string(resp.Body), "password is incorrect")
}

func Test_SignInUser_WithNonExistentUser_ReturnsBadRequest(t *testing.T) {
	router := createUserTestRouter()

	resp := test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/users/signin",
		"",
		users_dto.SignInRequestDTO{
			Email:    "nonexistent" + uuid.New().String() + "@example.com",
			Password: "testpassword123",
		},
		http.StatusBadRequest,
	)
	assert.Contains(t, string(resp.Body), "password is incorrect")
}

func Test_SignInUser_WithInvalidJSON_ReturnsBadRequest(t *testing.T) {
	router := createUserTestRouter()

	resp := test_utils.MakeRequest(t, router, test_utils.RequestOptions{
		Method:         "POST",
		URL:            "/api/v1/users/signin",
		Body:           "invalid json",
		ExpectedStatus: http.StatusBadRequest,
	})

	assert.Contains(t, string(resp.Body), "Invalid request format")
}

func Test_GetCurrentUser_WithValidToken_ReturnsUserWithToken(t *testing.T) {
	router := createUserTestRouter()
	user := users_testing.CreateTestUser()

	var response users_dto.UserResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/users/me",
		"Bearer "+user.Token,
		http.StatusOK,
		&response,
	)

	assert.Equal(t, user.UserID, response.ID)
	assert.Equal(t, user.Email, response.Email)
	assert.NotNil(t, response.Token)
	assert.Equal(t, user.Token, *response.Token)
}

func Test_GetCurrentUser_WithTokenCookie_ReturnsUser(t *testing.T) {
	router := createUserTestRouter()
	user := users_testing.CreateTestUser()

	resp := test_utils.MakeRequest(t, router, test_utils.RequestOptions{
		Method:         "GET",
		URL:            "/api/v1/users/me",
		Headers:        map[string]string{"Cookie": users_middleware.TokenCookieName + "=" + user.Token},
		ExpectedStatus: http.StatusOK,
	})
	assert.Contains(t, string(resp.Body), user.UserID.String())
}

func Test_GetCurrentUser_WithoutAuth_ReturnsUnauthorized(t *testing.T) {
	router := createUserTestRouter()

	test_utils.MakeGetRequest(t, router, "/api/v1/users/me", "", http.StatusUnauthorized)
	test_utils.MakeGetRequest(t, router, "/api/v1/users/me", "Bearer invalid-token", http.StatusUnauthorized)
}

func Test_ChangeUserPassword_WithValidData_PasswordChanged(t *testing.T) {
	router := createUserTestRouter()
	email := "changepass" + uuid.New().String() + "@example.com"
	oldPassword := "oldpassword123"
	newPassword := "newpassword456"

	signUpResponse := signUpUser(t, router, email, oldPassword)
	token := *signUpResponse.Token

	test_utils.MakePutRequest(
		t,
		router,
		"/api/v1/users/change-password",
		"Bearer "+token,
		users_dto.ChangePasswordRequestDTO{NewPassword: newPassword},
		http.StatusOK,
	)

	// old token is revoked together with the old password
	test_utils.MakeGetRequest(t, router, "/api/v1/users/me", "Bearer "+token, http.StatusUnauthorized)

	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/users/signin",
		"",
		users_dto.SignInRequestDTO{Email: email, Password: oldPassword},
		http.StatusBadRequest,
	)
	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/users/signin",
		"",
		users_dto.SignInRequestDTO{Email: email, Password: newPassword},
		http.StatusOK,
	)
}

func Test_ChangeUserPassword_WithoutAuth_ReturnsUnauthorized(t *testing.T) {
	router := createUserTestRouter()

	test_utils.MakePutRequest(
		t,
		router,
		"/api/v1/users/change-password",
		"",
		users_dto.ChangePasswordRequestDTO{NewPassword: "newpassword123"},
		http.StatusUnauthorized,
	)
}

func Test_ChangeUserPassword_WithShortPassword_ReturnsBadRequest(t *testing.T) {
	router := createUserTestRouter()
	user := users_testing.CreateTestUser()

	test_utils.MakePutRequest(
		t,
		router,
		"/api/v1/users/change-password",
		"Bearer "+user.Token,
		users_dto.ChangePasswordRequestDTO{NewPassword: "short"},
		http.StatusBadRequest,
	)
}

func signUpUser(t *testing.T, router *gin.Engine, email, password string) users_dto.UserResponseDTO {
	t.Helper()

	var response users_dto.UserResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/users/signup",
		"",
		users_dto.SignUpRequestDTO{Name: "Test User", Email: email, Password: password},
		http.StatusOK,
		&response,
	)

	return response
}

func createUserTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	v1 := router.Group("/api/v1")

	GetUserController().RegisterRoutes(v1)

	protected := v1.Group("").Use(users_middleware.AuthMiddleware(users_services.GetUserService()))
	GetUserController().RegisterProtectedRoutes(protected.(*gin.RouterGroup))

	users_services.GetUserService().SetAuditLogWriter(&AuditLogWriterStub{})

	return router
}

type AuditLogWriterStub struct{}

func (a *AuditLogWriterStub) WriteAuditLog(message string, userID *uuid.UUID, projectID *uuid.UUID) {
	// do nothing
}
