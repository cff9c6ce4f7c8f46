package users_testing

import (
	"fmt"
	"time"

	users_models "meetplan/internal/features/users/models"
	users_repositories "meetplan/internal/features/users/repositories"
	users_services "meetplan/internal/features/users/services"

	"github.com/google/uuid"
)

type TestUser struct {
	UserID uuid.UUID
	Name   string
	Email  string
	Token  string
}

func CreateTestUser() *TestUser {
	return createTestUser(false)
}

func CreateTestAdmin() *TestUser {
	return createTestUser(true)
}

func createTestUser(isAdmin bool) *TestUser {
	userID := uuid.New()
	prefix := "user"
	if isAdmin {
		prefix = "admin"
	}
	email := fmt.Sprintf("%s-%s@test.com", prefix, userID.String()[:8])

	user := &users_models.User{
		ID:                   userID,
		Name:                 "Test " + prefix,
		Email:                email,
		HashedPassword:       "$2a$10$test",
		PasswordCreationTime: time.Now().UTC(),
		IsAdmin:              isAdmin,
	}

	userRepository := &users_repositories.UserRepository{}
	if err := userRepository.CreateUser(user); err != nil {
		panic(err)
	}

	token, err := users_services.GetUserService().IssueAccessToken(user)
	if err != nil {
		panic(err)
	}

	return &TestUser{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Token:  token,
	}
}
