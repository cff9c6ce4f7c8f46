package users_services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	users_dto "meetplan/internal/features/users/dto"
	users_interfaces "meetplan/internal/features/users/interfaces"
	users_models "meetplan/internal/features/users/models"
	users_repositories "meetplan/internal/features/users/repositories"
)

const accessTokenLifetime = time.Hour * 24 * 365

type UserService struct {
	userRepository      *users_repositories.UserRepository
	userTokenRepository *users_repositories.UserTokenRepository
	secretKeyRepository *users_repositories.SecretKeyRepository
	logger              *slog.Logger

	auditLogWriter users_interfaces.AuditLogWriter
}

func (s *UserService) SetAuditLogWriter(writer users_interfaces.AuditLogWriter) {
	s.auditLogWriter = writer
}

func (s *UserService) SignUp(request *users_dto.SignUpRequestDTO) (*users_dto.UserResponseDTO, error) {
	email := normalizeEmail(request.Email)

	existingUser, err := s.userRepository.GetUserByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	if existingUser != nil {
		return nil, ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &users_models.User{
		ID:             uuid.New(),
		Name:           strings.TrimSpace(request.Name),
		Email:          email,
		HashedPassword: string(hashedPassword),
		IsAdmin:        false,
	}

	if err := s.userRepository.CreateUser(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.IssueAccessToken(user)
	if err != nil {
		return nil, err
	}

	s.writeAuditLog(fmt.Sprintf("User registered with email: %s", user.Email), &user.ID)

	return toUserResponse(user, &token), nil
}

func (s *UserService) SignIn(request *users_dto.SignInRequestDTO) (*users_dto.UserResponseDTO, error) {
	user, err := s.userRepository.GetUserByEmail(normalizeEmail(request.Email))
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if user == nil || !user.HasPassword() {
		return nil, ErrInvalidCredentials
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(request.Password))
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.IssueAccessToken(user)
	if err != nil {
		return nil, err
	}

	s.writeAuditLog(fmt.Sprintf("User signed in with email: %s", user.Email), &user.ID)

	return toUserResponse(user, &token), nil
}

// GetUserFromToken validates the signature, the password epoch and that the
// token is still the one stored for the user.
func (s *UserService) GetUserFromToken(token string) (*users_models.User, error) {
	secretKey, err := s.secretKeyRepository.GetSecretKey()
	if err != nil {
		return nil, fmt.Errorf("failed to get secret key: %w", err)
	}

	parsedToken, err := jwt.Parse(token, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: %v", ErrUnexpectedSignature, token.Header["alg"])
		}
		return []byte(secretKey), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	if !ok || !parsedToken.Valid {
		return nil, ErrInvalidToken
	}

	userIDStr, ok := claims["sub"].(string)
	if !ok {
		return nil, ErrInvalidTokenClaims
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return nil, ErrInvalidTokenClaims
	}

	user, err := s.userRepository.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	passwordCreationTimeUnix, ok := claims["passwordCreationTime"].(float64)
	if !ok {
		return nil, ErrInvalidTokenClaims
	}

	tokenPasswordTime := time.Unix(int64(passwordCreationTimeUnix), 0)
	if !tokenPasswordTime.Equal(user.PasswordCreationTime.Truncate(time.Second)) {
		return nil, ErrPasswordChanged
	}

	storedToken, err := s.userTokenRepository.GetTokenByUserID(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user token: %w", err)
	}

	if storedToken == nil || storedToken.Token != token {
		return nil, ErrTokenRevoked
	}

	return user, nil
}

// IssueAccessToken signs a new token and makes it the user's only token
func (s *UserService) IssueAccessToken(user *users_models.User) (string, error) {
	secretKey, err := s.secretKeyRepository.GetSecretKey()
	if err != nil {
		return "", fmt.Errorf("failed to get secret key: %w", err)
	}

	now := time.Now().UTC()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":                  user.ID.String(),
		"jti":                  uuid.New().String(),
		"exp":                  now.Add(accessTokenLifetime).Unix(),
		"iat":                  now.Unix(),
		"admin":                user.IsAdmin,
		"passwordCreationTime": user.PasswordCreationTime.Unix(),
	})

	tokenString, err := token.SignedString([]byte(secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	if err := s.userTokenRepository.ReplaceToken(user.ID, tokenString); err != nil {
		return "", fmt.Errorf("failed to store token: %w", err)
	}

	return tokenString, nil
}

func (s *UserService) GetCurrentUserProfile(user *users_models.User) (*users_dto.UserResponseDTO, error) {
	storedToken, err := s.userTokenRepository.GetTokenByUserID(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user token: %w", err)
	}

	var token *string
	if storedToken != nil {
		token = &storedToken.Token
	}

	return toUserResponse(user, token), nil
}

func (s *UserService) ChangeUserPasswordByEmail(email string, newPassword string) error {
	user, err := s.userRepository.GetUserByEmail(normalizeEmail(email))
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}

	if user == nil {
		return ErrUserNotFound
	}

	return s.ChangeUserPassword(user.ID, newPassword)
}

// ChangeUserPassword also revokes the stored token, the user signs in again
func (s *UserService) ChangeUserPassword(userID uuid.UUID, newPassword string) error {
	user, err := s.userRepository.GetUserByID(userID)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}

	if !user.HasPassword() {
		return ErrUserHasNoPassword
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	if err := s.userRepository.UpdateUserPassword(userID, string(hashedPassword)); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	if err := s.userTokenRepository.DeleteTokenByUserID(userID); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}

	s.writeAuditLog("Password changed", &userID)

	return nil
}

func (s *UserService) MakeAdminByEmail(email string) error {
	user, err := s.userRepository.GetUserByEmail(normalizeEmail(email))
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}

	if user == nil {
		return ErrUserNotFound
	}

	if err := s.userRepository.UpdateUserAdmin(user.ID, true); err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	s.writeAuditLog(fmt.Sprintf("User promoted to admin: %s", user.Email), &user.ID)

	return nil
}

func (s *UserService) GetUserByID(userID uuid.UUID) (*users_models.User, error) {
	return s.userRepository.GetUserByID(userID)
}

func (s *UserService) GetUserByEmail(email string) (*users_models.User, error) {
	return s.userRepository.GetUserByEmail(normalizeEmail(email))
}

func (s *UserService) writeAuditLog(message string, userID *uuid.UUID) {
	if s.auditLogWriter == nil {
		s.logger.Warn("audit log writer is not set", "message", message)
		return
	}

	s.auditLogWriter.WriteAuditLog(message, userID, nil)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func toUserResponse(user *users_models.User, token *string) *users_dto.UserResponseDTO {
	return &users_dto.UserResponseDTO{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Admin:     user.IsAdmin,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
		Token:     token,
	}
}
