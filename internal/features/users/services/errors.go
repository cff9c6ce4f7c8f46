package users_services

import "errors"

var (
	ErrUserAlreadyExists   = errors.New("user with this email already exists")
	ErrInvalidCredentials  = errors.New("email or password is incorrect")
	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidToken        = errors.New("invalid token")
	ErrTokenRevoked        = errors.New("token has been revoked, please sign in again")
	ErrPasswordChanged     = errors.New("password has been changed, please sign in again")
	ErrUserHasNoPassword   = errors.New("user has no password set")
	ErrInvalidTokenClaims  = errors.New("invalid token claims")
	ErrUnexpectedSignature = errors.New("unexpected signing method")
)
