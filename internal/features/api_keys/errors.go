package api_keys

import "errors"

var (
	ErrInsufficientPermissions = errors.New("insufficient permissions to manage API keys")
	ErrApiKeyNotFound          = errors.New("API key not found")
	ErrInvalidApiKeyStatus     = errors.New("API key status must be ACTIVE or DISABLED")
)
