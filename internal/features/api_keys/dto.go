package api_keys

import (
	"github.com/google/uuid"
)

type CreateApiKeyRequestDTO struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

type GetApiKeysResponseDTO struct {
	ApiKeys []*ApiKey `json:"api_keys"`
}

type UpdateApiKeyRequestDTO struct {
	Name   *string       `json:"name,omitempty"   binding:"omitempty,min=1,max=100"`
	Status *ApiKeyStatus `json:"status,omitempty"`
}

type ValidateTokenResponse struct {
	IsValid  bool      `json:"is_valid"`
	ApiKeyID uuid.UUID `json:"api_key_id,omitempty"`
}

type CachedApiKey struct {
	ID     uuid.UUID    `json:"id"`
	Status ApiKeyStatus `json:"status"`
}
