package api_keys

import (
	"testing"

	users_models "meetplan/internal/features/users/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func Test_ApiKeyService_WhenUserCannotManageApiKeys_ReturnsInsufficientPermissions(t *testing.T) {
	service := GetApiKeyService()
	user := &users_models.User{ID: uuid.New(), Name: "Regular", IsAdmin: false}

	apiKey, err := service.CreateApiKey(&CreateApiKeyRequestDTO{Name: "Mobile client"}, user)
	assert.ErrorIs(t, err, ErrInsufficientPermissions)
	assert.Nil(t, apiKey)

	err = service.DeleteApiKey(uuid.New(), user)
	assert.ErrorIs(t, err, ErrInsufficientPermissions)
}
