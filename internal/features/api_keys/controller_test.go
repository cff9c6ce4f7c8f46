package api_keys

import (
	"net/http"
	"testing"

	users_testing "meetplan/internal/features/users/testing"
	test_utils "meetplan/internal/util/testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_CreateApiKey_WhenUserIsAdmin_ApiKeyCreated(t *testing.T) {
	router := CreateApiKeyTestRouter()
	admin := users_testing.CreateTestAdmin()

	var response ApiKey
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/api-keys",
		"Bearer "+admin.Token,
		CreateApiKeyRequestDTO{Name: "Mobile client"},
		http.StatusOK,
		&response,
	)

	assert.Equal(t, "Mobile client", response.Name)
	assert.NotEqual(t, uuid.Nil, response.ID)
	assert.Equal(t, ApiKeyStatusActive, response.Status)
	assert.Len(t, response.Token, len(TokenPrefix)+TokenLength)
	assert.Contains(t, response.Token, TokenPrefix)
	assert.Contains(t, response.TokenPrefix, TokenPrefix)
	assert.Contains(t, response.TokenPrefix, "...")
}

func Test_CreateApiKey_WhenUserIsNotAdmin_ReturnsForbidden(t *testing.T) {
	router := CreateApiKeyTestRouter()
	user := users_testing.CreateTestUser()

	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/api-keys",
		"Bearer "+user.Token,
		CreateApiKeyRequestDTO{Name: "Mobile client"},
		http.StatusForbidden,
	)
}

func Test_CreateApiKey_WithInvalidName_ReturnsBadRequest(t *testing.T) {
	router := CreateApiKeyTestRouter()
	admin := users_testing.CreateTestAdmin()

	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/api-keys",
		"Bearer "+admin.Token,
		CreateApiKeyRequestDTO{Name: ""},
		http.StatusBadRequest,
	)
}

func Test_GetApiKeys_WhenUserIsAdmin_ReturnsKeysWithoutTokens(t *testing.T) {
	router := CreateApiKeyTestRouter()
	admin := users_testing.CreateTestAdmin()
	apiKey := CreateTestApiKey("Listed key", admin.Token, router)

	var response GetApiKeysResponseDTO
	resp := test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/api-keys",
		"Bearer "+admin.Token,
		http.StatusOK,
		&response,
	)

	var listed *ApiKey
	for _, key := range response.ApiKeys {
		if key.ID == apiKey.ID {
			listed = key
		}
	}
	require.NotNil(t, listed)
	assert.Equal(t, "Listed key", listed.Name)
	assert.Empty(t, listed.Token)
	assert.NotContains(t, string(resp.Body), apiKey.Token)
}

func Test_GetApiKeys_WhenUserIsNotAdmin_ReturnsForbidden(t *testing.T) {
	router := CreateApiKeyTestRouter()
	user := users_testing.CreateTestUser()

	test_utils.MakeGetRequest(t, router, "/api/v1/api-keys", "Bearer "+user.Token, http.StatusForbidden)
	test_utils.MakeGetRequest(t, router, "/api/v1/api-keys", "", http.StatusUnauthorized)
}

func Test_UpdateApiKey_WhenStatusChanged_ValidationFollowsStatus(t *testing.T) {
	router := CreateApiKeyTestRouter()
	admin := users_testing.CreateTestAdmin()
	apiKey := CreateTestApiKey("Toggled key", admin.Token, router)
	service := GetApiKeyService()

	validation, err := service.ValidateApiKey(apiKey.Token)
	require.NoError(t, err)
	assert.True(t, validation.IsValid)
	assert.Equal(t, apiKey.ID, validation.ApiKeyID)

	disabled := ApiKeyStatusDisabled
	newName := "Disabled key"
	var updated ApiKey
	test_utils.MakePutRequestAndUnmarshal(
		t,
		router,
		"/api/v1/api-keys/"+apiKey.ID.String(),
		"Bearer "+admin.Token,
		UpdateApiKeyRequestDTO{Name: &newName, Status: &disabled},
		http.StatusOK,
		&updated,
	)
	assert.Equal(t, "Disabled key", updated.Name)
	assert.Equal(t, ApiKeyStatusDisabled, updated.Status)

	validation, err = service.ValidateApiKey(apiKey.Token)
	require.NoError(t, err)
	assert.False(t, validation.IsValid)

	active := ApiKeyStatusActive
	test_utils.MakePutRequest(
		t,
		router,
		"/api/v1/api-keys/"+apiKey.ID.String(),
		"Bearer "+admin.Token,
		UpdateApiKeyRequestDTO{Status: &active},
		http.StatusOK,
	)

	validation, err = service.ValidateApiKey(apiKey.Token)
	require.NoError(t, err)
	assert.True(t, validation.IsValid)
}

func Test_UpdateApiKey_WithInvalidInput_ReturnsError(t *testing.T) {
	router := CreateApiKeyTestRouter()
	admin := users_testing.CreateTestAdmin()
	apiKey := CreateTestApiKey("Key", admin.Token, router)

	notFound := ApiKeyStatusNotFound
	resp := test_utils.MakePutRequest(
		t,
		router,
		"/api/v1/api-keys/"+apiKey.ID.String(),
		"Bearer "+admin.Token,
		UpdateApiKeyRequestDTO{Status: &notFound},
		http.StatusBadRequest,
	)
	assert.Contains(t, string(resp.Body), "ACTIVE or DISABLED")

	newName := "Renamed"
	test_utils.MakePutRequest(
		t,
		router,
		"/api/v1/api-keys/"+uuid.New().String(),
		"Bearer "+admin.Token,
		UpdateApiKeyRequestDTO{Name: &newName},
		http.StatusNotFound,
	)
}

func Test_DeleteApiKey_WhenUserIsAdmin_KeyStopsValidating(t *testing.T) {
	router := CreateApiKeyTestRouter()
	admin := users_testing.CreateTestAdmin()
	apiKey := CreateTestApiKey("Deleted key", admin.Token, router)

	resp := test_utils.MakeDeleteRequest(
		t,
		router,
		"/api/v1/api-keys/"+apiKey.ID.String(),
		"Bearer "+admin.Token,
		http.StatusOK,
	)
	assert.Contains(t, string(resp.Body), "API key deleted successfully")

	validation, err := GetApiKeyService().ValidateApiKey(apiKey.Token)
	require.NoError(t, err)
	assert.False(t, validation.IsValid)

	test_utils.MakeDeleteRequest(
		t,
		router,
		"/api/v1/api-keys/"+apiKey.ID.String(),
		"Bearer "+admin.Token,
		http.StatusNotFound,
	)
}

func Test_DeleteApiKey_WhenUserIsNotAdmin_ReturnsForbidden(t *testing.T) {
	router := CreateApiKeyTestRouter()
	admin := users_testing.CreateTestAdmin()
	user := users_testing.CreateTestUser()
	apiKey := CreateTestApiKey("Protected key", admin.Token, router)

	test_utils.MakeDeleteRequest(
		t,
		router,
		"/api/v1/api-keys/"+apiKey.ID.String(),
		"Bearer "+user.Token,
		http.StatusForbidden,
	)
}

func Test_ValidateApiKey_WithUnknownTokens_ReturnsInvalid(t *testing.T) {
	service := GetApiKeyService()

	for _, token := range []string{"", "xx_0123456789abcdef", TokenPrefix + uuid.New().String()} {
		t.Run(token, func(t *testing.T) {
			validation, err := service.ValidateApiKey(token)

			require.NoError(t, err)
			assert.False(t, validation.IsValid)
		})
	}
}
