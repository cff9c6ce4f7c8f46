package api_keys

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"meetplan/internal/features/audit_logs"
	users_models "meetplan/internal/features/users/models"
	cache_utils "meetplan/internal/util/cache"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

type ApiKeyService struct {
	apiKeyRepository *ApiKeyRepository
	auditLogService  *audit_logs.AuditLogService

	apiKeyCacheUtil *cache_utils.CacheUtil[CachedApiKey]
	singleflight    singleflight.Group
}

const (
	TokenPrefix = "mp_"
	TokenLength = 32
)

func (s *ApiKeyService) CreateApiKey(request *CreateApiKeyRequestDTO, creator *users_models.User) (*ApiKey, error) {
	if !creator.CanManageApiKeys() {
		return nil, ErrInsufficientPermissions
	}

	fullToken, tokenPrefix, tokenHash, err := s.generateSecureToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	apiKey := &ApiKey{
		ID:          uuid.New(),
		Name:        request.Name,
		TokenPrefix: tokenPrefix,
		TokenHash:   tokenHash,
		Status:      ApiKeyStatusActive,
	}

	if err := s.apiKeyRepository.CreateApiKey(apiKey); err != nil {
		return nil, fmt.Errorf("failed to create API key: %w", err)
	}

	s.apiKeyCacheUtil.Set(tokenHash, &CachedApiKey{
		ID:     apiKey.ID,
		Status: apiKey.Status,
	})

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("API key created: %s (%s)", apiKey.Name, tokenPrefix),
		&creator.ID,
		nil,
	)

	apiKey.Token = fullToken

	return apiKey, nil
}

func (s *ApiKeyService) GetApiKeys(user *users_models.User) (*GetApiKeysResponseDTO, error) {
	if !user.CanManageApiKeys() {
		return nil, ErrInsufficientPermissions
	}

	apiKeys, err := s.apiKeyRepository.GetApiKeys()
	if err != nil {
		return nil, fmt.Errorf("failed to get API keys: %w", err)
	}

	return &GetApiKeysResponseDTO{
		ApiKeys: apiKeys,
	}, nil
}

func (s *ApiKeyService) UpdateApiKey(
	apiKeyID uuid.UUID,
	request *UpdateApiKeyRequestDTO,
	updater *users_models.User,
) (*ApiKey, error) {
	if !updater.CanManageApiKeys() {
		return nil, ErrInsufficientPermissions
	}

	if request.Status != nil && !request.Status.IsAssignable() {
		return nil, ErrInvalidApiKeyStatus
	}

	apiKey, err := s.apiKeyRepository.GetApiKeyByID(apiKeyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get API key: %w", err)
	}
	if apiKey == nil {
		return nil, ErrApiKeyNotFound
	}

	if request.Name != nil {
		apiKey.Name = *request.Name
	}

	if request.Status != nil {
		apiKey.Status = *request.Status
	}

	if err := s.apiKeyRepository.UpdateApiKey(apiKey); err != nil {
		return nil, fmt.Errorf("failed to update API key: %w", err)
	}

	s.apiKeyCacheUtil.Invalidate(apiKey.TokenHash)

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("API key updated: %s (%s), status %s", apiKey.Name, apiKey.TokenPrefix, apiKey.Status),
		&updater.ID,
		nil,
	)

	return apiKey, nil
}

func (s *ApiKeyService) DeleteApiKey(apiKeyID uuid.UUID, deleter *users_models.User) error {
	if !deleter.CanManageApiKeys() {
		return ErrInsufficientPermissions
	}

	apiKey, err := s.apiKeyRepository.GetApiKeyByID(apiKeyID)
	if err != nil {
		return fmt.Errorf("failed to get API key: %w", err)
	}
	if apiKey == nil {
		return ErrApiKeyNotFound
	}

	if err := s.apiKeyRepository.DeleteApiKey(apiKeyID); err != nil {
		return fmt.Errorf("failed to delete API key: %w", err)
	}

	s.apiKeyCacheUtil.Invalidate(apiKey.TokenHash)

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("API key deleted: %s (%s)", apiKey.Name, apiKey.TokenPrefix),
		&deleter.ID,
		nil,
	)

	return nil
}

// ValidateApiKey checks the cache first, then the database. Unknown hashes
// are cached as NOT_FOUND so guessed tokens do not reach postgres twice.
func (s *ApiKeyService) ValidateApiKey(token string) (*ValidateTokenResponse, error) {
	if !strings.HasPrefix(token, TokenPrefix) {
		return &ValidateTokenResponse{IsValid: false}, nil
	}

	tokenHash := s.hashToken(token)

	if cachedKey := s.apiKeyCacheUtil.Get(tokenHash); cachedKey != nil {
		if cachedKey.Status != ApiKeyStatusActive {
			return &ValidateTokenResponse{IsValid: false}, nil
		}

		return &ValidateTokenResponse{
			IsValid:  true,
			ApiKeyID: cachedKey.ID,
		}, nil
	}

	result, err, _ := s.singleflight.Do(tokenHash, func() (any, error) {
		return s.apiKeyRepository.GetActiveApiKeyByTokenHash(tokenHash)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.apiKeyCacheUtil.Set(tokenHash, &CachedApiKey{
				ID:     uuid.Nil,
				Status: ApiKeyStatusNotFound,
			})
			return &ValidateTokenResponse{IsValid: false}, nil
		}

		return nil, fmt.Errorf("failed to get API key: %w", err)
	}

	apiKey, ok := result.(*ApiKey)
	if !ok {
		return nil, fmt.Errorf("failed to cast result to ApiKey")
	}

	s.apiKeyCacheUtil.Set(tokenHash, &CachedApiKey{
		ID:     apiKey.ID,
		Status: apiKey.Status,
	})

	return &ValidateTokenResponse{
		IsValid:  true,
		ApiKeyID: apiKey.ID,
	}, nil
}

func (s *ApiKeyService) generateSecureToken() (fullToken, prefix, hash string, err error) {
	// hex doubles the length
	tokenBytes := make([]byte, TokenLength/2)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", "", "", err
	}

	tokenSuffix := hex.EncodeToString(tokenBytes)
	fullToken = TokenPrefix + tokenSuffix
	prefix = TokenPrefix + tokenSuffix[:6] + "..."
	hash = s.hashToken(fullToken)

	return fullToken, prefix, hash, nil
}

func (s *ApiKeyService) hashToken(token string) string {
	hasher := sha256.New()
	hasher.Write([]byte(token))
	return hex.EncodeToString(hasher.Sum(nil))
}
