package api_keys

import (
	"errors"
	"time"

	"meetplan/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ApiKeyRepository struct{}

func (r *ApiKeyRepository) CreateApiKey(apiKey *ApiKey) error {
	if apiKey.ID == uuid.Nil {
		apiKey.ID = uuid.New()
	}

	if apiKey.CreatedAt.IsZero() {
		apiKey.CreatedAt = time.Now().UTC()
	}

	return storage.GetDb().Create(apiKey).Error
}

func (r *ApiKeyRepository) GetApiKeys() ([]*ApiKey, error) {
	apiKeys := make([]*ApiKey, 0)

	err := storage.GetDb().
		Order("created_at DESC, id DESC").
		Find(&apiKeys).Error

	return apiKeys, err
}

// GetApiKeyByID returns nil without error when the key does not exist
func (r *ApiKeyRepository) GetApiKeyByID(apiKeyID uuid.UUID) (*ApiKey, error) {
	var apiKey ApiKey

	if err := storage.GetDb().Where("id = ?", apiKeyID).First(&apiKey).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &apiKey, nil
}

// GetActiveApiKeyByTokenHash returns gorm.ErrRecordNotFound for unknown or
// disabled keys
func (r *ApiKeyRepository) GetActiveApiKeyByTokenHash(tokenHash string) (*ApiKey, error) {
	var apiKey ApiKey

	err := storage.GetDb().
		Where("token_hash = ? AND status = ?", tokenHash, ApiKeyStatusActive).
		First(&apiKey).Error
	if err != nil {
		return nil, err
	}

	return &apiKey, nil
}

func (r *ApiKeyRepository) UpdateApiKey(apiKey *ApiKey) error {
	return storage.GetDb().
		Model(&ApiKey{}).
		Where("id = ?", apiKey.ID).
		Updates(map[string]any{
			"name":   apiKey.Name,
			"status": apiKey.Status,
		}).Error
}

func (r *ApiKeyRepository) DeleteApiKey(apiKeyID uuid.UUID) error {
	return storage.GetDb().Delete(&ApiKey{}, "id = ?", apiKeyID).Error
}
