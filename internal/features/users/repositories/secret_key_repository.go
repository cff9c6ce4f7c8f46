package users_repositories

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	users_models "meetplan/internal/features/users/models"
	"meetplan/internal/storage"

	"gorm.io/gorm"
)

type SecretKeyRepository struct{}

// GetSecretKey returns the signing secret, generating it on first call
func (r *SecretKeyRepository) GetSecretKey() (string, error) {
	var secretKey users_models.SecretKey

	err := storage.GetDb().Take(&secretKey).Error
	if err == nil {
		return secretKey.Secret, nil
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	err = storage.GetDb().Transaction(func(tx *gorm.DB) error {
		// concurrent first calls must agree on one secret
		if err := tx.Exec("LOCK TABLE secret_keys IN EXCLUSIVE MODE").Error; err != nil {
			return err
		}

		err := tx.Take(&secretKey).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		secretBytes := make([]byte, 32)
		if _, err := rand.Read(secretBytes); err != nil {
			return fmt.Errorf("failed to generate secret key: %w", err)
		}

		secretKey = users_models.SecretKey{Secret: hex.EncodeToString(secretBytes)}
		return tx.Create(&secretKey).Error
	})
	if err != nil {
		return "", err
	}

	return secretKey.Secret, nil
}
