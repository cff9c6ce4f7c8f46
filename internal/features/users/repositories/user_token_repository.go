package users_repositories

import (
	"errors"
	"time"

	users_models "meetplan/internal/features/users/models"
	"meetplan/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserTokenRepository struct{}

// ReplaceToken overwrites the token the user held. The upsert on the unique
// user_id index keeps concurrent sign-ins from racing into a duplicate row.
func (r *UserTokenRepository) ReplaceToken(userID uuid.UUID, token string) error {
	return storage.GetDb().Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"token", "created_at"}),
	}).Create(&users_models.UserToken{
		ID:        uuid.New(),
		UserID:    userID,
		Token:     token,
		CreatedAt: time.Now().UTC(),
	}).Error
}

// GetTokenByUserID returns nil without error when the user holds no token
func (r *UserTokenRepository) GetTokenByUserID(userID uuid.UUID) (*users_models.UserToken, error) {
	var token users_models.UserToken

	err := storage.GetDb().
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &token, nil
}

func (r *UserTokenRepository) DeleteTokenByUserID(userID uuid.UUID) error {
	return storage.GetDb().Where("user_id = ?", userID).Delete(&users_models.UserToken{}).Error
}
