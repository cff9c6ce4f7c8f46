package users_models

import (
	"time"

	"github.com/google/uuid"
)

// UserToken holds the single live access token of a user
type UserToken struct {
	ID        uuid.UUID `gorm:"column:id"`
	UserID    uuid.UUID `gorm:"column:user_id"`
	Token     string    `gorm:"column:token"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (UserToken) TableName() string {
	return "user_tokens"
}

// SecretKey is the HMAC secret that signs access tokens
type SecretKey struct {
	Secret string `gorm:"column:secret"`
}

func (SecretKey) TableName() string {
	return "secret_keys"
}
