package api_keys

import (
	"time"

	"github.com/google/uuid"
)

type ApiKey struct {
	ID          uuid.UUID    `json:"id"           gorm:"column:id"`
	Name        string       `json:"name"         gorm:"column:name"`
	TokenPrefix string       `json:"token_prefix" gorm:"column:token_prefix"`
	TokenHash   string       `json:"-"            gorm:"column:token_hash"`
	Status      ApiKeyStatus `json:"status"       gorm:"column:status"`
	CreatedAt   time.Time    `json:"created_at"   gorm:"column:created_at"`

	// only set in the create response
	Token string `json:"token,omitempty" gorm:"-"`
}

func (ApiKey) TableName() string {
	return "api_keys"
}
