package users_models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID                   uuid.UUID `json:"id"         gorm:"column:id"`
	Name                 string    `json:"name"       gorm:"column:name"`
	Email                string    `json:"email"      gorm:"column:email"`
	HashedPassword       string    `json:"-"          gorm:"column:hashed_password"`
	PasswordCreationTime time.Time `json:"-"          gorm:"column:password_creation_time"`
	IsAdmin              bool      `json:"admin"      gorm:"column:is_admin"`
	CreatedAt            time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt            time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (User) TableName() string {
	return "users"
}

// CanManageApiKeys is reserved for admins promoted from the command line
func (u *User) CanManageApiKeys() bool {
	return u.IsAdmin
}

func (u *User) HasPassword() bool {
	return u.HashedPassword != ""
}
