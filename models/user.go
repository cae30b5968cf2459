package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const RoleAdmin Role = "ADMIN"

// User is a back-office account. Password always holds a bcrypt hash.
type User struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Email     string    `json:"email" db:"email" gorm:"type:text;not null;uniqueIndex:idx_users_email"`
	Password  string    `json:"-" db:"password" gorm:"type:text;not null"`
	Name      string    `json:"name" db:"name" gorm:"type:text;not null"`
	Role      Role      `json:"role" db:"role" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
