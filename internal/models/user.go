package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is the account record behind a session. Recipes reference it only by
// identifier.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primarykey"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Email        string `gorm:"size:255;uniqueIndex;not null"`
	PasswordHash string `gorm:"size:255;not null"`
}

// BeforeCreate assigns a fresh identifier when none is set.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
