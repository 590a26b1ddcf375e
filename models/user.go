package models

import (
	"time"

	"github.com/google/uuid"
)

// User model
type User struct {
	ID             string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt      time.Time `json:"-"`
	UpdatedAt      time.Time `json:"-"`
	Email          string    `gorm:"size:255;not null;unique" json:"email"`
	HashedPassword []byte    `gorm:"not null" json:"-"`
	Expenses       []Expense `gorm:"foreignKey:UserID" json:"-"`
}

// NewUser builds a user with a store-assigned opaque id.
func NewUser(email string, hashedPassword []byte) User {
	return User{
		ID:             uuid.NewString(),
		Email:          email,
		HashedPassword: hashedPassword,
	}
}
