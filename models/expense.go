package models

import (
	"time"

	"github.com/google/uuid"
)

// Expense type discriminator values.
const (
	TypeEarn    = "earn"
	TypeExpense = "expense"
)

// Expense represents a single income or spending record belonging to a user.
// JSON field names match the persisted wire shape (user, date, details, amount, type).
type Expense struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
	UserID    string    `gorm:"size:36;index;not null" json:"user"`
	Date      time.Time `gorm:"not null" json:"date"`
	Details   string    `gorm:"size:255;not null" json:"details"`
	Amount    float64   `gorm:"not null" json:"amount"`
	Type      string    `gorm:"size:16;not null" json:"type"`
}

// NewExpense builds an expense owned by userID with a store-assigned opaque id.
func NewExpense(userID string, date time.Time, details string, amount float64, kind string) Expense {
	return Expense{
		ID:      uuid.NewString(),
		UserID:  userID,
		Date:    date,
		Details: details,
		Amount:  amount,
		Type:    kind,
	}
}

// ValidType reports whether kind is one of the accepted discriminators.
func ValidType(kind string) bool {
	return kind == TypeEarn || kind == TypeExpense
}
