package main

import (
	"errors"
	"strings"

	"github.com/sabbir-mahmud/expense-backend/models"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrWeakPassword       = errors.New("password too short (min 6)")
	ErrEmailRequired      = errors.New("email required")
)

// RegisterUser stores a new user with a bcrypt-hashed password.
func (a *App) RegisterUser(email, password string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrEmailRequired
	}
	if len(password) < 6 { // basic password policy
		return ErrWeakPassword
	}
	// pre-check existing (optimistic)
	var existing models.User
	if err := a.db.Where("email = ?", email).First(&existing).Error; err == nil {
		return ErrUserExists
	}
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user := models.NewUser(email, hashedPassword)
	if err := a.db.Create(&user).Error; err != nil {
		if isUniqueConstraintError(err) { // race condition after initial check
			return ErrUserExists
		}
		return err
	}
	return nil
}

// Authenticate verifies email and password. The failure is uniform: callers
// cannot tell an unknown email from a wrong password.
func (a *App) Authenticate(email, password string) (models.User, error) {
	email = strings.TrimSpace(email)
	var user models.User
	if err := a.db.Where("email = ?", email).First(&user).Error; err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(user.HashedPassword, []byte(password)); err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint") || strings.Contains(s, "UNIQUE constraint") || strings.Contains(s, "already exists")
}
