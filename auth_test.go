package main

import (
	"testing"
	"time"

	"github.com/sabbir-mahmud/expense-backend/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthTestApp(t *testing.T) *App {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Expense{}))
	return newApp(Config{JWTSecret: []byte("test-secret"), TokenTTL: time.Hour}, db)
}

func TestRegisterUser(t *testing.T) {
	app := newAuthTestApp(t)

	require.NoError(t, app.RegisterUser("sam@example.com", "secret1"))

	var user models.User
	require.NoError(t, app.db.Where("email = ?", "sam@example.com").First(&user).Error)
	assert.NotEmpty(t, user.ID)
	// only the one-way hash is stored
	assert.NotEqual(t, []byte("secret1"), user.HashedPassword)

	assert.ErrorIs(t, app.RegisterUser("sam@example.com", "secret2"), ErrUserExists)
	assert.ErrorIs(t, app.RegisterUser("new@example.com", "short"), ErrWeakPassword)
	assert.ErrorIs(t, app.RegisterUser("  ", "secret1"), ErrEmailRequired)
}

func TestAuthenticate(t *testing.T) {
	app := newAuthTestApp(t)
	require.NoError(t, app.RegisterUser("sam@example.com", "secret1"))

	user, err := app.Authenticate("sam@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "sam@example.com", user.Email)

	_, wrongPW := app.Authenticate("sam@example.com", "nope123")
	_, unknown := app.Authenticate("ghost@example.com", "secret1")
	assert.ErrorIs(t, wrongPW, ErrInvalidCredentials)
	assert.ErrorIs(t, unknown, ErrInvalidCredentials)
}
