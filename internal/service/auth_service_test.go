package service

import (
	"encoding/json"
	"testing"

	"go-wms-backend/internal/model"
	"go-wms-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedUser(t *testing.T, db *gorm.DB, email, password string, active bool) *model.User {
	t.Helper()
	user := &model.User{Email: email, FullName: "Test User", IsActive: active}
	require.NoError(t, user.SetPassword(password))
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestLogin(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(repository.NewUserRepo(db))
	seedUser(t, db, "staff@example.com", "secret123", true)

	resp, err := svc.Login("staff@example.com", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "staff@example.com", resp.User.Email)

	// The bcrypt hash never leaves the server.
	body, err := json.Marshal(resp.User)
	require.NoError(t, err)
	assert.NotContains(t, string(body), resp.User.Password)
}

func TestLoginWrongPassword(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(repository.NewUserRepo(db))
	seedUser(t, db, "staff@example.com", "secret123", true)

	_, err := svc.Login("staff@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(repository.NewUserRepo(db))

	_, err := svc.Login("ghost@example.com", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginInactiveUser(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(repository.NewUserRepo(db))
	seedUser(t, db, "former@example.com", "secret123", false)

	_, err := svc.Login("former@example.com", "secret123")
	assert.ErrorIs(t, err, ErrUserInactive)
}

func TestResetPassword(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(repository.NewUserRepo(db))
	seedUser(t, db, "staff@example.com", "secret123", true)

	require.NoError(t, svc.ResetPassword("staff@example.com", "secret123", "newsecret"))

	_, err := svc.Login("staff@example.com", "secret123")
	assert.Error(t, err)

	resp, err := svc.Login("staff@example.com", "newsecret")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
}

func TestResetPasswordWrongOldPassword(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(repository.NewUserRepo(db))
	seedUser(t, db, "staff@example.com", "secret123", true)

	err := svc.ResetPassword("staff@example.com", "wrong", "newsecret")
	assert.ErrorIs(t, err, ErrWrongPassword)
}
