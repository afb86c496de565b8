package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"financetracker/internal/user"
)

func newTestAuthService() (Service, *mockUserService) {
	mockUsers := newMockUserService()
	return NewAuthService(mockUsers, newTestJWTManager()), mockUsers
}

func TestAuthService_Login(t *testing.T) {
	authService, mockUsers := newTestAuthService()
	mockUsers.addUser("uid-1", "john", "john@example.com", "secret123")

	loggedIn, token, err := authService.Login("john", "secret123")

	assert.NoError(t, err)
	assert.Equal(t, "uid-1", loggedIn.ID)
	assert.NotEmpty(t, token)

	claims, err := newTestJWTManager().ValidateAccessToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "john", claims.Subject)
	assert.Equal(t, "uid-1", claims.UserID)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	authService, mockUsers := newTestAuthService()
	mockUsers.addUser("uid-1", "john", "john@example.com", "secret123")

	loggedIn, token, err := authService.Login("john", "wrong-password")

	assert.Nil(t, loggedIn)
	assert.Empty(t, token)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	authService, _ := newTestAuthService()

	loggedIn, token, err := authService.Login("nobody", "secret123")

	assert.Nil(t, loggedIn)
	assert.Empty(t, token)
	assert.ErrorIs(t, err, ErrInvalidCredentials, "unknown user and wrong password are the same error")
}

func TestAuthService_Register(t *testing.T) {
	authService, mockUsers := newTestAuthService()

	newUser, token, err := authService.Register("john", "john@example.com", "secret123")

	assert.NoError(t, err)
	assert.Equal(t, "john", newUser.Username)
	assert.Contains(t, mockUsers.Users, "john")

	claims, err := newTestJWTManager().ValidateAccessToken(token)
	assert.NoError(t, err)
	assert.Equal(t, newUser.ID, claims.UserID, "registration logs the user straight in")
}

func TestAuthService_Register_ConflictPassesThrough(t *testing.T) {
	authService, mockUsers := newTestAuthService()
	mockUsers.addUser("uid-1", "john", "john@example.com", "secret123")

	newUser, token, err := authService.Register("john", "other@example.com", "secret123")

	assert.Nil(t, newUser)
	assert.Empty(t, token)
	assert.ErrorIs(t, err, user.ErrUsernameAlreadyExists)
}

func TestDoPasswordsMatch(t *testing.T) {
	mockUsers := newMockUserService()
	stored := mockUsers.addUser("uid-1", "john", "john@example.com", "secret123")

	assert.True(t, doPasswordsMatch(stored.PasswordHash, "secret123"))
	assert.False(t, doPasswordsMatch(stored.PasswordHash, "secret124"))
	assert.False(t, doPasswordsMatch("not-a-bcrypt-hash", "secret123"))

	other := mockUsers.addUser("uid-2", "jane", "jane@example.com", "secret123")
	assert.NotEqual(t, stored.PasswordHash, other.PasswordHash, "each hash carries its own salt")
}
