package user

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestUserService_Register(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := NewUserService(mockRepo)

	newUser, err := service.Register("john", "john@example.com", "secret123")

	assert.NoError(t, err)
	assert.NotEmpty(t, newUser.ID)
	assert.Equal(t, "john", newUser.Username)
	assert.Equal(t, "john@example.com", newUser.Email)
	assert.NotEqual(t, "secret123", newUser.PasswordHash, "the plaintext password is never stored")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(newUser.PasswordHash), []byte("secret123")))
	assert.Len(t, mockRepo.Users, 1)
}

func TestUserService_Register_GeneratesDistinctIDs(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := NewUserService(mockRepo)

	first, err := service.Register("john", "john@example.com", "secret123")
	assert.NoError(t, err)
	second, err := service.Register("jane", "jane@example.com", "secret123")
	assert.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestUserService_Register_InvalidEmail(t *testing.T) {
	service := NewUserService(&MockUserRepository{})

	for _, email := range []string{"", "plainstring", "missing-at.example.com", "@no-local-part.com"} {
		_, err := service.Register("john", email, "secret123")
		assert.ErrorIs(t, err, ErrInvalidEmail, "email %q should be rejected", email)
	}
}

func TestUserService_Register_UsernameLength(t *testing.T) {
	service := NewUserService(&MockUserRepository{})

	_, err := service.Register("jo", "john@example.com", "secret123")
	assert.ErrorIs(t, err, ErrUsernameLength)

	_, err = service.Register(strings.Repeat("a", 31), "john@example.com", "secret123")
	assert.ErrorIs(t, err, ErrUsernameLength)

	_, err = service.Register(strings.Repeat("a", 30), "john@example.com", "secret123")
	assert.NoError(t, err, "thirty characters is still acceptable")
}

func TestUserService_Register_ShortPassword(t *testing.T) {
	service := NewUserService(&MockUserRepository{})

	_, err := service.Register("john", "john@example.com", "12345")
	assert.ErrorIs(t, err, ErrPasswordLength)
}

func TestUserService_Register_DuplicateUsername(t *testing.T) {
	mockRepo := &MockUserRepository{
		Users: []*User{{ID: "uid-1", Username: "john", Email: "john@example.com"}},
	}
	service := NewUserService(mockRepo)

	_, err := service.Register("john", "new@example.com", "secret123")

	assert.ErrorIs(t, err, ErrUsernameAlreadyExists)
	assert.Len(t, mockRepo.Users, 1)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	mockRepo := &MockUserRepository{
		Users: []*User{{ID: "uid-1", Username: "john", Email: "john@example.com"}},
	}
	service := NewUserService(mockRepo)

	_, err := service.Register("johnny", "john@example.com", "secret123")

	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestUserService_GetUserByUsername(t *testing.T) {
	mockRepo := &MockUserRepository{
		Users: []*User{{ID: "uid-1", Username: "john", Email: "john@example.com"}},
	}
	service := NewUserService(mockRepo)

	found, err := service.GetUserByUsername("john")
	assert.NoError(t, err)
	assert.Equal(t, "uid-1", found.ID)

	_, err = service.GetUserByUsername("nobody")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserService_GetUserByID(t *testing.T) {
	mockRepo := &MockUserRepository{
		Users: []*User{{ID: "uid-1", Username: "john", Email: "john@example.com"}},
	}
	service := NewUserService(mockRepo)

	found, err := service.GetUserByID("uid-1")
	assert.NoError(t, err)
	assert.Equal(t, "john", found.Username)

	_, err = service.GetUserByID("uid-ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	first, err := hashPassword("secret123")
	assert.NoError(t, err)
	second, err := hashPassword("secret123")
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(first), []byte("secret123")))
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(second), []byte("secret123")))
}
