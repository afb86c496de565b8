package auth

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"financetracker/internal/user"
)

// mockUserService is an in-memory user.Service for the auth tests. It
// mirrors the registration rules of the real service closely enough for
// the handler paths to be exercised.
type mockUserService struct {
	Users map[string]*user.User // keyed by username
	Err   error
}

func newMockUserService() *mockUserService {
	return &mockUserService{Users: make(map[string]*user.User)}
}

func (m *mockUserService) addUser(id, username, email, password string) *user.User {
	// MinCost keeps the tests fast; the cost factor is not under test here.
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	newUser := &user.User{
		ID:           id,
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	}
	m.Users[username] = newUser
	return newUser
}

func (m *mockUserService) Register(username, email, password string) (*user.User, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if !strings.Contains(email, "@") {
		return nil, user.ErrInvalidEmail
	}
	if len(username) < 3 || len(username) > 30 {
		return nil, user.ErrUsernameLength
	}
	if len(password) < 6 {
		return nil, user.ErrPasswordLength
	}
	if _, exists := m.Users[username]; exists {
		return nil, user.ErrUsernameAlreadyExists
	}
	for _, existing := range m.Users {
		if existing.Email == email {
			return nil, user.ErrEmailAlreadyExists
		}
	}
	return m.addUser("id-"+username, username, email, password), nil
}

func (m *mockUserService) GetUserByUsername(username string) (*user.User, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	existing, ok := m.Users[username]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return existing, nil
}

func (m *mockUserService) GetUserByID(userID string) (*user.User, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for _, existing := range m.Users {
		if existing.ID == userID {
			return existing, nil
		}
	}
	return nil, user.ErrUserNotFound
}
