package user

// MockUserRepository keeps users in a slice so the service tests run
// without a database. When Err is set every method fails with it.
type MockUserRepository struct {
	Users []*User
	Err   error
}

func (m *MockUserRepository) createUser(user *User) error {
	if m.Err != nil {
		return m.Err
	}
	for _, existing := range m.Users {
		if existing.Username == user.Username {
			return ErrUsernameAlreadyExists
		}
		if existing.Email == user.Email {
			return ErrEmailAlreadyExists
		}
	}
	m.Users = append(m.Users, user)
	return nil
}

func (m *MockUserRepository) getUserByUsername(username string) (*User, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for _, existing := range m.Users {
		if existing.Username == username {
			return existing, nil
		}
	}
	return nil, ErrUserNotFound
}

func (m *MockUserRepository) getUserByEmail(email string) (*User, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for _, existing := range m.Users {
		if existing.Email == email {
			return existing, nil
		}
	}
	return nil, ErrUserNotFound
}

func (m *MockUserRepository) getUserByID(id string) (*User, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for _, existing := range m.Users {
		if existing.ID == id {
			return existing, nil
		}
	}
	return nil, ErrUserNotFound
}
