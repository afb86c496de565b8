package auth

import (
	"errors"
	"log"
	"net/http"

	"financetracker/internal/user"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInternalError      = errors.New("internal server error")
)

// dummyPasswordHash is compared against when the username is unknown, so a
// login attempt costs the same with or without a matching user.
const dummyPasswordHash = "$2a$12$R9h/cIPz0gi.URNNX3kh2OPST9/PgBkqquzi.Ss7KIUgO2t0jWMUW"

type Service interface {
	Register(username, email, password string) (*user.User, string, error)
	Login(username, password string) (*user.User, string, error)
	JWTAccessTokenMiddleware() func(http.Handler) http.Handler
}

type service struct {
	userService user.Service
	jwtManager  JWTManagerInterface
}

func NewAuthService(userService user.Service, jwtManager JWTManagerInterface) Service {
	return &service{
		userService: userService,
		jwtManager:  jwtManager,
	}
}

func (s *service) Register(username, email, password string) (*user.User, string, error) {
	newUser, err := s.userService.Register(username, email, password)
	if err != nil {
		return nil, "", err
	}

	jwtToken, err := s.jwtManager.GenerateAccessJWT(newUser.Username, newUser.ID, defaultJWTDuration)
	if err != nil {
		log.Println("error during JWT generation:", err)
		return nil, "", ErrInternalError
	}

	return newUser, jwtToken, nil
}

func (s *service) Login(username, password string) (*user.User, string, error) {
	existingUser, err := s.userService.GetUserByUsername(username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			// Unknown username and wrong password must look the same to the
			// caller.
			doPasswordsMatch(dummyPasswordHash, password)
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", ErrInternalError
	}

	if !doPasswordsMatch(existingUser.PasswordHash, password) {
		return nil, "", ErrInvalidCredentials
	}

	jwtToken, err := s.jwtManager.GenerateAccessJWT(existingUser.Username, existingUser.ID, defaultJWTDuration)
	if err != nil {
		log.Println("error during JWT generation:", err)
		return nil, "", ErrInternalError
	}

	return existingUser, jwtToken, nil
}

func doPasswordsMatch(hashedPassword, currPassword string) bool {
	err := bcrypt.CompareHashAndPassword(
		[]byte(hashedPassword), []byte(currPassword))
	return err == nil
}
