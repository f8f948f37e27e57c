package auth

import (
	"crypto/subtle"
	"errors"
	"os"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrWrongPassword = errors.New("wrong password")
)

// Subject stamped into every issued token. The planner is shared by one
// household, so there is a single editor identity rather than user accounts.
const EditorSubject = "editor"

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Login checks the shared household password and issues a bearer token.
// MEAL_PASSWORD_HASH (bcrypt) takes precedence over the plain MEAL_PASSWORD.
func (s *Service) Login(password string) (string, error) {
	if password == "" {
		return "", ErrWrongPassword
	}

	if hash := os.Getenv("MEAL_PASSWORD_HASH"); hash != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
			return "", ErrWrongPassword
		}
		return GenerateToken(EditorSubject)
	}

	expected := os.Getenv("MEAL_PASSWORD")
	if expected == "" {
		return "", errors.New("MEAL_PASSWORD not set")
	}
	if subtle.ConstantTimeCompare([]byte(password), []byte(expected)) != 1 {
		return "", ErrWrongPassword
	}

	return GenerateToken(EditorSubject)
}
