package usecases

import (
	"errors"
	"strings"
	"time"
	"tracker-server/entities"
	"tracker-server/repositories"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const tokenTTL = 24 * time.Hour

type AuthUseCase struct {
	Users  repositories.UserRepository
	secret []byte
}

func NewAuthUseCase(users repositories.UserRepository, secret []byte) *AuthUseCase {
	return &AuthUseCase{Users: users, secret: secret}
}

// Register creates a new account. The email is matched and stored
// lowercase, so a case-variant duplicate still collides.
func (uc *AuthUseCase) Register(name, email, password string) (*entities.User, error) {
	if name == "" || email == "" || password == "" {
		return nil, ErrMissingFields
	}

	_, err := uc.Users.GetByEmail(email)
	if err == nil {
		return nil, ErrUserExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := uc.Users.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies credentials and issues a signed token carrying the user
// id, valid for a day.
func (uc *AuthUseCase) Login(email, password string) (*entities.User, string, error) {
	user, err := uc.Users.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrUserNotFound
		}
		return nil, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrIncorrectPassword
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  user.ID,
		"exp": time.Now().Add(tokenTTL).Unix(),
	})
	signed, err := token.SignedString(uc.secret)
	if err != nil {
		return nil, "", err
	}

	return user, signed, nil
}
