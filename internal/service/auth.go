package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"MOVIELIST_BACK-END/internal/config"
	"MOVIELIST_BACK-END/internal/dto"
	"MOVIELIST_BACK-END/internal/middleware"
	"MOVIELIST_BACK-END/internal/models"
	"MOVIELIST_BACK-END/internal/store"
)

const passwordHashCost = 10

// Compared against when the email is unknown, so both login failure paths
// cost roughly the same and timing does not reveal account existence.
var dummyPasswordHash = func() []byte {
	h, err := bcrypt.GenerateFromPassword([]byte("not-a-real-password"), passwordHashCost)
	if err != nil {
		panic(err)
	}
	return h
}()

// UserStore is the persistence surface AuthService needs
type UserStore interface {
	Insert(ctx context.Context, u *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// AuthService owns registration and login
type AuthService struct {
	users UserStore
	jwt   *config.JWTConfig
}

// NewAuthService creates a new AuthService
func NewAuthService(users UserStore, jwtCfg *config.JWTConfig) *AuthService {
	return &AuthService{users: users, jwt: jwtCfg}
}

// Register creates a new account. The plaintext password is hashed and
// discarded; the returned user carries only the hash, which the model keeps
// out of JSON.
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (*models.User, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if err := validateRegistration(name, email, req.Password); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), passwordHashCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &models.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.Insert(ctx, user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, ErrConflict
		}
		return nil, err
	}

	log.Printf("User registered: %s", user.Email)
	return user, nil
}

// Login verifies the credentials and issues a signed token carrying the user
// id and display name. Unknown email and wrong password are indistinguishable
// to the caller.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (string, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return "", fmt.Errorf("%w: email and password are required", ErrValidation)
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Burn a comparison anyway, then fail the same way as a bad
			// password.
			_ = bcrypt.CompareHashAndPassword(dummyPasswordHash, []byte(req.Password))
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return "", ErrInvalidCredentials
	}

	if s.jwt.Secret == "" {
		return "", ErrNoSigningSecret
	}

	token, err := middleware.GenerateToken(user.ID, user.Name, s.jwt)
	if err != nil {
		return "", err
	}

	log.Printf("Login successful: %s", user.Email)
	return token, nil
}
