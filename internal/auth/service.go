package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"mailauth/internal/models"
)

// Store is the persistence surface the service needs. The Mongo-backed
// implementation lives in internal/store; tests use an in-memory fake.
type Store interface {
	Insert(ctx context.Context, user *models.User) (string, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	SetVerifyOTP(ctx context.Context, id, code string, expiresAt int64) error
	ClearVerifyOTP(ctx context.Context, id string) error
	MarkVerified(ctx context.Context, id string) error
	SetResetOTP(ctx context.Context, id, code string, expiresAt int64) error
	ClearResetOTP(ctx context.Context, id string) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
}

// Sender delivers notification emails.
type Sender interface {
	Send(to, subject, body string) error
}

// Service implements the credential and verification lifecycle over an
// injected store and mail sender.
type Service struct {
	store     Store
	mailer    Sender
	jwtSecret []byte
	now       func() time.Time
}

// NewService constructs a Service. The JWT secret signs session tokens.
func NewService(store Store, mailer Sender, jwtSecret []byte) *Service {
	return &Service{
		store:     store,
		mailer:    mailer,
		jwtSecret: jwtSecret,
		now:       time.Now,
	}
}

// hashPassword computes a salted bcrypt hash of the password.
func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %v", err)
	}
	return string(hash), nil
}

// Register creates an unverified account with a bcrypt-hashed password and
// returns a session token for it.
func (s *Service) Register(ctx context.Context, name, email, password string) (string, error) {
	if name == "" || email == "" || password == "" {
		return "", ErrMissingFields
	}

	hash, err := hashPassword(password)
	if err != nil {
		return "", err
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}
	id, err := s.store.Insert(ctx, user)
	if err != nil {
		return "", err
	}
	return GenerateToken(id, s.jwtSecret, TokenTTL)
}

// Login verifies the credentials and returns a session token of the same
// shape registration issues.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", ErrMissingFields
	}

	user, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return "", ErrInvalidEmail
		}
		return "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidPassword
	}
	return GenerateToken(user.ID.Hex(), s.jwtSecret, TokenTTL)
}

// Authenticate validates a session token and returns the account id it
// was issued for.
func (s *Service) Authenticate(token string) (string, error) {
	return ParseToken(token, s.jwtSecret)
}

// Profile is the subset of the account exposed to the frontend.
type Profile struct {
	Name       string `json:"name"`
	IsVerified bool   `json:"isVerified"`
}

// UserData returns the profile for the given account id.
func (s *Service) UserData(ctx context.Context, id string) (*Profile, error) {
	user, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &Profile{Name: user.Name, IsVerified: user.IsVerified}, nil
}
