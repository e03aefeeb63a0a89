package store

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"mailauth/internal/auth"
	"mailauth/internal/models"
)

// MemoryStore is an in-memory auth.Store used for local development and
// tests that do not need a running MongoDB.
type MemoryStore struct {
	users map[string]models.User
	mu    sync.RWMutex
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users: make(map[string]models.User),
	}
}

func (s *MemoryStore) Insert(ctx context.Context, user *models.User) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == user.Email {
			return "", auth.ErrAccountExists
		}
	}
	u := *user
	u.ID = primitive.NewObjectID()
	s.users[u.ID.Hex()] = u
	return u.ID.Hex(), nil
}

func (s *MemoryStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			copied := u
			return &copied, nil
		}
	}
	return nil, auth.ErrAccountNotFound
}

func (s *MemoryStore) FindByID(ctx context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, auth.ErrAccountNotFound
	}
	copied := u
	return &copied, nil
}

func (s *MemoryStore) SetVerifyOTP(ctx context.Context, id, code string, expiresAt int64) error {
	return s.mutate(id, func(u *models.User) {
		u.VerifyOTP = code
		u.VerifyOTPExpires = expiresAt
	})
}

func (s *MemoryStore) ClearVerifyOTP(ctx context.Context, id string) error {
	return s.mutate(id, func(u *models.User) {
		u.VerifyOTP = ""
		u.VerifyOTPExpires = 0
	})
}

func (s *MemoryStore) MarkVerified(ctx context.Context, id string) error {
	return s.mutate(id, func(u *models.User) {
		u.IsVerified = true
		u.VerifyOTP = ""
		u.VerifyOTPExpires = 0
	})
}

func (s *MemoryStore) SetResetOTP(ctx context.Context, id, code string, expiresAt int64) error {
	return s.mutate(id, func(u *models.User) {
		u.ResetOTP = code
		u.ResetOTPExpires = expiresAt
	})
}

func (s *MemoryStore) ClearResetOTP(ctx context.Context, id string) error {
	return s.mutate(id, func(u *models.User) {
		u.ResetOTP = ""
		u.ResetOTPExpires = 0
	})
}

func (s *MemoryStore) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	return s.mutate(id, func(u *models.User) {
		u.PasswordHash = passwordHash
		u.ResetOTP = ""
		u.ResetOTPExpires = 0
	})
}

func (s *MemoryStore) mutate(id string, fn func(*models.User)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return auth.ErrAccountNotFound
	}
	fn(&u)
	s.users[id] = u
	return nil
}
