package auth

import (
	"context"
	"errors"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"mailauth/internal/models"
)

// memStore is an in-memory Store used by the service tests.
type memStore struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func newMemStore() *memStore {
	return &memStore{users: make(map[string]*models.User)}
}

func (m *memStore) Insert(ctx context.Context, user *models.User) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == user.Email {
			return "", ErrAccountExists
		}
	}
	u := *user
	u.ID = primitive.NewObjectID()
	m.users[u.ID.Hex()] = &u
	return u.ID.Hex(), nil
}

func (m *memStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, ErrAccountNotFound
}

func (m *memStore) FindByID(ctx context.Context, id string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, ErrAccountNotFound
	}
	copied := *u
	return &copied, nil
}

func (m *memStore) SetVerifyOTP(ctx context.Context, id, code string, expiresAt int64) error {
	return m.mutate(id, func(u *models.User) {
		u.VerifyOTP = code
		u.VerifyOTPExpires = expiresAt
	})
}

func (m *memStore) ClearVerifyOTP(ctx context.Context, id string) error {
	return m.mutate(id, func(u *models.User) {
		u.VerifyOTP = ""
		u.VerifyOTPExpires = 0
	})
}

func (m *memStore) MarkVerified(ctx context.Context, id string) error {
	return m.mutate(id, func(u *models.User) {
		u.IsVerified = true
		u.VerifyOTP = ""
		u.VerifyOTPExpires = 0
	})
}

func (m *memStore) SetResetOTP(ctx context.Context, id, code string, expiresAt int64) error {
	return m.mutate(id, func(u *models.User) {
		u.ResetOTP = code
		u.ResetOTPExpires = expiresAt
	})
}

func (m *memStore) ClearResetOTP(ctx context.Context, id string) error {
	return m.mutate(id, func(u *models.User) {
		u.ResetOTP = ""
		u.ResetOTPExpires = 0
	})
}

func (m *memStore) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	return m.mutate(id, func(u *models.User) {
		u.PasswordHash = passwordHash
		u.ResetOTP = ""
		u.ResetOTPExpires = 0
	})
}

func (m *memStore) mutate(id string, fn func(*models.User)) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return ErrAccountNotFound
	}
	fn(u)
	return nil
}

func (m *memStore) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.users)
}

// fakeMailer records sent messages and optionally fails every send.
type fakeMailer struct {
	mu   sync.Mutex
	sent []sentMail
	fail bool
}

type sentMail struct {
	to, subject, body string
}

func (f *fakeMailer) Send(to, subject, body string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errors.New("smtp unreachable")
	}
	f.sent = append(f.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}
