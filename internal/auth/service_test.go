package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-jwt-secret")

func newTestService() (*Service, *memStore, *fakeMailer) {
	store := newMemStore()
	mailer := &fakeMailer{}
	return NewService(store, mailer, testSecret), store, mailer
}

func TestRegister_CreatesUnverifiedAccount(t *testing.T) {
	t.Parallel()
	svc, store, _ := newTestService()
	ctx := context.Background()

	token, err := svc.Register(ctx, "A", "a@x.com", "p1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	user, err := store.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.False(t, user.IsVerified)
	require.Empty(t, user.VerifyOTP)
	require.NotEqual(t, "p1", user.PasswordHash, "password must not be stored in plaintext")
}

func TestRegister_MissingFields(t *testing.T) {
	t.Parallel()
	svc, _, _ := newTestService()
	ctx := context.Background()

	for _, tc := range []struct{ name, email, password string }{
		{"", "a@x.com", "p1"},
		{"A", "", "p1"},
		{"A", "a@x.com", ""},
	} {
		_, err := svc.Register(ctx, tc.name, tc.email, tc.password)
		require.ErrorIs(t, err, ErrMissingFields)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()
	svc, store, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, "A", "a@x.com", "p1")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "B", "a@x.com", "p2")
	require.ErrorIs(t, err, ErrAccountExists)
	require.Equal(t, 1, store.count(), "account count must be unchanged")
}

func TestLogin(t *testing.T) {
	t.Parallel()
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, "A", "a@x.com", "p1")
	require.NoError(t, err)

	_, err = svc.Login(ctx, "", "p1")
	require.ErrorIs(t, err, ErrMissingFields)

	_, err = svc.Login(ctx, "nobody@x.com", "p1")
	require.ErrorIs(t, err, ErrInvalidEmail)

	_, err = svc.Login(ctx, "a@x.com", "wrong")
	require.ErrorIs(t, err, ErrInvalidPassword)

	token, err := svc.Login(ctx, "a@x.com", "p1")
	require.NoError(t, err)
	require.NotEmpty(t, token)
}

func TestRegisterAndLoginTokens_SameAccountID(t *testing.T) {
	t.Parallel()
	svc, _, _ := newTestService()
	ctx := context.Background()

	regToken, err := svc.Register(ctx, "A", "a@x.com", "p1")
	require.NoError(t, err)
	loginToken, err := svc.Login(ctx, "a@x.com", "p1")
	require.NoError(t, err)

	regID, err := ParseToken(regToken, testSecret)
	require.NoError(t, err)
	loginID, err := ParseToken(loginToken, testSecret)
	require.NoError(t, err)
	require.Equal(t, regID, loginID)
}

func TestAuthenticate_RoundTrip(t *testing.T) {
	t.Parallel()
	svc, _, _ := newTestService()
	ctx := context.Background()

	token, err := svc.Register(ctx, "A", "a@x.com", "p1")
	require.NoError(t, err)

	id, err := svc.Authenticate(token)
	require.NoError(t, err)

	profile, err := svc.UserData(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "A", profile.Name)
	require.False(t, profile.IsVerified)

	_, err = svc.Authenticate("garbage")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestUserData_UnknownAccount(t *testing.T) {
	t.Parallel()
	svc, _, _ := newTestService()

	_, err := svc.UserData(context.Background(), "0123456789abcdef01234567")
	require.ErrorIs(t, err, ErrAccountNotFound)
}

// setClock pins the service clock to a fixed instant.
func setClock(svc *Service, at time.Time) {
	svc.now = func() time.Time { return at }
}
