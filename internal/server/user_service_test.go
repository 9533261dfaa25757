package server

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillvize/skillvize/internal/config"
	"github.com/skillvize/skillvize/internal/db"
	"github.com/skillvize/skillvize/internal/types"
)

type fakeUserStore struct {
	users map[uuid.UUID]*db.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[uuid.UUID]*db.User)}
}

func (f *fakeUserStore) CheckEmailExists(_ context.Context, email string) (bool, error) {
	for _, u := range f.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserStore) CreateUser(_ context.Context, name, email, passwordHash string) (uuid.UUID, error) {
	id := uuid.New()
	f.users[id] = &db.User{
		ID:           id,
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	return id, nil
}

func (f *fakeUserStore) GetUser(_ context.Context, id uuid.UUID) (*db.User, error) {
	return f.users[id], nil
}

func (f *fakeUserStore) GetUserByEmail(_ context.Context, email string) (*db.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func testUserService() (*UserService, *fakeUserStore) {
	store := newFakeUserStore()
	// Minimum cost keeps the bcrypt work factor out of the test runtime.
	return NewUserService(store, &config.PasswordConfig{BcryptCost: 4}), store
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := testUserService()
	ctx := context.Background()

	user, err := svc.Register(ctx, &types.RegisterRequest{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "correct horse battery",
	})
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.NotEqual(t, uuid.Nil, user.ID)

	loggedIn, err := svc.Login(ctx, &types.LoginRequest{
		Email:    "ada@example.com",
		Password: "correct horse battery",
	})
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := testUserService()
	ctx := context.Background()

	req := &types.RegisterRequest{Name: "Ada", Email: "ada@example.com", Password: "password1"}
	_, err := svc.Register(ctx, req)
	require.NoError(t, err)

	_, err = svc.Register(ctx, req)
	var dup *ErrEmailAlreadyExists
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "ada@example.com", dup.Email)
}

func TestLoginBadCredentials(t *testing.T) {
	svc, _ := testUserService()
	ctx := context.Background()

	_, err := svc.Register(ctx, &types.RegisterRequest{
		Name: "Ada", Email: "ada@example.com", Password: "password1",
	})
	require.NoError(t, err)

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, &types.LoginRequest{Email: "ada@example.com", Password: "wrong"})
		var bad *ErrInvalidCredentials
		assert.ErrorAs(t, err, &bad)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(ctx, &types.LoginRequest{Email: "nobody@example.com", Password: "password1"})
		var bad *ErrInvalidCredentials
		assert.ErrorAs(t, err, &bad)
	})
}

func TestRegisterNeverStoresPlaintext(t *testing.T) {
	svc, store := testUserService()

	user, err := svc.Register(context.Background(), &types.RegisterRequest{
		Name: "Ada", Email: "ada@example.com", Password: "password1",
	})
	require.NoError(t, err)

	stored := store.users[user.ID]
	require.NotNil(t, stored)
	assert.NotEqual(t, "password1", stored.PasswordHash)
	assert.NotContains(t, stored.PasswordHash, "password1")
}
