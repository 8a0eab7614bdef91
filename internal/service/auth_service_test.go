package service

import (
	"context"
	"testing"

	"github.com/Tiri0n/abkhazia-tax-service/internal/repository"

	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func registerReq(username, taxID string) RegisterRequest {
	return RegisterRequest{
		Username:  username,
		Password:  "secret123",
		Email:     username + "@example.com",
		FirstName: "Test",
		LastName:  "User",
		TaxID:     taxID,
	}
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := repository.NewMemoryStore()
	svc := NewAuthService(store.Users(), store.Tokens(), testSecret)

	tokens, err := svc.Register(ctx, registerReq("alice", "TID-1"))
	require.NoError(t, err)
	require.NotEmpty(t, tokens.Token)
	require.NotEmpty(t, tokens.RefreshToken)
	require.Equal(t, int64(1), tokens.User.ID)
	require.NotEqual(t, "secret123", tokens.User.Password, "password must be hashed")

	loggedIn, err := svc.Login(ctx, LoginRequest{Username: "alice", Password: "secret123"})
	require.NoError(t, err)
	require.Equal(t, tokens.User.ID, loggedIn.User.ID)

	_, err = svc.Login(ctx, LoginRequest{Username: "alice", Password: "wrongpass"})
	require.Error(t, err)
}

func TestAuthService_DuplicateUsernameAndTaxID(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := repository.NewMemoryStore()
	svc := NewAuthService(store.Users(), store.Tokens(), testSecret)

	_, err := svc.Register(ctx, registerReq("alice", "TID-1"))
	require.NoError(t, err)

	_, err = svc.Register(ctx, registerReq("alice", "TID-2"))
	require.EqualError(t, err, "username already exists")

	_, err = svc.Register(ctx, registerReq("bob", "TID-1"))
	require.EqualError(t, err, "tax id already registered")
}

func TestAuthService_RefreshRotatesToken(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := repository.NewMemoryStore()
	svc := NewAuthService(store.Users(), store.Tokens(), testSecret)

	tokens, err := svc.Register(ctx, registerReq("alice", "TID-1"))
	require.NoError(t, err)

	rotated, err := svc.Refresh(ctx, tokens.RefreshToken)
	require.NoError(t, err)
	require.NotEqual(t, tokens.RefreshToken, rotated.RefreshToken)

	// the old refresh token is revoked
	_, err = svc.Refresh(ctx, tokens.RefreshToken)
	require.Error(t, err)
}

func TestAuthService_LogoutRevokesToken(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := repository.NewMemoryStore()
	svc := NewAuthService(store.Users(), store.Tokens(), testSecret)

	tokens, err := svc.Register(ctx, registerReq("alice", "TID-1"))
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, tokens.RefreshToken))
	_, err = svc.Refresh(ctx, tokens.RefreshToken)
	require.Error(t, err)
}

func TestAuthService_UpdateProfile(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := repository.NewMemoryStore()
	svc := NewAuthService(store.Users(), store.Tokens(), testSecret)

	tokens, err := svc.Register(ctx, registerReq("alice", "TID-1"))
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(ctx, tokens.User.ID, UpdateProfileRequest{
		Email: "new@example.com",
		Phone: "+7 840 123 45 67",
	})
	require.NoError(t, err)
	require.Equal(t, "new@example.com", updated.Email)
	require.Equal(t, "+7 840 123 45 67", updated.Phone)
	// untouched fields survive the merge
	require.Equal(t, "Test", updated.FirstName)

	_, err = svc.UpdateProfile(ctx, 999, UpdateProfileRequest{Email: "x@example.com"})
	require.Error(t, err)
}
