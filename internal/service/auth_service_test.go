package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/linkarray/link-service/internal/config"
	"github.com/linkarray/link-service/internal/domain"
	apperrors "github.com/linkarray/link-service/pkg/util"
)

func testConfig() config.Config {
	return config.Config{
		Auth: config.AuthConfig{
			JWTSecret:       "test-secret",
			TokenTTLMinutes: 60,
			BcryptCost:      4, // keep tests fast
		},
	}
}

func TestAuthService_SignupIssuesToken(t *testing.T) {
	users := newFakeUserRepo()
	s := NewAuthService(testConfig(), users)

	user, token, exp, err := s.Signup(context.Background(), "Alice", "alice", "alice@example.com", "p4ssw0rd!")
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)
	require.Equal(t, domain.RoleUser, user.Role)
	require.NotEmpty(t, token)
	require.False(t, exp.IsZero())

	// Token round-trips to the new account's ID.
	id, err := s.TokenManager().Verify(token)
	require.NoError(t, err)
	require.Equal(t, user.ID, id)

	// Password is stored hashed, never verbatim.
	require.NotEqual(t, "p4ssw0rd!", user.PasswordHash)
}

func TestAuthService_SignupDuplicateEmail(t *testing.T) {
	users := newFakeUserRepo()
	s := NewAuthService(testConfig(), users)

	_, _, _, err := s.Signup(context.Background(), "Alice", "alice", "alice@example.com", "p4ssw0rd!")
	require.NoError(t, err)

	_, _, _, err = s.Signup(context.Background(), "Bob", "bob", "alice@example.com", "p4ssw0rd!")
	require.Error(t, err)
	require.Equal(t, "CONFLICT", apperrors.ToDomainError(err).Code)
}

func TestAuthService_SignupDuplicateUsername(t *testing.T) {
	users := newFakeUserRepo()
	s := NewAuthService(testConfig(), users)

	_, _, _, err := s.Signup(context.Background(), "Alice", "alice", "alice@example.com", "p4ssw0rd!")
	require.NoError(t, err)

	_, _, _, err = s.Signup(context.Background(), "Also Alice", "alice", "other@example.com", "p4ssw0rd!")
	require.Error(t, err)
	require.Equal(t, "CONFLICT", apperrors.ToDomainError(err).Code)
}

func TestAuthService_Login(t *testing.T) {
	users := newFakeUserRepo()
	s := NewAuthService(testConfig(), users)

	created, _, _, err := s.Signup(context.Background(), "Alice", "alice", "alice@example.com", "p4ssw0rd!")
	require.NoError(t, err)

	user, token, _, err := s.Login(context.Background(), "alice@example.com", "p4ssw0rd!")
	require.NoError(t, err)
	require.Equal(t, created.ID, user.ID)
	require.NotEmpty(t, token)
}

func TestAuthService_LoginBadCredentials(t *testing.T) {
	users := newFakeUserRepo()
	s := NewAuthService(testConfig(), users)

	_, _, _, err := s.Signup(context.Background(), "Alice", "alice", "alice@example.com", "p4ssw0rd!")
	require.NoError(t, err)

	_, _, _, err = s.Login(context.Background(), "alice@example.com", "wrong")
	require.Error(t, err)
	require.Equal(t, "UNAUTHENTICATED", apperrors.ToDomainError(err).Code)

	// Unknown email is reported the same way as a wrong password.
	_, _, _, err = s.Login(context.Background(), "nobody@example.com", "p4ssw0rd!")
	require.Error(t, err)
	require.Equal(t, "UNAUTHENTICATED", apperrors.ToDomainError(err).Code)
}
