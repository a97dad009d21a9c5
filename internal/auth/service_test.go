package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupService(t *testing.T) *Service {
	t.Helper()
	s, err := NewService([]byte("test-secret"), time.Hour)
	require.NoError(t, err)
	return s
}

func TestService_Login_Admin(t *testing.T) {
	s := setupService(t)

	token, user, err := s.Login("admin@exemplo.com", "admin123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.True(t, user.IsAdmin)
	assert.Equal(t, "Administrador", user.Name)
}

func TestService_Login_RegularUser(t *testing.T) {
	s := setupService(t)

	_, user, err := s.Login("usuario@exemplo.com", "user123")
	require.NoError(t, err)
	assert.False(t, user.IsAdmin)
}

func TestService_Login_WrongPassword(t *testing.T) {
	s := setupService(t)

	_, _, err := s.Login("admin@exemplo.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login_UnknownEmail(t *testing.T) {
	s := setupService(t)

	_, _, err := s.Login("nobody@exemplo.com", "admin123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_VerifyToken_RoundTrip(t *testing.T) {
	s := setupService(t)

	token, user, err := s.Login("admin@exemplo.com", "admin123")
	require.NoError(t, err)

	got, err := s.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestService_VerifyToken_Garbage(t *testing.T) {
	s := setupService(t)

	_, err := s.VerifyToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestService_VerifyToken_WrongSecret(t *testing.T) {
	s := setupService(t)
	other, err := NewService([]byte("other-secret"), time.Hour)
	require.NoError(t, err)

	token, _, err := s.Login("admin@exemplo.com", "admin123")
	require.NoError(t, err)

	_, err = other.VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestService_VerifyToken_Expired(t *testing.T) {
	s, err := NewService([]byte("test-secret"), -time.Minute)
	require.NoError(t, err)

	token, _, err := s.Login("admin@exemplo.com", "admin123")
	require.NoError(t, err)

	_, err = s.VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
