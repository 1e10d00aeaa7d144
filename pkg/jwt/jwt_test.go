package jwt

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager() *Manager {
	return NewManager("test-secret", "bookgallery", "bookgallery-clients", 30)
}

func TestGenerateAndValidateToken(t *testing.T) {
	m := newTestManager()
	userID := uuid.New()

	token, err := m.GenerateToken(userID, "John", "Doe")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.Sid)
	assert.Equal(t, "JohnDoe", claims.Subject)
	assert.Equal(t, RoleUser, claims.Role)
	assert.NotEmpty(t, claims.ID)
}

func TestTokensCarryUniqueIDs(t *testing.T) {
	m := newTestManager()
	userID := uuid.New()

	first, err := m.GenerateToken(userID, "John", "Doe")
	require.NoError(t, err)
	second, err := m.GenerateToken(userID, "John", "Doe")
	require.NoError(t, err)

	firstClaims, err := m.ValidateToken(first)
	require.NoError(t, err)
	secondClaims, err := m.ValidateToken(second)
	require.NoError(t, err)

	assert.NotEqual(t, firstClaims.ID, secondClaims.ID)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	token, err := newTestManager().GenerateToken(uuid.New(), "John", "Doe")
	require.NoError(t, err)

	other := NewManager("other-secret", "bookgallery", "bookgallery-clients", 30)
	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenRejectsWrongIssuer(t *testing.T) {
	issuedBy := NewManager("test-secret", "someone-else", "bookgallery-clients", 30)
	token, err := issuedBy.GenerateToken(uuid.New(), "John", "Doe")
	require.NoError(t, err)

	_, err = newTestManager().ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenRejectsWrongAudience(t *testing.T) {
	issuedBy := NewManager("test-secret", "bookgallery", "other-audience", 30)
	token, err := issuedBy.GenerateToken(uuid.New(), "John", "Doe")
	require.NoError(t, err)

	_, err = newTestManager().ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	expired := NewManager("test-secret", "bookgallery", "bookgallery-clients", -1)
	token, err := expired.GenerateToken(uuid.New(), "John", "Doe")
	require.NoError(t, err)

	_, err = newTestManager().ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	_, err := newTestManager().ValidateToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
