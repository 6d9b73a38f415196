package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignUpAndSignIn(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, "test-secret")

	token, err := svc.SignUp("yui@example.com", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	userID, err := svc.ValidateToken(token)
	require.NoError(t, err)

	token2, err := svc.SignIn("yui@example.com", "password123")
	require.NoError(t, err)

	userID2, err := svc.ValidateToken(token2)
	require.NoError(t, err)
	assert.Equal(t, userID, userID2)
}

func TestSignUpDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, "test-secret")

	_, err := svc.SignUp("ren@example.com", "password123")
	require.NoError(t, err)

	_, err = svc.SignUp("ren@example.com", "different")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestSignInWrongPassword(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, "test-secret")

	_, err := svc.SignUp("mao@example.com", "password123")
	require.NoError(t, err)

	_, err = svc.SignIn("mao@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.SignIn("nobody@example.com", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateTokenRejectsForgedToken(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, "test-secret")
	forger := NewAuthService(db, "other-secret")

	token, err := forger.SignUp("sora@example.com", "password123")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)

	_, err = svc.ValidateToken("not-a-token")
	assert.Error(t, err)
}
