package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPINVerifier(t *testing.T) {
	hash, err := HashPIN("2580")
	require.NoError(t, err)

	verifier := NewPINVerifier(hash)

	t.Run("correct pin", func(t *testing.T) {
		assert.NoError(t, verifier.Verify("2580"))
	})

	t.Run("wrong pin", func(t *testing.T) {
		assert.ErrorIs(t, verifier.Verify("0000"), ErrInvalidCredential)
	})

	t.Run("empty pin", func(t *testing.T) {
		assert.ErrorIs(t, verifier.Verify(""), ErrInvalidCredential)
	})
}

func TestTokenManager_IssueAndValidate(t *testing.T) {
	mgr := NewTokenManager("test-secret", time.Hour)
	now := time.Now()

	token, expiresAt, err := mgr.Issue(now)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, now.Add(time.Hour), expiresAt, time.Second)

	assert.NoError(t, mgr.Validate(token))
}

func TestTokenManager_Expired(t *testing.T) {
	mgr := NewTokenManager("test-secret", -time.Minute)

	token, _, err := mgr.Issue(time.Now())
	require.NoError(t, err)

	assert.ErrorIs(t, mgr.Validate(token), ErrInvalidToken)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", time.Hour)
	validator := NewTokenManager("secret-b", time.Hour)

	token, _, err := issuer.Issue(time.Now())
	require.NoError(t, err)

	assert.ErrorIs(t, validator.Validate(token), ErrInvalidToken)
}

func TestTokenManager_Garbage(t *testing.T) {
	mgr := NewTokenManager("test-secret", time.Hour)
	assert.ErrorIs(t, mgr.Validate("not-a-token"), ErrInvalidToken)
}
