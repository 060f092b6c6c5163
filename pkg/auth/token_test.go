package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func TestIssueAndVerify(t *testing.T) {
	now := time.Now()

	token, err := Issue(42, testSecret, now)
	require.NoError(t, err)

	userID, err := Verify(token, testSecret, now)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestVerifyExpirationBoundary(t *testing.T) {
	issuedAt := time.Now()

	token, err := Issue(42, testSecret, issuedAt)
	require.NoError(t, err)

	// still valid one minute before expiry
	userID, err := Verify(token, testSecret, issuedAt.Add(59*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)

	// rejected one minute after expiry
	_, err = Verify(token, testSecret, issuedAt.Add(61*time.Minute))
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyGarbageToken(t *testing.T) {
	now := time.Now()

	for _, tokenStr := range []string{
		"",
		"not-a-token",
		"aaaa.bbbb.cccc",
	} {
		_, err := Verify(tokenStr, testSecret, now)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q should be rejected", tokenStr)
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	now := time.Now()

	token, err := Issue(42, testSecret, now)
	require.NoError(t, err)

	_, err = Verify(token, []byte("another-secret"), now)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyEmptySecret(t *testing.T) {
	now := time.Now()

	token, err := Issue(42, testSecret, now)
	require.NoError(t, err)

	_, err = Verify(token, nil, now)
	require.Error(t, err)
}
