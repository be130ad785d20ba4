package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	v := NewVerifier([]byte("test-secret"))

	token, err := v.Issue("lifeline|abc123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	identity, err := v.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "lifeline|abc123", identity.TokenIdentifier)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	issuer := NewVerifier([]byte("secret-a"))
	verifier := NewVerifier([]byte("secret-b"))

	token, err := issuer.Issue("lifeline|abc123")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.Error(t, err)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	v := NewVerifier([]byte("test-secret"))

	_, err := v.Verify("not-a-token")
	assert.Error(t, err)
}

func TestVerifyRejectsExpired(t *testing.T) {
	v := &Verifier{secret: []byte("test-secret"), ttl: -time.Minute}

	token, err := v.Issue("lifeline|abc123")
	require.NoError(t, err)

	_, err = v.Verify(token)
	assert.Error(t, err)
}

func TestMissingSecret(t *testing.T) {
	v := NewVerifier(nil)

	_, err := v.Issue("lifeline|abc123")
	assert.Error(t, err)

	_, err = v.Verify("whatever")
	assert.Error(t, err)
}

func TestVerifyRejectsEmptyIdentity(t *testing.T) {
	v := NewVerifier([]byte("test-secret"))

	token, err := v.Issue("")
	require.NoError(t, err)

	_, err = v.Verify(token)
	assert.Error(t, err)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("hunter2hunter2")
	require.NoError(t, err)

	assert.True(t, CheckPasswordHash("hunter2hunter2", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}
