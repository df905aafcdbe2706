package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenGenerateAndParse(t *testing.T) {
	tm := NewTokenManager(TokenConfig{
		SecretKey: "test-secret",
		Expiry:    time.Hour,
	})

	token, err := tm.Generate(42, "alice", "127.0.0.1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	entity, err := tm.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), entity.UID)
	assert.Equal(t, "alice", entity.Nickname)
	assert.Equal(t, "127.0.0.1", entity.IP)
	assert.Equal(t, DefaultTokenIssuer, entity.Issuer)
}

func TestTokenParseWithWrongKey(t *testing.T) {
	tm := NewTokenManager(TokenConfig{SecretKey: "key-a"})

	token, err := tm.Generate(1, "bob", "")
	require.NoError(t, err)

	_, err = ParseTokenWithKey(token, "key-b")
	assert.Error(t, err)
}

func TestTokenExpired(t *testing.T) {
	tm := NewTokenManager(TokenConfig{
		SecretKey: "test-secret",
		Expiry:    -time.Minute,
	})

	token, err := tm.Generate(1, "carol", "")
	require.NoError(t, err)

	err = tm.Validate(token)
	assert.Error(t, err)
}
