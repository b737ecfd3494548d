package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginPasswordHash(t *testing.T) {
	hash, err := LoginPasswordHash("hunter2")
	require.NoError(t, err)

	assert.NotEqual(t, "hunter2", hash)
	assert.True(t, PasswordMatches("hunter2", hash))
	assert.False(t, PasswordMatches("hunter3", hash))
}

func TestLoginPasswordHash_KeepsBcryptHash(t *testing.T) {
	hash, err := LoginPasswordHash("hunter2")
	require.NoError(t, err)

	again, err := LoginPasswordHash(hash)
	require.NoError(t, err)
	assert.Equal(t, hash, again)
}

func TestLoginPasswordHash_Empty(t *testing.T) {
	hash, err := LoginPasswordHash("")
	require.NoError(t, err)
	assert.Empty(t, hash)
	assert.False(t, PasswordMatches("", hash))
	assert.False(t, PasswordMatches("anything", hash))
}

func TestPasswordMatches_NotAHash(t *testing.T) {
	assert.False(t, PasswordMatches("hunter2", "not-a-hash"))
}

func TestNewSessionSecret(t *testing.T) {
	a, err := NewSessionSecret()
	require.NoError(t, err)
	b, err := NewSessionSecret()
	require.NoError(t, err)

	assert.Len(t, a, 64)
	assert.NotEqual(t, a, b)
}
