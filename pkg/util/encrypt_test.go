package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestArgon2(t *testing.T) {
	password := "my_secure_password"

	hash, err := CreateArgon2Hash(password)
	require.NoError(t, err)
	assert.True(t, IsArgon2Hash(hash))
	assert.True(t, IsPasswordHash(hash))

	ok, err := ComparePasswordAndHash(password, hash)
	require.NoError(t, err)
	assert.True(t, ok, "Password should match the hash")

	ok, err = ComparePasswordAndHash("wrong_password", hash)
	require.NoError(t, err)
	assert.False(t, ok, "Wrong password should not match the hash")
}

func TestBcryptCompatibility(t *testing.T) {
	raw, err := bcrypt.GenerateFromPassword([]byte("Admin@123"), 10)
	require.NoError(t, err)
	hash := string(raw)
	assert.True(t, IsBcryptHash(hash))
	assert.False(t, IsArgon2Hash(hash))

	ok, err := ComparePasswordAndHash("Admin@123", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = ComparePasswordAndHash("admin@123", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestComparePasswordAndHashMalformed(t *testing.T) {
	_, err := ComparePasswordAndHash("password", "plain-text")
	assert.Error(t, err)
	assert.False(t, IsPasswordHash("plain-text"))
}
