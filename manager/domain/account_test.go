package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/accessdesk/api/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUserAlwaysHashesPlainText(t *testing.T) {
	lookalike := "$2a$10$" + strings.Repeat("a", 53)
	require.True(t, util.IsBcryptHash(lookalike))

	user, err := NewUser(CreateUserOptions{Email: " Bob@Example.com", Password: lookalike, Role: RoleUser}, time.Now())
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", user.Email)
	assert.True(t, util.IsArgon2Hash(string(user.Password)))

	ok, err := user.Password.Cmp(lookalike)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestNewUserPasswordHash(t *testing.T) {
	hash, err := util.CreateArgon2Hash("Secret@123")
	require.NoError(t, err)

	user, err := NewUser(CreateUserOptions{Email: "a@example.com", PasswordHash: hash, Role: RoleUser}, time.Now())
	require.NoError(t, err)
	assert.Equal(t, EncryptedPassword(hash), user.Password)

	_, err = NewUser(CreateUserOptions{Email: "a@example.com", PasswordHash: "Secret@123", Role: RoleUser}, time.Now())
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewUser(CreateUserOptions{Email: "a@example.com", Password: "Secret@123", PasswordHash: hash, Role: RoleUser}, time.Now())
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewUser(CreateUserOptions{Email: "a@example.com", Role: RoleUser}, time.Now())
	assert.ErrorIs(t, err, ErrValidation)
}

func TestEncryptedPasswordHashRefusesPlainText(t *testing.T) {
	_, err := EncryptedPassword("Secret@123").Hash()
	assert.ErrorIs(t, err, ErrUnhashedPassword)
}
