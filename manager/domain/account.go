package domain

import (
	"fmt"
	"time"

	"github.com/accessdesk/api/pkg/util"
)

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

type User struct {
	ID        string            `bson:"_id" json:"id"`
	Name      string            `bson:"name" json:"name"`
	Email     string            `bson:"email" json:"email"`
	Password  EncryptedPassword `bson:"password_hash" json:"-"`
	Role      Role              `bson:"role" json:"role"`
	CreatedAt time.Time         `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time         `bson:"updated_at" json:"updated_at"`
}

type CreateUserOptions struct {
	Name     string `json:"name" validate:"max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"omitempty,min=8,max=128"`
	// PasswordHash is an existing argon2id or bcrypt hash, used by the seed command
	// to import accounts. It is never bound from a request body.
	PasswordHash string `json:"-"`
	Role         Role   `json:"role" validate:"required,oneof=admin user"`
}

// NewUser builds a user from validated options. A plain text password is always
// hashed, whatever it looks like; only PasswordHash is taken as is.
func NewUser(opt CreateUserOptions, now time.Time) (*User, error) {
	password, err := opt.password()
	if err != nil {
		return nil, err
	}
	return &User{
		ID:        NewID(),
		Name:      opt.Name,
		Email:     NormalizeEmail(opt.Email),
		Password:  password,
		Role:      opt.Role,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (opt CreateUserOptions) password() (EncryptedPassword, error) {
	switch {
	case opt.Password != "" && opt.PasswordHash != "":
		return "", fmt.Errorf("%w: password and password hash are mutually exclusive", ErrValidation)
	case opt.PasswordHash != "":
		if !util.IsPasswordHash(opt.PasswordHash) {
			return "", fmt.Errorf("%w: password hash is not an argon2id or bcrypt hash", ErrValidation)
		}
		return EncryptedPassword(opt.PasswordHash), nil
	case opt.Password != "":
		return HashPassword(opt.Password)
	}
	return "", fmt.Errorf("%w: password is required", ErrValidation)
}
