package domain

import (
	"fmt"
	"strings"

	"github.com/accessdesk/api/pkg/util"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/x/bsonx/bsoncore"
)

// NewID returns a time ordered identifier, so ids sort in creation order.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// NormalizeEmail trims and lower cases an email address for lookups.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// EncryptedPassword is an encoded argon2id or bcrypt hash. Plain text enters only
// through HashPassword.
type EncryptedPassword string

// HashPassword hashes plainText with argon2id.
func HashPassword(plainText string) (EncryptedPassword, error) {
	hash, err := util.CreateArgon2Hash(plainText)
	if err != nil {
		return "", err
	}
	return EncryptedPassword(hash), nil
}

// Hash returns the encoded hash and refuses anything that is not one.
func (value EncryptedPassword) Hash() (string, error) {
	valStr := string(value)
	if !util.IsPasswordHash(valStr) {
		return "", ErrUnhashedPassword
	}
	return valStr, nil
}

func (value EncryptedPassword) MarshalBSONValue() (typ byte, data []byte, err error) {
	pwdHash, err := value.Hash()
	if err != nil {
		return 0, nil, err
	}
	return byte(bson.TypeString), bsoncore.AppendString(nil, pwdHash), nil
}

func (value *EncryptedPassword) UnmarshalBSONValue(typ byte, data []byte) error {
	if typ != byte(bson.TypeString) {
		return fmt.Errorf("invalid type %v for EncryptedPassword", bson.Type(typ))
	}

	str, _, ok := bsoncore.ReadString(data)
	if !ok {
		return fmt.Errorf("failed to read bson string")
	}

	*value = EncryptedPassword(str)
	return nil
}

func (value EncryptedPassword) String() string {
	return "*******"
}

func (value EncryptedPassword) Cmp(plainText string) (bool, error) {
	ok, err := util.ComparePasswordAndHash(plainText, string(value))
	if err != nil {
		return false, err
	}
	return ok, nil
}
