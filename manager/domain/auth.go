package domain

import "github.com/golang-jwt/jwt/v5"

// Claims represents JWT token claims
type Claims struct {
	UID   string `json:"id"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
	jwt.RegisteredClaims
}

func (c *Claims) IsAuthenticated() bool {
	return c != nil && c.UID != ""
}
