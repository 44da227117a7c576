package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthorize(t *testing.T) {
	user := &Claims{UID: "u1", Role: RoleUser}
	admin := &Claims{UID: "a1", Role: RoleAdmin}

	assert.True(t, Authorize(user, RequestCreate))
	assert.True(t, Authorize(user, RequestReadSelf))
	assert.True(t, Authorize(user, ""))
	assert.False(t, Authorize(user, RequestReadAny))
	assert.False(t, Authorize(user, RequestReview))
	assert.False(t, Authorize(user, UserCreate))

	for _, key := range PermissionsOf(RoleAdmin) {
		assert.True(t, Authorize(admin, key), key)
	}

	assert.False(t, Authorize(nil, ""))
	assert.False(t, Authorize(&Claims{Role: RoleAdmin}, RequestReview), "missing identity")
	assert.False(t, Authorize(&Claims{UID: "x", Role: "guest"}, RequestCreate))
}

func TestCanViewRequest(t *testing.T) {
	req := &Request{ID: "r1", RequesterID: "u1"}
	assert.True(t, CanViewRequest(&Claims{UID: "u1", Role: RoleUser}, req))
	assert.False(t, CanViewRequest(&Claims{UID: "u2", Role: RoleUser}, req))
	assert.True(t, CanViewRequest(&Claims{UID: "a1", Role: RoleAdmin}, req))
	assert.False(t, CanViewRequest(nil, req))
	assert.False(t, CanViewRequest(&Claims{UID: "u1", Role: RoleUser}, nil))

	assert.True(t, CanViewAudit(&Claims{UID: "u1", Role: RoleUser}, req))
	assert.False(t, CanViewAudit(&Claims{UID: "u2", Role: RoleUser}, req))
	assert.True(t, CanViewAudit(&Claims{UID: "a1", Role: RoleAdmin}, req))
}
