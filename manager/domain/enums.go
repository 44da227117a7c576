package domain

type PermissionKey string

const (
	RequestCreate   PermissionKey = "request.create"
	RequestReadSelf PermissionKey = "request.read.self"
	RequestReadAny  PermissionKey = "request.read.any"
	RequestReview   PermissionKey = "request.review"
	AuditReadSelf   PermissionKey = "audit.read.self"
	AuditReadAny    PermissionKey = "audit.read.any"
	UserCreate      PermissionKey = "user.create"
)

var rolePermissions = map[Role][]PermissionKey{
	RoleUser: {
		RequestCreate,
		RequestReadSelf,
		AuditReadSelf,
	},
	RoleAdmin: {
		RequestCreate,
		RequestReadSelf,
		RequestReadAny,
		RequestReview,
		AuditReadSelf,
		AuditReadAny,
		UserCreate,
	},
}

// PermissionsOf lists the permission keys granted to role.
func PermissionsOf(role Role) []PermissionKey {
	keys := rolePermissions[role]
	out := make([]PermissionKey, len(keys))
	copy(out, keys)
	return out
}

// Authorize reports whether the caller's role grants key. An empty key only
// requires an authenticated caller.
func Authorize(claims *Claims, key PermissionKey) bool {
	if !claims.IsAuthenticated() {
		return false
	}
	if key == "" {
		return true
	}
	for _, granted := range rolePermissions[claims.Role] {
		if granted == key {
			return true
		}
	}
	return false
}

// CanViewRequest is true for the owner of req or any caller allowed to read every request.
func CanViewRequest(claims *Claims, req *Request) bool {
	if req == nil || !claims.IsAuthenticated() {
		return false
	}
	if Authorize(claims, RequestReadAny) {
		return true
	}
	return req.RequesterID == claims.UID && Authorize(claims, RequestReadSelf)
}

// CanViewAudit follows the visibility of the request the trail belongs to.
func CanViewAudit(claims *Claims, req *Request) bool {
	if req == nil || !claims.IsAuthenticated() {
		return false
	}
	if Authorize(claims, AuditReadAny) {
		return true
	}
	return req.RequesterID == claims.UID && Authorize(claims, AuditReadSelf)
}
