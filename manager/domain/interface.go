package domain

import (
	"context"
)

type QueryUserOptions struct {
	IDs    []string
	Emails []string
	Result []*User
}

type QueryRequestOptions struct {
	IDs          []string
	RequesterIDs []string
	Statuses     []RequestStatus
	// Search is a case-insensitive substring matched against the id, application,
	// project and requester email. It is applied by the service after enrichment.
	Search string
	Result []*Request
}

type QueryAuditLogOptions struct {
	RequestIDs []string
	Result     []*AuditLog
}

// RequestTx is the unit of work used to change a request together with its audit trail.
type RequestTx interface {
	InsertRequest(ctx context.Context, req *Request) error
	GetRequest(ctx context.Context, id string) (*Request, error)
	// UpdateRequestStatus writes status, notes and updated_at of req only when the
	// stored status still equals expected, and returns ErrStatusConflict otherwise.
	UpdateRequestStatus(ctx context.Context, req *Request, expected RequestStatus) error
	AppendAuditLog(ctx context.Context, log *AuditLog) error
}

type Repository interface {
	CreateUser(ctx context.Context, user *User) error
	UpsertUserByEmail(ctx context.Context, user *User) error
	QueryUsers(ctx context.Context, opt *QueryUserOptions) error

	// QueryRequests returns requests newest first.
	QueryRequests(ctx context.Context, opt *QueryRequestOptions) error
	// QueryAuditLogs returns entries newest first.
	QueryAuditLogs(ctx context.Context, opt *QueryAuditLogOptions) error
	// RunInTransaction commits when fn returns nil and rolls back otherwise.
	RunInTransaction(ctx context.Context, fn func(ctx context.Context, tx RequestTx) error) error

	Close(ctx context.Context) error
}

type Service interface {
	Login(ctx context.Context, email, password string) (token string, user *User, err error)
	VerifyJWTToken(ctx context.Context, tokenString string, permissionKey PermissionKey) (Claims, error)
	GetSelf(ctx context.Context, operator *Claims) (*User, error)
	CreateUser(ctx context.Context, operator *Claims, opt CreateUserOptions) (*User, error)
	SeedUser(ctx context.Context, opt CreateUserOptions) (*User, error)

	CreateRequest(ctx context.Context, operator *Claims, input CreateRequestInput) (*Request, error)
	ListMyRequests(ctx context.Context, operator *Claims) ([]*Request, error)
	ListAllRequests(ctx context.Context, operator *Claims, filter RequestFilter) ([]*Request, error)
	GetRequest(ctx context.Context, operator *Claims, id string) (*Request, error)
	GetAuditTrail(ctx context.Context, operator *Claims, requestID string) ([]*AuditLog, error)
	ApproveRequest(ctx context.Context, operator *Claims, id, notes string) (*Request, error)
	RejectRequest(ctx context.Context, operator *Claims, id, notes string) (*Request, error)
}

type RequestFilter struct {
	Status RequestStatus
	Search string
}
