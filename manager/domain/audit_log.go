package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

type AuditAction string

const (
	AuditActionCreate  AuditAction = "CREATE"
	AuditActionApprove AuditAction = "APPROVE"
	AuditActionReject  AuditAction = "REJECT"
)

// AuditDetails is the action specific payload of an audit entry. The set of
// implementations is closed to this package.
type AuditDetails interface {
	accepts(action AuditAction) bool
}

// CreateDetails carries the request snapshot taken at creation.
type CreateDetails struct {
	Request Request `json:"request" bson:"request"`
}

func (CreateDetails) accepts(action AuditAction) bool {
	return action == AuditActionCreate
}

// ReviewDetails carries the notes supplied with an approve or reject.
type ReviewDetails struct {
	Notes string `json:"notes" bson:"notes"`
}

func (ReviewDetails) accepts(action AuditAction) bool {
	return action == AuditActionApprove || action == AuditActionReject
}

type AuditLog struct {
	ID          string       `json:"id"`
	RequestID   string       `json:"request_id"`
	Action      AuditAction  `json:"action"`
	PerformedBy string       `json:"performed_by"`
	Details     AuditDetails `json:"details"`
	CreatedAt   time.Time    `json:"created_at"`
}

// NewAuditLog builds an entry, rejecting details that do not belong to action.
func NewAuditLog(requestID string, action AuditAction, performedBy string, details AuditDetails, now time.Time) (*AuditLog, error) {
	if details == nil || !details.accepts(action) {
		return nil, fmt.Errorf("%w: details %T do not match audit action %s", ErrValidation, details, action)
	}
	return &AuditLog{
		ID:          NewID(),
		RequestID:   requestID,
		Action:      action,
		PerformedBy: performedBy,
		Details:     details,
		CreatedAt:   now,
	}, nil
}

func EncodeAuditDetails(details AuditDetails) ([]byte, error) {
	if details == nil {
		return nil, fmt.Errorf("nil audit details")
	}
	return json.Marshal(details)
}

// DecodeAuditDetails picks the payload shape from action.
func DecodeAuditDetails(action AuditAction, raw []byte) (AuditDetails, error) {
	switch action {
	case AuditActionCreate:
		var details CreateDetails
		if err := json.Unmarshal(raw, &details); err != nil {
			return nil, fmt.Errorf("decode %s details: %w", action, err)
		}
		return details, nil
	case AuditActionApprove, AuditActionReject:
		var details ReviewDetails
		if err := json.Unmarshal(raw, &details); err != nil {
			return nil, fmt.Errorf("decode %s details: %w", action, err)
		}
		return details, nil
	}
	return nil, fmt.Errorf("unknown audit action %q", action)
}

func (l *AuditLog) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID          string          `json:"id"`
		RequestID   string          `json:"request_id"`
		Action      AuditAction     `json:"action"`
		PerformedBy string          `json:"performed_by"`
		Details     json.RawMessage `json:"details"`
		CreatedAt   time.Time       `json:"created_at"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	details, err := DecodeAuditDetails(raw.Action, raw.Details)
	if err != nil {
		return err
	}
	*l = AuditLog{
		ID:          raw.ID,
		RequestID:   raw.RequestID,
		Action:      raw.Action,
		PerformedBy: raw.PerformedBy,
		Details:     details,
		CreatedAt:   raw.CreatedAt,
	}
	return nil
}
