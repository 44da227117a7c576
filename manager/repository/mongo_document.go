package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/accessdesk/api/manager/domain"
)

// auditLogDocument keeps one typed sub-document per details shape.
type auditLogDocument struct {
	ID            string                `bson:"_id"`
	RequestID     string                `bson:"request_id"`
	Action        string                `bson:"action"`
	PerformedBy   string                `bson:"performed_by"`
	CreateDetails *domain.CreateDetails `bson:"create_details,omitempty"`
	ReviewDetails *domain.ReviewDetails `bson:"review_details,omitempty"`
	CreatedAt     time.Time             `bson:"created_at"`
}

func newAuditLogDocument(log *domain.AuditLog) (*auditLogDocument, error) {
	if log == nil {
		return nil, errors.New("nil audit log")
	}
	doc := &auditLogDocument{
		ID:          log.ID,
		RequestID:   log.RequestID,
		Action:      string(log.Action),
		PerformedBy: log.PerformedBy,
		CreatedAt:   log.CreatedAt,
	}
	switch details := log.Details.(type) {
	case domain.CreateDetails:
		doc.CreateDetails = &details
	case domain.ReviewDetails:
		doc.ReviewDetails = &details
	default:
		return nil, fmt.Errorf("unsupported audit details %T", log.Details)
	}
	return doc, nil
}

func (doc *auditLogDocument) toDomain() (*domain.AuditLog, error) {
	action := domain.AuditAction(doc.Action)
	var details domain.AuditDetails
	switch action {
	case domain.AuditActionCreate:
		if doc.CreateDetails == nil {
			return nil, fmt.Errorf("missing create details")
		}
		details = *doc.CreateDetails
	case domain.AuditActionApprove, domain.AuditActionReject:
		if doc.ReviewDetails == nil {
			return nil, fmt.Errorf("missing review details")
		}
		details = *doc.ReviewDetails
	default:
		return nil, fmt.Errorf("unknown audit action %q", doc.Action)
	}
	return &domain.AuditLog{
		ID:          doc.ID,
		RequestID:   doc.RequestID,
		Action:      action,
		PerformedBy: doc.PerformedBy,
		Details:     details,
		CreatedAt:   doc.CreatedAt,
	}, nil
}
