package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/accessdesk/api/pkg/util"
)

type RequestStatus string

const (
	StatusPending  RequestStatus = "PENDING"
	StatusApproved RequestStatus = "APPROVED"
	StatusRejected RequestStatus = "REJECTED"
	// StatusProvisioned is reserved for an external provisioning pipeline and is
	// never produced by this service.
	StatusProvisioned RequestStatus = "PROVISIONED"
)

var requestTransitions = map[RequestStatus][]RequestStatus{
	StatusPending: {StatusApproved, StatusRejected},
}

func ParseRequestStatus(value string) (RequestStatus, error) {
	status := RequestStatus(strings.ToUpper(strings.TrimSpace(value)))
	switch status {
	case StatusPending, StatusApproved, StatusRejected, StatusProvisioned:
		return status, nil
	}
	return "", fmt.Errorf("%w: unknown status %q", ErrValidation, value)
}

// CanTransitionTo reports whether a review may move a request from s to target.
func (s RequestStatus) CanTransitionTo(target RequestStatus) bool {
	for _, next := range requestTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// ReviewAction maps a review target status onto its audit action.
func (s RequestStatus) ReviewAction() (AuditAction, bool) {
	switch s {
	case StatusApproved:
		return AuditActionApprove, true
	case StatusRejected:
		return AuditActionReject, true
	}
	return "", false
}

type Request struct {
	ID            string        `bson:"_id" json:"id"`
	RequesterID   string        `bson:"requester_id" json:"requester_id"`
	Application   string        `bson:"application" json:"application"`
	Environment   string        `bson:"environment" json:"environment"`
	GroupRole     string        `bson:"group_role" json:"group_role"`
	Project       string        `bson:"project" json:"project"`
	Notes         string        `bson:"notes" json:"notes"`
	Status        RequestStatus `bson:"status" json:"status"`
	ExternalJobID *string       `bson:"external_job_id" json:"external_job_id"`
	CreatedAt     time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time     `bson:"updated_at" json:"updated_at"`

	// RequesterEmail is resolved on read and never stored.
	RequesterEmail string `bson:"-" json:"requester_email,omitempty"`
}

type CreateRequestInput struct {
	Application string `json:"application" validate:"required,max=255"`
	Environment string `json:"environment" validate:"required,max=255"`
	GroupRole   string `json:"group_role" validate:"required,max=255"`
	Project     string `json:"project" validate:"max=255"`
	Notes       string `json:"notes" validate:"max=4000"`
}

func (in *CreateRequestInput) Normalize() {
	in.Application = strings.TrimSpace(in.Application)
	in.Environment = strings.TrimSpace(in.Environment)
	in.GroupRole = strings.TrimSpace(in.GroupRole)
	in.Project = strings.TrimSpace(in.Project)
	in.Notes = strings.TrimSpace(in.Notes)
}

// ReviewInput carries the reviewer notes for an approve or reject.
type ReviewInput struct {
	Notes string `json:"notes" validate:"max=4000"`
}

func (in *ReviewInput) Normalize() {
	in.Notes = strings.TrimSpace(in.Notes)
}

// NewRequest creates a PENDING request owned by requesterID.
func NewRequest(requesterID string, in CreateRequestInput, now time.Time) *Request {
	return &Request{
		ID:          NewID(),
		RequesterID: requesterID,
		Application: in.Application,
		Environment: in.Environment,
		GroupRole:   in.GroupRole,
		Project:     in.Project,
		Notes:       in.Notes,
		Status:      StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// AppendNotes joins review notes onto the existing notes with a newline.
// Empty review notes leave the existing notes untouched.
func AppendNotes(existing, notes string) string {
	notes = strings.TrimSpace(notes)
	switch {
	case notes == "":
		return existing
	case existing == "":
		return notes
	}
	return existing + "\n" + notes
}

func (r *Request) Clone() *Request {
	if r == nil {
		return nil
	}
	cp := *r
	if r.ExternalJobID != nil {
		cp.ExternalJobID = util.Ptr(*r.ExternalJobID)
	}
	return &cp
}

// MatchSearch reports whether q appears, case-insensitively, in the id,
// application, project or requester email.
func (r *Request) MatchSearch(q string) bool {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return true
	}
	for _, field := range []string{r.ID, r.Application, r.Project, r.RequesterEmail} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}
