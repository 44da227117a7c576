package repository

import (
	"time"

	"github.com/accessdesk/api/manager/domain"
)

type userModel struct {
	ID           string    `gorm:"column:id;primaryKey"`
	Name         string    `gorm:"column:name"`
	Email        string    `gorm:"column:email"`
	PasswordHash string    `gorm:"column:password_hash"`
	Role         string    `gorm:"column:role"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (userModel) TableName() string { return "users" }

func newUserModel(user *domain.User) (*userModel, error) {
	hash, err := user.Password.Hash()
	if err != nil {
		return nil, err
	}
	return &userModel{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		PasswordHash: hash,
		Role:         string(user.Role),
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}, nil
}

func (m *userModel) toDomain() *domain.User {
	return &domain.User{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Password:  domain.EncryptedPassword(m.PasswordHash),
		Role:      domain.Role(m.Role),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

type requestModel struct {
	ID            string    `gorm:"column:id;primaryKey"`
	RequesterID   string    `gorm:"column:requester_id"`
	Application   string    `gorm:"column:application"`
	Environment   string    `gorm:"column:environment"`
	GroupRole     string    `gorm:"column:group_role"`
	Project       string    `gorm:"column:project"`
	Notes         string    `gorm:"column:notes"`
	Status        string    `gorm:"column:status"`
	ExternalJobID *string   `gorm:"column:external_job_id"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (requestModel) TableName() string { return "requests" }

func newRequestModel(req *domain.Request) *requestModel {
	return &requestModel{
		ID:            req.ID,
		RequesterID:   req.RequesterID,
		Application:   req.Application,
		Environment:   req.Environment,
		GroupRole:     req.GroupRole,
		Project:       req.Project,
		Notes:         req.Notes,
		Status:        string(req.Status),
		ExternalJobID: req.ExternalJobID,
		CreatedAt:     req.CreatedAt,
		UpdatedAt:     req.UpdatedAt,
	}
}

func (m *requestModel) toDomain() *domain.Request {
	return &domain.Request{
		ID:            m.ID,
		RequesterID:   m.RequesterID,
		Application:   m.Application,
		Environment:   m.Environment,
		GroupRole:     m.GroupRole,
		Project:       m.Project,
		Notes:         m.Notes,
		Status:        domain.RequestStatus(m.Status),
		ExternalJobID: m.ExternalJobID,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

type auditLogModel struct {
	ID          string    `gorm:"column:id;primaryKey"`
	RequestID   string    `gorm:"column:request_id"`
	Action      string    `gorm:"column:action"`
	PerformedBy string    `gorm:"column:performed_by"`
	Details     string    `gorm:"column:details"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (auditLogModel) TableName() string { return "audit_logs" }

func newAuditLogModel(log *domain.AuditLog) (*auditLogModel, error) {
	details, err := domain.EncodeAuditDetails(log.Details)
	if err != nil {
		return nil, err
	}
	return &auditLogModel{
		ID:          log.ID,
		RequestID:   log.RequestID,
		Action:      string(log.Action),
		PerformedBy: log.PerformedBy,
		Details:     string(details),
		CreatedAt:   log.CreatedAt,
	}, nil
}

func (m *auditLogModel) toDomain() (*domain.AuditLog, error) {
	details, err := domain.DecodeAuditDetails(domain.AuditAction(m.Action), []byte(m.Details))
	if err != nil {
		return nil, err
	}
	return &domain.AuditLog{
		ID:          m.ID,
		RequestID:   m.RequestID,
		Action:      domain.AuditAction(m.Action),
		PerformedBy: m.PerformedBy,
		Details:     details,
		CreatedAt:   m.CreatedAt,
	}, nil
}

func statusStrings(statuses []domain.RequestStatus) []string {
	out := make([]string, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, string(s))
	}
	return out
}
