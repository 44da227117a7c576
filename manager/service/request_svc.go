package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/accessdesk/api/manager/domain"
	"github.com/accessdesk/api/manager/errs"
	"github.com/accessdesk/api/pkg/logger"
)

func (svc *Service) CreateRequest(ctx context.Context, operator *domain.Claims, input domain.CreateRequestInput) (*domain.Request, error) {
	if !operator.IsAuthenticated() {
		return nil, errs.Unauthenticated("Unauthorized", nil)
	}
	if !domain.Authorize(operator, domain.RequestCreate) {
		return nil, errs.Forbidden("Forbidden")
	}
	input.Normalize()
	if err := svc.validate.Struct(input); err != nil {
		return nil, err
	}

	now := svc.now()
	req := domain.NewRequest(operator.UID, input, now)
	entry, err := domain.NewAuditLog(req.ID, domain.AuditActionCreate, operator.UID, domain.CreateDetails{Request: *req.Clone()}, now)
	if err != nil {
		return nil, errs.Storage(err)
	}
	err = svc.Repo.RunInTransaction(ctx, func(ctx context.Context, tx domain.RequestTx) error {
		if err := tx.InsertRequest(ctx, req); err != nil {
			return err
		}
		return tx.AppendAuditLog(ctx, entry)
	})
	if err != nil {
		return nil, errs.Storage(fmt.Errorf("create request: %w", err))
	}

	svc.metrics.requestsCreated.Inc()
	req.RequesterEmail = operator.Email
	logger.Logger(ctx).Info().Str("request_id", req.ID).Str("requester", operator.UID).Msg("access request created")
	return req, nil
}

func (svc *Service) ListMyRequests(ctx context.Context, operator *domain.Claims) ([]*domain.Request, error) {
	if !operator.IsAuthenticated() {
		return nil, errs.Unauthenticated("Unauthorized", nil)
	}
	if !domain.Authorize(operator, domain.RequestReadSelf) {
		return nil, errs.Forbidden("Forbidden")
	}
	return svc.queryRequests(ctx, &domain.QueryRequestOptions{RequesterIDs: []string{operator.UID}})
}

func (svc *Service) ListAllRequests(ctx context.Context, operator *domain.Claims, filter domain.RequestFilter) ([]*domain.Request, error) {
	if !operator.IsAuthenticated() {
		return nil, errs.Unauthenticated("Unauthorized", nil)
	}
	if !domain.Authorize(operator, domain.RequestReadAny) {
		return nil, errs.Forbidden("Forbidden")
	}
	opts := &domain.QueryRequestOptions{Search: filter.Search}
	if filter.Status != "" {
		opts.Statuses = []domain.RequestStatus{filter.Status}
	}
	return svc.queryRequests(ctx, opts)
}

func (svc *Service) queryRequests(ctx context.Context, opts *domain.QueryRequestOptions) ([]*domain.Request, error) {
	if err := svc.Repo.QueryRequests(ctx, opts); err != nil {
		return nil, errs.Storage(fmt.Errorf("query requests: %w", err))
	}
	if err := svc.directory.attach(ctx, opts.Result...); err != nil {
		return nil, errs.Storage(fmt.Errorf("resolve requesters: %w", err))
	}
	if opts.Search == "" {
		return opts.Result, nil
	}
	filtered := make([]*domain.Request, 0, len(opts.Result))
	for _, req := range opts.Result {
		if req.MatchSearch(opts.Search) {
			filtered = append(filtered, req)
		}
	}
	return filtered, nil
}

// findVisibleRequest returns 404 for a missing request before 403 for one the caller may not see.
func (svc *Service) findVisibleRequest(ctx context.Context, operator *domain.Claims, id string, canView func(*domain.Claims, *domain.Request) bool) (*domain.Request, error) {
	if !operator.IsAuthenticated() {
		return nil, errs.Unauthenticated("Unauthorized", nil)
	}
	if id == "" {
		return nil, errs.NotFound("Not found")
	}
	opts := &domain.QueryRequestOptions{IDs: []string{id}}
	if err := svc.Repo.QueryRequests(ctx, opts); err != nil {
		return nil, errs.Storage(fmt.Errorf("query request: %w", err))
	}
	if len(opts.Result) == 0 {
		return nil, errs.NotFound("Not found")
	}
	req := opts.Result[0]
	if !canView(operator, req) {
		return nil, errs.Forbidden("Forbidden")
	}
	return req, nil
}

func (svc *Service) GetRequest(ctx context.Context, operator *domain.Claims, id string) (*domain.Request, error) {
	req, err := svc.findVisibleRequest(ctx, operator, id, domain.CanViewRequest)
	if err != nil {
		return nil, err
	}
	if err := svc.directory.attach(ctx, req); err != nil {
		return nil, errs.Storage(fmt.Errorf("resolve requester: %w", err))
	}
	return req, nil
}

func (svc *Service) GetAuditTrail(ctx context.Context, operator *domain.Claims, requestID string) ([]*domain.AuditLog, error) {
	if _, err := svc.findVisibleRequest(ctx, operator, requestID, domain.CanViewAudit); err != nil {
		return nil, err
	}
	opts := &domain.QueryAuditLogOptions{RequestIDs: []string{requestID}}
	if err := svc.Repo.QueryAuditLogs(ctx, opts); err != nil {
		return nil, errs.Storage(fmt.Errorf("query audit logs: %w", err))
	}
	return opts.Result, nil
}

func (svc *Service) ApproveRequest(ctx context.Context, operator *domain.Claims, id, notes string) (*domain.Request, error) {
	return svc.transition(ctx, operator, id, domain.StatusApproved, notes)
}

func (svc *Service) RejectRequest(ctx context.Context, operator *domain.Claims, id, notes string) (*domain.Request, error) {
	return svc.transition(ctx, operator, id, domain.StatusRejected, notes)
}

// transition re-reads the request inside the transaction and writes status, notes and
// the audit entry together; the status update only matches while the row is unchanged.
func (svc *Service) transition(ctx context.Context, operator *domain.Claims, id string, target domain.RequestStatus, notes string) (*domain.Request, error) {
	action, ok := target.ReviewAction()
	if !ok {
		return nil, errs.Validation(fmt.Sprintf("unsupported target status %s", target), nil)
	}
	if !operator.IsAuthenticated() {
		return nil, errs.Unauthenticated("Unauthorized", nil)
	}
	if !domain.Authorize(operator, domain.RequestReview) {
		return nil, errs.Forbidden("Forbidden")
	}
	input := domain.ReviewInput{Notes: notes}
	input.Normalize()
	if err := svc.validate.Struct(input); err != nil {
		return nil, err
	}

	var (
		updated *domain.Request
		from    domain.RequestStatus
	)
	err := svc.Repo.RunInTransaction(ctx, func(ctx context.Context, tx domain.RequestTx) error {
		current, err := tx.GetRequest(ctx, id)
		if err != nil {
			return err
		}
		from = current.Status
		if !current.Status.CanTransitionTo(target) {
			return domain.ErrInvalidTransition
		}

		now := svc.now()
		next := current.Clone()
		next.Status = target
		next.Notes = domain.AppendNotes(current.Notes, input.Notes)
		next.UpdatedAt = now
		if err := tx.UpdateRequestStatus(ctx, next, current.Status); err != nil {
			return err
		}
		entry, err := domain.NewAuditLog(next.ID, action, operator.UID, domain.ReviewDetails{Notes: input.Notes}, now)
		if err != nil {
			return err
		}
		if err := tx.AppendAuditLog(ctx, entry); err != nil {
			return err
		}
		updated = next
		return nil
	})

	log := logger.Logger(ctx).With().Str("request_id", id).Str("action", string(action)).Str("operator", operator.UID).Logger()
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrNotFound):
		svc.metrics.transitions.WithLabelValues(string(action), resultNotFound).Inc()
		return nil, errs.NotFound("Not found")
	case errors.Is(err, domain.ErrInvalidTransition):
		svc.metrics.transitions.WithLabelValues(string(action), resultInvalidTransition).Inc()
		log.Warn().Str("from", string(from)).Msg("review rejected, request is not pending")
		return nil, errs.InvalidTransition(from, target)
	case errors.Is(err, domain.ErrStatusConflict):
		svc.metrics.transitions.WithLabelValues(string(action), resultInvalidTransition).Inc()
		log.Warn().Msg("review lost a concurrent update")
		return nil, errs.InvalidTransition(from, target)
	default:
		svc.metrics.transitions.WithLabelValues(string(action), resultError).Inc()
		return nil, errs.Storage(fmt.Errorf("transition request: %w", err))
	}

	svc.metrics.transitions.WithLabelValues(string(action), resultApplied).Inc()
	if err := svc.directory.attach(ctx, updated); err != nil {
		log.Warn().Err(err).Msg("resolve requester email after review")
	}
	log.Info().Str("status", string(updated.Status)).Msg("access request reviewed")
	return updated, nil
}
