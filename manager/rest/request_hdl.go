package rest

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/accessdesk/api/manager/domain"
	"github.com/accessdesk/api/manager/errs"
)

type CreateRequestRequest struct {
	Application string `json:"application"`
	Environment string `json:"environment"`
	GroupRole   string `json:"group_role"`
	Project     string `json:"project"`
	Notes       string `json:"notes"`
}

type ReviewRequest struct {
	Notes string `json:"notes"`
}

// CreateRequest godoc
// @Summary Submit an access request
// @Tags Requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateRequestRequest true "Requested access"
// @Success 201 {object} domain.Request
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /requests [post]
func (h *Handler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req CreateRequestRequest
	err := h.JSONBind(r, &req)
	if err != nil {
		h.ErrorResponse(ctx, w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	claims, ok := h.GetClaimsFromContext(ctx)
	if !ok {
		h.ErrorResponse(ctx, w, http.StatusUnauthorized, "Unauthorized", nil)
		return
	}

	request, err := h.Svc.CreateRequest(ctx, &claims, domain.CreateRequestInput{
		Application: req.Application,
		Environment: req.Environment,
		GroupRole:   req.GroupRole,
		Project:     req.Project,
		Notes:       req.Notes,
	})
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	h.JSONResponse(ctx, w, http.StatusCreated, request)
}

// ListMyRequests godoc
// @Summary List own requests
// @Tags Requests
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.Request
// @Failure 401 {object} ErrorResponse
// @Router /requests/mine [get]
func (h *Handler) ListMyRequests(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	claims, ok := h.GetClaimsFromContext(ctx)
	if !ok {
		h.ErrorResponse(ctx, w, http.StatusUnauthorized, "Unauthorized", nil)
		return
	}
	requests, err := h.Svc.ListMyRequests(ctx, &claims)
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	h.JSONResponse(ctx, w, http.StatusOK, nonNil(requests))
}

// ListAllRequests godoc
// @Summary List every request
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "PENDING, APPROVED, REJECTED or PROVISIONED"
// @Param q query string false "Matches requester email, application, project or id"
// @Success 200 {array} domain.Request
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /requests/admin/all [get]
func (h *Handler) ListAllRequests(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	claims, ok := h.GetClaimsFromContext(ctx)
	if !ok {
		h.ErrorResponse(ctx, w, http.StatusUnauthorized, "Unauthorized", nil)
		return
	}

	filter := domain.RequestFilter{Search: r.URL.Query().Get("q")}
	if raw := r.URL.Query().Get("status"); raw != "" {
		status, err := domain.ParseRequestStatus(raw)
		if err != nil {
			h.HandleError(ctx, w, errs.Validation("Unknown status filter", err))
			return
		}
		filter.Status = status
	}

	requests, err := h.Svc.ListAllRequests(ctx, &claims, filter)
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	h.JSONResponse(ctx, w, http.StatusOK, nonNil(requests))
}

// GetRequest godoc
// @Summary Fetch one request
// @Tags Requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request id"
// @Success 200 {object} domain.Request
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /requests/{id} [get]
func (h *Handler) GetRequest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	claims, ok := h.GetClaimsFromContext(ctx)
	if !ok {
		h.ErrorResponse(ctx, w, http.StatusUnauthorized, "Unauthorized", nil)
		return
	}
	request, err := h.Svc.GetRequest(ctx, &claims, h.GetPathParam(r, "id"))
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	h.JSONResponse(ctx, w, http.StatusOK, request)
}

// GetAuditTrail godoc
// @Summary Audit trail of a request, newest first
// @Tags Requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request id"
// @Success 200 {array} domain.AuditLog
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /requests/{id}/audit [get]
func (h *Handler) GetAuditTrail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	claims, ok := h.GetClaimsFromContext(ctx)
	if !ok {
		h.ErrorResponse(ctx, w, http.StatusUnauthorized, "Unauthorized", nil)
		return
	}
	entries, err := h.Svc.GetAuditTrail(ctx, &claims, h.GetPathParam(r, "id"))
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	h.JSONResponse(ctx, w, http.StatusOK, nonNil(entries))
}

// ApproveRequest godoc
// @Summary Approve a pending request
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request id"
// @Param request body ReviewRequest false "Reviewer notes"
// @Success 200 {object} domain.Request
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /requests/admin/{id}/approve [post]
func (h *Handler) ApproveRequest(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, h.Svc.ApproveRequest)
}

// RejectRequest godoc
// @Summary Reject a pending request
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request id"
// @Param request body ReviewRequest false "Reviewer notes"
// @Success 200 {object} domain.Request
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /requests/admin/{id}/reject [post]
func (h *Handler) RejectRequest(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, h.Svc.RejectRequest)
}

type reviewFunc func(ctx context.Context, operator *domain.Claims, id, notes string) (*domain.Request, error)

func (h *Handler) review(w http.ResponseWriter, r *http.Request, apply reviewFunc) {
	ctx := r.Context()
	var req ReviewRequest
	// the body is optional
	if err := h.JSONBind(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.ErrorResponse(ctx, w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	claims, ok := h.GetClaimsFromContext(ctx)
	if !ok {
		h.ErrorResponse(ctx, w, http.StatusUnauthorized, "Unauthorized", nil)
		return
	}

	request, err := apply(ctx, &claims, h.GetPathParam(r, "id"), req.Notes)
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	h.JSONResponse(ctx, w, http.StatusOK, request)
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
