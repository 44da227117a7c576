package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/accessdesk/api/manager/domain"
	"github.com/accessdesk/api/manager/errs"
	"github.com/accessdesk/api/pkg/logger"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

const (
	serviceName    = "Access Request API"
	serviceVersion = "1.0.0"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

type Params struct {
	fx.In
	Svc      domain.Service
	Registry *prometheus.Registry `optional:"true"`
}

func NewHandler(params Params) (*Handler, error) {
	registry := params.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	return &Handler{
		Svc:      params.Svc,
		Registry: registry,
	}, nil
}

type Handler struct {
	Svc      domain.Service
	Registry *prometheus.Registry
}

func (h *Handler) JSONResponse(ctx context.Context, w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		logger.Logger(ctx).Error().Err(err).Msg("Failed to encode JSON response")
	}
}

func (h *Handler) JSONBind(r *http.Request, dst any) error {
	decoder := json.NewDecoder(r.Body)
	err := decoder.Decode(dst)
	if err != nil {
		return err
	}
	return nil
}

func (h *Handler) ErrorResponse(ctx context.Context, w http.ResponseWriter, status int, errMsg string, err error) {
	if err != nil {
		event := logger.Logger(ctx).Warn()
		if status >= http.StatusInternalServerError {
			event = logger.Logger(ctx).Error()
		}
		event.Err(err).Int("status_code", status).Msg(errMsg)
	}
	h.JSONResponse(ctx, w, status, ErrorResponse{Error: errMsg})
}

// HandleError writes the client-facing message for err; causes of 5xx errors stay in the log.
func (h *Handler) HandleError(ctx context.Context, w http.ResponseWriter, err error) {
	status, message := errs.StatusOf(err)
	h.ErrorResponse(ctx, w, status, message, err)
}

// Version godoc
// @Summary Service version
// @Tags Ops
// @Produce json
// @Success 200 {object} map[string]string
// @Router /version [get]
func (h *Handler) Version(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"message": serviceName,
		"version": serviceVersion,
	}
	h.JSONResponse(r.Context(), w, http.StatusOK, response)
}

// HealthCheck godoc
// @Summary Liveness probe
// @Tags Ops
// @Produce json
// @Success 200 {object} map[string]any
// @Router /health [get]
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   serviceName,
	}
	h.JSONResponse(r.Context(), w, http.StatusOK, response)
}
