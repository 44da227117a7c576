package rest

import (
	"context"
	"net/http"

	"github.com/accessdesk/api/docs"
	"github.com/accessdesk/api/manager/domain"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

func (h *Handler) SetupRoutes(engine *echo.Echo) {
	engine.GET("/health", h.echoHandler(h.HealthCheck))
	engine.GET("/version", h.echoHandler(h.Version))
	engine.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(h.Registry, promhttp.HandlerOpts{})))
	docs.SwaggerInfo.BasePath = "/api"
	engine.GET("/swagger/*", echoSwagger.WrapHandler)

	api := engine.Group("/api", echo.WrapMiddleware(LoggerMiddleware))
	{
		// auth routes
		api.POST("/auth/login", h.echoHandler(h.Login))
		api.GET("/auth/me", h.echoHandler(h.GetSelfUser), echo.WrapMiddleware(h.GetAuthMiddleware("")))

		// user routes
		api.POST("/users", h.echoHandler(h.CreateUser), echo.WrapMiddleware(h.GetAuthMiddleware(domain.UserCreate)))

		// request routes; the admin paths are registered before /requests/:id
		api.GET("/requests/admin/all", h.echoHandler(h.ListAllRequests), echo.WrapMiddleware(h.GetAuthMiddleware(domain.RequestReadAny)))
		api.POST("/requests/admin/:id/approve", h.echoHandlerWithParams(h.ApproveRequest), echo.WrapMiddleware(h.GetAuthMiddleware(domain.RequestReview)))
		api.POST("/requests/admin/:id/reject", h.echoHandlerWithParams(h.RejectRequest), echo.WrapMiddleware(h.GetAuthMiddleware(domain.RequestReview)))
		api.POST("/requests", h.echoHandler(h.CreateRequest), echo.WrapMiddleware(h.GetAuthMiddleware(domain.RequestCreate)))
		api.GET("/requests/mine", h.echoHandler(h.ListMyRequests), echo.WrapMiddleware(h.GetAuthMiddleware(domain.RequestReadSelf)))
		api.GET("/requests/:id", h.echoHandlerWithParams(h.GetRequest), echo.WrapMiddleware(h.GetAuthMiddleware(domain.RequestReadSelf)))
		api.GET("/requests/:id/audit", h.echoHandlerWithParams(h.GetAuditTrail), echo.WrapMiddleware(h.GetAuthMiddleware(domain.AuditReadSelf)))
	}
}

func (h *Handler) echoHandler(handlerFunc func(w http.ResponseWriter, r *http.Request)) echo.HandlerFunc {
	return echo.WrapHandler(http.HandlerFunc(handlerFunc))
}

// echoHandlerWithParams wraps a handler function and injects path parameters into request context
func (h *Handler) echoHandlerWithParams(handlerFunc func(w http.ResponseWriter, r *http.Request)) echo.HandlerFunc {
	return func(c echo.Context) error {
		r := c.Request()
		for _, name := range c.ParamNames() {
			r = r.WithContext(context.WithValue(r.Context(), pathParamKey(name), c.Param(name)))
		}
		handlerFunc(c.Response().Writer, r)
		return nil
	}
}

// pathParamKey is a type for path parameter context keys
type pathParamKey string

// GetPathParam retrieves a path parameter from request context
func (h *Handler) GetPathParam(r *http.Request, name string) string {
	if val, ok := r.Context().Value(pathParamKey(name)).(string); ok {
		return val
	}
	return ""
}
