package app

import (
	"context"
	"errors"
	"net/http"

	"github.com/accessdesk/api/config"
	"github.com/accessdesk/api/manager/domain"
	"github.com/accessdesk/api/manager/rest"
	"github.com/accessdesk/api/pkg/logger"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

func NewRestApp(cfg config.ManageConfig) (*fx.App, error) {
	handlerModule, err := HandlerModule(cfg)
	if err != nil {
		return nil, err
	}

	app := fx.New(
		handlerModule,
		fx.NopLogger,
		fx.Invoke(StartRestApp),
	)
	return app, nil
}

// NewEngine builds the echo engine with every route mounted.
func NewEngine(cfg config.ServerConfig, handler *rest.Handler) *echo.Echo {
	engine := echo.New()
	engine.HideBanner = true
	engine.HidePort = true
	if len(cfg.AllowOrigins) > 0 {
		engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: cfg.AllowOrigins,
			AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		}))
	}
	handler.SetupRoutes(engine)
	return engine
}

func StartRestApp(lc fx.Lifecycle, cfg config.ServerConfig, handler *rest.Handler) error {
	engine := NewEngine(cfg, handler)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			serverHost := cfg.Host
			if serverHost == "" {
				serverHost = ":8080"
			}
			go func() {
				logger.Logger(ctx).Info().Msgf("starting rest server on %s", serverHost)
				if err := engine.Start(serverHost); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Logger(ctx).Fatal().Err(err).Msgf("start rest server fail on %s", serverHost)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Logger(ctx).Info().Msg("shutting down rest server")
			return engine.Shutdown(ctx)
		},
	})

	return nil
}

// RunWithService starts the service graph without the HTTP server, hands the service to
// fn and stops the graph again.
func RunWithService(ctx context.Context, cfg config.ManageConfig, fn func(ctx context.Context, svc domain.Service) error) error {
	serviceModule, err := ServiceModule(cfg)
	if err != nil {
		return err
	}
	var svc domain.Service
	app := fx.New(serviceModule, fx.NopLogger, fx.Populate(&svc))
	if err := app.Start(ctx); err != nil {
		return err
	}
	runErr := fn(ctx, svc)
	if err := app.Stop(context.WithoutCancel(ctx)); err != nil && runErr == nil {
		runErr = err
	}
	return runErr
}
