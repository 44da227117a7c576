package app

import (
	"github.com/accessdesk/api/config"
	"github.com/accessdesk/api/manager/repository"
	"github.com/accessdesk/api/manager/rest"
	"github.com/accessdesk/api/manager/service"
	"github.com/accessdesk/api/pkg/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"
)

// ConfigModule provides cfg and its sections. The signing key is resolved here so every
// later module sees a usable PEM.
func ConfigModule(cfg config.ManageConfig) (fx.Option, error) {
	log := logger.Configure(cfg.Logging.Level, cfg.Logging.Console)

	key, generated, err := config.ResolveSigningKey(cfg.Key)
	if err != nil {
		return nil, err
	}
	if generated {
		if key.RsaPrivateKeyPath == "" {
			log.Warn().Msg("no signing key configured, using an ephemeral key; tokens will not survive a restart")
		} else {
			log.Info().Str("path", key.RsaPrivateKeyPath).Msg("generated a new signing key")
		}
	}
	cfg.Key = key

	return fx.Options(
		fx.Provide(func() config.ManageConfig {
			return cfg
		}),
		fx.Provide(func(managerCfg config.ManageConfig) config.ServerConfig {
			return managerCfg.Server
		}),
		fx.Provide(func(managerCfg config.ManageConfig) config.StorageConfig {
			return managerCfg.Storage
		}),
		fx.Provide(func(managerCfg config.ManageConfig) config.SQLiteConfig {
			return managerCfg.SQLite
		}),
		fx.Provide(func(managerCfg config.ManageConfig) config.MongoDBConfig {
			return managerCfg.MongoDB
		}),
		fx.Provide(func(managerCfg config.ManageConfig) config.KeyConfig {
			return managerCfg.Key
		}),
		fx.Provide(func(managerCfg config.ManageConfig) config.AccountConfig {
			return managerCfg.Account
		}),
		fx.Provide(func(managerCfg config.ManageConfig) config.CacheConfig {
			return managerCfg.Cache
		}),
		fx.Provide(newRegistry),
	), nil
}

func newRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return registry
}

// RepoModule creates an Fx module that provides the repository layer with its schema migrated, return domain.Repository
func RepoModule(cfg config.ManageConfig) (fx.Option, error) {
	configModule, err := ConfigModule(cfg)
	if err != nil {
		return nil, err
	}

	return fx.Options(
		configModule,
		fx.Provide(repository.NewRepository),
		fx.Invoke(repository.RunMigration),
		fx.Invoke(repository.RegisterLifecycle),
	), nil
}

// ServiceModule creates an Fx module that provides the service layer, return domain.Service
func ServiceModule(cfg config.ManageConfig) (fx.Option, error) {
	repoModule, err := RepoModule(cfg)
	if err != nil {
		return nil, err
	}

	return fx.Options(
		repoModule,
		fx.Provide(service.NewService),
	), nil
}

// HandlerModule creates an Fx module that provides the REST handler, return *rest.Handler
func HandlerModule(cfg config.ManageConfig) (fx.Option, error) {
	serviceModule, err := ServiceModule(cfg)
	if err != nil {
		return nil, err
	}

	return fx.Options(
		serviceModule,
		fx.Provide(rest.NewHandler),
	), nil
}
