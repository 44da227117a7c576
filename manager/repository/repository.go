package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/accessdesk/api/config"
	"github.com/accessdesk/api/manager/domain"
	"go.uber.org/fx"
)

const migrationTimeout = 30 * time.Second

type Params struct {
	fx.In
	StorageConfig config.StorageConfig
	SQLiteConfig  config.SQLiteConfig  `optional:"true"`
	MongoConfig   config.MongoDBConfig `optional:"true"`
}

// NewRepository opens the backend selected by the storage driver.
func NewRepository(params Params) (domain.Repository, error) {
	switch params.StorageConfig.Driver {
	case "", config.StorageDriverSQLite:
		return newSQLRepository(params.SQLiteConfig)
	case config.StorageDriverMongoDB:
		return newMongoRepository(params.MongoConfig)
	}
	return nil, fmt.Errorf("unsupported storage driver %q", params.StorageConfig.Driver)
}

// Migrator is implemented by backends that own a schema.
type Migrator interface {
	Migrate(ctx context.Context) error
}

// RunMigration brings the backend schema up to date.
func RunMigration(repo domain.Repository) error {
	m, ok := repo.(Migrator)
	if !ok {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), migrationTimeout)
	defer cancel()
	return m.Migrate(ctx)
}

// RegisterLifecycle closes the repository when the application stops.
func RegisterLifecycle(lc fx.Lifecycle, repo domain.Repository) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return repo.Close(ctx)
		},
	})
}
