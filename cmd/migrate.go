package cmd

import (
	"context"

	"github.com/accessdesk/api/manager/app"
	"github.com/accessdesk/api/manager/domain"
	"github.com/accessdesk/api/pkg/logger"
	"github.com/spf13/cobra"
)

// the repository module migrates on start, so running it is enough
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Bring the storage schema up to date",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return app.RunWithService(cmd.Context(), appConfig, func(ctx context.Context, _ domain.Service) error {
			logger.Logger(ctx).Info().Str("driver", appConfig.Storage.Driver).Msg("schema is up to date")
			return nil
		})
	},
}
