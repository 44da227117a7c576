package cmd

import (
	"context"
	"fmt"

	"github.com/accessdesk/api/manager/app"
	"github.com/accessdesk/api/manager/domain"
	"github.com/accessdesk/api/pkg/logger"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create or update the users listed under account.seed_users",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return app.RunWithService(cmd.Context(), appConfig, func(ctx context.Context, svc domain.Service) error {
			for _, seed := range appConfig.Account.SeedUsers {
				user, err := svc.SeedUser(ctx, domain.CreateUserOptions{
					Name:         seed.Name,
					Email:        seed.Email,
					Password:     seed.Password.Value(),
					PasswordHash: seed.PasswordHash.Value(),
					Role:         domain.Role(seed.Role),
				})
				if err != nil {
					return fmt.Errorf("seed %s: %w", seed.Email, err)
				}
				logger.Logger(ctx).Info().Str("user_id", user.ID).Str("email", user.Email).Str("role", string(user.Role)).Msg("seeded user")
			}
			return nil
		})
	},
}
