package cmd

import (
	"context"
	"fmt"

	"github.com/accessdesk/api/manager/app"
	"github.com/accessdesk/api/manager/domain"
	"github.com/spf13/cobra"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage users",
}

var (
	newUserName     string
	newUserEmail    string
	newUserPassword string
	newUserRole     string
)

var userCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Provision a user",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return app.RunWithService(cmd.Context(), appConfig, func(ctx context.Context, svc domain.Service) error {
			// the CLI acts with admin rights
			operator := &domain.Claims{UID: "cli", Role: domain.RoleAdmin}
			user, err := svc.CreateUser(ctx, operator, domain.CreateUserOptions{
				Name:     newUserName,
				Email:    newUserEmail,
				Password: newUserPassword,
				Role:     domain.Role(newUserRole),
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created user %s (%s, %s)\n", user.ID, user.Email, user.Role)
			return nil
		})
	},
}

func init() {
	userCreateCmd.Flags().StringVar(&newUserName, "name", "", "display name")
	userCreateCmd.Flags().StringVar(&newUserEmail, "email", "", "login email")
	userCreateCmd.Flags().StringVar(&newUserPassword, "password", "", "initial password")
	userCreateCmd.Flags().StringVar(&newUserRole, "role", string(domain.RoleUser), "admin or user")
	_ = userCreateCmd.MarkFlagRequired("email")
	_ = userCreateCmd.MarkFlagRequired("password")

	userCmd.AddCommand(userCreateCmd)
}
