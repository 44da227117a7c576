package cmd

import (
	"context"

	"github.com/accessdesk/api/manager/app"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the REST server",
	RunE: func(cmd *cobra.Command, _ []string) error {
		restApp, err := app.NewRestApp(appConfig)
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		if err := restApp.Start(ctx); err != nil {
			return err
		}
		<-ctx.Done()
		return restApp.Stop(context.WithoutCancel(ctx))
	},
}
