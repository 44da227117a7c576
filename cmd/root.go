package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/accessdesk/api/config"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	configName string
	configDir  string
	appConfig  config.ManageConfig
)

var rootCmd = &cobra.Command{
	Use:   "accessdesk",
	Short: "HTTP API for submitting, reviewing and auditing access requests.",
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		// a missing .env is fine
		_ = godotenv.Load()
		cfg, err := config.InitManagerConfig(configName, configDir)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		appConfig = cfg
		return nil
	},
	SilenceUsage: true,
}

// Execute runs the root command until it returns or the process is interrupted.
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		cancel()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configName, "config-name", "manager_config", "config file name without extension")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "directory searched for the config file before ./config")

	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd, userCmd)
}
