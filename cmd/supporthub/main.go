// @title SupportHub API
// @version 1.0
// @description Customer-support dispatch: inbound intake, ticket routing and agent workflows.
// @BasePath /
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/supporthub/supporthub/internal/interfaces/cli/migrate"
	"github.com/supporthub/supporthub/internal/interfaces/cli/notifications"
	"github.com/supporthub/supporthub/internal/interfaces/cli/seed"
	"github.com/supporthub/supporthub/internal/interfaces/cli/server"
	"github.com/supporthub/supporthub/internal/interfaces/cli/token"
	"github.com/supporthub/supporthub/internal/shared/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "supporthub",
		Short:   "SupportHub - customer support dispatch service",
		Long:    `SupportHub ingests customer messages from every channel, routes the resulting tickets to queues and agents, and serves the agent and supervisor API.`,
		Version: version.String(),
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
		token.NewCommand(),
		notifications.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
