package token

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/supporthub/supporthub/internal/infrastructure/auth"
	"github.com/supporthub/supporthub/internal/infrastructure/database"
	"github.com/supporthub/supporthub/internal/infrastructure/repository"
	"github.com/supporthub/supporthub/internal/interfaces/cli/bootstrap"
)

var (
	env   string
	email string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an access token for an existing user",
		Long:  `Issue a bearer token for a staff user, for local testing against the API.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVar(&email, "email", "", "Email of the user to issue the token for (required)")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, log, err := bootstrap.ConfigAndDatabase(bootstrap.ResolveEnv(env))
	if err != nil {
		return err
	}
	defer database.Close()

	u, err := repository.NewUserRepository(database.Get()).FindByEmail(cmd.Context(), strings.TrimSpace(email))
	if err != nil {
		return fmt.Errorf("failed to look up user: %w", err)
	}
	if u == nil {
		return fmt.Errorf("no user with email %q", email)
	}
	if !u.IsActive() {
		return fmt.Errorf("user %q is inactive", email)
	}

	token, expiresAt, err := auth.NewJWTService(cfg.Auth.JWT).Issue(u.ID(), u.Name(), u.Role())
	if err != nil {
		return fmt.Errorf("failed to issue token: %w", err)
	}

	log.Infow("issued access token", "user_id", u.ID(), "role", u.Role().String(), "expires_at", expiresAt)
	fmt.Println(token)
	return nil
}
