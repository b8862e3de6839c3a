package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/forgelabs/forgectl/internal/identity"
	"github.com/forgelabs/forgectl/internal/session"
	"github.com/forgelabs/forgectl/internal/tui"
	"github.com/forgelabs/forgectl/internal/ux"
)

var (
	flagEmail    string
	flagPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to the Forge platform",
	Long: `Sign in to the Forge platform with your email and password.

With no flags an interactive prompt collects the credentials. The
resulting session is written to <forge home>/session.json for the other
Forge tools; any previous session is replaced.

Examples:
  forgectl login
  forgectl login --email user@example.com --password secret`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return doLogin(cmd.Context(), flagEmail, flagPassword)
	},
}

func doLogin(ctx context.Context, email, password string) error {
	creds := identity.Credentials{Identifier: email, Secret: password}

	if creds.Identifier == "" || creds.Secret == "" {
		if !ux.Interactive() {
			return fmt.Errorf("--email and --password are required when not running interactively")
		}
		var err error
		creds, err = tui.PromptForCredentials(creds)
		if err != nil {
			return err
		}
	}

	client := identity.NewClient(runCfg, logger)

	sess, err := client.Login(ctx, creds)
	if err != nil {
		return err
	}

	store := session.NewStore(runCfg.SessionPath())
	if err := store.Save(session.Record{
		Token:       sess.SessionToken,
		UserID:      sess.UserID,
		WorkspaceID: sess.WorkspaceID,
		JWTToken:    sess.BearerToken,
		Email:       creds.Identifier,
	}); err != nil {
		return err
	}
	logger.Info("session persisted", "path", store.Path())

	ux.Successf("Logged in as %s", creds.Identifier)
	if sess.WorkspaceID != "" {
		ux.Dimf("Workspace: %s", sess.WorkspaceID)
	}
	if sess.BearerToken == "" {
		ux.Warnf("No bearer token available; API calls will use the session token")
	}
	ux.Dimf("Session stored in %s", store.Path())

	return nil
}

func init() {
	loginCmd.Flags().StringVar(&flagEmail, "email", "", "email address")
	loginCmd.Flags().StringVar(&flagPassword, "password", "", "password")

	rootCmd.AddCommand(loginCmd)
}
