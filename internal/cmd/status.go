package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/forgelabs/forgectl/internal/session"
	"github.com/forgelabs/forgectl/internal/ux"
)

var flagStatusFormat string

// statusView is what `forgectl status` prints. Tokens stay out of it on
// purpose; only their presence is reported.
type statusView struct {
	LoggedIn    bool   `json:"logged_in" yaml:"logged_in"`
	Email       string `json:"email,omitempty" yaml:"email,omitempty"`
	UserID      string `json:"user_id,omitempty" yaml:"user_id,omitempty"`
	WorkspaceID string `json:"workspace_id,omitempty" yaml:"workspace_id,omitempty"`
	HasBearer   bool   `json:"has_bearer_token" yaml:"has_bearer_token"`
	SessionPath string `json:"session_path" yaml:"session_path"`
}

func (v statusView) String() string {
	if !v.LoggedIn {
		return fmt.Sprintf("Not logged in (no session at %s)\nRun 'forgectl login' to sign in.", v.SessionPath)
	}
	out := fmt.Sprintf("Logged in as %s", v.Email)
	if v.Email == "" {
		out = "Logged in"
	}
	if v.UserID != "" {
		out += fmt.Sprintf("\nUser:      %s", v.UserID)
	}
	if v.WorkspaceID != "" {
		out += fmt.Sprintf("\nWorkspace: %s", v.WorkspaceID)
	}
	if v.HasBearer {
		out += "\nBearer:    present"
	} else {
		out += "\nBearer:    absent"
	}
	out += fmt.Sprintf("\nSession:   %s", v.SessionPath)
	return out
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current session",
	Long: `Show whether a Forge session exists and who it belongs to.

Token values are never printed, only whether they are present.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store := session.NewStore(runCfg.SessionPath())
		rec, ok, err := store.Load()
		if err != nil {
			return err
		}

		view := statusView{
			LoggedIn:    ok,
			SessionPath: store.Path(),
		}
		if ok {
			view.Email = rec.Email
			view.UserID = rec.UserID
			view.WorkspaceID = rec.WorkspaceID
			view.HasBearer = rec.JWTToken != ""
		}

		formatter, err := ux.NewFormatter(flagStatusFormat, nil)
		if err != nil {
			return err
		}
		return formatter.Format(view)
	},
}

func init() {
	statusCmd.Flags().StringVar(&flagStatusFormat, "format", "text", "output format (text, json, yaml)")

	rootCmd.AddCommand(statusCmd)
}
