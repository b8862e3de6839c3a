package cmd

import (
	"github.com/spf13/cobra"

	"github.com/forgelabs/forgectl/internal/session"
	"github.com/forgelabs/forgectl/internal/ux"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the stored session",
	Long:  `Remove the stored session file. Logging out when no session exists is not an error.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store := session.NewStore(runCfg.SessionPath())
		if err := store.Remove(); err != nil {
			return err
		}
		logger.Info("session removed", "path", store.Path())
		ux.Successf("Logged out")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
