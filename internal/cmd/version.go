package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/forgelabs/forgectl/internal/version"
)

var flagVersionShort bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		info := version.GetInfo()
		if flagVersionShort {
			fmt.Fprintln(cmd.OutOrStdout(), info.Short())
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), info.String())
		return nil
	},
}

func init() {
	versionCmd.Flags().BoolVar(&flagVersionShort, "short", false, "print the bare version number")

	rootCmd.AddCommand(versionCmd)
}
