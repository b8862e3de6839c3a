package cmd

import (
	"context"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/forgelabs/forgectl/internal/config"
	"github.com/forgelabs/forgectl/internal/log"
)

var (
	flagPreset    string
	flagVerbose   bool
	flagSetupOnly bool

	// runCfg is resolved once in the persistent pre-run and passed into
	// every component; no component reads configuration as ambient state.
	runCfg config.Config
	logger *log.Logger
)

var rootCmd = &cobra.Command{
	Use:   "forgectl",
	Short: "Bootstrap a Forge workspace and sign in to the platform",
	Long: `forgectl provisions a local Forge workspace and authenticates you
against the Forge platform.

Run without a subcommand it performs the full bootstrap: workspace
directories, configuration artifacts, required packages, then an
interactive login. Use the subcommands for the individual steps.

The session is stored in <forge home>/session.json (default ~/.forge)
and is read by the other Forge tools.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return resolveConfig()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Bare invocation: full bootstrap. Setup first, then login unless
		// --setup-only was given.
		if err := doSetup(cmd.Context(), setupOptions{
			withDevEnv:  flagWithDevEnv,
			skipInstall: flagSkipInstall,
			assumeYes:   flagAssumeYes,
		}); err != nil {
			return err
		}
		if flagSetupOnly {
			return nil
		}
		return doLogin(cmd.Context(), "", "")
	},
}

// resolveConfig builds the run configuration: preset defaults, then any
// previously saved workspace config, then environment overrides, then flags.
func resolveConfig() error {
	cfg, err := config.ForPreset(flagPreset)
	if err != nil {
		return err
	}

	home, err := config.DefaultHome()
	if err != nil {
		return err
	}
	cfg.Home = home

	if saved, ok, err := config.Load(home); err != nil {
		return err
	} else if ok && saved.Preset == cfg.Preset {
		cfg = saved
	}

	cfg = cfg.ApplyEnv()
	if flagVerbose {
		cfg.Verbose = true
	}
	runCfg = cfg

	logCfg := log.DefaultConfig()
	if cfg.Verbose {
		logCfg = log.VerboseConfig()
	}
	if v := os.Getenv("FORGE_LOG_LEVEL"); v != "" {
		logCfg.Level = log.ParseLevel(v)
	}
	if v := os.Getenv("FORGE_LOG_FORMAT"); v != "" {
		logCfg.Format = log.ParseFormat(v)
	}
	logger = log.New(logCfg).With("run_id", uuid.NewString())
	log.SetDefaultLogger(logger)

	return nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with the given context
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", config.PresetProduction, "configuration preset (production, staging)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug diagnostics (same as FORGE_DEBUG=1)")

	rootCmd.Flags().BoolVar(&flagSetupOnly, "setup-only", false, "provision the workspace without logging in")
	rootCmd.Flags().BoolVar(&flagWithDevEnv, "with-dev-env", false, "also install the development environment tooling")
	rootCmd.Flags().BoolVar(&flagSkipInstall, "skip-install", false, "skip package installation")
	rootCmd.Flags().BoolVarP(&flagAssumeYes, "yes", "y", false, "auto-accept all prompts (non-interactive mode)")
}
