package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/forgelabs/forgectl/internal/detect"
	"github.com/forgelabs/forgectl/internal/errors"
	"github.com/forgelabs/forgectl/internal/installer"
	"github.com/forgelabs/forgectl/internal/ux"
	"github.com/forgelabs/forgectl/internal/workspace"
)

var (
	flagWithDevEnv  bool
	flagSkipInstall bool
	flagAssumeYes   bool
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Provision the local Forge workspace",
	Long: `Provision the local Forge workspace without logging in.

Creates the workspace directory tree, downloads the configuration
artifacts (falling back to bundled defaults when the download fails),
and installs the required packages through the system package manager.

Examples:
  forgectl setup
  forgectl setup --with-dev-env
  forgectl setup --skip-install`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return doSetup(cmd.Context(), setupOptions{
			withDevEnv:  flagWithDevEnv,
			skipInstall: flagSkipInstall,
			assumeYes:   flagAssumeYes,
		})
	},
}

type setupOptions struct {
	withDevEnv  bool
	skipInstall bool
	assumeYes   bool
}

func doSetup(ctx context.Context, opts setupOptions) error {
	env := detect.DetectAll()
	if env.CI.Detected {
		logger.Debug("CI environment detected", "ci", env.CI.Name)
		opts.assumeYes = true
	}

	ux.Heading("Provisioning Forge workspace in %s", runCfg.Home)

	prov := workspace.NewProvisioner(runCfg, logger)
	err := ux.Spin("Downloading configuration...", func() error {
		return prov.Provision(ctx)
	})
	if err != nil {
		return ux.FormatError(err, "provisioning workspace")
	}
	ux.Successf("Workspace ready")

	if err := runCfg.Save(); err != nil {
		return ux.FormatError(err, "saving configuration")
	}

	if opts.skipInstall {
		ux.Dimf("Skipping package installation (--skip-install)")
		return nil
	}

	if err := installPackages(ctx, env, opts); err != nil {
		return err
	}

	return nil
}

func installPackages(ctx context.Context, env *detect.Context, opts setupOptions) error {
	wanted := installer.BasePackages
	if opts.withDevEnv {
		if !runCfg.OfferDevEnv {
			return errors.New(errors.ErrCodeConfigInvalid,
				fmt.Sprintf("the %s preset does not offer the dev environment", runCfg.Preset))
		}
		wanted = append(append([]string{}, wanted...), installer.DevEnvPackages...)
	}

	missing := installer.MissingFrom(wanted)
	if len(missing) == 0 {
		ux.Successf("All required packages already installed")
		return nil
	}

	if !env.ManagerFound {
		return errors.NewNoPackageManagerError()
	}
	manager := env.Manager
	logger.Debug("package manager detected", "manager", manager.Name, "path", manager.Path)

	if !opts.assumeYes && ux.Interactive() {
		if !ux.Confirm(fmt.Sprintf("Install %v with %s?", missing, manager.Name), true) {
			ux.Dimf("Skipping package installation")
			return nil
		}
	}

	inst := installer.New(manager, logger)
	err := ux.Spin("Installing packages...", func() error {
		return inst.Install(ctx, missing)
	})
	if err != nil {
		return err
	}
	ux.Successf("Installed %v", missing)
	return nil
}

func init() {
	setupCmd.Flags().BoolVar(&flagWithDevEnv, "with-dev-env", false, "also install the development environment tooling")
	setupCmd.Flags().BoolVar(&flagSkipInstall, "skip-install", false, "skip package installation")
	setupCmd.Flags().BoolVarP(&flagAssumeYes, "yes", "y", false, "auto-accept all prompts (non-interactive mode)")

	rootCmd.AddCommand(setupCmd)
}
