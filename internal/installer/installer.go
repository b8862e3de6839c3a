package installer

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/forgelabs/forgectl/internal/detect"
	"github.com/forgelabs/forgectl/internal/errors"
	"github.com/forgelabs/forgectl/internal/log"
)

// BasePackages are required by every Forge workspace
var BasePackages = []string{"git", "curl", "jq"}

// DevEnvPackages are the optional development-environment tooling, installed
// only when the preset offers it and the operator opts in
var DevEnvPackages = []string{"docker", "direnv", "shellcheck"}

// Installer installs packages through the detected system package manager
type Installer struct {
	manager detect.PackageManager
	logger  *log.Logger

	// run is swapped out in tests
	run func(ctx context.Context, name string, args ...string) error
}

// New creates an installer for the given package manager
func New(manager detect.PackageManager, logger *log.Logger) *Installer {
	if logger == nil {
		logger = log.DefaultLogger()
	}
	return &Installer{
		manager: manager,
		logger:  logger,
		run:     runCommand,
	}
}

func runCommand(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// Install installs the given packages in one package-manager invocation
func (i *Installer) Install(ctx context.Context, packages []string) error {
	if len(packages) == 0 {
		return nil
	}

	name := i.manager.Path
	args := append([]string{}, i.manager.InstallArgs...)
	if i.manager.NeedsSudo && os.Geteuid() != 0 {
		args = append([]string{name}, args...)
		name = "sudo"
	}
	args = append(args, packages...)

	i.logger.Info("installing packages", "manager", i.manager.Name, "packages", packages)

	if err := i.run(ctx, name, args...); err != nil {
		return errors.Wrap(errors.ErrCodeInstallFailed,
			fmt.Sprintf("%s failed to install %v", i.manager.Name, packages), err).
			WithSuggestion("Install the packages manually and re-run with --skip-install")
	}
	return nil
}

// MissingFrom filters packages down to the ones not already on PATH.
// Package names double as command names for everything we install.
func MissingFrom(packages []string) []string {
	var missing []string
	for _, pkg := range packages {
		if !detect.DetectTool(pkg).Available {
			missing = append(missing, pkg)
		}
	}
	return missing
}
