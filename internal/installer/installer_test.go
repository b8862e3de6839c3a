package installer

import (
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgelabs/forgectl/internal/detect"
	"github.com/forgelabs/forgectl/internal/errors"
	"github.com/forgelabs/forgectl/internal/log"
)

func quietLogger() *log.Logger {
	return log.New(log.Config{Level: log.LevelError, Output: log.NewOutput(io.Discard)})
}

func brewManager() detect.PackageManager {
	return detect.PackageManager{
		Name:        "brew",
		Path:        "/opt/homebrew/bin/brew",
		InstallArgs: []string{"install"},
	}
}

func TestInstall(t *testing.T) {
	var gotName string
	var gotArgs []string

	inst := New(brewManager(), quietLogger())
	inst.run = func(ctx context.Context, name string, args ...string) error {
		gotName = name
		gotArgs = args
		return nil
	}

	require.NoError(t, inst.Install(context.Background(), []string{"git", "jq"}))

	assert.Equal(t, "/opt/homebrew/bin/brew", gotName)
	assert.Equal(t, []string{"install", "git", "jq"}, gotArgs)
}

func TestInstallNothing(t *testing.T) {
	inst := New(brewManager(), quietLogger())
	inst.run = func(ctx context.Context, name string, args ...string) error {
		t.Fatal("no command should run for an empty package list")
		return nil
	}

	require.NoError(t, inst.Install(context.Background(), nil))
}

func TestInstallFailure(t *testing.T) {
	inst := New(brewManager(), quietLogger())
	inst.run = func(ctx context.Context, name string, args ...string) error {
		return fmt.Errorf("exit status 1")
	}

	err := inst.Install(context.Background(), []string{"git"})
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInstallFailed, errors.CodeOf(err))
}

func TestInstallSudoPrefix(t *testing.T) {
	mgr := detect.PackageManager{
		Name:        "apt-get",
		Path:        "/usr/bin/apt-get",
		InstallArgs: []string{"install", "-y"},
		NeedsSudo:   true,
	}

	var gotName string
	var gotArgs []string

	inst := New(mgr, quietLogger())
	inst.run = func(ctx context.Context, name string, args ...string) error {
		gotName = name
		gotArgs = args
		return nil
	}

	require.NoError(t, inst.Install(context.Background(), []string{"git"}))

	// Running as root skips sudo; either shape is correct for the host we're on
	if gotName == "sudo" {
		assert.Equal(t, []string{"/usr/bin/apt-get", "install", "-y", "git"}, gotArgs)
	} else {
		assert.Equal(t, "/usr/bin/apt-get", gotName)
		assert.Equal(t, []string{"install", "-y", "git"}, gotArgs)
	}
}

func TestMissingFrom(t *testing.T) {
	missing := MissingFrom([]string{"sh", "definitely-not-a-real-tool-xyz"})

	assert.NotContains(t, missing, "sh")
	assert.Contains(t, missing, "definitely-not-a-real-tool-xyz")
}
