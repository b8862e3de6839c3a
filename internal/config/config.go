package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/forgelabs/forgectl/internal/errors"
)

// Preset names. The production and staging environments share one core and
// differ only in default endpoints and whether the dev-environment install
// is offered.
const (
	PresetProduction = "production"
	PresetStaging    = "staging"
)

// Config carries every tunable the components need. It is built once at
// startup and passed explicitly; nothing reads it as ambient state.
type Config struct {
	// Preset is the name this config was derived from
	Preset string `yaml:"preset"`

	// IdentityURL is the base URL of the identity service
	IdentityURL string `yaml:"identity_url"`

	// JWTTemplate is the tokenization template passed to the whoami endpoint
	JWTTemplate string `yaml:"jwt_template"`

	// Home is the workspace root directory
	Home string `yaml:"home"`

	// AgentConfigURL is where the agent configuration artifact is fetched from
	AgentConfigURL string `yaml:"agent_config_url"`

	// RegistryManifestURL is where the tool registry manifest is fetched from
	RegistryManifestURL string `yaml:"registry_manifest_url"`

	// OfferDevEnv controls whether this preset offers the dev-environment install
	OfferDevEnv bool `yaml:"offer_dev_env"`

	// Verbose enables debug diagnostics
	Verbose bool `yaml:"-"`
}

// ForPreset returns the configuration for a named preset
func ForPreset(name string) (Config, error) {
	switch name {
	case PresetProduction, "":
		return Config{
			Preset:              PresetProduction,
			IdentityURL:         "https://id.forgelabs.io",
			JWTTemplate:         "forge_cli",
			AgentConfigURL:      "https://get.forgelabs.io/config/agent.yaml",
			RegistryManifestURL: "https://get.forgelabs.io/config/registry.json",
			OfferDevEnv:         false,
		}, nil
	case PresetStaging:
		return Config{
			Preset:              PresetStaging,
			IdentityURL:         "https://id.staging.forgelabs.io",
			JWTTemplate:         "forge_cli",
			AgentConfigURL:      "https://get.staging.forgelabs.io/config/agent.yaml",
			RegistryManifestURL: "https://get.staging.forgelabs.io/config/registry.json",
			OfferDevEnv:         true,
		}, nil
	default:
		return Config{}, errors.NewPresetUnknownError(name)
	}
}

// ApplyEnv overrides fields from the environment:
// FORGE_IDENTITY_URL, FORGE_HOME, FORGE_DEBUG.
func (c Config) ApplyEnv() Config {
	if url := os.Getenv("FORGE_IDENTITY_URL"); url != "" {
		c.IdentityURL = url
	}
	if home := os.Getenv("FORGE_HOME"); home != "" {
		c.Home = home
	}
	if os.Getenv("FORGE_DEBUG") != "" {
		c.Verbose = true
	}
	return c
}

// DefaultHome returns the default workspace root, ~/.forge
func DefaultHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".forge"), nil
}

// SessionPath returns the path of the persisted session record
func (c Config) SessionPath() string {
	return filepath.Join(c.Home, "session.json")
}

// FilePath returns the path of the persisted CLI configuration
func (c Config) FilePath() string {
	return filepath.Join(c.Home, "config.yaml")
}

// Load reads a previously saved configuration from the workspace.
// A missing file is not an error; ok reports whether one was found.
func Load(home string) (Config, bool, error) {
	data, err := os.ReadFile(filepath.Join(home, "config.yaml"))
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, false, nil
		}
		return Config{}, false, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, false, errors.Wrap(errors.ErrCodeConfigInvalid,
			fmt.Sprintf("malformed config file: %s", filepath.Join(home, "config.yaml")), err)
	}
	cfg.Home = home
	return cfg, true, nil
}

// Save writes the configuration to <home>/config.yaml
func (c Config) Save() error {
	if err := os.MkdirAll(c.Home, 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeDirectoryFailed, fmt.Sprintf("creating %s", c.Home), err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(c.FilePath(), data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeFileWriteFailed, fmt.Sprintf("writing %s", c.FilePath()), err)
	}
	return nil
}
