package workspace

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/forgelabs/forgectl/internal/config"
	"github.com/forgelabs/forgectl/internal/errors"
	"github.com/forgelabs/forgectl/internal/log"
)

// fallbackAgentConfig is written when the agent config download fails.
// It matches the artifact served at get.forgelabs.io at the time of writing.
const fallbackAgentConfig = `# Forge agent configuration (bundled default)
agent:
  log_level: info
  poll_interval: 30s
  endpoints:
    api: https://api.forgelabs.io
`

// fallbackRegistryManifest is written when the registry manifest download fails
const fallbackRegistryManifest = `{
  "version": 1,
  "registries": [
    {"name": "forge", "url": "https://registry.forgelabs.io"}
  ]
}
`

// Artifact is a configuration file the workspace needs: fetched from URL,
// with Fallback used verbatim when the fetch fails
type Artifact struct {
	Name     string
	URL      string
	RelPath  string
	Fallback string
}

// Provisioner creates the workspace directory tree and places the
// configuration artifacts
type Provisioner struct {
	cfg    config.Config
	client *http.Client
	logger *log.Logger
}

// NewProvisioner creates a provisioner for the given configuration
func NewProvisioner(cfg config.Config, logger *log.Logger) *Provisioner {
	if logger == nil {
		logger = log.DefaultLogger()
	}
	return &Provisioner{
		cfg: cfg,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// Dirs returns the directory tree rooted at the workspace home
func (p *Provisioner) Dirs() []string {
	return []string{
		p.cfg.Home,
		filepath.Join(p.cfg.Home, "bin"),
		filepath.Join(p.cfg.Home, "config"),
		filepath.Join(p.cfg.Home, "cache"),
	}
}

// Artifacts returns the configuration artifacts for this workspace
func (p *Provisioner) Artifacts() []Artifact {
	return []Artifact{
		{
			Name:     "agent config",
			URL:      p.cfg.AgentConfigURL,
			RelPath:  filepath.Join("config", "agent.yaml"),
			Fallback: fallbackAgentConfig,
		},
		{
			Name:     "registry manifest",
			URL:      p.cfg.RegistryManifestURL,
			RelPath:  filepath.Join("config", "registry.json"),
			Fallback: fallbackRegistryManifest,
		},
	}
}

// Provision creates the directory tree and places every artifact. Download
// failures are not fatal: the bundled fallback content is written instead.
func (p *Provisioner) Provision(ctx context.Context) error {
	for _, dir := range p.Dirs() {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(errors.ErrCodeDirectoryFailed, fmt.Sprintf("creating %s", dir), err)
		}
	}
	p.logger.Debug("workspace directories created", "home", p.cfg.Home)

	for _, artifact := range p.Artifacts() {
		if err := p.place(ctx, artifact); err != nil {
			return err
		}
	}
	return nil
}

// place downloads one artifact, falling back to the bundled content
func (p *Provisioner) place(ctx context.Context, artifact Artifact) error {
	content, err := p.fetch(ctx, artifact.URL)
	if err != nil {
		p.logger.WithError(err).Warn("download failed, using bundled fallback",
			"artifact", artifact.Name, "url", artifact.URL)
		content = []byte(artifact.Fallback)
	} else {
		p.logger.Debug("artifact downloaded", "artifact", artifact.Name, "bytes", len(content))
	}

	path := filepath.Join(p.cfg.Home, artifact.RelPath)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeFileWriteFailed, fmt.Sprintf("writing %s", path), err)
	}
	return nil
}

func (p *Provisioner) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeDownloadFailed, fmt.Sprintf("building request for %s", url), err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeDownloadFailed, fmt.Sprintf("fetching %s", url), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New(errors.ErrCodeDownloadFailed,
			fmt.Sprintf("fetching %s: status %d", url, resp.StatusCode))
	}

	return io.ReadAll(resp.Body)
}
