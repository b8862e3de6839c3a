package detect

import (
	"os"
	"os/exec"
	"strings"
)

// Context represents the detected host environment
type Context struct {
	// Manager is the system package manager, if one was found
	Manager      PackageManager
	ManagerFound bool

	// Tools maps tool name to its detection result
	Tools map[string]Tool

	// CI describes the CI/CD environment, if any
	CI CIInfo
}

// PackageManager holds a detected package manager and the argument shape
// needed to install packages non-interactively with it
type PackageManager struct {
	Name        string
	Path        string
	InstallArgs []string
	NeedsSudo   bool
}

// Tool holds a single tool detection result
type Tool struct {
	Name      string
	Available bool
	Path      string
	Version   string
}

// CIInfo holds CI/CD environment information
type CIInfo struct {
	Detected bool
	Name     string // "github", "gitlab", "jenkins", "circleci", etc.
}

// knownManagers is probed in order; the first one on PATH wins.
var knownManagers = []PackageManager{
	{Name: "brew", InstallArgs: []string{"install"}},
	{Name: "apt-get", InstallArgs: []string{"install", "-y"}, NeedsSudo: true},
	{Name: "dnf", InstallArgs: []string{"install", "-y"}, NeedsSudo: true},
	{Name: "pacman", InstallArgs: []string{"-S", "--noconfirm"}, NeedsSudo: true},
	{Name: "zypper", InstallArgs: []string{"install", "-y"}, NeedsSudo: true},
	{Name: "apk", InstallArgs: []string{"add"}, NeedsSudo: true},
}

// DetectAll runs all detection checks and returns the context
func DetectAll() *Context {
	ctx := &Context{
		Tools: make(map[string]Tool),
	}

	ctx.Manager, ctx.ManagerFound = DetectPackageManager()

	for _, name := range []string{"git", "curl", "docker"} {
		ctx.Tools[name] = DetectTool(name)
	}

	ctx.CI = detectCI()

	return ctx
}

// DetectPackageManager probes PATH for a supported package manager
func DetectPackageManager() (PackageManager, bool) {
	for _, mgr := range knownManagers {
		path, err := exec.LookPath(mgr.Name)
		if err != nil {
			continue
		}
		mgr.Path = path
		return mgr, true
	}
	return PackageManager{}, false
}

// DetectTool checks whether a tool is on PATH and asks it for its version
func DetectTool(name string) Tool {
	tool := Tool{Name: name}

	path, err := exec.LookPath(name)
	if err != nil {
		return tool
	}
	tool.Available = true
	tool.Path = path

	output, err := exec.Command(path, "--version").Output()
	if err == nil {
		// First line only; git and docker print multi-line banners
		version := strings.TrimSpace(string(output))
		if idx := strings.IndexByte(version, '\n'); idx >= 0 {
			version = version[:idx]
		}
		tool.Version = version
	}

	return tool
}

// detectCI checks for common CI environment markers
func detectCI() CIInfo {
	ci := CIInfo{}

	checks := []struct {
		envVar string
		name   string
	}{
		{"GITHUB_ACTIONS", "github"},
		{"GITLAB_CI", "gitlab"},
		{"JENKINS_URL", "jenkins"},
		{"CIRCLECI", "circleci"},
		{"TRAVIS", "travis"},
		{"CI", "generic"},
	}

	for _, check := range checks {
		if os.Getenv(check.envVar) != "" {
			ci.Detected = true
			ci.Name = check.name
			return ci
		}
	}

	return ci
}
