package probe

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Tool describes one host tool the environment report knows about.
type Tool struct {
	// Name is the binary to look for in PATH.
	Name string

	// File, when set, detects the tool by file existence instead of a PATH
	// lookup. nvm installs as a shell function, so only its loader script is
	// observable.
	File string

	// Required indicates the tool is needed before any stack can install.
	Required bool

	// Description explains what the tool provides.
	Description string

	// InstallHint tells the user how to get the tool.
	InstallHint string
}

// DefaultTools returns the set of tools the environment report checks.
func DefaultTools() []Tool {
	home, _ := os.UserHomeDir()
	return []Tool{
		{
			Name:        "brew",
			Required:    true,
			Description: "Homebrew package manager for formulas and casks",
			InstallHint: "run devsetup and accept the bootstrap, or see https://brew.sh",
		},
		{
			Name:        "git",
			Required:    true,
			Description: "Version control, ships with the command-line toolchain",
			InstallHint: "xcode-select --install",
		},
		{
			Name:        "conda",
			Description: "Python distribution and environment manager",
			InstallHint: "brew install --cask miniconda",
		},
		{
			Name:        "pyenv",
			Description: "Python version manager",
			InstallHint: "brew install pyenv",
		},
		{
			Name:        "nvm",
			File:        "/opt/homebrew/opt/nvm/nvm.sh",
			Description: "Node version manager (shell function, detected via its loader)",
			InstallHint: "brew install nvm",
		},
		{
			Name:        "node",
			Description: "Node.js runtime",
			InstallHint: "nvm install lts/*",
		},
		{
			Name:        "python3",
			Description: "Python runtime",
			InstallHint: "installed with conda or pyenv",
		},
		{
			Name:        "code",
			Description: "Visual Studio Code CLI, used for extension installs",
			InstallHint: "brew install --cask visual-studio-code",
		},
		{
			Name:        "ssh key",
			File:        home + "/.ssh/id_rsa",
			Description: "SSH key pair for Git hosting access",
			InstallHint: "devsetup keygen",
		},
	}
}

// CheckResult is the outcome of probing a single tool.
type CheckResult struct {
	Tool    Tool
	Found   bool
	Path    string
	Version string
}

// CheckResults aggregates probe outcomes for a tool set.
type CheckResults struct {
	Results []CheckResult
	Missing []Tool
}

// HasErrors reports whether any required tool is missing.
func (r *CheckResults) HasErrors() bool {
	for _, tool := range r.Missing {
		if tool.Required {
			return true
		}
	}
	return false
}

// Error returns an error naming the missing required tools, or nil.
func (r *CheckResults) Error() error {
	var missing []string
	for _, tool := range r.Missing {
		if tool.Required {
			missing = append(missing, fmt.Sprintf("%s (%s)", tool.Name, tool.InstallHint))
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("missing required tools: %s", strings.Join(missing, ", "))
}

// Check probes each tool and records where it was found.
func Check(tools []Tool) *CheckResults {
	results := &CheckResults{}

	for _, tool := range tools {
		result := CheckResult{Tool: tool}

		switch {
		case tool.File != "":
			if _, err := os.Stat(tool.File); err == nil {
				result.Found = true
				result.Path = tool.File
			}
		default:
			if path, err := exec.LookPath(tool.Name); err == nil {
				result.Found = true
				result.Path = path
				result.Version = toolVersion(tool.Name)
			}
		}

		if !result.Found {
			results.Missing = append(results.Missing, tool)
		}
		results.Results = append(results.Results, result)
	}

	return results
}

// CheckDefault probes the default tool set.
func CheckDefault() *CheckResults {
	return Check(DefaultTools())
}

// toolVersion asks the tool for its version, best effort.
func toolVersion(name string) string {
	versionFlags := []string{"--version", "version", "-v"}

	for _, flag := range versionFlags {
		// #nosec G204 - name comes from the static tool table, not user input
		cmd := exec.Command(name, flag)
		output, err := cmd.Output()
		if err == nil {
			lines := strings.Split(string(output), "\n")
			if len(lines) > 0 {
				return strings.TrimSpace(lines[0])
			}
		}
	}

	return ""
}
