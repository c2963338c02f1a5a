// Package catalog defines the installable stacks and their tool specs.
//
// A catalog is configuration, not runtime state: each stack names an ordered
// collection of tool specs plus the shell-profile hooks and post-install
// notes that go with it. The built-in catalog covers the four standard
// stacks; a YAML file with the same shape can replace it.
package catalog

import "github.com/imamik/devsetup/internal/shellrc"

// StackID identifies one of the provisionable stacks.
type StackID string

// The stacks the menu can select.
const (
	StackAcademic    StackID = "academic"
	StackDataScience StackID = "data-science"
	StackWebPython   StackID = "web-python"
	StackWebJS       StackID = "web-js"
)

// RequiredStacks lists the stack IDs every catalog must define, in menu order.
var RequiredStacks = []StackID{StackAcademic, StackDataScience, StackWebPython, StackWebJS}

// InstallMethod selects the package-manager dialect used to install a spec.
type InstallMethod string

// Supported install methods.
const (
	MethodBrew      InstallMethod = "brew"
	MethodCask      InstallMethod = "cask"
	MethodConda     InstallMethod = "conda"
	MethodPip       InstallMethod = "pip"
	MethodNpm       InstallMethod = "npm"
	MethodNvm       InstallMethod = "nvm"
	MethodExtension InstallMethod = "extension"
)

// ValidMethods lists every accepted install method.
var ValidMethods = []InstallMethod{
	MethodBrew, MethodCask, MethodConda, MethodPip, MethodNpm, MethodNvm, MethodExtension,
}

// ToolSpec is one installable unit within a stack.
type ToolSpec struct {
	// Name is the formula, cask, package, version alias, or extension id.
	Name string `yaml:"name" mapstructure:"name"`

	// Method selects the install dialect.
	Method InstallMethod `yaml:"method" mapstructure:"method"`

	// BestEffort steps log their failure and never abort the run.
	BestEffort bool `yaml:"best_effort,omitempty" mapstructure:"best_effort"`
}

// Stack is a named, idempotent unit of provisioning.
type Stack struct {
	ID          StackID `yaml:"id" mapstructure:"id"`
	Name        string  `yaml:"name" mapstructure:"name"`
	Description string  `yaml:"description,omitempty" mapstructure:"description"`

	// CondaEnv, when set, names the conda environment this stack provisions.
	// An existing environment with this name skips the stack's conda specs.
	CondaEnv string `yaml:"conda_env,omitempty" mapstructure:"conda_env"`

	// Tools are installed in order through the method dialects.
	Tools []ToolSpec `yaml:"tools" mapstructure:"tools"`

	// ProfileLines are guarded shell-profile appends (version-manager hooks).
	ProfileLines []shellrc.ProfileLine `yaml:"profile_lines,omitempty" mapstructure:"profile_lines"`

	// Notes are printed after the stack completes.
	Notes []string `yaml:"notes,omitempty" mapstructure:"notes"`
}

// Catalog holds every defined stack.
type Catalog struct {
	Stacks []Stack `yaml:"stacks" mapstructure:"stacks"`
}

// Stack returns the stack with the given id.
func (c *Catalog) Stack(id StackID) (*Stack, bool) {
	for i := range c.Stacks {
		if c.Stacks[i].ID == id {
			return &c.Stacks[i], true
		}
	}
	return nil, false
}
