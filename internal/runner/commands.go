package runner

import "fmt"

// Constructors for the package-manager dialects the workflow speaks.
//
// conda, pip, npm, and nvm are reached through a login shell because they are
// activated by profile hooks (nvm is a shell function, conda and pyenv adjust
// PATH in the profile). brew and the Xcode tools are plain binaries.

// BrewInstall installs a Homebrew formula.
func BrewInstall(formula string) Command {
	return Command{Path: "brew", Args: []string{"install", formula}}
}

// CaskInstall installs a Homebrew cask.
func CaskInstall(cask string) Command {
	return Command{Path: "brew", Args: []string{"install", "--cask", cask}}
}

// BrewUpdate refreshes the Homebrew package index.
func BrewUpdate() Command {
	return Command{Path: "brew", Args: []string{"update"}}
}

// HomebrewBootstrap downloads the official Homebrew install script and pipes
// it into bash. A command substitution here would be expanded by the child
// shell and word-split the script body instead of executing it.
func HomebrewBootstrap() Command {
	return Command{
		Path: "/bin/bash",
		Args: []string{"-c", `curl -fsSL https://raw.githubusercontent.com/Homebrew/install/HEAD/install.sh | /bin/bash`},
	}
}

// XcodeToolchainQuery checks whether the command-line toolchain is installed.
// Exit status is the answer; the printed path is not used.
func XcodeToolchainQuery() Command {
	return Command{Path: "xcode-select", Args: []string{"-p"}}
}

// XcodeToolchainInstall opens the GUI installer for the command-line
// toolchain. The command returns before the install finishes.
func XcodeToolchainInstall() Command {
	return Command{Path: "xcode-select", Args: []string{"--install"}}
}

// CondaEnvList queries the existing conda environments.
func CondaEnvList() Command {
	return loginShell("conda env list")
}

// CondaCreateEnv creates a named conda environment.
func CondaCreateEnv(env string) Command {
	return loginShell(fmt.Sprintf("conda create -y -n %s python", env))
}

// CondaInstall installs a package into a named conda environment.
func CondaInstall(env, pkg string) Command {
	return loginShell(fmt.Sprintf("conda install -y -n %s %s", env, pkg))
}

// PipInstall installs a Python package for the current user.
func PipInstall(pkg string) Command {
	return loginShell(fmt.Sprintf("python3 -m pip install --user %s", pkg))
}

// NpmInstall installs a global npm package.
func NpmInstall(pkg string) Command {
	return loginShell(fmt.Sprintf("npm install -g %s", pkg))
}

// NvmInstall installs a Node version through nvm.
func NvmInstall(version string) Command {
	return loginShell(fmt.Sprintf("nvm install %s", version))
}

// ExtensionInstall installs a Visual Studio Code extension. Extension
// installs are best-effort throughout the default catalog.
func ExtensionInstall(id string) Command {
	return Command{
		Path:       "code",
		Args:       []string{"--install-extension", id},
		BestEffort: true,
	}
}

// loginShell wraps a command line in a login shell so profile hooks
// (conda, pyenv, the nvm loader) are in effect.
func loginShell(commandLine string) Command {
	return Command{Path: "/bin/bash", Args: []string{"-lc", commandLine}}
}
