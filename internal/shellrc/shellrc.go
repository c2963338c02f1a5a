// Package shellrc manages guarded appends to the user's shell profile.
//
// The only persistent state this tool writes outside of package-manager
// territory is a handful of hook lines in the shell profile (brew shellenv,
// pyenv init, the nvm loader). Every append is guarded by a marker probe, so
// repeated runs leave exactly one copy of each hook in the file.
package shellrc

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ProfileLine is one guarded append: Line is written to the profile only when
// Marker is not already present anywhere in the file.
type ProfileLine struct {
	Marker string `yaml:"marker" mapstructure:"marker"`
	Line   string `yaml:"line" mapstructure:"line"`
}

// ProfilePath resolves the user's shell profile from SHELL and HOME.
// macOS defaults to zsh, so an unrecognized or empty SHELL maps to .zprofile.
func ProfilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = os.Getenv("HOME")
	}

	shell := filepath.Base(os.Getenv("SHELL"))
	switch shell {
	case "bash":
		return filepath.Join(home, ".bash_profile")
	case "sh":
		return filepath.Join(home, ".profile")
	default:
		return filepath.Join(home, ".zprofile")
	}
}

// Apply appends line to the profile at path unless marker is already present.
// The file is created when missing. Returns whether the file was mutated.
func Apply(path, marker, line string) (bool, error) {
	present, err := Contains(path, marker)
	if err != nil {
		return false, err
	}
	if present {
		return false, nil
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return false, fmt.Errorf("failed to open profile %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck

	if _, err := f.WriteString(line + "\n"); err != nil {
		return false, fmt.Errorf("failed to append to profile %s: %w", path, err)
	}
	return true, nil
}

// Contains reports whether marker occurs anywhere in the file at path.
// A missing file contains nothing.
func Contains(path, marker string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read profile %s: %w", path, err)
	}
	return strings.Contains(string(data), marker), nil
}

// Occurrences counts the lines in the file at path containing marker.
// A missing file has zero occurrences.
func Occurrences(path, marker string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to open profile %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck

	count := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if strings.Contains(scanner.Text(), marker) {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("failed to scan profile %s: %w", path, err)
	}
	return count, nil
}
