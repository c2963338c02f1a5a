package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/imamik/devsetup/internal/probe"
)

// checkTools probes the default tool set - replaced in tests.
var checkTools = probe.CheckDefault

// ToolStatus is one row of the doctor report.
type ToolStatus struct {
	Name        string `json:"name"`
	Found       bool   `json:"found"`
	Required    bool   `json:"required"`
	Path        string `json:"path,omitempty"`
	Version     string `json:"version,omitempty"`
	Description string `json:"description,omitempty"`
	InstallHint string `json:"installHint,omitempty"`
}

// DoctorReport is the machine-readable doctor output.
type DoctorReport struct {
	Tools           []ToolStatus `json:"tools"`
	MissingRequired []string     `json:"missingRequired,omitempty"`
}

const (
	okMark   = "[OK]"
	missMark = "[--]"
	reqMark  = "[!!]"
)

var doctorHeaderStyle = lipgloss.NewStyle().Bold(true)

// Doctor prints a read-only report of the probed host tools. It never
// mutates anything and always exits zero; missing tools are information,
// not failure.
func Doctor(_ context.Context, jsonOutput bool) error {
	results := checkTools()
	report := buildReport(results)

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	fmt.Println()
	if isInteractiveTTY() {
		fmt.Println("  " + doctorHeaderStyle.Render("devsetup doctor"))
	} else {
		fmt.Println("  devsetup doctor")
	}
	fmt.Println("  " + strings.Repeat("-", 40))

	for _, tool := range report.Tools {
		printToolRow(tool)
	}

	fmt.Println()
	if len(report.MissingRequired) > 0 {
		fmt.Printf("  Missing required tools: %s\n", strings.Join(report.MissingRequired, ", "))
		fmt.Println("  Run 'devsetup' to provision the machine.")
	} else {
		fmt.Println("  All required tools are present.")
	}
	fmt.Println()

	return nil
}

func buildReport(results *probe.CheckResults) DoctorReport {
	report := DoctorReport{}
	for _, result := range results.Results {
		report.Tools = append(report.Tools, ToolStatus{
			Name:        result.Tool.Name,
			Found:       result.Found,
			Required:    result.Tool.Required,
			Path:        result.Path,
			Version:     result.Version,
			Description: result.Tool.Description,
			InstallHint: result.Tool.InstallHint,
		})
	}
	for _, tool := range results.Missing {
		if tool.Required {
			report.MissingRequired = append(report.MissingRequired, tool.Name)
		}
	}
	return report
}

func printToolRow(tool ToolStatus) {
	mark := okMark
	if !tool.Found {
		mark = missMark
		if tool.Required {
			mark = reqMark
		}
	}

	detail := tool.Path
	if tool.Version != "" {
		detail = tool.Version
	}
	if !tool.Found {
		detail = "missing - " + tool.InstallHint
	}

	fmt.Printf("  %s %-12s %s\n", mark, tool.Name, detail)
}
