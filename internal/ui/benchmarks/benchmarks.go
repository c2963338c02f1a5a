// Package benchmarks provides timing estimates for stack provisioning.
package benchmarks

import (
	"time"

	"github.com/imamik/devsetup/internal/catalog"
)

// DefaultTimings are rough median install durations per method, in seconds,
// on a residential connection. Casks dominate; most are multi-hundred-MB
// downloads.
var DefaultTimings = map[catalog.InstallMethod]int{
	catalog.MethodBrew:      45,
	catalog.MethodCask:      150,
	catalog.MethodConda:     60,
	catalog.MethodPip:       20,
	catalog.MethodNpm:       15,
	catalog.MethodNvm:       90,
	catalog.MethodExtension: 10,
}

// condaEnvCreate is the extra cost of creating the environment itself.
const condaEnvCreate = 60 * time.Second

// StackEstimate returns the expected total duration of a stack install.
func StackEstimate(stack catalog.Stack) time.Duration {
	var total time.Duration
	if stack.CondaEnv != "" {
		total += condaEnvCreate
	}
	for _, tool := range stack.Tools {
		total += methodEstimate(tool.Method)
	}
	return total
}

// EstimateRemaining returns the expected time left given how many tools have
// finished and how long the current one has been running. The in-flight
// tool's contribution never goes below zero.
func EstimateRemaining(stack catalog.Stack, completed int, currentElapsed time.Duration) time.Duration {
	if completed >= len(stack.Tools) {
		return 0
	}

	var remaining time.Duration

	current := methodEstimate(stack.Tools[completed].Method)
	if current > currentElapsed {
		remaining += current - currentElapsed
	}

	for _, tool := range stack.Tools[completed+1:] {
		remaining += methodEstimate(tool.Method)
	}
	return remaining
}

func methodEstimate(method catalog.InstallMethod) time.Duration {
	if secs, ok := DefaultTimings[method]; ok {
		return time.Duration(secs) * time.Second
	}
	return 30 * time.Second
}
