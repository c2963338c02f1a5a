// Package testing provides test utilities and fakes for unit and integration
// tests.
//
// This package centralizes common testing patterns to avoid duplication
// across test files:
//   - FakeRunner: scripted, recording stand-in for external commands
//   - ScriptedPrompter: canned answers for interactive prompts
//
// Usage:
//
//	r := testing.NewFakeRunner().
//	    WithOutput("/bin/bash -lc conda env list", "datasci  /envs/datasci")
//
//	p := testing.NewScriptedPrompter("y", "1")
package testing
