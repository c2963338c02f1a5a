package catalog

import "fmt"

// validMethodSet is the lookup form of ValidMethods.
var validMethodSet = func() map[InstallMethod]bool {
	m := make(map[InstallMethod]bool, len(ValidMethods))
	for _, method := range ValidMethods {
		m[method] = true
	}
	return m
}()

// Validate checks the catalog for common errors and returns a detailed error
// if validation fails.
func (c *Catalog) Validate() error {
	if len(c.Stacks) == 0 {
		return fmt.Errorf("at least one stack is required")
	}

	seen := make(map[StackID]bool, len(c.Stacks))
	for i := range c.Stacks {
		stack := &c.Stacks[i]
		if err := stack.validate(); err != nil {
			return fmt.Errorf("stack %q: %w", stack.ID, err)
		}
		if seen[stack.ID] {
			return fmt.Errorf("duplicate stack id %q", stack.ID)
		}
		seen[stack.ID] = true
	}

	for _, id := range RequiredStacks {
		if !seen[id] {
			return fmt.Errorf("missing required stack %q", id)
		}
	}

	return nil
}

// validate checks a single stack definition.
func (s *Stack) validate() error {
	if s.ID == "" {
		return fmt.Errorf("id is required")
	}
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if len(s.Tools) == 0 {
		return fmt.Errorf("at least one tool is required")
	}

	hasConda := false
	for i, tool := range s.Tools {
		if tool.Name == "" {
			return fmt.Errorf("tool %d: name is required", i)
		}
		if !validMethodSet[tool.Method] {
			return fmt.Errorf("tool %q: unknown install method %q", tool.Name, tool.Method)
		}
		if tool.Method == MethodConda {
			hasConda = true
		}
	}

	if hasConda && s.CondaEnv == "" {
		return fmt.Errorf("conda tools require conda_env to be set")
	}

	for i, line := range s.ProfileLines {
		if line.Marker == "" {
			return fmt.Errorf("profile line %d: marker is required", i)
		}
		if line.Line == "" {
			return fmt.Errorf("profile line %d: line is required", i)
		}
	}

	return nil
}
