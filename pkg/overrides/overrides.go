// Package overrides applies command-line variable overrides of the form
// name=value or a.b.c=value to template data.
//
// Values are always kept as strings. Dotted names are navigated through
// nested mappings explicitly; intermediate mappings are created as needed and
// replace any non-mapping value found on the way.
package overrides

import (
	"fmt"
	"strings"
)

const (
	assignSeparator = "="
	pathSeparator   = "."
)

// OverrideError reports a malformed override instruction
type OverrideError struct {
	Instruction string
	Reason      string
}

func (e *OverrideError) Error() string {
	return fmt.Sprintf("update %s is malformed: %s", e.Instruction, e.Reason)
}

// Instruction is a parsed override
type Instruction struct {
	Path  []string
	Value string
}

// Name returns the dotted name the instruction targets
func (i Instruction) Name() string {
	return strings.Join(i.Path, pathSeparator)
}

// Parse splits instruction on its first "=" into a dotted name and a value.
// Any further "=" characters belong to the value.
func Parse(instruction string) (Instruction, error) {
	name, value, ok := strings.Cut(instruction, assignSeparator)
	if !ok {
		return Instruction{}, &OverrideError{Instruction: instruction, Reason: "expected format name=value"}
	}
	if name == "" {
		return Instruction{}, &OverrideError{Instruction: instruction, Reason: "name cannot be empty"}
	}

	path := strings.Split(name, pathSeparator)
	for _, segment := range path {
		if segment == "" {
			return Instruction{}, &OverrideError{Instruction: instruction, Reason: "dotted name has an empty segment"}
		}
	}

	return Instruction{Path: path, Value: value}, nil
}

// Apply parses instruction and sets its value on root
func Apply(root map[string]interface{}, instruction string) error {
	parsed, err := Parse(instruction)
	if err != nil {
		return err
	}
	SetPath(root, parsed.Path, parsed.Value)
	return nil
}

// ApplyAll applies instructions in order; later ones overwrite earlier ones
// targeting the same path. It stops at the first malformed instruction.
func ApplyAll(root map[string]interface{}, instructions []string) error {
	for _, instruction := range instructions {
		if err := Apply(root, instruction); err != nil {
			return err
		}
	}
	return nil
}

// SetPath sets value at path inside root, creating or replacing
// intermediate mappings. An empty path is a no-op.
func SetPath(root map[string]interface{}, path []string, value interface{}) {
	if len(path) == 0 {
		return
	}

	current := root
	for _, segment := range path[:len(path)-1] {
		next, ok := current[segment].(map[string]interface{})
		if !ok {
			next = make(map[string]interface{})
			current[segment] = next
		}
		current = next
	}
	current[path[len(path)-1]] = value
}
