package datasource

import "strings"

// Kind distinguishes the two descriptor variants
type Kind int

const (
	KindFile Kind = iota
	KindModule
)

// moduleSeparator marks a module reference
const moduleSeparator = ":"

// Descriptor is a parsed source descriptor
type Descriptor struct {
	Raw  string
	Kind Kind

	// Path is set for KindFile
	Path string

	// Module and Attribute are set for KindModule
	Module    string
	Attribute string
}

// KindOf reports the variant of a raw descriptor without validating it
func KindOf(raw string) Kind {
	if strings.Contains(raw, moduleSeparator) {
		return KindModule
	}
	return KindFile
}

// ParseDescriptor classifies raw and, for module references, splits it into
// module and attribute. A module reference must have exactly one colon with
// a non-empty name on each side.
func ParseDescriptor(raw string) (Descriptor, error) {
	if KindOf(raw) == KindFile {
		if raw == "" {
			return Descriptor{}, sourceErrorf(raw, nil, "source location cannot be empty")
		}
		return Descriptor{Raw: raw, Kind: KindFile, Path: raw}, nil
	}

	parts := strings.Split(raw, moduleSeparator)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return Descriptor{}, sourceErrorf(raw, nil, "module data path %s is invalid", raw)
	}

	return Descriptor{
		Raw:       raw,
		Kind:      KindModule,
		Module:    parts[0],
		Attribute: parts[1],
	}, nil
}
