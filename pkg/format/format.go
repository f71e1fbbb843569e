// Package format maps data file extensions to the structured-data formats
// j2render understands and decodes raw bytes of those formats into the
// generic string-keyed mapping used throughout the pipeline.
package format

import (
	"path/filepath"
	"strings"
)

// Format identifies a structured-data format
type Format string

const (
	Unknown Format = ""
	JSON    Format = "json"
	TOML    Format = "toml"
	YAML    Format = "yaml"
)

// extensions is ordered: discovery tries candidates in exactly this order
var extensions = []struct {
	ext    string
	format Format
}{
	{".json", JSON},
	{".toml", TOML},
	{".yaml", YAML},
	{".yml", YAML},
}

// Resolve returns the format for path based on its extension, compared
// case-insensitively. Paths without an extension or with an unrecognized
// one resolve to Unknown.
func Resolve(path string) Format {
	ext := strings.ToLower(Ext(path))
	if ext == "" {
		return Unknown
	}
	for _, e := range extensions {
		if e.ext == ext {
			return e.format
		}
	}
	return Unknown
}

// Ext returns the extension of path's final element. Leading dots belong to
// the name, so ".bashrc" has no extension and ".bashrc.json" has ".json".
func Ext(path string) string {
	name := strings.TrimLeft(filepath.Base(path), ".")
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[i:]
	}
	return ""
}

// TrimExt returns path without the extension reported by Ext
func TrimExt(path string) string {
	return strings.TrimSuffix(path, Ext(path))
}

// Extensions returns the recognized extensions in discovery order
func Extensions() []string {
	out := make([]string, len(extensions))
	for i, e := range extensions {
		out[i] = e.ext
	}
	return out
}

// String implements fmt.Stringer
func (f Format) String() string {
	if f == Unknown {
		return "unknown"
	}
	return string(f)
}

// Known reports whether f is one of the supported formats
func (f Format) Known() bool {
	return f == JSON || f == TOML || f == YAML
}
