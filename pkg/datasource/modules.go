package datasource

import (
	"os"
	"os/user"
	"runtime"
	"sort"
	"strings"

	"github.com/mojochao/j2render/pkg/overrides"
	"github.com/mojochao/j2render/pkg/registry"
)

// Built-in module names
const (
	EnvModuleName    = "env"
	SystemModuleName = "system"
)

// Module is an in-process provider of named data attributes. It stands in
// for an importable module: "name:attr" looks up attr on the module
// registered as name.
type Module interface {
	Attribute(name string) (interface{}, bool)
}

// StaticModule serves a fixed attribute table
type StaticModule map[string]interface{}

// Attribute implements Module
func (m StaticModule) Attribute(name string) (interface{}, bool) {
	v, ok := m[name]
	return v, ok
}

// EnvModule exposes environment variables. The attribute is a prefix:
// PREFIX_key=value becomes {"key": "value"} and a double underscore in the
// remaining name nests, so PREFIX_db__host=x becomes {"db": {"host": "x"}}.
type EnvModule struct {
	Environ func() []string
}

// Attribute implements Module. Any prefix resolves; a prefix matching no
// variables yields an empty mapping.
func (m EnvModule) Attribute(prefix string) (interface{}, bool) {
	environ := m.Environ
	if environ == nil {
		environ = os.Environ
	}

	entries := environ()
	sort.Strings(entries)

	result := make(map[string]interface{})
	for _, entry := range entries {
		name, value, ok := strings.Cut(entry, "=")
		if !ok || !strings.HasPrefix(name, prefix+"_") {
			continue
		}
		key := strings.TrimPrefix(name, prefix+"_")
		if key == "" {
			continue
		}
		overrides.SetPath(result, strings.Split(key, "__"), value)
	}
	return result, true
}

// SystemModule exposes facts about the running host under the "info"
// attribute.
type SystemModule struct{}

// Attribute implements Module
func (SystemModule) Attribute(name string) (interface{}, bool) {
	if name != "info" {
		return nil, false
	}

	info := map[string]interface{}{
		"os":    runtime.GOOS,
		"arch":  runtime.GOARCH,
		"shell": os.Getenv("SHELL"),
	}
	if hostname, err := os.Hostname(); err == nil {
		info["hostname"] = hostname
	}
	if home, err := os.UserHomeDir(); err == nil {
		info["home"] = home
	}
	if u, err := user.Current(); err == nil {
		info["user"] = u.Username
	} else {
		info["user"] = os.Getenv("USER")
	}
	return info, true
}

// Modules is the registry module references resolve against
type Modules struct {
	reg registry.Registry[Module]
}

// NewModules returns a registry holding the built-in env and system modules
func NewModules() *Modules {
	m := &Modules{reg: registry.New[Module]()}
	_ = m.reg.Register(EnvModuleName, EnvModule{})
	_ = m.reg.Register(SystemModuleName, SystemModule{})
	return m
}

// Register adds a module. Names already taken, built-ins included, are
// rejected.
func (m *Modules) Register(name string, mod Module) error {
	return m.reg.Register(name, mod)
}

// RegisterStatic registers a StaticModule built from attrs
func (m *Modules) RegisterStatic(name string, attrs map[string]interface{}) error {
	return m.Register(name, StaticModule(attrs))
}

// Names lists the registered module names in sorted order
func (m *Modules) Names() []string {
	return m.reg.List()
}

// lookup returns the module registered as name
func (m *Modules) lookup(name string) (Module, bool) {
	mod, err := m.reg.Get(name)
	if err != nil {
		return nil, false
	}
	return mod, true
}
