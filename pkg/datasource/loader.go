package datasource

import (
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/mojochao/j2render/pkg/filesystem"
	"github.com/mojochao/j2render/pkg/format"
	"github.com/mojochao/j2render/pkg/logging"
)

// Loader turns source descriptors into template data
type Loader struct {
	fs      afero.Fs
	modules *Modules
	logger  zerolog.Logger
}

// NewLoader creates a Loader reading files from fsys and resolving module
// references against modules. A nil modules uses NewModules().
func NewLoader(fsys afero.Fs, modules *Modules) *Loader {
	if modules == nil {
		modules = NewModules()
	}
	return &Loader{
		fs:      fsys,
		modules: modules,
		logger:  logging.GetLogger("datasource"),
	}
}

// Load dispatches on the descriptor variant. The returned error is always a
// *SourceError.
func (l *Loader) Load(raw string) (map[string]interface{}, error) {
	if KindOf(raw) == KindModule {
		return l.LoadModule(raw)
	}
	return l.LoadFile(raw)
}

// LoadFile loads a JSON, TOML or YAML data file
func (l *Loader) LoadFile(path string) (map[string]interface{}, error) {
	if path == "" {
		return nil, sourceErrorf(path, nil, "source location cannot be empty")
	}

	f := format.Resolve(path)
	if !f.Known() {
		return nil, sourceErrorf(path, nil, "invalid format for file %s", path)
	}

	data, err := filesystem.ReadFile(l.fs, path)
	if err != nil {
		return nil, sourceErrorf(path, err, "cannot open %s", path)
	}

	decoded, err := format.Decode(f, data)
	if err != nil {
		return nil, sourceErrorf(path, err, "cannot load data from %s", path)
	}

	variables, ok := decoded.(map[string]interface{})
	if !ok {
		return nil, sourceErrorf(path, nil, "data from %s is not a mapping: %v", path, decoded)
	}

	l.logger.Debug().
		Str("path", path).
		Str("format", f.String()).
		Int("keys", len(variables)).
		Msg("loaded data file")

	return variables, nil
}

// LoadModule resolves a module:attribute reference. Unlike Load it does not
// fall back to file loading when raw has no colon.
func (l *Loader) LoadModule(raw string) (map[string]interface{}, error) {
	desc, err := ParseDescriptor(raw)
	if err != nil {
		return nil, err
	}
	if desc.Kind != KindModule {
		return nil, sourceErrorf(raw, nil, "module data path %s is invalid", raw)
	}

	mod, ok := l.modules.lookup(desc.Module)
	if !ok {
		return nil, sourceErrorf(raw, nil, "module %s cannot be resolved (registered: %s)",
			desc.Module, strings.Join(l.modules.Names(), ", "))
	}

	value, ok := mod.Attribute(desc.Attribute)
	if !ok {
		return nil, sourceErrorf(raw, nil, "module %s attribute %s not found", desc.Module, desc.Attribute)
	}

	variables, ok := value.(map[string]interface{})
	if !ok {
		return nil, sourceErrorf(raw, nil, "module data %s is not a mapping: %v", raw, value)
	}

	l.logger.Debug().
		Str("module", desc.Module).
		Str("attribute", desc.Attribute).
		Int("keys", len(variables)).
		Msg("loaded module data")

	return variables, nil
}
