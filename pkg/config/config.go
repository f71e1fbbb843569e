package config

import (
	"github.com/mojochao/j2render/pkg/datasource"
	"github.com/mojochao/j2render/pkg/errors"
	"github.com/mojochao/j2render/pkg/render"
)

// Config is the resolved tool configuration
type Config struct {
	Render  RenderConfig   `koanf:"render"`
	Logging LoggingConfig  `koanf:"logging"`
	Modules []ModuleConfig `koanf:"modules"`

	// Path is the user file that was loaded, empty when none was
	Path string `koanf:"-"`
}

// RenderConfig holds the template engine defaults
type RenderConfig struct {
	TrimBlocks          bool `koanf:"trim_blocks"`
	LStripBlocks        bool `koanf:"lstrip_blocks"`
	KeepTrailingNewline bool `koanf:"keep_trailing_newline"`
}

// LoggingConfig controls log output beyond the console
type LoggingConfig struct {
	File bool `koanf:"file"`
}

// ModuleConfig declares a static data module
type ModuleConfig struct {
	Name       string                 `koanf:"name"`
	Attributes map[string]interface{} `koanf:"attributes"`
}

// RenderOptions converts the render section to engine options
func (c *Config) RenderOptions() render.Options {
	return render.Options{
		TrimBlocks:          c.Render.TrimBlocks,
		LStripBlocks:        c.Render.LStripBlocks,
		KeepTrailingNewline: c.Render.KeepTrailingNewline,
	}
}

// RegisterModules adds every configured module to modules. A name that is
// empty or already registered fails with CONFIG_LOAD.
func (c *Config) RegisterModules(modules *datasource.Modules) error {
	for i, mod := range c.Modules {
		attrs := mod.Attributes
		if attrs == nil {
			attrs = map[string]interface{}{}
		}
		if err := modules.RegisterStatic(mod.Name, attrs); err != nil {
			return errors.Wrapf(err, errors.ErrConfigLoad, "cannot register module %q", mod.Name).
				WithDetail("index", i).
				WithDetail("config", c.Path)
		}
	}
	return nil
}
