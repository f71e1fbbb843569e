// Package config loads j2render's own settings.
//
// Layers are applied in order, later ones winning:
//
//  1. the embedded defaults
//  2. the file named by --config, or $XDG_CONFIG_HOME/j2render/config.toml
//  3. J2RENDER_* environment variables, "__" separating nested keys
//
// Static data modules declared as [[modules]] tables are registered with
// a datasource.Modules so templates can reference them as module:attribute.
package config
