// Package datasource loads template data from source descriptors.
//
// A descriptor is either a path to a JSON, TOML or YAML file, or a module
// reference of the form "module.name:attribute". Module references resolve
// against an in-process registry of data modules: static modules declared in
// the tool configuration plus the built-in "env" and "system" modules.
//
//	demo/demo.json        file path, format taken from the extension
//	env:APP               every APP_* environment variable
//	system:info           hostname, user, home, shell, os, arch
//	demo.demo:config      attribute "config" of the configured module "demo.demo"
//
// Every failure is a *SourceError naming the descriptor and the cause.
package datasource
