// Package registry provides a generic, thread-safe registry of named items.
// j2render uses it to hold the data modules that module-reference sources
// (module:attribute) resolve against.
package registry
