// Package filesystem holds the small set of file operations j2render needs,
// expressed against afero.Fs so tests can run on an in-memory filesystem
// while the CLI uses the OS.
package filesystem
