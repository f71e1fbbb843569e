// Package discovery locates the implicit data file for a template when no
// sources are given on the command line.
package discovery

import (
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/mojochao/j2render/pkg/filesystem"
	"github.com/mojochao/j2render/pkg/format"
	"github.com/mojochao/j2render/pkg/logging"
)

// Finder searches for a data file named after a template
type Finder struct {
	fs     afero.Fs
	cwd    string
	logger zerolog.Logger
}

// NewFinder creates a Finder resolving relative paths against cwd
func NewFinder(fsys afero.Fs, cwd string) *Finder {
	return &Finder{
		fs:     fsys,
		cwd:    cwd,
		logger: logging.GetLogger("discovery"),
	}
}

// Candidates returns every path Find would try, in order: the working
// directory first, then the template's directory, each with the recognized
// extensions in format.Extensions order.
func (f *Finder) Candidates(templatePath string) []string {
	name := format.TrimExt(filepath.Base(templatePath))

	dirs := []string{f.cwd, f.abs(filepath.Dir(templatePath))}

	var candidates []string
	for _, dir := range dirs {
		for _, ext := range format.Extensions() {
			candidates = append(candidates, filepath.Join(dir, name+ext))
		}
	}
	return candidates
}

// Find returns the absolute path of the first candidate that is a regular
// file, or false when none exists.
func (f *Finder) Find(templatePath string) (string, bool) {
	for _, candidate := range f.Candidates(templatePath) {
		if filesystem.IsRegularFile(f.fs, candidate) {
			f.logger.Debug().
				Str("template", templatePath).
				Str("source", candidate).
				Msg("discovered data file")
			return candidate, true
		}
	}

	f.logger.Debug().Str("template", templatePath).Msg("no data file discovered")
	return "", false
}

func (f *Finder) abs(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(f.cwd, path)
}
