// Package output decides where a rendered template goes and writes it there.
package output

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/mojochao/j2render/pkg/filesystem"
	"github.com/mojochao/j2render/pkg/format"
)

// StdoutSentinel selects standard output when given as the output path,
// compared case-insensitively
const StdoutSentinel = "stdout"

// Target is a resolved output destination
type Target struct {
	Stdout bool
	Path   string
}

// ResolveTarget picks the destination for templatePath. An explicit output
// wins; otherwise the template path minus its extension is used, moved into
// outputDir when one is given.
func ResolveTarget(templatePath, output, outputDir string) (Target, error) {
	if strings.EqualFold(output, StdoutSentinel) {
		return Target{Stdout: true}, nil
	}
	if output != "" {
		return Target{Path: output}, nil
	}

	derived := format.TrimExt(templatePath)
	if outputDir != "" {
		derived = filepath.Join(outputDir, filepath.Base(derived))
	}

	if filepath.Clean(derived) == filepath.Clean(templatePath) {
		return Target{}, fmt.Errorf("derived output path %s would overwrite the template; pass --output or --output-dir", derived)
	}

	return Target{Path: derived}, nil
}

// Writer writes rendered text to a Target
type Writer struct {
	fs     afero.Fs
	stdout io.Writer
}

// NewWriter creates a Writer for files on fsys and stdout targets on stdout
func NewWriter(fsys afero.Fs, stdout io.Writer) *Writer {
	return &Writer{fs: fsys, stdout: stdout}
}

// Write emits rendered to target and returns the absolute path written, or
// an empty string for stdout. Stdout output is newline terminated.
func (w *Writer) Write(target Target, rendered string) (string, error) {
	if target.Stdout {
		if _, err := fmt.Fprintln(w.stdout, rendered); err != nil {
			return "", err
		}
		return "", nil
	}

	if err := filesystem.WriteFile(w.fs, target.Path, []byte(rendered)); err != nil {
		return "", err
	}

	abs, err := filepath.Abs(target.Path)
	if err != nil {
		return target.Path, nil
	}
	return abs, nil
}
