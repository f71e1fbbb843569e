package render

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/flosch/pongo2/v6"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/mojochao/j2render/pkg/filesystem"
	"github.com/mojochao/j2render/pkg/logging"
)

// LoadError reports a template that could not be read or parsed
type LoadError struct {
	Path  string
	Cause error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("cannot load template %s: %v", e.Path, e.Cause)
}

func (e *LoadError) Unwrap() error { return e.Cause }

// ExecError reports a failure while executing a parsed template
type ExecError struct {
	Path  string
	Cause error
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("template render error: %v", e.Cause)
}

func (e *ExecError) Unwrap() error { return e.Cause }

// Engine renders templates with pongo2. The entry template is read through
// the configured filesystem; templates it includes or extends are resolved
// relative to its directory.
type Engine struct {
	fs     afero.Fs
	logger zerolog.Logger
}

// NewEngine creates an Engine reading entry templates from fsys
func NewEngine(fsys afero.Fs) *Engine {
	return &Engine{
		fs:     fsys,
		logger: logging.GetLogger("render"),
	}
}

var _ Renderer = (*Engine)(nil)

// Render implements Renderer
func (e *Engine) Render(templatePath string, data map[string]interface{}, opts Options) (string, error) {
	source, err := filesystem.ReadFile(e.fs, templatePath)
	if err != nil {
		return "", &LoadError{Path: templatePath, Cause: err}
	}

	source = prepareSource(source, opts)

	set, err := e.newSet(templatePath, opts)
	if err != nil {
		return "", &LoadError{Path: templatePath, Cause: err}
	}

	tpl, err := set.FromBytes(source)
	if err != nil {
		return "", &LoadError{Path: templatePath, Cause: err}
	}

	rendered, err := tpl.Execute(e.context(templatePath, data))
	if err != nil {
		return "", &ExecError{Path: templatePath, Cause: err}
	}

	e.logger.Debug().
		Str("template", templatePath).
		Bool("trimBlocks", opts.TrimBlocks).
		Bool("lstripBlocks", opts.LStripBlocks).
		Bool("keepTrailingNewline", opts.KeepTrailingNewline).
		Int("bytes", len(rendered)).
		Msg("rendered template")

	return rendered, nil
}

func (e *Engine) newSet(templatePath string, opts Options) (*pongo2.TemplateSet, error) {
	dir, err := filepath.Abs(filepath.Dir(templatePath))
	if err != nil {
		return nil, err
	}

	local, err := pongo2.NewLocalFileSystemLoader(dir)
	if err != nil {
		return nil, err
	}

	// pongo2's LStripBlocks also eats whitespace before inline tags, so
	// lstrip is applied to the source instead.
	set := pongo2.NewSet("j2render", &sourceLoader{TemplateLoader: local, opts: opts})
	set.Options.TrimBlocks = opts.TrimBlocks
	return set, nil
}

// context drops top-level keys pongo2 refuses as identifiers. Templates
// cannot name them, so rendering proceeds without them.
func (e *Engine) context(templatePath string, data map[string]interface{}) pongo2.Context {
	ctx := make(pongo2.Context, len(data))
	var dropped []string
	for key, value := range data {
		if !isIdentifier(key) {
			dropped = append(dropped, key)
			continue
		}
		ctx[key] = value
	}

	if len(dropped) > 0 {
		sort.Strings(dropped)
		e.logger.Debug().
			Str("template", templatePath).
			Strs("keys", dropped).
			Msg("context keys are not identifiers and are unreachable from templates")
	}
	return ctx
}

func isIdentifier(key string) bool {
	if key == "" {
		return false
	}
	for _, r := range key {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}

// sourceLoader applies the same source preparation to included and
// extended templates as to the entry template
type sourceLoader struct {
	pongo2.TemplateLoader
	opts Options
}

func (l *sourceLoader) Get(path string) (io.Reader, error) {
	r, err := l.TemplateLoader.Get(path)
	if err != nil {
		return nil, err
	}
	source, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(prepareSource(source, l.opts)), nil
}

func prepareSource(source []byte, opts Options) []byte {
	if !opts.KeepTrailingNewline {
		source = trimTrailingNewline(source)
	}
	if opts.LStripBlocks {
		source = lstripBlocks(source)
	}
	return source
}

// lstripBlocks removes the spaces and tabs between the start of a line and
// a block or comment tag. Tags preceded by other text keep their spacing.
func lstripBlocks(source []byte) []byte {
	lines := strings.SplitAfter(string(source), "\n")
	for i, line := range lines {
		rest := strings.TrimLeft(line, " \t")
		if strings.HasPrefix(rest, "{%") || strings.HasPrefix(rest, "{#") {
			lines[i] = rest
		}
	}
	return []byte(strings.Join(lines, ""))
}

// trimTrailingNewline drops one trailing line ending, the way Jinja does
// when keep_trailing_newline is off
func trimTrailingNewline(source []byte) []byte {
	s := string(source)
	switch {
	case strings.HasSuffix(s, "\r\n"):
		s = strings.TrimSuffix(s, "\r\n")
	case strings.HasSuffix(s, "\n"):
		s = strings.TrimSuffix(s, "\n")
	}
	return []byte(s)
}
