package pipeline

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/mojochao/j2render/pkg/datasource"
	"github.com/mojochao/j2render/pkg/discovery"
	"github.com/mojochao/j2render/pkg/errors"
	"github.com/mojochao/j2render/pkg/filesystem"
	"github.com/mojochao/j2render/pkg/logging"
	"github.com/mojochao/j2render/pkg/merge"
	"github.com/mojochao/j2render/pkg/output"
	"github.com/mojochao/j2render/pkg/overrides"
	"github.com/mojochao/j2render/pkg/render"
)

// Options describe a single invocation
type Options struct {
	Template  string
	Sources   []string
	Variables []string
	Output    string
	OutputDir string
	Render    render.Options
}

// Result reports what an invocation produced
type Result struct {
	// OutputPath is the absolute path written, empty for stdout
	OutputPath string
	Stdout     bool
	// Sources are the descriptors actually loaded, discovery included
	Sources []string
	Context map[string]interface{}
}

// Pipeline holds the collaborators of a run
type Pipeline struct {
	fs       afero.Fs
	cwd      string
	modules  *datasource.Modules
	renderer render.Renderer
	stdout   io.Writer
}

// Option configures a Pipeline
type Option func(*Pipeline)

// WithFS sets the filesystem sources, templates and outputs live on
func WithFS(fsys afero.Fs) Option {
	return func(p *Pipeline) { p.fs = fsys }
}

// WithWorkingDir sets the directory discovery searches first
func WithWorkingDir(dir string) Option {
	return func(p *Pipeline) { p.cwd = dir }
}

// WithModules sets the module registry for module:attribute sources
func WithModules(modules *datasource.Modules) Option {
	return func(p *Pipeline) { p.modules = modules }
}

// WithRenderer replaces the template engine
func WithRenderer(r render.Renderer) Option {
	return func(p *Pipeline) { p.renderer = r }
}

// WithStdout sets where stdout targets are written
func WithStdout(w io.Writer) Option {
	return func(p *Pipeline) { p.stdout = w }
}

// New creates a Pipeline. Unset collaborators default to the OS
// filesystem, the process working directory, the built-in modules, the
// pongo2 engine and os.Stdout.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{}
	for _, opt := range opts {
		opt(p)
	}

	if p.fs == nil {
		p.fs = filesystem.NewOS()
	}
	if p.cwd == "" {
		if wd, err := os.Getwd(); err == nil {
			p.cwd = wd
		}
	}
	if p.modules == nil {
		p.modules = datasource.NewModules()
	}
	if p.renderer == nil {
		p.renderer = render.NewEngine(p.fs)
	}
	if p.stdout == nil {
		p.stdout = os.Stdout
	}
	return p
}

// Run executes the invocation described by opts
func (p *Pipeline) Run(opts Options) (*Result, error) {
	logger := logging.GetLogger("pipeline").With().Str("template", opts.Template).Logger()
	defer logging.LogOperationStart(logger, "render pipeline")()

	sources, err := p.resolveSources(opts)
	if err != nil {
		return nil, err
	}

	data, err := p.loadSources(logger, sources)
	if err != nil {
		return nil, err
	}

	vars := make(map[string]interface{})
	if err := overrides.ApplyAll(vars, opts.Variables); err != nil {
		return nil, errors.Wrap(err, errors.ErrOverride, "invalid variable").
			WithDetail("template", opts.Template)
	}

	context := merge.Merge(data, vars)
	if len(context) == 0 {
		return nil, errors.Newf(errors.ErrEmptyContext, "no template data found for template %s", opts.Template).
			WithDetail("template", opts.Template)
	}
	logger.Debug().Int("keys", len(context)).Int("overrides", len(opts.Variables)).Msg("template context assembled")

	target, err := output.ResolveTarget(opts.Template, opts.Output, opts.OutputDir)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrOutput, "template output error").
			WithDetail("template", opts.Template)
	}

	rendered, err := p.renderer.Render(opts.Template, context, opts.Render)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrRender, "cannot render template "+opts.Template).
			WithDetail("template", opts.Template)
	}

	written, err := output.NewWriter(p.fs, p.stdout).Write(target, rendered)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrOutput, "template output error").
			WithDetail("template", opts.Template).
			WithDetail("output", target.Path)
	}

	if !target.Stdout {
		logger.Debug().Str("output", written).Msg("rendered template written")
	}

	return &Result{
		OutputPath: written,
		Stdout:     target.Stdout,
		Sources:    sources,
		Context:    context,
	}, nil
}

func (p *Pipeline) resolveSources(opts Options) ([]string, error) {
	if len(opts.Sources) > 0 {
		return opts.Sources, nil
	}

	found, ok := discovery.NewFinder(p.fs, p.cwd).Find(opts.Template)
	if !ok {
		return nil, errors.Newf(errors.ErrDiscovery, "no data source found for template %s", opts.Template).
			WithDetail("template", opts.Template)
	}
	return []string{found}, nil
}

func (p *Pipeline) loadSources(logger zerolog.Logger, sources []string) (map[string]interface{}, error) {
	loader := datasource.NewLoader(p.fs, p.modules)

	loaded := make([]map[string]interface{}, 0, len(sources))
	for _, source := range sources {
		data, err := loader.Load(source)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrSource, "cannot load template data").
				WithDetail("source", source)
		}
		logger.Debug().Str("source", source).Int("keys", len(data)).Msg("source loaded")
		loaded = append(loaded, data)
	}

	return merge.All(loaded...), nil
}
