// Package render turns a template file and a data mapping into text.
//
// The Renderer interface is the pipeline's only view of the template engine;
// Engine implements it with pongo2, whose Django/Jinja syntax covers the
// templates j2render targets.
package render

// Options are the whitespace controls applied while rendering
type Options struct {
	// TrimBlocks removes the first newline after a block tag
	TrimBlocks bool
	// LStripBlocks strips the spaces and tabs between a line start and a block tag
	LStripBlocks bool
	// KeepTrailingNewline preserves a single trailing newline of the template source
	KeepTrailingNewline bool
}

// DefaultOptions enables every whitespace control
func DefaultOptions() Options {
	return Options{
		TrimBlocks:          true,
		LStripBlocks:        true,
		KeepTrailingNewline: true,
	}
}

// Renderer renders the template at templatePath with data as its context
type Renderer interface {
	Render(templatePath string, data map[string]interface{}, opts Options) (string, error)
}

// RendererFunc adapts a function to Renderer
type RendererFunc func(templatePath string, data map[string]interface{}, opts Options) (string, error)

// Render implements Renderer
func (f RendererFunc) Render(templatePath string, data map[string]interface{}, opts Options) (string, error) {
	return f(templatePath, data, opts)
}
