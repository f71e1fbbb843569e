package render

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mojochao/j2render/pkg/filesystem"
	"github.com/mojochao/j2render/pkg/testutil"
)

func renderFile(t *testing.T, content string, data map[string]interface{}, opts Options) (string, error) {
	t.Helper()
	dir := testutil.TempDir(t, "render")
	path := testutil.CreateFile(t, dir, "demo.j2", content)
	return NewEngine(filesystem.NewOS()).Render(path, data, opts)
}

func TestRenderVariables(t *testing.T) {
	got, err := renderFile(t, "{{ greeting }}, {{ subject }}! {{ inner.prop1 }}\n", testutil.SampleData(), DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "Hello, World! alpha\n", got)
}

func TestRenderTrailingNewline(t *testing.T) {
	data := map[string]interface{}{"name": "x"}

	opts := DefaultOptions()
	got, err := renderFile(t, "{{ name }}\n", data, opts)
	require.NoError(t, err)
	assert.Equal(t, "x\n", got)

	opts.KeepTrailingNewline = false
	got, err = renderFile(t, "{{ name }}\n", data, opts)
	require.NoError(t, err)
	assert.Equal(t, "x", got)
}

func TestRenderBlockWhitespace(t *testing.T) {
	tpl := "line\n    {% if flag %}\nyes\n    {% endif %}\n"
	data := map[string]interface{}{"flag": true}

	got, err := renderFile(t, tpl, data, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "line\nyes\n", got)

	got, err = renderFile(t, tpl, data, Options{KeepTrailingNewline: true})
	require.NoError(t, err)
	assert.Equal(t, "line\n    \nyes\n    \n", got)
}

func TestRenderLStripBlocks(t *testing.T) {
	data := map[string]interface{}{"x": true, "name": "web"}

	tests := []struct {
		name     string
		template string
		want     string
	}{
		{"inline tag keeps spacing", "host = {% if x %}on{% endif %}\n", "host = on"},
		{"inline after variable", "server {{ name }} {% if x %}enabled{% endif %}", "server web enabled"},
		{"tag at line start", "{% if x %}yes{% endif %} tail\n", "yes tail\n"},
		{"indented tag", "  {% if x %}\n  on\n  {% endif %}\nend\n", "  on\nend\n"},
		{"tab indented tag", "\t{% if x %}\nyes\n\t{% endif %}\n", "yes\n"},
		{"indented comment", "  {# note #}body\n", "body\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := renderFile(t, tt.template, data, DefaultOptions())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLStripBlocksSource(t *testing.T) {
	got := lstripBlocks([]byte("a {% x %}\n \t{% y %}\n  {{ v }}\n  {# c #}"))
	assert.Equal(t, "a {% x %}\n{% y %}\n  {{ v }}\n{# c #}", string(got))
}

func TestRenderIncludeUsesSameWhitespaceRules(t *testing.T) {
	dir := testutil.TempDir(t, "render")
	testutil.CreateFile(t, dir, "part.j2", "  {% if subject %}\n[{{ subject }}]\n  {% endif %}\n")
	path := testutil.CreateFile(t, dir, "main.j2", "{{ greeting }}\n{% include \"part.j2\" %}")

	got, err := NewEngine(filesystem.NewOS()).Render(path, testutil.SampleData(), DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "Hello\n[World]\n", got)
}

func TestRenderInclude(t *testing.T) {
	dir := testutil.TempDir(t, "render")
	testutil.CreateFile(t, dir, "part.j2", "[{{ subject }}]")
	path := testutil.CreateFile(t, dir, "main.j2", "{{ greeting }} {% include \"part.j2\" %}")

	got, err := NewEngine(filesystem.NewOS()).Render(path, testutil.SampleData(), DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "Hello [World]", got)
}

func TestRenderMissingTemplate(t *testing.T) {
	path := filepath.Join(testutil.TempDir(t, "render"), "missing.j2")

	_, err := NewEngine(filesystem.NewOS()).Render(path, testutil.SampleData(), DefaultOptions())
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, path, loadErr.Path)
	assert.Contains(t, err.Error(), "cannot load template")
}

func TestRenderSyntaxError(t *testing.T) {
	_, err := renderFile(t, "{% if %}broken", testutil.SampleData(), DefaultOptions())

	var loadErr *LoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestRenderExecutionError(t *testing.T) {
	data := map[string]interface{}{"part": "missing.j2"}
	_, err := renderFile(t, "{% include part %}", data, DefaultOptions())

	var execErr *ExecError
	require.ErrorAs(t, err, &execErr)
	assert.Contains(t, err.Error(), "template render error")
}

func TestRenderIgnoresNonIdentifierKeys(t *testing.T) {
	data := map[string]interface{}{
		"greeting":    "Hello",
		"server-name": "x",
		"my key":      "y",
		"":            "z",
	}

	got, err := renderFile(t, "{{ greeting }}", data, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "Hello", got)
	assert.Len(t, data, 4, "caller's data is left untouched")
}

func TestIsIdentifier(t *testing.T) {
	for key, want := range map[string]bool{
		"greeting":    true,
		"_private":    true,
		"prop1":       true,
		"server-name": false,
		"a.b":         false,
		"my key":      false,
		"":            false,
	} {
		assert.Equal(t, want, isIdentifier(key), key)
	}
}

func TestRendererFunc(t *testing.T) {
	var r Renderer = RendererFunc(func(path string, data map[string]interface{}, opts Options) (string, error) {
		return path, nil
	})

	got, err := r.Render("demo.j2", nil, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "demo.j2", got)
}
