package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleData = map[string]interface{}{
	"greeting": "Hello",
	"subject":  "World",
	"inner": map[string]interface{}{
		"prop1": "alpha",
		"prop2": "beta",
	},
}

func TestDecodeEquivalentDocuments(t *testing.T) {
	docs := map[Format]string{
		JSON: `{"greeting": "Hello", "subject": "World", "inner": {"prop1": "alpha", "prop2": "beta"}}`,
		TOML: "greeting = \"Hello\"\nsubject = \"World\"\n\n[inner]\nprop1 = \"alpha\"\nprop2 = \"beta\"\n",
		YAML: "greeting: Hello\nsubject: World\ninner:\n  prop1: alpha\n  prop2: beta\n",
	}

	for f, doc := range docs {
		t.Run(f.String(), func(t *testing.T) {
			got, err := Decode(f, []byte(doc))
			require.NoError(t, err)
			assert.Equal(t, sampleData, got)
		})
	}
}

func TestDecodeNormalizesNumbers(t *testing.T) {
	tests := []struct {
		name string
		f    Format
		doc  string
	}{
		{"json", JSON, `{"port": 8080, "ratio": 0.5, "tags": [1, "two"]}`},
		{"toml", TOML, "port = 8080\nratio = 0.5\ntags = [1, \"two\"]\n"},
		{"yaml", YAML, "port: 8080\nratio: 0.5\ntags: [1, two]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.f, []byte(tt.doc))
			require.NoError(t, err)

			m := got.(map[string]interface{})
			assert.Equal(t, int64(8080), m["port"])
			assert.Equal(t, 0.5, m["ratio"])
			assert.Equal(t, []interface{}{int64(1), "two"}, m["tags"])
		})
	}
}

func TestDecodeYAMLNonStringKeys(t *testing.T) {
	got, err := Decode(YAML, []byte("outer:\n  1: one\n  true: yes-key\n"))
	require.NoError(t, err)

	outer := got.(map[string]interface{})["outer"].(map[string]interface{})
	assert.Equal(t, "one", outer["1"])
	assert.Equal(t, "yes-key", outer["true"])
}

func TestDecodeNonMappingRoots(t *testing.T) {
	got, err := Decode(JSON, []byte(`[1, 2]`))
	require.NoError(t, err)
	assert.Equal(t, []interface{}{int64(1), int64(2)}, got)

	got, err = Decode(YAML, []byte(""))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		f    Format
		doc  string
	}{
		{"broken json", JSON, `{"greeting": `},
		{"trailing json", JSON, `{"a": 1} {"b": 2}`},
		{"broken toml", TOML, "greeting = \n"},
		{"broken yaml", YAML, "a: [1, 2\n"},
		{"unknown format", Unknown, "{}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.f, []byte(tt.doc))
			assert.Error(t, err)
		})
	}
}
