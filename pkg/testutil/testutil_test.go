package testutil

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
)

func TestCreateFileAndRead(t *testing.T) {
	dir := TempDir(t, "fixtures")
	path := CreateFile(t, dir, filepath.Join("nested", "a.txt"), "content")

	assert.True(t, FileExists(t, path))
	assert.False(t, FileExists(t, dir))
	AssertFileContent(t, path, "content")
	AssertNoFile(t, filepath.Join(dir, "missing"))
}

func TestMemFiles(t *testing.T) {
	fsys := afero.NewMemMapFs()
	WriteMemFiles(t, fsys, map[string]string{"/a/b.json": "{}"})

	assert.Equal(t, "{}", ReadMemFile(t, fsys, "/a/b.json"))
}

func TestSampleDataIsFresh(t *testing.T) {
	a := SampleData()
	a["inner"].(map[string]interface{})["prop1"] = "changed"

	assert.Equal(t, "alpha", SampleData()["inner"].(map[string]interface{})["prop1"])
}
