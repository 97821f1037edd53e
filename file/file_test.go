package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputPaths(t *testing.T) {
	js, smap := OutputPaths("dir/hello.gengar")
	assert.Equal(t, "dir/hello.js", js)
	assert.Equal(t, "dir/hello.js.map", smap)

	js, smap = OutputPaths("noext")
	assert.Equal(t, "noext.js", js)
	assert.Equal(t, "noext.js.map", smap)
}

func TestReadSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.gengar")
	require.NoError(t, os.WriteFile(path, []byte("main() { }"), 0o644))

	src, err := ReadSource(path)
	require.NoError(t, err)
	assert.Equal(t, "main() { }", src)

	_, err = ReadSource(filepath.Join(dir, "missing.gengar"))
	assert.Error(t, err)
}

func TestWriteCompiled(t *testing.T) {
	dir := t.TempDir()
	srcPath := filepath.Join(dir, "prog.gengar")

	jsPath, mapPath, err := WriteCompiled(srcPath, "code();", []byte(`{"version":3}`))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "prog.js"), jsPath)
	assert.Equal(t, filepath.Join(dir, "prog.js.map"), mapPath)

	code, err := os.ReadFile(jsPath)
	require.NoError(t, err)
	assert.Equal(t, "code();\n//# sourceMappingURL=prog.js.map", string(code))

	smap, err := os.ReadFile(mapPath)
	require.NoError(t, err)
	assert.Equal(t, `{"version":3}`, string(smap))
}
