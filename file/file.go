// Package file handles the compiler's filesystem concerns: reading Gengar
// source files and writing the compiled JavaScript and source-map sibling
// files. It is the only package that touches the OS filesystem.
package file

import (
	"os"
	"path/filepath"
	"strings"
)

// SourceExt is the canonical Gengar source file extension.
const SourceExt = ".gengar"

// ReadSource reads a source file and returns its text.
func ReadSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// OutputPaths derives the sibling output paths for a source file:
// dir/hello.gengar becomes dir/hello.js and dir/hello.js.map.
func OutputPaths(srcPath string) (jsPath string, mapPath string) {
	base := strings.TrimSuffix(srcPath, SourceExt)
	return base + ".js", base + ".js.map"
}

// WriteCompiled writes the generated code and its source map next to the
// source file. The code gets a sourceMappingURL trailer pointing at the
// sibling map file. It returns the two paths written.
func WriteCompiled(srcPath string, code string, sourceMap []byte) (jsPath string, mapPath string, err error) {
	jsPath, mapPath = OutputPaths(srcPath)

	trailer := "\n//# sourceMappingURL=" + filepath.Base(mapPath)
	if err = os.WriteFile(jsPath, []byte(code+trailer), 0o644); err != nil {
		return "", "", err
	}
	if err = os.WriteFile(mapPath, sourceMap, 0o644); err != nil {
		return "", "", err
	}
	return jsPath, mapPath, nil
}
