package repl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gengar-lang/gengar"
)

func TestTranspile_WrapsBareStatements(t *testing.T) {
	out, err := Transpile(`const x = 1;`)
	require.NoError(t, err)
	assert.Contains(t, out, "const x=1;")
	assert.False(t, strings.Contains(out, gengar.Prelude), "prelude should be stripped")
}

func TestTranspile_FullProgramPassesThrough(t *testing.T) {
	out, err := Transpile("main() { debugger; }")
	require.NoError(t, err)
	assert.Contains(t, out, ";(function(){")
	assert.Contains(t, out, "debugger;")
}

func TestTranspile_FunctionDeclaration(t *testing.T) {
	out, err := Transpile("fn id(x) { return x }")
	require.NoError(t, err)
	assert.Contains(t, out, "function id(x) {")
}

func TestTranspile_ReportsErrors(t *testing.T) {
	_, err := Transpile("const x = ;")
	assert.Error(t, err)
}
