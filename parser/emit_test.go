package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gengar-lang/gengar/lexer"
)

// emit parses src and returns the generated code text.
func emit(t *testing.T, src string, options ...Option) string {
	t.Helper()
	program, err := Parse(src, options...)
	require.NoError(t, err)
	frag, err := program.Generate()
	require.NoError(t, err)
	return frag.String()
}

func TestEmit_EmptyMain(t *testing.T) {
	code := emit(t, "main() { }")
	assert.Equal(t, Prelude+";(function(){\n\n})();\n", code)
}

func TestEmit_Prelude(t *testing.T) {
	assert.Equal(t, "function print(...args){\n  console.log(...args);\n}\n", Prelude)
}

func TestEmit_ConstAndCall(t *testing.T) {
	code := emit(t, `main() {
  const msg: string = "hi";
  print(msg);
}`)
	assert.Contains(t, code, `const msg="hi";`)
	assert.Contains(t, code, "print(msg);")
	assert.Contains(t, code, ";(function(){")
	assert.Contains(t, code, "})();\n")
	// the type annotation must not survive into the output
	assert.NotContains(t, code, "string")
}

func TestEmit_MutBecomesLet(t *testing.T) {
	code := emit(t, "main() { mut i: number = 0; }")
	assert.Contains(t, code, "let i=0;")
	assert.NotContains(t, code, "number")
}

func TestEmit_IfElseChain(t *testing.T) {
	code := emit(t, "main() { if (x) { return 1; } else if (y) { return 2; } else { return 3; } }")
	assert.Contains(t, code, "if(x)")
	assert.Contains(t, code, "else \nif(y)")
	assert.Contains(t, code, "else {")
	assert.Contains(t, code, "return (1);")
	assert.Contains(t, code, "return (2);")
	assert.Contains(t, code, "return (3);")
}

func TestEmit_WhileAndAssignment(t *testing.T) {
	code := emit(t, "main() { mut i: number = 0; while (i) { i = i + 1; } }")
	assert.Contains(t, code, "let i=0;")
	assert.Contains(t, code, "while(i){")
	assert.Contains(t, code, "i = i + 1;")
}

func TestEmit_CompoundAssignmentOperatorPreserved(t *testing.T) {
	code := emit(t, "main() { i += 2 }")
	assert.Contains(t, code, "i += 2;")
}

func TestEmit_MemberCall(t *testing.T) {
	code := emit(t, "main() { const s: string = foo.bar.baz(x); }")
	assert.Contains(t, code, "const s=foo.bar.baz(x);")
}

func TestEmit_Debugger(t *testing.T) {
	code := emit(t, "main() { debugger; }")
	assert.Contains(t, code, "\ndebugger;")
}

func TestEmit_FunctionDeclare(t *testing.T) {
	code := emit(t, "fn add(x: number, y: number) { return x + y }")
	assert.Contains(t, code, "function add(x,y) {")
	assert.Contains(t, code, "return (x + y);")
}

func TestEmit_Conditional(t *testing.T) {
	code := emit(t, "main() { const r = a ? b : c; }")
	assert.Contains(t, code, "const r=a ? b : c;")
}

func TestEmit_Unary(t *testing.T) {
	code := emit(t, "main() { const r = !ok; }")
	assert.Contains(t, code, "const r=!ok;")
}

func TestEmit_BinaryIsWhitespaceSeparatedLeftToRight(t *testing.T) {
	code := emit(t, "main() { const r = 1 + 2 * 3; }")
	// no precedence, no parentheses: the chain re-reads left to right
	assert.Contains(t, code, "const r=1 + 2 * 3;")
}

func TestEmit_NestedCalls(t *testing.T) {
	code := emit(t, "main() { print(greet(msg,other)); }")
	assert.Contains(t, code, "print(greet(msg,other));")
}

func TestEmit_BinaryWithMissingLeftFails(t *testing.T) {
	node := &BinaryExpressionNode{
		base:     base{Token: lexer.NewTokenAt(lexer.BINARY_OP, "+", 1, 0), File: "t.gengar"},
		Operator: "+",
		Right: &NumberLiteralNode{
			base: base{Token: lexer.NewTokenAt(lexer.NUM_LIT, "1", 1, 2), File: "t.gengar"},
		},
	}
	_, err := node.Generate()
	require.Error(t, err)
	_, ok := err.(*EmissionError)
	assert.True(t, ok, "expected an *EmissionError, got %T", err)
}

func TestEmit_GenerateTotality(t *testing.T) {
	// every successfully parsed program must emit without error
	sources := []string{
		"main() { }",
		"fn f(a) { return a }",
		"main() { if (a) { } else { debugger } }",
		"main() { while (x) { x -= 1 } }",
		"main() { const s = a.b.c(d, e ? f : g); }",
	}
	for _, src := range sources {
		program, err := Parse(src)
		require.NoError(t, err, "src: %s", src)
		_, err = program.Generate()
		assert.NoError(t, err, "src: %s", src)
	}
}
