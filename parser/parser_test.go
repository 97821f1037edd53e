package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parseProgram parses src and fails the test on error.
func parseProgram(t *testing.T, src string, options ...Option) *ProgramNode {
	t.Helper()
	program, err := Parse(src, options...)
	require.NoError(t, err)
	return program
}

// mainBody parses a program with a single main and returns its body.
func mainBody(t *testing.T, src string, options ...Option) []StatementNode {
	t.Helper()
	program := parseProgram(t, src, options...)
	require.Len(t, program.Body, 1)
	main, ok := program.Body[0].(*MainDeclareNode)
	require.True(t, ok, "expected a MainDeclareNode, got %T", program.Body[0])
	return main.Body.Body
}

func TestParse_EmptyMain(t *testing.T) {
	body := mainBody(t, "main() { }")
	assert.Empty(t, body)
}

func TestParse_EmptyInput(t *testing.T) {
	program := parseProgram(t, "")
	assert.Empty(t, program.Body)
}

func TestParse_MainWithReturnType(t *testing.T) {
	program := parseProgram(t, "main(): number { }")
	main := program.Body[0].(*MainDeclareNode)
	require.NotNil(t, main.ReturnType)
	assert.Equal(t, "number", main.ReturnType.Name)
}

func TestParse_FunctionDeclare(t *testing.T) {
	program := parseProgram(t, "fn add(x: number, y) { return x + y }")
	require.Len(t, program.Body, 1)

	fn, ok := program.Body[0].(*FunctionDeclareNode)
	require.True(t, ok)
	assert.Equal(t, "add", fn.Name.Name())

	require.Len(t, fn.Params, 2)
	assert.Equal(t, "x", fn.Params[0].Name.Name())
	require.NotNil(t, fn.Params[0].Type)
	assert.Equal(t, "number", fn.Params[0].Type.Name)
	assert.Equal(t, "y", fn.Params[1].Name.Name())
	assert.Nil(t, fn.Params[1].Type)

	require.Len(t, fn.Body.Body, 1)
	ret, ok := fn.Body.Body[0].(*ReturnStatementNode)
	require.True(t, ok)
	_, ok = ret.Argument.(*BinaryExpressionNode)
	assert.True(t, ok)
}

func TestParse_MainAndFunctions(t *testing.T) {
	program := parseProgram(t, `
fn one() { return 1 }

main() { }

fn two() { return 2 }
`)
	require.Len(t, program.Body, 3)
	assert.Equal(t, FunctionDeclareType, program.Body[0].Kind())
	assert.Equal(t, MainDeclareType, program.Body[1].Kind())
	assert.Equal(t, FunctionDeclareType, program.Body[2].Kind())
}

func TestParse_VarDeclare(t *testing.T) {
	body := mainBody(t, `main() {
  const msg: string = "hi";
  mut i = 0
}`)
	require.Len(t, body, 2)

	decl := body[0].(*VarDeclareNode)
	assert.False(t, decl.Mutable)
	assert.Equal(t, "msg", decl.Name.Name())
	require.NotNil(t, decl.Type)
	assert.Equal(t, "string", decl.Type.Name)
	str, ok := decl.Init.(*StringLiteralNode)
	require.True(t, ok)
	assert.Equal(t, `"hi"`, str.Literal())

	second := body[1].(*VarDeclareNode)
	assert.True(t, second.Mutable)
	assert.Nil(t, second.Type)
	_, ok = second.Init.(*NumberLiteralNode)
	assert.True(t, ok)
}

func TestParse_NodePositions(t *testing.T) {
	body := mainBody(t, "main() {\n  const x = 1;\n}", WithFilename("pos.gengar"))
	decl := body[0].(*VarDeclareNode)

	line, col := decl.Position()
	assert.Equal(t, 2, line)
	assert.Equal(t, 2, col)
	assert.Equal(t, "pos.gengar", decl.File)

	initLine, initCol := decl.Init.Position()
	assert.Equal(t, 2, initLine)
	assert.Equal(t, 12, initCol)
}

func TestParse_IfElseChain(t *testing.T) {
	body := mainBody(t, "main() { if (x) { return 1; } else if (y) { return 2; } else { return 3; } }")
	require.Len(t, body, 1)

	first := body[0].(*IfStatementNode)
	assert.Equal(t, IdentifierType, first.Test.Kind())
	require.Len(t, first.Consequent.Body, 1)

	second, ok := first.Alternate.(*IfStatementNode)
	require.True(t, ok, "else if should chain as a nested IfStatement")
	require.Len(t, second.Consequent.Body, 1)

	last, ok := second.Alternate.(*BlockStatementNode)
	require.True(t, ok)
	require.Len(t, last.Body, 1)
	assert.Equal(t, ReturnStatementType, last.Body[0].Kind())
}

func TestParse_IfWithoutElse(t *testing.T) {
	body := mainBody(t, `main() {
  if (x) { return 1; }
  const y = 2;
}`)
	require.Len(t, body, 2)
	first := body[0].(*IfStatementNode)
	assert.Nil(t, first.Alternate)
	assert.Equal(t, VarDeclareType, body[1].Kind())
}

func TestParse_WhileWithAssignment(t *testing.T) {
	body := mainBody(t, "main() { mut i: number = 0; while (i) { i = i + 1; } }")
	require.Len(t, body, 2)

	loop := body[1].(*WhileStatementNode)
	assert.Equal(t, IdentifierType, loop.Test.Kind())

	require.Len(t, loop.Body.Body, 1)
	stmt := loop.Body.Body[0].(*ExpressionStatementNode)
	assign := stmt.Expr.(*AssignExpressionNode)
	assert.Equal(t, "=", assign.Operator)
	assert.Equal(t, IdentifierType, assign.Target.Kind())

	sum, ok := assign.Init.(*BinaryExpressionNode)
	require.True(t, ok)
	assert.Equal(t, "+", sum.Operator)
}

func TestParse_Debugger(t *testing.T) {
	body := mainBody(t, "main() { debugger; }")
	require.Len(t, body, 1)
	assert.Equal(t, DebuggerStatementType, body[0].Kind())
}

func TestParse_UnknownStatementKeyword(t *testing.T) {
	_, err := Parse("main() { else }")
	require.Error(t, err)

	var structural *StructuralError
	require.True(t, errors.As(err, &structural))
	assert.Contains(t, structural.Message, "unknown statement")
}

func TestParse_UnexpectedToken(t *testing.T) {
	_, err := Parse("main( { }")
	require.Error(t, err)

	var unexpected *UnexpectedTokenError
	require.True(t, errors.As(err, &unexpected))
	assert.Equal(t, "')'", unexpected.Expected)
}

func TestParse_MissingFunctionIdentifier(t *testing.T) {
	_, err := Parse("fn () { }")
	require.Error(t, err)

	var structural *StructuralError
	require.True(t, errors.As(err, &structural))
	assert.Contains(t, structural.Message, "missing function identifier")
}

func TestParse_ElseWithoutBlock(t *testing.T) {
	_, err := Parse("main() { if (x) { } else 5 }")
	require.Error(t, err)

	var structural *StructuralError
	require.True(t, errors.As(err, &structural))
	assert.Contains(t, structural.Message, "after else")
}

func TestParse_UnterminatedBlock(t *testing.T) {
	_, err := Parse("main() { const x = 1;")
	require.Error(t, err)

	var unexpected *UnexpectedTokenError
	require.True(t, errors.As(err, &unexpected))
	assert.Equal(t, "'}'", unexpected.Expected)
}

func TestParse_ProgressOnStrayTokens(t *testing.T) {
	// stray marks are skipped by the forward-progress guard, top level
	// and inside blocks; parsing must terminate
	body := mainBody(t, "main() { ? : ? }")
	assert.Empty(t, body)

	program := parseProgram(t, "; , . main() { } . ,")
	assert.Len(t, program.Body, 1)
}

func TestParse_CollectVisitorOrder(t *testing.T) {
	program := parseProgram(t, "main() { const x = 1; }")

	visitor := &CollectVisitor{}
	program.Accept(visitor)
	assert.Equal(t, []NodeType{
		ProgramType,
		MainDeclareType,
		BlockStatementType,
		VarDeclareType,
		IdentifierType,
		NumberLiteralType,
	}, visitor.Kinds)
}

func TestParse_PrintVisitor(t *testing.T) {
	program := parseProgram(t, "main() { const x = 1; }")

	visitor := &PrintVisitor{}
	program.Accept(visitor)
	out := visitor.String()
	assert.Contains(t, out, "Program")
	assert.Contains(t, out, "VarDeclare const x")
	assert.Contains(t, out, "NumberLiteral 1")
}
