package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// firstExpr parses a program whose main holds a single declaration and
// returns the declaration's initializer.
func firstExpr(t *testing.T, init string, options ...Option) ExpressionNode {
	t.Helper()
	body := mainBody(t, "main() { const it = "+init+" }", options...)
	require.Len(t, body, 1)
	return body[0].(*VarDeclareNode).Init
}

func TestExpressions_BinaryRightLeaningByDefault(t *testing.T) {
	expr := firstExpr(t, "1 + 2 * 3")

	// the reference parser produces a right-leaning chain: 1 + (2 * 3),
	// regardless of operator precedence
	outer, ok := expr.(*BinaryExpressionNode)
	require.True(t, ok)
	assert.Equal(t, "+", outer.Operator)
	assert.Equal(t, NumberLiteralType, outer.Left.Kind())

	inner, ok := outer.Right.(*BinaryExpressionNode)
	require.True(t, ok)
	assert.Equal(t, "*", inner.Operator)
	assert.Equal(t, "2", inner.Left.Literal())
	assert.Equal(t, "3", inner.Right.Literal())
}

func TestExpressions_BinaryLeftAssociativeOption(t *testing.T) {
	expr := firstExpr(t, "1 + 2 * 3", WithLeftAssociative())

	// with the option the same chain folds left: (1 + 2) * 3
	outer, ok := expr.(*BinaryExpressionNode)
	require.True(t, ok)
	assert.Equal(t, "*", outer.Operator)
	assert.Equal(t, "3", outer.Right.Literal())

	inner, ok := outer.Left.(*BinaryExpressionNode)
	require.True(t, ok)
	assert.Equal(t, "+", inner.Operator)
	assert.Equal(t, "1", inner.Left.Literal())
}

func TestExpressions_NewlineEndsExpression(t *testing.T) {
	body := mainBody(t, "main() {\n  const a = 1\n  const b = 2\n}")
	require.Len(t, body, 2)
}

func TestExpressions_Conditional(t *testing.T) {
	expr := firstExpr(t, "a ? b : c")

	cond, ok := expr.(*ConditionalExpressionNode)
	require.True(t, ok)
	assert.Equal(t, "a", cond.Test.Literal())
	assert.Equal(t, "b", cond.Consequent.Literal())
	assert.Equal(t, "c", cond.Alternate.Literal())
}

func TestExpressions_NestedConditional(t *testing.T) {
	expr := firstExpr(t, "a ? b : c ? d : e")

	outer, ok := expr.(*ConditionalExpressionNode)
	require.True(t, ok)
	inner, ok := outer.Alternate.(*ConditionalExpressionNode)
	require.True(t, ok)
	assert.Equal(t, "c", inner.Test.Literal())
}

func TestExpressions_Unary(t *testing.T) {
	expr := firstExpr(t, "!!ready")

	unary, ok := expr.(*UnaryExpressionNode)
	require.True(t, ok)
	assert.Equal(t, "!!", unary.Operator)
	assert.Equal(t, IdentifierType, unary.Operand.Kind())
}

func TestExpressions_MemberChain(t *testing.T) {
	expr := firstExpr(t, "foo.bar.baz")

	// foo.bar.baz nests left: (foo.bar).baz
	outer, ok := expr.(*MemberExpressionNode)
	require.True(t, ok)
	assert.Equal(t, "baz", outer.Property.Name())

	inner, ok := outer.Object.(*MemberExpressionNode)
	require.True(t, ok)
	assert.Equal(t, "bar", inner.Property.Name())
	assert.Equal(t, "foo", inner.Object.Literal())
}

func TestExpressions_Call(t *testing.T) {
	expr := firstExpr(t, `greet("hi", name)`)

	call, ok := expr.(*CallExpressionNode)
	require.True(t, ok)
	assert.Equal(t, "greet", call.Callee.Literal())
	require.Len(t, call.Arguments, 2)
	assert.Equal(t, StringLiteralType, call.Arguments[0].Kind())
	assert.Equal(t, IdentifierType, call.Arguments[1].Kind())
}

func TestExpressions_CallWithoutArguments(t *testing.T) {
	expr := firstExpr(t, "tick()")

	call, ok := expr.(*CallExpressionNode)
	require.True(t, ok)
	assert.Empty(t, call.Arguments)
}

func TestExpressions_MemberCall(t *testing.T) {
	expr := firstExpr(t, "foo.bar.baz(x)")

	call, ok := expr.(*CallExpressionNode)
	require.True(t, ok)
	assert.Equal(t, "foo.bar.baz", call.Callee.Literal())
	require.Len(t, call.Arguments, 1)

	member, ok := call.Callee.(*MemberExpressionNode)
	require.True(t, ok)
	assert.Equal(t, "baz", member.Property.Name())
}

func TestExpressions_NestedCallArgument(t *testing.T) {
	expr := firstExpr(t, "outer(inner(x), y)")

	call, ok := expr.(*CallExpressionNode)
	require.True(t, ok)
	require.Len(t, call.Arguments, 2)
	assert.Equal(t, CallExpressionType, call.Arguments[0].Kind())
}

func TestExpressions_AssignmentForms(t *testing.T) {
	tests := []struct {
		src      string
		operator string
	}{
		{"main() { i = 1 }", "="},
		{"main() { i=1 }", "="},
		{"main() { i += 2 }", "+="},
		{"main() { i -= 2 }", "-="},
		{"main() { i *= 2 }", "*="},
		{"main() { i /= 2 }", "/="},
	}
	for _, tc := range tests {
		body := mainBody(t, tc.src)
		require.Len(t, body, 1, "src: %s", tc.src)

		stmt := body[0].(*ExpressionStatementNode)
		assign, ok := stmt.Expr.(*AssignExpressionNode)
		require.True(t, ok, "src: %s", tc.src)
		assert.Equal(t, tc.operator, assign.Operator, "src: %s", tc.src)
	}
}

func TestExpressions_MemberAssignment(t *testing.T) {
	body := mainBody(t, "main() { obj.field = 1 }")
	require.Len(t, body, 1)

	stmt := body[0].(*ExpressionStatementNode)
	assign, ok := stmt.Expr.(*AssignExpressionNode)
	require.True(t, ok)
	assert.Equal(t, MemberExpressionType, assign.Target.Kind())
	assert.Equal(t, "obj.field", assign.Target.Literal())
}

func TestExpressions_BareIdentifierStatement(t *testing.T) {
	body := mainBody(t, "main() { lonely }")
	require.Len(t, body, 1)

	stmt := body[0].(*ExpressionStatementNode)
	assert.Equal(t, IdentifierType, stmt.Expr.Kind())
}

func TestExpressions_UnknownExpressionToken(t *testing.T) {
	_, err := Parse("main() { const x = ; }")
	require.Error(t, err)

	var structural *StructuralError
	require.True(t, errors.As(err, &structural))
	assert.Contains(t, structural.Message, "unknown expression token")
}

func TestExpressions_ConditionalMissingColon(t *testing.T) {
	_, err := Parse("main() { const x = a ? b }")
	require.Error(t, err)

	var unexpected *UnexpectedTokenError
	require.True(t, errors.As(err, &unexpected))
	assert.Equal(t, "':'", unexpected.Expected)
}

func TestExpressions_CallMissingComma(t *testing.T) {
	_, err := Parse("main() { f(a b) }")
	require.Error(t, err)

	var unexpected *UnexpectedTokenError
	require.True(t, errors.As(err, &unexpected))
	assert.Equal(t, "',' or ')'", unexpected.Expected)
}
