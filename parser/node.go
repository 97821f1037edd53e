package parser

import (
	"strings"

	"github.com/gengar-lang/gengar/lexer"
	"github.com/gengar-lang/gengar/sourcemap"
)

// NodeType is the discriminant carried by every AST node.
type NodeType string

// NodeType constants. The set is closed; the visitors and the emitter
// handle every variant.
const (
	ProgramType               NodeType = "Program"
	MainDeclareType           NodeType = "MainDeclare"
	FunctionDeclareType       NodeType = "FunctionDeclare"
	VarDeclareType            NodeType = "VarDeclare"
	IfStatementType           NodeType = "IfStatement"
	WhileStatementType        NodeType = "WhileStatement"
	ReturnStatementType       NodeType = "ReturnStatement"
	DebuggerStatementType     NodeType = "DebuggerStatement"
	ExpressionStatementType   NodeType = "ExpressionStatement"
	BlockStatementType        NodeType = "BlockStatement"
	AssignExpressionType      NodeType = "AssignExpression"
	BinaryExpressionType      NodeType = "BinaryExpression"
	UnaryExpressionType       NodeType = "UnaryExpression"
	ConditionalExpressionType NodeType = "ConditionalExpression"
	CallExpressionType        NodeType = "CallExpression"
	MemberExpressionType      NodeType = "MemberExpression"
	IdentifierType            NodeType = "Identifier"
	StringLiteralType         NodeType = "StringLiteral"
	NumberLiteralType         NodeType = "NumberLiteral"
	BooleanLiteralType        NodeType = "BooleanLiteral"
	TypeAnnotationType        NodeType = "TypeAnnotation"
)

// NodeVisitor implements the Visitor pattern for traversing the AST.
// Visit methods recurse into children themselves, which lets a visitor
// control traversal order and indentation.
type NodeVisitor interface {
	VisitProgramNode(node *ProgramNode)
	VisitMainDeclareNode(node *MainDeclareNode)
	VisitFunctionDeclareNode(node *FunctionDeclareNode)
	VisitVarDeclareNode(node *VarDeclareNode)
	VisitIfStatementNode(node *IfStatementNode)
	VisitWhileStatementNode(node *WhileStatementNode)
	VisitReturnStatementNode(node *ReturnStatementNode)
	VisitDebuggerStatementNode(node *DebuggerStatementNode)
	VisitExpressionStatementNode(node *ExpressionStatementNode)
	VisitBlockStatementNode(node *BlockStatementNode)
	VisitAssignExpressionNode(node *AssignExpressionNode)
	VisitBinaryExpressionNode(node *BinaryExpressionNode)
	VisitUnaryExpressionNode(node *UnaryExpressionNode)
	VisitConditionalExpressionNode(node *ConditionalExpressionNode)
	VisitCallExpressionNode(node *CallExpressionNode)
	VisitMemberExpressionNode(node *MemberExpressionNode)
	VisitIdentifierNode(node *IdentifierNode)
	VisitStringLiteralNode(node *StringLiteralNode)
	VisitNumberLiteralNode(node *NumberLiteralNode)
	VisitBooleanLiteralNode(node *BooleanLiteralNode)
	VisitTypeAnnotationNode(node *TypeAnnotationNode)
}

// Node is the base interface for all AST nodes. Every node knows its
// discriminant, its source position, a source-text reconstruction of
// itself, and how to generate its output fragment.
type Node interface {
	Kind() NodeType
	Literal() string
	Position() (line int, col int)
	Accept(visitor NodeVisitor)
	Generate() (*sourcemap.Node, error)
}

// StatementNode is the base interface for all statement nodes.
type StatementNode interface {
	Node
	Statement()
}

// ExpressionNode is the base interface for all expression nodes. Every
// expression can appear in statement position.
type ExpressionNode interface {
	StatementNode
	Expression()
}

// base carries the introducing token and source file shared by all nodes.
type base struct {
	Token lexer.Token // The token that introduced this node
	File  string      // The source file the node came from
}

// Position returns the node's 1-based line and 0-based column.
func (b *base) Position() (int, int) {
	return b.Token.Line, b.Token.Col
}

// origin builds an output fragment anchored at this node's source position.
func (b *base) origin(chunks ...any) *sourcemap.Node {
	return sourcemap.NewNode(b.Token.Line, b.Token.Col, b.File, chunks...)
}

// Param is one formal parameter of a function declaration: a name with an
// optional type annotation. It is not a Node itself; the annotation is
// dropped at emission.
type Param struct {
	Name *IdentifierNode
	Type *TypeAnnotationNode // nil when the parameter is untyped
}

// ProgramNode is the root of the AST. It exclusively owns its body.
type ProgramNode struct {
	File string
	Body []StatementNode // MainDeclare and FunctionDeclare nodes in order
}

func (node *ProgramNode) Kind() NodeType       { return ProgramType }
func (node *ProgramNode) Position() (int, int) { return 1, 0 }
func (node *ProgramNode) Statement()           {}

func (node *ProgramNode) Literal() string {
	parts := make([]string, 0, len(node.Body))
	for _, stmt := range node.Body {
		parts = append(parts, stmt.Literal())
	}
	return strings.Join(parts, "\n")
}

func (node *ProgramNode) Accept(visitor NodeVisitor) {
	visitor.VisitProgramNode(node)
}

// MainDeclareNode represents the program entry point: main() { ... }.
type MainDeclareNode struct {
	base
	ReturnType *TypeAnnotationNode // optional, dropped at emission
	Body       *BlockStatementNode
}

func (node *MainDeclareNode) Kind() NodeType { return MainDeclareType }
func (node *MainDeclareNode) Statement()     {}

func (node *MainDeclareNode) Literal() string {
	lit := "main()"
	if node.ReturnType != nil {
		lit += node.ReturnType.Literal()
	}
	return lit + " " + node.Body.Literal()
}

func (node *MainDeclareNode) Accept(visitor NodeVisitor) {
	visitor.VisitMainDeclareNode(node)
}

// FunctionDeclareNode represents a named function: fn name(params) { ... }.
type FunctionDeclareNode struct {
	base
	Name   *IdentifierNode
	Params []Param
	Body   *BlockStatementNode
}

func (node *FunctionDeclareNode) Kind() NodeType { return FunctionDeclareType }
func (node *FunctionDeclareNode) Statement()     {}

func (node *FunctionDeclareNode) Literal() string {
	params := make([]string, 0, len(node.Params))
	for _, param := range node.Params {
		p := param.Name.Literal()
		if param.Type != nil {
			p += param.Type.Literal()
		}
		params = append(params, p)
	}
	return "fn " + node.Name.Literal() + "(" + strings.Join(params, ", ") + ") " + node.Body.Literal()
}

func (node *FunctionDeclareNode) Accept(visitor NodeVisitor) {
	visitor.VisitFunctionDeclareNode(node)
}

// VarDeclareNode represents a const or mut declaration with an initializer.
type VarDeclareNode struct {
	base
	Mutable bool // true for mut, false for const
	Name    *IdentifierNode
	Type    *TypeAnnotationNode // optional, dropped at emission
	Init    ExpressionNode
}

func (node *VarDeclareNode) Kind() NodeType { return VarDeclareType }
func (node *VarDeclareNode) Statement()     {}

func (node *VarDeclareNode) Literal() string {
	lit := node.Token.Value + " " + node.Name.Literal()
	if node.Type != nil {
		lit += node.Type.Literal()
	}
	return lit + " = " + node.Init.Literal()
}

func (node *VarDeclareNode) Accept(visitor NodeVisitor) {
	visitor.VisitVarDeclareNode(node)
}

// IfStatementNode represents if (test) { ... } with an optional alternate,
// which is either a BlockStatementNode or a chained IfStatementNode.
type IfStatementNode struct {
	base
	Test       ExpressionNode
	Consequent *BlockStatementNode
	Alternate  StatementNode // nil | *IfStatementNode | *BlockStatementNode
}

func (node *IfStatementNode) Kind() NodeType { return IfStatementType }
func (node *IfStatementNode) Statement()     {}

func (node *IfStatementNode) Literal() string {
	lit := "if (" + node.Test.Literal() + ") " + node.Consequent.Literal()
	if node.Alternate != nil {
		lit += " else " + node.Alternate.Literal()
	}
	return lit
}

func (node *IfStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitIfStatementNode(node)
}

// WhileStatementNode represents while (test) { ... }.
type WhileStatementNode struct {
	base
	Test ExpressionNode
	Body *BlockStatementNode
}

func (node *WhileStatementNode) Kind() NodeType { return WhileStatementType }
func (node *WhileStatementNode) Statement()     {}

func (node *WhileStatementNode) Literal() string {
	return "while (" + node.Test.Literal() + ") " + node.Body.Literal()
}

func (node *WhileStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitWhileStatementNode(node)
}

// ReturnStatementNode represents return expr.
type ReturnStatementNode struct {
	base
	Argument ExpressionNode
}

func (node *ReturnStatementNode) Kind() NodeType { return ReturnStatementType }
func (node *ReturnStatementNode) Statement()     {}

func (node *ReturnStatementNode) Literal() string {
	return "return " + node.Argument.Literal()
}

func (node *ReturnStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitReturnStatementNode(node)
}

// DebuggerStatementNode represents the bare debugger statement.
type DebuggerStatementNode struct {
	base
}

func (node *DebuggerStatementNode) Kind() NodeType  { return DebuggerStatementType }
func (node *DebuggerStatementNode) Statement()      {}
func (node *DebuggerStatementNode) Literal() string { return "debugger" }

func (node *DebuggerStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitDebuggerStatementNode(node)
}

// ExpressionStatementNode wraps an expression used in statement position.
type ExpressionStatementNode struct {
	base
	Expr ExpressionNode
}

func (node *ExpressionStatementNode) Kind() NodeType  { return ExpressionStatementType }
func (node *ExpressionStatementNode) Statement()      {}
func (node *ExpressionStatementNode) Literal() string { return node.Expr.Literal() }

func (node *ExpressionStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitExpressionStatementNode(node)
}

// BlockStatementNode represents a { ... } group of statements.
type BlockStatementNode struct {
	base
	Body []StatementNode
}

func (node *BlockStatementNode) Kind() NodeType { return BlockStatementType }
func (node *BlockStatementNode) Statement()     {}

func (node *BlockStatementNode) Literal() string {
	lit := "{"
	for _, stmt := range node.Body {
		lit += stmt.Literal() + ";"
	}
	return lit + "}"
}

func (node *BlockStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitBlockStatementNode(node)
}

// AssignExpressionNode represents target OP init, where OP is one of
// =, +=, -=, *=, /=. The operator text is preserved and emitted verbatim.
type AssignExpressionNode struct {
	base
	Target   ExpressionNode // Identifier or MemberExpression
	Operator string
	Init     ExpressionNode
}

func (node *AssignExpressionNode) Kind() NodeType { return AssignExpressionType }
func (node *AssignExpressionNode) Statement()     {}
func (node *AssignExpressionNode) Expression()    {}

func (node *AssignExpressionNode) Literal() string {
	return node.Target.Literal() + " " + node.Operator + " " + node.Init.Literal()
}

func (node *AssignExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitAssignExpressionNode(node)
}

// BinaryExpressionNode represents left OP right. The parser always fills
// both operands; Generate fails loudly if Left is still nil.
type BinaryExpressionNode struct {
	base
	Left     ExpressionNode
	Operator string
	Right    ExpressionNode
}

func (node *BinaryExpressionNode) Kind() NodeType { return BinaryExpressionType }
func (node *BinaryExpressionNode) Statement()     {}
func (node *BinaryExpressionNode) Expression()    {}

func (node *BinaryExpressionNode) Literal() string {
	left := "<nil>"
	if node.Left != nil {
		left = node.Left.Literal()
	}
	return left + " " + node.Operator + " " + node.Right.Literal()
}

func (node *BinaryExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitBinaryExpressionNode(node)
}

// UnaryExpressionNode represents OP operand, where OP is a run of ! or ~.
type UnaryExpressionNode struct {
	base
	Operator string
	Operand  ExpressionNode
}

func (node *UnaryExpressionNode) Kind() NodeType { return UnaryExpressionType }
func (node *UnaryExpressionNode) Statement()     {}
func (node *UnaryExpressionNode) Expression()    {}

func (node *UnaryExpressionNode) Literal() string {
	return node.Operator + node.Operand.Literal()
}

func (node *UnaryExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitUnaryExpressionNode(node)
}

// ConditionalExpressionNode represents test ? consequent : alternate.
type ConditionalExpressionNode struct {
	base
	Test       ExpressionNode
	Consequent ExpressionNode
	Alternate  ExpressionNode
}

func (node *ConditionalExpressionNode) Kind() NodeType { return ConditionalExpressionType }
func (node *ConditionalExpressionNode) Statement()     {}
func (node *ConditionalExpressionNode) Expression()    {}

func (node *ConditionalExpressionNode) Literal() string {
	return node.Test.Literal() + " ? " + node.Consequent.Literal() + " : " + node.Alternate.Literal()
}

func (node *ConditionalExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitConditionalExpressionNode(node)
}

// CallExpressionNode represents callee(arguments...). The callee is an
// identifier or a member chain.
type CallExpressionNode struct {
	base
	Callee    ExpressionNode
	Arguments []ExpressionNode
}

func (node *CallExpressionNode) Kind() NodeType { return CallExpressionType }
func (node *CallExpressionNode) Statement()     {}
func (node *CallExpressionNode) Expression()    {}

func (node *CallExpressionNode) Literal() string {
	args := make([]string, 0, len(node.Arguments))
	for _, arg := range node.Arguments {
		args = append(args, arg.Literal())
	}
	return node.Callee.Literal() + "(" + strings.Join(args, ", ") + ")"
}

func (node *CallExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitCallExpressionNode(node)
}

// MemberExpressionNode represents object.property. Chains nest to the
// left: foo.bar.baz is (foo.bar).baz.
type MemberExpressionNode struct {
	base
	Object   ExpressionNode
	Property *IdentifierNode
}

func (node *MemberExpressionNode) Kind() NodeType { return MemberExpressionType }
func (node *MemberExpressionNode) Statement()     {}
func (node *MemberExpressionNode) Expression()    {}

func (node *MemberExpressionNode) Literal() string {
	return node.Object.Literal() + "." + node.Property.Literal()
}

func (node *MemberExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitMemberExpressionNode(node)
}

// IdentifierNode represents a bare identifier.
type IdentifierNode struct {
	base
}

func (node *IdentifierNode) Kind() NodeType  { return IdentifierType }
func (node *IdentifierNode) Statement()      {}
func (node *IdentifierNode) Expression()     {}
func (node *IdentifierNode) Literal() string { return node.Token.Value }

// Name returns the identifier text.
func (node *IdentifierNode) Name() string { return node.Token.Value }

func (node *IdentifierNode) Accept(visitor NodeVisitor) {
	visitor.VisitIdentifierNode(node)
}

// StringLiteralNode represents a "..." literal, quotes included.
type StringLiteralNode struct {
	base
}

func (node *StringLiteralNode) Kind() NodeType  { return StringLiteralType }
func (node *StringLiteralNode) Statement()      {}
func (node *StringLiteralNode) Expression()     {}
func (node *StringLiteralNode) Literal() string { return node.Token.Value }

func (node *StringLiteralNode) Accept(visitor NodeVisitor) {
	visitor.VisitStringLiteralNode(node)
}

// NumberLiteralNode represents a digit-run literal.
type NumberLiteralNode struct {
	base
}

func (node *NumberLiteralNode) Kind() NodeType  { return NumberLiteralType }
func (node *NumberLiteralNode) Statement()      {}
func (node *NumberLiteralNode) Expression()     {}
func (node *NumberLiteralNode) Literal() string { return node.Token.Value }

func (node *NumberLiteralNode) Accept(visitor NodeVisitor) {
	visitor.VisitNumberLiteralNode(node)
}

// BooleanLiteralNode represents true or false.
type BooleanLiteralNode struct {
	base
}

func (node *BooleanLiteralNode) Kind() NodeType  { return BooleanLiteralType }
func (node *BooleanLiteralNode) Statement()      {}
func (node *BooleanLiteralNode) Expression()     {}
func (node *BooleanLiteralNode) Literal() string { return node.Token.Value }

func (node *BooleanLiteralNode) Accept(visitor NodeVisitor) {
	visitor.VisitBooleanLiteralNode(node)
}

// TypeAnnotationNode represents a : string | : number | : boolean marker.
// Annotations survive parsing for tooling but are never emitted into the
// target program.
type TypeAnnotationNode struct {
	base
	Name string // "string", "number" or "boolean"
}

func (node *TypeAnnotationNode) Kind() NodeType  { return TypeAnnotationType }
func (node *TypeAnnotationNode) Literal() string { return ": " + node.Name }

func (node *TypeAnnotationNode) Accept(visitor NodeVisitor) {
	visitor.VisitTypeAnnotationNode(node)
}
