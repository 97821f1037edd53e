package parser

import (
	"bytes"
	"fmt"
)

// indentSize is the number of spaces added per tree level.
const indentSize = 4

// PrintVisitor renders the AST as an indented tree, one node per line with
// its position. Used by the CLI's parse command and handy for debugging.
type PrintVisitor struct {
	Indent int
	Buf    bytes.Buffer
}

// String returns the rendered tree.
func (p *PrintVisitor) String() string {
	return p.Buf.String()
}

// line writes one indented line for a node.
func (p *PrintVisitor) line(node Node, detail string) {
	for i := 0; i < p.Indent; i++ {
		p.Buf.WriteString(" ")
	}
	line, col := node.Position()
	if detail != "" {
		p.Buf.WriteString(fmt.Sprintf("%s %s [%d:%d]\n", node.Kind(), detail, line, col))
	} else {
		p.Buf.WriteString(fmt.Sprintf("%s [%d:%d]\n", node.Kind(), line, col))
	}
}

// nested runs fn with the indentation one level deeper.
func (p *PrintVisitor) nested(fn func()) {
	p.Indent += indentSize
	fn()
	p.Indent -= indentSize
}

func (p *PrintVisitor) VisitProgramNode(node *ProgramNode) {
	p.line(node, node.File)
	p.nested(func() {
		for _, stmt := range node.Body {
			stmt.Accept(p)
		}
	})
}

func (p *PrintVisitor) VisitMainDeclareNode(node *MainDeclareNode) {
	p.line(node, "")
	p.nested(func() {
		if node.ReturnType != nil {
			node.ReturnType.Accept(p)
		}
		node.Body.Accept(p)
	})
}

func (p *PrintVisitor) VisitFunctionDeclareNode(node *FunctionDeclareNode) {
	p.line(node, node.Name.Name())
	p.nested(func() {
		for _, param := range node.Params {
			param.Name.Accept(p)
			if param.Type != nil {
				param.Type.Accept(p)
			}
		}
		node.Body.Accept(p)
	})
}

func (p *PrintVisitor) VisitVarDeclareNode(node *VarDeclareNode) {
	p.line(node, node.Token.Value+" "+node.Name.Name())
	p.nested(func() {
		if node.Type != nil {
			node.Type.Accept(p)
		}
		node.Init.Accept(p)
	})
}

func (p *PrintVisitor) VisitIfStatementNode(node *IfStatementNode) {
	p.line(node, "")
	p.nested(func() {
		node.Test.Accept(p)
		node.Consequent.Accept(p)
		if node.Alternate != nil {
			node.Alternate.Accept(p)
		}
	})
}

func (p *PrintVisitor) VisitWhileStatementNode(node *WhileStatementNode) {
	p.line(node, "")
	p.nested(func() {
		node.Test.Accept(p)
		node.Body.Accept(p)
	})
}

func (p *PrintVisitor) VisitReturnStatementNode(node *ReturnStatementNode) {
	p.line(node, "")
	p.nested(func() {
		node.Argument.Accept(p)
	})
}

func (p *PrintVisitor) VisitDebuggerStatementNode(node *DebuggerStatementNode) {
	p.line(node, "")
}

func (p *PrintVisitor) VisitExpressionStatementNode(node *ExpressionStatementNode) {
	p.line(node, "")
	p.nested(func() {
		node.Expr.Accept(p)
	})
}

func (p *PrintVisitor) VisitBlockStatementNode(node *BlockStatementNode) {
	p.line(node, "")
	p.nested(func() {
		for _, stmt := range node.Body {
			stmt.Accept(p)
		}
	})
}

func (p *PrintVisitor) VisitAssignExpressionNode(node *AssignExpressionNode) {
	p.line(node, node.Operator)
	p.nested(func() {
		node.Target.Accept(p)
		node.Init.Accept(p)
	})
}

func (p *PrintVisitor) VisitBinaryExpressionNode(node *BinaryExpressionNode) {
	p.line(node, node.Operator)
	p.nested(func() {
		if node.Left != nil {
			node.Left.Accept(p)
		}
		node.Right.Accept(p)
	})
}

func (p *PrintVisitor) VisitUnaryExpressionNode(node *UnaryExpressionNode) {
	p.line(node, node.Operator)
	p.nested(func() {
		node.Operand.Accept(p)
	})
}

func (p *PrintVisitor) VisitConditionalExpressionNode(node *ConditionalExpressionNode) {
	p.line(node, "")
	p.nested(func() {
		node.Test.Accept(p)
		node.Consequent.Accept(p)
		node.Alternate.Accept(p)
	})
}

func (p *PrintVisitor) VisitCallExpressionNode(node *CallExpressionNode) {
	p.line(node, "")
	p.nested(func() {
		node.Callee.Accept(p)
		for _, arg := range node.Arguments {
			arg.Accept(p)
		}
	})
}

func (p *PrintVisitor) VisitMemberExpressionNode(node *MemberExpressionNode) {
	p.line(node, "")
	p.nested(func() {
		node.Object.Accept(p)
		node.Property.Accept(p)
	})
}

func (p *PrintVisitor) VisitIdentifierNode(node *IdentifierNode) {
	p.line(node, node.Name())
}

func (p *PrintVisitor) VisitStringLiteralNode(node *StringLiteralNode) {
	p.line(node, node.Token.Value)
}

func (p *PrintVisitor) VisitNumberLiteralNode(node *NumberLiteralNode) {
	p.line(node, node.Token.Value)
}

func (p *PrintVisitor) VisitBooleanLiteralNode(node *BooleanLiteralNode) {
	p.line(node, node.Token.Value)
}

func (p *PrintVisitor) VisitTypeAnnotationNode(node *TypeAnnotationNode) {
	p.line(node, node.Name)
}
