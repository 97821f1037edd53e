package parser

// CollectVisitor records the kind of every node it visits in traversal
// order. Tests use it to assert tree shapes without spelling out the whole
// structure.
type CollectVisitor struct {
	Kinds []NodeType
}

func (c *CollectVisitor) record(node Node) {
	c.Kinds = append(c.Kinds, node.Kind())
}

func (c *CollectVisitor) VisitProgramNode(node *ProgramNode) {
	c.record(node)
	for _, stmt := range node.Body {
		stmt.Accept(c)
	}
}

func (c *CollectVisitor) VisitMainDeclareNode(node *MainDeclareNode) {
	c.record(node)
	if node.ReturnType != nil {
		node.ReturnType.Accept(c)
	}
	node.Body.Accept(c)
}

func (c *CollectVisitor) VisitFunctionDeclareNode(node *FunctionDeclareNode) {
	c.record(node)
	node.Name.Accept(c)
	for _, param := range node.Params {
		param.Name.Accept(c)
		if param.Type != nil {
			param.Type.Accept(c)
		}
	}
	node.Body.Accept(c)
}

func (c *CollectVisitor) VisitVarDeclareNode(node *VarDeclareNode) {
	c.record(node)
	node.Name.Accept(c)
	if node.Type != nil {
		node.Type.Accept(c)
	}
	node.Init.Accept(c)
}

func (c *CollectVisitor) VisitIfStatementNode(node *IfStatementNode) {
	c.record(node)
	node.Test.Accept(c)
	node.Consequent.Accept(c)
	if node.Alternate != nil {
		node.Alternate.Accept(c)
	}
}

func (c *CollectVisitor) VisitWhileStatementNode(node *WhileStatementNode) {
	c.record(node)
	node.Test.Accept(c)
	node.Body.Accept(c)
}

func (c *CollectVisitor) VisitReturnStatementNode(node *ReturnStatementNode) {
	c.record(node)
	node.Argument.Accept(c)
}

func (c *CollectVisitor) VisitDebuggerStatementNode(node *DebuggerStatementNode) {
	c.record(node)
}

func (c *CollectVisitor) VisitExpressionStatementNode(node *ExpressionStatementNode) {
	c.record(node)
	node.Expr.Accept(c)
}

func (c *CollectVisitor) VisitBlockStatementNode(node *BlockStatementNode) {
	c.record(node)
	for _, stmt := range node.Body {
		stmt.Accept(c)
	}
}

func (c *CollectVisitor) VisitAssignExpressionNode(node *AssignExpressionNode) {
	c.record(node)
	node.Target.Accept(c)
	node.Init.Accept(c)
}

func (c *CollectVisitor) VisitBinaryExpressionNode(node *BinaryExpressionNode) {
	c.record(node)
	if node.Left != nil {
		node.Left.Accept(c)
	}
	node.Right.Accept(c)
}

func (c *CollectVisitor) VisitUnaryExpressionNode(node *UnaryExpressionNode) {
	c.record(node)
	node.Operand.Accept(c)
}

func (c *CollectVisitor) VisitConditionalExpressionNode(node *ConditionalExpressionNode) {
	c.record(node)
	node.Test.Accept(c)
	node.Consequent.Accept(c)
	node.Alternate.Accept(c)
}

func (c *CollectVisitor) VisitCallExpressionNode(node *CallExpressionNode) {
	c.record(node)
	node.Callee.Accept(c)
	for _, arg := range node.Arguments {
		arg.Accept(c)
	}
}

func (c *CollectVisitor) VisitMemberExpressionNode(node *MemberExpressionNode) {
	c.record(node)
	node.Object.Accept(c)
	node.Property.Accept(c)
}

func (c *CollectVisitor) VisitIdentifierNode(node *IdentifierNode) {
	c.record(node)
}

func (c *CollectVisitor) VisitStringLiteralNode(node *StringLiteralNode) {
	c.record(node)
}

func (c *CollectVisitor) VisitNumberLiteralNode(node *NumberLiteralNode) {
	c.record(node)
}

func (c *CollectVisitor) VisitBooleanLiteralNode(node *BooleanLiteralNode) {
	c.record(node)
}

func (c *CollectVisitor) VisitTypeAnnotationNode(node *TypeAnnotationNode) {
	c.record(node)
}
