package parser

import "github.com/gengar-lang/gengar/sourcemap"

// Prelude is the runtime shim prepended to every emitted program. It is
// the only generated text without a source origin.
const Prelude = "function print(...args){\n  console.log(...args);\n}\n"

// Generate emits the whole program: the prelude followed by each top-level
// declaration's fragment.
func (node *ProgramNode) Generate() (*sourcemap.Node, error) {
	root := sourcemap.Plain(Prelude)
	for _, stmt := range node.Body {
		frag, err := stmt.Generate()
		if err != nil {
			return nil, err
		}
		root.Add(frag)
	}
	return root, nil
}

// Generate wraps the main body in an immediately invoked function.
func (node *MainDeclareNode) Generate() (*sourcemap.Node, error) {
	body, err := node.Body.Generate()
	if err != nil {
		return nil, err
	}
	return node.origin(";(function()", body, ")();\n"), nil
}

// Generate emits a function declaration. Parameter type annotations are
// dropped: they are never nested into the output fragment.
func (node *FunctionDeclareNode) Generate() (*sourcemap.Node, error) {
	name, err := node.Name.Generate()
	if err != nil {
		return nil, err
	}
	frag := node.origin("function ", name, "(")
	for i, param := range node.Params {
		if i > 0 {
			frag.Add(",")
		}
		p, err := param.Name.Generate()
		if err != nil {
			return nil, err
		}
		frag.Add(p)
	}
	body, err := node.Body.Generate()
	if err != nil {
		return nil, err
	}
	return frag.Add(") ", body), nil
}

func (node *BlockStatementNode) Generate() (*sourcemap.Node, error) {
	frag := node.origin("{\n")
	for _, stmt := range node.Body {
		child, err := stmt.Generate()
		if err != nil {
			return nil, err
		}
		frag.Add(child)
	}
	return frag.Add("\n}"), nil
}

// Generate emits let for mut and const otherwise. The type annotation, if
// any, is dropped.
func (node *VarDeclareNode) Generate() (*sourcemap.Node, error) {
	keyword := "const "
	if node.Mutable {
		keyword = "let "
	}
	name, err := node.Name.Generate()
	if err != nil {
		return nil, err
	}
	init, err := node.Init.Generate()
	if err != nil {
		return nil, err
	}
	return node.origin(keyword, name, "=", init, ";"), nil
}

func (node *IfStatementNode) Generate() (*sourcemap.Node, error) {
	test, err := node.Test.Generate()
	if err != nil {
		return nil, err
	}
	consequent, err := node.Consequent.Generate()
	if err != nil {
		return nil, err
	}
	frag := node.origin("\nif(", test, ")", consequent)
	if node.Alternate != nil {
		alternate, err := node.Alternate.Generate()
		if err != nil {
			return nil, err
		}
		frag.Add("else ", alternate)
	}
	return frag, nil
}

func (node *WhileStatementNode) Generate() (*sourcemap.Node, error) {
	test, err := node.Test.Generate()
	if err != nil {
		return nil, err
	}
	body, err := node.Body.Generate()
	if err != nil {
		return nil, err
	}
	return node.origin("while(", test, ")", body), nil
}

func (node *ReturnStatementNode) Generate() (*sourcemap.Node, error) {
	argument, err := node.Argument.Generate()
	if err != nil {
		return nil, err
	}
	return node.origin("\nreturn (", argument, ");"), nil
}

func (node *DebuggerStatementNode) Generate() (*sourcemap.Node, error) {
	return node.origin("\ndebugger;"), nil
}

func (node *ExpressionStatementNode) Generate() (*sourcemap.Node, error) {
	expr, err := node.Expr.Generate()
	if err != nil {
		return nil, err
	}
	return node.origin(expr, ";"), nil
}

// Generate emits target OP init with the operator text preserved verbatim.
func (node *AssignExpressionNode) Generate() (*sourcemap.Node, error) {
	target, err := node.Target.Generate()
	if err != nil {
		return nil, err
	}
	init, err := node.Init.Generate()
	if err != nil {
		return nil, err
	}
	return node.origin(target, " "+node.Operator+" ", init), nil
}

// Generate emits left OP right. A nil operand means the parser's
// back-patching contract was broken, which is reported loudly instead of
// emitting partial output.
func (node *BinaryExpressionNode) Generate() (*sourcemap.Node, error) {
	if node.Left == nil || node.Right == nil {
		return nil, &EmissionError{Message: "binary expression with missing operand"}
	}
	left, err := node.Left.Generate()
	if err != nil {
		return nil, err
	}
	right, err := node.Right.Generate()
	if err != nil {
		return nil, err
	}
	return node.origin(left, " "+node.Operator+" ", right), nil
}

func (node *UnaryExpressionNode) Generate() (*sourcemap.Node, error) {
	operand, err := node.Operand.Generate()
	if err != nil {
		return nil, err
	}
	return node.origin(node.Operator, operand), nil
}

func (node *ConditionalExpressionNode) Generate() (*sourcemap.Node, error) {
	test, err := node.Test.Generate()
	if err != nil {
		return nil, err
	}
	consequent, err := node.Consequent.Generate()
	if err != nil {
		return nil, err
	}
	alternate, err := node.Alternate.Generate()
	if err != nil {
		return nil, err
	}
	return node.origin(test, " ? ", consequent, " : ", alternate), nil
}

func (node *CallExpressionNode) Generate() (*sourcemap.Node, error) {
	callee, err := node.Callee.Generate()
	if err != nil {
		return nil, err
	}
	frag := node.origin(callee, "(")
	for i, arg := range node.Arguments {
		if i > 0 {
			frag.Add(",")
		}
		child, err := arg.Generate()
		if err != nil {
			return nil, err
		}
		frag.Add(child)
	}
	return frag.Add(")"), nil
}

func (node *MemberExpressionNode) Generate() (*sourcemap.Node, error) {
	object, err := node.Object.Generate()
	if err != nil {
		return nil, err
	}
	property, err := node.Property.Generate()
	if err != nil {
		return nil, err
	}
	return node.origin(object, ".", property), nil
}

func (node *IdentifierNode) Generate() (*sourcemap.Node, error) {
	return node.origin(node.Token.Value), nil
}

func (node *StringLiteralNode) Generate() (*sourcemap.Node, error) {
	return node.origin(node.Token.Value), nil
}

func (node *NumberLiteralNode) Generate() (*sourcemap.Node, error) {
	return node.origin(node.Token.Value), nil
}

func (node *BooleanLiteralNode) Generate() (*sourcemap.Node, error) {
	return node.origin(node.Token.Value), nil
}

// Generate exists so annotations satisfy Node, but no statement emitter
// ever nests one: the target language has no types.
func (node *TypeAnnotationNode) Generate() (*sourcemap.Node, error) {
	return node.origin(":" + node.Name), nil
}
