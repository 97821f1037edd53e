package parser

import "github.com/gengar-lang/gengar/lexer"

// parseExpression parses one expression:
//
//	Expression := NonRecursive ( BinaryTail | ConditionalTail )?
//
// Current is the first token of the expression on entry and the first
// token after the expression on exit. Only inline whitespace is skipped
// when looking for a tail, so a newline terminates the expression.
func (par *Parser) parseExpression() (ExpressionNode, error) {
	atom, err := par.parseNonRecursive()
	if err != nil {
		return nil, err
	}

	if err := par.skipSpaces(); err != nil {
		return nil, err
	}
	switch {
	case par.cur().Kind == lexer.BINARY_OP:
		return par.parseBinaryTail(atom)
	case par.cur().Is(lexer.MARKS, "?"):
		return par.parseConditionalTail(atom)
	}
	return atom, nil
}

// parseBinaryTail eliminates the left recursion of
//
//	BinaryTail := BinaryOperator Expression BinaryTail?
//
// by collecting the operator/operand pairs into flat lists and folding
// them into a tree once the chain ends. The default fold is right-leaning,
// matching the reference parser; WithLeftAssociative folds left instead.
// Either way every node is built with both operands filled in.
//
// Operator precedence is intentionally not enforced.
func (par *Parser) parseBinaryTail(left ExpressionNode) (ExpressionNode, error) {
	ops := make([]lexer.Token, 0, 2)
	operands := make([]ExpressionNode, 0, 2)

	for par.cur().Kind == lexer.BINARY_OP {
		op := par.cur()
		if err := par.advanceOverSpaces(); err != nil {
			return nil, err
		}
		operand, err := par.parseNonRecursive()
		if err != nil {
			return nil, err
		}
		if err := par.skipSpaces(); err != nil {
			return nil, err
		}
		// a conditional tail binds to the operand it follows: a + (b ? c : d)
		if par.cur().Is(lexer.MARKS, "?") {
			if operand, err = par.parseConditionalTail(operand); err != nil {
				return nil, err
			}
		}
		ops = append(ops, op)
		operands = append(operands, operand)
	}

	if par.leftAssoc {
		acc := left
		for i := range ops {
			acc = &BinaryExpressionNode{
				base:     par.at(ops[i]),
				Left:     acc,
				Operator: ops[i].Value,
				Right:    operands[i],
			}
		}
		return acc, nil
	}

	acc := operands[len(operands)-1]
	for i := len(ops) - 1; i >= 1; i-- {
		acc = &BinaryExpressionNode{
			base:     par.at(ops[i]),
			Left:     operands[i-1],
			Operator: ops[i].Value,
			Right:    acc,
		}
	}
	return &BinaryExpressionNode{
		base:     par.at(ops[0]),
		Left:     left,
		Operator: ops[0].Value,
		Right:    acc,
	}, nil
}

// parseConditionalTail parses '?' Expression ':' Expression with the
// already-parsed atom as the test. Nested conditionals on either branch
// chain naturally through the recursive calls.
func (par *Parser) parseConditionalTail(test ExpressionNode) (ExpressionNode, error) {
	node := &ConditionalExpressionNode{
		base: par.at(par.cur()),
		Test: test,
	}

	if err := par.advanceOverSpaces(); err != nil {
		return nil, err
	}
	consequent, err := par.parseExpression()
	if err != nil {
		return nil, err
	}
	node.Consequent = consequent

	if err := par.skipSpaces(); err != nil {
		return nil, err
	}
	if !par.cur().Is(lexer.MARKS, ":") {
		return nil, par.unexpected("':'", par.cur())
	}
	if err := par.advanceOverSpaces(); err != nil {
		return nil, err
	}
	alternate, err := par.parseExpression()
	if err != nil {
		return nil, err
	}
	node.Alternate = alternate
	return node, nil
}

// parseNonRecursive parses the atomic expression forms: literals, unary
// expressions, and everything starting with an identifier.
func (par *Parser) parseNonRecursive() (ExpressionNode, error) {
	tok := par.cur()
	switch tok.Kind {
	case lexer.STR_LIT:
		node := &StringLiteralNode{base: par.at(tok)}
		_, err := par.Lex.GetToken()
		return node, err
	case lexer.NUM_LIT:
		node := &NumberLiteralNode{base: par.at(tok)}
		_, err := par.Lex.GetToken()
		return node, err
	case lexer.BOOL_LIT:
		node := &BooleanLiteralNode{base: par.at(tok)}
		_, err := par.Lex.GetToken()
		return node, err
	case lexer.UNARY_OP:
		if err := par.advanceOverSpaces(); err != nil {
			return nil, err
		}
		operand, err := par.parseExpression()
		if err != nil {
			return nil, err
		}
		return &UnaryExpressionNode{
			base:     par.at(tok),
			Operator: tok.Value,
			Operand:  operand,
		}, nil
	case lexer.ID:
		return par.parseIdentStart()
	default:
		return nil, par.structural("unknown expression token '"+tok.Value+"'", tok)
	}
}

// parseIdentStart disambiguates the expression forms that begin with an
// identifier:
//
//	id          bare identifier
//	id(...)     call
//	id.x        member chain
//	id.x(...)   member call
//	id = ...    assignment (also id.x = ... and the no-whitespace form)
//
// A dot after the identifier starts a member parse; if the chain turns out
// to be a callee, the lexer backtracks and the call parser re-parses it.
// Whitespace after the identifier forces a save/skip/peek to tell an
// assignment from a bare identifier.
func (par *Parser) parseIdentStart() (ExpressionNode, error) {
	tok := par.cur()
	peek, err := par.Lex.Peek()
	if err != nil {
		return nil, err
	}

	switch {
	case peek.Kind == lexer.DOT:
		snap := par.Lex.Save()
		member, err := par.parseMemberExpression()
		if err != nil {
			return nil, err
		}
		if par.cur().Kind == lexer.LEFT_PAREN {
			par.Lex.Restore(snap)
			return par.parseCallExpression()
		}
		// member assignment target, e.g. obj.field = x
		if par.cur().Kind == lexer.WHITESPACE || par.cur().Kind == lexer.ASSIGN_OP {
			memberSnap := par.Lex.Save()
			if err := par.skipSpaces(); err != nil {
				return nil, err
			}
			if par.cur().Kind == lexer.ASSIGN_OP {
				return par.parseAssignTail(member)
			}
			par.Lex.Restore(memberSnap)
		}
		return member, nil

	case peek.Kind == lexer.LEFT_PAREN:
		return par.parseCallExpression()

	case peek.Kind == lexer.ASSIGN_OP:
		return par.parseAssignExpression()

	case peek.Kind == lexer.WHITESPACE:
		snap := par.Lex.Save()
		if err := par.advanceOverSpaces(); err != nil {
			return nil, err
		}
		assign := par.cur().Kind == lexer.ASSIGN_OP
		par.Lex.Restore(snap)
		if assign {
			return par.parseAssignExpression()
		}
		node := par.identifier(tok)
		_, err := par.Lex.GetToken()
		return node, err

	default:
		node := par.identifier(tok)
		_, err := par.Lex.GetToken()
		return node, err
	}
}

// parseAssignExpression parses an assignment whose target is the current
// identifier. Current is the target ID on entry.
func (par *Parser) parseAssignExpression() (ExpressionNode, error) {
	target := par.identifier(par.cur())

	if err := par.advanceOverSpaces(); err != nil {
		return nil, err
	}
	if par.cur().Kind != lexer.ASSIGN_OP {
		return nil, par.unexpected("assignment operator", par.cur())
	}
	return par.parseAssignTail(target)
}

// parseAssignTail finishes an assignment once the operator is the current
// token. The operator text is preserved verbatim.
func (par *Parser) parseAssignTail(target ExpressionNode) (ExpressionNode, error) {
	op := par.cur()

	if err := par.advanceOverSpaces(); err != nil {
		return nil, err
	}
	init, err := par.parseExpression()
	if err != nil {
		return nil, err
	}
	return &AssignExpressionNode{
		base:     par.at(op),
		Target:   target,
		Operator: op.Value,
		Init:     init,
	}, nil
}

// parseMemberExpression parses ID ('.' ID)+ into a left-nested chain.
// Current is the leading ID on entry and the first token after the chain
// on exit.
func (par *Parser) parseMemberExpression() (ExpressionNode, error) {
	head := par.cur()
	var object ExpressionNode = par.identifier(head)

	for {
		peek, err := par.Lex.Peek()
		if err != nil {
			return nil, err
		}
		if peek.Kind != lexer.DOT {
			break
		}
		if _, err := par.Lex.GetToken(); err != nil { // the dot
			return nil, err
		}
		prop, err := par.Lex.GetToken()
		if err != nil {
			return nil, err
		}
		if prop.Kind != lexer.ID {
			return nil, par.unexpected("identifier after '.'", prop)
		}
		object = &MemberExpressionNode{
			base:     par.at(head),
			Object:   object,
			Property: par.identifier(prop),
		}
	}

	// step past the final property
	if _, err := par.Lex.GetToken(); err != nil {
		return nil, err
	}
	return object, nil
}

// parseCallExpression parses (ID | MemberExpression) '(' ArgList ')'.
// Current is the first token of the callee on entry and the first token
// after the closing parenthesis on exit.
func (par *Parser) parseCallExpression() (ExpressionNode, error) {
	head := par.cur()
	node := &CallExpressionNode{
		base:      par.at(head),
		Arguments: make([]ExpressionNode, 0),
	}

	peek, err := par.Lex.Peek()
	if err != nil {
		return nil, err
	}
	if peek.Kind == lexer.DOT {
		callee, err := par.parseMemberExpression()
		if err != nil {
			return nil, err
		}
		node.Callee = callee
	} else {
		node.Callee = par.identifier(head)
		if _, err := par.Lex.GetToken(); err != nil {
			return nil, err
		}
	}

	if par.cur().Kind != lexer.LEFT_PAREN {
		return nil, par.unexpected("'('", par.cur())
	}
	if err := par.advanceOverLayout(); err != nil {
		return nil, err
	}
	if par.cur().Kind == lexer.RIGHT_PAREN {
		_, err := par.Lex.GetToken()
		return node, err
	}

	for {
		arg, err := par.parseExpression()
		if err != nil {
			return nil, err
		}
		node.Arguments = append(node.Arguments, arg)

		if err := par.skipLayout(); err != nil {
			return nil, err
		}
		switch par.cur().Kind {
		case lexer.COMMA:
			if err := par.advanceOverLayout(); err != nil {
				return nil, err
			}
		case lexer.RIGHT_PAREN:
			_, err := par.Lex.GetToken()
			return node, err
		default:
			return nil, par.unexpected("',' or ')'", par.cur())
		}
	}
}
