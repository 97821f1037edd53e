package parser

import "github.com/gengar-lang/gengar/lexer"

// parseBlockStatement parses a { ... } group. Current is the opening brace
// on entry; on exit the lexer has advanced past the closing brace.
//
// Keyword tokens dispatch to the statement parsers; identifier and literal
// tokens start an expression statement. Layout and stray semicolons fall
// through to the forward-progress guard.
func (par *Parser) parseBlockStatement() (*BlockStatementNode, error) {
	node := &BlockStatementNode{
		base: par.at(par.cur()),
		Body: make([]StatementNode, 0),
	}

	if _, err := par.Lex.GetToken(); err != nil {
		return nil, err
	}

	for {
		before := par.Lex.Position
		tok := par.cur()

		switch tok.Kind {
		case lexer.RIGHT_BRACKET:
			// step past the closing brace
			if _, err := par.Lex.GetToken(); err != nil {
				return nil, err
			}
			return node, nil

		case lexer.EOF_TYPE:
			return nil, par.unexpected("'}'", tok)

		case lexer.KEYWORDS:
			stmt, err := par.parseStatement()
			if err != nil {
				return nil, err
			}
			node.Body = append(node.Body, stmt)

		case lexer.ID, lexer.STR_LIT, lexer.NUM_LIT, lexer.BOOL_LIT:
			expr, err := par.parseExpression()
			if err != nil {
				return nil, err
			}
			node.Body = append(node.Body, &ExpressionStatementNode{
				base: par.at(tok),
				Expr: expr,
			})
		}

		if par.Lex.Position == before && par.cur().Kind != lexer.EOF_TYPE {
			if _, err := par.Lex.GetToken(); err != nil {
				return nil, err
			}
		}
	}
}

// parseStatement dispatches on the current keyword token. Only the five
// statement keywords are legal inside a block.
func (par *Parser) parseStatement() (StatementNode, error) {
	tok := par.cur()
	switch tok.Value {
	case lexer.KEY_CONST, lexer.KEY_MUT:
		return par.parseVarDeclare()
	case lexer.KEY_IF:
		return par.parseIfStatement()
	case lexer.KEY_WHILE:
		return par.parseWhileStatement()
	case lexer.KEY_RETURN:
		return par.parseReturnStatement()
	case lexer.KEY_DEBUGGER:
		node := &DebuggerStatementNode{base: par.at(tok)}
		if _, err := par.Lex.GetToken(); err != nil {
			return nil, err
		}
		return node, nil
	default:
		return nil, par.structural("unknown statement '"+tok.Value+"'", tok)
	}
}

// parseVarDeclare parses a declaration:
//
//	('const'|'mut') ID TypeAssert? AssignOperator Expression ';'?
//
// Current is the const/mut keyword on entry.
func (par *Parser) parseVarDeclare() (*VarDeclareNode, error) {
	tok := par.cur()
	node := &VarDeclareNode{
		base:    par.at(tok),
		Mutable: tok.Value == lexer.KEY_MUT,
	}

	if err := par.advanceOverSpaces(); err != nil {
		return nil, err
	}
	if par.cur().Kind != lexer.ID {
		return nil, par.unexpected("identifier", par.cur())
	}
	node.Name = par.identifier(par.cur())

	if err := par.advanceOverSpaces(); err != nil {
		return nil, err
	}
	if par.cur().Kind == lexer.TYPE_ASSERT {
		node.Type = par.typeAnnotation(par.cur())
		if err := par.advanceOverSpaces(); err != nil {
			return nil, err
		}
	}

	if par.cur().Kind != lexer.ASSIGN_OP {
		return nil, par.unexpected("assignment operator", par.cur())
	}
	if err := par.advanceOverSpaces(); err != nil {
		return nil, err
	}

	init, err := par.parseExpression()
	if err != nil {
		return nil, err
	}
	node.Init = init

	// optional terminating semicolon
	if err := par.skipSpaces(); err != nil {
		return nil, err
	}
	if par.cur().Kind == lexer.SEMICOLON {
		if _, err := par.Lex.GetToken(); err != nil {
			return nil, err
		}
	}
	return node, nil
}

// parseReturnStatement parses return Expression. The dispatcher has left
// Current on the return keyword; it is consumed here before the argument
// is parsed.
func (par *Parser) parseReturnStatement() (*ReturnStatementNode, error) {
	node := &ReturnStatementNode{base: par.at(par.cur())}

	if err := par.advanceOverSpaces(); err != nil {
		return nil, err
	}
	argument, err := par.parseExpression()
	if err != nil {
		return nil, err
	}
	node.Argument = argument
	return node, nil
}
