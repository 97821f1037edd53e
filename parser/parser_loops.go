package parser

import "github.com/gengar-lang/gengar/lexer"

// parseWhileStatement parses 'while' '(' Expression ')' BlockStatement.
// Current is the while keyword on entry.
func (par *Parser) parseWhileStatement() (*WhileStatementNode, error) {
	node := &WhileStatementNode{base: par.at(par.cur())}

	if err := par.advanceOverSpaces(); err != nil {
		return nil, err
	}
	if par.cur().Kind != lexer.LEFT_PAREN {
		return nil, par.unexpected("'('", par.cur())
	}
	if err := par.advanceOverLayout(); err != nil {
		return nil, err
	}

	test, err := par.parseExpression()
	if err != nil {
		return nil, err
	}
	node.Test = test

	if err := par.skipLayout(); err != nil {
		return nil, err
	}
	if par.cur().Kind != lexer.RIGHT_PAREN {
		return nil, par.unexpected("')'", par.cur())
	}
	if err := par.advanceOverLayout(); err != nil {
		return nil, err
	}
	if par.cur().Kind != lexer.LEFT_BRACKET {
		return nil, par.unexpected("'{'", par.cur())
	}

	body, err := par.parseBlockStatement()
	if err != nil {
		return nil, err
	}
	node.Body = body
	return node, nil
}
