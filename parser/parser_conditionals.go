package parser

import "github.com/gengar-lang/gengar/lexer"

// parseIfStatement parses
//
//	'if' '(' Expression ')' BlockStatement
//	( 'else' ( IfStatement | BlockStatement ) )?
//
// Current is the if keyword on entry. After the consequent block the
// parser skips ahead to the next keyword; only when that keyword is else
// does the skip commit — otherwise the lexer is restored so the enclosing
// block sees every skipped token again.
func (par *Parser) parseIfStatement() (*IfStatementNode, error) {
	node := &IfStatementNode{base: par.at(par.cur())}

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

	consequent, err := par.parseBlockStatement()
	if err != nil {
		return nil, err
	}
	node.Consequent = consequent

	// Look ahead for an else branch.
	snap := par.Lex.Save()
	if _, err := par.Lex.SkipTo([]lexer.TokenKind{lexer.KEYWORDS}); err != nil {
		return nil, err
	}
	if !par.cur().IsKeyword(lexer.KEY_ELSE) {
		par.Lex.Restore(snap)
		return node, nil
	}

	if err := par.advanceOverLayout(); err != nil {
		return nil, err
	}
	switch {
	case par.cur().IsKeyword(lexer.KEY_IF):
		alternate, err := par.parseIfStatement()
		if err != nil {
			return nil, err
		}
		node.Alternate = alternate
	case par.cur().Kind == lexer.LEFT_BRACKET:
		alternate, err := par.parseBlockStatement()
		if err != nil {
			return nil, err
		}
		node.Alternate = alternate
	default:
		tok := par.cur()
		par.Lex.Restore(snap)
		return nil, par.structural("expected if or block after else", tok)
	}
	return node, nil
}
