package parser

import "github.com/gengar-lang/gengar/lexer"

// parseMainDeclare parses the entry point:
//
//	main() TypeAssert? { ... }
//
// Current is the ID token "main" on entry and the first token after the
// closing brace on exit.
func (par *Parser) parseMainDeclare() (*MainDeclareNode, error) {
	node := &MainDeclareNode{base: par.at(par.cur())}

	if err := par.advanceOverLayout(); err != nil {
		return nil, err
	}
	if par.cur().Kind != lexer.LEFT_PAREN {
		return nil, par.unexpected("'('", par.cur())
	}
	if err := par.advanceOverLayout(); err != nil {
		return nil, err
	}
	if par.cur().Kind != lexer.RIGHT_PAREN {
		return nil, par.unexpected("')'", par.cur())
	}

	if err := par.advanceOverLayout(); err != nil {
		return nil, err
	}
	if par.cur().Kind == lexer.TYPE_ASSERT {
		node.ReturnType = par.typeAnnotation(par.cur())
		if err := par.advanceOverLayout(); err != nil {
			return nil, err
		}
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

// parseFunctionDeclare parses a named function:
//
//	fn name(param TypeAssert?, ...) { ... }
//
// Current is the ID token "fn" on entry and the first token after the
// closing brace on exit.
func (par *Parser) parseFunctionDeclare() (*FunctionDeclareNode, error) {
	node := &FunctionDeclareNode{base: par.at(par.cur())}

	if err := par.advanceOverLayout(); err != nil {
		return nil, err
	}
	if par.cur().Kind != lexer.ID {
		return nil, par.structural("missing function identifier", par.cur())
	}
	node.Name = par.identifier(par.cur())

	if err := par.advanceOverLayout(); err != nil {
		return nil, err
	}
	if par.cur().Kind != lexer.LEFT_PAREN {
		return nil, par.unexpected("'('", par.cur())
	}

	params, err := par.parseParams()
	if err != nil {
		return nil, err
	}
	node.Params = params

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

// parseParams parses the formal parameter list. Current is the opening
// parenthesis on entry and the closing parenthesis on exit.
func (par *Parser) parseParams() ([]Param, error) {
	params := make([]Param, 0)

	if err := par.advanceOverLayout(); err != nil {
		return nil, err
	}
	for par.cur().Kind != lexer.RIGHT_PAREN {
		if par.cur().Kind != lexer.ID {
			return nil, par.unexpected("parameter identifier", par.cur())
		}
		param := Param{Name: par.identifier(par.cur())}

		if err := par.advanceOverLayout(); err != nil {
			return nil, err
		}
		if par.cur().Kind == lexer.TYPE_ASSERT {
			param.Type = par.typeAnnotation(par.cur())
			if err := par.advanceOverLayout(); err != nil {
				return nil, err
			}
		}
		params = append(params, param)

		switch par.cur().Kind {
		case lexer.COMMA:
			if err := par.advanceOverLayout(); err != nil {
				return nil, err
			}
		case lexer.RIGHT_PAREN:
			// list done
		default:
			return nil, par.unexpected("',' or ')'", par.cur())
		}
	}
	return params, nil
}
