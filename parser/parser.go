/*
Package parser implements a recursive-descent parser for the Gengar
language.

The parser consumes tokens from the lexer with single-token lookahead
(Peek) plus limited backtracking (Save/Restore) and produces a typed AST.
The interesting parts are the disambiguation of identifier starts — a bare
identifier, a call, a member chain, a member call, or an assignment all
begin with an ID token — and the left-recursion elimination for binary and
ternary expressions, which collects operator tails and folds them into a
tree after the leading atom is parsed.

All parse errors are fatal: the first mismatch surfaces as an
UnexpectedTokenError or StructuralError and parsing stops.
*/
package parser

import "github.com/gengar-lang/gengar/lexer"

// layoutKinds are the token kinds the grammar treats as layout between
// productions.
var layoutKinds = []lexer.TokenKind{lexer.WHITESPACE, lexer.CRLF}

// spaceKinds is inline whitespace only. Expression tails skip these but
// not newlines, so a newline ends an expression.
var spaceKinds = []lexer.TokenKind{lexer.WHITESPACE}

// Parser holds the parsing state: the lexer it owns and the configuration
// applied through options. A Parser is used once; create a new one per
// compilation unit.
type Parser struct {
	Lex  *lexer.Lexer // The lexer this parser drives
	File string       // Source file name recorded on every node

	// leftAssoc switches the binary-tail fold to left-associative trees.
	// The default is the right-leaning shape of the reference parser.
	leftAssoc bool
}

// Option is a configuration function for a Parser.
type Option func(*Parser)

// WithFilename sets the source file name recorded on tokens' AST nodes and
// in source-map origins.
func WithFilename(name string) Option {
	return func(par *Parser) {
		par.File = name
	}
}

// WithLeftAssociative folds binary operator chains into left-leaning
// trees (standard associativity) instead of the reference right-leaning
// shape.
func WithLeftAssociative() Option {
	return func(par *Parser) {
		par.leftAssoc = true
	}
}

// NewParser creates a Parser for the given source code.
func NewParser(src string, options ...Option) *Parser {
	par := &Parser{
		Lex: lexer.NewLexer(src),
	}
	for _, opt := range options {
		opt(par)
	}
	return par
}

// Parse is a shorthand to create a Parser and parse the input in one call.
func Parse(src string, options ...Option) (*ProgramNode, error) {
	return NewParser(src, options...).Parse()
}

// Parse consumes the whole input and returns the Program root. Top-level
// forms are main() and fn declarations, recognized by identifier value;
// every other top-level token (layout in well-formed programs) is skipped.
func (par *Parser) Parse() (*ProgramNode, error) {
	root := &ProgramNode{
		File: par.File,
		Body: make([]StatementNode, 0),
	}

	// Prime the lexer so Current is valid.
	if _, err := par.Lex.GetToken(); err != nil {
		return nil, err
	}

	for par.cur().Kind != lexer.EOF_TYPE {
		before := par.Lex.Position
		tok := par.cur()

		switch {
		case tok.Kind == lexer.ID && tok.Value == lexer.WORD_MAIN:
			stmt, err := par.parseMainDeclare()
			if err != nil {
				return nil, err
			}
			root.Body = append(root.Body, stmt)
		case tok.Kind == lexer.ID && tok.Value == lexer.WORD_FN:
			stmt, err := par.parseFunctionDeclare()
			if err != nil {
				return nil, err
			}
			root.Body = append(root.Body, stmt)
		}

		// Forward-progress guard: an iteration that consumed nothing
		// forces one token so the loop cannot spin.
		if par.Lex.Position == before && par.cur().Kind != lexer.EOF_TYPE {
			if _, err := par.Lex.GetToken(); err != nil {
				return nil, err
			}
		}
	}

	return root, nil
}

// cur returns the lexer's current token.
func (par *Parser) cur() lexer.Token {
	return par.Lex.Current
}

// advanceOverLayout fetches the next token and skips any layout run,
// leaving Current at the first meaningful token.
func (par *Parser) advanceOverLayout() error {
	_, err := par.Lex.SkipOf(layoutKinds, false)
	return err
}

// advanceOverSpaces fetches the next token and skips inline whitespace
// only; a newline stays put.
func (par *Parser) advanceOverSpaces() error {
	_, err := par.Lex.SkipOf(spaceKinds, false)
	return err
}

// skipSpaces skips inline whitespace starting from the current token.
func (par *Parser) skipSpaces() error {
	_, err := par.Lex.SkipOf(spaceKinds, true)
	return err
}

// skipLayout skips whitespace and newlines starting from the current token.
func (par *Parser) skipLayout() error {
	_, err := par.Lex.SkipOf(layoutKinds, true)
	return err
}

// unexpected builds an UnexpectedTokenError for the given token.
func (par *Parser) unexpected(expected string, tok lexer.Token) error {
	actual := string(tok.Kind)
	if tok.Value != "" {
		actual += " '" + tok.Value + "'"
	}
	return &UnexpectedTokenError{
		Expected: expected,
		Actual:   actual,
		Line:     tok.Line,
		Col:      tok.Col,
	}
}

// structural builds a StructuralError at the given token.
func (par *Parser) structural(message string, tok lexer.Token) error {
	return &StructuralError{
		Message: message,
		Line:    tok.Line,
		Col:     tok.Col,
	}
}

// node base constructor: couples a token with the parser's file name.
func (par *Parser) at(tok lexer.Token) base {
	return base{Token: tok, File: par.File}
}

// identifier builds an IdentifierNode for the given ID token.
func (par *Parser) identifier(tok lexer.Token) *IdentifierNode {
	return &IdentifierNode{base: par.at(tok)}
}

// typeAnnotation builds a TypeAnnotationNode from a TypeAssert token,
// whose value is the colon, optional spaces and the type name.
func (par *Parser) typeAnnotation(tok lexer.Token) *TypeAnnotationNode {
	name := tok.Value[1:]
	for len(name) > 0 && (name[0] == ' ' || name[0] == '\t') {
		name = name[1:]
	}
	return &TypeAnnotationNode{base: par.at(tok), Name: name}
}
