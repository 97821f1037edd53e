// Package lexer implements lexical analysis for the Gengar language.
//
// The lexer is driven by an ordered matcher table (see matcher.go): each
// call to GetToken tries every pattern in order against the remaining input
// and produces the first match as a token. Whitespace and newline runs are
// emitted as ordinary tokens, not skipped; the parser filters them where
// the grammar allows layout.
//
// The lexer supports single-token lookahead through Peek and backtracking
// through Save/BackTracking, which the parser uses to disambiguate
// identifier, call, member and assignment starts.
package lexer

import "errors"

// Lexer performs lexical analysis of Gengar source code. It maintains the
// current position in the source, including line and column numbers for
// error reporting and source-map generation.
//
// Fields:
//   - Src: the complete source code
//   - Position: characters consumed since the start of the input
//   - SrcLength: total length of the source string
//   - Line: current line number (1-indexed)
//   - Column: current column number (0-indexed)
//   - Current: the last token returned by GetToken
type Lexer struct {
	Src       string // Entire source code in plain text form
	Position  int    // Current position of the pointer in the source code
	SrcLength int    // Length of the source string
	Line      int    // Line number in source (1-indexed)
	Column    int    // Column number in source (0-indexed)
	Current   Token  // Last token returned by GetToken

	// Single-slot savepoint for BackTracking. A second Save overwrites it.
	savepoint *Snapshot
}

// Snapshot is an immutable copy of the lexer position state. Restoring a
// snapshot returns the lexer to a byte-identical prior state.
type Snapshot struct {
	Position int
	Line     int
	Column   int
	Current  Token
}

// NewLexer creates and initializes a new Lexer for the given source code.
// Position tracking starts at line 1, column 0.
func NewLexer(src string) *Lexer {
	return &Lexer{
		Src:       src,
		Position:  0,
		SrcLength: len(src),
		Line:      1,
		Column:    0,
	}
}

// remaining returns the unconsumed tail of the source.
func (lex *Lexer) remaining() string {
	return lex.Src[lex.Position:]
}

// GetToken retrieves the next token from the source and advances past it.
// At the end of input it returns an EOF token with an empty value, and
// keeps returning it on every subsequent call.
//
// Whitespace and newline runs are returned as WHITESPACE and CRLF tokens.
// If no pattern of the matcher table anchors at the current position,
// GetToken returns a *LexError and does not advance.
func (lex *Lexer) GetToken() (Token, error) {
	if lex.Position >= lex.SrcLength {
		lex.Current = NewTokenAt(EOF_TYPE, "", lex.Line, lex.Column)
		return lex.Current, nil
	}

	kind, text, ok := match(lex.remaining())
	if !ok {
		return Token{}, newLexError(lex)
	}

	token := NewTokenAt(kind, text, lex.Line, lex.Column)

	// Advance position tracking by the matched length. A CRLF match is the
	// only place a newline can appear, so line/column bookkeeping lives
	// here: the line count grows by the number of newlines matched and the
	// column resets to 0.
	lex.Position += len(text)
	if kind == CRLF {
		for _, ch := range text {
			if ch == '\n' {
				lex.Line++
			}
		}
		lex.Column = 0
	} else {
		lex.Column += len(text)
	}

	lex.Current = token
	return token, nil
}

// Peek returns the next token without advancing observable state. It is
// implemented as snapshot, GetToken, restore; Current is left untouched.
func (lex *Lexer) Peek() (Token, error) {
	snap := lex.snapshotNow()
	token, err := lex.GetToken()
	lex.Restore(snap)
	return token, err
}

// Expect reports whether the next token has the given kind. With move set,
// the token is consumed regardless of whether it matched; without it the
// check is a pure Peek. Lexing failures report as false.
func (lex *Lexer) Expect(kind TokenKind, move bool) bool {
	var token Token
	var err error
	if move {
		token, err = lex.GetToken()
	} else {
		token, err = lex.Peek()
	}
	return err == nil && token.Kind == kind
}

// Skip advances past n tokens.
func (lex *Lexer) Skip(n int) error {
	for i := 0; i < n; i++ {
		if _, err := lex.GetToken(); err != nil {
			return err
		}
	}
	return nil
}

// SkipOf collects tokens while their kind is in kinds. With fromCurrent
// set, matching starts at Current; otherwise a fresh token is fetched
// first. On return, Current is the first token whose kind is not in kinds.
func (lex *Lexer) SkipOf(kinds []TokenKind, fromCurrent bool) ([]Token, error) {
	collected := make([]Token, 0)
	if !fromCurrent {
		if _, err := lex.GetToken(); err != nil {
			return collected, err
		}
	}
	for lex.Current.Kind != EOF_TYPE && kindIn(lex.Current.Kind, kinds) {
		collected = append(collected, lex.Current)
		if _, err := lex.GetToken(); err != nil {
			return collected, err
		}
	}
	return collected, nil
}

// SkipTo is the symmetric operation: it advances while the current token's
// kind is not in kinds, collecting the skipped tokens. It terminates on the
// first matching token or at EOF.
func (lex *Lexer) SkipTo(kinds []TokenKind) ([]Token, error) {
	skipped := make([]Token, 0)
	for lex.Current.Kind != EOF_TYPE && !kindIn(lex.Current.Kind, kinds) {
		skipped = append(skipped, lex.Current)
		if _, err := lex.GetToken(); err != nil {
			return skipped, err
		}
	}
	return skipped, nil
}

// SkipToValueOf advances until the current token matches both kind and
// value, or EOF is reached. The skipped tokens are returned.
func (lex *Lexer) SkipToValueOf(kind TokenKind, value string) ([]Token, error) {
	skipped := make([]Token, 0)
	for lex.Current.Kind != EOF_TYPE && !lex.Current.Is(kind, value) {
		skipped = append(skipped, lex.Current)
		if _, err := lex.GetToken(); err != nil {
			return skipped, err
		}
	}
	return skipped, nil
}

// snapshotNow captures the current position state.
func (lex *Lexer) snapshotNow() Snapshot {
	return Snapshot{
		Position: lex.Position,
		Line:     lex.Line,
		Column:   lex.Column,
		Current:  lex.Current,
	}
}

// Save captures the lexer state and returns it as an immutable Snapshot.
// The snapshot is also stored in the lexer's single savepoint slot for
// BackTracking; a second Save overwrites the slot.
func (lex *Lexer) Save() Snapshot {
	snap := lex.snapshotNow()
	lex.savepoint = &snap
	return snap
}

// Restore returns the lexer to the state captured in the given snapshot.
func (lex *Lexer) Restore(snap Snapshot) {
	lex.Position = snap.Position
	lex.Line = snap.Line
	lex.Column = snap.Column
	lex.Current = snap.Current
}

// BackTracking restores the lexer to the state captured by the most recent
// Save and consumes the savepoint. Calling it without a prior Save is an
// error.
func (lex *Lexer) BackTracking() error {
	if lex.savepoint == nil {
		return errors.New("LEXER ERROR: BackTracking without a prior Save")
	}
	lex.Restore(*lex.savepoint)
	lex.savepoint = nil
	return nil
}

// kindIn reports whether kind appears in kinds.
func kindIn(kind TokenKind, kinds []TokenKind) bool {
	for _, k := range kinds {
		if k == kind {
			return true
		}
	}
	return false
}
