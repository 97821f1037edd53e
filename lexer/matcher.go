package lexer

import "regexp"

// matcher pairs a token kind with the anchored pattern that recognizes it.
// The lexer tries matchers in table order and takes the first pattern that
// matches at the start of the remaining input, so ordering is significant:
//
//   - keywords and boolean literals come before identifiers, otherwise the
//     identifier pattern would swallow them
//   - number literals come before identifiers for the same reason
//   - TypeAssert comes before the generic Marks colon
//   - compound assignment operators come before binary operators, so that
//     "+=" is one token rather than "+" followed by "="
//   - the dedicated single-character kinds (dot, comma, semicolon) come
//     before Marks, which otherwise also matches them
type matcher struct {
	kind TokenKind
	re   *regexp.Regexp
}

// matchers is the ordered matcher table for the Gengar lexical grammar.
// Every pattern is anchored at position 0 of the remaining input.
var matchers = []matcher{
	{WHITESPACE, regexp.MustCompile(`^[ \t]+`)},
	{CRLF, regexp.MustCompile(`^(\r?\n)+`)},
	{KEYWORDS, regexp.MustCompile(`^(if|else|while|return|debugger|const|mut)\b`)},
	{BOOL_LIT, regexp.MustCompile(`^(true|false)\b`)},
	{NUM_LIT, regexp.MustCompile(`^[0-9]+`)},
	{ID, regexp.MustCompile(`^\w+`)},
	{STR_LIT, regexp.MustCompile(`^"[^"]*"`)},
	{TYPE_ASSERT, regexp.MustCompile(`^:[ \t]*(string|number|boolean)\b`)},
	{ASSIGN_OP, regexp.MustCompile(`^[+\-*/]?=`)},
	{UNARY_OP, regexp.MustCompile(`^(!+|~)`)},
	{BINARY_OP, regexp.MustCompile(`^[+\-*/]`)},
	{LEFT_PAREN, regexp.MustCompile(`^\(`)},
	{RIGHT_PAREN, regexp.MustCompile(`^\)`)},
	{LEFT_BRACKET, regexp.MustCompile(`^\{`)},
	{RIGHT_BRACKET, regexp.MustCompile(`^\}`)},
	{SEMICOLON, regexp.MustCompile(`^;`)},
	{COMMA, regexp.MustCompile(`^,`)},
	{DOT, regexp.MustCompile(`^\.`)},
	{MARKS, regexp.MustCompile(`^[?:.,;]`)},
}

// match runs the matcher table against the given remaining input and
// returns the winning kind and matched text. ok is false when no pattern
// matches, which the caller reports as a LexError.
func match(remaining string) (kind TokenKind, text string, ok bool) {
	for _, m := range matchers {
		if loc := m.re.FindStringIndex(remaining); loc != nil {
			return m.kind, remaining[:loc[1]], true
		}
	}
	return "", "", false
}
