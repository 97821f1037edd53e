// Package sourcemap implements the fragment tree produced by code
// generation and the source-map v3 container derived from it.
//
// A Node is an ordered sequence of chunks, each either literal text or a
// child Node, carrying the source origin (line, column, file) it was
// generated from. Concatenating the tree yields the output code;
// ToStringWithSourceMap additionally yields a source map whose mappings
// point every emitted chunk back at its origin.
package sourcemap

import (
	"fmt"
	"strings"
)

// Node is one fragment of generated code. Chunks are either string or
// *Node; the origin applies to the string chunks held directly by this
// node. A node with Line 0 carries no origin (used for synthetic output
// such as the runtime prelude).
type Node struct {
	Line   int    // Source line of origin (1-indexed); 0 means no origin
	Col    int    // Source column of origin (0-indexed)
	File   string // Source file of origin
	chunks []any  // string | *Node, in emission order
}

// NewNode creates a fragment with the given origin and initial chunks.
// Pass line 0 for a fragment with no origin.
func NewNode(line, col int, file string, chunks ...any) *Node {
	n := &Node{Line: line, Col: col, File: file}
	n.Add(chunks...)
	return n
}

// Plain creates a fragment with no origin, used for synthetic text that
// has no counterpart in the source.
func Plain(chunks ...any) *Node {
	return NewNode(0, 0, "", chunks...)
}

// Add appends chunks to the fragment in order and returns the fragment for
// chaining. Chunks must be string or *Node.
func (n *Node) Add(chunks ...any) *Node {
	for _, chunk := range chunks {
		switch chunk.(type) {
		case string, *Node:
			n.chunks = append(n.chunks, chunk)
		default:
			panic(fmt.Sprintf("sourcemap: unsupported chunk type %T", chunk))
		}
	}
	return n
}

// hasOrigin reports whether the node carries a source origin.
func (n *Node) hasOrigin() bool {
	return n.Line > 0
}

// String concatenates the fragment tree into the generated code text.
func (n *Node) String() string {
	var sb strings.Builder
	n.walk(func(text string, _ *Node) {
		sb.WriteString(text)
	})
	return sb.String()
}

// walk visits every string chunk in emission order together with the node
// whose origin applies to it (nil when no enclosing node has one). A child
// node without its own origin inherits the nearest enclosing origin.
func (n *Node) walk(visit func(text string, origin *Node)) {
	n.walkFrom(nil, visit)
}

func (n *Node) walkFrom(inherited *Node, visit func(text string, origin *Node)) {
	origin := inherited
	if n.hasOrigin() {
		origin = n
	}
	for _, chunk := range n.chunks {
		switch c := chunk.(type) {
		case string:
			visit(c, origin)
		case *Node:
			c.walkFrom(origin, visit)
		}
	}
}

// ToStringWithSourceMap concatenates the fragment tree and builds the
// source map for it. file names the generated file recorded in the map.
func (n *Node) ToStringWithSourceMap(file string) (string, *SourceMap) {
	var sb strings.Builder
	gen := newGenerator(file)

	n.walk(func(text string, origin *Node) {
		// Multi-line chunks need one mapping per generated line, since
		// mappings cannot span newlines.
		for len(text) > 0 {
			nl := strings.IndexByte(text, '\n')
			var piece string
			if nl < 0 {
				piece, text = text, ""
			} else {
				piece, text = text[:nl+1], text[nl+1:]
			}
			if origin != nil && piece != "\n" {
				gen.addMapping(origin.File, origin.Line-1, origin.Col)
			}
			gen.advance(piece)
			sb.WriteString(piece)
		}
	})

	return sb.String(), gen.finish()
}
