// Package gengar compiles Gengar source code to JavaScript with a source
// map. It ties the pipeline together:
//
//	source text -> lexer -> parser -> AST -> fragments -> (code, map)
//
// The subpackages can be used directly for finer control; Compile is the
// one-call entry point used by the CLI and the REPL.
package gengar

import (
	"strings"

	"github.com/gengar-lang/gengar/parser"
)

// Prelude is the runtime shim prepended to every compiled program.
const Prelude = parser.Prelude

// Result is the output of one compilation: the generated JavaScript and
// the serialized source-map v3 JSON.
type Result struct {
	Code      string
	SourceMap []byte
}

// Option is a configuration function for Compile.
type Option func(*config)

type config struct {
	filename  string
	output    string
	leftAssoc bool
}

// WithFilename sets the source file name recorded in source-map origins.
func WithFilename(name string) Option {
	return func(c *config) {
		c.filename = name
	}
}

// WithOutputName sets the generated file name recorded in the source map.
// By default it is derived from the source name.
func WithOutputName(name string) Option {
	return func(c *config) {
		c.output = name
	}
}

// WithLeftAssociative folds binary operator chains left instead of the
// default right-leaning shape.
func WithLeftAssociative() Option {
	return func(c *config) {
		c.leftAssoc = true
	}
}

// OutputName derives the generated file name from a source file name:
// hello.gengar becomes hello.js.
func OutputName(source string) string {
	return strings.TrimSuffix(source, ".gengar") + ".js"
}

// Compile parses src and emits the equivalent JavaScript together with
// its source map. Any lexer or parser error is fatal and returned as-is;
// there is no partial output.
func Compile(src string, options ...Option) (*Result, error) {
	cfg := config{filename: "input.gengar"}
	for _, opt := range options {
		opt(&cfg)
	}
	if cfg.output == "" {
		cfg.output = OutputName(cfg.filename)
	}

	popts := []parser.Option{parser.WithFilename(cfg.filename)}
	if cfg.leftAssoc {
		popts = append(popts, parser.WithLeftAssociative())
	}

	program, err := parser.Parse(src, popts...)
	if err != nil {
		return nil, err
	}
	frag, err := program.Generate()
	if err != nil {
		return nil, err
	}

	code, smap := frag.ToStringWithSourceMap(cfg.output)
	mapJSON, err := smap.JSON()
	if err != nil {
		return nil, err
	}
	return &Result{Code: code, SourceMap: mapJSON}, nil
}
