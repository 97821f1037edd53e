/*
Package repl implements the interactive transpile loop for the Gengar
compiler. Each line the user enters is compiled and the emitted JavaScript
is printed immediately, which makes the REPL a quick way to see what the
compiler does with a construct.

Input that does not start a top-level form is wrapped in a synthetic
main() so that bare statements compile. The runtime prelude is stripped
from the output to keep the echo short.

The loop uses the readline library for line editing and history, and
colored output to separate results from errors.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/gengar-lang/gengar"
	"github.com/gengar-lang/gengar/lexer"
)

// Color definitions for REPL output:
// - blueColor: decorative lines and separators
// - yellowColor: emitted JavaScript
// - redColor: error messages
// - greenColor: banner and success messages
// - cyanColor: informational messages
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl represents one interactive session's configuration.
type Repl struct {
	Banner  string // Banner displayed at startup
	Version string // Version string of the compiler
	Line    string // Separator line for visual formatting
	Prompt  string // Command prompt shown to the user
}

// NewRepl creates a REPL with the default banner and prompt.
func NewRepl(version string) *Repl {
	return &Repl{
		Banner:  "gengar - a small compiler to JavaScript",
		Version: version,
		Line:    strings.Repeat("-", 48),
		Prompt:  "gg >>> ",
	}
}

// Run starts the interactive loop and blocks until the user exits with
// "exit", "quit" or Ctrl-D.
func (r *Repl) Run() error {
	rl, err := readline.New(r.Prompt)
	if err != nil {
		return err
	}
	defer rl.Close()

	greenColor.Println(r.Banner)
	cyanColor.Printf("version %s - type 'exit' to leave\n", r.Version)
	blueColor.Println(r.Line)

	for {
		input, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		input = strings.TrimSpace(input)
		switch input {
		case "":
			continue
		case "exit", "quit":
			cyanColor.Println("bye")
			return nil
		}

		output, err := Transpile(input)
		if err != nil {
			redColor.Println(err)
			continue
		}
		yellowColor.Println(output)
	}
}

// Transpile compiles one REPL input and returns the emitted JavaScript
// without the runtime prelude. Input that does not start with a top-level
// form is wrapped in a synthetic main().
func Transpile(input string) (string, error) {
	src := input
	if !startsTopLevel(input) {
		src = "main() { " + input + " }"
	}

	result, err := gengar.Compile(src, gengar.WithFilename("repl.gengar"))
	if err != nil {
		return "", err
	}
	return strings.TrimPrefix(result.Code, gengar.Prelude), nil
}

// startsTopLevel reports whether the input already begins with main or fn.
func startsTopLevel(input string) bool {
	return strings.HasPrefix(input, lexer.WORD_MAIN+"(") ||
		strings.HasPrefix(input, lexer.WORD_MAIN+" ") ||
		strings.HasPrefix(input, lexer.WORD_FN+" ")
}
