package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gengar-lang/gengar/file"
	"github.com/gengar-lang/gengar/lexer"
)

var lexAll bool

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Dump the token stream of a Gengar file",
	Long: `Tokenize a Gengar file and print one token per line with its kind,
value and position. Whitespace and newline tokens are hidden unless
--all is given.`,
	Args: cobra.ExactArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().BoolVar(&lexAll, "all", false, "include whitespace and newline tokens")
}

func runLex(_ *cobra.Command, args []string) error {
	src, err := file.ReadSource(args[0])
	if err != nil {
		return err
	}

	lex := lexer.NewLexer(src)
	for {
		tok, err := lex.GetToken()
		if err != nil {
			return err
		}
		if tok.Kind == lexer.EOF_TYPE {
			return nil
		}
		if !lexAll && (tok.Kind == lexer.WHITESPACE || tok.Kind == lexer.CRLF) {
			continue
		}
		fmt.Printf("%4d:%-3d %-16s %q\n", tok.Line, tok.Col, tok.Kind, tok.Value)
	}
}
