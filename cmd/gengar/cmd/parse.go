package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gengar-lang/gengar/file"
	"github.com/gengar-lang/gengar/parser"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Dump the syntax tree of a Gengar file",
	Long: `Parse a Gengar file and print the syntax tree as an indented list,
one node per line with its position.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, args []string) error {
	src, err := file.ReadSource(args[0])
	if err != nil {
		return err
	}

	program, err := parser.Parse(src, parser.WithFilename(filepath.Base(args[0])))
	if err != nil {
		return err
	}

	visitor := &parser.PrintVisitor{}
	program.Accept(visitor)
	fmt.Print(visitor.String())
	return nil
}
