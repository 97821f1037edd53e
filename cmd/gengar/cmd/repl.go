package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gengar-lang/gengar/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive transpile loop",
	Long: `Start an interactive session. Every line entered is compiled and the
emitted JavaScript is printed. Bare statements are wrapped in a synthetic
main() so they compile on their own.`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return repl.NewRepl(Version).Run()
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
