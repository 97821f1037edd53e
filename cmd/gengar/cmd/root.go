package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Version information (set by build flags)
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "gengar",
	Short: "Gengar to JavaScript compiler",
	Long: `gengar compiles Gengar source files to JavaScript.

The compiler reads a .gengar file and writes two sibling files: the
emitted JavaScript program and a standard source-map v3 file mapping the
output back to the source. Subcommands expose the intermediate stages:
the token stream (lex) and the syntax tree (parse).`,
	Version: Version,
}

// Execute runs the root command. On error it prints the message in red
// and reports failure to the caller.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, err)
		return err
	}
	return nil
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
`, GitCommit))

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose stage logging")
}

// logger builds the CLI's console logger. At the default level only
// warnings surface; --verbose enables per-stage debug events.
func logger() zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}
