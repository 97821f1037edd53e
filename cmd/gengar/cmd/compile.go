package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/gengar-lang/gengar"
	"github.com/gengar-lang/gengar/file"
)

var (
	watchMode bool
	leftAssoc bool
)

var compileCmd = &cobra.Command{
	Use:   "compile [file]",
	Short: "Compile a Gengar file to JavaScript with a source map",
	Long: `Compile a Gengar program to JavaScript.

The output is written next to the input: hello.gengar produces hello.js
and hello.js.map, and the emitted code ends with a sourceMappingURL
trailer pointing at the map.

Examples:
  # Compile a program
  gengar compile hello.gengar

  # Recompile on every change
  gengar compile hello.gengar --watch

  # Fold binary operator chains left-associatively
  gengar compile hello.gengar --left-assoc`,
	Args: cobra.ExactArgs(1),
	RunE: runCompile,
}

func init() {
	rootCmd.AddCommand(compileCmd)

	compileCmd.Flags().BoolVarP(&watchMode, "watch", "w", false, "recompile on source change")
	compileCmd.Flags().BoolVar(&leftAssoc, "left-assoc", false, "fold binary operator chains left-associatively")
}

func runCompile(_ *cobra.Command, args []string) error {
	srcPath := args[0]
	if err := compileOnce(srcPath); err != nil {
		if !watchMode {
			return err
		}
		log := logger()
		log.Error().Err(err).Msg("compile failed")
	}
	if watchMode {
		return watch(srcPath)
	}
	return nil
}

// compileOnce runs the whole pipeline for one source file and writes the
// two output files.
func compileOnce(srcPath string) error {
	log := logger()
	start := time.Now()

	src, err := file.ReadSource(srcPath)
	if err != nil {
		return err
	}
	log.Debug().Int("bytes", len(src)).Str("file", srcPath).Msg("source read")

	opts := []gengar.Option{gengar.WithFilename(filepath.Base(srcPath))}
	if leftAssoc {
		opts = append(opts, gengar.WithLeftAssociative())
	}
	result, err := gengar.Compile(src, opts...)
	if err != nil {
		return err
	}
	log.Debug().
		Int("code_bytes", len(result.Code)).
		Int("map_bytes", len(result.SourceMap)).
		Dur("elapsed", time.Since(start)).
		Msg("compiled")

	jsPath, mapPath, err := file.WriteCompiled(srcPath, result.Code, result.SourceMap)
	if err != nil {
		return err
	}
	fmt.Printf("%s -> %s, %s\n", srcPath, jsPath, mapPath)
	return nil
}

// watch recompiles the source file on every write until interrupted.
func watch(srcPath string) error {
	log := logger()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Watch the directory: editors often replace the file, which would
	// drop a watch placed on the file itself.
	dir := filepath.Dir(srcPath)
	if err := watcher.Add(dir); err != nil {
		return err
	}
	target, err := filepath.Abs(srcPath)
	if err != nil {
		return err
	}
	log.Info().Str("file", srcPath).Msg("watching")

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			name, err := filepath.Abs(event.Name)
			if err != nil || name != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if err := compileOnce(srcPath); err != nil {
				log.Error().Err(err).Msg("compile failed")
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Error().Err(err).Msg("watch error")
		}
	}
}
