// microgen renders the bounded string types listed in a YAML config into Go
// source files, one per type.
//
//	microgen --config microstring.yaml --out .
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/rawbytedev/microstring/internal/gen"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "microgen: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	var configPath, outDir string
	var verbose bool

	flagSet := pflag.NewFlagSet("microgen", pflag.ContinueOnError)
	flagSet.StringVarP(&configPath, "config", "c", "microstring.yaml", "path to the type config")
	flagSet.StringVarP(&outDir, "out", "o", ".", "directory to write generated files to")
	flagSet.BoolVarP(&verbose, "verbose", "v", false, "log every file written")
	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}

	logger := newLogger(verbose)

	cfg, err := gen.LoadConfig(configPath)
	if err != nil {
		return err
	}
	logger.Debug().Str("config", configPath).Int("types", len(cfg.Types)).Msg("loaded config")

	paths, err := gen.Generate(cfg, outDir)
	for _, path := range paths {
		logger.Debug().Str("path", path).Msg("wrote")
	}
	if err != nil {
		return err
	}
	logger.Info().Int("files", len(paths)).Str("out", outDir).Msg("generated")
	return nil
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true}).
		Level(level).
		With().
		Timestamp().
		Str("component", "microgen").
		Logger()
}
