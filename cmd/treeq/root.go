package main

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/npillmayer/comptest/mount"
	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
)

// tracer traces with key 'treeq'.
func tracer() tracing.Trace {
	return tracing.Select("treeq")
}

// traceKeys are the tracing keys of the packages the CLI drives.
var traceKeys = []string{"treeq", "comptest.traverse", "comptest.mount", "comptest.tree"}

// Output formats.
const (
	formatYAML = "yaml"
	formatText = "text"
)

// settings are resolved from flags and environment before a command runs.
var settings struct {
	fixtures string
	format   string
	maxDepth int
}

var rootCmd = &cobra.Command{
	Use:   "treeq",
	Short: "Run selectors against component trees",
	Long: `treeq mounts component trees described in YAML fixtures and runs
selectors against them: finding nodes, listing their ancestors, rendering
their HTML and dumping the mounted instance tree.

Defaults for --trace and --format may be given by TREEQ_TRACE and
TREEQ_FORMAT, either in the environment or in a .env file.`,
	SilenceUsage:      true,
	PersistentPreRunE: configure,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		tracer().Errorf("%v", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("fixtures", "f", "testdata/**/*.yaml", "Glob pattern selecting fixture files")
	rootCmd.PersistentFlags().String("format", "", "Output format: yaml or text (default yaml, env TREEQ_FORMAT)")
	rootCmd.PersistentFlags().String("trace", "", "Trace level: error, info or debug (default error, env TREEQ_TRACE)")
	rootCmd.PersistentFlags().Int("max-depth", mount.DefaultMaxDepth, "Maximum depth of mounted trees")
}

// configure resolves settings. Flags take precedence over the environment,
// which takes precedence over a .env file in the working directory.
func configure(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load() // a missing .env file is fine
	flags := cmd.Flags()
	settings.fixtures, _ = flags.GetString("fixtures")
	settings.maxDepth, _ = flags.GetInt("max-depth")
	format, _ := flags.GetString("format")
	if format == "" {
		format = os.Getenv("TREEQ_FORMAT")
	}
	switch strings.ToLower(format) {
	case "", formatYAML:
		settings.format = formatYAML
	case formatText:
		settings.format = formatText
	default:
		return fmt.Errorf("unsupported format: %s (use yaml or text)", format)
	}
	trace, _ := flags.GetString("trace")
	if trace == "" {
		trace = os.Getenv("TREEQ_TRACE")
	}
	return setTraceLevel(trace)
}

// setTraceLevel sets the level for all tracers the CLI drives.
func setTraceLevel(s string) error {
	level := tracing.LevelError
	switch strings.ToLower(s) {
	case "", "error":
	case "info":
		level = tracing.LevelInfo
	case "debug":
		level = tracing.LevelDebug
	default:
		return fmt.Errorf("unsupported trace level: %s (use error, info or debug)", s)
	}
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
	return nil
}
