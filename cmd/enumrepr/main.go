// Package main provides the CLI entrypoint for enumrepr.
//
// enumrepr generates conversions between integer-backed enum types and their
// representation:
//   - NameFromRepr, which fails with enumrepr.UnknownValueError for values
//     matching no constant
//   - a Repr method
//   - checked conversions requested with //enumrepr:panic_into(T, ...)
//
// It is meant to be run from go:generate:
//
//	//go:generate go run enumrepr/cmd/enumrepr --type=Color
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// version is set at build time with -ldflags.
var version = "dev"

var errColor = color.New(color.FgRed, color.Bold)

func main() {
	cmd := newRootCmd()

	if err := cmd.Execute(); err != nil {
		errColor.Fprintln(os.Stderr, "enumrepr:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "enumrepr [flags] [packages]",
		Short: "Generate conversions between enums and their integer representation",
		Long: `enumrepr reads integer-backed enum types and generates NameFromRepr,
Repr and the checked conversions requested with //enumrepr:panic_into(...).

Packages default to the current directory. Settings may also come from an
enumrepr.yaml or enumrepr.toml file; flags take precedence.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := applyColor(opts.color); err != nil {
				return err
			}

			return run(cmd, opts, args)
		},
	}

	flags := cmd.Flags()
	flags.StringSliceVarP(&opts.types, "type", "t", nil, "comma-separated list of enum type names")
	flags.StringVarP(&opts.output, "output", "o", "", "generated file name inside each package directory")
	flags.StringSliceVar(&opts.tags, "tags", nil, "comma-separated list of build tags")
	flags.BoolVar(&opts.tests, "tests", false, "include test files when loading packages")
	flags.StringVar(&opts.runtime, "runtime", "", "import path of the runtime package")
	flags.StringVarP(&opts.configPath, "config", "c", "", "config file (default: enumrepr.yaml, .yml or .toml in the working directory)")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level (trace|debug|info|warn|error)")
	flags.StringVar(&opts.color, "color", "auto", "colorize output (auto|always|never)")
	flags.BoolVar(&opts.dryRun, "dry-run", false, "print generated files to stdout instead of writing them")

	return cmd
}

func applyColor(mode string) error {
	switch mode {
	case "auto":
		color.NoColor = !isTerminal(os.Stderr)
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	default:
		return fmt.Errorf("invalid --color value %q (want auto, always or never)", mode)
	}

	return nil
}

// isTerminal reports whether f is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
