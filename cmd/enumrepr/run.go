package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"enumrepr/internal/config"
	"enumrepr/internal/gen"
)

type options struct {
	types      []string
	output     string
	tags       []string
	tests      bool
	runtime    string
	configPath string
	logLevel   string
	color      string
	dryRun     bool
}

func run(cmd *cobra.Command, opts *options, patterns []string) error {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}

	opts.merge(cmd, cfg)

	log, err := newLogger(cmd, cfg.LogLevel)
	if err != nil {
		return err
	}

	generator := gen.NewGenerator(gen.ConfigFrom(cfg), log)

	files, err := generator.Generate(cmd.Context(), patterns...)
	if err != nil {
		return err
	}

	if opts.dryRun {
		for _, f := range files {
			fmt.Fprintln(cmd.OutOrStdout(), "===", f.Path(), "===")
			fmt.Fprint(cmd.OutOrStdout(), string(f.Content))
		}

		return nil
	}

	if err := gen.WriteFiles(files); err != nil {
		return err
	}

	for _, f := range files {
		log.WithField("file", f.Path()).Info("Wrote enum conversions")
	}

	return nil
}

// loadConfig loads the config file at path, or the one found in the working
// directory when path is empty. Without a file the defaults are used.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		found, err := config.Find(".")
		if err != nil {
			return nil, err
		}

		if found == "" {
			return config.Default(), nil
		}

		path = found
	}

	cfg, err := config.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return cfg, nil
}

// merge overrides cfg with every flag set on the command line. Empty
// strings keep the configured value.
func (o *options) merge(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()

	if flags.Changed("type") {
		cfg.Types = o.types
	}

	if flags.Changed("output") && o.output != "" {
		cfg.Output = o.output
	}

	if flags.Changed("tags") {
		cfg.Tags = o.tags
	}

	if flags.Changed("tests") {
		cfg.Tests = o.tests
	}

	if flags.Changed("runtime") && o.runtime != "" {
		cfg.Runtime = o.runtime
	}

	if flags.Changed("log-level") && o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
}

func newLogger(cmd *cobra.Command, level string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	log := logrus.New()
	log.SetOutput(cmd.ErrOrStderr())
	log.SetLevel(lvl)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		ForceColors:      !color.NoColor,
		DisableColors:    color.NoColor,
	})

	return log, nil
}
