package gen

import (
	"bytes"
	"context"
	"fmt"
	"go/format"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"enumrepr/internal/analyze"
	"enumrepr/internal/common"
	"enumrepr/internal/config"
	"enumrepr/internal/diagnostic"
	"enumrepr/internal/emit"
	"enumrepr/internal/match"
	"enumrepr/internal/resolve"
)

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// Types are the enum type names to generate conversions for.
	Types []string
	// Output is the generated file name inside each package directory.
	Output string
	// RuntimePath is the import path of the runtime support package.
	RuntimePath string
	// Dir is the directory package patterns are resolved from.
	Dir string
	// Tags are build tags used when loading packages.
	Tags []string
	// Tests includes test files when loading packages.
	Tests bool
	// DebugUnformatted writes a sidecar file when formatting fails.
	DebugUnformatted bool
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Output:           config.DefaultOutput,
		RuntimePath:      config.DefaultRuntime,
		DebugUnformatted: true,
	}
}

// ConfigFrom converts a loaded config file into a GeneratorConfig.
func ConfigFrom(cfg *config.Config) GeneratorConfig {
	gc := DefaultGeneratorConfig()
	gc.Types = cfg.Types
	gc.Output = cfg.Output
	gc.RuntimePath = cfg.Runtime
	gc.Tags = cfg.Tags
	gc.Tests = cfg.Tests

	return gc
}

// Generator generates enum conversion files.
type Generator struct {
	config GeneratorConfig
	log    logrus.FieldLogger
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig, log logrus.FieldLogger) *Generator {
	return &Generator{config: config, log: log}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Package is the import path of the package the file belongs to.
	Package string
	// Dir is the package directory.
	Dir string
	// Filename is the name of the file (e.g., "enumrepr_gen.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
	// Diagnostics are the non-fatal findings for the file's enums.
	Diagnostics diagnostic.Diagnostics
}

// Path returns the full path of the file. An absolute Filename is used as is.
func (f GeneratedFile) Path() string {
	if filepath.IsAbs(f.Filename) {
		return f.Filename
	}

	return filepath.Join(f.Dir, f.Filename)
}

type fileData struct {
	PackageName string
	ImportAlias string
	RuntimePath string
	Body        string
}

var fileTemplate = template.Must(template.New("file").Parse(`// Code generated by enumrepr. DO NOT EDIT.

package {{.PackageName}}

import {{with .ImportAlias}}{{.}} {{end}}{{printf "%q" .RuntimePath}}
{{.Body}}`))

// Generate loads the packages matching patterns and generates one file for
// every package declaring at least one requested type. Every requested type
// must be declared by some package. Enums that cannot be read are collected
// from every package and reported together. Files are returned in package
// order.
func (g *Generator) Generate(ctx context.Context, patterns ...string) ([]GeneratedFile, error) {
	if len(g.config.Types) == 0 {
		return nil, fmt.Errorf("no enum types requested")
	}

	if len(patterns) == 0 {
		patterns = []string{"."}
	}

	analyzer := analyze.NewAnalyzer(g.config.Dir, g.config.Tags, g.config.Tests)

	pkgs, err := analyzer.LoadPackages(ctx, patterns...)
	if err != nil {
		return nil, err
	}

	if missing := missingTypes(pkgs, g.config.Types); len(missing) > 0 {
		return nil, fmt.Errorf("types not found in %v: %s", patterns, strings.Join(missing, ", "))
	}

	files := make([]*GeneratedFile, len(pkgs))

	eg, ctx := errgroup.WithContext(ctx)
	for i, pkg := range pkgs {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			file, err := g.generatePackage(pkg)
			if err != nil {
				return fmt.Errorf("generating %s: %w", pkg.Path, err)
			}

			files[i] = file
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	var diags diagnostic.Diagnostics
	for _, pkg := range pkgs {
		diags.Merge(pkg.Diagnostics)
	}

	if diags.HasErrors() {
		return nil, fmt.Errorf("reading enums: %w", diags.Error())
	}

	var res []GeneratedFile
	for _, f := range files {
		if f != nil {
			res = append(res, *f)
		}
	}

	return res, nil
}

// missingTypes lists the requested names no package declares, each with a
// suggestion when a similarly named integer type exists.
func missingTypes(pkgs []*analyze.Package, names []string) []string {
	var (
		missing    []string
		candidates []string
	)

	for _, name := range names {
		found := false
		for _, pkg := range pkgs {
			if pkg.Defines(name) {
				found = true
				break
			}
		}

		if found {
			continue
		}

		if candidates == nil {
			for _, pkg := range pkgs {
				candidates = append(candidates, pkg.IntegerTypes()...)
			}
		}

		if suggestion, ok := match.Suggest(name, candidates); ok {
			name = fmt.Sprintf("%s (did you mean %s?)", name, suggestion)
		}

		missing = append(missing, name)
	}

	return missing
}

// generatePackage renders the file of one package, or returns nil when the
// package declares none of the requested types.
func (g *Generator) generatePackage(pkg *analyze.Package) (*GeneratedFile, error) {
	var names []string
	seen := map[string]bool{}
	for _, name := range g.config.Types {
		if !seen[name] && pkg.Defines(name) {
			names = append(names, name)
		}
		seen[name] = true
	}

	if common.IsEmpty(names) {
		return nil, nil
	}

	log := g.log.WithField("package", pkg.Path)

	if err := pkg.ReadEnums(names); err != nil {
		// reported by Generate through pkg.Diagnostics
		log.WithError(err).Debug("Skipping package")
		return nil, nil
	}

	diags := &pkg.Diagnostics

	var body strings.Builder
	for _, decl := range pkg.Enums {
		desc := resolve.Resolve(decl)

		log.WithFields(logrus.Fields{
			"enum":       desc.Name,
			"repr":       desc.Repr,
			"variants":   len(decl.Variants),
			"directives": desc.Directives.Len(),
		}).Debug("Resolved enum")

		checkTargets(diags, desc, decl.Variants)

		body.WriteString(emit.Enum(desc, decl.Variants))
	}

	diags.Log(log)

	data := fileData{
		PackageName: pkg.Name,
		RuntimePath: g.config.RuntimePath,
		Body:        body.String(),
	}

	if common.PkgAlias(g.config.RuntimePath) != emit.RuntimeName {
		data.ImportAlias = emit.RuntimeName
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	file := &GeneratedFile{
		Package:     pkg.Path,
		Dir:         pkg.Dir,
		Filename:    g.config.Output,
		Diagnostics: *diags,
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		if g.config.DebugUnformatted {
			if debugErr := writeDebugUnformatted(pkg.Dir, file.Filename, buf.Bytes()); debugErr != nil {
				log.WithError(debugErr).Warn("Could not write unformatted output")
			}
		}

		return nil, fmt.Errorf("formatting code: %w", err)
	}

	file.Content = formatted

	log.WithField("enums", len(pkg.Enums)).Debug("Generated file")

	return file, nil
}
