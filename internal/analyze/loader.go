package analyze

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/tools/go/packages"

	"enumrepr/internal/attr"
	"enumrepr/internal/diagnostic"
	"enumrepr/internal/intkind"
	"enumrepr/internal/resolve"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo

// ErrNotEnum is returned for requested types that are not named integer
// types.
var ErrNotEnum = errors.New("enumrepr only works on integer-backed named types")

// Analyzer loads Go packages and reads enum declarations from them.
type Analyzer struct {
	// Dir is the directory patterns are resolved from; empty means the
	// current directory.
	Dir string
	// Tags are build tags applied while loading.
	Tags []string
	// Tests includes _test.go files of the loaded packages.
	Tests bool
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer(dir string, tags []string, tests bool) *Analyzer {
	return &Analyzer{Dir: dir, Tags: tags, Tests: tests}
}

// LoadPackages loads the packages matching patterns. External test packages
// and test binaries are dropped; with Tests set, the test variant of a
// package replaces the plain one.
func (a *Analyzer) LoadPackages(ctx context.Context, patterns ...string) ([]*Package, error) {
	cfg := &packages.Config{
		Context: ctx,
		Mode:    LoadMode,
		Dir:     a.Dir,
		Tests:   a.Tests,
	}

	if len(a.Tags) > 0 {
		cfg.BuildFlags = []string{"-tags=" + strings.Join(a.Tags, ",")}
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %w", errors.Join(errs...))
	}

	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages match %v", patterns)
	}

	var res []*Package
	index := map[string]int{}

	for _, pkg := range pkgs {
		if strings.HasSuffix(pkg.Name, "_test") || strings.HasSuffix(pkg.ID, ".test") {
			continue
		}

		p := &Package{
			Path: pkg.PkgPath,
			Name: pkg.Name,
			Dir:  packageDir(pkg),
			Fset: pkg.Fset,
			pkg:  pkg,
		}

		if i, ok := index[pkg.PkgPath]; ok {
			// the test variant ("path [path.test]") carries the test files too
			if pkg.ForTest != "" {
				res[i] = p
			}
			continue
		}

		index[pkg.PkgPath] = len(res)
		res = append(res, p)
	}

	return res, nil
}

func packageDir(pkg *packages.Package) string {
	if pkg.Dir != "" {
		return pkg.Dir
	}

	if len(pkg.GoFiles) > 0 {
		return filepath.Dir(pkg.GoFiles[0])
	}

	return ""
}

// ReadEnums reads the declarations of the named types into p.Enums. A type
// that cannot be read is skipped and recorded as an error diagnostic; the
// returned error joins all of them.
func (p *Package) ReadEnums(typeNames []string) error {
	p.Enums = p.Enums[:0]

	var errs []error
	for _, name := range typeNames {
		decl, err := p.readEnum(name)
		if err != nil {
			err = fmt.Errorf("%s.%s: %w", p.Path, name, err)
			p.Diagnostics.AddError(diagnostic.CodeInvalidEnum, err.Error(), name, "")
			errs = append(errs, err)

			continue
		}

		p.Enums = append(p.Enums, decl)
	}

	return errors.Join(errs...)
}

func (p *Package) readEnum(name string) (attr.EnumDecl, error) {
	obj := p.pkg.Types.Scope().Lookup(name)
	if obj == nil {
		return attr.EnumDecl{}, fmt.Errorf("type %s not found", name)
	}

	typeName, ok := obj.(*types.TypeName)
	if !ok || typeName.IsAlias() {
		return attr.EnumDecl{}, fmt.Errorf("%s is not a defined type: %w", name, ErrNotEnum)
	}

	named, ok := typeName.Type().(*types.Named)
	if !ok {
		return attr.EnumDecl{}, fmt.Errorf("%s is not a named type: %w", name, ErrNotEnum)
	}

	if !intkind.FromType(named).IsValid() {
		return attr.EnumDecl{}, fmt.Errorf("%s has underlying type %s: %w", name, named.Underlying(), ErrNotEnum)
	}

	decl := attr.EnumDecl{Name: name}

	spec, doc := p.findTypeSpec(typeName)

	repr := attr.Repr(named.Underlying().(*types.Basic).Name())
	if spec != nil {
		repr.Pos = spec.Type.Pos()
	}
	decl.Attributes = append(decl.Attributes, repr)

	directives, err := p.readDirectives(doc)
	if err != nil {
		return attr.EnumDecl{}, err
	}
	decl.Attributes = append(decl.Attributes, directives...)

	variants, err := p.readVariants(named)
	if err != nil {
		return attr.EnumDecl{}, err
	}
	decl.Variants = variants

	p.diagnoseVariants(decl)

	return decl, nil
}

// findTypeSpec returns the declaration of obj and the doc comment attached
// to it, falling back to the comment of an unparenthesised type declaration.
func (p *Package) findTypeSpec(obj *types.TypeName) (*ast.TypeSpec, *ast.CommentGroup) {
	for _, file := range p.pkg.Syntax {
		for _, d := range file.Decls {
			gen, ok := d.(*ast.GenDecl)
			if !ok || gen.Tok != token.TYPE {
				continue
			}

			for _, s := range gen.Specs {
				spec := s.(*ast.TypeSpec)
				if p.pkg.TypesInfo.Defs[spec.Name] != obj {
					continue
				}

				if spec.Doc != nil {
					return spec, spec.Doc
				}

				if !gen.Lparen.IsValid() {
					return spec, gen.Doc
				}

				return spec, nil
			}
		}
	}

	return nil, nil
}

// readDirectives turns //namespace:payload comment lines into "any"
// attributes. Directives of our own namespace must be well formed; foreign
// ones that do not tokenize are skipped.
func (p *Package) readDirectives(doc *ast.CommentGroup) ([]attr.Attribute, error) {
	if doc == nil {
		return nil, nil
	}

	var attrs []attr.Attribute

	for _, c := range doc.List {
		text, ok := strings.CutPrefix(c.Text, "//")
		if !ok {
			continue
		}

		namespace, payload, ok := strings.Cut(text, ":")
		if !ok || !token.IsIdentifier(namespace) {
			continue
		}

		payloadPos := c.Pos() + token.Pos(len("//"+namespace+":"))
		ours := namespace == resolve.Namespace

		tokens, err := attr.Tokenize(payload)
		if err != nil {
			if !ours {
				continue
			}

			var syntaxErr *attr.SyntaxError
			if errors.As(err, &syntaxErr) {
				pos := p.Fset.Position(payloadPos + token.Pos(syntaxErr.Offset))
				return nil, fmt.Errorf("%s: malformed directive: %s", pos, syntaxErr.Msg)
			}

			return nil, err
		}

		if ours {
			if err := attr.ValidateDirectives(tokens); err != nil {
				return nil, fmt.Errorf("%s: malformed directive: %w", p.Fset.Position(payloadPos), err)
			}
		}

		a := attr.Any(namespace, tokens...)
		a.Pos = c.Pos()
		attrs = append(attrs, a)
	}

	return attrs, nil
}

// readVariants collects the package-level constants of type named in source
// order.
func (p *Package) readVariants(named *types.Named) ([]attr.Variant, error) {
	scope := p.pkg.Types.Scope()

	var variants []attr.Variant

	for _, name := range scope.Names() {
		c, ok := scope.Lookup(name).(*types.Const)
		if !ok || !types.Identical(c.Type(), named) {
			continue
		}

		if c.Val().Kind() != constant.Int {
			return nil, fmt.Errorf("constant %s has no integer discriminant", name)
		}

		variants = append(variants, attr.Variant{
			Name:  name,
			Value: c.Val(),
			Pos:   c.Pos(),
		})
	}

	slices.SortFunc(variants, func(a, b attr.Variant) int {
		return int(a.Pos - b.Pos)
	})

	return variants, nil
}

// diagnoseVariants records findings that do not stop generation.
func (p *Package) diagnoseVariants(decl attr.EnumDecl) {
	if len(decl.Variants) == 0 {
		p.Diagnostics.AddInfo(diagnostic.CodeNoVariants,
			"no constants declared; every FromRepr call will fail", decl.Name, "")
		return
	}

	first := map[string]string{}
	for _, v := range decl.Variants {
		key := v.Value.ExactString()
		if prev, ok := first[key]; ok {
			p.Diagnostics.AddInfo(diagnostic.CodeDuplicateDiscriminant,
				fmt.Sprintf("%s repeats the discriminant %s of %s", v.Name, key, prev), decl.Name, v.Name)
			continue
		}

		first[key] = v.Name
	}
}

// Defines reports whether the package declares a type named name.
func (p *Package) Defines(name string) bool {
	_, ok := p.pkg.Types.Scope().Lookup(name).(*types.TypeName)
	return ok
}

// IntegerTypes returns the names of the integer-backed named types declared
// at package scope, sorted.
func (p *Package) IntegerTypes() []string {
	scope := p.pkg.Types.Scope()

	var names []string
	for _, name := range scope.Names() {
		obj, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || obj.IsAlias() {
			continue
		}

		if intkind.FromType(obj.Type()).IsValid() {
			names = append(names, name)
		}
	}

	return names
}
