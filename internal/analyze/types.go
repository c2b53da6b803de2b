package analyze

import (
	"go/token"

	"golang.org/x/tools/go/packages"

	"enumrepr/internal/attr"
	"enumrepr/internal/diagnostic"
)

// Package is a loaded package together with the enum declarations read from
// it.
type Package struct {
	Path  string // import path
	Name  string // package name
	Dir   string // directory holding the package sources
	Fset  *token.FileSet
	Enums []attr.EnumDecl

	Diagnostics diagnostic.Diagnostics

	pkg *packages.Package
}
