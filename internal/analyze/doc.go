// Package analyze reads enum declarations out of Go packages.
//
// It uses golang.org/x/tools/go/packages with AST and go/types to find the
// requested named integer types, their constants in declaration order and
// the //namespace:payload directive comments attached to them.
//
// Key types:
//   - Analyzer: loads packages
//   - Package: a loaded package and the enums read from it
package analyze
