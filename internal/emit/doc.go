// Package emit renders the Go source of enum conversions.
//
// Output is unformatted text meant to be assembled into a file and passed
// through go/format by the caller. All generated code refers to the runtime
// package through the RuntimeName identifier.
package emit
