// Package gen drives code generation: it loads packages, resolves every
// requested enum and assembles one generated file per package.
//
// Generation approach uses text/template + go/format; the per-enum source
// comes from package emit.
//
// Generated file layout:
//   - header and runtime import
//   - for each enum, in the requested order: the shape registration, the
//     FromRepr function, the Repr method and the panic_into methods
package gen
