// Package enumrepr is the runtime support for code generated by the
// enumrepr command.
//
// Generated files register a static shape for every enum type: its
// representation type and the ordered list of its constants with their
// discriminants. The generated FromRepr functions look that shape up on every
// call and scan it linearly, so sparse and unsorted discriminant sets are
// handled without any special casing.
//
// Key entry points:
//   - Register / V: used by generated init functions
//   - ShapeOf / PeekEnum: the discriminant lookup
//   - Reinterpret / PanicInto: checked integer conversions
//   - UnknownValueError: the only recoverable error
package enumrepr
