// Package resolve turns a parsed enum declaration into the descriptor the
// emitter works from: the enum name, its representation type and the
// generator directives configured for it.
//
// Resolution is a pure function of the declaration. Malformed directive
// payloads are not reported as errors here: the reader validates directive
// syntax before a declaration ever reaches Resolve, so the checks below are
// assertions and panic.
package resolve
