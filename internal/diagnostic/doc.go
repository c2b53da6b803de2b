// Package diagnostic collects generation-time findings about enums that do
// not stop generation: duplicate discriminants, repeated panic_into targets
// and targets that provably cannot hold every constant.
package diagnostic
