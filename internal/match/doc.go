// Package match finds the closest known name for a misspelled one. The CLI
// uses it to suggest a type name when a requested type does not exist.
package match
