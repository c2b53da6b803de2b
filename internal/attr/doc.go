// Package attr holds the generation-time model of an enum declaration: its
// name, its ordered constants and the attributes attached to it.
//
// Attributes come in two kinds. A repr attribute names the representation
// type. An "any" attribute carries a raw token payload: a namespace
// identifier followed by a parenthesised group, as read from a
// //namespace:payload directive comment.
package attr
