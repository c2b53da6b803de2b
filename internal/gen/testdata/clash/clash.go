// Package clash declares enums named like the identifiers generated code
// declares.
package clash

type value uint8

const valueA value = 1

type shape int16

const shapeNeg shape = -1

//enumrepr:panic_into(uint16)
type variant uint32

const variantA variant = 7

//enumrepr:panic_into(int64, uint8)
type v int

const vA v = 3
