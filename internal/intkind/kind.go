package intkind

import (
	"go/constant"
	"go/token"
	"go/types"
	"math"
)

//go:generate go tool stringer -type=Kind -output=kind_string.go

// Kind is a Go builtin integer type.
type Kind int

const (
	_ Kind = iota // skip zero value, use it as the "not an integer" kind

	KindInt
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint
	KindUint8
	KindUint16
	KindUint32
	KindUint64

	// KindTotal is the number of kinds defined, including the zero kind.
	KindTotal = int(iota)
)

var names = map[string]Kind{
	"int":    KindInt,
	"int8":   KindInt8,
	"int16":  KindInt16,
	"int32":  KindInt32,
	"rune":   KindInt32,
	"int64":  KindInt64,
	"uint":   KindUint,
	"uint8":  KindUint8,
	"byte":   KindUint8,
	"uint16": KindUint16,
	"uint32": KindUint32,
	"uint64": KindUint64,
}

// FromName returns the kind of a builtin integer type name, or the zero kind
// when name is not one.
func FromName(name string) Kind {
	return names[name]
}

// FromType returns the kind of the underlying type of t, or the zero kind
// when it is not a builtin integer.
func FromType(t types.Type) Kind {
	basic, ok := t.Underlying().(*types.Basic)
	if !ok {
		return 0
	}

	switch basic.Kind() {
	default:
		return 0
	case types.Int:
		return KindInt
	case types.Int8:
		return KindInt8
	case types.Int16:
		return KindInt16
	case types.Int32:
		return KindInt32
	case types.Int64:
		return KindInt64
	case types.Uint:
		return KindUint
	case types.Uint8:
		return KindUint8
	case types.Uint16:
		return KindUint16
	case types.Uint32:
		return KindUint32
	case types.Uint64:
		return KindUint64
	}
}

// IsValid reports whether k is an integer kind.
func (k Kind) IsValid() bool {
	return k > 0 && int(k) < KindTotal
}

func (k Kind) IsSigned() bool {
	switch k {
	default:
		return false
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64:
		return true
	}
}

func (k Kind) Bits() int {
	switch k {
	default:
		panic("only integer kinds has meaningful bits amount, but requested for: " + k.String())
	case KindInt, KindUint:
		power := 0
		for n := uint(math.MaxUint); n > 0; n >>= 1 {
			power++
		}
		return power
	case KindInt8, KindUint8:
		return 8
	case KindInt16, KindUint16:
		return 16
	case KindInt32, KindUint32:
		return 32
	case KindInt64, KindUint64:
		return 64
	}
}

// Bounds returns the inclusive range of k as exact constants.
func (k Kind) Bounds() (lo, hi constant.Value) {
	bits := uint(k.Bits())
	one := constant.MakeInt64(1)

	if k.IsSigned() {
		hi = constant.BinaryOp(constant.Shift(one, token.SHL, bits-1), token.SUB, one)
		lo = constant.UnaryOp(token.SUB, constant.Shift(one, token.SHL, bits-1), 0)
		return lo, hi
	}

	return constant.MakeInt64(0), constant.BinaryOp(constant.Shift(one, token.SHL, bits), token.SUB, one)
}

// Fits reports whether the integer constant v is representable in k.
func (k Kind) Fits(v constant.Value) bool {
	if v.Kind() != constant.Int {
		return false
	}

	lo, hi := k.Bounds()
	return constant.Compare(lo, token.LEQ, v) && constant.Compare(v, token.LEQ, hi)
}
