package enumrepr

import (
	"fmt"
	"reflect"
	"slices"
	"sync"
)

//go:generate go tool stringer -type=ShapeKind -output=shape_kind_string.go

// ShapeKind tells what a Shape describes.
type ShapeKind int

const (
	ShapeOpaque ShapeKind = iota // nothing is known about the type
	ShapeEnum                    // a registered enum
)

// Integer is the set of types usable as enum representations and as
// conversion targets.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Shape is the static structural description of a type.
type Shape struct {
	Name     string
	Kind     ShapeKind
	Repr     string    // representation type name, empty for opaque shapes
	Variants []Variant // declaration order
}

// EnumShape is the enum-specific view of a Shape returned by PeekEnum.
type EnumShape struct {
	Name     string
	Repr     string
	Variants []Variant
}

// Variant is one enum constant paired with its discriminant.
type Variant struct {
	Index        int
	Name         string
	Discriminant *Discriminant
}

// Discriminant is an integer constant value widened to 64 bits. Negative
// values keep their two's complement bit pattern.
type Discriminant struct {
	bits     uint64
	negative bool
}

// NewDiscriminant widens v into a Discriminant.
func NewDiscriminant[E Integer](v E) *Discriminant {
	if v < 0 {
		return &Discriminant{bits: uint64(int64(v)), negative: true}
	}

	return &Discriminant{bits: uint64(v)}
}

// String returns the decimal form of the discriminant.
func (d *Discriminant) String() string {
	if d == nil {
		return "<none>"
	}

	if d.negative {
		return fmt.Sprint(int64(d.bits))
	}

	return fmt.Sprint(d.bits)
}

// V builds a variant from an enum constant. Index is assigned by Register.
func V[E Integer](name string, value E) Variant {
	return Variant{Name: name, Discriminant: NewDiscriminant(value)}
}

var (
	registryMu sync.RWMutex
	registry   = map[reflect.Type]*Shape{}
)

// Register records the shape of enum type E. It is meant to be called from
// generated init functions; registering the same type twice panics.
func Register[E Integer](repr string, variants ...Variant) {
	rtype := reflect.TypeFor[E]()

	shape := &Shape{
		Name:     rtype.String(),
		Kind:     ShapeEnum,
		Repr:     repr,
		Variants: make([]Variant, len(variants)),
	}

	for i, v := range variants {
		v.Index = i
		shape.Variants[i] = v
	}

	registryMu.Lock()
	defer registryMu.Unlock()

	if _, ok := registry[rtype]; ok {
		panic("enumrepr: shape of " + shape.Name + " registered twice")
	}

	registry[rtype] = shape
}

// ShapeOf returns the registered shape of T, or an opaque shape when T was
// never registered.
func ShapeOf[T any]() *Shape {
	rtype := reflect.TypeFor[T]()

	registryMu.RLock()
	shape, ok := registry[rtype]
	registryMu.RUnlock()

	if !ok {
		return &Shape{Name: rtype.String(), Kind: ShapeOpaque}
	}

	return shape
}

// PeekEnum returns the variants of an enum shape in declaration order. The
// returned slice is a fresh copy owned by the caller.
//
// Generated code only calls PeekEnum on enum types, so any other shape is a
// broken invariant and panics.
func PeekEnum(shape *Shape) EnumShape {
	if shape == nil {
		panic("enumrepr: nil shape is not an enum")
	}

	if shape.Kind != ShapeEnum {
		panic(fmt.Sprintf("enumrepr: shape of %s is %s, not an enum", shape.Name, shape.Kind))
	}

	return EnumShape{
		Name:     shape.Name,
		Repr:     shape.Repr,
		Variants: slices.Clone(shape.Variants),
	}
}
