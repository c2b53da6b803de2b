package emit

import (
	"bytes"
	"fmt"
	"text/template"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"enumrepr/internal/attr"
	"enumrepr/internal/resolve"
)

// RuntimeName is the identifier generated code uses for the runtime package.
const RuntimeName = "enumrepr"

// DirectivePanicInto requests checked conversions into each listed type.
const DirectivePanicInto = "panic_into"

type conversionsData struct {
	Runtime string
	Name    string
	Repr    string
	Local   locals
}

type panicIntoData struct {
	Runtime string
	Name    string
	Type    string
	Method  string
	Local   locals
}

// locals are the identifiers declared inside generated code: parameter,
// variables and receiver. Each one is suffixed with underscores until it
// differs from every type name the generated code refers to.
type locals struct {
	Value   string
	Shape   string
	Variant string
	Recv    string
}

func newLocals(typeNames ...string) locals {
	taken := make(map[string]bool, len(typeNames))
	for _, name := range typeNames {
		taken[name] = true
	}

	pick := func(name string) string {
		for taken[name] {
			name += "_"
		}

		return name
	}

	return locals{
		Value:   pick("value"),
		Shape:   pick("shape"),
		Variant: pick("variant"),
		Recv:    pick("v"),
	}
}

type shapeData struct {
	Runtime  string
	Name     string
	Repr     string
	Variants []attr.Variant
}

// Emit renders the conversions of one enum: NameFromRepr, the Repr method and
// one method per panic_into target, duplicates included.
//
// Directives other than panic_into are not implemented and panic.
func Emit(name, repr string, directives resolve.Directives) string {
	var buf bytes.Buffer

	typeNames := []string{name, repr}
	directives.Each(func(_ string, targets []string) {
		typeNames = append(typeNames, targets...)
	})
	local := newLocals(typeNames...)

	execute(&buf, conversionsTemplate, conversionsData{
		Runtime: RuntimeName,
		Name:    name,
		Repr:    repr,
		Local:   local,
	})

	directives.Each(func(directive string, targets []string) {
		switch directive {
		case DirectivePanicInto:
			for _, target := range targets {
				execute(&buf, panicIntoTemplate, panicIntoData{
					Runtime: RuntimeName,
					Name:    name,
					Type:    target,
					Method:  MethodName(target),
					Local:   local,
				})
			}
		default:
			panic(fmt.Sprintf("not implemented: directive %q on %s", directive, name))
		}
	})

	return buf.String()
}

// Shape renders the init function registering the discriminant table of an
// enum. Variants must be in declaration order.
func Shape(name, repr string, variants []attr.Variant) string {
	var buf bytes.Buffer

	execute(&buf, shapeTemplate, shapeData{
		Runtime:  RuntimeName,
		Name:     name,
		Repr:     repr,
		Variants: variants,
	})

	return buf.String()
}

// Enum renders the shape table and conversions of a resolved enum.
func Enum(desc resolve.Descriptor, variants []attr.Variant) string {
	return Shape(desc.Name, desc.Repr, variants) + Emit(desc.Name, desc.Repr, desc.Directives)
}

// MethodName returns the name of the panic_into method converting to target,
// e.g. Uint8 for uint8.
func MethodName(target string) string {
	return cases.Title(language.Und, cases.NoLower).String(target)
}

func execute(buf *bytes.Buffer, tmpl *template.Template, data any) {
	if err := tmpl.Execute(buf, data); err != nil {
		panic(err)
	}
}
