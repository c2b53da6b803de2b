package resolve

import (
	"fmt"

	"enumrepr/internal/attr"
	"enumrepr/internal/common"
)

// Namespace is the attribute namespace holding generator directives, as in
// //enumrepr:panic_into(uint8).
const Namespace = "enumrepr"

// DefaultRepr is the representation used when a declaration carries no
// non-empty repr attribute: the platform-sized signed integer.
const DefaultRepr = "int"

// Descriptor is everything the emitter needs to know about one enum.
type Descriptor struct {
	Name       string
	Repr       string
	Directives Directives
}

// Resolve builds the descriptor of decl.
func Resolve(decl attr.EnumDecl) Descriptor {
	return Descriptor{
		Name:       decl.Name,
		Repr:       ReprOf(decl.Attributes),
		Directives: DirectivesOf(decl.Attributes),
	}
}

// ReprOf returns the first type named by a non-empty repr attribute, or
// DefaultRepr. Extra repr attributes are ignored.
func ReprOf(attrs []attr.Attribute) string {
	for _, a := range attrs {
		if a.Kind != attr.KindRepr {
			continue
		}

		if first, ok := common.First(a.Repr); ok {
			return first
		}
	}

	return DefaultRepr
}

// DirectivesOf extracts the directives of the first namespaced attribute.
// Within its argument group, windows that are not a name followed by a group
// are skipped, and only identifiers are kept as targets.
func DirectivesOf(attrs []attr.Attribute) Directives {
	directives := NewDirectives()

	payload, ok := namespacePayload(attrs)
	if !ok {
		return directives
	}

	eachPair(payload, func(name, args attr.Token) bool {
		if name.Kind != attr.TokenIdent || args.Kind != attr.TokenGroup {
			return true
		}

		targets := make([]string, 0, len(args.Children))
		for _, tok := range args.Children {
			if tok.Kind == attr.TokenIdent {
				targets = append(targets, tok.Text)
			}
		}

		directives.Put(name.Text, targets)
		return true
	})

	return directives
}

// namespacePayload finds the first Namespace window among the "any"
// attributes and returns the contents of its group.
func namespacePayload(attrs []attr.Attribute) ([]attr.Token, bool) {
	var (
		payload []attr.Token
		found   bool
	)

	for _, a := range attrs {
		if a.Kind != attr.KindAny {
			continue
		}

		eachPair(a.Tokens, func(name, args attr.Token) bool {
			if name.Kind != attr.TokenIdent || name.Text != Namespace {
				return true
			}

			if args.Kind != attr.TokenGroup {
				panic(fmt.Sprintf("unimplemented: %s attribute payload %s is not a group", Namespace, args))
			}

			payload, found = args.Children, true
			return false
		})

		if found {
			return payload, true
		}
	}

	return nil, false
}

// eachPair walks tokens two at a time until fn returns false. A trailing
// single token means the payload skipped surface validation and panics.
func eachPair(tokens []attr.Token, fn func(first, second attr.Token) bool) {
	for i := 0; i < len(tokens); i += 2 {
		if i+1 >= len(tokens) {
			panic(fmt.Sprintf("attribute tokens must be processed two by two, got a trailing %s", tokens[i]))
		}

		if !fn(tokens[i], tokens[i+1]) {
			return
		}
	}
}
