package attr

import (
	"go/constant"
	"go/token"
	"strings"
)

//go:generate go tool stringer -type=Kind,TokenKind -output=kind_string.go

// Kind is the kind of an Attribute.
type Kind int

const (
	KindRepr Kind = iota // representation type list
	KindAny              // namespaced token payload
)

// TokenKind is the kind of a Token.
type TokenKind int

const (
	TokenIdent   TokenKind = iota // identifier or keyword
	TokenLiteral                  // number, string or char literal
	TokenPunct                    // operator or delimiter other than parentheses
	TokenGroup                    // parenthesised token sequence
)

// Token is one element of an attribute payload.
type Token struct {
	Kind     TokenKind
	Text     string  // empty for groups
	Children []Token // only for groups
}

// Ident returns an identifier token.
func Ident(name string) Token {
	return Token{Kind: TokenIdent, Text: name}
}

// Group returns a group token wrapping children.
func Group(children ...Token) Token {
	return Token{Kind: TokenGroup, Children: children}
}

// String renders the token back to source-like text.
func (t Token) String() string {
	if t.Kind != TokenGroup {
		return t.Text
	}

	parts := make([]string, 0, len(t.Children))
	for _, c := range t.Children {
		parts = append(parts, c.String())
	}

	return "(" + strings.Join(parts, " ") + ")"
}

// Attribute is a single attribute attached to an enum declaration.
type Attribute struct {
	Kind Kind
	// Repr lists the representation type names of a KindRepr attribute. An
	// empty list is an explicitly empty repr attribute.
	Repr []string
	// Tokens is the payload of a KindAny attribute.
	Tokens []Token
	// Pos is where the attribute was read from, if known.
	Pos token.Pos
}

// Repr returns a repr attribute naming types.
func Repr(types ...string) Attribute {
	return Attribute{Kind: KindRepr, Repr: types}
}

// Any returns a namespaced attribute: the namespace identifier followed by
// payload as a single group.
func Any(namespace string, payload ...Token) Attribute {
	return Attribute{
		Kind:   KindAny,
		Tokens: []Token{Ident(namespace), Group(payload...)},
	}
}

// Variant is one constant of an enum type, in declaration order.
type Variant struct {
	Name  string
	Value constant.Value
	Pos   token.Pos
}

// EnumDecl is a parsed enum declaration.
type EnumDecl struct {
	Name       string
	Attributes []Attribute
	Variants   []Variant
}
