package attr

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want []Token
	}{
		{
			name: "empty",
			src:  "",
			want: nil,
		},
		{
			name: "single directive",
			src:  "panic_into(uint8, uint16)",
			want: []Token{
				Ident("panic_into"),
				Group(Ident("uint8"), Token{Kind: TokenPunct, Text: ","}, Ident("uint16")),
			},
		},
		{
			name: "several directives",
			src:  "panic_into(int8) panic_into()",
			want: []Token{
				Ident("panic_into"), Group(Ident("int8")),
				Ident("panic_into"), Group(),
			},
		},
		{
			name: "nested groups and literals",
			src:  `a(b(1), "x")`,
			want: []Token{
				Ident("a"),
				Group(
					Ident("b"), Group(Token{Kind: TokenLiteral, Text: "1"}),
					Token{Kind: TokenPunct, Text: ","},
					Token{Kind: TokenLiteral, Text: `"x"`},
				),
			},
		},
		{
			name: "keywords are identifiers",
			src:  "type(map)",
			want: []Token{Ident("type"), Group(Ident("map"))},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Tokenize(tt.src)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got, spew.Sdump(got))
		})
	}
}

func TestTokenize_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		src    string
		offset int
		msg    string
	}{
		{src: "panic_into(uint8", offset: 10, msg: "unclosed '('"},
		{src: "panic_into)", offset: 10, msg: "unexpected ')'"},
		{src: `a("x)`, offset: 2, msg: "string literal not terminated"},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			t.Parallel()

			_, err := Tokenize(tt.src)
			require.Error(t, err)

			var syntaxErr *SyntaxError
			require.ErrorAs(t, err, &syntaxErr)
			assert.Equal(t, tt.offset, syntaxErr.Offset)
			assert.Equal(t, tt.msg, syntaxErr.Msg)
		})
	}
}

func TestValidateDirectives(t *testing.T) {
	t.Parallel()

	ok, err := Tokenize("panic_into(uint8) panic_into(int)")
	require.NoError(t, err)
	assert.NoError(t, ValidateDirectives(ok))

	missing, err := Tokenize("panic_into")
	require.NoError(t, err)
	assert.EqualError(t, ValidateDirectives(missing), "directive panic_into has no argument list")

	wrongName, err := Tokenize("(uint8) panic_into")
	require.NoError(t, err)
	assert.EqualError(t, ValidateDirectives(wrongName), `expected directive name, got TokenGroup "(uint8)"`)
}

func TestToken_String(t *testing.T) {
	t.Parallel()

	tok := Group(Ident("a"), Token{Kind: TokenPunct, Text: ","}, Group(Ident("b")))
	assert.Equal(t, "(a , (b))", tok.String())
}
