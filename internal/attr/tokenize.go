package attr

import (
	"fmt"
	"go/scanner"
	"go/token"
)

// SyntaxError reports a malformed directive payload.
type SyntaxError struct {
	Offset int // byte offset into the payload
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("offset %d: %s", e.Offset, e.Msg)
}

// Tokenize splits a directive payload into tokens using the Go scanner and
// folds every parenthesised run into a single group token.
func Tokenize(src string) ([]Token, error) {
	fset := token.NewFileSet()
	file := fset.AddFile("", fset.Base(), len(src))

	var firstErr *SyntaxError
	var s scanner.Scanner
	s.Init(file, []byte(src), func(pos token.Position, msg string) {
		if firstErr == nil {
			firstErr = &SyntaxError{Offset: pos.Offset, Msg: msg}
		}
	}, 0)

	// stack[0] is the top level; every open parenthesis pushes a level.
	stack := [][]Token{nil}
	opens := []int{}

	for {
		pos, tok, lit := s.Scan()
		offset := file.Offset(pos)

		switch {
		case tok == token.EOF:
			if firstErr != nil {
				return nil, firstErr
			}
			if len(opens) > 0 {
				return nil, &SyntaxError{Offset: opens[len(opens)-1], Msg: "unclosed '('"}
			}
			return stack[0], nil

		case tok == token.SEMICOLON && lit == "\n":
			// automatically inserted
			continue

		case tok == token.LPAREN:
			stack = append(stack, nil)
			opens = append(opens, offset)

		case tok == token.RPAREN:
			if len(opens) == 0 {
				return nil, &SyntaxError{Offset: offset, Msg: "unexpected ')'"}
			}
			children := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			opens = opens[:len(opens)-1]
			stack[len(stack)-1] = append(stack[len(stack)-1], Group(children...))

		case tok == token.IDENT:
			stack[len(stack)-1] = append(stack[len(stack)-1], Ident(lit))

		case tok.IsKeyword():
			stack[len(stack)-1] = append(stack[len(stack)-1], Ident(tok.String()))

		case tok.IsLiteral():
			stack[len(stack)-1] = append(stack[len(stack)-1], Token{Kind: TokenLiteral, Text: lit})

		default:
			stack[len(stack)-1] = append(stack[len(stack)-1], Token{Kind: TokenPunct, Text: tok.String()})
		}
	}
}

// ValidateDirectives checks that tokens is a sequence of directive
// invocations, each an identifier followed by a parenthesised argument list.
// It is the surface-level check the resolver relies on.
func ValidateDirectives(tokens []Token) error {
	for i := 0; i < len(tokens); i += 2 {
		name := tokens[i]
		if name.Kind != TokenIdent {
			return fmt.Errorf("expected directive name, got %s %q", name.Kind, name)
		}

		if i+1 >= len(tokens) || tokens[i+1].Kind != TokenGroup {
			return fmt.Errorf("directive %s has no argument list", name.Text)
		}
	}

	return nil
}
