// Package regex: pattern tokenizer.

package regex

import (
	"errors"
	"fmt"
	"strings"
)

// ErrParse is returned for any malformed pattern. Matched with errors.Is;
// the wrap carries the detail and, except for an unexpected end of
// pattern, the byte position.
var ErrParse = errors.New("regex: malformed pattern")

type tokenKind int

const (
	tokSymbol tokenKind = iota
	tokEpsilon
	tokUnion  // | or +
	tokConcat // explicit .
	tokStar   // *
	tokLParen // (
	tokRParen // )
)

// token is one lexical unit of a pattern.
type token struct {
	kind tokenKind
	text string // symbol text for tokSymbol
	pos  int    // byte offset in the pattern, for error reporting
}

// operator characters; anything else (minus whitespace) accumulates into
// a symbol token.
const operators = "|+*.()"

// tokenize splits a pattern into tokens. Whitespace separates symbols and
// is otherwise insignificant. `\` escapes the next character into the
// current symbol run; a trailing escape is malformed.
func tokenize(pattern string) ([]token, error) {
	var (
		toks  []token
		sym   strings.Builder
		start int
	)
	flush := func() {
		if sym.Len() == 0 {
			return
		}
		text := sym.String()
		sym.Reset()
		if text == "epsilon" || text == "$" {
			toks = append(toks, token{kind: tokEpsilon, pos: start})

			return
		}
		toks = append(toks, token{kind: tokSymbol, text: text, pos: start})
	}

	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		switch {
		case c == '\\':
			if i+1 == len(pattern) {
				return nil, fmt.Errorf("position %d: trailing escape: %w", i, ErrParse)
			}
			if sym.Len() == 0 {
				start = i
			}
			i++
			sym.WriteByte(pattern[i])
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			flush()
		case strings.IndexByte(operators, c) >= 0:
			flush()
			switch c {
			case '|', '+':
				toks = append(toks, token{kind: tokUnion, pos: i})
			case '*':
				toks = append(toks, token{kind: tokStar, pos: i})
			case '.':
				toks = append(toks, token{kind: tokConcat, pos: i})
			case '(':
				toks = append(toks, token{kind: tokLParen, pos: i})
			case ')':
				toks = append(toks, token{kind: tokRParen, pos: i})
			}
		default:
			if sym.Len() == 0 {
				start = i
			}
			sym.WriteByte(c)
		}
	}
	flush()

	return toks, nil
}
