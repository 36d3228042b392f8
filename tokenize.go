package main

import (
	"strconv"
	"strings"
)

// Token
type TokenKind int

const (
	TK_IDENT TokenKind = iota // Identifiers
	TK_PUNCT                  // Punctuators
	TK_NUM                    // Numeric literals
	TK_EOF                    // End-of-file markers
)

func (k TokenKind) String() string {
	switch k {
	case TK_IDENT:
		return "identifier"
	case TK_PUNCT:
		return "punctuator"
	case TK_NUM:
		return "number"
	case TK_EOF:
		return "end of input"
	}
	return "TokenKind(" + strconv.Itoa(int(k)) + ")"
}

// Token type
type Token struct {
	kind   TokenKind // Token kind
	next   *Token    // Next token
	val    int64     // If kind is TK_NUM, its value
	loc    int       // Token location
	len    int       // Token length
	lexeme string    // Token lexeme value in string
	input  string    // Whole input, for diagnostics
}

// Create a new token.
func NewToken(kind TokenKind, input string, pos int, len int) *Token {
	return &Token{
		kind:   kind,
		loc:    pos,
		len:    len,
		lexeme: input[pos : pos+len],
		input:  input,
	}
}

// Reports whether the current token matches `op`.
func (tok *Token) equal(op string) bool {
	return tok.kind != TK_EOF && tok.lexeme == op
}

// Ensure that the current token is `op`.
func (tok *Token) skip(op string) (*Token, error) {
	if !tok.equal(op) {
		return nil, errorTok(tok, "expected '%s'", op)
	}
	return tok.next, nil
}

// Consumes the current token if it matches `op`.
func consume(rest **Token, tok *Token, op string) bool {
	if tok.equal(op) {
		*rest = tok.next
		return true
	}
	*rest = tok
	return false
}

var puncts2 = []string{"==", "!=", "<=", ">="}

const puncts1 = "+-*/()<>"

// Returns true if c is valid as the first character of an identifier.
func isIdent1(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || c == '_'
}

// Returns true if c is valid as a non-first character of an identifier.
func isIdent2(c byte) bool {
	return isIdent1(c) || isDigit(c)
}

// Read a punctuator token from p and returns its length.
func readPunct(input string, p int) int {
	for _, op := range puncts2 {
		if strings.HasPrefix(input[p:], op) {
			return len(op)
		}
	}

	if strings.IndexByte(puncts1, input[p]) >= 0 {
		return 1
	}
	return 0
}

// Tokenize a given string and returns new tokens.
func tokenize(input string) (*Token, error) {
	head := Token{}
	cur := &head
	p := 0

	for p < len(input) {
		// Skip whitespace characters.
		if isSpace(input[p]) {
			p++
			continue
		}

		// Numeric literal
		if isDigit(input[p]) {
			start := p
			for p < len(input) && isDigit(input[p]) {
				p++
			}
			n, err := strconv.ParseInt(input[start:p], 10, 64)
			if err != nil {
				return nil, errorAt(input, start, "number out of range")
			}
			cur.next = NewToken(TK_NUM, input, start, p-start)
			cur = cur.next
			cur.val = n
			continue
		}

		// Identifier
		if isIdent1(input[p]) {
			start := p
			for p < len(input) && isIdent2(input[p]) {
				p++
			}
			cur.next = NewToken(TK_IDENT, input, start, p-start)
			cur = cur.next
			continue
		}

		// Punctuator
		punctLen := readPunct(input, p)
		if punctLen != 0 {
			cur.next = NewToken(TK_PUNCT, input, p, punctLen)
			cur = cur.next
			p += punctLen
			continue
		}

		return nil, errorAt(input, p, "invalid token")
	}

	cur.next = NewToken(TK_EOF, input, p, 0)
	return head.next, nil
}
