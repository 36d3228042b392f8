package main

// This file contains a recursive descent parser for arithmetic and
// comparison expressions.
//
// Each function in this file roughly corresponds to a production rule
// of the grammar in its doc comment. A function consumes tokens starting at `tok`,
// stores the first unconsumed token in `*rest` and returns the AST node.

// AST node
type NodeKind int

const (
	ND_ADD NodeKind = iota // +
	ND_SUB                 // -
	ND_MUL                 // *
	ND_DIV                 // /
	ND_NEG                 // unary -
	ND_EQ                  // ==
	ND_NE                  // !=
	ND_LT                  // <
	ND_LE                  // <=
	ND_NUM                 // Integer
)

var nodeNames = [...]string{
	ND_ADD: "ND_ADD",
	ND_SUB: "ND_SUB",
	ND_MUL: "ND_MUL",
	ND_DIV: "ND_DIV",
	ND_NEG: "ND_NEG",
	ND_EQ:  "ND_EQ",
	ND_NE:  "ND_NE",
	ND_LT:  "ND_LT",
	ND_LE:  "ND_LE",
	ND_NUM: "ND_NUM",
}

func (k NodeKind) String() string {
	if int(k) < len(nodeNames) {
		return nodeNames[k]
	}
	return "ND_?"
}

// AST node type
type Node struct {
	kind NodeKind // Node kind
	tok  *Token   // Representative token

	lhs *Node // Left-hand side
	rhs *Node // Right-hand side
	val int64 // Used if kind == ND_NUM
}

func NewNode(kind NodeKind, tok *Token) *Node {
	return &Node{kind: kind, tok: tok}
}

func NewBinary(kind NodeKind, lhs, rhs *Node, tok *Token) *Node {
	node := NewNode(kind, tok)
	node.lhs = lhs
	node.rhs = rhs
	return node
}

func NewUnary(kind NodeKind, expr *Node, tok *Token) *Node {
	node := NewNode(kind, tok)
	node.lhs = expr
	return node
}

func NewNum(val int64, tok *Token) *Node {
	node := NewNode(ND_NUM, tok)
	node.val = val
	return node
}

// expr = equality
func expr(rest **Token, tok *Token) (*Node, error) {
	return equality(rest, tok)
}

// equality = relational ("==" relational | "!=" relational)*
func equality(rest **Token, tok *Token) (*Node, error) {
	node, err := relational(&tok, tok)
	if err != nil {
		return nil, err
	}

	for {
		start := tok

		var kind NodeKind
		switch {
		case tok.equal("=="):
			kind = ND_EQ
		case tok.equal("!="):
			kind = ND_NE
		default:
			*rest = tok
			return node, nil
		}

		rhs, err := relational(&tok, tok.next)
		if err != nil {
			return nil, err
		}
		node = NewBinary(kind, node, rhs, start)
	}
}

// relational = add ("<" add | "<=" add | ">" add | ">=" add)*
func relational(rest **Token, tok *Token) (*Node, error) {
	node, err := add(&tok, tok)
	if err != nil {
		return nil, err
	}

	for {
		start := tok

		var kind NodeKind
		swap := false
		switch {
		case tok.equal("<"):
			kind = ND_LT
		case tok.equal("<="):
			kind = ND_LE
		case tok.equal(">"):
			kind, swap = ND_LT, true
		case tok.equal(">="):
			kind, swap = ND_LE, true
		default:
			*rest = tok
			return node, nil
		}

		rhs, err := add(&tok, tok.next)
		if err != nil {
			return nil, err
		}

		// `a > b` is `b < a`, `a >= b` is `b <= a`.
		if swap {
			node = NewBinary(kind, rhs, node, start)
		} else {
			node = NewBinary(kind, node, rhs, start)
		}
	}
}

// add = mul ("+" mul | "-" mul)*
func add(rest **Token, tok *Token) (*Node, error) {
	node, err := mul(&tok, tok)
	if err != nil {
		return nil, err
	}

	for {
		start := tok

		var kind NodeKind
		switch {
		case tok.equal("+"):
			kind = ND_ADD
		case tok.equal("-"):
			kind = ND_SUB
		default:
			*rest = tok
			return node, nil
		}

		rhs, err := mul(&tok, tok.next)
		if err != nil {
			return nil, err
		}
		node = NewBinary(kind, node, rhs, start)
	}
}

// mul = unary ("*" unary | "/" unary)*
func mul(rest **Token, tok *Token) (*Node, error) {
	node, err := unary(&tok, tok)
	if err != nil {
		return nil, err
	}

	for {
		start := tok

		var kind NodeKind
		switch {
		case tok.equal("*"):
			kind = ND_MUL
		case tok.equal("/"):
			kind = ND_DIV
		default:
			*rest = tok
			return node, nil
		}

		rhs, err := unary(&tok, tok.next)
		if err != nil {
			return nil, err
		}
		node = NewBinary(kind, node, rhs, start)
	}
}

// unary = ("+" | "-") unary | primary
func unary(rest **Token, tok *Token) (*Node, error) {
	if consume(&tok, tok, "+") {
		return unary(rest, tok)
	}

	if tok.equal("-") {
		operand, err := unary(rest, tok.next)
		if err != nil {
			return nil, err
		}
		return NewUnary(ND_NEG, operand, tok), nil
	}

	return primary(rest, tok)
}

// primary = "(" expr ")" | num
func primary(rest **Token, tok *Token) (*Node, error) {
	if consume(&tok, tok, "(") {
		node, err := expr(&tok, tok)
		if err != nil {
			return nil, err
		}
		*rest, err = tok.skip(")")
		if err != nil {
			return nil, err
		}
		return node, nil
	}

	if tok.kind == TK_NUM {
		*rest = tok.next
		return NewNum(tok.val, tok), nil
	}

	return nil, errorTok(tok, "expected an expression")
}

// parse = expr EOF
func parse(tok *Token) (*Node, error) {
	node, err := expr(&tok, tok)
	if err != nil {
		return nil, err
	}

	if tok.kind != TK_EOF {
		return nil, errorTok(tok, "extra token")
	}
	return node, nil
}
