package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func num(v int64) *ASTDump {
	return &ASTDump{Kind: "ND_NUM", Val: v}
}

func bin(kind NodeKind, lhs, rhs *ASTDump) *ASTDump {
	return &ASTDump{Kind: kind.String(), Lhs: lhs, Rhs: rhs}
}

func neg(operand *ASTDump) *ASTDump {
	return &ASTDump{Kind: "ND_NEG", Lhs: operand}
}

func mustParse(t *testing.T, input string) *Node {
	t.Helper()
	tok, err := tokenize(input)
	require.NoError(t, err)
	node, err := parse(tok)
	require.NoError(t, err, input)
	return node
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want *ASTDump
	}{
		{"42", num(42)},
		{"1+2*3", bin(ND_ADD, num(1), bin(ND_MUL, num(2), num(3)))},
		{"(1+2)*3", bin(ND_MUL, bin(ND_ADD, num(1), num(2)), num(3))},
		{"1-2-3", bin(ND_SUB, bin(ND_SUB, num(1), num(2)), num(3))},
		{"8/4/2", bin(ND_DIV, bin(ND_DIV, num(8), num(4)), num(2))},
		{"-(3)", neg(num(3))},
		{"+5", num(5)},
		{"+(1+2)", bin(ND_ADD, num(1), num(2))},
		{"((7))", num(7)},
		{"- -5", neg(neg(num(5)))},
		{"1<2", bin(ND_LT, num(1), num(2))},
		{"1<=2", bin(ND_LE, num(1), num(2))},
		{"1>2", bin(ND_LT, num(2), num(1))},
		{"1>=2", bin(ND_LE, num(2), num(1))},
		{"1==2!=3", bin(ND_NE, bin(ND_EQ, num(1), num(2)), num(3))},
		{"1+1<3==1", bin(ND_EQ, bin(ND_LT, bin(ND_ADD, num(1), num(1)), num(3)), num(1))},
	}

	for _, tt := range tests {
		got := toDump(mustParse(t, tt.in))
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("parse(%q) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		in  string
		loc int
		msg string
	}{
		{"", 0, "expected an expression"},
		{"1+", 2, "expected an expression"},
		{"1 2", 2, "extra token"},
		{"(1+2", 4, "expected ')'"},
		{"a", 0, "expected an expression"},
		{")", 0, "expected an expression"},
		{"1)", 1, "extra token"},
	}

	for _, tt := range tests {
		tok, err := tokenize(tt.in)
		require.NoError(t, err, tt.in)

		_, err = parse(tok)
		var cerr *CompileError
		require.ErrorAs(t, err, &cerr, "parse(%q)", tt.in)
		assert.Equal(t, tt.loc, cerr.loc, "parse(%q)", tt.in)
		assert.Equal(t, tt.msg, cerr.msg, "parse(%q)", tt.in)
	}
}
