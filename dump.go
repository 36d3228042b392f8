package main

import (
	"io"

	"github.com/k0kubun/pp/v3"
)

// ASTDump is the printable shape of an AST, without token links.
type ASTDump struct {
	Kind string
	Val  int64
	Lhs  *ASTDump
	Rhs  *ASTDump
}

func toDump(node *Node) *ASTDump {
	if node == nil {
		return nil
	}
	return &ASTDump{
		Kind: node.kind.String(),
		Val:  node.val,
		Lhs:  toDump(node.lhs),
		Rhs:  toDump(node.rhs),
	}
}

// Pretty-prints the AST rooted at node to w.
func dumpAST(w io.Writer, node *Node) error {
	printer := pp.New()
	printer.SetOutput(w)
	printer.SetColoringEnabled(isTerminal(w))
	_, err := printer.Println(toDump(node))
	return err
}
