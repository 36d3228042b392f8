package main

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Generate code for a given node.
func genExpr(a Arch, node *Node) error {
	switch node.kind {
	case ND_NUM:
		a.movImm(node.val)
		return nil
	case ND_NEG:
		if err := genExpr(a, node.lhs); err != nil {
			return err
		}
		a.neg()
		return nil
	}

	if err := genExpr(a, node.rhs); err != nil {
		return err
	}
	a.push()
	if err := genExpr(a, node.lhs); err != nil {
		return err
	}
	a.pop()

	if !a.binary(node.kind) {
		return errorTok(node.tok, "invalid expression")
	}
	return nil
}

// Traverse the AST to emit assembly for a function `fname` that
// returns the value of the expression.
func codegen(a Arch, fname string, node *Node) error {
	a.prologue(fname)
	if err := genExpr(a, node); err != nil {
		return err
	}
	a.epilogue()

	if d := a.stackDepth(); d != 0 {
		return errors.Errorf("internal error: stack depth %d after code generation", d)
	}
	log.WithField("function", fname).Debug("generated expression code")
	return a.err()
}
