package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// Arch renders instructions for one assembler dialect. The accumulator
// holds the value of the last evaluated expression and the scratch
// register receives the popped left operand of a binary operation.
type Arch interface {
	prologue(fname string)
	epilogue()
	movImm(val int64)
	push()
	pop()
	neg()
	binary(kind NodeKind) bool

	stackDepth() int
	err() error
}

var syntaxes = []string{"intel", "att"}

func chooseArch(syntax string, w io.Writer) (Arch, error) {
	out := &asmWriter{w: w}
	switch syntax {
	case "intel", "":
		return &X64Intel{out}, nil
	case "att":
		return &X64Att{out}, nil
	default:
		return nil, errors.Errorf("unsupported syntax: %s (want one of %v)", syntax, syntaxes)
	}
}

// asmWriter prints listing lines and remembers the first write error.
type asmWriter struct {
	w     io.Writer
	depth int
	werr  error
}

func (a *asmWriter) printf(format string, args ...any) {
	if a.werr != nil {
		return
	}
	if _, err := fmt.Fprintf(a.w, format, args...); err != nil {
		a.werr = errors.Wrap(err, "write listing")
	}
}

func (a *asmWriter) stackDepth() int { return a.depth }
func (a *asmWriter) err() error      { return a.werr }

// X64Intel emits GNU as Intel syntax without register prefixes.
type X64Intel struct{ *asmWriter }

func (a X64Intel) prologue(fname string) {
	a.printf(".intel_syntax noprefix\n")
	a.printf(".globl %s\n", fname)
	a.printf("%s:\n", fname)
}

func (a X64Intel) epilogue() {
	a.printf("\tret\n")
}

func (a X64Intel) movImm(val int64) {
	a.printf("\tmov rax, %d\n", val)
}

func (a X64Intel) push() {
	a.printf("\tpush rax\n")
	a.depth++
}

func (a X64Intel) pop() {
	a.printf("\tpop rdi\n")
	a.depth--
}

func (a X64Intel) neg() {
	a.printf("\tneg rax\n")
}

func (a X64Intel) binary(kind NodeKind) bool {
	switch kind {
	case ND_ADD:
		a.printf("\tadd rax, rdi\n")
		return true
	case ND_SUB:
		a.printf("\tsub rax, rdi\n")
		return true
	case ND_MUL:
		a.printf("\timul rax, rdi\n")
		return true
	case ND_DIV:
		a.printf("\tcqo\n")
		a.printf("\tidiv rdi\n")
		return true
	case ND_EQ, ND_NE, ND_LT, ND_LE:
		a.printf("\tcmp rax, rdi\n")
		a.printf("\t%s al\n", setcc(kind))
		a.printf("\tmovzb rax, al\n")
		return true
	}
	return false
}

// X64Att emits GNU as AT&T syntax.
type X64Att struct{ *asmWriter }

func (a X64Att) prologue(fname string) {
	a.printf(".att_syntax prefix\n")
	a.printf(".globl %s\n", fname)
	a.printf("%s:\n", fname)
}

func (a X64Att) epilogue() {
	a.printf("\tret\n")
}

func (a X64Att) movImm(val int64) {
	a.printf("\tmov $%d, %%rax\n", val)
}

func (a X64Att) push() {
	a.printf("\tpush %%rax\n")
	a.depth++
}

func (a X64Att) pop() {
	a.printf("\tpop %%rdi\n")
	a.depth--
}

func (a X64Att) neg() {
	a.printf("\tneg %%rax\n")
}

func (a X64Att) binary(kind NodeKind) bool {
	switch kind {
	case ND_ADD:
		a.printf("\tadd %%rdi, %%rax\n")
		return true
	case ND_SUB:
		a.printf("\tsub %%rdi, %%rax\n")
		return true
	case ND_MUL:
		a.printf("\timul %%rdi, %%rax\n")
		return true
	case ND_DIV:
		a.printf("\tcqo\n")
		a.printf("\tidiv %%rdi\n")
		return true
	case ND_EQ, ND_NE, ND_LT, ND_LE:
		a.printf("\tcmp %%rdi, %%rax\n")
		a.printf("\t%s %%al\n", setcc(kind))
		a.printf("\tmovzb %%al, %%rax\n")
		return true
	}
	return false
}

func setcc(kind NodeKind) string {
	switch kind {
	case ND_EQ:
		return "sete"
	case ND_NE:
		return "setne"
	case ND_LT:
		return "setl"
	default:
		return "setle"
	}
}
