package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/term"
)

// CompileError is a diagnostic pointing into the compiled input.
type CompileError struct {
	input string // Whole input the location refers to
	loc   int    // Byte offset of the offending character
	msg   string
}

// Reports an error location in the following format.
//
//	1 + foo
//	    ^ <error message here>
func errorAt(input string, loc int, format string, args ...any) error {
	return &CompileError{
		input: input,
		loc:   loc,
		msg:   fmt.Sprintf(format, args...),
	}
}

func errorTok(tok *Token, format string, args ...any) error {
	return errorAt(tok.input, tok.loc, format, args...)
}

func (e *CompileError) Error() string {
	var sb strings.Builder
	e.render(&sb, false)
	return strings.TrimSuffix(sb.String(), "\n")
}

func (e *CompileError) render(w io.Writer, color bool) {
	// Find a line containing `loc`.
	loc := min(max(e.loc, 0), len(e.input))
	line := loc
	for 0 < line && e.input[line-1] != '\n' {
		line--
	}

	end := loc
	for end < len(e.input) && e.input[end] != '\n' {
		end++
	}

	fmt.Fprintf(w, "%s\n", e.input[line:end])

	// Show the error message.
	fmt.Fprintf(w, "%*s", loc-line, "") // print pos spaces
	if color {
		fmt.Fprintf(w, "\x1b[1;31m^\x1b[0m %s\n", e.msg)
	} else {
		fmt.Fprintf(w, "^ %s\n", e.msg)
	}
}

// Reports an error to w. Compile errors get the source excerpt and caret,
// everything else a single line.
func report(w io.Writer, err error) {
	color := isTerminal(w)

	var cerr *CompileError
	if errors.As(err, &cerr) {
		cerr.render(w, color)
		return
	}

	if color {
		fmt.Fprintf(w, "\x1b[1;31merror:\x1b[0m %v\n", err)
	} else {
		fmt.Fprintf(w, "error: %v\n", err)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
