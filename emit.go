package main

import (
	log "github.com/sirupsen/logrus"
)

// Emit a translation unit whose only function `fname` returns `val`.
func emitLiteral(a Arch, fname string, val int32) error {
	log.WithFields(log.Fields{
		"function": fname,
		"value":    val,
	}).Debug("emitting constant return")

	a.prologue(fname)
	a.movImm(int64(val))
	a.epilogue()
	return a.err()
}
