package main

import (
	"math"
	"strconv"

	"github.com/pkg/errors"
)

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\v' || c == '\f' || c == '\r'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// Converts s the way C's atoi does: leading whitespace and one sign are
// accepted, conversion stops at the first non-digit, and no digits at all
// yields 0. Out of range values saturate to the 64-bit range and are then
// truncated to 32 bits.
func atoi(s string) int32 {
	p := 0
	for p < len(s) && isSpace(s[p]) {
		p++
	}

	neg := false
	if p < len(s) && (s[p] == '+' || s[p] == '-') {
		neg = s[p] == '-'
		p++
	}

	limit := uint64(math.MaxInt64)
	if neg {
		limit++
	}

	var n uint64
	for ; p < len(s) && isDigit(s[p]); p++ {
		d := uint64(s[p] - '0')
		if n > (limit-d)/10 {
			n = limit
			continue
		}
		n = n*10 + d
	}

	var v int64
	switch {
	case neg && n == limit:
		v = math.MinInt64
	case neg:
		v = -int64(n)
	default:
		v = int64(n)
	}
	return int32(v)
}

// Like atoi, but the whole argument must be a decimal integer that fits
// in 32 bits.
func parseStrict(s string) (int32, error) {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid integer %q", s)
	}
	return int32(n), nil
}
