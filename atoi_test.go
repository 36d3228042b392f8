package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAtoi(t *testing.T) {
	tests := []struct {
		in   string
		want int32
	}{
		{"0", 0},
		{"42", 42},
		{"-5", -5},
		{"+5", 5},
		{" \t\n17", 17},
		{"12abc", 12},
		{"abc", 0},
		{"", 0},
		{"-", 0},
		{"+-3", 0},
		{"3 4", 3},
		{"2147483647", math.MaxInt32},
		{"-2147483648", math.MinInt32},
		// Truncated to 32 bits like a long stored into an int.
		{"2147483648", math.MinInt32},
		{"4294967297", 1},
		// Saturated to LONG_MAX/LONG_MIN first.
		{"99999999999999999999", -1},
		{"-99999999999999999999", 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, atoi(tt.in), "atoi(%q)", tt.in)
	}
}

func TestParseStrict(t *testing.T) {
	n, err := parseStrict("-2147483648")
	require.NoError(t, err)
	assert.Equal(t, int32(math.MinInt32), n)

	for _, in := range []string{"", "abc", "12x", " 1", "2147483648"} {
		_, err := parseStrict(in)
		assert.Error(t, err, "parseStrict(%q)", in)
	}
}
