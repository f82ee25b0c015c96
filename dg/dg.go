// Package dg encodes integers as dodecagrams, the base-12 numerals of the
// original runtime.  Ten is written ‘X’ and eleven ‘E’; source literals carry
// a ‘0z’ prefix.
package dg

import (
	"errors"
	"fmt"
	"strings"
)

const digits = "0123456789XE"

// Prefix marks a dodecagram literal in source text and in operands.
const Prefix = "0z"

// To renders n as a dodecagram without the ‘0z’ prefix.
func To(n int) string {
	if n == 0 {
		return "0"
	}

	neg := n < 0
	if neg {
		n = -n
	}

	sb := []byte{}
	for n > 0 {
		sb = append([]byte{digits[n%12]}, sb...)
		n /= 12
	}
	if neg {
		return "-" + string(sb)
	}
	return string(sb)
}

// From parses a dodecagram, with or without the ‘0z’ prefix.
func From(s string) (int, error) {
	t := strings.TrimPrefix(s, Prefix)
	neg := strings.HasPrefix(t, "-")
	if neg {
		t = t[1:]
	}
	if t == "" {
		return 0, errors.New("empty dodecagram")
	}

	n := 0
	for _, r := range t {
		d := strings.IndexRune(digits, r)
		if d == -1 {
			return 0, fmt.Errorf("invalid dodecagram digit ‘%c’", r)
		}
		n = n*12 + d
	}
	if neg {
		return -n, nil
	}
	return n, nil
}

// Add sums two dodecagrams, returning the result in the same encoding.
func Add(a, b string) (string, error) {
	x, err := From(a)
	if err != nil {
		return "", err
	}
	y, err := From(b)
	if err != nil {
		return "", err
	}
	return To(x + y), nil
}
