// Copyright 2026, The Nucleo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package prefix implements bit-level prefix codes used by the codecs.
//
// Codes are built from symbol counts with the classic greedy Huffman
// construction and are stored as explicit bit-strings, so that they can be
// serialized verbatim into a stream header.
package prefix

import (
	"bytes"
	"strings"

	"github.com/nucleo/compress/internal"
)

var (
	ErrInvalid error = internal.Error("invalid prefix codes")
	ErrNoMatch error = internal.Error("bit sequence matches no prefix code")
)

// Code is a variable-length bit-string. Bits are packed MSB-first into Bits,
// which always holds exactly (Len+7)/8 bytes with the unused low bits cleared.
type Code struct {
	Len  int
	Bits []byte
}

// ParseCode parses a string of '0' and '1' characters.
func ParseCode(s string) (Code, error) {
	c := Code{Len: len(s), Bits: make([]byte, (len(s)+7)/8)}
	for i, r := range s {
		switch r {
		case '0':
		case '1':
			c.Bits[i/8] |= 0x80 >> uint(i%8)
		default:
			return Code{}, ErrInvalid
		}
	}
	return c, nil
}

// MustParseCode is like ParseCode, but panics on invalid input.
func MustParseCode(s string) Code {
	c, err := ParseCode(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Bit reports whether the i-th bit of the code is set.
func (c Code) Bit(i int) bool {
	return c.Bits[i/8]&(0x80>>uint(i%8)) != 0
}

// Append returns a copy of c extended by a single bit.
func (c Code) Append(bit bool) Code {
	n := Code{Len: c.Len + 1, Bits: make([]byte, (c.Len+8)/8)}
	copy(n.Bits, c.Bits)
	if bit {
		n.Bits[c.Len/8] |= 0x80 >> uint(c.Len%8)
	}
	return n
}

// HasPrefix reports whether p is a prefix of c (or equal to it).
func (c Code) HasPrefix(p Code) bool {
	if p.Len > c.Len {
		return false
	}
	for i := 0; i < p.Len; i++ {
		if c.Bit(i) != p.Bit(i) {
			return false
		}
	}
	return true
}

func (c Code) Equal(d Code) bool {
	return c.Len == d.Len && bytes.Equal(c.Bits, d.Bits)
}

func (c Code) String() string {
	var sb strings.Builder
	for i := 0; i < c.Len; i++ {
		if c.Bit(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// Entry pairs a symbol with its code.
type Entry struct {
	Sym  byte
	Code Code
}

func btoi(b bool) int {
	if b {
		return 1
	}
	return 0
}
