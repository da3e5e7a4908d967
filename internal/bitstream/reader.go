// Copyright 2026, The Nucleo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bitstream

import (
	"io"

	"github.com/icza/bitio"
	"github.com/nucleo/compress/internal/prefix"
)

type Reader struct {
	br     *bitio.Reader
	budget int64 // Number of meaningful bits; negative if unbounded
	nbits  int64 // Number of bits returned by ReadBit
}

// NewReader creates a Reader that returns at most budget bits from r.
// A negative budget places no limit on the bits read.
//
// If r is not an io.ByteReader, it is wrapped in a bufio.Reader, which may
// read ahead of the bits actually consumed.
func NewReader(r io.Reader, budget int64) *Reader {
	return &Reader{br: bitio.NewReader(r), budget: budget}
}

// BitsRead reports the number of bits returned by ReadBit.
func (r *Reader) BitsRead() int64 { return r.nbits }

// ReadBit reads the next bit, MSB-first within each byte. It returns io.EOF
// once the bit budget is exhausted or the source has no more bytes.
func (r *Reader) ReadBit() (bool, error) {
	if r.budget >= 0 && r.nbits >= r.budget {
		return false, io.EOF
	}
	bit, err := r.br.ReadBool()
	if err != nil {
		return false, err
	}
	r.nbits++
	return bit, nil
}

// ReadCode reads n bits into a code.
func (r *Reader) ReadCode(n int) (prefix.Code, error) {
	c := prefix.Code{Len: n, Bits: make([]byte, (n+7)/8)}
	for i := 0; i < n; i++ {
		bit, err := r.ReadBit()
		if err != nil {
			return prefix.Code{}, err
		}
		if bit {
			c.Bits[i/8] |= 0x80 >> uint(i%8)
		}
	}
	return c, nil
}

// Align discards the remaining bits of the current byte and reports how many
// bits were skipped.
func (r *Reader) Align() uint8 {
	return r.br.Align()
}

// ReadByte reads a raw byte. It does not count against the bit budget.
func (r *Reader) ReadByte() (byte, error) {
	return r.br.ReadByte()
}

// Read reads raw bytes. It does not count against the bit budget.
func (r *Reader) Read(buf []byte) (int, error) {
	return r.br.Read(buf)
}
