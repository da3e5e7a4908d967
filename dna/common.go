// Copyright 2026, The Nucleo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package dna implements a Huffman codec for nucleotide sequences.
//
// Only the bases A, C, G, and T are encoded; every other byte of the input is
// dropped. The encoded stream has the following layout, with no magic number:
//
//	[1]    symbol count (1..4)
//	per symbol, in ascending byte order:
//	  [1]  symbol byte
//	  [1]  code length in bits (1..255)
//	  [..] code bits, MSB-first, (length+7)/8 bytes
//	  [1]  number of padding bits in the previous byte (0..7)
//	[8]    total payload bits, little-endian
//	[..]   payload bits, MSB-first
//	[1]    number of padding bits in the last payload byte (0..7)
//
// The payload is located through the trailer: it ends right before the last
// byte of the stream and spans (total+pads)/8 bytes, which must begin exactly
// where the total bit count field ends.
//
// An input without any valid base encodes to an empty stream, and an empty
// stream decodes to no bases.
package dna

import (
	"io"
	"runtime"
)

const (
	maxSymbols = 4   // Number of distinct bases
	maxCodeLen = 255 // Largest code length the header can describe
	countSize  = 8   // Size of the total payload bits field
)

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "dna: " + string(e) }

var (
	// ErrCorrupt reports a truncated or malformed header or payload.
	ErrCorrupt error = Error("stream is corrupted")

	// ErrEmpty reports that the input held no valid bases. Nothing is
	// written in that case, and callers may treat it as a soft failure.
	ErrEmpty error = Error("no valid bases in input")

	ErrClosed error = Error("stream is closed")
)

// OpenError reports a file that could not be opened or created.
type OpenError struct {
	Op   string // "open" or "create"
	Path string
	Err  error
}

func (e *OpenError) Error() string { return "dna: " + e.Op + " " + e.Path + ": " + e.Err.Error() }
func (e *OpenError) Unwrap() error { return e.Err }

// errRecover converts a panicked error into a returned error.
// Runtime errors and non-error values are re-panicked.
func errRecover(err *error) {
	switch ex := recover().(type) {
	case nil:
		// Do nothing.
	case runtime.Error:
		panic(ex)
	case error:
		*err = ex
	default:
		panic(ex)
	}
}

// errCheck panics with err, turning an unexpected end of input into
// ErrCorrupt.
func errCheck(err error) {
	switch err {
	case nil:
	case io.EOF, io.ErrUnexpectedEOF:
		panic(ErrCorrupt)
	default:
		panic(err)
	}
}

// Stats describes a single encode or decode operation.
type Stats struct {
	Bases        int64  // Number of bases encoded or decoded
	Distinct     int    // Number of distinct bases
	OriginalBits int64  // Size of the bases as 8-bit characters
	PayloadBits  int64  // Number of meaningful payload bits
	HeaderBytes  int64  // Size of the code table
	TotalBytes   int64  // Size of the encoded stream
	Pads         uint8  // Padding bits in the last payload byte
	Checksum     uint32 // CRC-32 (IEEE) of the bases
}

// Ratio reports the number of bases per encoded byte.
func (s Stats) Ratio() float64 {
	if s.TotalBytes == 0 {
		return 0
	}
	return float64(s.Bases) / float64(s.TotalBytes)
}
