// Copyright 2026, The Nucleo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package bitstream implements MSB-first bit writers and readers with the
// pad-count convention used by the codec headers and payloads.
//
// A bit group is closed by Writer.Flush, which pads the last partial byte with
// zero bits and then always appends one byte recording how many of those bits
// were padding. Readers use that byte, or a known bit budget, to ignore the
// synthetic bits.
package bitstream

import (
	"io"

	"github.com/icza/bitio"
	"github.com/nucleo/compress/internal"
	"github.com/nucleo/compress/internal/prefix"
)

var ErrMisaligned error = internal.Error("byte access while bits are pending")

type Writer struct {
	bw      *bitio.Writer
	pending uint8 // Number of bits held in the current partial byte
	nbits   int64 // Total number of bits written through WriteBit
	nbytes  int64 // Total number of bytes emitted
}

// NewWriter creates a Writer on top of w. The caller must call Close to push
// buffered bytes into w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{bw: bitio.NewWriter(w)}
}

// BitsWritten reports the number of bits written through WriteBit.
func (w *Writer) BitsWritten() int64 { return w.nbits }

// BytesWritten reports the number of complete bytes produced so far,
// including padded bytes and pad-count bytes.
func (w *Writer) BytesWritten() int64 { return w.nbytes }

// WriteBit appends a single bit. A byte is emitted once 8 bits accumulate.
func (w *Writer) WriteBit(bit bool) error {
	if err := w.bw.WriteBool(bit); err != nil {
		return err
	}
	w.nbits++
	if w.pending++; w.pending == 8 {
		w.pending = 0
		w.nbytes++
	}
	return nil
}

// WriteCode appends every bit of c in order.
func (w *Writer) WriteCode(c prefix.Code) error {
	for i := 0; i < c.Len; i++ {
		if err := w.WriteBit(c.Bit(i)); err != nil {
			return err
		}
	}
	return nil
}

// WriteByte writes a raw byte. The stream must be byte-aligned.
func (w *Writer) WriteByte(b byte) error {
	if w.pending != 0 {
		return ErrMisaligned
	}
	if err := w.bw.WriteByte(b); err != nil {
		return err
	}
	w.nbytes++
	return nil
}

// Write writes raw bytes. The stream must be byte-aligned.
func (w *Writer) Write(buf []byte) (int, error) {
	if w.pending != 0 {
		return 0, ErrMisaligned
	}
	n, err := w.bw.Write(buf)
	w.nbytes += int64(n)
	return n, err
}

// Flush closes the current bit group. Pending bits are shifted up to fill a
// byte, which is written, and then a byte holding the number of padding bits
// is written. With no pending bits, only a zero pad-count byte is written.
func (w *Writer) Flush() (pads uint8, err error) {
	if w.pending > 0 {
		if pads, err = w.bw.Align(); err != nil {
			return 0, err
		}
		w.pending = 0
		w.nbytes++
	}
	if err := w.bw.WriteByte(pads); err != nil {
		return 0, err
	}
	w.nbytes++
	return pads, nil
}

// Close writes out any buffered bytes. It does not write a pad-count byte and
// does not close the underlying writer.
func (w *Writer) Close() error {
	if w.pending != 0 {
		return ErrMisaligned
	}
	return w.bw.Close()
}
