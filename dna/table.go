// Copyright 2026, The Nucleo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package dna

import (
	"github.com/nucleo/compress/internal"
	"github.com/nucleo/compress/internal/bitstream"
	"github.com/nucleo/compress/internal/prefix"
)

var errInvalidTable error = Error("code table cannot be encoded")

// WriteTable writes the code table header. Every code is written as its own
// bit group, so it ends with its own pad-count byte.
func WriteTable(w *bitstream.Writer, t *prefix.Table) error {
	entries := t.Entries()
	if len(entries) == 0 || len(entries) > maxSymbols {
		return errInvalidTable
	}
	for _, e := range entries {
		if !IsValid(e.Sym) || e.Code.Len > maxCodeLen {
			return errInvalidTable
		}
	}

	if err := w.WriteByte(byte(len(entries))); err != nil {
		return err
	}
	for _, e := range entries {
		if err := w.WriteByte(e.Sym); err != nil {
			return err
		}
		if err := w.WriteByte(byte(e.Code.Len)); err != nil {
			return err
		}
		if err := w.WriteCode(e.Code); err != nil {
			return err
		}
		if _, err := w.Flush(); err != nil {
			return err
		}
	}
	return nil
}

// ReadTable parses a code table header written by WriteTable.
// A truncated or inconsistent header is reported as ErrCorrupt.
func ReadTable(r *bitstream.Reader) (t *prefix.Table, err error) {
	defer errRecover(&err)

	num := readByte(r)
	internal.Assert(num >= 1 && num <= maxSymbols, ErrCorrupt)

	entries := make([]prefix.Entry, 0, num)
	for i := 0; i < int(num); i++ {
		sym := readByte(r)
		internal.Assert(IsValid(sym), ErrCorrupt)
		n := readByte(r)
		internal.Assert(n > 0, ErrCorrupt)

		code, cerr := r.ReadCode(int(n))
		errCheck(cerr)
		r.Align()
		pads := readByte(r)
		internal.Assert(pads == internal.NumPads(int64(n)), ErrCorrupt)

		entries = append(entries, prefix.Entry{Sym: sym, Code: code})
	}

	t, err = prefix.NewTable(entries)
	internal.Assert(err == nil, ErrCorrupt)
	return t, nil
}

func readByte(r *bitstream.Reader) byte {
	b, err := r.ReadByte()
	errCheck(err)
	return b
}
