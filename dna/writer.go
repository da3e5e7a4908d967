// Copyright 2026, The Nucleo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package dna

import (
	"encoding/binary"
	"hash/crc32"
	"io"

	"github.com/dsnet/golib/hashmerge"
	"github.com/nucleo/compress/internal/bitstream"
	"github.com/nucleo/compress/internal/prefix"
)

// Encode encodes the valid bases of text into w.
//
// If text holds no valid base, nothing is written and ErrEmpty is returned
// along with zeroed statistics.
func Encode(w io.Writer, text []byte) (Stats, error) {
	seq := Filter(nil, text)
	return encode(w, seq, crc32.ChecksumIEEE(seq))
}

func encode(w io.Writer, seq []byte, crc uint32) (st Stats, err error) {
	freqs := Count(seq)
	st.Bases = int64(len(seq))
	st.Distinct = freqs.Distinct()
	st.OriginalBits = 8 * st.Bases
	st.Checksum = crc
	if st.Bases == 0 {
		return st, ErrEmpty
	}

	tree, err := prefix.Build(freqs.leaves())
	if err != nil {
		return st, err
	}
	table, err := prefix.NewTable(tree.Codes())
	if err != nil {
		return st, err
	}

	var codes [256]prefix.Code
	for _, e := range table.Entries() {
		codes[e.Sym] = e.Code
		st.PayloadBits += freqs.Get(e.Sym) * int64(e.Code.Len)
	}

	bw := bitstream.NewWriter(w)
	if err := WriteTable(bw, table); err != nil {
		return st, err
	}
	st.HeaderBytes = bw.BytesWritten()

	var buf [countSize]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(st.PayloadBits))
	if _, err := bw.Write(buf[:]); err != nil {
		return st, err
	}
	for _, c := range seq {
		if err := bw.WriteCode(codes[c]); err != nil {
			return st, err
		}
	}
	if st.Pads, err = bw.Flush(); err != nil {
		return st, err
	}
	if err := bw.Close(); err != nil {
		return st, err
	}
	st.TotalBytes = bw.BytesWritten()
	return st, nil
}

// Writer collects bases written to it and encodes them into the underlying
// writer when closed. The whole sequence is held in memory.
type Writer struct {
	wr  io.Writer
	seq []byte // Valid bases written so far
	crc uint32 // CRC-32 of seq
	st  Stats
	err error // Persistent error
}

// NewWriter creates a new Writer.
func NewWriter(w io.Writer) *Writer {
	zw := new(Writer)
	zw.Reset(w)
	return zw
}

// Write filters the valid bases out of buf. It always consumes all of buf.
func (zw *Writer) Write(buf []byte) (int, error) {
	if zw.err != nil {
		return 0, zw.err
	}
	n := len(zw.seq)
	zw.seq = Filter(zw.seq, buf)
	if chunk := zw.seq[n:]; len(chunk) > 0 {
		zw.crc = hashmerge.CombineCRC32(crc32.IEEE, zw.crc, crc32.ChecksumIEEE(chunk), int64(len(chunk)))
	}
	return len(buf), nil
}

// Close encodes the collected bases. It returns ErrEmpty, having written
// nothing, if no valid base was written.
func (zw *Writer) Close() error {
	if zw.err == ErrClosed {
		return nil
	}
	if zw.err != nil {
		return zw.err
	}
	var err error
	zw.st, err = encode(zw.wr, zw.seq, zw.crc)
	zw.err = ErrClosed
	return err
}

// Stats reports the statistics of the encoding performed by Close.
func (zw *Writer) Stats() Stats { return zw.st }

// Reset discards the Writer's state and makes it equivalent to the result of
// NewWriter, but writing to w instead.
func (zw *Writer) Reset(w io.Writer) {
	*zw = Writer{wr: w, seq: zw.seq[:0]}
}
