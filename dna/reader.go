// Copyright 2026, The Nucleo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package dna

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"io"

	"github.com/nucleo/compress/internal"
	"github.com/nucleo/compress/internal/bitstream"
)

// Decode decodes the stream held by rs and writes the bases to w.
//
// The code table and the total bit count are parsed from the start of the
// stream, while the padding of the payload is read from its last byte.
// A zero-length stream decodes to no bases.
func Decode(w io.Writer, rs io.ReadSeeker) (st Stats, err error) {
	defer errRecover(&err)

	end, err := rs.Seek(0, io.SeekEnd)
	errCheck(err)
	if end == 0 {
		return st, nil
	}
	_, err = rs.Seek(0, io.SeekStart)
	errCheck(err)

	// Parse the header.
	cr := &countReader{r: rs}
	table, err := ReadTable(bitstream.NewReader(cr, -1))
	errCheck(err)
	st.HeaderBytes = cr.n
	st.Distinct = table.Len()

	var buf [countSize]byte
	_, err = io.ReadFull(cr, buf[:])
	errCheck(err)
	total := binary.LittleEndian.Uint64(buf[:])
	dataStart := cr.n

	// Locate the payload through the trailer.
	_, err = rs.Seek(end-1, io.SeekStart)
	errCheck(err)
	_, err = io.ReadFull(rs, buf[:1])
	errCheck(err)
	pads := buf[0]
	internal.Assert(pads <= 7 && total <= uint64(end)*8, ErrCorrupt)
	internal.Assert((total+uint64(pads))%8 == 0, ErrCorrupt)
	start := end - 1 - int64((total+uint64(pads))/8)
	internal.Assert(start == dataStart, ErrCorrupt)
	_, err = rs.Seek(start, io.SeekStart)
	errCheck(err)

	// Decode the payload.
	var seq []byte
	br := bitstream.NewReader(rs, int64(total))
	dec := table.NewDecoder()
	for {
		bit, err := br.ReadBit()
		if err == io.EOF {
			break
		}
		errCheck(err)
		sym, ok, err := dec.Step(bit)
		internal.Assert(err == nil, ErrCorrupt)
		if ok {
			seq = append(seq, sym)
		}
	}
	internal.Assert(br.BitsRead() == int64(total), ErrCorrupt)
	internal.Assert(dec.Pending() == 0, ErrCorrupt)

	st.Bases = int64(len(seq))
	st.OriginalBits = 8 * st.Bases
	st.PayloadBits = int64(total)
	st.TotalBytes = end
	st.Pads = pads
	st.Checksum = crc32.ChecksumIEEE(seq)
	_, err = w.Write(seq)
	errCheck(err)
	return st, nil
}

// countReader counts the bytes read from r. It reads a single byte at a time
// through ReadByte, so that wrapping it never reads ahead of the header.
type countReader struct {
	r   io.Reader
	n   int64
	buf [1]byte
}

func (cr *countReader) Read(buf []byte) (int, error) {
	n, err := cr.r.Read(buf)
	cr.n += int64(n)
	return n, err
}

func (cr *countReader) ReadByte() (byte, error) {
	if _, err := io.ReadFull(cr.r, cr.buf[:]); err != nil {
		return 0, err
	}
	cr.n++
	return cr.buf[0], nil
}

// Reader decodes a stream on the first call to Read and then serves the
// decoded bases from memory.
type Reader struct {
	rs   io.ReadSeeker
	rd   io.Reader // Source when not seekable
	buf  bytes.Buffer
	st   Stats
	done bool
	err  error // Persistent error
}

// NewReader creates a new Reader. If r does not implement io.Seeker, the
// entire stream is read into memory before decoding.
func NewReader(r io.Reader) *Reader {
	zr := new(Reader)
	zr.Reset(r)
	return zr
}

func (zr *Reader) Read(buf []byte) (int, error) {
	if zr.err != nil {
		return 0, zr.err
	}
	if !zr.done {
		zr.done = true
		if zr.rs == nil {
			b, err := io.ReadAll(zr.rd)
			if err != nil {
				zr.err = err
				return 0, err
			}
			zr.rs = bytes.NewReader(b)
		}
		if zr.st, zr.err = Decode(&zr.buf, zr.rs); zr.err != nil {
			return 0, zr.err
		}
	}
	return zr.buf.Read(buf)
}

// Stats reports the statistics of the decoded stream. It is only valid after
// the first call to Read.
func (zr *Reader) Stats() Stats { return zr.st }

// Close reports any error met while decoding.
func (zr *Reader) Close() error {
	if zr.err == ErrClosed {
		return nil
	}
	err := zr.err
	zr.err = ErrClosed
	return err
}

// Reset discards the Reader's state and makes it equivalent to the result of
// NewReader, but reading from r instead.
func (zr *Reader) Reset(r io.Reader) {
	zr.buf.Reset()
	zr.st, zr.done, zr.err = Stats{}, false, nil
	zr.rs, zr.rd = nil, r
	if rs, ok := r.(io.ReadSeeker); ok {
		zr.rs = rs
	}
}
