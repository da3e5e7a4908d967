// Copyright 2026, The Nucleo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bench

import (
	"bytes"
	"encoding/binary"
	"io"
	"strings"

	"github.com/icza/bitio"
	"github.com/nucleo/compress/dna"
	"github.com/nucleo/compress/internal"
)

// The 2bit codec is the fixed-length baseline for the nucleotide codec.
// Its stream is an 8-byte little-endian base count followed by 2 bits per
// base, MSB-first, in the order of dna.Symbols. The last byte is zero padded.

var errPacked error = internal.Error("2bit: stream is corrupted")

func init() {
	RegisterEncoder("2bit",
		func(w io.Writer, _ int) io.WriteCloser {
			return &packedWriter{w: w}
		})
	RegisterDecoder("2bit",
		func(r io.Reader) io.ReadCloser {
			return &packedReader{r: r}
		})
}

type packedWriter struct {
	w      io.Writer
	seq    []byte
	closed bool
}

func (pw *packedWriter) Write(buf []byte) (int, error) {
	pw.seq = dna.Filter(pw.seq, buf)
	return len(buf), nil
}

func (pw *packedWriter) Close() error {
	if pw.closed {
		return nil
	}
	pw.closed = true

	var cnt [8]byte
	binary.LittleEndian.PutUint64(cnt[:], uint64(len(pw.seq)))
	if _, err := pw.w.Write(cnt[:]); err != nil {
		return err
	}
	bw := bitio.NewWriter(pw.w)
	for _, c := range pw.seq {
		if err := bw.WriteBits(uint64(strings.IndexByte(dna.Symbols, c)), 2); err != nil {
			return err
		}
	}
	return bw.Close()
}

type packedReader struct {
	r    io.Reader
	buf  bytes.Buffer
	done bool
	err  error
}

func (pr *packedReader) Read(buf []byte) (int, error) {
	if pr.err != nil {
		return 0, pr.err
	}
	if !pr.done {
		pr.done = true
		if pr.err = pr.decode(); pr.err != nil {
			return 0, pr.err
		}
	}
	return pr.buf.Read(buf)
}

func (pr *packedReader) decode() error {
	var cnt [8]byte
	if _, err := io.ReadFull(pr.r, cnt[:]); err != nil {
		return errPacked
	}
	n := binary.LittleEndian.Uint64(cnt[:])
	br := bitio.NewReader(pr.r)
	for i := uint64(0); i < n; i++ {
		v, err := br.ReadBits(2)
		if err != nil {
			return errPacked
		}
		pr.buf.WriteByte(dna.Symbols[v])
	}
	return nil
}

func (pr *packedReader) Close() error { return pr.err }
