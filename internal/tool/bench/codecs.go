// Copyright 2026, The Nucleo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bench

import (
	"compress/flate"
	"io"

	kpflate "github.com/klauspost/compress/flate"
	"github.com/nucleo/compress/dna"
	"github.com/ulikunitz/xz"
)

func init() {
	RegisterEncoder("dna",
		func(w io.Writer, _ int) io.WriteCloser {
			return dna.NewWriter(w)
		})
	RegisterDecoder("dna",
		func(r io.Reader) io.ReadCloser {
			return dna.NewReader(r)
		})

	RegisterEncoder("std",
		func(w io.Writer, lvl int) io.WriteCloser {
			zw, err := flate.NewWriter(w, lvl)
			if err != nil {
				panic(err)
			}
			return zw
		})
	RegisterDecoder("std",
		func(r io.Reader) io.ReadCloser {
			return flate.NewReader(r)
		})

	RegisterEncoder("kp",
		func(w io.Writer, lvl int) io.WriteCloser {
			zw, err := kpflate.NewWriter(w, lvl)
			if err != nil {
				panic(err)
			}
			return zw
		})
	RegisterDecoder("kp",
		func(r io.Reader) io.ReadCloser {
			return kpflate.NewReader(r)
		})

	// The xz format has no compression levels.
	RegisterEncoder("xz",
		func(w io.Writer, _ int) io.WriteCloser {
			zw, err := xz.NewWriter(w)
			if err != nil {
				panic(err)
			}
			return zw
		})
	RegisterDecoder("xz",
		func(r io.Reader) io.ReadCloser {
			zr, err := xz.NewReader(r)
			if err != nil {
				return errReader{err}
			}
			return io.NopCloser(zr)
		})
}

// errReader reports err on every call. xz reads the stream header eagerly,
// so a bad header is only reported once the caller starts reading.
type errReader struct{ err error }

func (r errReader) Read([]byte) (int, error) { return 0, r.err }
func (r errReader) Close() error             { return r.err }
