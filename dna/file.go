// Copyright 2026, The Nucleo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package dna

import (
	"bufio"
	"io"
	"os"
)

// CompressFile encodes the bases held in the text file src into dst.
// The destination is created even when src holds no valid base, in which case
// it is left empty and ErrEmpty is returned.
func CompressFile(src, dst string) (st Stats, err error) {
	in, err := os.Open(src)
	if err != nil {
		return st, &OpenError{Op: "open", Path: src, Err: err}
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return st, &OpenError{Op: "create", Path: dst, Err: err}
	}
	defer func() {
		if cerr := out.Close(); err == nil || err == ErrEmpty {
			if cerr != nil {
				err = cerr
			}
		}
	}()

	text, err := io.ReadAll(in)
	if err != nil {
		return st, err
	}
	bw := bufio.NewWriter(out)
	if st, err = Encode(bw, text); err != nil {
		return st, err
	}
	return st, bw.Flush()
}

// DecompressFile decodes the stream held in src and writes the bases to dst.
func DecompressFile(src, dst string) (st Stats, err error) {
	in, err := os.Open(src)
	if err != nil {
		return st, &OpenError{Op: "open", Path: src, Err: err}
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return st, &OpenError{Op: "create", Path: dst, Err: err}
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	bw := bufio.NewWriter(out)
	if st, err = Decode(bw, in); err != nil {
		return st, err
	}
	return st, bw.Flush()
}
