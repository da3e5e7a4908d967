// Copyright 2016, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bench

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"testing"

	"github.com/nucleo/compress/internal/testutil"
)

var testFiles = []string{"uniform.dna", "skewed.dna", "repeats.dna"}

// TestCodecs tests that the output of each registered encoder is decoded back
// by the decoder registered under the same name.
func TestCodecs(t *testing.T) {
	for _, fl := range testFiles {
		dd := testutil.MustLoadFile(filepath.Join("../../../testdata", fl), 1e5)
		t.Run(fmt.Sprintf("File:%v", fl), func(t *testing.T) { testCodecs(t, dd) })
	}
}

func testCodecs(t *testing.T, dd []byte) {
	t.Parallel()
	const level = 6 // Default compression on all encoders
	for name := range Encoders {
		name := name
		if Decoders[name] == nil {
			continue
		}
		t.Run(fmt.Sprintf("Codec:%v", name), func(t *testing.T) {
			be := new(bytes.Buffer)
			zw := Encoders[name](be, level)
			if _, err := io.Copy(zw, bytes.NewReader(dd)); err != nil {
				t.Fatalf("unexpected Write error: %v", err)
			}
			if err := zw.Close(); err != nil {
				t.Fatalf("unexpected Close error: %v", err)
			}

			bd := new(bytes.Buffer)
			zr := Decoders[name](bytes.NewReader(be.Bytes()))
			if _, err := io.Copy(bd, zr); err != nil {
				t.Fatalf("unexpected Read error: %v", err)
			}
			if err := zr.Close(); err != nil {
				t.Fatalf("unexpected Close error: %v", err)
			}
			if !bytes.Equal(bd.Bytes(), dd) {
				t.Error("data mismatch")
			}
		})
	}
}
