// Copyright 2026, The Nucleo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package dna

import "github.com/nucleo/compress/internal/prefix"

// Symbols lists the valid bases in ascending byte order.
const Symbols = "ACGT"

var rankLUT [256]int8

func init() {
	for i := range rankLUT {
		rankLUT[i] = -1
	}
	for i := 0; i < len(Symbols); i++ {
		rankLUT[Symbols[i]] = int8(i)
	}
}

// IsValid reports whether c is one of the bases A, C, G, or T.
// Lowercase bases are not valid.
func IsValid(c byte) bool { return rankLUT[c] >= 0 }

// Filter appends the valid bases of src to dst and returns the result.
func Filter(dst, src []byte) []byte {
	for _, c := range src {
		if rankLUT[c] >= 0 {
			dst = append(dst, c)
		}
	}
	return dst
}

// Frequencies counts the occurrences of each base, indexed by the position
// of the base in Symbols.
type Frequencies [maxSymbols]int64

// Count counts the valid bases in seq. Other bytes are ignored.
func Count(seq []byte) (f Frequencies) {
	f.Add(seq)
	return f
}

// Add counts the valid bases in seq into f.
func (f *Frequencies) Add(seq []byte) {
	for _, c := range seq {
		if r := rankLUT[c]; r >= 0 {
			f[r]++
		}
	}
}

// Get returns the count of base c, which is zero for invalid bytes.
func (f Frequencies) Get(c byte) int64 {
	if r := rankLUT[c]; r >= 0 {
		return f[r]
	}
	return 0
}

func (f Frequencies) Total() (n int64) {
	for _, v := range f {
		n += v
	}
	return n
}

// Distinct reports the number of bases that occur at least once.
func (f Frequencies) Distinct() (n int) {
	for _, v := range f {
		if v > 0 {
			n++
		}
	}
	return n
}

// leaves returns one leaf for every base that occurs.
func (f Frequencies) leaves() []prefix.Leaf {
	var ls []prefix.Leaf
	for i, v := range f {
		if v > 0 {
			ls = append(ls, prefix.Leaf{Sym: Symbols[i], Cnt: v})
		}
	}
	return ls
}
