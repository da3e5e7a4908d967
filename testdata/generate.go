// Copyright 2026, The Nucleo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build ignore
// +build ignore

// Generates the nucleotide test files.
//
// uniform.dna holds bases drawn uniformly, which no prefix code can encode
// below 2 bits per base. skewed.dna draws from a fixed 8:4:2:1 distribution,
// whose Huffman codes reach the entropy exactly. repeats.dna copies segments
// from some distance ago, which favors LZ77 based compression while the base
// frequencies stay nearly uniform.
package main

import (
	"math/rand"
	"os"
)

const size = 1 << 18

const bases = "ACGT"

func main() {
	r := rand.New(rand.NewSource(0))
	write("uniform.dna", genWeighted(r, []int{1, 1, 1, 1}))
	write("skewed.dna", genWeighted(r, []int{8, 4, 2, 1}))
	write("repeats.dna", genRepeats(r))
}

func write(name string, b []byte) {
	if err := os.WriteFile(name, b[:size], 0664); err != nil {
		panic(err)
	}
}

func genWeighted(r *rand.Rand, weights []int) []byte {
	var total int
	for _, w := range weights {
		total += w
	}
	b := make([]byte, size)
	for i := range b {
		v := r.Intn(total)
		for j, w := range weights {
			if v < w {
				b[i] = bases[j]
				break
			}
			v -= w
		}
	}
	return b
}

func genRepeats(r *rand.Rand) []byte {
	var b []byte

	randLen := func() int {
		p := r.Float32()
		switch {
		case p <= 0.25: // 4..16
			return 4 + r.Intn(12)
		case p <= 0.50: // 16..64
			return 16 + r.Intn(48)
		case p <= 0.85: // 64..256
			return 64 + r.Intn(192)
		default: // 256..1024
			return 256 + r.Intn(768)
		}
	}

	randDist := func() (d int) {
		for d == 0 || d > len(b) {
			p := r.Float32()
			switch {
			case p <= 0.2: // 1..16
				d = 1 + r.Intn(15)
			case p <= 0.5: // 16..1024
				d = 16 + r.Intn(1008)
			default: // 1024..32768
				d = 1024 + r.Intn(31744)
			}
		}
		return d
	}

	writeRand := func(l int) {
		for i := 0; i < l; i++ {
			b = append(b, bases[r.Intn(len(bases))])
		}
	}

	// Copies may mutate a base, the way repeated regions diverge.
	writeCopy := func(d, l int) {
		for i := 0; i < l; i++ {
			c := b[len(b)-d]
			if r.Intn(50) == 0 {
				c = bases[r.Intn(len(bases))]
			}
			b = append(b, c)
		}
	}

	writeRand(randLen())
	for len(b) < size {
		if r.Float32() <= 0.2 {
			writeRand(randLen())
		} else {
			writeCopy(randDist(), randLen())
		}
	}
	return b
}
