// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package testutil

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/binary"
)

const bases = "ACGT"

// Rand implements a deterministic pseudo-random number generator.
// This differs from the math.Rand in that the exact output will be consistent
// across different versions of Go.
type Rand struct {
	cipher.Block
	blk [aes.BlockSize]byte
}

func NewRand(seed int) *Rand {
	var key [aes.BlockSize]byte
	binary.LittleEndian.PutUint64(key[:], uint64(seed))
	r, _ := aes.NewCipher(key[:])
	return &Rand{Block: r}
}

func (r *Rand) Int() (x int) {
	r.Encrypt(r.blk[:], r.blk[:])
	x = int(binary.LittleEndian.Uint64(r.blk[:8]) &^ (0xc0 << 56))
	return x
}

func (r *Rand) Intn(n int) int {
	return r.Int() % n
}

func (r *Rand) Bytes(n int) []byte {
	b := make([]byte, n)
	bb := b
	for len(bb) > 0 {
		r.Encrypt(r.blk[:], r.blk[:])
		cnt := copy(bb, r.blk[:])
		bb = bb[cnt:]
	}
	return b
}

// Bases returns n bases drawn from A, C, G, T with the given relative weights.
// A nil weights slice draws uniformly. Bases with a zero weight never appear.
func (r *Rand) Bases(n int, weights []int) []byte {
	if weights == nil {
		weights = []int{1, 1, 1, 1}
	}
	var total int
	for _, w := range weights[:len(bases)] {
		total += w
	}
	b := make([]byte, n)
	for i := range b {
		v := r.Intn(total)
		for j, w := range weights[:len(bases)] {
			if v < w {
				b[i] = bases[j]
				break
			}
			v -= w
		}
	}
	return b
}

// Noise interleaves bytes that are not bases (line breaks, lowercase letters,
// digits, and 'N') into seq at random positions, roughly one per ratio bytes.
func (r *Rand) Noise(seq []byte, ratio int) []byte {
	const junk = "\n\r acgtnN0123456789>|-xyz"
	out := make([]byte, 0, len(seq)+len(seq)/ratio+1)
	for _, c := range seq {
		if r.Intn(ratio) == 0 {
			out = append(out, junk[r.Intn(len(junk))])
		}
		out = append(out, c)
	}
	return out
}
