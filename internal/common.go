// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package internal is a collection of helpers shared by the codec packages.
//
// For performance reasons, these packages lack strong error checking and
// require that the caller to ensure that strict invariants are kept.
package internal

// Error is the wrapper type for errors specific to this library.
type Error string

func (e Error) Error() string { return "compress: " + string(e) }

// Assert panics with err if cond is false.
func Assert(cond bool, err error) {
	if !cond {
		panic(err)
	}
}

// DivCeil divides n by m and rounds up.
func DivCeil(n, m int64) int64 {
	return (n + m - 1) / m
}

// NumPads computes number of bits needed to pad n-bits to a byte alignment.
func NumPads(n int64) uint8 {
	return uint8(-n & 7)
}
