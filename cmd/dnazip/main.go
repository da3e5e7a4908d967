// Copyright 2026, The Nucleo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Command dnazip compresses nucleotide sequences with a Huffman code.
//
// Usage:
//
//	dnazip <mode> <input> <output>
//
// The mode is either compactar (alias compress), which encodes the bases
// A, C, G, and T found in a text file, or descompactar (alias decompress),
// which restores them. Other bytes of the input are dropped.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/nucleo/compress/dna"
)

const usage = "usage: dnazip <compactar|descompactar> <input> <output>"

var modes = map[string]func(in, out string) (dna.Stats, error){
	"compactar":    dna.CompressFile,
	"compress":     dna.CompressFile,
	"descompactar": dna.DecompressFile,
	"decompress":   dna.DecompressFile,
}

func main() {
	logger := log.New(os.Stderr, "dnazip: ", 0)
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()
	os.Exit(run(flag.Args(), os.Stdout, logger))
}

// run executes a single command and returns the process exit code.
func run(args []string, stdout io.Writer, logger *log.Logger) int {
	if len(args) != 3 {
		logger.Print(usage)
		return 1
	}
	mode, in, out := args[0], args[1], args[2]
	fn, ok := modes[mode]
	if !ok {
		logger.Printf("invalid mode %q: use compactar or descompactar", mode)
		return 1
	}

	st, err := fn(in, out)
	var oe *dna.OpenError
	switch {
	case err == dna.ErrEmpty:
		logger.Printf("%s: no valid bases; wrote empty %s", in, out)
		return 0
	case errors.As(err, &oe):
		logger.Printf("cannot %s %s: %v", oe.Op, oe.Path, oe.Err)
		return 1
	case err != nil:
		logger.Printf("%s: %v", in, err)
		return 1
	}

	if mode == "compactar" || mode == "compress" {
		fmt.Fprintf(stdout, "compressed %s into %s\n", in, out)
		fmt.Fprintf(stdout, "original size:   %d bits (%d bases)\n", st.OriginalBits, st.Bases)
		fmt.Fprintf(stdout, "payload size:    %d bits\n", st.PayloadBits)
		fmt.Fprintf(stdout, "header size:     %d bytes\n", st.HeaderBytes)
		fmt.Fprintf(stdout, "output size:     %d bytes (%.3f bases/byte)\n", st.TotalBytes, st.Ratio())
	} else {
		fmt.Fprintf(stdout, "decompressed %s into %s\n", in, out)
		fmt.Fprintf(stdout, "bases:           %d\n", st.Bases)
	}
	fmt.Fprintf(stdout, "crc32:           %08x\n", st.Checksum)
	return 0
}
