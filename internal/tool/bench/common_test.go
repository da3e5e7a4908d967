// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bench

import (
	"bytes"
	"hash/crc32"
	"io"
	"testing"

	"github.com/nucleo/compress/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	for _, name := range []string{"dna", "2bit", "std", "kp", "xz"} {
		assert.NotNil(t, Encoders[name], "encoder %s", name)
		assert.NotNil(t, Decoders[name], "decoder %s", name)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, name := range []string{"dna", "2bit", "std", "kp", "xz"} {
		testRoundTrip(t, name, Encoders[name], Decoders[name])
	}
}

func testRoundTrip(t *testing.T, codec string, enc Encoder, dec Decoder) {
	type entry struct {
		name  string // Name of the test
		file  string // The input test file
		level int    // The compression level
		size  int    // The size of the input
	}
	var vectors []entry
	for _, f := range testFiles {
		var l, s int = 6, 1e6
		vectors = append(vectors, entry{getName(f, l, s), f, l, s})
	}

	for i, v := range vectors {
		input := testutil.MustLoadFile("../../../testdata/"+v.file, v.size)
		buf := new(bytes.Buffer)
		wr := enc(buf, v.level)
		_, cpErr := io.Copy(wr, bytes.NewReader(input))
		if err := wr.Close(); err != nil {
			t.Errorf("%s: test %d, %s: unexpected error: %v", codec, i, v.name, err)
			continue
		}
		if cpErr != nil {
			t.Errorf("%s: test %d, %s: unexpected error: %v", codec, i, v.name, cpErr)
			continue
		}

		hash := crc32.NewIEEE()
		rd := dec(buf)
		cnt, cpErr := io.Copy(hash, rd)
		if err := rd.Close(); err != nil {
			t.Errorf("%s: test %d, %s: unexpected error: %v", codec, i, v.name, err)
			continue
		}
		if cpErr != nil {
			t.Errorf("%s: test %d, %s: unexpected error: %v", codec, i, v.name, cpErr)
			continue
		}

		sum := crc32.ChecksumIEEE(input)
		if int(cnt) != len(input) {
			t.Errorf("%s: test %d, %s: mismatching count: got %d, want %d", codec, i, v.name, cnt, len(input))
		}
		if hash.Sum32() != sum {
			t.Errorf("%s: test %d, %s: mismatching checksum: got 0x%08x, want 0x%08x", codec, i, v.name, hash.Sum32(), sum)
		}
	}
}

// TestRatioSuite checks that the nucleotide codec stays within a fixed-length
// 2-bit code on every file and reaches the entropy on skewed.dna.
func TestRatioSuite(t *testing.T) {
	Paths = []string{"../../../testdata"}
	results, names := BenchmarkRatioSuite([]string{"dna", "std"}, testFiles, []int{6}, []int{1e5}, nil)
	require.Len(t, results, len(testFiles))
	require.Len(t, names, len(testFiles))

	for i, row := range results {
		assert.Equal(t, 1.0, row[0].D, "test %d, %s", i, names[i])
		assert.True(t, row[0].R > 3.9, "test %d, %s: ratio %.3f", i, names[i], row[0].R)
		assert.True(t, row[1].R > 0, "test %d, %s", i, names[i])
	}
	assert.Equal(t, "skewed.dna:6:1e5", names[1])
	assert.True(t, results[1][0].R > 8/1.875*0.99, "skewed ratio %.3f", results[1][0].R)
}

func TestPacked(t *testing.T) {
	output, err := Encode([]byte("ACGT\nTGCA\nG"), Encoders["2bit"], 0)
	require.NoError(t, err)
	assert.Equal(t, testutil.MustDecodeHex("0900000000000000"+"1be4"+"80"), output)

	rd := Decoders["2bit"](bytes.NewReader(output))
	got, err := io.ReadAll(rd)
	require.NoError(t, err)
	assert.NoError(t, rd.Close())
	assert.Equal(t, "ACGTTGCAG", string(got))

	rd = Decoders["2bit"](bytes.NewReader(output[:10]))
	_, err = io.ReadAll(rd)
	assert.Equal(t, errPacked, err)
	assert.Equal(t, errPacked, rd.Close())
}

func TestGetName(t *testing.T) {
	var vectors = []struct {
		file  string
		level int
		size  int
		want  string
	}{
		{"../testdata/uniform.dna", 6, 1e4, "uniform.dna:6:1e4"},
		{"skewed.dna", 1, 1e6, "skewed.dna:1:1e6"},
		{"repeats.dna", 3, 1 << 20, "repeats.dna:3:1M"},
		{"repeats.dna", 3, 3 << 10, "repeats.dna:3:3K"},
	}
	for i, v := range vectors {
		if got := getName(v.file, v.level, v.size); got != v.want {
			t.Errorf("test %d, getName() = %q, want %q", i, got, v.want)
		}
	}
}
