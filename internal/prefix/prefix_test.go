// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package prefix

import (
	"math"
	"testing"

	"github.com/nucleo/compress/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func codeMap(entries []Entry) map[byte]string {
	m := make(map[byte]string)
	for _, e := range entries {
		m[e.Sym] = e.Code.String()
	}
	return m
}

func TestCode(t *testing.T) {
	c := MustParseCode("1011001110")
	assert.Equal(t, 10, c.Len)
	assert.Equal(t, []byte{0xb3, 0x80}, c.Bits)
	assert.Equal(t, "1011001110", c.String())
	assert.True(t, c.HasPrefix(MustParseCode("1011")))
	assert.True(t, c.HasPrefix(c))
	assert.False(t, c.HasPrefix(MustParseCode("11")))
	assert.False(t, MustParseCode("10").HasPrefix(c))

	d := c.Append(true)
	assert.Equal(t, "10110011101", d.String())
	assert.Equal(t, "1011001110", c.String(), "Append must not modify the receiver")
	assert.True(t, d.Equal(MustParseCode("10110011101")))
	assert.False(t, d.Equal(c))

	_, err := ParseCode("01x")
	assert.Equal(t, ErrInvalid, err)
}

func TestBuild(t *testing.T) {
	var vectors = []struct {
		desc   string
		leaves []Leaf
		codes  map[byte]string
	}{{
		desc:   "single symbol",
		leaves: []Leaf{{'G', 4}},
		codes:  map[byte]string{'G': "0"},
	}, {
		desc:   "two symbols",
		leaves: []Leaf{{'T', 5}, {'A', 1}},
		codes:  map[byte]string{'A': "0", 'T': "1"},
	}, {
		desc:   "three symbols with tied counts",
		leaves: []Leaf{{'A', 1}, {'C', 1}, {'G', 2}},
		codes:  map[byte]string{'A': "00", 'C': "01", 'G': "1"},
	}, {
		desc:   "four symbols, uniform",
		leaves: []Leaf{{'A', 1}, {'C', 1}, {'G', 1}, {'T', 1}},
		codes:  map[byte]string{'A': "00", 'C': "01", 'G': "10", 'T': "11"},
	}, {
		desc:   "four symbols, skewed",
		leaves: []Leaf{{'A', 4}, {'C', 2}, {'G', 2}, {'T', 1}},
		codes:  map[byte]string{'A': "0", 'G': "10", 'T': "110", 'C': "111"},
	}, {
		desc:   "zero counts",
		leaves: []Leaf{{'A', 0}, {'C', 0}},
		codes:  map[byte]string{'A': "0", 'C': "1"},
	}}

	for i, v := range vectors {
		tree, err := Build(v.leaves)
		require.NoError(t, err, "test %d, %s", i, v.desc)
		if got, want := tree.NumNodes(), 2*len(v.leaves)-1; got != want {
			t.Errorf("test %d, %s: node count mismatch: got %d, want %d", i, v.desc, got, want)
		}
		assert.Equal(t, v.codes, codeMap(tree.Codes()), "test %d, %s", i, v.desc)
	}
}

func TestBuildOrderIndependent(t *testing.T) {
	leaves := []Leaf{{'A', 7}, {'C', 7}, {'G', 3}, {'T', 3}}
	tree, err := Build(leaves)
	require.NoError(t, err)
	want := codeMap(tree.Codes())

	for _, perm := range [][]int{{3, 2, 1, 0}, {1, 3, 0, 2}, {2, 0, 3, 1}} {
		var ls []Leaf
		for _, i := range perm {
			ls = append(ls, leaves[i])
		}
		tree, err := Build(ls)
		require.NoError(t, err)
		assert.Equal(t, want, codeMap(tree.Codes()), "permutation %v", perm)
	}
}

func TestBuildInvalid(t *testing.T) {
	var vectors = [][]Leaf{
		nil,
		{{'A', 1}, {'A', 2}},
		{{'A', -1}},
	}
	for i, v := range vectors {
		_, err := Build(v)
		assert.Equal(t, ErrInvalid, err, "test %d", i)
	}
}

// TestBuildRandom checks that generated codes always form a complete
// prefix-free set and that their weighted length matches the tree weight.
func TestBuildRandom(t *testing.T) {
	rand := testutil.NewRand(0)
	for i := 0; i < 200; i++ {
		n := 1 + rand.Intn(64)
		if i < 100 {
			n = 1 + i%4
		}
		var leaves []Leaf
		seen := make(map[byte]bool)
		for len(leaves) < n {
			sym := byte(rand.Intn(256))
			if seen[sym] {
				continue
			}
			seen[sym] = true
			leaves = append(leaves, Leaf{Sym: sym, Cnt: int64(1 + rand.Intn(1000))})
		}

		tree, err := Build(leaves)
		require.NoError(t, err, "test %d", i)
		entries := tree.Codes()
		require.Len(t, entries, n, "test %d", i)

		table, err := NewTable(entries)
		require.NoError(t, err, "test %d: codes are not prefix-free", i)
		assert.Equal(t, n, table.Len(), "test %d", i)

		var kraft float64
		for _, e := range entries {
			assert.True(t, e.Code.Len >= 1, "test %d: empty code", i)
			kraft += math.Ldexp(1, -e.Code.Len)
		}
		if n > 1 && kraft != 1 {
			t.Errorf("test %d: incomplete code: Kraft sum %v", i, kraft)
		}
	}
}

func TestNewTableInvalid(t *testing.T) {
	var vectors = []struct {
		desc    string
		entries []Entry
	}{{
		desc: "no entries",
	}, {
		desc:    "empty code",
		entries: []Entry{{Sym: 'A', Code: Code{}}},
	}, {
		desc:    "duplicate symbol",
		entries: []Entry{{'A', MustParseCode("0")}, {'A', MustParseCode("1")}},
	}, {
		desc:    "duplicate code",
		entries: []Entry{{'A', MustParseCode("01")}, {'C', MustParseCode("01")}},
	}, {
		desc:    "shorter code first",
		entries: []Entry{{'A', MustParseCode("0")}, {'C', MustParseCode("01")}},
	}, {
		desc:    "longer code first",
		entries: []Entry{{'A', MustParseCode("110")}, {'C', MustParseCode("11")}},
	}, {
		desc:    "malformed bits",
		entries: []Entry{{'A', Code{Len: 9, Bits: []byte{0}}}},
	}}

	for i, v := range vectors {
		_, err := NewTable(v.entries)
		assert.Equal(t, ErrInvalid, err, "test %d, %s", i, v.desc)
	}
}

func TestTableLookup(t *testing.T) {
	table, err := NewTable([]Entry{
		{'T', MustParseCode("111")},
		{'A', MustParseCode("0")},
		{'G', MustParseCode("10")},
		{'C', MustParseCode("110")},
	})
	require.NoError(t, err)

	var syms []byte
	for _, e := range table.Entries() {
		syms = append(syms, e.Sym)
	}
	assert.Equal(t, "ACGT", string(syms))

	c, ok := table.Lookup('C')
	assert.True(t, ok)
	assert.Equal(t, "110", c.String())
	_, ok = table.Lookup('N')
	assert.False(t, ok)
	assert.Equal(t, `{'A':0, 'C':110, 'G':10, 'T':111}`, table.String())
}

func TestDecoder(t *testing.T) {
	table, err := NewTable([]Entry{
		{'A', MustParseCode("0")},
		{'G', MustParseCode("10")},
		{'T', MustParseCode("110")},
		{'C', MustParseCode("111")},
	})
	require.NoError(t, err)

	bits := MustParseCode("0" + "0" + "111" + "10" + "110" + "0" + "11")
	dec := table.NewDecoder()
	var out []byte
	for i := 0; i < bits.Len; i++ {
		sym, ok, err := dec.Step(bits.Bit(i))
		require.NoError(t, err)
		if ok {
			out = append(out, sym)
		}
	}
	assert.Equal(t, "AACGTA", string(out))
	assert.Equal(t, 2, dec.Pending())
	dec.Reset()
	assert.Equal(t, 0, dec.Pending())

	// A single code of "0" never matches a '1' bit.
	single, err := NewTable([]Entry{{'G', MustParseCode("0")}})
	require.NoError(t, err)
	dec = single.NewDecoder()
	sym, ok, err := dec.Step(false)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, byte('G'), sym)
	_, _, err = dec.Step(true)
	assert.Equal(t, ErrNoMatch, err)
}
