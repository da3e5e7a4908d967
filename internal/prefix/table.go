// Copyright 2026, The Nucleo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package prefix

import (
	"fmt"
	"sort"
	"strings"
)

// Table is a bijection between symbols and prefix codes.
type Table struct {
	entries []Entry   // Sorted by symbol
	index   [256]int16 // Position in entries plus one; zero if absent

	// Binary decoding trie. Node 0 is the root; since the root is never a
	// child, a child index of 0 means the edge does not exist.
	trie []trieNode
}

type trieNode struct {
	child [2]int32
	sym   int16 // Decoded symbol of a leaf, or -1
}

// NewTable validates the entries and builds a table from them. Every code
// must be non-empty, every symbol must appear once, and no code may be a
// prefix of another.
func NewTable(entries []Entry) (*Table, error) {
	if len(entries) == 0 || len(entries) > 256 {
		return nil, ErrInvalid
	}
	t := &Table{
		entries: append([]Entry(nil), entries...),
		trie:    []trieNode{{sym: -1}},
	}
	sort.Slice(t.entries, func(i, j int) bool { return t.entries[i].Sym < t.entries[j].Sym })
	for i, e := range t.entries {
		if t.index[e.Sym] != 0 || e.Code.Len < 1 || len(e.Code.Bits) != (e.Code.Len+7)/8 {
			return nil, ErrInvalid
		}
		t.index[e.Sym] = int16(i + 1)
		if err := t.insert(e); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func (t *Table) insert(e Entry) error {
	var cur int32
	for i := 0; i < e.Code.Len; i++ {
		if t.trie[cur].sym >= 0 {
			return ErrInvalid // An existing code is a prefix of this one
		}
		b := btoi(e.Code.Bit(i))
		next := t.trie[cur].child[b]
		if next == 0 {
			t.trie = append(t.trie, trieNode{sym: -1})
			next = int32(len(t.trie) - 1)
			t.trie[cur].child[b] = next
		}
		cur = next
	}
	if n := &t.trie[cur]; n.sym >= 0 || n.child != [2]int32{} {
		return ErrInvalid // This code is a prefix of an existing one
	}
	t.trie[cur].sym = int16(e.Sym)
	return nil
}

// Len reports the number of symbols in the table.
func (t *Table) Len() int { return len(t.entries) }

// Entries returns the entries sorted in ascending symbol order.
func (t *Table) Entries() []Entry { return t.entries }

// Lookup returns the code assigned to sym.
func (t *Table) Lookup(sym byte) (Code, bool) {
	i := t.index[sym]
	if i == 0 {
		return Code{}, false
	}
	return t.entries[i-1].Code, true
}

func (t *Table) String() string {
	var ss []string
	for _, e := range t.entries {
		ss = append(ss, fmt.Sprintf("%q:%v", e.Sym, e.Code))
	}
	return "{" + strings.Join(ss, ", ") + "}"
}

// NewDecoder returns a Decoder matching bits against the codes in t.
func (t *Table) NewDecoder() *Decoder {
	return &Decoder{t: t}
}

// Decoder greedily matches a bit sequence, one bit at a time, against the
// codes of a table.
type Decoder struct {
	t   *Table
	cur int32
	n   int
}

// Step consumes the next bit. Once the bits consumed since the last match form
// a complete code, it returns the symbol with ok set and starts over.
// It returns ErrNoMatch if no code starts with the bits consumed.
func (d *Decoder) Step(bit bool) (sym byte, ok bool, err error) {
	next := d.t.trie[d.cur].child[btoi(bit)]
	if next == 0 {
		return 0, false, ErrNoMatch
	}
	if n := &d.t.trie[next]; n.sym >= 0 {
		d.cur, d.n = 0, 0
		return byte(n.sym), true, nil
	}
	d.cur = next
	d.n++
	return 0, false, nil
}

// Pending reports the number of bits consumed that do not yet form a code.
func (d *Decoder) Pending() int { return d.n }

// Reset discards any partially matched code.
func (d *Decoder) Reset() { d.cur, d.n = 0, 0 }
