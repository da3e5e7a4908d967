// Copyright 2026, The Nucleo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package prefix

import (
	"container/heap"
	"sort"
)

// Leaf is a symbol together with its occurrence count.
type Leaf struct {
	Sym byte
	Cnt int64
}

// A tree node. Leaves have child[0] == child[1] == noChild.
type node struct {
	sym   byte  // Symbol of a leaf
	min   byte  // Smallest symbol in this subtree
	cnt   int64 // Sum of the counts of all leaves below
	child [2]int32
}

const noChild = -1

func (n *node) isLeaf() bool { return n.child[0] == noChild }

// Tree is a Huffman tree held in a single arena. Nodes refer to their children
// by index, so discarding the tree is just dropping the slice.
type Tree struct {
	nodes []node
	root  int32
}

// Build constructs a Huffman tree from the given leaves. Each symbol may appear
// at most once and counts must be non-negative.
//
// Nodes are merged lowest count first. Equal counts are ordered by the lowest
// symbol held in each subtree, which makes the resulting codes independent of
// the order of leaves. The first node taken off the queue becomes the 0-child.
func Build(leaves []Leaf) (*Tree, error) {
	if len(leaves) == 0 || len(leaves) > 256 {
		return nil, ErrInvalid
	}

	t := &Tree{nodes: make([]node, 0, 2*len(leaves)-1)}
	var seen [256]bool
	for _, l := range leaves {
		if l.Cnt < 0 || seen[l.Sym] {
			return nil, ErrInvalid
		}
		seen[l.Sym] = true
		t.nodes = append(t.nodes, node{
			sym: l.Sym, min: l.Sym, cnt: l.Cnt,
			child: [2]int32{noChild, noChild},
		})
	}

	q := &nodeQueue{t: t, idxs: make([]int32, len(leaves))}
	for i := range q.idxs {
		q.idxs[i] = int32(i)
	}
	heap.Init(q)
	for q.Len() > 1 {
		i0 := heap.Pop(q).(int32)
		i1 := heap.Pop(q).(int32)
		n0, n1 := t.nodes[i0], t.nodes[i1]
		min := n0.min
		if n1.min < min {
			min = n1.min
		}
		t.nodes = append(t.nodes, node{
			min: min, cnt: n0.cnt + n1.cnt,
			child: [2]int32{i0, i1},
		})
		heap.Push(q, int32(len(t.nodes)-1))
	}
	t.root = heap.Pop(q).(int32)
	return t, nil
}

// NumNodes reports the number of nodes in the tree.
func (t *Tree) NumNodes() int { return len(t.nodes) }

// Codes walks the tree in pre-order and returns the code of every leaf, with
// '0' for the left edge and '1' for the right edge. The result is sorted by
// symbol. A tree made of a single leaf assigns the code "0".
func (t *Tree) Codes() []Entry {
	if len(t.nodes) == 0 {
		return nil
	}
	if n := &t.nodes[t.root]; n.isLeaf() {
		return []Entry{{Sym: n.sym, Code: Code{Len: 1, Bits: []byte{0}}}}
	}

	type frame struct {
		idx  int32
		code Code
	}
	var entries []Entry
	stack := []frame{{idx: t.root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := &t.nodes[f.idx]
		if n.isLeaf() {
			entries = append(entries, Entry{Sym: n.sym, Code: f.code})
			continue
		}
		stack = append(stack,
			frame{n.child[1], f.code.Append(true)},
			frame{n.child[0], f.code.Append(false)},
		)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Sym < entries[j].Sym })
	return entries
}

// nodeQueue is a min-heap of node indices.
type nodeQueue struct {
	t    *Tree
	idxs []int32
}

func (q *nodeQueue) Len() int { return len(q.idxs) }
func (q *nodeQueue) Less(i, j int) bool {
	a, b := &q.t.nodes[q.idxs[i]], &q.t.nodes[q.idxs[j]]
	if a.cnt != b.cnt {
		return a.cnt < b.cnt
	}
	if a.min != b.min {
		return a.min < b.min
	}
	return q.idxs[i] < q.idxs[j]
}
func (q *nodeQueue) Swap(i, j int)      { q.idxs[i], q.idxs[j] = q.idxs[j], q.idxs[i] }
func (q *nodeQueue) Push(x interface{}) { q.idxs = append(q.idxs, x.(int32)) }
func (q *nodeQueue) Pop() interface{} {
	n := len(q.idxs)
	x := q.idxs[n-1]
	q.idxs = q.idxs[:n-1]
	return x
}
