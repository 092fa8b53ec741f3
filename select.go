package huffman

import (
	"container/heap"

	"github.com/chronos-tachyon/assert"
)

// mergeByScan fills each internal node i by scanning [0, i) for the two
// lightest nodes.  The first one found becomes the left child.  Strict
// comparisons mean that on a tie the lower index wins.
//
// If skipParented is false, nodes that were already merged stay eligible.
// That is the ScanAll behavior.
//
func (t *Tree[S]) mergeByScan(skipParented bool) {
	for i := t.numInit; i < len(t.nodes); i++ {
		a, b := t.findMin2(i, skipParented)
		if !skipParented {
			t.warnIfStale(i, a)
			t.warnIfStale(i, b)
		}
		t.link(i, a, b)
	}
}

func (t *Tree[S]) findMin2(end int, skipParented bool) (int, int) {
	first, second := NoNode, NoNode
	for i := 0; i < end; i++ {
		node := &t.nodes[i]
		if skipParented && node.Parent != NoNode {
			continue
		}
		if first == NoNode || node.Weight < t.nodes[first].Weight {
			second = first
			first = i
		} else if second == NoNode || node.Weight < t.nodes[second].Weight {
			second = i
		}
	}
	assert.Assertf(first != NoNode && second != NoNode, "fewer than two candidates in [0, %d)", end)
	return first, second
}

func (t *Tree[S]) warnIfStale(i, child int) {
	if parent := t.nodes[child].Parent; parent != NoNode {
		log.Warningf("node %d re-merged into %d (was child of %d)", child, i, parent)
	}
}

// mergeByHeap fills the internal nodes by repeatedly popping the two
// lightest unmerged nodes from a min-heap and pushing their parent back.
func (t *Tree[S]) mergeByHeap() {
	h := weightHeap{list: make([]indexAndWeight, 0, t.numInit)}
	for i := 0; i < t.numInit; i++ {
		h.list = append(h.list, indexAndWeight{i, t.nodes[i].Weight})
	}
	h.Init()

	for i := t.numInit; i < len(t.nodes); i++ {
		a := heap.Pop(&h).(indexAndWeight)
		b := heap.Pop(&h).(indexAndWeight)
		t.link(i, a.index, b.index)
		heap.Push(&h, indexAndWeight{i, t.nodes[i].Weight})
	}
	assert.Assertf(h.Len() == 1, "heap holds %d nodes after merging, expected 1", h.Len())
}

// type indexAndWeight + type weightHeap {{{

type indexAndWeight struct {
	index  int
	weight uint64
}

type weightHeap struct {
	list []indexAndWeight
}

func (h *weightHeap) Init() {
	heap.Init(h)
}

func (h *weightHeap) Len() int {
	return len(h.list)
}

func (h *weightHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *weightHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.weight != b.weight {
		return a.weight < b.weight
	}
	return a.index < b.index
}

func (h *weightHeap) Push(x interface{}) {
	h.list = append(h.list, x.(indexAndWeight))
}

func (h *weightHeap) Pop() interface{} {
	last := len(h.list) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*weightHeap)(nil)

// }}}
