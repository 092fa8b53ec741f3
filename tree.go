package huffman

import (
	"bytes"
	"cmp"
	"fmt"
	"io"
	"maps"

	"github.com/chronos-tachyon/assert"
	"github.com/op/go-logging"
)

// Node is one entry of the flat tree array.
type Node[S cmp.Ordered] struct {
	// Index is the position of this node in the tree array.
	Index int

	// Symbol and HasSymbol are only set for leaves.
	Symbol    S
	HasSymbol bool

	// Weight is the input weight for a leaf, or the saturating sum of the
	// children's weights for an internal node.
	Weight uint64

	// Parent, Left and Right are tree array indices, or NoNode.
	Parent int
	Left   int
	Right  int

	// Code is the path from the root to this node, '0' for each left edge
	// and '1' for each right edge.
	Code Code
}

// IsLeaf reports whether this node came from an input entry.
func (node Node[S]) IsLeaf() bool {
	return node.HasSymbol
}

// Leaf describes one input entry and the code it was assigned.
type Leaf[S cmp.Ordered] struct {
	Symbol S
	Weight uint64
	Code   Code
}

// Tree is a Huffman tree built by Build.  It is immutable once built.
type Tree[S cmp.Ordered] struct {
	nodes    []Node[S]
	codes    map[S]Code
	numInit  int
	numInput int
}

// Build constructs a Huffman tree from a list of weighted symbols.  The
// input slice is not modified.
//
// An empty list yields an empty tree with no codes.  A list with a single
// distinct entry yields a tree whose only leaf has the empty code; encoders
// that need at least one bit per symbol must handle that case themselves.
//
func Build[S cmp.Ordered](entries []Entry[S], opts ...Option) *Tree[S] {
	o := buildOptions(opts)
	list := Normalize(entries, o.normalization)

	t := &Tree[S]{codes: make(map[S]Code, len(list))}
	if len(list) == 0 {
		return t
	}

	t.numInit = len(list)
	t.numInput = len(list)
	t.alloc(list)

	switch o.selection {
	case ScanAll:
		t.mergeByScan(false)
	case PriorityQueue:
		t.mergeByHeap()
	default:
		t.mergeByScan(true)
	}

	t.assignCodes()
	t.collectCodes()
	return t
}

// alloc creates the 2n-1 node array, with the leaves in [0, n) and blank
// internal nodes in [n, 2n-1).
func (t *Tree[S]) alloc(list []Entry[S]) {
	t.nodes = make([]Node[S], 2*len(list)-1)
	for i := range t.nodes {
		t.nodes[i] = Node[S]{Index: i, Parent: NoNode, Left: NoNode, Right: NoNode}
	}
	for i, e := range list {
		node := &t.nodes[i]
		node.Symbol = e.Symbol
		node.HasSymbol = true
		node.Weight = e.Weight
	}
}

// link makes nodes a and b the left and right children of node i.
func (t *Tree[S]) link(i, a, b int) {
	assert.Assertf(a < i && b < i, "children %d, %d must precede parent %d", a, b, i)
	assert.Assertf(a != b, "cannot merge node %d with itself", a)

	left, right, parent := &t.nodes[a], &t.nodes[b], &t.nodes[i]
	parent.Weight = saturatingAdd(left.Weight, right.Weight)
	parent.Left = a
	parent.Right = b
	left.Parent = i
	right.Parent = i

	if log.IsEnabledFor(logging.DEBUG) {
		log.Debugf("merge %d + %d -> %d (weight %d + %d = %d)", a, b, i, left.Weight, right.Weight, parent.Weight)
	}
}

// assignCodes walks the tree breadth-first from the root, extending each
// child's code by one bit.
func (t *Tree[S]) assignCodes() {
	queue := make([]int, 0, len(t.nodes))
	queue = append(queue, len(t.nodes)-1)
	for len(queue) != 0 {
		curr := &t.nodes[queue[0]]
		queue = queue[1:]
		if curr.Left != NoNode {
			t.nodes[curr.Left].Code = curr.Code.Append(false)
			queue = append(queue, curr.Left)
		}
		if curr.Right != NoNode {
			t.nodes[curr.Right].Code = curr.Code.Append(true)
			queue = append(queue, curr.Right)
		}
	}
}

func (t *Tree[S]) collectCodes() {
	for _, node := range t.nodes[:t.numInput] {
		assert.Assertf(node.HasSymbol, "node %d in leaf range has no symbol", node.Index)
		t.codes[node.Symbol] = node.Code
	}
}

// Len returns the number of leaves, i.e. the number of distinct entries
// after normalization.
func (t *Tree[S]) Len() int {
	return t.numInput
}

// NumNodes returns the size of the tree array: 2*Len()-1, or 0 if empty.
func (t *Tree[S]) NumNodes() int {
	return len(t.nodes)
}

// Root returns the index of the root node, or NoNode if the tree is empty.
func (t *Tree[S]) Root() int {
	return len(t.nodes) - 1
}

// Node returns a copy of node i.
func (t *Tree[S]) Node(i int) Node[S] {
	assert.Assertf(i >= 0 && i < len(t.nodes), "node index %d out of range [0, %d)", i, len(t.nodes))
	return t.nodes[i]
}

// Code returns the code assigned to a symbol.
func (t *Tree[S]) Code(symbol S) (Code, bool) {
	hc, found := t.codes[symbol]
	return hc, found
}

// Codes returns a copy of the symbol to code mapping.
func (t *Tree[S]) Codes() map[S]Code {
	return maps.Clone(t.codes)
}

// Leaves returns every leaf in tree order.  Unlike Codes, this reports each
// leaf separately even when DedupExact left a symbol with two leaves.
func (t *Tree[S]) Leaves() []Leaf[S] {
	out := make([]Leaf[S], t.numInput)
	for i, node := range t.nodes[:t.numInput] {
		out[i] = Leaf[S]{Symbol: node.Symbol, Weight: node.Weight, Code: node.Code}
	}
	return out
}

// Dump writes a programmer-readable debugging dump of the tree to the given
// writer.
func (t *Tree[S]) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	fmt.Fprintf(&buf, "\tLen() = %d\n", t.numInput)
	fmt.Fprintf(&buf, "\tNumNodes() = %d\n", len(t.nodes))
	for _, node := range t.nodes {
		if node.HasSymbol {
			fmt.Fprintf(&buf, "\tNode(%d) = leaf{%#v, %d} parent=%d code=%s\n", node.Index, node.Symbol, node.Weight, node.Parent, node.Code)
		} else {
			fmt.Fprintf(&buf, "\tNode(%d) = node{%d, %d, %d} parent=%d code=%s\n", node.Index, node.Weight, node.Left, node.Right, node.Parent, node.Code)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// DebugString returns the output of Dump as a string.
func (t *Tree[S]) DebugString() string {
	var buf bytes.Buffer
	_, _ = t.Dump(&buf)
	return buf.String()
}

// String returns a short description of the tree.
func (t *Tree[S]) String() string {
	return fmt.Sprintf("(Huffman tree with %d symbols, %d nodes)", t.numInput, len(t.nodes))
}
