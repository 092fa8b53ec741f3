// Package huffman builds Huffman trees from weighted symbols and derives a
// prefix code for each symbol.
//
// The tree lives in a flat array: for n distinct inputs, nodes [0, n) are the
// leaves in sorted symbol order and nodes [n, 2n-1) are the internal nodes in
// the order they were created.  The last node is the root.  Links between
// nodes are array indices, with -1 meaning "none".
//
// Construction uses a quadratic two-minimum scan by default, which is fine
// for byte-sized alphabets.  Larger alphabets should use
// WithSelection(PriorityQueue), which builds the same tree in O(n log n).
//
// The codes are deterministic for a given input but are not canonical in the
// RFC 1951 sense.
//
// The package logs to the go-logging module "huffman".  Only warnings are
// emitted by default; call logging.SetLevel(logging.DEBUG, "huffman") to
// trace every merge.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
