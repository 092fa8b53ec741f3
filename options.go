package huffman

import (
	"fmt"
)

// Normalization selects how Build cleans up its input list.
type Normalization uint8

const (
	// DedupExact sorts the entries and drops an entry only when both its
	// symbol and its weight match the previous entry.  A symbol listed
	// twice with different weights keeps two leaves, and the code mapping
	// reports the code of the heavier one.
	DedupExact Normalization = iota

	// MergeBySymbol sorts the entries and sums the weights of all entries
	// sharing a symbol, so every symbol gets exactly one leaf.
	MergeBySymbol
)

var normalizationNames = [...]string{
	DedupExact:    "DedupExact",
	MergeBySymbol: "MergeBySymbol",
}

// String returns the name of the normalization mode.
func (n Normalization) String() string {
	if int(n) < len(normalizationNames) {
		return normalizationNames[n]
	}
	return fmt.Sprintf("Normalization(%d)", uint8(n))
}

// Selection selects how Build finds the two lightest nodes to merge.
type Selection uint8

const (
	// ScanUnparented scans every node created so far, skipping nodes that
	// already have a parent, and picks the two lightest.  Ties go to the
	// lowest index.
	ScanUnparented Selection = iota

	// ScanAll scans every node created so far without skipping nodes that
	// already have a parent.  This reproduces the behavior of older
	// encoders, which can merge the same node twice and leave other leaves
	// unreachable.  Only use it to interoperate with data produced that
	// way.
	ScanAll

	// PriorityQueue keeps the unmerged nodes in a min-heap ordered by
	// (weight, index).  It builds the same tree as ScanUnparented in
	// O(n log n) time.
	PriorityQueue
)

var selectionNames = [...]string{
	ScanUnparented: "ScanUnparented",
	ScanAll:        "ScanAll",
	PriorityQueue:  "PriorityQueue",
}

// String returns the name of the selection strategy.
func (s Selection) String() string {
	if int(s) < len(selectionNames) {
		return selectionNames[s]
	}
	return fmt.Sprintf("Selection(%d)", uint8(s))
}

// Option configures Build.
type Option func(*options)

type options struct {
	normalization Normalization
	selection     Selection
}

// WithNormalization sets the input normalization mode.  The default is
// DedupExact.
func WithNormalization(n Normalization) Option {
	return func(o *options) { o.normalization = n }
}

// WithSelection sets the merge selection strategy.  The default is
// ScanUnparented.
func WithSelection(s Selection) Option {
	return func(o *options) { o.selection = s }
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
