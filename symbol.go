package huffman

import (
	"cmp"
	"math"
)

// Entry pairs a symbol with its weight, i.e. its number of occurrences.
type Entry[S cmp.Ordered] struct {
	Symbol S
	Weight uint64
}

// MakeEntry is a convenience function that constructs an Entry.
func MakeEntry[S cmp.Ordered](symbol S, weight uint64) Entry[S] {
	return Entry[S]{Symbol: symbol, Weight: weight}
}

// MaxWeight is the largest representable weight.  Internal node weights
// saturate at this value instead of wrapping.
const MaxWeight = uint64(math.MaxUint64)

// NoNode is used in node links to indicate that there is no such node.
const NoNode = -1

func compareEntries[S cmp.Ordered](a, b Entry[S]) int {
	if c := cmp.Compare(a.Symbol, b.Symbol); c != 0 {
		return c
	}
	return cmp.Compare(a.Weight, b.Weight)
}
