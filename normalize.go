package huffman

import (
	"cmp"
	"slices"
)

// Normalize returns a sorted, deduplicated copy of entries, as Build would
// see it.  Entries are ordered by symbol, then by weight.
func Normalize[S cmp.Ordered](entries []Entry[S], mode Normalization) []Entry[S] {
	list := slices.Clone(entries)
	slices.SortFunc(list, compareEntries[S])

	if mode != MergeBySymbol {
		return slices.Compact(list)
	}

	out := list[:0]
	for _, e := range list {
		if n := len(out); n != 0 && out[n-1].Symbol == e.Symbol {
			out[n-1].Weight = saturatingAdd(out[n-1].Weight, e.Weight)
			continue
		}
		out = append(out, e)
	}
	return out
}
