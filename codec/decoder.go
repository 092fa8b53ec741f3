package codec

import (
	"bytes"
	"cmp"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/pkg/errors"

	huffman "github.com/chronos-tachyon/huffbits"
	"github.com/chronos-tachyon/huffbits/bitbuffer"
)

var (
	// ErrNotPrefixFree is returned by NewDecoder when one code is a prefix
	// of another, which makes decoding ambiguous.
	ErrNotPrefixFree = errors.New("codec: codes are not prefix-free")

	// ErrInvalidCode is returned when the input contains a bit sequence
	// that is not the start of any code.
	ErrInvalidCode = errors.New("codec: invalid code in input")

	// ErrTruncated is returned when the input ends in the middle of a code.
	ErrTruncated = errors.New("codec: input ends inside a code")
)

// Decoder turns a bit buffer back into symbols.
type Decoder[S cmp.Ordered] struct {
	table   map[huffman.Code]decoderData[S]
	minSize int
	maxSize int
}

type decoderData[S cmp.Ordered] struct {
	symbol   S
	complete bool
	minSize  int
	maxSize  int
}

// NewDecoder returns a Decoder for the given symbol to code mapping.
func NewDecoder[S cmp.Ordered](codes map[S]huffman.Code) (*Decoder[S], error) {
	codes = effectiveCodes(codes)
	if !huffman.IsPrefixFree(codes) {
		return nil, errors.WithStack(ErrNotPrefixFree)
	}

	d := &Decoder[S]{table: make(map[huffman.Code]decoderData[S], 2*len(codes))}
	if len(codes) == 0 {
		return d, nil
	}

	for _, symbol := range slices.Sorted(maps.Keys(codes)) {
		fillTable(d.table, symbol, codes[symbol])
	}
	root := d.table[""]
	d.minSize, d.maxSize = root.minSize, root.maxSize
	return d, nil
}

// fillTable records hc as a complete code for symbol, then walks up through
// its prefixes, widening each prefix's [minSize, maxSize] range to cover it.
func fillTable[S cmp.Ordered](table map[huffman.Code]decoderData[S], symbol S, hc huffman.Code) {
	size := hc.Len()
	dd := decoderData[S]{symbol: symbol, complete: true, minSize: size, maxSize: size}
	table[hc] = dd

	for hc.Len() != 0 {
		// For each hc "xxx...a", compute "xxx...A" where A = NOT a.

		parent := hc[:hc.Len()-1]
		sibling := parent.Append(!hc.Bit(hc.Len() - 1))

		// Merge the dd's from "xxx...a" (dd) and "xxx...A" (ddSibling)
		// into ddNew (the new entry for the parent prefix).

		ddNew := decoderData[S]{minSize: dd.minSize, maxSize: dd.maxSize}
		if ddSibling, found := table[sibling]; found {
			ddNew.minSize = min(ddNew.minSize, ddSibling.minSize)
			ddNew.maxSize = max(ddNew.maxSize, ddSibling.maxSize)
		}

		// If table[parent] already equals ddNew, we can stop recursing.

		hc = parent
		if ddOld, found := table[hc]; found && ddOld == ddNew {
			break
		}

		table[hc] = ddNew
		dd = ddNew
	}
}

// Lookup looks up a complete or partial code.
//
// If hc is a complete code, complete is true, symbol is its symbol, and
// minSize == maxSize == hc.Len().
//
// If hc is a proper prefix of some codes, complete is false and minSize and
// maxSize give the range of total code lengths that begin with hc.
//
// Otherwise no code begins with hc and minSize == maxSize == 0.
//
func (d *Decoder[S]) Lookup(hc huffman.Code) (symbol S, complete bool, minSize int, maxSize int) {
	dd, found := d.table[hc]
	if !found {
		return symbol, false, 0, 0
	}
	return dd.symbol, dd.complete, dd.minSize, dd.maxSize
}

// Decode reads every bit of src and returns the decoded symbols.  On error
// it also returns the symbols decoded before the failure.
func (d *Decoder[S]) Decode(src *bitbuffer.Buffer) ([]S, error) {
	var out []S
	var hc huffman.Code
	var offset uint
	for bit := range src.Bits() {
		hc = hc.Append(bit)
		offset++

		dd, found := d.table[hc]
		switch {
		case !found:
			log.Debugf("decode: no code begins with %s (ending at bit %d)", hc, offset)
			return out, errors.Wrapf(ErrInvalidCode, "no code begins with %s, ending at bit %d", hc, offset)
		case dd.complete:
			out = append(out, dd.symbol)
			hc = ""
		}
	}

	if hc.Len() != 0 {
		log.Debugf("decode: %d trailing bits %s", hc.Len(), hc)
		return out, errors.Wrapf(ErrTruncated, "%d trailing bits %s", hc.Len(), hc)
	}
	return out, nil
}

// MinSize is the bit length of the shortest code.
func (d *Decoder[S]) MinSize() int {
	return d.minSize
}

// MaxSize is the bit length of the longest code.
func (d *Decoder[S]) MaxSize() int {
	return d.maxSize
}

// Dump writes a programmer-readable debugging dump of the Decoder's current
// state to the given writer.
func (d *Decoder[S]) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Decoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", d.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", d.maxSize)
	keys := slices.SortedFunc(maps.Keys(d.table), compareCodes)
	for _, hc := range keys {
		dd := d.table[hc]
		if dd.complete {
			fmt.Fprintf(&buf, "\tLookup(%s) = %#v\n", hc, dd.symbol)
		} else {
			fmt.Fprintf(&buf, "\tLookup(%s) = {%d, %d}\n", hc, dd.minSize, dd.maxSize)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// compareCodes orders codes by length, then lexically.
func compareCodes(a, b huffman.Code) int {
	if c := cmp.Compare(a.Len(), b.Len()); c != 0 {
		return c
	}
	return strings.Compare(string(a), string(b))
}
