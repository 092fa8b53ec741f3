package codec

import (
	"bytes"
	"cmp"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/pkg/errors"

	huffman "github.com/chronos-tachyon/huffbits"
	"github.com/chronos-tachyon/huffbits/bitbuffer"
)

var (
	// ErrUnknownSymbol is returned when encoding a symbol that has no code.
	ErrUnknownSymbol = errors.New("codec: symbol has no code")

	// ErrEmptyCode is returned when encoding a symbol whose code is empty
	// in a mapping that has more than one symbol.
	ErrEmptyCode = errors.New("codec: symbol has an empty code")
)

// loneSymbolCode is used in place of the empty code of a single-symbol
// mapping.
const loneSymbolCode = huffman.Code("0")

// effectiveCodes copies codes, replacing the empty code of a lone symbol.
func effectiveCodes[S cmp.Ordered](codes map[S]huffman.Code) map[S]huffman.Code {
	out := maps.Clone(codes)
	if out == nil {
		out = make(map[S]huffman.Code)
	}
	if len(out) == 1 {
		for symbol, hc := range out {
			if hc.Len() == 0 {
				out[symbol] = loneSymbolCode
			}
		}
	}
	return out
}

// Encoder appends Huffman codes to a bit buffer.
type Encoder[S cmp.Ordered] struct {
	codes   map[S]huffman.Code
	minSize int
	maxSize int
}

// NewEncoder returns an Encoder for the given symbol to code mapping, which
// is usually the result of huffman.Tree.Codes.
func NewEncoder[S cmp.Ordered](codes map[S]huffman.Code) *Encoder[S] {
	e := &Encoder[S]{codes: effectiveCodes(codes)}
	first := true
	for _, hc := range e.codes {
		size := hc.Len()
		if first {
			first = false
			e.minSize, e.maxSize = size, size
		} else if e.minSize > size {
			e.minSize = size
		} else if e.maxSize < size {
			e.maxSize = size
		}
	}
	return e
}

// Encode appends the codes for symbols to dst, in order.  If any symbol
// cannot be encoded, Encode returns an error and dst is left unchanged.
func (e *Encoder[S]) Encode(dst *bitbuffer.Buffer, symbols ...S) error {
	for _, symbol := range symbols {
		hc, found := e.codes[symbol]
		if !found {
			return errors.Wrapf(ErrUnknownSymbol, "symbol %#v", symbol)
		}
		if hc.Len() == 0 {
			return errors.Wrapf(ErrEmptyCode, "symbol %#v", symbol)
		}
	}

	for _, symbol := range symbols {
		hc := e.codes[symbol]
		for i := 0; i < hc.Len(); i++ {
			dst.Append(hc.Bit(i))
		}
	}
	return nil
}

// Code returns the code used for symbol.
func (e *Encoder[S]) Code(symbol S) (huffman.Code, bool) {
	hc, found := e.codes[symbol]
	return hc, found
}

// MinSize is the bit length of the shortest code.
func (e *Encoder[S]) MinSize() int {
	return e.minSize
}

// MaxSize is the bit length of the longest code.
func (e *Encoder[S]) MaxSize() int {
	return e.maxSize
}

// Dump writes a programmer-readable debugging dump of the Encoder's current
// state to the given writer.
func (e *Encoder[S]) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", e.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", e.maxSize)
	for _, symbol := range slices.Sorted(maps.Keys(e.codes)) {
		fmt.Fprintf(&buf, "\tEncode(%#v) = %s\n", symbol, e.codes[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
