package huffman

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Code represents a sequence of bits as a string of '0' and '1' characters.
// The first character is the first bit.
type Code string

// ParseCode validates s and converts it to a Code.
func ParseCode(s string) (Code, error) {
	for i := 0; i < len(s); i++ {
		if ch := s[i]; ch != '0' && ch != '1' {
			return "", errors.Errorf("invalid character %q at offset %d in Huffman code %q", ch, i, s)
		}
	}
	return Code(s), nil
}

// Len returns the number of bits in the code.
func (hc Code) Len() int {
	return len(hc)
}

// Bit returns bit i of the code.
func (hc Code) Bit(i int) bool {
	return hc[i] == '1'
}

// Bools returns the bits of the code, in order.
func (hc Code) Bools() []bool {
	out := make([]bool, len(hc))
	for i := range out {
		out[i] = hc.Bit(i)
	}
	return out
}

// Append returns the code extended by one bit.
func (hc Code) Append(bit bool) Code {
	if bit {
		return hc + "1"
	}
	return hc + "0"
}

// HasPrefix reports whether prefix is a prefix of this Code.  Every Code
// has itself and the empty Code as prefixes.
func (hc Code) HasPrefix(prefix Code) bool {
	return strings.HasPrefix(string(hc), string(prefix))
}

// String returns the quoted string representation of this Code.
func (hc Code) String() string {
	return strconv.Quote(string(hc))
}

var _ fmt.Stringer = Code("")

// IsPrefixFree reports whether no code in the mapping is a prefix of another
// one.  Two symbols sharing a code also fail the check.
func IsPrefixFree[S comparable](codes map[S]Code) bool {
	sorted := make([]Code, 0, len(codes))
	for _, hc := range codes {
		sorted = append(sorted, hc)
	}
	slices.Sort(sorted)

	// Lexicographic order puts every extension of a code between the code
	// and its next non-extension, so checking neighbors is enough.
	for i := 1; i < len(sorted); i++ {
		if sorted[i].HasPrefix(sorted[i-1]) {
			return false
		}
	}
	return true
}
