package bitbuffer

import (
	"encoding"
	"fmt"
	"strings"
)

// FromString builds a Buffer from a string of '0' and '1' characters.  Any
// character other than '1' is read as a 0 bit.
func FromString(s string) *Buffer {
	b := New()
	b.AppendString(s)
	return b
}

// FromBools builds a Buffer holding the given bits, in order.
func FromBools(bits []bool) *Buffer {
	b := New()
	for _, bit := range bits {
		b.Append(bit)
	}
	return b
}

// String returns the bits as a string of '0' and '1' characters.
func (b *Buffer) String() string {
	var sb strings.Builder
	sb.Grow(int(b.numBits))
	for bit := range b.Bits() {
		if bit {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// GoString returns a Go expression that rebuilds this Buffer.
func (b *Buffer) GoString() string {
	return fmt.Sprintf("bitbuffer.FromString(%q)", b.String())
}

// MarshalText fulfills encoding.TextMarshaler.
func (b *Buffer) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText fulfills encoding.TextUnmarshaler.
func (b *Buffer) UnmarshalText(text []byte) error {
	b.Reset()
	for _, ch := range text {
		b.Append(ch == '1')
	}
	return nil
}

var (
	_ fmt.Stringer             = (*Buffer)(nil)
	_ fmt.GoStringer           = (*Buffer)(nil)
	_ encoding.TextMarshaler   = (*Buffer)(nil)
	_ encoding.TextUnmarshaler = (*Buffer)(nil)
)
