package bitbuffer

import (
	"bytes"
	"iter"

	"github.com/chronos-tachyon/assert"
	"github.com/pkg/errors"
)

// UnitBits is the number of bits held by one storage unit.
const UnitBits = 8

// ErrUnderflow is returned when reading or removing a bit from an empty
// Buffer.
var ErrUnderflow = errors.New("bitbuffer: buffer is empty")

// Buffer is a growable sequence of bits.
//
// The zero value is an empty Buffer ready for use.  A Buffer is not safe for
// concurrent use.
type Buffer struct {
	units   []byte
	numBits uint
}

// New returns an empty Buffer holding one zeroed storage unit.
func New() *Buffer {
	return &Buffer{units: make([]byte, 1)}
}

// position locates bit k within the packed storage.
func position(k uint) (unit uint, mask byte) {
	return k / UnitBits, byte(1) << (k % UnitBits)
}

// unitsFor returns the number of storage units needed to hold n bits.
func unitsFor(n uint) uint {
	if n == 0 {
		return 1
	}
	return (n + UnitBits - 1) / UnitBits
}

func (b *Buffer) lazyInit() {
	if b.units == nil {
		b.units = make([]byte, 1)
	}
}

// Len returns the number of bits in the buffer.
func (b *Buffer) Len() uint {
	return b.numBits
}

// NumUnits returns the number of allocated storage units.  It is never less
// than 1.
func (b *Buffer) NumUnits() uint {
	if b.units == nil {
		return 1
	}
	return uint(len(b.units))
}

// CurrentUnitIndex returns the index of the last storage unit.
func (b *Buffer) CurrentUnitIndex() uint {
	return b.NumUnits() - 1
}

// Append adds one bit to the end of the buffer.
func (b *Buffer) Append(bit bool) {
	b.lazyInit()
	if b.numBits != 0 && b.numBits%UnitBits == 0 {
		b.units = append(b.units, 0)
	}

	unit, mask := position(b.numBits)
	assert.Assertf(unit == uint(len(b.units))-1, "bit %d maps to unit %d, current unit is %d", b.numBits, unit, len(b.units)-1)
	if bit {
		b.units[unit] |= mask
	} else {
		b.units[unit] &^= mask
	}
	b.numBits++
}

// AppendString appends one bit per character of s, using the same rules as
// FromString.
func (b *Buffer) AppendString(s string) {
	for i := 0; i < len(s); i++ {
		b.Append(s[i] == '1')
	}
}

// RemoveLast removes the last bit.  It returns ErrUnderflow if the buffer is
// empty.
func (b *Buffer) RemoveLast() error {
	if b.numBits == 0 {
		return errors.WithStack(ErrUnderflow)
	}

	unit, mask := position(b.numBits - 1)
	b.units[unit] &^= mask
	b.numBits--

	if b.numBits%UnitBits == 0 && len(b.units) > 1 {
		last := len(b.units) - 1
		assert.Assertf(b.units[last] == 0, "vacated unit %d is %#02x, not zero", last, b.units[last])
		b.units = b.units[:last]
	}
	return nil
}

// Last returns the last bit.  It returns ErrUnderflow if the buffer is
// empty.
func (b *Buffer) Last() (bool, error) {
	if b.numBits == 0 {
		return false, errors.WithStack(ErrUnderflow)
	}
	return b.At(b.numBits - 1), nil
}

// At returns bit k.  It panics if k >= Len().
func (b *Buffer) At(k uint) bool {
	assert.Assertf(k < b.numBits, "bit index %d out of range [0, %d)", k, b.numBits)
	unit, mask := position(k)
	return b.units[unit]&mask != 0
}

// Reset empties the buffer, keeping one zeroed storage unit.
func (b *Buffer) Reset() {
	b.units = make([]byte, 1)
	b.numBits = 0
}

// Clone returns an independent copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	out := &Buffer{units: make([]byte, b.NumUnits()), numBits: b.numBits}
	copy(out.units, b.units)
	return out
}

// Equal reports whether both buffers hold the same bits.
func (b *Buffer) Equal(other *Buffer) bool {
	if b.numBits != other.numBits {
		return false
	}
	if b.units == nil || other.units == nil {
		// only reachable for empty buffers, whose single unit is zero
		return b.NumUnits() == other.NumUnits()
	}
	return bytes.Equal(b.units, other.units)
}

// Bits returns an iterator over the bits of the buffer, in append order.
func (b *Buffer) Bits() iter.Seq[bool] {
	return func(yield func(bool) bool) {
		for k := uint(0); k < b.numBits; k++ {
			unit, mask := position(k)
			if !yield(b.units[unit]&mask != 0) {
				return
			}
		}
	}
}

// Units returns an iterator over the raw storage units, in order.
func (b *Buffer) Units() iter.Seq[byte] {
	return func(yield func(byte) bool) {
		if b.units == nil {
			yield(0)
			return
		}
		for _, u := range b.units {
			if !yield(u) {
				return
			}
		}
	}
}

// ForEachBit calls fn once for each bit, in append order.
func (b *Buffer) ForEachBit(fn func(bit bool)) {
	for bit := range b.Bits() {
		fn(bit)
	}
}

// ForEachUnit calls fn once for each storage unit, in order.
func (b *Buffer) ForEachUnit(fn func(unit byte)) {
	for u := range b.Units() {
		fn(u)
	}
}
