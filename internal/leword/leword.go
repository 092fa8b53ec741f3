// Package leword encodes and decodes pointer-width unsigned integers in
// little-endian byte order.
package leword

import (
	"encoding/binary"
	mathbits "math/bits"

	"github.com/chronos-tachyon/assert"
)

// Size is the number of bytes in one encoded word.
const Size = mathbits.UintSize / 8

// Put writes v into the first Size bytes of dst.
func Put(dst []byte, v uint) {
	assert.Assertf(len(dst) >= Size, "len(dst) %d < Size %d", len(dst), Size)
	if Size == 4 {
		binary.LittleEndian.PutUint32(dst, uint32(v))
		return
	}
	binary.LittleEndian.PutUint64(dst, uint64(v))
}

// Get reads a word from the first Size bytes of src.
func Get(src []byte) uint {
	assert.Assertf(len(src) >= Size, "len(src) %d < Size %d", len(src), Size)
	if Size == 4 {
		return uint(binary.LittleEndian.Uint32(src))
	}
	return uint(binary.LittleEndian.Uint64(src))
}

// Append appends the encoding of v to dst and returns the extended slice.
func Append(dst []byte, v uint) []byte {
	var tmp [Size]byte
	Put(tmp[:], v)
	return append(dst, tmp[:]...)
}
