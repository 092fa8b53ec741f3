// Package bitbuffer implements a growable, bit-addressable buffer with a
// byte-exact serialization format.
//
// Bits are packed eight to a storage unit, least significant bit first, so
// bit k lives in unit k/8 at offset k%8.  Every bit position at or beyond
// Len() in the last unit is always zero; Equal relies on this.
//
// Serialized layout (all words little-endian, leword.Size bytes wide):
//
//     offset      size        field
//     0           word        bit count
//     word        word        unit count
//     2*word      word        current unit index
//     3*word      unit count  raw storage units
//
// The word width follows the platform's uint, so a serialized Buffer is only
// portable between producers and consumers that agree on it.
//
package bitbuffer
