package bitbuffer

import (
	"encoding"
	"io"
	"math"

	"github.com/pkg/errors"

	"github.com/chronos-tachyon/huffbits/internal/leword"
)

// HeaderSize is the size in bytes of the serialized metadata that precedes
// the storage units.
const HeaderSize = 3 * leword.Size

// ErrMalformed is returned when a serialized Buffer is inconsistent.
var ErrMalformed = errors.New("bitbuffer: malformed serialized buffer")

// Bytes returns the serialized form of the buffer.
func (b *Buffer) Bytes() []byte {
	numUnits := b.NumUnits()
	out := make([]byte, 0, HeaderSize+int(numUnits))
	out = leword.Append(out, b.numBits)
	out = leword.Append(out, numUnits)
	out = leword.Append(out, numUnits-1)
	if b.units == nil {
		return append(out, 0)
	}
	return append(out, b.units...)
}

// FromBytes parses a serialized Buffer.  It returns an error wrapping
// ErrMalformed if p is not exactly one well-formed buffer.
func FromBytes(p []byte) (*Buffer, error) {
	if len(p) < HeaderSize {
		return nil, errors.Wrapf(ErrMalformed, "header needs %d bytes, got %d", HeaderSize, len(p))
	}

	numBits := leword.Get(p[0:])
	numUnits := leword.Get(p[leword.Size:])
	currentUnit := leword.Get(p[2*leword.Size:])
	body := p[HeaderSize:]

	if numUnits == 0 {
		return nil, errors.Wrap(ErrMalformed, "unit count is 0")
	}
	if currentUnit != numUnits-1 {
		return nil, errors.Wrapf(ErrMalformed, "current unit index %d, expected %d", currentUnit, numUnits-1)
	}
	if expect := unitsFor(numBits); numUnits != expect {
		return nil, errors.Wrapf(ErrMalformed, "%d bits need %d units, header says %d", numBits, expect, numUnits)
	}
	if uint(len(body)) != numUnits {
		return nil, errors.Wrapf(ErrMalformed, "expected %d storage bytes, got %d", numUnits, len(body))
	}

	last := body[numUnits-1]
	if used := numBits % UnitBits; used != 0 || numBits == 0 {
		if last>>used != 0 {
			return nil, errors.Wrapf(ErrMalformed, "unused bits of last unit are set: %#02x", last)
		}
	}

	units := make([]byte, numUnits)
	copy(units, body)
	return &Buffer{units: units, numBits: numBits}, nil
}

// MarshalBinary fulfills encoding.BinaryMarshaler.
func (b *Buffer) MarshalBinary() ([]byte, error) {
	return b.Bytes(), nil
}

// UnmarshalBinary fulfills encoding.BinaryUnmarshaler.
func (b *Buffer) UnmarshalBinary(data []byte) error {
	parsed, err := FromBytes(data)
	if err != nil {
		return err
	}
	*b = *parsed
	return nil
}

// WriteTo writes the serialized form of the buffer to w.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(b.Bytes())
	return int64(n), errors.WithStack(err)
}

// ReadBuffer reads exactly one serialized Buffer from r.  Bytes past the end
// of the buffer are left unread.
//
// ReadBuffer returns io.EOF, unwrapped, if r is already at end of stream.  A
// partial header or body yields an error wrapping ErrMalformed.
//
func ReadBuffer(r io.Reader) (*Buffer, error) {
	header := make([]byte, HeaderSize)
	if _, err := io.ReadFull(r, header); err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		return nil, errors.Wrapf(ErrMalformed, "reading header: %v", err)
	}

	numUnits := leword.Get(header[leword.Size:])
	if numUnits == 0 || numUnits > unitsFor(leword.Get(header)) {
		return FromBytes(header)
	}

	// The header alone cannot bound the allocation, so memory grows only
	// with the bytes that actually arrive.
	limit := int64(numUnits)
	if limit < 0 {
		limit = math.MaxInt64
	}
	body, err := io.ReadAll(io.LimitReader(r, limit))
	if err != nil {
		return nil, errors.Wrapf(ErrMalformed, "reading body: %v", err)
	}
	return FromBytes(append(header, body...))
}

var (
	_ encoding.BinaryMarshaler   = (*Buffer)(nil)
	_ encoding.BinaryUnmarshaler = (*Buffer)(nil)
	_ io.WriterTo                = (*Buffer)(nil)
)
