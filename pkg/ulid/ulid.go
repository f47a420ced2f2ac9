package ulid

import (
	"bytes"
	"fmt"
	"time"
)

const (
	// Size is the binary width of a ULID in bytes.
	Size = 16
	// EncodedSize is the length of the canonical text form.
	EncodedSize = 26
	// RandomnessSize is the width of the randomness component in bytes.
	RandomnessSize = 10
	// MaxTimestamp is the largest representable millisecond timestamp
	// (48 bits, roughly year 10889).
	MaxTimestamp = 1<<48 - 1
)

// ULID is a 128-bit lexicographically sortable identifier, stored
// big-endian: bytes 0..5 are the millisecond timestamp, bytes 6..15
// the randomness. The zero value is the smallest possible ULID.
type ULID [Size]byte

// Min is the all-zero ULID, a lower sentinel for range queries.
var Min = ULID{}

// Max is the all-one ULID, an upper sentinel for range queries.
var Max = ULID{
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
}

// FromParts builds a ULID from a millisecond Unix timestamp and an
// 80-bit randomness payload. It fails with ErrBigTime when the
// timestamp does not fit in 48 bits.
func FromParts(ms uint64, rnd [RandomnessSize]byte) (ULID, error) {
	if ms > MaxTimestamp {
		return ULID{}, fmt.Errorf("%w: %d", ErrBigTime, ms)
	}
	var id ULID
	id[0] = byte(ms >> 40)
	id[1] = byte(ms >> 32)
	id[2] = byte(ms >> 24)
	id[3] = byte(ms >> 16)
	id[4] = byte(ms >> 8)
	id[5] = byte(ms)
	copy(id[6:], rnd[:])
	return id, nil
}

// FromBytes reconstitutes a ULID from its 16-byte big-endian form.
// Every 128-bit pattern is legal; only the length can be wrong.
func FromBytes(data []byte) (ULID, error) {
	if len(data) != Size {
		return ULID{}, fmt.Errorf("%w: binary ulid must be %d bytes, got %d", ErrInvalidLength, Size, len(data))
	}
	var id ULID
	copy(id[:], data)
	return id, nil
}

// MinAt returns the smallest ULID carrying the given timestamp.
func MinAt(ms uint64) (ULID, error) {
	return FromParts(ms, [RandomnessSize]byte{})
}

// MaxAt returns the largest ULID carrying the given timestamp.
func MaxAt(ms uint64) (ULID, error) {
	rnd := [RandomnessSize]byte{
		0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	}
	return FromParts(ms, rnd)
}

// Time returns the timestamp component in milliseconds since the
// Unix epoch.
func (id ULID) Time() uint64 {
	return uint64(id[0])<<40 | uint64(id[1])<<32 | uint64(id[2])<<24 |
		uint64(id[3])<<16 | uint64(id[4])<<8 | uint64(id[5])
}

// Timestamp returns the timestamp component as a UTC time, accurate
// to one millisecond.
func (id ULID) Timestamp() time.Time {
	return time.UnixMilli(int64(id.Time())).UTC()
}

// Randomness returns the 80-bit randomness component.
func (id ULID) Randomness() [RandomnessSize]byte {
	var rnd [RandomnessSize]byte
	copy(rnd[:], id[6:])
	return rnd
}

// Bytes returns the 16-byte big-endian form.
func (id ULID) Bytes() []byte {
	out := make([]byte, Size)
	copy(out, id[:])
	return out
}

// Compare returns -1, 0 or 1 ordering by raw 128-bit value; the
// timestamp dominates and randomness breaks ties. This matches the
// lexicographic order of the canonical strings.
func (id ULID) Compare(other ULID) int {
	return bytes.Compare(id[:], other[:])
}

// IsZero reports whether the ULID is the all-zero value.
func (id ULID) IsZero() bool {
	return id == Min
}

// Timestamp converts a time to the 48-bit millisecond form used by
// ULIDs. Times before the Unix epoch clamp to zero; times past
// MaxTimestamp fail with ErrBigTime.
func Timestamp(t time.Time) (uint64, error) {
	ms := t.UnixMilli()
	if ms < 0 {
		return 0, nil
	}
	if uint64(ms) > MaxTimestamp {
		return 0, fmt.Errorf("%w: %d", ErrBigTime, ms)
	}
	return uint64(ms), nil
}

// MarshalText implements encoding.TextMarshaler using the canonical
// 26-character form.
func (id ULID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts both
// letter cases.
func (id *ULID) UnmarshalText(data []byte) error {
	parsed, err := Parse(string(data))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler using the 16-byte
// big-endian form.
func (id ULID) MarshalBinary() ([]byte, error) {
	return id.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (id *ULID) UnmarshalBinary(data []byte) error {
	parsed, err := FromBytes(data)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
