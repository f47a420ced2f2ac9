package ulid

import (
	"encoding/binary"
	"fmt"
)

// alphabet is the Crockford base32 symbol set. Symbol order matches
// numeric digit order, which is what makes encoded strings sort the
// same way as the raw 128-bit values.
const alphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

const invalidSymbol = 0xFF

// decodeTable maps an input byte to its 5-bit value. Letters decode
// case-insensitively; every byte outside the alphabet maps to
// invalidSymbol.
var decodeTable [256]byte

func init() {
	for i := range decodeTable {
		decodeTable[i] = invalidSymbol
	}
	for i := 0; i < len(alphabet); i++ {
		c := alphabet[i]
		decodeTable[c] = byte(i)
		if c >= 'A' && c <= 'Z' {
			decodeTable[c+'a'-'A'] = byte(i)
		}
	}
}

// String encodes the ULID as its 26-character canonical form. The
// 128-bit value is treated as 130 bits with two implicit leading
// zeros, emitted as 26 uppercase base32 symbols, most significant
// first.
func (id ULID) String() string {
	hi := binary.BigEndian.Uint64(id[:8])
	lo := binary.BigEndian.Uint64(id[8:])

	var out [EncodedSize]byte
	for i := EncodedSize - 1; i >= 0; i-- {
		out[i] = alphabet[lo&0x1F]
		lo = lo>>5 | hi<<59
		hi >>= 5
	}
	return string(out[:])
}

// Parse decodes a 26-character base32 encoded ULID. Decoding is
// case-insensitive. It fails with ErrInvalidLength when the input is
// not exactly 26 characters, and with ErrInvalidCharacter when a
// symbol is outside the alphabet or the leading symbol decodes to a
// value above 7, which would overflow the 48-bit timestamp.
func Parse(value string) (ULID, error) {
	if len(value) != EncodedSize {
		return ULID{}, fmt.Errorf("%w: encoded ulid must be %d characters, got %d", ErrInvalidLength, EncodedSize, len(value))
	}

	var hi, lo uint64
	for i := 0; i < EncodedSize; i++ {
		v := decodeTable[value[i]]
		if v == invalidSymbol {
			return ULID{}, fmt.Errorf("%w: %q at position %d", ErrInvalidCharacter, rune(value[i]), i)
		}
		if i == 0 && v > 7 {
			return ULID{}, fmt.Errorf("%w: leading %q overflows the timestamp", ErrInvalidCharacter, rune(value[i]))
		}
		hi = hi<<5 | lo>>59
		lo = lo<<5 | uint64(v)
	}

	var id ULID
	binary.BigEndian.PutUint64(id[:8], hi)
	binary.BigEndian.PutUint64(id[8:], lo)
	return id, nil
}

// MustParse is Parse for statically known inputs. It panics when the
// value does not decode.
func MustParse(value string) ULID {
	id, err := Parse(value)
	if err != nil {
		panic(err)
	}
	return id
}
