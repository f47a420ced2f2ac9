package ulid

import "errors"

var ErrBigTime = errors.New("ulid: timestamp exceeds 48-bit range")
var ErrInvalidLength = errors.New("ulid: invalid length")
var ErrInvalidCharacter = errors.New("ulid: invalid character")
var ErrMonotonicExhausted = errors.New("ulid: randomness exhausted for this millisecond")
