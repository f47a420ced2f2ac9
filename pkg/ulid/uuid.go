package ulid

import "github.com/google/uuid"

// FromUUID reinterprets the 128 bits of a UUID as a ULID. No bytes
// are swapped; the conversion is lossless in both directions.
func FromUUID(value uuid.UUID) ULID {
	return ULID(value)
}

// UUID reinterprets the ULID's 128 bits as a UUID.
func (id ULID) UUID() uuid.UUID {
	return uuid.UUID(id)
}
