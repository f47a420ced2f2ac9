package ulid

import (
	"database/sql/driver"
	"fmt"
)

// Value implements driver.Valuer using the 16-byte big-endian form,
// the same shape a UUID column stores.
func (id ULID) Value() (driver.Value, error) {
	return id.Bytes(), nil
}

// Scan implements sql.Scanner. It accepts the 16-byte binary form and
// the 26-character text form, as either []byte or string.
func (id *ULID) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		if len(v) == Size {
			return id.UnmarshalBinary(v)
		}
		return id.UnmarshalText(v)
	case string:
		return id.UnmarshalText([]byte(v))
	default:
		return fmt.Errorf("ulid: cannot scan %T", src)
	}
}
