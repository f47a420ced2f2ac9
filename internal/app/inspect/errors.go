package inspect

import "errors"

var ErrValueRequired = errors.New("at least one ulid is required")
