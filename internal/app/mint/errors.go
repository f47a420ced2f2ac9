package mint

import "errors"

var ErrInvalidCount = errors.New("count must be at least 1")
