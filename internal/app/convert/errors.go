package convert

import "errors"

var ErrValueRequired = errors.New("a value to convert is required")
