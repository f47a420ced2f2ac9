package mint

import (
	"context"

	"github.com/sortid/ulid/pkg/ulid"
)

type IDSource interface {
	New() (ulid.ULID, error)
	NewMonotonic() (ulid.ULID, error)
}

type Recorder interface {
	Record(ctx context.Context, ids []ulid.ULID) error
}
