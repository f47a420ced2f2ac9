package mint

import (
	"context"
	"fmt"

	"github.com/sortid/ulid/pkg/ulid"
)

type Service struct {
	source   IDSource
	recorder Recorder
}

type Options struct {
	Count     int
	Monotonic bool
}

// NewService builds a minting service. The recorder is optional; a
// nil recorder skips persistence.
func NewService(source IDSource, recorder Recorder) *Service {
	return &Service{
		source:   source,
		recorder: recorder,
	}
}

func (s *Service) Mint(ctx context.Context, opts Options) ([]ulid.ULID, error) {
	if opts.Count < 1 {
		return nil, ErrInvalidCount
	}

	ids := make([]ulid.ULID, 0, opts.Count)
	for len(ids) < opts.Count {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var id ulid.ULID
		var err error
		if opts.Monotonic {
			id, err = s.source.NewMonotonic()
		} else {
			id, err = s.source.New()
		}
		if err != nil {
			return nil, fmt.Errorf("mint ulid: %w", err)
		}
		ids = append(ids, id)
	}

	if s.recorder != nil {
		if err := s.recorder.Record(ctx, ids); err != nil {
			return nil, fmt.Errorf("record minted ids: %w", err)
		}
	}
	return ids, nil
}
