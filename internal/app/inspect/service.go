package inspect

import (
	"context"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/sortid/ulid/pkg/ulid"
)

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Inspect decodes each value and reports its components. The first
// malformed value aborts the whole batch.
func (s *Service) Inspect(ctx context.Context, values []string) ([]Report, error) {
	if len(values) == 0 {
		return nil, ErrValueRequired
	}

	reports := make([]Report, 0, len(values))
	for _, value := range values {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			return nil, ErrValueRequired
		}

		id, err := ulid.Parse(trimmed)
		if err != nil {
			return nil, fmt.Errorf("inspect %q: %w", trimmed, err)
		}

		rnd := id.Randomness()
		reports = append(reports, Report{
			Canonical:  id.String(),
			Timestamp:  id.Time(),
			Time:       id.Timestamp().Format(time.RFC3339Nano),
			Randomness: strings.ToUpper(hex.EncodeToString(rnd[:])),
			Bytes:      strings.ToUpper(hex.EncodeToString(id.Bytes())),
			UUID:       id.UUID().String(),
		})
	}
	return reports, nil
}
