package convert

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sortid/ulid/pkg/ulid"
)

type Service struct{}

type Result struct {
	ULID string
	UUID string
}

func NewService() *Service {
	return &Service{}
}

// ToUUID reinterprets an encoded ULID as its UUID form.
func (s *Service) ToUUID(ctx context.Context, value string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Result{}, ErrValueRequired
	}

	id, err := ulid.Parse(trimmed)
	if err != nil {
		return Result{}, err
	}
	return Result{ULID: id.String(), UUID: id.UUID().String()}, nil
}

// FromUUID reinterprets a UUID as its ULID form.
func (s *Service) FromUUID(ctx context.Context, value string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Result{}, ErrValueRequired
	}

	parsed, err := uuid.Parse(trimmed)
	if err != nil {
		return Result{}, fmt.Errorf("parse uuid: %w", err)
	}
	id := ulid.FromUUID(parsed)
	return Result{ULID: id.String(), UUID: parsed.String()}, nil
}
