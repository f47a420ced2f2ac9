package inspect

import (
	"context"
	"errors"
	"testing"

	"github.com/sortid/ulid/pkg/ulid"
)

func TestInspectReportsComponents(t *testing.T) {
	service := NewService()

	reports, err := service.Inspect(context.Background(), []string{"01ARZ3NDEKTSV4RRFFQ69G5FAV"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(reports) != 1 {
		t.Fatalf("expected 1 report, got %d", len(reports))
	}

	report := reports[0]
	if report.Canonical != "01ARZ3NDEKTSV4RRFFQ69G5FAV" {
		t.Fatalf("unexpected canonical form %s", report.Canonical)
	}
	if report.Timestamp != 1469922850259 {
		t.Fatalf("unexpected timestamp %d", report.Timestamp)
	}
	if report.Randomness != "D6764C61EFB99302BD5B" {
		t.Fatalf("unexpected randomness %s", report.Randomness)
	}
	if report.Bytes != "01563E3AB5D3D6764C61EFB99302BD5B" {
		t.Fatalf("unexpected bytes %s", report.Bytes)
	}
	if report.UUID != "01563e3a-b5d3-d676-4c61-efb99302bd5b" {
		t.Fatalf("unexpected uuid form %s", report.UUID)
	}
	if report.Time == "" {
		t.Fatal("expected a formatted time")
	}
}

func TestInspectNormalizesCase(t *testing.T) {
	service := NewService()

	reports, err := service.Inspect(context.Background(), []string{"01arz3ndektsv4rrffq69g5fav"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reports[0].Canonical != "01ARZ3NDEKTSV4RRFFQ69G5FAV" {
		t.Fatalf("expected canonical uppercase, got %s", reports[0].Canonical)
	}
}

func TestInspectRejectsEmptyInput(t *testing.T) {
	service := NewService()

	if _, err := service.Inspect(context.Background(), nil); !errors.Is(err, ErrValueRequired) {
		t.Fatalf("expected ErrValueRequired, got %v", err)
	}
	if _, err := service.Inspect(context.Background(), []string{"  "}); !errors.Is(err, ErrValueRequired) {
		t.Fatalf("expected ErrValueRequired, got %v", err)
	}
}

func TestInspectRejectsMalformedValues(t *testing.T) {
	service := NewService()

	_, err := service.Inspect(context.Background(), []string{"01ARZ3NDEKTSV4RRFFQ69G5FAV", "not-a-ulid"})
	if !errors.Is(err, ulid.ErrInvalidLength) {
		t.Fatalf("expected ErrInvalidLength, got %v", err)
	}
}
