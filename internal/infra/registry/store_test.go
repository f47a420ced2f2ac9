package registry

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/sortid/ulid/pkg/ulid"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "registry.db"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}

func mustFromParts(t *testing.T, ms uint64, last byte) ulid.ULID {
	t.Helper()
	id, err := ulid.FromParts(ms, [ulid.RandomnessSize]byte{9: last})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return id
}

func TestRecordAndList(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	// Insert out of order; listing must come back sorted by id.
	ids := []ulid.ULID{
		mustFromParts(t, 3000, 0x01),
		mustFromParts(t, 1000, 0x02),
		mustFromParts(t, 2000, 0x03),
	}
	if err := store.Record(ctx, ids); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries, err := store.List(ctx, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].ID.Compare(entries[i-1].ID) != 1 {
			t.Fatalf("entries not sorted at %d", i)
		}
	}
	if entries[0].Canonical != entries[0].ID.String() {
		t.Fatalf("canonical mismatch: %s vs %s", entries[0].Canonical, entries[0].ID)
	}
	if entries[0].MintedMS != 1000 {
		t.Fatalf("expected minted_ms 1000, got %d", entries[0].MintedMS)
	}
}

func TestListHonorsLimit(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	var ids []ulid.ULID
	for i := byte(1); i <= 5; i++ {
		ids = append(ids, mustFromParts(t, uint64(i)*100, i))
	}
	if err := store.Record(ctx, ids); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries, err := store.List(ctx, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
}

func TestRecordRejectsDuplicates(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	id := mustFromParts(t, 1000, 0x42)
	if err := store.Record(ctx, []ulid.ULID{id}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.Record(ctx, []ulid.ULID{id}); err == nil {
		t.Fatal("expected duplicate insert to fail")
	}
}

func TestRecordEmptyBatchIsNoop(t *testing.T) {
	store := openTestStore(t)

	if err := store.Record(context.Background(), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open("  "); err == nil {
		t.Fatal("expected error for empty path")
	}
}
