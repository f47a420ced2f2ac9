package cli

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sortid/ulid/pkg/ulid"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestNewCommandGeneratesValidIDs(t *testing.T) {
	out, err := runCLI(t, "new", "--count", "3", "--monotonic")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	var prev ulid.ULID
	for i, line := range lines {
		id, err := ulid.Parse(line)
		if err != nil {
			t.Fatalf("line %d is not a ulid: %v", i, err)
		}
		if i > 0 && id.Compare(prev) != 1 {
			t.Fatalf("expected strictly increasing output at line %d", i)
		}
		prev = id
	}
}

func TestNewCommandJSONOutput(t *testing.T) {
	out, err := runCLI(t, "--json", "new", "--count", "2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var payload struct {
		ULIDs []string `json:"ulids"`
	}
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(payload.ULIDs) != 2 {
		t.Fatalf("expected 2 ids, got %d", len(payload.ULIDs))
	}
}

func TestInspectCommand(t *testing.T) {
	out, err := runCLI(t, "--json", "inspect", "01ARZ3NDEKTSV4RRFFQ69G5FAV")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var reports []struct {
		Canonical string `json:"canonical"`
		Timestamp uint64 `json:"timestamp_ms"`
	}
	if err := json.Unmarshal([]byte(out), &reports); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(reports) != 1 || reports[0].Timestamp != 1469922850259 {
		t.Fatalf("unexpected reports %+v", reports)
	}
}

func TestInspectCommandRejectsMalformedInput(t *testing.T) {
	_, err := runCLI(t, "inspect", "bogus")
	if err == nil {
		t.Fatal("expected error")
	}
	if NormalizeError(err).Code != ExitInvalid {
		t.Fatalf("expected validation exit code, got %d", NormalizeError(err).Code)
	}
}

func TestConvertCommands(t *testing.T) {
	out, err := runCLI(t, "convert", "to-uuid", "3Q38XWW0Q98GMAD3NHWZM2PZWZ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != "771a3bce-02e9-4428-a68e-b1e7e82b7f9f" {
		t.Fatalf("unexpected output %q", out)
	}

	out, err = runCLI(t, "convert", "from-uuid", "771a3bce-02e9-4428-a68e-b1e7e82b7f9f")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != "3Q38XWW0Q98GMAD3NHWZM2PZWZ" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestRecordAndHistoryCommands(t *testing.T) {
	registryPath := filepath.Join(t.TempDir(), "registry.db")

	if _, err := runCLI(t, "--registry", registryPath, "new", "--count", "2", "--monotonic", "--record"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out, err := runCLI(t, "--json", "--registry", registryPath, "history")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var payload struct {
		Entries []struct {
			ULID     string `json:"ulid"`
			MintedMS uint64 `json:"minted_ms"`
		} `json:"entries"`
	}
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(payload.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(payload.Entries))
	}
	if payload.Entries[1].ULID <= payload.Entries[0].ULID {
		t.Fatal("expected entries sorted ascending")
	}
}

func TestHistoryRequiresRegistry(t *testing.T) {
	_, err := runCLI(t, "history")
	if err == nil {
		t.Fatal("expected error")
	}
	if NormalizeError(err).Code != ExitInvalid {
		t.Fatalf("expected validation exit code, got %d", NormalizeError(err).Code)
	}
}
