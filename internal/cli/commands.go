package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	convertapp "github.com/sortid/ulid/internal/app/convert"
	inspectapp "github.com/sortid/ulid/internal/app/inspect"
	mintapp "github.com/sortid/ulid/internal/app/mint"
	"github.com/sortid/ulid/internal/infra/registry"
	"github.com/sortid/ulid/internal/platform"
	"github.com/sortid/ulid/pkg/ulid"
)

func newNewCmd(opts *RootOptions) *cobra.Command {
	var count int
	var monotonic bool
	var record bool
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Generate one or more ULIDs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			gen := ulid.NewGenerator(platform.RealClock{}, nil)
			var source mintapp.IDSource = gen
			if monotonic {
				source = retryingSource{gen: gen}
			}

			var recorder mintapp.Recorder
			if record {
				store, err := openRegistry(opts)
				if err != nil {
					return err
				}
				defer func() {
					_ = store.Close()
				}()
				recorder = store
			}

			service := mintapp.NewService(source, recorder)
			ids, err := service.Mint(cmd.Context(), mintapp.Options{
				Count:     count,
				Monotonic: monotonic,
			})
			if err != nil {
				return err
			}
			return writeIDs(cmd, ids, opts.JSONOutput)
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of ULIDs to generate")
	cmd.Flags().BoolVarP(&monotonic, "monotonic", "m", false, "Guarantee strictly increasing output")
	cmd.Flags().BoolVar(&record, "record", false, "Journal generated ids in the registry")
	return cmd
}

func newInspectCmd(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <ulid>...",
		Short: "Decode ULIDs into their components",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service := inspectapp.NewService()
			reports, err := service.Inspect(cmd.Context(), args)
			if err != nil {
				return err
			}
			return writeReports(cmd, reports, opts.JSONOutput)
		},
	}
}

func newConvertCmd(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert between ULID and UUID forms",
		RunE:  runHelp,
	}
	cmd.AddCommand(newConvertToUUIDCmd(opts), newConvertFromUUIDCmd(opts))
	return cmd
}

func newConvertToUUIDCmd(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "to-uuid <ulid>",
		Short: "Reinterpret a ULID as a UUID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service := convertapp.NewService()
			result, err := service.ToUUID(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return writeConvertResult(cmd, result, opts.JSONOutput, result.UUID)
		},
	}
}

func newConvertFromUUIDCmd(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "from-uuid <uuid>",
		Short: "Reinterpret a UUID as a ULID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service := convertapp.NewService()
			result, err := service.FromUUID(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return writeConvertResult(cmd, result, opts.JSONOutput, result.ULID)
		},
	}
}

func newHistoryCmd(opts *RootOptions) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded ids from the registry",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := openRegistry(opts)
			if err != nil {
				return err
			}
			defer func() {
				_ = store.Close()
			}()

			entries, err := store.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			return writeHistory(cmd, entries, opts.JSONOutput)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum entries to list (0 for all)")
	return cmd
}

func runHelp(cmd *cobra.Command, _ []string) error {
	return cmd.Help()
}

func openRegistry(opts *RootOptions) (*registry.Store, error) {
	if strings.TrimSpace(opts.RegistryPath) == "" {
		return nil, ExitError{
			Code:    ExitInvalid,
			Kind:    KindValidation,
			Message: "a registry path is required (--registry or ULID_REGISTRY)",
		}
	}
	return registry.Open(opts.RegistryPath)
}

// retryingSource waits out an exhausted millisecond instead of
// failing the batch; retry policy belongs to the caller, not the
// generator.
type retryingSource struct {
	gen *ulid.Generator
}

func (r retryingSource) New() (ulid.ULID, error) {
	return r.gen.New()
}

func (r retryingSource) NewMonotonic() (ulid.ULID, error) {
	for {
		id, err := r.gen.NewMonotonic()
		if !errors.Is(err, ulid.ErrMonotonicExhausted) {
			return id, err
		}
		slog.Warn("monotonic randomness exhausted, waiting for the next millisecond")
		time.Sleep(time.Millisecond)
	}
}

type idsOutput struct {
	ULIDs []string `json:"ulids"`
}

type reportOutput struct {
	Canonical  string `json:"canonical"`
	Timestamp  uint64 `json:"timestamp_ms"`
	Time       string `json:"time"`
	Randomness string `json:"randomness"`
	Bytes      string `json:"bytes"`
	UUID       string `json:"uuid"`
}

type convertOutput struct {
	ULID string `json:"ulid"`
	UUID string `json:"uuid"`
}

type historyOutput struct {
	Entries []historyEntryOutput `json:"entries"`
}

type historyEntryOutput struct {
	ULID     string `json:"ulid"`
	MintedMS uint64 `json:"minted_ms"`
}

func writeIDs(cmd *cobra.Command, ids []ulid.ULID, asJSON bool) error {
	if asJSON {
		out := idsOutput{ULIDs: make([]string, 0, len(ids))}
		for _, id := range ids {
			out.ULIDs = append(out.ULIDs, id.String())
		}
		return writeJSON(cmd, out)
	}
	for _, id := range ids {
		fmt.Fprintln(cmd.OutOrStdout(), id.String())
	}
	return nil
}

func writeReports(cmd *cobra.Command, reports []inspectapp.Report, asJSON bool) error {
	if asJSON {
		out := make([]reportOutput, 0, len(reports))
		for _, report := range reports {
			out = append(out, reportOutput(report))
		}
		return writeJSON(cmd, out)
	}

	ui := newRenderer(cmd.OutOrStdout(), false)
	for i, report := range reports {
		if i > 0 {
			fmt.Fprintln(cmd.OutOrStdout())
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.key("ULID:"), report.Canonical)
		fmt.Fprintf(cmd.OutOrStdout(), "%s %d %s\n", ui.key("Timestamp:"), report.Timestamp, ui.dim(report.Time))
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.key("Randomness:"), report.Randomness)
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.key("Bytes:"), report.Bytes)
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.key("UUID:"), report.UUID)
	}
	return nil
}

func writeConvertResult(cmd *cobra.Command, result convertapp.Result, asJSON bool, plain string) error {
	if asJSON {
		return writeJSON(cmd, convertOutput{ULID: result.ULID, UUID: result.UUID})
	}
	fmt.Fprintln(cmd.OutOrStdout(), plain)
	return nil
}

func writeHistory(cmd *cobra.Command, entries []registry.Entry, asJSON bool) error {
	if asJSON {
		out := historyOutput{Entries: make([]historyEntryOutput, 0, len(entries))}
		for _, entry := range entries {
			out.Entries = append(out.Entries, historyEntryOutput{
				ULID:     entry.Canonical,
				MintedMS: entry.MintedMS,
			})
		}
		return writeJSON(cmd, out)
	}

	ui := newRenderer(cmd.OutOrStdout(), false)
	for _, entry := range entries {
		stamp := time.UnixMilli(int64(entry.MintedMS)).UTC().Format(time.RFC3339)
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", entry.Canonical, ui.dim(stamp))
	}
	return nil
}

func writeJSON(cmd *cobra.Command, payload any) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
