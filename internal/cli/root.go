package cli

import (
	"os"
	"strings"

	"github.com/sortid/ulid/internal/platform"
	"github.com/spf13/cobra"
)

type RootOptions struct {
	JSONOutput   bool
	LogLevel     string
	LogFormat    string
	RegistryPath string
}

func newRootCmd() *cobra.Command {
	opts := &RootOptions{
		LogLevel:     envDefault("ULID_LOG_LEVEL", "info"),
		LogFormat:    envDefault("ULID_LOG_FORMAT", "text"),
		RegistryPath: envDefault("ULID_REGISTRY", ""),
	}
	cmd := &cobra.Command{
		Use:           "ulid",
		Short:         "Generate and inspect lexicographically sortable identifiers",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			_, err := platform.ConfigureLogger(opts.LogLevel, opts.LogFormat, cmd.ErrOrStderr())
			return err
		},
	}

	cmd.PersistentFlags().BoolVar(&opts.JSONOutput, "json", false, "Emit JSON output")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", opts.LogLevel, "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&opts.LogFormat, "log-format", opts.LogFormat, "Log format (text, json)")
	cmd.PersistentFlags().StringVar(&opts.RegistryPath, "registry", opts.RegistryPath, "Path to the SQLite registry of minted ids")

	cmd.AddCommand(
		newNewCmd(opts),
		newInspectCmd(opts),
		newConvertCmd(opts),
		newHistoryCmd(opts),
	)

	return cmd
}

func envDefault(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}
