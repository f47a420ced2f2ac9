package cli

import (
	"errors"

	"github.com/spf13/pflag"
)

func Execute() int {
	cmd := newRootCmd()
	err := cmd.Execute()
	if err == nil {
		return 0
	}
	if errors.Is(err, pflag.ErrHelp) {
		return 0
	}

	asJSON := false
	if flag := cmd.PersistentFlags().Lookup("json"); flag != nil {
		asJSON, _ = cmd.PersistentFlags().GetBool("json")
	}

	exitErr := NormalizeError(err)
	_ = writeCLIError(cmd.ErrOrStderr(), exitErr, asJSON)
	return exitErr.Code
}
