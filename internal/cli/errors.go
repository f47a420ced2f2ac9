package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	convertapp "github.com/sortid/ulid/internal/app/convert"
	inspectapp "github.com/sortid/ulid/internal/app/inspect"
	mintapp "github.com/sortid/ulid/internal/app/mint"
	"github.com/sortid/ulid/pkg/ulid"
)

type ErrorKind string

const (
	KindInternal   ErrorKind = "internal"
	KindValidation ErrorKind = "validation"
	KindExhausted  ErrorKind = "exhausted"
)

const (
	ExitInternal  = 1
	ExitInvalid   = 2
	ExitExhausted = 3
)

type ExitError struct {
	Code    int
	Kind    ErrorKind
	Message string
	Err     error
}

func (e ExitError) Error() string {
	return errorMessage(e)
}

func NormalizeError(err error) ExitError {
	if err == nil {
		return ExitError{Code: 0}
	}
	var exitErr ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Code == 0 {
			exitErr.Code = ExitInternal
		}
		return exitErr
	}

	switch {
	case errors.Is(err, ulid.ErrMonotonicExhausted):
		return ExitError{Code: ExitExhausted, Kind: KindExhausted, Err: err}
	case errors.Is(err, ulid.ErrInvalidLength),
		errors.Is(err, ulid.ErrInvalidCharacter),
		errors.Is(err, ulid.ErrBigTime),
		errors.Is(err, mintapp.ErrInvalidCount),
		errors.Is(err, inspectapp.ErrValueRequired),
		errors.Is(err, convertapp.ErrValueRequired):
		return ExitError{Code: ExitInvalid, Kind: KindValidation, Err: err}
	default:
		return ExitError{Code: ExitInternal, Kind: KindInternal, Err: err}
	}
}

func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return NormalizeError(err).Code
}

func errorMessage(exitErr ExitError) string {
	if exitErr.Message != "" {
		return exitErr.Message
	}
	if exitErr.Err != nil {
		return exitErr.Err.Error()
	}
	return "unknown error"
}

func writeCLIError(w io.Writer, exitErr ExitError, asJSON bool) error {
	if exitErr.Code == 0 {
		return nil
	}
	message := errorMessage(exitErr)
	if asJSON {
		payload := struct {
			Code    int    `json:"code"`
			Kind    string `json:"kind"`
			Message string `json:"message"`
		}{
			Code:    exitErr.Code,
			Kind:    string(exitErr.Kind),
			Message: message,
		}
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(payload)
	}

	ui := newRenderer(w, false)
	prefix := "Error"
	if exitErr.Kind != "" {
		prefix = fmt.Sprintf("Error (%s)", exitErr.Kind)
	}
	_, err := fmt.Fprintf(w, "%s: %s\n", ui.err(prefix), message)
	return err
}
