package commands

import (
	"context"
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

// Text codes attached to wrapped command errors so API layers can translate
// them without string matching.
const (
	codeValidationFailed = "CMD_VALIDATION_FAILED"
	codeContextCanceled  = "CMD_CANCELED"
	codeContextTimeout   = "CMD_TIMEOUT"
	codeContextError     = "CMD_CONTEXT_ERROR"
	codeExecutionFailed  = "CMD_EXECUTION_FAILED"
)

func wrapCommand(err error, category goerrors.Category, msg, code string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, category, msg).WithTextCode(code)
}

func wrapValidationError(err error) error {
	return wrapCommand(err, goerrors.CategoryValidation, "command validation failed", codeValidationFailed)
}

func wrapContextError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.Canceled):
		return wrapCommand(err, goerrors.CategoryCommand, "command canceled", codeContextCanceled)
	case errors.Is(err, context.DeadlineExceeded):
		return wrapCommand(err, goerrors.CategoryCommand, "command deadline exceeded", codeContextTimeout)
	default:
		return wrapCommand(err, goerrors.CategoryCommand, "command context error", codeContextError)
	}
}

func wrapExecuteError(err error) error {
	return wrapCommand(err, goerrors.CategoryCommand, "command execution failed", codeExecutionFailed)
}
