package cli

import "github.com/gruntwork-io/tagexpr/internal/errors"

// ExitCodeGeneralError is used for errors that do not carry an exit code.
const ExitCodeGeneralError = 1

// ExitCode returns the exit code carried by err, 0 for a nil error.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var exitCodeErr errors.ErrorWithExitCode
	if errors.As(err, &exitCodeErr) {
		return exitCodeErr.ExitCode
	}

	var exitCoder interface{ ExitCode() int }
	if errors.As(err, &exitCoder) {
		return exitCoder.ExitCode()
	}

	return ExitCodeGeneralError
}
