package main

import (
	"errors"
	"fmt"

	goerrors "github.com/agilira/go-errors"

	"github.com/agilira/mkinfo/makeinfo"
)

// Error codes raised by the command line tool.
const (
	ErrCodeSourceUnavailable goerrors.ErrorCode = "SOURCE_UNAVAILABLE"
	ErrCodeConfigInvalid     goerrors.ErrorCode = "CONFIG_INVALID"
	ErrCodeOutput            goerrors.ErrorCode = "OUTPUT_FAILED"
)

// Exception messages, each taking the subject of the failure.
var exceptions = map[goerrors.ErrorCode]string{
	ErrCodeSourceUnavailable: "cannot read Makefile '%s'. Make sure the project is generated by STM32CubeMX",
	ErrCodeConfigInvalid:     "invalid configuration file '%s'",
	ErrCodeOutput:            "cannot write %s output",
}

// Process exit status per error code. Anything else exits with 1.
var exitCodes = map[goerrors.ErrorCode]int{
	ErrCodeSourceUnavailable:       2,
	ErrCodeConfigInvalid:           3,
	makeinfo.ErrCodeMalformedBlock: 4,
}

// raise wraps cause with the message registered for code.
func raise(code goerrors.ErrorCode, cause error, subject string) error {
	return goerrors.Wrap(cause, code, fmt.Sprintf(exceptions[code], subject)).
		WithContext("subject", subject)
}

// exitCode maps err to the process exit status.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var e *goerrors.Error
	if errors.As(err, &e) {
		if code, ok := exitCodes[e.Code]; ok {
			return code
		}
	}
	return 1
}
