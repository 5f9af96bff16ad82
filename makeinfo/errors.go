package makeinfo

import (
	"errors"

	goerrors "github.com/agilira/go-errors"
)

// Error codes reported by this package.
const (
	ErrCodeMalformedBlock goerrors.ErrorCode = "MKINFO_MALFORMED_BLOCK"
	ErrCodeUnknownField   goerrors.ErrorCode = "MKINFO_UNKNOWN_FIELD"
)

func malformedBlockError(field, key string, collected int) error {
	return goerrors.New(ErrCodeMalformedBlock, "continuation block "+key+" is not terminated before end of input").
		WithContext("field", field).
		WithContext("key", key).
		WithContext("collected", collected)
}

func unknownFieldError(field string) error {
	return goerrors.New(ErrCodeUnknownField, "unknown field "+field).
		WithContext("field", field)
}

// IsMalformedBlock reports whether err, or any error it wraps, is an
// unterminated continuation block reported in strict mode.
func IsMalformedBlock(err error) bool {
	return hasCode(err, ErrCodeMalformedBlock)
}

// IsUnknownField reports whether err names a field the schema lacks.
func IsUnknownField(err error) bool {
	return hasCode(err, ErrCodeUnknownField)
}

func hasCode(err error, code goerrors.ErrorCode) bool {
	var e *goerrors.Error
	return errors.As(err, &e) && e.Code == code
}
