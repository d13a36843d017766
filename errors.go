package httpurl

import (
	"github.com/ghettovoice/httpurl/internal/errorutil"
	"github.com/ghettovoice/httpurl/internal/grammar"
)

// Error is the type of the sentinel errors returned by the package.
type Error = errorutil.Error

const (
	// ErrMalformedInput is returned by [Parse] when the input can not be split into
	// URI reference components. Errors wrapping it are grammar errors.
	ErrMalformedInput = grammar.ErrMalformedInput
	// ErrInvalidScheme is returned by [Parse] for an absolute URL with a scheme other than http or https.
	ErrInvalidScheme Error = "invalid scheme"
	// ErrUnsupportedOperation is returned when an operation is undefined for the URL kind.
	ErrUnsupportedOperation Error = "unsupported operation"
)

func newInvalidSchemeErr(args ...any) error {
	return errorutil.NewWrapperError(ErrInvalidScheme, args...) //errtrace:skip
}

func newUnsupportedOpErr(args ...any) error {
	return errorutil.NewWrapperError(ErrUnsupportedOperation, args...) //errtrace:skip
}

// IsGrammarErr reports whether the error is caused by malformed input.
func IsGrammarErr(err error) bool { return errorutil.IsGrammarErr(err) }
