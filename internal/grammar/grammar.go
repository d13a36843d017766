// Package grammar implements the generic URI reference grammar
// of RFC 3986 Appendix B and the lenient authority sub-grammar on top of it.
package grammar

//go:generate go tool errtrace -w .

import "github.com/ghettovoice/httpurl/internal/errorutil"

type Error string

func (e Error) Error() string { return string(e) }

func (Error) Grammar() bool { return true }

const ErrMalformedInput Error = "malformed input"

func newMalformedInputErr(args ...any) error {
	return errorutil.NewWrapperError(ErrMalformedInput, args...) //errtrace:skip
}
