// Package log provides logging utilities.
package log

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync/atomic"
	"time"

	"github.com/golang-cz/devslog"
	"github.com/phsym/console-slog"
	slogformatter "github.com/samber/slog-formatter"

	"github.com/ghettovoice/httpurl"
)

var newHandler = slogformatter.NewFormatterHandler(
	slogformatter.ErrorFormatter("error"),
	slogformatter.FormatByType(func(k httpurl.Kind) slog.Value {
		return slog.StringValue(k.String())
	}),
)

// Def is a default logger.
var Def = New(console.NewHandler(os.Stderr, &console.HandlerOptions{
	AddSource:  true,
	Level:      slog.LevelDebug,
	TimeFormat: time.RFC3339Nano,
}))

// Dev is a developer logger.
var Dev = New(devslog.NewHandler(os.Stderr, &devslog.Options{
	HandlerOptions: &slog.HandlerOptions{
		AddSource: true,
		Level:     slog.LevelDebug,
	},
	SortKeys:   true,
	TimeFormat: time.RFC3339Nano,
}))

type noopHandler struct{}

func (noopHandler) Enabled(context.Context, slog.Level) bool { return false }

func (noopHandler) Handle(context.Context, slog.Record) error { return nil }

func (h noopHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h noopHandler) WithGroup(string) slog.Handler { return h }

// Noop is a noop logger.
var Noop = slog.New(noopHandler{})

var defLogger atomic.Pointer[slog.Logger]

func init() { defLogger.Store(Def) }

// Default returns the process-wide logger, [Def] unless replaced with [SetDefault].
func Default() *slog.Logger { return defLogger.Load() }

// SetDefault replaces the process-wide logger. Nil resets it to [Def].
func SetDefault(l *slog.Logger) {
	if l == nil {
		l = Def
	}
	defLogger.Store(l)
}

// New wraps the handler with the formatters used by the package loggers.
func New(h slog.Handler) *slog.Logger { return slog.New(newHandler(h)) }

type fmtValue struct {
	v        any
	goSyntax bool
}

func (v fmtValue) LogValue() slog.Value {
	if v.goSyntax {
		return slog.StringValue(fmt.Sprintf("%#v", v.v))
	}
	return slog.StringValue(fmt.Sprintf("%+v", v.v))
}

// FmtValue returns a value logger that formats values using '%+v' or '%#v' syntax.
func FmtValue(v any, goSyntax bool) slog.LogValuer { return fmtValue{v, goSyntax} }

type calcValue struct{ fn func() any }

func (v calcValue) LogValue() slog.Value {
	cv := v.fn()
	switch cv := cv.(type) {
	case slog.Value:
		return cv
	default:
		return slog.AnyValue(cv)
	}
}

// CalcValue returns a value logger that computes a value using a fn.
func CalcValue(fn func() any) slog.LogValuer { return calcValue{fn} }
