package httpurl

//go:generate go tool errtrace -w .

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/httpurl/internal/grammar"
	"github.com/ghettovoice/httpurl/internal/ioutil"
	"github.com/ghettovoice/httpurl/internal/types"
	"github.com/ghettovoice/httpurl/internal/util"
)

// Addr represents a network address consisting of a host and optional port.
type Addr = types.Addr

// RenderOptions contains options for rendering URLs.
type RenderOptions = types.RenderOptions

// Kind classifies a URL as absolute or relative.
type Kind uint8

const (
	// Relative URL has neither scheme nor authority, e.g. "/a/b?c".
	Relative Kind = iota
	// Absolute URL has a scheme or an authority, e.g. "https://example.com/" or "//example.com/".
	Absolute
)

func (k Kind) String() string {
	switch k {
	case Relative:
		return "relative"
	case Absolute:
		return "absolute"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

const redactedPassword = "xxxxx"

var _ types.Renderer = (*URL)(nil)

// URL is a parsed http/https URL or a relative reference.
//
// All components except the query are fixed at parse time.
// The query can be changed with parameter methods such as [URL.SetParam].
// The zero value is an empty relative reference.
type URL struct {
	scheme   string
	userinfo string
	addr     Addr
	path     string
	query    string
	fragment string
	kind     Kind

	hasScheme    bool
	hasUserinfo  bool
	hasAuthority bool
	hasQuery     bool
	hasFragment  bool
}

// Parse parses a URL from the given input src (string or []byte).
//
// The input is split with the generic URI reference grammar of RFC 3986 Appendix B.
// The URL is [Absolute] if the input has a scheme or an authority ("//..."),
// otherwise it is [Relative]. The scheme of an absolute URL must be http or https
// in any letter case, otherwise [ErrInvalidScheme] is returned.
// A port which is not a decimal number in the uint64 range is dropped.
// Components are not decoded.
func Parse[T ~string | ~[]byte](src T) (*URL, error) {
	ref, err := grammar.ParseReference(src)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	u := &URL{
		scheme:      ref.Scheme,
		path:        ref.Path,
		query:       ref.Query,
		fragment:    ref.Fragment,
		hasScheme:   ref.HasScheme,
		hasQuery:    ref.HasQuery,
		hasFragment: ref.HasFragment,
	}
	if !ref.HasScheme && !ref.HasAuthority {
		return u, nil
	}

	u.kind = Absolute
	if ref.HasScheme && !isHTTPScheme(ref.Scheme) {
		return nil, errtrace.Wrap(newInvalidSchemeErr("%q must be http or https for an absolute URL", ref.Scheme))
	}
	if ref.HasAuthority {
		var hostport string
		u.userinfo, u.hasUserinfo, hostport = grammar.SplitAuthority(ref.Authority)
		u.addr = types.ParseAddr(hostport)
		u.hasAuthority = true
	}
	return u, nil
}

func isHTTPScheme(s string) bool { return util.EqFold(s, "http") || util.EqFold(s, "https") }

// Kind returns the URL kind determined at parse time.
func (u *URL) Kind() Kind {
	if u == nil {
		return Relative
	}
	return u.kind
}

func (u *URL) IsAbsolute() bool { return u.Kind() == Absolute }

func (u *URL) IsRelative() bool { return u.Kind() == Relative }

// IsSecure reports whether the URL scheme is exactly "https".
// The comparison is case-sensitive, so "HTTPS://example.com" is not secure.
// For a relative URL it returns [ErrUnsupportedOperation].
func (u *URL) IsSecure() (bool, error) {
	if !u.IsAbsolute() {
		return false, errtrace.Wrap(newUnsupportedOpErr("secure check of a relative URL"))
	}
	return u.hasScheme && u.scheme == "https", nil
}

// Scheme returns the scheme as it was written in the source and whether it is present.
func (u *URL) Scheme() (string, bool) {
	if u == nil {
		return "", false
	}
	return u.scheme, u.hasScheme
}

// UserInfo returns the user info of the authority and whether it is present.
func (u *URL) UserInfo() (string, bool) {
	if u == nil {
		return "", false
	}
	return u.userinfo, u.hasUserinfo
}

// Host returns the host and whether the URL has an authority.
// The host may be empty for URLs like "http:///path".
func (u *URL) Host() (string, bool) {
	if u == nil {
		return "", false
	}
	return u.addr.Host(), u.hasAuthority
}

// Port returns the port and whether it is set.
func (u *URL) Port() (uint64, bool) {
	if u == nil {
		return 0, false
	}
	return u.addr.Port()
}

// Addr returns the host and port of the URL.
func (u *URL) Addr() Addr {
	if u == nil {
		return Addr{}
	}
	return u.addr
}

// Authority returns "[userinfo@]host[:port]" and whether the URL has an authority.
func (u *URL) Authority() (string, bool) {
	if u == nil {
		return "", false
	}
	if !u.hasUserinfo {
		return u.addr.String(), u.hasAuthority
	}
	return u.userinfo + "@" + u.addr.String(), u.hasAuthority
}

func redactUserinfo(ui string) string {
	if name, _, ok := strings.Cut(ui, ":"); ok {
		return name + ":" + redactedPassword
	}
	return ui
}

// Path returns the raw path, it is empty if the source had no path.
func (u *URL) Path() string {
	if u == nil {
		return ""
	}
	return u.path
}

// Query returns the raw query without leading "?" and whether it is present.
func (u *URL) Query() (string, bool) {
	if u == nil {
		return "", false
	}
	return u.query, u.hasQuery
}

// Fragment returns the raw fragment without leading "#" and whether it is present.
func (u *URL) Fragment() (string, bool) {
	if u == nil {
		return "", false
	}
	return u.fragment, u.hasFragment
}

// Clone returns a copy of the URL.
func (u *URL) Clone() *URL {
	if u == nil {
		return nil
	}
	u2 := *u
	return &u2
}

// RenderTo writes the URL to the provided writer.
// Components absent in the URL are written without their delimiters.
func (u *URL) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if u == nil {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	if u.hasScheme {
		cw.Fprint(u.scheme, ":")
	}
	if u.hasAuthority {
		cw.Fprint("//")
		if u.hasUserinfo {
			ui := u.userinfo
			if opts.IsRedact() {
				ui = redactUserinfo(ui)
			}
			cw.Fprint(ui, "@")
		}
		cw.Call(func(w io.Writer) (int, error) { return u.addr.RenderTo(w, opts) })
	}
	if u.path != "" {
		cw.WriteString(u.path)
	}
	if u.hasQuery {
		cw.Fprint("?", u.query)
	}
	if u.hasFragment {
		cw.Fprint("#", u.fragment)
	}
	return errtrace.Wrap2(cw.Result())
}

// Render returns the string representation of the URL.
func (u *URL) Render(opts *RenderOptions) string {
	if u == nil {
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	u.RenderTo(sb, opts) //nolint:errcheck
	return sb.String()
}

// String returns the string representation of the URL.
func (u *URL) String() string {
	if u == nil {
		return ""
	}
	return u.Render(nil)
}

// Redacted is like [URL.String] but replaces the password of the user info with "xxxxx".
func (u *URL) Redacted() string {
	return u.Render(&RenderOptions{Redact: true})
}

// Format implements fmt.Formatter for custom formatting of the URL.
func (u *URL) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		if f.Flag('+') {
			u.RenderTo(f, nil) //nolint:errcheck
			return
		}
		fmt.Fprint(f, u.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(u.String()))
		return
	default:
		if !f.Flag('+') && !f.Flag('#') {
			fmt.Fprint(f, u.String())
			return
		}

		type hideMethods URL
		type URL hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*URL)(u))
		return
	}
}

// Equal compares this URL with another for equality.
// Schemes and hosts are compared case-insensitively, other components exactly.
func (u *URL) Equal(val any) bool {
	var other *URL
	switch v := val.(type) {
	case URL:
		other = &v
	case *URL:
		other = v
	default:
		return false
	}

	if u == other {
		return true
	} else if u == nil || other == nil {
		return false
	}

	return u.kind == other.kind &&
		u.hasScheme == other.hasScheme && util.EqFold(u.scheme, other.scheme) &&
		u.hasUserinfo == other.hasUserinfo && u.userinfo == other.userinfo &&
		u.hasAuthority == other.hasAuthority && u.addr.Equal(other.addr) &&
		u.path == other.path &&
		u.hasQuery == other.hasQuery && u.query == other.query &&
		u.hasFragment == other.hasFragment && u.fragment == other.fragment
}

// IsValid checks whether the URL satisfies the scheme constraint of absolute URLs.
func (u *URL) IsValid() bool {
	return u != nil && (u.kind == Relative || !u.hasScheme || isHTTPScheme(u.scheme))
}

// MarshalText implements [encoding.TextMarshaler].
func (u *URL) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (u *URL) UnmarshalText(text []byte) error {
	u1, err := Parse(text)
	if err != nil {
		*u = URL{}
		return errtrace.Wrap(err)
	}
	*u = *u1
	return nil
}

// LogValue implements [slog.LogValuer].
// The password of the user info is redacted.
func (u *URL) LogValue() slog.Value {
	if u == nil {
		return slog.Value{}
	}

	attrs := make([]slog.Attr, 0, 8)
	attrs = append(attrs, slog.String("kind", u.kind.String()))
	if u.hasScheme {
		attrs = append(attrs, slog.String("scheme", u.scheme))
	}
	if u.hasUserinfo {
		attrs = append(attrs, slog.String("userinfo", redactUserinfo(u.userinfo)))
	}
	if u.hasAuthority {
		attrs = append(attrs, slog.String("host", u.addr.Host()))
	}
	if port, ok := u.addr.Port(); ok {
		attrs = append(attrs, slog.Uint64("port", port))
	}
	attrs = append(attrs, slog.String("path", u.path))
	if u.hasQuery {
		attrs = append(attrs, slog.String("query", u.query))
	}
	if u.hasFragment {
		attrs = append(attrs, slog.String("fragment", u.fragment))
	}
	return slog.GroupValue(attrs...)
}
