package grammar

import (
	"regexp"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/httpurl/internal/util"
)

// uriRefRe is the URI reference expression from RFC 3986 Appendix B.
//
//	 12            3  4          5       6  7        8 9
//	^(([^:/?#]+):)?(//([^/?#]*))?([^?#]*)(\?([^#]*))?(#(.*))?
var uriRefRe = regexp.MustCompile(`^(([^:/?#]+):)?(//([^/?#]*))?([^?#]*)(\?([^#]*))?(#(.*))?`)

const (
	grpScheme    = 2
	grpAuthority = 4
	grpPath      = 5
	grpQuery     = 7
	grpFragment  = 9
)

// Reference contains raw components of a URI reference.
// Has* flags distinguish an absent component from a present but empty one.
type Reference struct {
	Scheme       string
	Authority    string
	Path         string
	Query        string
	Fragment     string
	HasScheme    bool
	HasAuthority bool
	HasQuery     bool
	HasFragment  bool
}

// ParseReference splits the input s (string or []byte) into URI reference components.
// Components are not decoded or validated.
// The whole input must be consumed by the grammar, otherwise [ErrMalformedInput] is returned.
func ParseReference[T ~string | ~[]byte](s T) (Reference, error) {
	src := string(s)
	m := uriRefRe.FindStringSubmatchIndex(src)
	if m == nil {
		return Reference{}, errtrace.Wrap(newMalformedInputErr("input does not match URI reference"))
	}
	if ml, il := m[1], len(src); ml < il {
		return Reference{}, errtrace.Wrap(newMalformedInputErr("match length %d < input length %d", ml, il))
	}

	group := func(i int) (string, bool) {
		if m[2*i] < 0 {
			return "", false
		}
		return src[m[2*i]:m[2*i+1]], true
	}

	var ref Reference
	ref.Scheme, ref.HasScheme = group(grpScheme)
	ref.Authority, ref.HasAuthority = group(grpAuthority)
	ref.Path, _ = group(grpPath)
	ref.Query, ref.HasQuery = group(grpQuery)
	ref.Fragment, ref.HasFragment = group(grpFragment)
	return ref, nil
}

// SplitAuthority splits the authority into the user info and "host[:port]" parts.
// The user info is the run of characters before the first "@".
func SplitAuthority(s string) (userinfo string, hasUserinfo bool, hostport string) {
	if ui, hp, ok := strings.Cut(s, "@"); ok {
		return ui, true, hp
	}
	return "", false, s
}

// SplitHostPort splits "host[:port]" at the first ":".
// The port is reported only when everything after the colon is a run of digits
// fitting into uint64, any other port text (e.g. "80x" or "80:90") is dropped.
func SplitHostPort(s string) (host string, port uint64, hasPort bool) {
	host, ps, ok := strings.Cut(s, ":")
	if !ok || !util.IsDigits(ps) {
		return host, 0, false
	}
	p, err := strconv.ParseUint(ps, 10, 64)
	if err != nil {
		return host, 0, false
	}
	return host, p, true
}
