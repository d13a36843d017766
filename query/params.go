// Package query implements an ordered parameter view of a raw URL query string.
//
// The query is split on "&" into tokens, each token is split once on the first "="
// into the parameter name and value. A token without "=" is a flag parameter:
// it is present but has no value, which is different from a parameter with an empty value:
//
//	a=1&flag&empty=
//
// contains "a" with value "1", "flag" without value and "empty" with the empty value.
//
// Duplicate names collapse to a single parameter: the last value wins,
// the position of the first occurrence is kept.
// Neither names nor values are percent-decoded or encoded.
package query

//go:generate go tool errtrace -w .

import (
	"fmt"
	"iter"
	"log/slog"
	"maps"
	"slices"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/httpurl/internal/errorutil"
	"github.com/ghettovoice/httpurl/internal/util"
)

// Param is a single query parameter.
type Param struct {
	Name  string
	Value string
	// HasValue is false for flag parameters like "?debug".
	HasValue bool
}

// String returns "name" or "name=value".
func (p Param) String() string {
	if !p.HasValue {
		return p.Name
	}
	return p.Name + "=" + p.Value
}

// Params is an ordered set of query parameters with unique names.
// The zero value is an empty set ready to use.
// Params is not safe for concurrent modification.
type Params struct {
	list []Param
	idx  map[string]int
}

// Parse builds parameters from the raw query string (without leading "?").
// Empty tokens are skipped, so the empty query yields empty parameters.
func Parse(raw string) *Params {
	ps := new(Params)
	for tok := range strings.SplitSeq(raw, "&") {
		if tok == "" {
			continue
		}
		name, val, ok := strings.Cut(tok, "=")
		ps.put(Param{Name: name, Value: val, HasValue: ok})
	}
	return ps
}

func (ps *Params) put(p Param) {
	if i, ok := ps.idx[p.Name]; ok {
		ps.list[i] = p
		return
	}
	if ps.idx == nil {
		ps.idx = make(map[string]int)
	}
	ps.idx[p.Name] = len(ps.list)
	ps.list = append(ps.list, p)
}

// Len returns the number of parameters.
func (ps *Params) Len() int {
	if ps == nil {
		return 0
	}
	return len(ps.list)
}

// Has reports whether the parameter is present, with or without value.
func (ps *Params) Has(name string) bool {
	_, ok := ps.Lookup(name)
	return ok
}

// Get returns the value of the parameter and whether the value is defined.
// It returns false both for absent and for flag parameters, use [Params.Has] to tell them apart.
func (ps *Params) Get(name string) (string, bool) {
	p, ok := ps.Lookup(name)
	if !ok || !p.HasValue {
		return "", false
	}
	return p.Value, true
}

// Lookup returns the parameter with the given name and whether it is present.
func (ps *Params) Lookup(name string) (Param, bool) {
	if ps == nil {
		return Param{}, false
	}
	i, ok := ps.idx[name]
	if !ok {
		return Param{}, false
	}
	return ps.list[i], true
}

// Set inserts or overwrites the parameter with a value.
// An existing parameter keeps its position, a new one is appended.
func (ps *Params) Set(name, value string) *Params {
	ps.put(Param{Name: name, Value: value, HasValue: true})
	return ps
}

// SetFlag inserts or overwrites the parameter without value.
func (ps *Params) SetFlag(name string) *Params {
	ps.put(Param{Name: name})
	return ps
}

// Del deletes the parameter. It is a no-op if the parameter is absent.
func (ps *Params) Del(name string) *Params {
	if ps == nil {
		return nil
	}
	i, ok := ps.idx[name]
	if !ok {
		return ps
	}
	ps.list = slices.Delete(ps.list, i, i+1)
	delete(ps.idx, name)
	for j := i; j < len(ps.list); j++ {
		ps.idx[ps.list[j].Name] = j
	}
	return ps
}

// All returns an iterator over parameters in order.
func (ps *Params) All() iter.Seq[Param] {
	return func(yield func(Param) bool) {
		if ps == nil {
			return
		}
		for _, p := range ps.list {
			if !yield(p) {
				return
			}
		}
	}
}

// Names returns parameter names in order.
func (ps *Params) Names() []string {
	if ps == nil {
		return nil
	}
	names := make([]string, len(ps.list))
	for i, p := range ps.list {
		names[i] = p.Name
	}
	return names
}

// String flattens parameters back into the raw query string.
func (ps *Params) String() string {
	if ps.Len() == 0 {
		return ""
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	for i, p := range ps.list {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(p.Name)
		if p.HasValue {
			sb.WriteByte('=')
			sb.WriteString(p.Value)
		}
	}
	return sb.String()
}

// Format implements fmt.Formatter for custom formatting of the parameters.
// Verbs %+v and %#v print the parameter list, so values with delimiters stay visible.
func (ps *Params) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, ps.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(ps.String()))
		return
	default:
		if !f.Flag('+') && !f.Flag('#') {
			fmt.Fprint(f, ps.String())
			return
		}
		fmt.Fprintf(f, fmt.FormatString(f, verb), slices.Collect(ps.All()))
		return
	}
}

// Clone returns a deep copy of the parameters.
func (ps *Params) Clone() *Params {
	if ps == nil {
		return nil
	}
	return &Params{
		list: slices.Clone(ps.list),
		idx:  maps.Clone(ps.idx),
	}
}

// Equal reports whether both sets contain the same parameters regardless of order.
// Names and values are compared exactly.
func (ps *Params) Equal(val any) bool {
	var other *Params
	switch v := val.(type) {
	case Params:
		other = &v
	case *Params:
		other = v
	default:
		return false
	}

	if ps.Len() != other.Len() {
		return false
	}
	for p := range ps.All() {
		if p2, ok := other.Lookup(p.Name); !ok || p2 != p {
			return false
		}
	}
	return true
}

// Validate checks that the parameters survive a flatten and parse cycle unchanged:
// names must not contain "&", "=" or "#", values must not contain "&" or "#".
func (ps *Params) Validate() error {
	for p := range ps.All() {
		if strings.ContainsAny(p.Name, "&=#") {
			return errtrace.Wrap(errorutil.NewInvalidArgumentError("parameter name %q contains a delimiter", p.Name))
		}
		if strings.ContainsAny(p.Value, "&#") {
			return errtrace.Wrap(errorutil.NewInvalidArgumentError("parameter %q value contains a delimiter", p.Name))
		}
	}
	return nil
}

// LogValue implements [slog.LogValuer].
// Flag parameters are logged as boolean true.
func (ps *Params) LogValue() slog.Value {
	if ps == nil {
		return slog.Value{}
	}
	attrs := make([]slog.Attr, 0, ps.Len())
	for p := range ps.All() {
		if p.HasValue {
			attrs = append(attrs, slog.String(p.Name, p.Value))
		} else {
			attrs = append(attrs, slog.Bool(p.Name, true))
		}
	}
	return slog.GroupValue(attrs...)
}
