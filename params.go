package httpurl

import "github.com/ghettovoice/httpurl/query"

// Params returns the query parameters parsed from the current query.
// The result is a snapshot: changing it does not affect the URL until it is passed to [URL.SetParams].
func (u *URL) Params() *query.Params {
	q, _ := u.Query()
	return query.Parse(q)
}

// SetParams replaces the query with the flattened parameters.
// Empty parameters remove the query together with its "?" delimiter.
// It returns the receiver to allow chaining.
func (u *URL) SetParams(ps *query.Params) *URL {
	if ps.Len() == 0 {
		u.query, u.hasQuery = "", false
		return u
	}
	u.query, u.hasQuery = ps.String(), true
	return u
}

// HasParam reports whether the query contains the parameter, with or without value.
func (u *URL) HasParam(name string) bool {
	return u.Params().Has(name)
}

// Param returns the value of the query parameter and whether the value is defined.
// Flag parameters ("?debug") and absent parameters both report false, see [URL.HasParam].
func (u *URL) Param(name string) (string, bool) {
	return u.Params().Get(name)
}

// SetParam sets the query parameter to the value, overwriting the previous one.
// Name and value are written as is, they must not contain query delimiters.
// It returns the receiver to allow chaining.
func (u *URL) SetParam(name, value string) *URL {
	return u.SetParams(u.Params().Set(name, value))
}

// SetParamFlag sets the query parameter without value.
// It returns the receiver to allow chaining.
func (u *URL) SetParamFlag(name string) *URL {
	return u.SetParams(u.Params().SetFlag(name))
}

// DelParam deletes the query parameter.
// The query is left untouched if the parameter is absent.
// Deleting the last parameter removes the query together with its "?" delimiter,
// so "http://h/?a" becomes "http://h/" and [URL.Query] reports false.
// It returns the receiver to allow chaining.
func (u *URL) DelParam(name string) *URL {
	ps := u.Params()
	if !ps.Has(name) {
		return u
	}
	return u.SetParams(ps.Del(name))
}
