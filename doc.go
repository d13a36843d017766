// Package httpurl provides an http/https URL value type with parsing, serialization
// and query parameter access.
//
// # Parsing
//
// [Parse] splits the input with the generic URI reference grammar of RFC 3986 Appendix B:
//
//	^(([^:/?#]+):)?(//([^/?#]*))?([^?#]*)(\?([^#]*))?(#(.*))?
//
// The authority is further split into optional user info (before the first "@"),
// host (up to the first ":") and optional port (digits only):
//
//	u, err := httpurl.Parse("https://stackoverflow.com:785/questions/3213531?this=test&bleeh#3213643")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	host, _ := u.Host()     // "stackoverflow.com"
//	port, _ := u.Port()     // 785
//	secure, _ := u.IsSecure() // true
//
// A URL with a scheme or an authority is [Absolute], anything else is [Relative].
// Absolute URLs are restricted to the http and https schemes, any other scheme fails with [ErrInvalidScheme]:
//
//	_, err := httpurl.Parse("ftp://example.com/")
//	errors.Is(err, httpurl.ErrInvalidScheme) // true
//
// Parsing is lenient otherwise: a non-numeric port is dropped, path, query and fragment
// are not validated and never decoded.
//
// # Serialization
//
// [URL.String] reassembles the components. Delimiters of absent components are omitted,
// while present but empty components keep them, so "http://host/?" and "http://host/"
// render differently. Parsing the rendered string gives back an equal URL.
// [URL.Redacted] hides the password of the user info.
//
// # Query parameters
//
// The raw query is exposed through parameter methods that parse it into [query.Params],
// apply the change and flatten the result back:
//
//	u, _ := httpurl.Parse("/search?q=go&verbose")
//	u.HasParam("verbose")  // true
//	u.Param("verbose")     // "", false: flag parameter has no value
//	u.SetParam("page", "2").DelParam("verbose")
//	u.String()             // "/search?q=go&page=2"
//
// # Thread Safety
//
// Parameter setters modify the URL in place. A URL must not be modified concurrently,
// use [URL.Clone] to hand out independent copies.
package httpurl
