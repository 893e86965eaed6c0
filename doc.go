// Package urlref parses, recomposes, normalizes and resolves Uniform Resource
// Identifier references according to RFC 3986.
//
// # Overview
//
// The package is built around a single value type, [Components], holding the
// decomposed parts of a URI reference: scheme, user, pass, host, port, path,
// query and fragment. Except for the path, every part is an [Opt] so that an
// absent component stays distinguishable from a present-but-empty one: "?"
// at the end of a URL is an empty query, not a missing one.
//
// Four operations are layered on a shared ABNF grammar:
//
//   - [Split] matches a string against the URI-reference rule and fills a
//     [Components] record, percent-decoding by default.
//   - [Components.Render] reassembles a record into a string,
//     percent-encoding by default.
//   - [RemoveDotSegments] normalizes a path per RFC 3986 section 5.2.4.
//   - [Resolve] combines a base absolute URL with a reference into a new
//     absolute URL per RFC 3986 section 5.3.
//
// # Parsing and rendering
//
//	c, err := urlref.Split("https://user@example.com:8443/a/b?q#f", nil)
//	if err != nil {
//	    // urlref.IsGrammarErr(err) == true when the input didn't match
//	    // the URI-reference grammar at all.
//	}
//	host, _ := c.Host.Get() // "example.com"
//	s := c.String()         // split/render round-trip
//
// A record can also be built by hand and rendered:
//
//	c := &urlref.Components{
//	    Scheme: urlref.Some("http"),
//	    Host:   urlref.Some("::1"),
//	    Path:   "/status",
//	}
//	c.String() // "http://[::1]/status"
//
// IPv6 and IPvFuture hosts are stored without brackets; brackets are applied
// on render, and IP-literal hosts are never percent-encoded.
//
// # Reference resolution
//
//	abs, err := urlref.Resolve("http://a/b/c/d;p?q", "../g")
//	// abs == "http://a/b/g"
//
// Resolution fails with [ErrBaseNotAbsolute] when the base lacks a scheme or
// an authority.
//
// All operations are pure functions over immutable inputs; any number of
// calls may run concurrently without synchronization.
package urlref
