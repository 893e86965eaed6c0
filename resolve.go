package urlref

import (
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/urlref/internal/constraints"
)

// Resolve resolves a reference against a base URL per RFC 3986 section 5.3
// and returns the resulting absolute URL.
//
// The base must itself be an absolute URL with an authority; otherwise
// [ErrBaseNotAbsolute] is returned. When ref carries its own scheme it is
// already absolute and the base is ignored. A grammar failure on either input
// is reported the same way as from [Split].
//
// The reference's fragment, including an absent or empty one, is always taken
// as is and never inherited from the base. The base query is inherited only
// when the reference has neither a path nor a query of its own; an explicit
// empty query ("?") on the reference is preserved.
func Resolve[T constraints.Byteseq](base, ref T) (string, error) {
	r, err := Split(ref, nil)
	if err != nil {
		return "", errtrace.Wrap(err)
	}

	if r.IsAbsolute() {
		if strings.HasPrefix(r.Path, "/") {
			r.Path = RemoveDotSegments(r.Path)
		}
		return r.Render(nil), nil
	}

	b, err := Split(base, nil)
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	if b.Scheme.Val() == "" || !b.Host.IsSet() {
		return "", errtrace.Wrap(ErrBaseNotAbsolute)
	}

	t := &Components{
		Scheme:   b.Scheme,
		Query:    r.Query,
		Fragment: r.Fragment,
	}

	if r.Host.IsSet() {
		// Authority override: the base authority and path are discarded.
		t.User, t.Pass, t.Host, t.Port = r.User, r.Pass, r.Host, r.Port
		if r.Path != "" {
			t.Path = RemoveDotSegments(r.Path)
		}
		return t.Render(nil), nil
	}
	// Any port/user/pass on a reference without a host are dropped here.
	t.User, t.Pass, t.Host, t.Port = b.User, b.Pass, b.Host, b.Port

	switch {
	case r.Path == "":
		t.Path = b.Path
		if !r.Query.IsSet() {
			t.Query = b.Query
		}
	case strings.HasPrefix(r.Path, "/"):
		t.Path = RemoveDotSegments(r.Path)
	default:
		t.Path = RemoveDotSegments(mergePaths(b.Path, r.Path))
	}
	return t.Render(nil), nil
}

// mergePaths merges a relative path with the base path per RFC 3986
// section 5.3: everything up to and including the last "/" of the base path,
// then the reference path. The doubled slash this can produce collapses
// during dot-segment removal.
func mergePaths(basePath, refPath string) string {
	merged := ""
	if i := strings.LastIndexByte(basePath, '/'); i >= 0 {
		merged = basePath[:i+1]
	}
	return merged + "/" + refPath
}
