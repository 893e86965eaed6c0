package urlref

import (
	"strings"

	"github.com/ghettovoice/urlref/internal/constraints"
)

// RemoveDotSegments removes "." and ".." segments from path as described in
// RFC 3986 section 5.2.4, with one extension: empty segments are dropped as
// well, so doubled slashes collapse. ".." at the root is a no-op rather than
// an error.
//
// A path ending in "/", "/." or "/.." keeps a single trailing slash, since it
// names a directory. The operation is idempotent and splits only on the ASCII
// "/", which can never occur inside a multi-byte UTF-8 sequence.
func RemoveDotSegments[T constraints.Byteseq](path T) T {
	s := string(path)
	if s == "" {
		return path
	}

	segs := strings.Split(s, "/")
	out := make([]string, 0, len(segs))
	for _, seg := range segs {
		switch seg {
		case "", ".":
		case "..":
			if len(out) > 0 {
				out = out[:len(out)-1]
			}
		default:
			out = append(out, seg)
		}
	}

	res := strings.Join(out, "/")
	if s[0] == '/' {
		res = "/" + res
	}
	if res != "/" && (strings.HasSuffix(s, "/") ||
		strings.HasSuffix(s, "/.") || strings.HasSuffix(s, "/..")) {
		res += "/"
	}
	return T(res)
}
