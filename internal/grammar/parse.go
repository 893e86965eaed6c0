package grammar

import (
	"braces.dev/errtrace"
	"github.com/ghettovoice/abnf"

	"github.com/ghettovoice/urlref/internal/constraints"
	"github.com/ghettovoice/urlref/internal/errorutil"
	"github.com/ghettovoice/urlref/internal/grammar/rfc3986"
)

const ErrMalformedInput Error = "malformed input"

func newMalformedInputErr(args ...any) error {
	return errorutil.NewWrapperError(ErrMalformedInput, args...) //errtrace:skip
}

// ParseURIReference matches s against the URI-reference rule and returns the
// parse tree of the best match.
//
// An empty s is a valid relative reference (path-empty form), so unlike most
// grammar entry points it never fails on empty input. The error is returned
// when the input does not match the rule or the best match does not cover the
// whole input.
func ParseURIReference[T constraints.Byteseq](s T) (*abnf.Node, error) {
	ns := abnf.NewNodes()
	defer ns.Free()

	if err := rfc3986.Rules().URIReference([]byte(s), ns); err != nil {
		return nil, errtrace.Wrap(newMalformedInputErr(err))
	}

	n := ns.Best()
	if nl, il := n.Len(), len(s); nl < il {
		return nil, errtrace.Wrap(newMalformedInputErr("node length %d < input length %d", nl, il))
	}
	return n, nil
}

// ParseAuthority matches s against the authority rule.
func ParseAuthority[T constraints.Byteseq](s T) (*abnf.Node, error) {
	if len(s) == 0 {
		return nil, errtrace.Wrap(newMalformedInputErr("empty input"))
	}

	ns := abnf.NewNodes()
	defer ns.Free()

	if err := rfc3986.Rules().Authority([]byte(s), ns); err != nil {
		return nil, errtrace.Wrap(newMalformedInputErr(err))
	}

	n := ns.Best()
	if nl, il := n.Len(), len(s); nl < il {
		return nil, errtrace.Wrap(newMalformedInputErr("node length %d < input length %d", nl, il))
	}
	return n, nil
}
