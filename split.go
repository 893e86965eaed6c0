package urlref

import (
	"strings"

	"braces.dev/errtrace"
	"github.com/ghettovoice/abnf"

	"github.com/ghettovoice/urlref/internal/constraints"
	"github.com/ghettovoice/urlref/internal/grammar"
	"github.com/ghettovoice/urlref/internal/util"
)

// SplitOptions contains options for [Split].
type SplitOptions struct {
	// KeepEscaped disables percent-decoding of the parsed components,
	// leaving them exactly as found in the input.
	KeepEscaped bool
}

// Split parses a URI reference, absolute or relative, into its [Components]
// according to the RFC 3986 grammar.
//
// By default percent-encoded sequences are decoded in user, pass, host, path,
// query and fragment; scheme and port are never decoded (the grammar forbids
// "%" there), and host IP literals are stored as matched, without brackets.
// Pass a non-nil opts with KeepEscaped to retain the encoded form.
//
// The returned error wraps grammar.ErrMalformedInput when the input does not
// match the URI-reference rule; [IsGrammarErr] reports it.
func Split[T constraints.Byteseq](src T, opts *SplitOptions) (*Components, error) {
	n, err := grammar.ParseURIReference(src)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return buildFromURIRefNode(n, opts), nil
}

func buildFromURIRefNode(node *abnf.Node, opts *SplitOptions) *Components {
	decode := opts == nil || !opts.KeepEscaped

	c := &Components{}
	if n, ok := node.GetNode("scheme"); ok {
		c.Scheme = Some(util.LCase(n.String()))
	}
	if n, ok := node.GetNode("authority"); ok {
		buildFromAuthorityNode(c, n, decode)
	}
	c.Path = pathFromNode(node, decode)
	if n, ok := node.GetNode("query"); ok {
		c.Query = Some(unescaped(n.String(), decode))
	}
	if n, ok := node.GetNode("fragment"); ok {
		c.Fragment = Some(unescaped(n.String(), decode))
	}
	return c
}

func buildFromAuthorityNode(c *Components, node *abnf.Node, decode bool) {
	if n, ok := node.GetNode("userinfo"); ok {
		c.User = Some(unescaped(grammar.MustGetNode(n, "user").String(), decode))
		if pn, ok := n.GetNode("password"); ok {
			c.Pass = Some(unescaped(pn.String(), decode))
		}
	}

	hn := grammar.MustGetNode(node, "host")
	host := hn.String()
	if _, ok := hn.GetNode("IP-literal"); ok {
		// Brackets are render-side syntax, the record keeps the bare literal.
		// IP literals are never percent-decoded.
		host = strings.TrimSuffix(strings.TrimPrefix(host, "["), "]")
	} else if _, ok := hn.GetNode("IPv4address"); !ok {
		host = unescaped(host, decode)
	}
	c.Host = Some(host)

	if n, ok := node.GetNode("port"); ok {
		c.Port = Some(n.String())
	}
}

// pathFromNode extracts whichever of the mutually exclusive path forms matched.
func pathFromNode(node *abnf.Node, decode bool) string {
	for _, key := range [...]string{"path-abempty", "path-absolute", "path-noscheme", "path-rootless"} {
		if n, ok := node.GetNode(key); ok {
			return unescaped(n.String(), decode)
		}
	}
	return ""
}

func unescaped(s string, decode bool) string {
	if !decode {
		return s
	}
	return grammar.Unescape(s)
}
