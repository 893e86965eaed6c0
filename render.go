package urlref

import (
	"fmt"
	"io"

	"braces.dev/errtrace"

	"github.com/ghettovoice/urlref/internal/grammar"
	"github.com/ghettovoice/urlref/internal/util"
)

// RenderOptions contains options for rendering [Components].
type RenderOptions struct {
	// KeepEscaped treats the components as already percent-encoded: chars
	// outside a component's allowed set are still encoded, but "%" triplets
	// already present are passed through instead of being double-encoded.
	// Use it with components produced by [Split] with SplitOptions.KeepEscaped.
	KeepEscaped bool
	// RawComponents disables percent-encoding, emitting every component
	// verbatim. IP-literal hosts are still bracketed.
	RawComponents bool
}

// Render reassembles the components into a URI reference string.
//
// By default user, pass, query and fragment are percent-encoded as opaque
// strings, the path is encoded with "/" kept as the segment separator, and a
// host is encoded only when it is not an IPv4 or IPv6/IPvFuture literal.
// Scheme and port are never encoded. A literal "%" in a component is encoded
// as "%25", so decoded components produced by [Split] render back to an
// equivalent reference. Components held in their encoded form need
// KeepEscaped to avoid double encoding.
//
// Rendering never fails: absent components are skipped, present-but-empty
// ones keep their delimiter, and a record with no components at all yields
// the empty string.
func (c *Components) Render(opts *RenderOptions) string {
	if c == nil {
		return ""
	}

	encode := opts == nil || !opts.RawComponents
	keepEscaped := opts != nil && opts.KeepEscaped
	enc := func(s string, pred func(byte) bool) string {
		if !encode {
			return s
		}
		if keepEscaped {
			return grammar.EscapeKeepEncoded(s, func(b byte) bool { return !pred(b) })
		}
		return grammar.Escape(s, func(b byte) bool { return !pred(b) })
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	if scheme, ok := c.Scheme.Get(); ok && scheme != "" {
		sb.WriteString(scheme)
		sb.WriteByte(':')
	}

	if c.Host.IsSet() {
		sb.WriteString("//")
		c.renderAuthority(sb, encode, keepEscaped)
	}

	path := enc(c.Path, grammar.IsPathChar)
	if c.Host.IsSet() && path != "" && path[0] != '/' {
		// A path following an authority must be separated from it.
		sb.WriteByte('/')
	}
	sb.WriteString(path)

	if query, ok := c.Query.Get(); ok {
		sb.WriteByte('?')
		sb.WriteString(enc(query, grammar.IsQueryOrFragmentChar))
	}
	if frag, ok := c.Fragment.Get(); ok {
		sb.WriteByte('#')
		sb.WriteString(enc(frag, grammar.IsQueryOrFragmentChar))
	}

	return sb.String()
}

// RenderTo writes the rendered components to the provided writer.
func (c *Components) RenderTo(w io.Writer, opts *RenderOptions) (int, error) {
	if c == nil {
		return 0, nil
	}
	return errtrace.Wrap2(fmt.Fprint(w, c.Render(opts)))
}
