package urlref

//go:generate go tool errtrace -w .

import (
	"fmt"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/urlref/internal/grammar"
	"github.com/ghettovoice/urlref/internal/util"
)

// Opt is an optional value distinguishing an absent component from a
// present-but-empty one. The zero value is absent.
type Opt[T any] struct {
	val T
	ok  bool
}

// Some returns an Opt holding v.
func Some[T any](v T) Opt[T] { return Opt[T]{val: v, ok: true} }

// None returns an absent Opt.
func None[T any]() Opt[T] { return Opt[T]{} }

// Get returns the held value and whether it is present.
func (o Opt[T]) Get() (T, bool) { return o.val, o.ok }

// IsSet reports whether a value is present.
func (o Opt[T]) IsSet() bool { return o.ok }

// Val returns the held value, or the zero value when absent.
func (o Opt[T]) Val() T { return o.val }

// Or returns the held value, or def when absent.
func (o Opt[T]) Or(def T) T {
	if o.ok {
		return o.val
	}
	return def
}

// Components holds the parts of a URI reference as decomposed by [Split].
//
// Every part except Path is optional: an absent component is rendered not at
// all, while a present-but-empty one keeps its delimiter (e.g. a trailing "?"
// for an empty query). Path is always defined, possibly as the empty string,
// matching the RFC 3986 data model where every reference carries a path.
type Components struct {
	// Scheme is lower-cased on parse and never percent-decoded.
	Scheme Opt[string]
	// User is the userinfo part before the first ":".
	User Opt[string]
	// Pass is set only when a ":" separator followed the user part.
	Pass Opt[string]
	// Host is a reg-name, an IPv4 literal, or an IPv6/IPvFuture literal
	// stored without brackets. It may be present and empty when the
	// reference carries an authority with an empty host ("//").
	Host Opt[string]
	// Port holds the decimal digits after the host ":". It may be present
	// and empty when the ":" had no digits.
	Port Opt[string]
	Path string
	// Query is the content after "?", excluding the "?".
	Query Opt[string]
	// Fragment is the content after "#", excluding the "#".
	Fragment Opt[string]
}

// Clone returns a deep copy of the components.
func (c *Components) Clone() *Components {
	if c == nil {
		return nil
	}
	c2 := *c
	return &c2
}

// IsAbsolute reports whether the components form an absolute URI,
// i.e. carry a non-empty scheme.
func (c *Components) IsAbsolute() bool {
	return c != nil && c.Scheme.Val() != ""
}

// IsValid reports whether the components satisfy the structural invariants:
// port, user and pass appear only alongside a host, pass only alongside a
// user, and a path next to a host is either empty or starts with "/".
func (c *Components) IsValid() bool {
	if c == nil {
		return false
	}
	if !c.Host.IsSet() && (c.Port.IsSet() || c.User.IsSet() || c.Pass.IsSet()) {
		return false
	}
	if c.Pass.IsSet() && !c.User.IsSet() {
		return false
	}
	if c.Host.IsSet() && c.Path != "" && c.Path[0] != '/' {
		return false
	}
	return true
}

// Authority returns the rendered userinfo@host:port part and whether the
// components carry an authority at all.
func (c *Components) Authority() (string, bool) {
	if c == nil || !c.Host.IsSet() {
		return "", false
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	c.renderAuthority(sb, true, false)
	return sb.String(), true
}

// Equal compares the components with another value for equality.
func (c *Components) Equal(val any) bool {
	var other *Components
	switch v := val.(type) {
	case Components:
		other = &v
	case *Components:
		other = v
	default:
		return false
	}

	if c == other {
		return true
	} else if c == nil || other == nil {
		return false
	}
	return *c == *other
}

// String returns the string representation of the components.
func (c *Components) String() string {
	if c == nil {
		return ""
	}
	return c.Render(nil)
}

// Format implements fmt.Formatter for custom formatting of the components.
func (c *Components) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, c.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(c.String()))
		return
	default:
		type hideMethods Components
		type Components hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*Components)(c))
		return
	}
}

// MarshalText implements [encoding.TextMarshaler].
func (c *Components) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (c *Components) UnmarshalText(text []byte) error {
	c1, err := Split(text, nil)
	if err != nil {
		*c = Components{}
		return errtrace.Wrap(err)
	}
	*c = *c1
	return nil
}

func (c *Components) renderAuthority(sb *strings.Builder, encode, keepEscaped bool) {
	enc := func(s string, pred func(byte) bool) string {
		if !encode {
			return s
		}
		if keepEscaped {
			return grammar.EscapeKeepEncoded(s, func(b byte) bool { return !pred(b) })
		}
		return grammar.Escape(s, func(b byte) bool { return !pred(b) })
	}

	if user, ok := c.User.Get(); ok {
		sb.WriteString(enc(user, grammar.IsUserChar))
		if pass, ok := c.Pass.Get(); ok {
			sb.WriteByte(':')
			sb.WriteString(enc(pass, grammar.IsPasswordChar))
		}
		sb.WriteByte('@')
	}

	host := c.Host.Val()
	switch {
	case grammar.IsIPv6(host) || grammar.IsIPvFuture(host):
		// IP literals are bracketed on output and never percent-encoded.
		sb.WriteByte('[')
		sb.WriteString(host)
		sb.WriteByte(']')
	case grammar.IsIPv4(host):
		sb.WriteString(host)
	default:
		sb.WriteString(enc(host, grammar.IsRegNameChar))
	}

	if port, ok := c.Port.Get(); ok {
		sb.WriteByte(':')
		sb.WriteString(port)
	}
}
