// Package grammar implements RFC 3986 grammar matching, host classification
// and percent escaping for URI components.
package grammar

//go:generate errtrace -w .

import (
	"fmt"

	"github.com/ghettovoice/abnf"

	"github.com/ghettovoice/urlref/internal/constraints"
	"github.com/ghettovoice/urlref/internal/grammar/rfc3986"
)

func init() {
	abnf.EnableNodeCache(10 * 1024)
}

type Error string

func (e Error) Error() string { return fmt.Sprintf("grammar error: %s", string(e)) }

func (Error) Grammar() bool { return true }

// MustGetNode returns a pointer to the ABNF node with the given key.
func MustGetNode(n *abnf.Node, k string) *abnf.Node {
	sn, ok := n.GetNode(k)
	if !ok {
		panic(fmt.Errorf("ABNF node %q not found in %q", k, n.Key))
	}
	return sn
}

// IsScheme reports whether s matches the scheme rule.
func IsScheme[T constraints.Byteseq](s T) bool {
	if len(s) == 0 {
		return false
	}

	ns := abnf.NewNodes()
	defer ns.Free()

	if err := rfc3986.Rules().Scheme([]byte(s), ns); err != nil {
		return false
	}
	return ns.Best().Len() == len(s)
}

// IsHost reports whether s matches the host rule in any of its forms.
func IsHost[T constraints.Byteseq](s T) bool {
	if len(s) == 0 {
		return false
	}

	ns := abnf.NewNodes()
	defer ns.Free()

	if err := rfc3986.Rules().Host([]byte(s), ns); err != nil {
		return false
	}
	return ns.Best().Len() == len(s)
}

// IsIPv4 reports whether s is an IPv4address literal.
func IsIPv4[T constraints.Byteseq](s T) bool {
	if len(s) == 0 {
		return false
	}

	ns := abnf.NewNodes()
	defer ns.Free()

	if err := rfc3986.Rules().IPv4address([]byte(s), ns); err != nil {
		return false
	}
	return ns.Best().Len() == len(s)
}

// IsIPv6 reports whether s is an IPv6address literal without brackets.
func IsIPv6[T constraints.Byteseq](s T) bool {
	if len(s) == 0 {
		return false
	}

	ns := abnf.NewNodes()
	defer ns.Free()

	if err := rfc3986.Rules().IPv6address([]byte(s), ns); err != nil {
		return false
	}
	return ns.Best().Len() == len(s)
}

// IsIPvFuture reports whether s is an IPvFuture literal without brackets.
func IsIPvFuture[T constraints.Byteseq](s T) bool {
	if len(s) == 0 {
		return false
	}

	ns := abnf.NewNodes()
	defer ns.Free()

	if err := rfc3986.Rules().IPvFuture([]byte(s), ns); err != nil {
		return false
	}
	return ns.Best().Len() == len(s)
}

// IsIPLiteral reports whether s is a bracketed IP-literal.
func IsIPLiteral[T constraints.Byteseq](s T) bool {
	if len(s) == 0 {
		return false
	}

	ns := abnf.NewNodes()
	defer ns.Free()

	if err := rfc3986.Rules().IPLiteral([]byte(s), ns); err != nil {
		return false
	}
	return ns.Best().Len() == len(s)
}
