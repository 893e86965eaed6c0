package grammar

import (
	"bytes"

	"github.com/ghettovoice/urlref/internal/constraints"
)

// Unescape unescapes s by converting each 3-byte encoded substring of the form
// "% HEXDIG HEXDIG" into the hex-decoded byte.
func Unescape[T constraints.Byteseq](s T) T {
	if len(s) == 0 {
		return s
	}

	var b bytes.Buffer
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) && ishex(s[i+1]) && ishex(s[i+2]) {
			b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
		} else {
			b.WriteByte(s[i])
		}
	}
	return T(b.Bytes())
}

// Escape escapes s by replacing each char matched by shouldEscape callback to
// the hex form "% HEXDIG HEXDIG". A "%" is escaped like any other char, so for
// any s the result unescapes back to s.
func Escape[T constraints.Byteseq](s T, shouldEscape func(c byte) bool) T {
	return escape(s, shouldEscape, false)
}

// EscapeKeepEncoded escapes s like [Escape], except that existing
// "% HEXDIG HEXDIG" sequences are passed through untouched. It is meant for
// components that are already percent-encoded.
func EscapeKeepEncoded[T constraints.Byteseq](s T, shouldEscape func(c byte) bool) T {
	return escape(s, shouldEscape, true)
}

func escape[T constraints.Byteseq](s T, shouldEscape func(c byte) bool, keepEncoded bool) T {
	if len(s) == 0 {
		return s
	}

	if shouldEscape == nil {
		shouldEscape = func(c byte) bool { return !IsCharUnreserved(c) }
	}

	var b bytes.Buffer
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch {
		case keepEncoded && s[i] == '%' && i+2 < len(s) && ishex(s[i+1]) && ishex(s[i+2]):
			b.WriteByte(s[i])
			b.WriteByte(s[i+1])
			b.WriteByte(s[i+2])
			i += 2
		case shouldEscape(s[i]):
			b.WriteByte('%')
			b.WriteByte(upperhex[s[i]>>4])
			b.WriteByte(upperhex[s[i]&15])
		default:
			b.WriteByte(s[i])
		}
	}
	return T(b.Bytes())
}

const upperhex = "0123456789ABCDEF"

func ishex(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f':
		return true
	case 'A' <= c && c <= 'F':
		return true
	}
	return false
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}

// IsAlphanumChar checks ALPHA / DIGIT.
func IsAlphanumChar(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9'
}

// IsCharUnreserved checks the unreserved rule.
func IsCharUnreserved(c byte) bool {
	switch c {
	case '-', '.', '_', '~':
		return true
	}
	return IsAlphanumChar(c)
}

var subDelimChars = map[byte]bool{
	'!':  true,
	'$':  true,
	'&':  true,
	'\'': true,
	'(':  true,
	')':  true,
	'*':  true,
	'+':  true,
	',':  true,
	';':  true,
	'=':  true,
}

// IsCharSubDelim checks the sub-delims rule.
func IsCharSubDelim(c byte) bool {
	return subDelimChars[c]
}

// IsUserChar checks chars allowed unescaped in the user part of userinfo.
// ":" is excluded because it separates user from password.
func IsUserChar(c byte) bool {
	return IsCharUnreserved(c) || IsCharSubDelim(c)
}

// IsPasswordChar checks chars allowed unescaped in the password part of userinfo.
func IsPasswordChar(c byte) bool {
	return IsCharUnreserved(c) || IsCharSubDelim(c) || c == ':'
}

// IsRegNameChar checks chars allowed unescaped in a reg-name host.
func IsRegNameChar(c byte) bool {
	return IsCharUnreserved(c) || IsCharSubDelim(c)
}

// IsPathChar checks the pchar rule plus the "/" segment separator.
func IsPathChar(c byte) bool {
	return IsCharUnreserved(c) || IsCharSubDelim(c) || c == ':' || c == '@' || c == '/'
}

// IsQueryOrFragmentChar checks the query / fragment rules: pchar / "/" / "?".
func IsQueryOrFragmentChar(c byte) bool {
	return IsPathChar(c) || c == '?'
}
