package urlref

import (
	"github.com/ghettovoice/urlref/internal/errorutil"
)

// Error is the package error type.
type Error = errorutil.Error

// ErrBaseNotAbsolute is returned by [Resolve] when the base URL, while
// grammatically parseable, lacks a scheme or host and therefore cannot anchor
// relative resolution.
const ErrBaseNotAbsolute Error = "base URL is not absolute"

// IsGrammarErr returns true if the error is a grammar error,
// i.e. the input did not match the URI-reference grammar at all.
func IsGrammarErr(err error) bool { return errorutil.IsGrammarErr(err) }
