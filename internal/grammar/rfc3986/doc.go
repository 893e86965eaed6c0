// Package rfc3986 implements URI grammar rules defined in [RFC 3986] appendix A.
//
// Rules are generated as ready to use operators, rule names are preserved as
// node keys so parse trees can be walked with [abnf.Node.GetNode].
// The userinfo rule is split into user and password sub-rules at the first ":",
// the combined rule matches the same language as the original one.
//
// [RFC 3986]: https://www.rfc-editor.org/rfc/rfc3986
package rfc3986

//go:generate go tool abnf generate -y
