package urlref_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ghettovoice/urlref"
	"github.com/ghettovoice/urlref/internal/grammar"
)

var _ = Describe("Resolve()", Label("resolve"), func() {
	// RFC 3986 section 5.4 base
	const base = "http://a/b/c/d;p?q"

	DescribeTable("resolving against "+base,
		func(ref, expect string) {
			abs, err := urlref.Resolve(base, ref)
			Expect(err).ToNot(HaveOccurred(), "assert resolve error is nil")
			Expect(abs).To(Equal(expect))
		},
		EntryDescription("%q => %q"),
		// normal examples, RFC 3986 section 5.4.1
		Entry(nil, "g:h", "g:h"),
		Entry(nil, "g", "http://a/b/c/g"),
		Entry(nil, "./g", "http://a/b/c/g"),
		Entry(nil, "g/", "http://a/b/c/g/"),
		Entry(nil, "/g", "http://a/g"),
		Entry(nil, "//g", "http://g"),
		Entry(nil, "?y", "http://a/b/c/d;p?y"),
		Entry(nil, "g?y", "http://a/b/c/g?y"),
		Entry(nil, "#s", "http://a/b/c/d;p?q#s"),
		Entry(nil, "g#s", "http://a/b/c/g#s"),
		Entry(nil, "g?y#s", "http://a/b/c/g?y#s"),
		Entry(nil, ";x", "http://a/b/c/;x"),
		Entry(nil, "g;x", "http://a/b/c/g;x"),
		Entry(nil, "g;x?y#s", "http://a/b/c/g;x?y#s"),
		Entry(nil, "", "http://a/b/c/d;p?q"),
		Entry(nil, ".", "http://a/b/c/"),
		Entry(nil, "./", "http://a/b/c/"),
		Entry(nil, "..", "http://a/b/"),
		Entry(nil, "../", "http://a/b/"),
		Entry(nil, "../g", "http://a/b/g"),
		Entry(nil, "../..", "http://a/"),
		Entry(nil, "../../", "http://a/"),
		Entry(nil, "../../g", "http://a/g"),
		// abnormal examples, RFC 3986 section 5.4.2
		Entry(nil, "../../../g", "http://a/g"),
		Entry(nil, "../../../../g", "http://a/g"),
		Entry(nil, "/./g", "http://a/g"),
		Entry(nil, "/../g", "http://a/g"),
		Entry(nil, "g.", "http://a/b/c/g."),
		Entry(nil, ".g", "http://a/b/c/.g"),
		Entry(nil, "g..", "http://a/b/c/g.."),
		Entry(nil, "..g", "http://a/b/c/..g"),
		Entry(nil, "./../g", "http://a/b/g"),
		Entry(nil, "./g/.", "http://a/b/c/g/"),
		Entry(nil, "g/./h", "http://a/b/c/g/h"),
		Entry(nil, "g/../h", "http://a/b/c/h"),
		Entry(nil, "g;x=1/./y", "http://a/b/c/g;x=1/y"),
		Entry(nil, "g;x=1/../y", "http://a/b/c/y"),
		// the reference scheme wins even with an opaque path
		Entry(nil, "http:g", "http:g"),
		// authority override discards the base path entirely
		Entry(nil, "//x/y", "http://x/y"),
		Entry(nil, "//u:p@x:1/y?z", "http://u:p@x:1/y?z"),
	)

	DescribeTable("inheriting the base authority",
		func(base, ref, expect string) {
			abs, err := urlref.Resolve(base, ref)
			Expect(err).ToNot(HaveOccurred())
			Expect(abs).To(Equal(expect))
		},
		EntryDescription("%q + %q => %q"),
		Entry(nil, "http://u:p@h:8080/a/b?q#f", "x", "http://u:p@h:8080/a/x"),
		Entry(nil, "http://u:p@h:8080/a/b?q#f", "", "http://u:p@h:8080/a/b?q"),
		Entry(nil, "http://u:p@h:8080/a/b?q#f", "?", "http://u:p@h:8080/a/b?"),
		Entry(nil, "http://h", "g", "http://h/g"),
		Entry(nil, "http://[::1]/a/b", "c", "http://[::1]/a/c"),
	)

	DescribeTable("failures",
		func(base, ref string, expectErr error) {
			abs, err := urlref.Resolve(base, ref)
			Expect(abs).To(BeEmpty(), "assert resolved URL is empty")
			Expect(err).To(MatchError(expectErr), "assert resolve error matches the expected error")
		},
		EntryDescription("%q + %q"),
		Entry(nil, "relative/only", "g", urlref.ErrBaseNotAbsolute),
		Entry(nil, "/abs/path/only", "g", urlref.ErrBaseNotAbsolute),
		Entry(nil, "mailto:bob@example.com", "g", urlref.ErrBaseNotAbsolute),
		Entry(nil, "http://a/b", "bad ref\x00", grammar.ErrMalformedInput),
		Entry(nil, "not a base\x00", "g", grammar.ErrMalformedInput),
	)
})
