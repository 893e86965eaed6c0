package urlref_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ghettovoice/urlref"
)

var _ = Describe("RemoveDotSegments()", Label("path"), func() {
	DescribeTable("normalizing",
		func(in, expect string) {
			Expect(urlref.RemoveDotSegments(in)).To(Equal(expect))
			// applying it twice must change nothing
			Expect(urlref.RemoveDotSegments(expect)).To(Equal(expect))
		},
		EntryDescription(`should convert %q to %q`),
		Entry(nil, "", ""),
		Entry(nil, "/", "/"),
		Entry(nil, "/a/b/c/./../../g", "/a/g"),
		Entry(nil, "mid/content=5/../6", "mid/6"),
		Entry(nil, "/a/b/c", "/a/b/c"),
		Entry(nil, "/a/b/c/", "/a/b/c/"),
		Entry(nil, "/a//b", "/a/b"),
		Entry(nil, "/a/./b", "/a/b"),
		Entry(nil, "/a/b/..", "/a/"),
		Entry(nil, "/a/b/.", "/a/b/"),
		Entry(nil, "/..", "/"),
		Entry(nil, "/../", "/"),
		Entry(nil, "/./", "/"),
		Entry(nil, "..", ""),
		Entry(nil, ".", ""),
		Entry(nil, "a/..", "/"),
		Entry(nil, "./g", "g"),
		Entry(nil, "../../g", "g"),
		Entry(nil, "g.", "g."),
		Entry(nil, "..g", "..g"),
		Entry(nil, "/a/жизнь/../b", "/a/b"),
		Entry(nil, "/жизнь/мир", "/жизнь/мир"),
	)

	It("handles []byte input", func() {
		Expect(urlref.RemoveDotSegments([]byte("/a/./b"))).To(Equal([]byte("/a/b")))
	})
})
