package urlref_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ghettovoice/urlref"
)

var _ = Describe("Components.Render()", Label("render"), func() {
	DescribeTable("rendering",
		func(c *urlref.Components, opts *urlref.RenderOptions, expect string) {
			Expect(c.Render(opts)).To(Equal(expect))
		},
		EntryDescription("%#[1]v"),
		Entry(nil, nil, nil, ""),
		Entry(nil, &urlref.Components{}, nil, ""),
		Entry(nil, &urlref.Components{Path: "a/b"}, nil, "a/b"),
		Entry(nil, &urlref.Components{
			Scheme: urlref.Some("http"),
			Host:   urlref.Some("example.com"),
			Path:   "/x",
		}, nil, "http://example.com/x"),
		Entry(nil, &urlref.Components{
			// a path next to a host gets a separating slash
			Scheme: urlref.Some("http"),
			Host:   urlref.Some("example.com"),
			Path:   "x/y",
		}, nil, "http://example.com/x/y"),
		Entry(nil, &urlref.Components{
			Scheme: urlref.Some("file"),
			Host:   urlref.Some(""),
			Path:   "/etc/hosts",
		}, nil, "file:///etc/hosts"),
		Entry(nil, &urlref.Components{
			Scheme: urlref.Some("http"),
			User:   urlref.Some("bob smith"),
			Pass:   urlref.Some("p@ss:w"),
			Host:   urlref.Some("example.com"),
			Port:   urlref.Some("8080"),
		}, nil, "http://bob%20smith:p%40ss:w@example.com:8080"),
		Entry(nil, &urlref.Components{
			Scheme: urlref.Some("http"),
			Host:   urlref.Some("::1"),
			Path:   "/status",
		}, nil, "http://[::1]/status"),
		Entry(nil, &urlref.Components{
			Scheme: urlref.Some("http"),
			Host:   urlref.Some("2001:db8::7"),
			Port:   urlref.Some("443"),
		}, nil, "http://[2001:db8::7]:443"),
		Entry(nil, &urlref.Components{
			Scheme: urlref.Some("http"),
			Host:   urlref.Some("v1.fe"),
		}, nil, "http://[v1.fe]"),
		Entry(nil, &urlref.Components{
			Scheme: urlref.Some("http"),
			Host:   urlref.Some("192.168.0.1"),
		}, nil, "http://192.168.0.1"),
		Entry(nil, &urlref.Components{
			Scheme: urlref.Some("http"),
			Host:   urlref.Some("host name"),
		}, nil, "http://host%20name"),
		Entry(nil, &urlref.Components{
			Scheme:   urlref.Some("http"),
			Host:     urlref.Some("a"),
			Path:     "/b c/d",
			Query:    urlref.Some("k=v w"),
			Fragment: urlref.Some("f g"),
		}, nil, "http://a/b%20c/d?k=v%20w#f%20g"),
		Entry(nil, &urlref.Components{
			Scheme: urlref.Some("http"),
			Host:   urlref.Some("a"),
			Path:   "/b c",
		}, &urlref.RenderOptions{RawComponents: true}, "http://a/b c"),
		Entry(nil, &urlref.Components{
			Scheme: urlref.Some("http"),
			Host:   urlref.Some("a"),
			Path:   "/",
			Query:  urlref.Some(""),
		}, nil, "http://a/?"),
		Entry(nil, &urlref.Components{
			Scheme:   urlref.Some("http"),
			Host:     urlref.Some("a"),
			Fragment: urlref.Some(""),
		}, nil, "http://a#"),
		Entry(nil, &urlref.Components{
			// empty scheme is skipped, empty host still opens an authority
			Scheme: urlref.Some(""),
			Host:   urlref.Some("x"),
			Path:   "/y",
		}, nil, "//x/y"),
		Entry(nil, &urlref.Components{
			// a literal "%" in a decoded component is encoded as "%25"
			Scheme: urlref.Some("http"),
			Host:   urlref.Some("a"),
			Path:   "/a%20b c",
		}, nil, "http://a/a%2520b%20c"),
		Entry(nil, &urlref.Components{
			// KeepEscaped passes existing percent triplets through
			Scheme: urlref.Some("http"),
			User:   urlref.Some("bob%20smith"),
			Host:   urlref.Some("a"),
			Path:   "/a%20b c",
		}, &urlref.RenderOptions{KeepEscaped: true}, "http://bob%20smith@a/a%20b%20c"),
		Entry(nil, &urlref.Components{
			Scheme: urlref.Some("mailto"),
			Path:   "bob@example.com",
		}, nil, "mailto:bob@example.com"),
	)

	It("writes to an io.Writer", func() {
		c := &urlref.Components{
			Scheme: urlref.Some("http"),
			Host:   urlref.Some("a"),
			Path:   "/x",
		}

		var sb strings.Builder
		n, err := c.RenderTo(&sb, nil)
		Expect(err).ToNot(HaveOccurred())
		Expect(n).To(Equal(len("http://a/x")))
		Expect(sb.String()).To(Equal("http://a/x"))

		sb.Reset()
		n, err = (*urlref.Components)(nil).RenderTo(&sb, nil)
		Expect(err).ToNot(HaveOccurred())
		Expect(n).To(BeZero())
		Expect(sb.String()).To(BeEmpty())
	})
})
