package urlref_test

import (
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ghettovoice/urlref"
)

var _ = Describe("Components", Label("components"), func() {
	Describe("Opt", func() {
		It("distinguishes absent from present-but-empty", func() {
			Expect(urlref.None[string]().IsSet()).To(BeFalse())
			Expect(urlref.Some("").IsSet()).To(BeTrue())
			Expect(urlref.None[string]()).ToNot(Equal(urlref.Some("")))

			v, ok := urlref.Some("x").Get()
			Expect(v).To(Equal("x"))
			Expect(ok).To(BeTrue())

			Expect(urlref.None[string]().Or("def")).To(Equal("def"))
			Expect(urlref.Some("x").Or("def")).To(Equal("x"))
			Expect(urlref.None[string]().Val()).To(BeEmpty())
		})
	})

	DescribeTable("validating",
		func(c *urlref.Components, expect bool) {
			Expect(c.IsValid()).To(Equal(expect))
		},
		EntryDescription("%#[1]v"),
		Entry(nil, nil, false),
		Entry(nil, &urlref.Components{}, true),
		Entry(nil, &urlref.Components{Scheme: urlref.Some("http"), Host: urlref.Some("a"), Path: "/x"}, true),
		Entry(nil, &urlref.Components{Host: urlref.Some("a"), Path: "x"}, false),
		Entry(nil, &urlref.Components{Port: urlref.Some("80")}, false),
		Entry(nil, &urlref.Components{User: urlref.Some("u")}, false),
		Entry(nil, &urlref.Components{Host: urlref.Some("a"), Pass: urlref.Some("p")}, false),
		Entry(nil, &urlref.Components{Host: urlref.Some("a"), User: urlref.Some("u"), Pass: urlref.Some("p")}, true),
	)

	DescribeTable("comparing",
		func(c *urlref.Components, val any, expect bool) {
			Expect(c.Equal(val)).To(Equal(expect))
		},
		EntryDescription("%#[1]v with %#[2]v"),
		Entry(nil, &urlref.Components{Path: "/x"}, &urlref.Components{Path: "/x"}, true),
		Entry(nil, &urlref.Components{Path: "/x"}, urlref.Components{Path: "/x"}, true),
		Entry(nil, &urlref.Components{Path: "/x"}, &urlref.Components{Path: "/y"}, false),
		Entry(nil, &urlref.Components{Query: urlref.Some("")}, &urlref.Components{}, false),
		Entry(nil, &urlref.Components{}, "http://a", false),
		Entry(nil, (*urlref.Components)(nil), (*urlref.Components)(nil), true),
	)

	It("clones deeply", func() {
		c, err := urlref.Split("http://u@h/p?q", nil)
		Expect(err).ToNot(HaveOccurred())

		c2 := c.Clone()
		Expect(c2).To(Equal(c))
		c2.Path = "/other"
		Expect(c.Path).To(Equal("/p"))

		Expect((*urlref.Components)(nil).Clone()).To(BeNil())
	})

	It("reports the authority", func() {
		c, err := urlref.Split("http://u:p@h:8080/x", nil)
		Expect(err).ToNot(HaveOccurred())

		auth, ok := c.Authority()
		Expect(ok).To(BeTrue())
		Expect(auth).To(Equal("u:p@h:8080"))

		c, err = urlref.Split("mailto:bob@example.com", nil)
		Expect(err).ToNot(HaveOccurred())
		_, ok = c.Authority()
		Expect(ok).To(BeFalse())
	})

	It("marshals and unmarshals text", func() {
		c, err := urlref.Split("http://a/b?q", nil)
		Expect(err).ToNot(HaveOccurred())

		text, err := c.MarshalText()
		Expect(err).ToNot(HaveOccurred())
		Expect(string(text)).To(Equal("http://a/b?q"))

		var c2 urlref.Components
		Expect(c2.UnmarshalText(text)).To(Succeed())
		Expect(&c2).To(Equal(c))

		Expect(c2.UnmarshalText([]byte("bad \x00"))).ToNot(Succeed())
		Expect(c2).To(Equal(urlref.Components{}))
	})

	It("formats with fmt verbs", func() {
		c := &urlref.Components{Scheme: urlref.Some("http"), Host: urlref.Some("a"), Path: "/x"}
		Expect(fmt.Sprintf("%s", c)).To(Equal("http://a/x"))
		Expect(fmt.Sprintf("%q", c)).To(Equal(`"http://a/x"`))
	})

	It("reports absoluteness", func() {
		Expect((&urlref.Components{Scheme: urlref.Some("http")}).IsAbsolute()).To(BeTrue())
		Expect((&urlref.Components{Scheme: urlref.Some("")}).IsAbsolute()).To(BeFalse())
		Expect((&urlref.Components{Path: "g"}).IsAbsolute()).To(BeFalse())
	})
})
