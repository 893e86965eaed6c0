package grammar_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ghettovoice/urlref/internal/grammar"
)

var _ = Describe("Grammar", Label("grammar"), func() {
	DescribeTable("IsScheme()",
		func(s string, expect bool) {
			Expect(grammar.IsScheme(s)).To(Equal(expect))
		},
		EntryDescription("%q"),
		Entry(nil, "", false),
		Entry(nil, "http", true),
		Entry(nil, "HTTP", true),
		Entry(nil, "a+b-c.d", true),
		Entry(nil, "1http", false),
		Entry(nil, "ht tp", false),
	)

	DescribeTable("IsIPv4()",
		func(s string, expect bool) {
			Expect(grammar.IsIPv4(s)).To(Equal(expect))
		},
		EntryDescription("%q"),
		Entry(nil, "", false),
		Entry(nil, "192.168.0.1", true),
		Entry(nil, "0.0.0.0", true),
		Entry(nil, "255.255.255.255", true),
		Entry(nil, "256.1.1.1", false),
		Entry(nil, "1.2.3", false),
		Entry(nil, "1.2.3.4.5", false),
		Entry(nil, "example.com", false),
	)

	DescribeTable("IsIPv6()",
		func(s string, expect bool) {
			Expect(grammar.IsIPv6(s)).To(Equal(expect))
		},
		EntryDescription("%q"),
		Entry(nil, "", false),
		Entry(nil, "::", true),
		Entry(nil, "::1", true),
		Entry(nil, "2001:db8::7", true),
		Entry(nil, "2001:db8:0:0:0:0:2:1", true),
		Entry(nil, "::ffff:192.0.2.1", true),
		Entry(nil, "fe80::a%25eth0", false),
		Entry(nil, "1:2:3:4:5:6:7:8:9", false),
		Entry(nil, "example.com", false),
		Entry(nil, "[::1]", false),
	)

	DescribeTable("IsIPvFuture()",
		func(s string, expect bool) {
			Expect(grammar.IsIPvFuture(s)).To(Equal(expect))
		},
		EntryDescription("%q"),
		Entry(nil, "", false),
		Entry(nil, "v1.x", true),
		Entry(nil, "vF.addr:port", true),
		Entry(nil, "v.x", false),
		Entry(nil, "1.x", false),
	)

	DescribeTable("IsIPLiteral()",
		func(s string, expect bool) {
			Expect(grammar.IsIPLiteral(s)).To(Equal(expect))
		},
		EntryDescription("%q"),
		Entry(nil, "", false),
		Entry(nil, "[::1]", true),
		Entry(nil, "[v1.x]", true),
		Entry(nil, "::1", false),
		Entry(nil, "[example.com]", false),
	)

	DescribeTable("IsHost()",
		func(s string, expect bool) {
			Expect(grammar.IsHost(s)).To(Equal(expect))
		},
		EntryDescription("%q"),
		Entry(nil, "example.com", true),
		Entry(nil, "127.0.0.1", true),
		Entry(nil, "[2001:db8::7]", true),
		Entry(nil, "a%20b", true),
		Entry(nil, "a b", false),
	)
})
