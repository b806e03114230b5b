package extraction

import (
	"regexp"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("findMatch", func() {
	var (
		rules  []*regexp.Regexp
		text   string
		result string
	)

	JustBeforeEach(func() {
		result = findMatch(rules, text)
	})

	When("two rules match the same text", func() {
		BeforeEach(func() {
			rules = compileAll(
				`Total\s*Payable\s*[:\-]?\s*Rs\s*(\d+)`,
				`Rs\s*(\d+)`,
			)
			text = "Total Payable: Rs 500"
		})

		It("should return the earlier rule's capture", func() {
			Expect(result).To(Equal("500"))
		})
	})

	When("only a later rule matches", func() {
		BeforeEach(func() {
			rules = compileAll(
				`Grand\s*Total\s*(\d+)`,
				`Rs\s*(\d+)`,
			)
			text = "Paid Rs 42 today"
		})

		It("should fall through to the later rule", func() {
			Expect(result).To(Equal("42"))
		})
	})

	When("a rule has no capture group", func() {
		BeforeEach(func() {
			rules = compileAll(`SUCCESS|FAILED`)
			text = "status: SUCCESS"
		})

		It("should return the whole match", func() {
			Expect(result).To(Equal("SUCCESS"))
		})
	})

	When("no rule matches", func() {
		BeforeEach(func() {
			rules = compileAll(`\d{4}-\d{2}-\d{2}`)
			text = "no dates here"
		})

		It("should return an empty string", func() {
			Expect(result).To(BeEmpty())
		})
	})

	When("the match has surrounding whitespace", func() {
		BeforeEach(func() {
			rules = compileAll(`Name\s*:(.+)`)
			text = "Name:  John Doe  "
		})

		It("should trim the captured value", func() {
			Expect(result).To(Equal("John Doe"))
		})
	})
})

var _ = Describe("cleanAmount", func() {
	DescribeTable("normalizing amount captures",
		func(raw, expected string) {
			Expect(cleanAmount(raw)).To(Equal(expected))
		},
		Entry("comma-grouped rupee amount", "1,500.00", "1500.00"),
		Entry("plain integer", "500", "500"),
		Entry("currency residue", "₹ 2,000", "2000"),
		Entry("unparseable capture is kept raw", "garbage-amount", "garbage-amount"),
		Entry("lone decimal point is kept raw", ".", "."),
		Entry("empty stays empty", "", ""),
	)
})
