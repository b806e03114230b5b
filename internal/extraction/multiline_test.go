package extraction

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/upidesk/paylens/internal/ocr"
)

var _ = Describe("scanPassbookLines", func() {
	var (
		rec  Record
		text string
	)

	BeforeEach(func() {
		rec = newRecord("", "doc.png", ocr.SourcePassbook)
	})

	JustBeforeEach(func() {
		scanPassbookLines(rec, text)
	})

	When("a label and its value are split across lines", func() {
		BeforeEach(func() {
			text = "Customer Name\nNirbhay Zala"
		})

		It("should fill the field from the next line", func() {
			Expect(rec["Account Holder"]).To(Equal("Nirbhay Zala"))
		})
	})

	When("blank lines separate the label from the value", func() {
		BeforeEach(func() {
			text = "Customer Name\n\n\n  Nirbhay Zala  \n"
		})

		It("should skip the blanks and trim the value", func() {
			Expect(rec["Account Holder"]).To(Equal("Nirbhay Zala"))
		})
	})

	When("the value never arrives", func() {
		BeforeEach(func() {
			text = "Customer Name\n\n"
		})

		It("should leave the field empty", func() {
			Expect(rec["Account Holder"]).To(BeEmpty())
		})
	})

	When("the field was already filled by an earlier pass", func() {
		BeforeEach(func() {
			rec["Account Holder"] = "Alice Kumar"
			text = "Customer Name\nBob Kumar"
		})

		It("should not overwrite the earlier value", func() {
			Expect(rec["Account Holder"]).To(Equal("Alice Kumar"))
		})
	})

	When("two label/value pairs target the same field", func() {
		BeforeEach(func() {
			text = "Customer Name\nFirst Match\nHolder Name\nSecond Match"
		})

		It("should keep the first detection", func() {
			Expect(rec["Account Holder"]).To(Equal("First Match"))
		})
	})

	When("a bare digit line appears", func() {
		BeforeEach(func() {
			text = "some heading\n123456789012345\nmore text"
		})

		It("should treat 9-18 digits as a candidate account number", func() {
			Expect(rec["Account Number"]).To(Equal("123456789012345"))
		})
	})

	When("a bare digit line is too short", func() {
		BeforeEach(func() {
			text = "12345678"
		})

		It("should not treat it as an account number", func() {
			Expect(rec["Account Number"]).To(BeEmpty())
		})
	})

	When("a bare IFSC-shaped line appears", func() {
		BeforeEach(func() {
			text = "SBIN0001234"
		})

		It("should fill the IFSC code", func() {
			Expect(rec["IFSC Code"]).To(Equal("SBIN0001234"))
		})
	})

	When("a bare IFSC-shaped line equals the detected MICR code", func() {
		BeforeEach(func() {
			rec["MICR Code"] = "SBIN0001234"
			text = "SBIN0001234"
		})

		It("should not fill the IFSC code", func() {
			Expect(rec["IFSC Code"]).To(BeEmpty())
		})
	})
})
