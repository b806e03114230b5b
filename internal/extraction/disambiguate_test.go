package extraction

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/upidesk/paylens/internal/ocr"
)

var _ = Describe("classifyTxnIDs", func() {
	var (
		rec  Record
		text string
	)

	BeforeEach(func() {
		rec = newRecord("", "doc.png", ocr.SourceScreenshot)
	})

	JustBeforeEach(func() {
		classifyTxnIDs(rec, text)
	})

	When("the token contains CIC", func() {
		BeforeEach(func() {
			text = "Google Transaction ID: CICAgKDvx8aXdA"
		})

		It("should classify it as a Google transaction id", func() {
			Expect(rec["Google Transaction ID"]).To(Equal("CICAgKDvx8aXdA"))
			Expect(rec["UPI Transaction ID"]).To(BeEmpty())
		})
	})

	When("the token is long and not purely numeric", func() {
		BeforeEach(func() {
			text = "Txn ID: AXISP00123456789012345678"
		})

		It("should classify it as a Google transaction id", func() {
			Expect(rec["Google Transaction ID"]).To(Equal("AXISP00123456789012345678"))
		})
	})

	When("the token is 12 or more digits", func() {
		BeforeEach(func() {
			text = "UTR: 123456789012"
		})

		It("should classify it as a reference id", func() {
			Expect(rec["Reference ID"]).To(Equal("123456789012"))
		})
	})

	When("the token is alphanumeric and longer than 8 chars", func() {
		BeforeEach(func() {
			text = "Txn ID: AXIS1234567"
		})

		It("should classify it as a UPI transaction id", func() {
			Expect(rec["UPI Transaction ID"]).To(Equal("AXIS1234567"))
		})
	})

	When("the token is too short to classify", func() {
		BeforeEach(func() {
			text = "Txn ID: AB12"
		})

		It("should discard it", func() {
			Expect(rec["UPI Transaction ID"]).To(BeEmpty())
			Expect(rec["Reference ID"]).To(BeEmpty())
			Expect(rec["Google Transaction ID"]).To(BeEmpty())
		})
	})

	When("two distinct tokens map to the same field", func() {
		BeforeEach(func() {
			text = "UPI Ref No: 111111111111\nUTR: 222222222222"
		})

		It("should deterministically keep the first candidate in rule order", func() {
			Expect(rec["Reference ID"]).To(Equal("111111111111"))
		})
	})

	When("the same token appears under several labels", func() {
		BeforeEach(func() {
			text = "Txn ID: 999999999999\nUTR: 999999999999"
		})

		It("should classify it once", func() {
			Expect(rec["Reference ID"]).To(Equal("999999999999"))
		})
	})
})

var _ = Describe("scanScreenshotLines", func() {
	var (
		rec  Record
		text string
	)

	BeforeEach(func() {
		rec = newRecord("", "doc.png", ocr.SourceScreenshot)
	})

	JustBeforeEach(func() {
		scanScreenshotLines(rec, text)
	})

	When("a short line contains a bank name", func() {
		BeforeEach(func() {
			text = "Paid via UPI\nHDFC Bank\nThank you"
		})

		It("should take it as the bank name", func() {
			Expect(rec["Bank Name"]).To(Equal("HDFC Bank"))
		})
	})

	When("the only Bank line is a reference label", func() {
		BeforeEach(func() {
			text = "Bank Ref No: 12345"
		})

		It("should not take it as the bank name", func() {
			Expect(rec["Bank Name"]).To(BeEmpty())
		})
	})

	When("two qualifying bank lines appear", func() {
		BeforeEach(func() {
			text = "Axis Bank\nHDFC Bank"
		})

		It("should keep the first", func() {
			Expect(rec["Bank Name"]).To(Equal("Axis Bank"))
		})
	})

	When("the receiver label is alone on its line", func() {
		BeforeEach(func() {
			text = "Paid to\nJane Smith\nAmount stuff"
		})

		It("should take the next line as the receiver", func() {
			Expect(rec["To (Receiver)"]).To(Equal("Jane Smith"))
		})
	})

	When("the sender follows a from label", func() {
		BeforeEach(func() {
			text = "From: Alice Kumar\nTo: Bob Kumar"
		})

		It("should extract both parties", func() {
			Expect(rec["From (Sender)"]).To(Equal("Alice Kumar"))
			Expect(rec["To (Receiver)"]).To(Equal("Bob Kumar"))
		})
	})
})

var _ = Describe("normalizePassbook", func() {
	var rec Record

	BeforeEach(func() {
		rec = newRecord("", "doc.png", ocr.SourcePassbook)
	})

	When("the IFSC and MICR codes collide", func() {
		BeforeEach(func() {
			rec["IFSC Code"] = "380002001"
			rec["MICR Code"] = "380002001"
			normalizePassbook(rec)
		})

		It("should clear the MICR code and keep the IFSC code", func() {
			Expect(rec["MICR Code"]).To(BeEmpty())
			Expect(rec["IFSC Code"]).To(Equal("380002001"))
		})
	})

	When("the balance is exactly the MICR code", func() {
		BeforeEach(func() {
			rec["Balance (₹)"] = "380002001"
			rec["MICR Code"] = "380002001"
			normalizePassbook(rec)
		})

		It("should clear the balance", func() {
			Expect(rec["Balance (₹)"]).To(BeEmpty())
		})
	})

	When("the balance is a genuine amount", func() {
		BeforeEach(func() {
			rec["Balance (₹)"] = "15000.50"
			rec["MICR Code"] = "380002001"
			normalizePassbook(rec)
		})

		It("should keep the balance", func() {
			Expect(rec["Balance (₹)"]).To(Equal("15000.50"))
		})
	})

	DescribeTable("account type normalization",
		func(raw, expected string) {
			rec["Account Type"] = raw
			normalizePassbook(rec)
			Expect(rec["Account Type"]).To(Equal(expected))
		},
		Entry("SB abbreviation", "SB", "Savings"),
		Entry("CA abbreviation", "CA", "Current"),
		Entry("FD abbreviation", "FD", "Fixed Deposit"),
		Entry("RD abbreviation", "RD", "Recurring Deposit"),
		Entry("full word keeps canonical casing", "savings", "Savings"),
		Entry("unknown type is untouched", "Super Saver", "Super Saver"),
	)

	When("numbers carry OCR punctuation", func() {
		BeforeEach(func() {
			rec["Account Number"] = "1234 5678-9012"
			rec["Mobile Number"] = "+91 98765 43210"
			normalizePassbook(rec)
		})

		It("should strip spaces and dashes", func() {
			Expect(rec["Account Number"]).To(Equal("123456789012"))
			Expect(rec["Mobile Number"]).To(Equal("+919876543210"))
		})
	})
})
