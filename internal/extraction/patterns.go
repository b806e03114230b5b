package extraction

import "regexp"

// The pattern catalog. Rules for one field are tried in declaration order and
// the first match wins, so order encodes priority among alternative phrasings.
// Rule lists are slices, never maps.

// fieldRules binds a record field to its ordered rule list.
type fieldRules struct {
	key    string
	amount bool // value goes through cleanAmount
	rules  []*regexp.Regexp
}

// compileAll compiles inline rules with case-insensitive, multi-line matching.
func compileAll(patterns ...string) []*regexp.Regexp {
	rules := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		rules[i] = regexp.MustCompile(`(?im)` + p)
	}
	return rules
}

// ── UPI screenshot rules ─────────────────────────────────────────────

var screenshotRules = []fieldRules{
	{key: "Amount", amount: true, rules: compileAll(
		`[₹Rs]\.?\s*([\d,]+\.?\d{0,2})`,
		`Amount\s*[:\-]?\s*[₹Rs]?\.?\s*([\d,]+\.?\d{0,2})`,
		`Paid\s*[₹Rs]?\.?\s*([\d,]+\.?\d{0,2})`,
		`Total\s*Payable\s*[:\-]?\s*[₹Rs]?\.?\s*([\d,]+\.?\d{0,2})`,
		`^\s*[₹Rs]\.?\s*([\d,]+\.?\d{0,2})\s*$`, // standalone amount line
	)},
	{key: "UPI ID / VPA", rules: compileAll(
		`([a-zA-Z0-9.\-_]+@[a-zA-Z]+)`,
		`UPI\s*ID\s*[:\-]?\s*([a-zA-Z0-9.\-_]+@[a-zA-Z]+)`,
		`VPA\s*[:\-]?\s*([a-zA-Z0-9.\-_]+@[a-zA-Z]+)`,
	)},
	{key: "Date", rules: compileAll(
		`(\d{1,2}\s+[A-Za-z]{3,}\s+\d{4})`,
		`(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`,
		`(\d{4}-\d{2}-\d{2})`,
	)},
	{key: "Time", rules: compileAll(
		`(\d{1,2}:\d{2}\s*[APap][Mm])`,
		`(\d{1,2}:\d{2})`,
	)},
}

var screenshotStatusRules = compileAll(
	`(SUCCESS|FAILED|PENDING|PROCESSING|COMPLETED)`,
	`Payment\s*(Successful|Failed|Pending|Processing|Completed)`,
	`Transaction\s*(Successful|Failed|Pending)`,
)

// screenshotTxnIDRules is the transaction-id family. Captures are not
// assigned directly; the disambiguator classifies each candidate by shape.
var screenshotTxnIDRules = compileAll(
	`Txn\s*ID\s*[:\-]?\s*(\w+)`,
	`Transaction\s*ID\s*[:\-]?\s*(\w+)`,
	`UPI\s*Ref\s*No\s*[:\-]?\s*(\d+)`,
	`Ref\s*No\s*[:\-]?\s*(\d+)`,
	`UTR\s*[:\-]?\s*(\d+)`,
	`Google\s*Transaction\s*ID\s*[:\-]?\s*([\w\-]+)`,
	`Debited\s*from\s*[:\-]?\s*(\w+)`,
)

// ── Passbook / bank statement rules ──────────────────────────────────
//
// These handle same-line "label: value" pairs. Label/value splits across
// lines are handled by the multi-line scanner below. Text-capturing groups
// use greedy .+ to grab the full line content.

var passbookRules = []fieldRules{
	{key: "Bank Name", rules: compileAll(
		`(?:^|\n|\s)((?:State\s*Bank\s*of\s*India|SBI|HDFC\s*Bank|ICICI\s*Bank|` +
			`Axis\s*Bank|Kotak\s*(?:Mahindra)?|PNB|BOB|Bank\s*of\s*Baroda|` +
			`Union\s*Bank(?:\s*of\s*India)?|Canara\s*Bank|Indian\s*Bank|BOI|Bank\s*of\s*India|` +
			`Central\s*Bank|IDBI\s*Bank|Yes\s*Bank|IndusInd\s*Bank|Federal\s*Bank|` +
			`South\s*Indian\s*Bank|Bandhan\s*Bank|RBL\s*Bank|UCO\s*Bank|` +
			`Punjab\s*National\s*Bank|Indian\s*Overseas\s*Bank|` +
			`Allahabad\s*Bank|Dena\s*Bank|Syndicate\s*Bank|Oriental\s*Bank|` +
			`Corporation\s*Bank|Andhra\s*Bank|Vijaya\s*Bank|` +
			`Karnataka\s*Bank|Karur\s*Vysya|City\s*Union\s*Bank|` +
			`Tamilnad\s*Mercantile|Dhanlaxmi\s*Bank|Lakshmi\s*Vilas|` +
			`Nainital\s*Bank|Jammu\s*&?\s*Kashmir\s*Bank|` +
			`Bank\s*of\s*Maharashtra|IDFC\s*First)` +
			`(?:\s*(?:Bank|Ltd|Limited))?)\b`,
	)},
	{key: "Account Holder", rules: compileAll(
		// longer alternatives first so "Holder Name" beats bare "Holder"
		`(?:Account|A/?c)\s*Holder\s*Name\s*[:\-]?\s*(.+)`,
		`(?:Account|A/?c)\s*Holder\s*[:\-]\s*(.+)`,
		`Name\s*of\s*(?:Account\s*)?Holder\s*[:\-]?\s*(.+)`,
		`Holder\s*Name\s*[:\-]?\s*(.+)`,
		`Customer\s*(?:Name)?\s*[:\-]\s*(.+)`,
		`(?:^|\n)\s*Name\s*[:\-]\s*(.+)`,
		`(?:Mr|Mrs|Ms|Shri|Smt|Sri)\.?\s+([A-Za-z][A-Za-z .]{2,})`,
	)},
	{key: "Account Number", rules: compileAll(
		`(?:A/?c|Account|Acct)\s*(?:No\.?|Number|Num|#)\s*[:\-.]?\s*(\d[\d\s\-]{6,}\d)`,
		`(?:Savings|Current)\s*(?:A/?c|Account)\s*[:\-]?\s*(\d[\d\s\-]{6,}\d)`,
		`A/?[Cc]\s*[:\-.]?\s*(\d{9,18})`,
	)},
	{key: "Account Type", rules: compileAll(
		`\b(Savings|Current|Fixed\s*Deposit|Recurring\s*Deposit)\b\s*(?:Account|A/?c|Bank)?`,
		`\b(SB|CA|FD|RD)\b\s*(?:Account|A/?c)`,
	)},
	{key: "IFSC Code", rules: compileAll(
		`IFSC\s*(?:Code)?\s*[:\-]?\s*([A-Z]{4}0[A-Z0-9]{6})`,
		`(?:^|[\s:])([A-Z]{4}0[A-Z0-9]{6})(?:\s|$)`,
	)},
	{key: "MICR Code", rules: compileAll(
		`MICR\s*(?:Code|No\.?)?\s*[:\-]?\s*(\d{9})\b`,
	)},
	{key: "Branch Name", rules: compileAll(
		`Branch\s*(?:Name)?\s*[:\-]\s*(.+)`,
		`Branch\s*(?:Name)?\s*[:\-]?\s*(.{3,})`,
	)},
	{key: "CIF Number", rules: compileAll(
		`(?:CIF|CIF\s*(?:No\.?|Number|ID))\s*[:\-]?\s*(\d{6,})`,
		`Customer\s*(?:ID|Id)\s*[:\-]?\s*(\d{6,})`,
	)},
	{key: "Date of Opening", rules: compileAll(
		`(?:Date\s*of\s*(?:Opening|Open)|Opened?\s*(?:on|Date)|DOO)\s*[:\-]?\s*(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`,
		`(?:Date\s*of\s*(?:Opening|Open)|Opened?\s*(?:on|Date)|DOO)\s*[:\-]?\s*(\d{1,2}\s+[A-Za-z]{3,9}\s+\d{4})`,
	)},
	{key: "Nomination", rules: compileAll(
		`Nominat(?:ion|ee)\s*[:\-]?\s*(.+)`,
	)},
	{key: "Joint Holder", rules: compileAll(
		`(?:Joint\s*(?:Holder|Account\s*Holder|Name))\s*[:\-]?\s*(.+)`,
	)},
	{key: "Address", rules: compileAll(
		`(?:Address|Addr\.?)\s*[:\-]\s*(.+)`,
	)},
	{key: "Mobile Number", rules: compileAll(
		`(?:Mobile|Phone|Contact|Mob\.?)\s*(?:No\.?|Number)?\s*[:\-]?\s*(\+?\d[\d\s\-]{8,}\d)`,
	)},
	{key: "Date", rules: compileAll(
		`(?:Date|Dt|Txn\s*Date|Value\s*Date)\s*[:\-]?\s*(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`,
		`(\d{1,2}\s+[A-Za-z]{3,9}\s+\d{4})`,
		`(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`,
		`(\d{4}-\d{2}-\d{2})`,
	)},
	{key: "Transaction Type", rules: compileAll(
		`\b(NEFT|RTGS|IMPS|UPI|ATM|POS|ECS|NACH|CASH|CHQ|FT|TRANSFER)\b`,
		`(?:Mode|Type|Channel)\s*[:\-]?\s*(NEFT|RTGS|IMPS|UPI|ATM|POS|ECS|NACH)`,
	)},
	{key: "Narration", rules: compileAll(
		`(?:Narration|Description|Particulars|Remark|Details)\s*[:\-]?\s*(.+)`,
	)},
	{key: "Reference Number", rules: compileAll(
		`(?:Ref|Reference)\s*(?:No\.?|Number|ID|#)?\s*[:\-]?\s*(\d{8,})`,
		`UTR\s*(?:No\.?)?\s*[:\-]?\s*(\d{8,})`,
		`(?:Txn|Transaction)\s*(?:No\.?|ID|#)\s*[:\-]?\s*(\w{8,})`,
	)},
	{key: "Cheque Number", rules: compileAll(
		`(?:Cheque|Chq|CHQ)\s*(?:No\.?|Number|#)?\s*[:\-]?\s*(\d{6,})`,
	)},
	{key: "Credit (₹)", amount: true, rules: compileAll(
		`(?:Credit|Credited)\s*[:\-]?\s*[₹Rs]?\.?\s*([\d,]+\.\d{1,2})`,
		`(?:Credit|Credited)\s*[:\-]?\s*[₹Rs]?\.?\s*([\d,]+)`,
		`(?:Deposit)\s*[:\-]?\s*[₹Rs]?\.?\s*([\d,]+\.?\d{0,2})`,
		`[₹Rs]\.?\s*([\d,]+\.?\d{0,2})\s*(?:Cr|Credit)`,
	)},
	{key: "Debit (₹)", amount: true, rules: compileAll(
		`(?:Debit|Debited|Dr)\s*[:\-]?\s*[₹Rs]?\.?\s*([\d,]+\.\d{1,2})`,
		`(?:Debit|Debited|Dr)\s*[:\-]?\s*[₹Rs]?\.?\s*([\d,]+)`,
		`(?:Withdrawal|Withdraw)\s*[:\-]?\s*[₹Rs]?\.?\s*([\d,]+\.?\d{0,2})`,
		`[₹Rs]\.?\s*([\d,]+\.?\d{0,2})\s*(?:Dr|Debit)`,
	)},
	{key: "Balance (₹)", amount: true, rules: compileAll(
		`(?:Available|Avl\.?)\s*Bal(?:ance)?\.?\s*[:\-]?\s*[₹Rs]?\.?\s*([\d,]+\.\d{1,2})`,
		`(?:Available|Avl\.?)\s*Bal(?:ance)?\.?\s*[:\-]?\s*[₹Rs]?\.?\s*([\d,]+)`,
		`Balance\s*[:\-]?\s*[₹Rs]?\.?\s*([\d,]+\.\d{1,2})`,
		`Balance\s*[:\-]?\s*[₹Rs]?\.?\s*([\d,]+)`,
	)},
	{key: "Opening Balance (₹)", amount: true, rules: compileAll(
		`(?:Opening|Open(?:ing)?\.?)\s*Bal(?:ance)?\.?\s*[:\-]?\s*[₹Rs]?\.?\s*([\d,]+\.?\d{0,2})`,
		`Op\.?\s*Bal\.?\s*[:\-]?\s*[₹Rs]?\.?\s*([\d,]+\.?\d{0,2})`,
	)},
	{key: "Closing Balance (₹)", amount: true, rules: compileAll(
		`(?:Closing|Clos(?:ing)?\.?)\s*Bal(?:ance)?\.?\s*[:\-]?\s*[₹Rs]?\.?\s*([\d,]+\.?\d{0,2})`,
		`Cl\.?\s*Bal\.?\s*[:\-]?\s*[₹Rs]?\.?\s*([\d,]+\.?\d{0,2})`,
	)},
}

// ── Multi-line label → value triples ─────────────────────────────────
//
// When OCR splits a label and its value across lines, these catch the pair:
// the label must be alone on its line, the value must match on the next
// non-blank line.

// multilineRule is one (label, destination field, value) triple.
type multilineRule struct {
	label *regexp.Regexp
	key   string
	value *regexp.Regexp
}

func multiline(label, key, value string) multilineRule {
	return multilineRule{
		label: regexp.MustCompile(`(?i)` + label),
		key:   key,
		value: regexp.MustCompile(`(?i)` + value),
	}
}

var passbookMultilineRules = []multilineRule{
	multiline(`(?:A/?c|Account|Acct)\s*(?:No\.?|Number|Num|#)\s*[:\-.]?\s*$`,
		"Account Number", `^\s*(\d[\d\s\-]{6,}\d)\s*$`),
	multiline(`(?:Account|A/?c)\s*(?:Holder|Holder\s*Name)\s*[:\-]?\s*$`,
		"Account Holder", `^\s*(.{2,})\s*$`),
	multiline(`(?:Customer)\s*(?:Name)?\s*[:\-]?\s*$`,
		"Account Holder", `^\s*(.{2,})\s*$`),
	multiline(`(?:Holder)\s*(?:Name)?\s*[:\-]?\s*$`,
		"Account Holder", `^\s*(.{2,})\s*$`),
	multiline(`^\s*Name\s*[:\-]?\s*$`,
		"Account Holder", `^\s*([A-Za-z].*)\s*$`),
	multiline(`(?:Branch)\s*(?:Name)?\s*[:\-]?\s*$`,
		"Branch Name", `^\s*(.{3,})\s*$`),
	multiline(`IFSC\s*(?:Code)?\s*[:\-]?\s*$`,
		"IFSC Code", `^\s*([A-Z]{4}0[A-Z0-9]{6})\s*$`),
	multiline(`MICR\s*(?:Code|No\.?)?\s*[:\-]?\s*$`,
		"MICR Code", `^\s*(\d{9})\s*$`),
	multiline(`(?:Balance|Bal\.?)\s*[:\-]?\s*$`,
		"Balance (₹)", `^\s*[₹Rs]?\.?\s*([\d,]+\.?\d{0,2})\s*$`),
	multiline(`(?:Ref|Reference)\s*(?:No\.?|Number|ID)?\s*[:\-]?\s*$`,
		"Reference Number", `^\s*(\d{8,})\s*$`),
	multiline(`(?:CIF|Customer\s*ID)\s*(?:No\.?|Number)?\s*[:\-]?\s*$`,
		"CIF Number", `^\s*(\d{6,})\s*$`),
	multiline(`Nominat(?:ion|ee)\s*[:\-]?\s*$`,
		"Nomination", `^\s*(.{2,})\s*$`),
	multiline(`(?:Address|Addr\.?)\s*[:\-]?\s*$`,
		"Address", `^\s*(.{3,})\s*$`),
	multiline(`(?:Joint)\s*(?:Holder|Account\s*Holder|Name)\s*[:\-]?\s*$`,
		"Joint Holder", `^\s*(.{2,})\s*$`),
	multiline(`(?:Mobile|Phone|Contact|Mob\.?)\s*(?:No\.?|Number)?\s*[:\-]?\s*$`,
		"Mobile Number", `^\s*(\+?\d[\d\s\-]{8,}\d)\s*$`),
	multiline(`(?:Date\s*of\s*(?:Opening|Open)|Opened?\s*(?:on|Date)|DOO)\s*[:\-]?\s*$`,
		"Date of Opening", `^\s*(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})\s*$`),
	multiline(`(?:Narration|Particulars|Remark)\s*[:\-]?\s*$`,
		"Narration", `^\s*(.{3,})\s*$`),
	multiline(`(?:Cheque|Chq)\s*(?:No\.?|Number)?\s*[:\-]?\s*$`,
		"Cheque Number", `^\s*(\d{6,})\s*$`),
}

// Standalone line recognizers used by the multi-line scanner.
var (
	bareAccountNumberLine = regexp.MustCompile(`^\s*(\d{9,18})\s*$`)
	bareIFSCLine          = regexp.MustCompile(`^\s*([A-Z]{4}0[A-Z0-9]{6})\s*$`)
)
