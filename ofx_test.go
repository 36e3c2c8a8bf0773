package ofxstream_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	"github.com/rockstardevs/ofxstream"
)

// v1Statement is an OFX 1.x export in windows-1252, the second payee is
// "Café" once decoded.
var v1Statement = strings.Replace(`OFXHEADER:100
DATA:OFXSGML
VERSION:102
SECURITY:NONE
ENCODING:USASCII
CHARSET:1252
COMPRESSION:NONE
OLDFILEUID:NONE
NEWFILEUID:NONE

<OFX>
<SIGNONMSGSRSV1>
<SONRS>
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<DTSERVER>20230131120000
<LANGUAGE>ENG
</SONRS>
</SIGNONMSGSRSV1>
<BANKMSGSRSV1>
<STMTTRNRS>
<TRNUID>1
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<STMTRS>
<CURDEF>USD
<BANKACCTFROM>
<BANKID>456
<ACCTID>789
<ACCTTYPE>CHECKING
</BANKACCTFROM>
<BANKTRANLIST>
<DTSTART>20230101
<DTEND>20230131
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20230110
<TRNAMT>-50.00
<FITID>1
<NAME>AT&T Bill
</STMTTRN>
<STMTTRN>
<TRNTYPE>CREDIT
<DTPOSTED>20230115
<TRNAMT>100.00
<FITID>2
<NAME>CAFE_PAYEE
</STMTTRN>
</BANKTRANLIST>
<LEDGERBAL>
<BALAMT>315.50
<DTASOF>20230131
</LEDGERBAL>
</STMTRS>
</STMTTRNRS>
</BANKMSGSRSV1>
</OFX>
`, "CAFE_PAYEE", "Caf\xe9", 1)

const v1Header = "OFXHEADER:100\nDATA:OFXSGML\nVERSION:102\nSECURITY:NONE\nENCODING:USASCII\n" +
	"CHARSET:1252\nCOMPRESSION:NONE\nOLDFILEUID:NONE\nNEWFILEUID:NONE\n\n"

// v1BankExtras is an OFX 1.x bank statement holding aggregates the parser
// does not read.
const v1BankExtras = v1Header + `<OFX>
<SIGNONMSGSRSV1><SONRS><STATUS><CODE>0<SEVERITY>INFO</STATUS><DTSERVER>20230131<LANGUAGE>ENG</SONRS></SIGNONMSGSRSV1>
<BANKMSGSRSV1><STMTTRNRS><TRNUID>1<STATUS><CODE>0<SEVERITY>INFO</STATUS>
<STMTRS><CURDEF>USD
<BANKACCTFROM><BANKID>456<ACCTID>789<ACCTTYPE>CHECKING</BANKACCTFROM>
<BANKTRANLIST><DTSTART>20230101<DTEND>20230131
<STMTTRN><TRNTYPE>PAYMENT<DTPOSTED>20230110<TRNAMT>-75.00<FITID>1
<PAYEE><NAME>City Water<ADDR1>1 Main St<CITY>Springfield<STATE>IL<POSTALCODE>62701<PHONE>5550100</PAYEE>
<MEMO>Water bill
</STMTTRN>
<STMTTRN><TRNTYPE>XFER<DTPOSTED>20230112<TRNAMT>-100.00<FITID>2<NAME>To savings
<BANKACCTTO><BANKID>456<ACCTID>790<ACCTTYPE>SAVINGS</BANKACCTTO>
</STMTTRN>
</BANKTRANLIST>
<LEDGERBAL><BALAMT>315.50<DTASOF>20230131</LEDGERBAL>
<AVAILBAL><BALAMT>300.00<DTASOF>20230131</AVAILBAL>
<BALLIST><BAL><NAME>Overdraft<DESC>Overdraft limit<BALTYPE>DOLLAR<VALUE>1.5</BAL></BALLIST>
<MKTGINFO>Visit us online
</STMTRS></STMTTRNRS></BANKMSGSRSV1>
</OFX>
`

// v1InvestmentExtras is an OFX 1.x investment statement with a sale and
// positions, neither of which is read.
const v1InvestmentExtras = v1Header + `<OFX>
<SIGNONMSGSRSV1><SONRS><STATUS><CODE>0<SEVERITY>INFO</STATUS><DTSERVER>20230131<LANGUAGE>ENG</SONRS></SIGNONMSGSRSV1>
<INVSTMTMSGSRSV1><INVSTMTTRNRS><TRNUID>1<STATUS><CODE>0<SEVERITY>INFO</STATUS>
<INVSTMTRS><DTASOF>20230131<CURDEF>USD
<INVACCTFROM><BROKERID>broker.example.com<ACCTID>A-1</INVACCTFROM>
<INVTRANLIST><DTSTART>20230101<DTEND>20230131
<BUYSTOCK><INVBUY><INVTRAN><FITID>B1<DTTRADE>20230110</INVTRAN>
<SECID><UNIQUEID>123456789<UNIQUEIDTYPE>CUSIP</SECID>
<UNITS>10<UNITPRICE>12.5<TOTAL>-125.00<SUBACCTSEC>CASH<SUBACCTFUND>CASH</INVBUY><BUYTYPE>BUY</BUYSTOCK>
<SELLSTOCK><INVSELL><INVTRAN><FITID>S1<DTTRADE>20230120</INVTRAN>
<SECID><UNIQUEID>123456789<UNIQUEIDTYPE>CUSIP</SECID>
<UNITS>-5<UNITPRICE>13<TOTAL>65.00<SUBACCTSEC>CASH<SUBACCTFUND>CASH</INVSELL><SELLTYPE>SELL</SELLSTOCK>
</INVTRANLIST>
<INVPOSLIST><POSSTOCK><INVPOS><SECID><UNIQUEID>123456789<UNIQUEIDTYPE>CUSIP</SECID>
<HELDINACCT>CASH<POSTYPE>LONG<UNITS>5<UNITPRICE>13<MKTVAL>65<DTPRICEASOF>20230131</INVPOS></POSSTOCK></INVPOSLIST>
<INVBAL><AVAILCASH>100<MARGINBALANCE>0<SHORTBALANCE>0</INVBAL>
</INVSTMTRS></INVSTMTTRNRS></INVSTMTMSGSRSV1>
</OFX>
`

var _ = Describe("ofxstream", func() {
	Describe("DetectVersion()", func() {
		DescribeTable("should detect the OFX version", func(data string, expected ofxstream.Version) {
			Expect(ofxstream.DetectVersion([]byte(data))).To(Equal(expected))
		},
			Entry("for an OFX 1.x header", "OFXHEADER:100\nDATA:OFXSGML\n\n<OFX>", ofxstream.V1),
			Entry("for a lower case header", "ofxheader:100\n<OFX>", ofxstream.V1),
			Entry("for a header after a byte order mark", "\xef\xbb\xbf\r\n  OFXHEADER:100", ofxstream.V1),
			Entry("for a bare OFX element", "<OFX><SIGNONMSGSRSV1>", ofxstream.V1),
			Entry("for an OFX processing instruction", "<?xml version=\"1.0\"?>\n<?OFX OFXHEADER=\"200\" VERSION=\"211\"?>\n<OFX>", ofxstream.V2),
			Entry("for an XML declaration without one", "<?xml version=\"1.0\"?>\n<OFX></OFX>", ofxstream.V2),
			Entry("for other data", "hello world", ofxstream.UnknownVersion),
			Entry("for no data", "", ofxstream.UnknownVersion),
		)
		It("should name the versions", func() {
			Expect(ofxstream.V1.String()).To(Equal("1.x"))
			Expect(ofxstream.V2.String()).To(Equal("2.x"))
			Expect(ofxstream.UnknownVersion.String()).To(Equal("unknown"))
		})
	})
	Describe("HeaderEncoding()", func() {
		DescribeTable("should map the header to a charset label", func(data string, expected string) {
			Expect(ofxstream.HeaderEncoding([]byte(data))).To(Equal(expected))
		},
			Entry("for UTF-8", "ENCODING:UTF-8\r\nCHARSET:NONE\r\n\r\n<OFX>", "utf-8"),
			Entry("for UNICODE", "ENCODING:UNICODE\nCHARSET:NONE\n<OFX>", "utf-8"),
			Entry("for code page 1252", "ENCODING:USASCII\nCHARSET:1252\n<OFX>", "windows-1252"),
			Entry("for other code pages", "ENCODING:USASCII\nCHARSET:1251\n<OFX>", "windows-1251"),
			Entry("for latin-1", "ENCODING:USASCII\nCHARSET:ISO-8859-1\n<OFX>", "iso-8859-1"),
			Entry("for no charset", "ENCODING:USASCII\nCHARSET:NONE\n<OFX>", "us-ascii"),
			Entry("for a missing header", "<OFX>", "windows-1252"),
			Entry("ignoring the body", "CHARSET:1252\n<OFX><MEMO>CHARSET:8859-1</MEMO>", "windows-1252"),
		)
	})
	Describe("ParseBytes()", func() {
		Context("when given an OFX 1.x document", func() {
			It("should clean and parse it", func() {
				statement, err := ofxstream.ParseBytes([]byte(v1Statement), ofxstream.NewCleaner())
				Expect(err).To(BeNil())
				Expect(statement.AccountID).To(Equal("789"))
				Expect(statement.BankID).To(Equal("456"))
				Expect(statement.LedgerBalance.String()).To(Equal("315.5"))
				Expect(statement.LedgerBalanceDate).To(Equal(time.Date(2023, time.January, 31, 0, 0, 0, 0, time.UTC)))
				Expect(statement.Transactions).To(HaveLen(2))
				Expect(statement.Transactions[0].Payee).To(Equal("AT&T Bill"))
				Expect(statement.Transactions[0].Amount.String()).To(Equal("-50"))
				Expect(statement.Transactions[1].Payee).To(Equal("Café"))
				Expect(statement.Language).To(Equal("ENG"))
			})
		})
		Context("when given a headerless SGML document", func() {
			It("should clean and parse it", func() {
				data := []byte(`
				<OFX>
				<SIGNONMSGSRSV1><SONRS>
					<STATUS><CODE>0<SEVERITY>INFO</STATUS>
					<DTSERVER>20190923042445<LANGUAGE>ENG
					<FI><ORG>Test Bank</ORG><FID>123</FID></FI>
				</SONRS></SIGNONMSGSRSV1>
				<BANKMSGSRSV1><STMTTRNRS>
					<TRNUID>0
					<STATUS><CODE>0<SEVERITY>INFO</STATUS>
					<STMTRS>
						<CURDEF>USD
						<BANKACCTFROM><BANKID>456<ACCTID>789<ACCTTYPE>CREDITLINE</BANKACCTFROM>
						<BANKTRANLIST>
							<DTSTART>20190101120000.000[0:GMT]<DTEND>20190131120000.000[0:GMT]
							<STMTTRN><TRNTYPE>DEBIT<DTPOSTED>20190119090000<TRNAMT>-20.96<FITID>20190119090001<NAME>Sample Expense</STMTTRN>
							<STMTTRN><TRNTYPE>DEBIT<DTPOSTED>20191115090000<TRNAMT>-115.26<FITID>20190122090002<NAME>Another Expense</STMTTRN>
						</BANKTRANLIST>
						<LEDGERBAL><BALAMT>315.50<DTASOF>20190131120000.000[0:GMT]</LEDGERBAL>
					</STMTRS>
				</STMTTRNRS></BANKMSGSRSV1>
				</OFX>`)
				statement, err := ofxstream.ParseBytes(data, ofxstream.NewCleaner())
				Expect(err).To(BeNil())
				Expect(statement.AccountType).To(Equal("CREDITLINE"))
				Expect(statement.Transactions).To(HaveLen(2))
				Expect(statement.Transactions[1].Payee).To(Equal("Another Expense"))
				Expect(statement.Transactions[1].Amount.String()).To(Equal("-115.26"))
				Expect(statement.DateEnd).To(Equal(time.Date(2019, time.January, 31, 0, 0, 0, 0, time.UTC)))
			})
		})
		Context("when given an OFX 1.x document with aggregates that are not read", func() {
			It("should parse the bank statement", func() {
				statement, err := ofxstream.ParseBytes([]byte(v1BankExtras), ofxstream.NewCleaner())
				Expect(err).To(BeNil())
				Expect(statement.AccountID).To(Equal("789"))
				Expect(statement.LedgerBalance.String()).To(Equal("315.5"))
				Expect(statement.AvailableBalance.String()).To(Equal("300"))
				Expect(statement.Transactions).To(HaveLen(2))
				Expect(statement.Transactions[0].Payee).To(Equal("City Water"))
				Expect(statement.Transactions[0].Memo).To(Equal("Water bill"))
				Expect(statement.Transactions[1].Payee).To(Equal("To savings"))
				Expect(statement.Transactions[1].Amount.String()).To(Equal("-100"))
			})
			It("should parse the investment statement", func() {
				statement, err := ofxstream.ParseBytes([]byte(v1InvestmentExtras), ofxstream.NewCleaner())
				Expect(err).To(BeNil())
				Expect(statement.BankID).To(Equal("broker.example.com"))
				Expect(statement.AccountID).To(Equal("A-1"))
				Expect(statement.Transactions).To(HaveLen(1))
				Expect(statement.Transactions[0].ID).To(Equal("B1"))
				Expect(statement.Transactions[0].Action).To(Equal(ofxstream.BuyShare))
				Expect(statement.Transactions[0].Total.String()).To(Equal("-125"))
			})
		})
		Context("when given an OFX 2.x document", func() {
			It("should parse it", func() {
				statement, err := ofxstream.ParseBytes([]byte(bankStatement), ofxstream.NewCleaner())
				Expect(err).To(BeNil())
				Expect(statement.AccountID).To(Equal("789"))
				Expect(statement.Transactions).To(HaveLen(2))
				Expect(statement.Language).To(Equal("FRA"))
			})
		})
		Context("when given data that is not OFX", func() {
			It("should return ErrUnknownVersion", func() {
				statement, err := ofxstream.ParseBytes([]byte("Date,Amount\n2023-01-01,1.00\n"), ofxstream.NewCleaner())
				Expect(statement).To(BeNil())
				Expect(err).To(MatchError(ofxstream.ErrUnknownVersion))
			})
		})
		Context("when given a cleaner", func() {
			var (
				ctrl    *gomock.Controller
				cleaner *MockCleaner
			)
			BeforeEach(func() {
				ctrl = gomock.NewController(GinkgoT())
				cleaner = NewMockCleaner(ctrl)
			})
			AfterEach(func() {
				ctrl.Finish()
			})
			It("should parse what the cleaner returns", func() {
				cleaner.EXPECT().CleanupXML(gomock.Any()).Return(bytes.NewBufferString(
					`<OFX><BANKMSGSRSV1><BANKACCTFROM><ACCTID>1234</ACCTID></BANKACCTFROM></BANKMSGSRSV1></OFX>`), nil)
				statement, err := ofxstream.ParseBytes([]byte("OFXHEADER:100\n\n<OFX>"), cleaner)
				Expect(err).To(BeNil())
				Expect(statement.AccountID).To(Equal("1234"))
			})
			It("should return the cleaner error", func() {
				cleaner.EXPECT().CleanupXML(gomock.Any()).Return(nil, errors.New("fake cleaner test error"))
				statement, err := ofxstream.ParseBytes([]byte("OFXHEADER:100\n\n<OFX>"), cleaner)
				Expect(statement).To(BeNil())
				Expect(err).To(MatchError("fake cleaner test error"))
			})
			It("should hand the cleaner UTF-8 data", func() {
				cleaner.EXPECT().CleanupXML(gomock.Any()).DoAndReturn(func(data []byte) (*bytes.Buffer, error) {
					Expect(string(data)).To(ContainSubstring("<NAME>Café"))
					return ofxstream.NewCleaner().CleanupXML(data)
				})
				_, err := ofxstream.ParseBytes([]byte(v1Statement), cleaner)
				Expect(err).To(BeNil())
			})
			It("should not clean OFX 2.x documents", func() {
				statement, err := ofxstream.ParseBytes([]byte(investmentStatement), cleaner)
				Expect(err).To(BeNil())
				Expect(statement.Securities).To(HaveLen(2))
			})
		})
	})
	Describe("ParseFile()", func() {
		var dir string
		BeforeEach(func() {
			var err error
			dir, err = os.MkdirTemp("", "ofxstream")
			Expect(err).To(BeNil())
		})
		AfterEach(func() {
			os.RemoveAll(dir)
		})
		It("should parse the file", func() {
			path := filepath.Join(dir, "statement.qfx")
			Expect(os.WriteFile(path, []byte(v1Statement), 0o600)).To(Succeed())
			statement, err := ofxstream.ParseFile(path, ofxstream.NewCleaner())
			Expect(err).To(BeNil())
			Expect(statement.Transactions).To(HaveLen(2))
		})
		It("should return an error for a missing file", func() {
			statement, err := ofxstream.ParseFile(filepath.Join(dir, "missing.ofx"), ofxstream.NewCleaner())
			Expect(statement).To(BeNil())
			Expect(errors.Is(err, os.ErrNotExist)).To(BeTrue())
		})
	})
	Describe("ParseReader()", func() {
		It("should stream large OFX 2.x documents", func() {
			var b strings.Builder
			b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
			b.WriteString(`<?OFX OFXHEADER="200" VERSION="211"?>` + "\n")
			b.WriteString("<OFX><BANKMSGSRSV1><STMTTRNRS><STMTRS><BANKTRANLIST>\n")
			for i := 0; i < 1000; i++ {
				b.WriteString("<STMTTRN><TRNTYPE>DEBIT</TRNTYPE><DTPOSTED>20230101</DTPOSTED><TRNAMT>-1.00</TRNAMT><FITID>x</FITID></STMTTRN>\n")
			}
			b.WriteString("</BANKTRANLIST></STMTRS></STMTTRNRS></BANKMSGSRSV1></OFX>\n")
			statement, err := ofxstream.ParseReader(strings.NewReader(b.String()), ofxstream.NewCleaner())
			Expect(err).To(BeNil())
			Expect(statement.Transactions).To(HaveLen(1000))
		})
	})
})
