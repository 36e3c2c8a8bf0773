package ofxstream

import (
	"time"

	"github.com/shopspring/decimal"
)

//revive:disable:exported

// DefaultLanguage is assumed unless the document declares its language.
const DefaultLanguage = "ENG"

// TransactionType is a transaction type as per the OFX Spec 2.2 Section 11.4.4.3
// https://www.ofx.net/downloads/OFX%202.2.pdf
// Values are taken verbatim from TRNTYPE, so banks may send others.
type TransactionType string

const (
	// Common Transaction Types
	DEBIT  TransactionType = "DEBIT"
	CREDIT TransactionType = "CREDIT"
	// Uncommon Transaction Types
	INTEREST      TransactionType = "INT"
	DIVIDEND      TransactionType = "DIV"
	FEE           TransactionType = "FEE"
	SERVICECHARGE TransactionType = "SRVCHG"
	DEPOSIT       TransactionType = "DEP"
	ATM           TransactionType = "ATM"
	POS           TransactionType = "POS"
	TRANSFER      TransactionType = "XFER"
	CHECK         TransactionType = "CHECK"
	PAYMENT       TransactionType = "PAYMENT"
	CASH          TransactionType = "CASH"
	DIRECTDEPOSIT TransactionType = "DIRECTDEP"
	DIRECTDEBIT   TransactionType = "DIRECTDEBIT"
	REPEATPAYMENT TransactionType = "REPEATPMT"
	OTHER         TransactionType = "OTHER"
)

// Origin tells bank and investment transactions apart.
type Origin int

const (
	BankOrigin Origin = iota
	InvestmentOrigin
)

func (o Origin) String() string {
	if o == InvestmentOrigin {
		return "investment"
	}
	return "bank"
}

// MarshalText encodes the origin by name.
func (o Origin) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// InvestmentAction classifies an investment transaction. Only purchases are
// classified, income and reinvest transactions keep NoAction.
type InvestmentAction string

const (
	NoAction InvestmentAction = ""
	BuyShare InvestmentAction = "BUYSHARE"
)

// Status is an OFX STATUS aggregate.
type Status struct {
	Code     int    `json:"code" yaml:"code"`
	Severity string `json:"severity,omitempty" yaml:"severity,omitempty"`
	Message  string `json:"message,omitempty" yaml:"message,omitempty"`
}

// Transaction is a STMTTRN, or an investment transaction when Origin is
// InvestmentOrigin. Any field may be left unset by the document.
type Transaction struct {
	Origin          Origin          `json:"origin" yaml:"origin"`
	Type            TransactionType `json:"type,omitempty" yaml:"type,omitempty"`
	DatePosted      time.Time       `json:"datePosted" yaml:"datePosted"`
	DateUser        time.Time       `json:"dateUser" yaml:"dateUser"`
	Amount          decimal.Decimal `json:"amount" yaml:"amount"`
	ID              string          `json:"id,omitempty" yaml:"id,omitempty"`
	CheckNumber     string          `json:"checkNumber,omitempty" yaml:"checkNumber,omitempty"`
	Payee           string          `json:"payee,omitempty" yaml:"payee,omitempty"`
	Memo            string          `json:"memo,omitempty" yaml:"memo,omitempty"`
	SIC             string          `json:"sic,omitempty" yaml:"sic,omitempty"`
	RefNum          string          `json:"refNum,omitempty" yaml:"refNum,omitempty"`
	PayeeID         string          `json:"payeeId,omitempty" yaml:"payeeId,omitempty"`
	Currency        string          `json:"currency,omitempty" yaml:"currency,omitempty"`
	SubAccount      string          `json:"subAccount,omitempty" yaml:"subAccount,omitempty"`

	// Investment only.
	Action        InvestmentAction `json:"action,omitempty" yaml:"action,omitempty"`
	DateTrade     time.Time        `json:"dateTrade" yaml:"dateTrade"`
	DateSettle    time.Time        `json:"dateSettle" yaml:"dateSettle"`
	Total         decimal.Decimal  `json:"total" yaml:"total"`
	SecurityID    string           `json:"securityId,omitempty" yaml:"securityId,omitempty"`
	Units         decimal.Decimal  `json:"units" yaml:"units"`
	UnitPrice     decimal.Decimal  `json:"unitPrice" yaml:"unitPrice"`
	Commission    decimal.Decimal  `json:"commission" yaml:"commission"`
	SubAccountSec string           `json:"subAccountSec,omitempty" yaml:"subAccountSec,omitempty"`
}

// IsInvestment returns true for transactions read from an investment
// transaction aggregate.
func (t *Transaction) IsInvestment() bool {
	return t.Origin == InvestmentOrigin
}

// Security is a SECINFO aggregate from a security list.
type Security struct {
	ID           string          `json:"id,omitempty" yaml:"id,omitempty"`
	IDType       string          `json:"idType,omitempty" yaml:"idType,omitempty"`
	Name         string          `json:"name,omitempty" yaml:"name,omitempty"`
	Ticker       string          `json:"ticker,omitempty" yaml:"ticker,omitempty"`
	UnitPrice    decimal.Decimal `json:"unitPrice" yaml:"unitPrice"`
	DateAsOf     time.Time       `json:"dateAsOf" yaml:"dateAsOf"`
	Currency     string          `json:"currency,omitempty" yaml:"currency,omitempty"`
	CurrencyRate decimal.Decimal `json:"currencyRate" yaml:"currencyRate"`
}

// Statement is the result of parsing one OFX document.
// This does not model the complete OFX spec; bank, credit card, investment
// and security list message sets are read into one flat statement.
type Statement struct {
	Currency    string `json:"currency,omitempty" yaml:"currency,omitempty"`
	BankID      string `json:"bankId,omitempty" yaml:"bankId,omitempty"`
	BranchID    string `json:"branchId,omitempty" yaml:"branchId,omitempty"`
	AccountID   string `json:"accountId,omitempty" yaml:"accountId,omitempty"`
	AccountType string `json:"accountType,omitempty" yaml:"accountType,omitempty"`

	LedgerBalance        decimal.Decimal `json:"ledgerBalance" yaml:"ledgerBalance"`
	LedgerBalanceDate    time.Time       `json:"ledgerBalanceDate" yaml:"ledgerBalanceDate"`
	AvailableBalance     decimal.Decimal `json:"availableBalance" yaml:"availableBalance"`
	AvailableBalanceDate time.Time       `json:"availableBalanceDate" yaml:"availableBalanceDate"`

	DateStart time.Time `json:"dateStart" yaml:"dateStart"`
	DateEnd   time.Time `json:"dateEnd" yaml:"dateEnd"`

	Transactions []Transaction `json:"transactions" yaml:"transactions"`
	Securities   []Security    `json:"securities" yaml:"securities"`

	Status   Status `json:"status" yaml:"status"`
	Language string `json:"language" yaml:"language"`
}

// NewStatement returns an empty statement in the default language.
func NewStatement() *Statement {
	return &Statement{
		Language:     DefaultLanguage,
		Transactions: make([]Transaction, 0),
		Securities:   make([]Security, 0),
	}
}

// AddTransaction appends a transaction in document order.
func (s *Statement) AddTransaction(t Transaction) {
	s.Transactions = append(s.Transactions, t)
}

// AddSecurity appends a security in document order.
func (s *Statement) AddSecurity(sec Security) {
	s.Securities = append(s.Securities, sec)
}

// InvestmentTransactions returns the transactions read from investment
// transaction aggregates.
func (s *Statement) InvestmentTransactions() []Transaction {
	txns := make([]Transaction, 0)
	for _, t := range s.Transactions {
		if t.IsInvestment() {
			txns = append(txns, t)
		}
	}
	return txns
}
