package ofxstream

import (
	"encoding/xml"
	"strconv"
	"strings"
	"time"

	"github.com/golang/glog"
	"github.com/shopspring/decimal"
)

// parseStatus reads a STATUS element. A malformed CODE is logged and leaves
// the previous code in place.
func parseStatus(c *cursor, start xml.StartElement, status *Status) error {
	return c.walk(start, func(se xml.StartElement) error {
		switch se.Name.Local {
		case tagCode:
			s, err := c.text(se)
			if err != nil {
				return err
			}
			code, err := strconv.Atoi(strings.TrimSpace(s))
			if err != nil {
				glog.Warningf("Malformed status code %q: %v", s, err)
				return nil
			}
			status.Code = code
			return nil
		case tagSeverity:
			return c.verbatimTo(se, &status.Severity)
		case tagMessage:
			return c.verbatimTo(se, &status.Message)
		default:
			return c.unknown(tagStatus, se)
		}
	})
}

// parseAccountInfo reads a BANKACCTFROM, CCACCTFROM or INVACCTFROM element.
func parseAccountInfo(c *cursor, start xml.StartElement, statement *Statement) error {
	return c.walk(start, func(se xml.StartElement) error {
		switch se.Name.Local {
		case tagBankID, tagBrokerID: // a broker id is normally a URL
			return c.textTo(se, &statement.BankID)
		case tagAcctID:
			return c.textTo(se, &statement.AccountID)
		case tagAcctType:
			return c.textTo(se, &statement.AccountType)
		case tagBranchID:
			return c.textTo(se, &statement.BranchID)
		case tagAcctKey:
			return c.skip(se)
		default:
			return c.unknown(start.Name.Local, se)
		}
	})
}

// parseBalance reads a LEDGERBAL or AVAILBAL element into the given fields.
func parseBalance(c *cursor, start xml.StartElement, amount *decimal.Decimal, asOf *time.Time) error {
	return c.walk(start, func(se xml.StartElement) error {
		switch se.Name.Local {
		case tagBalAmt:
			return c.amountTo(se, amount)
		case tagDTAsOf:
			return c.dateTo(se, asOf)
		default:
			return c.unknown(start.Name.Local, se)
		}
	})
}

// parseBankTransactionList reads a BANKTRANLIST element.
func parseBankTransactionList(c *cursor, start xml.StartElement, statement *Statement) error {
	return c.walk(start, func(se xml.StartElement) error {
		switch se.Name.Local {
		case tagDTStart:
			return c.dateTo(se, &statement.DateStart)
		case tagDTEnd:
			return c.dateTo(se, &statement.DateEnd)
		case tagSTMTTRN:
			return parseBankTransaction(c, se, statement)
		default:
			return c.unknown(tagBankTranList, se)
		}
	})
}

// parseInvestmentTransactionList reads an INVTRANLIST element.
func parseInvestmentTransactionList(c *cursor, start xml.StartElement, statement *Statement) error {
	return c.walk(start, func(se xml.StartElement) error {
		switch se.Name.Local {
		case tagDTStart:
			return c.dateTo(se, &statement.DateStart)
		case tagDTEnd:
			return c.dateTo(se, &statement.DateEnd)
		case tagBuyStock, tagBuyMF, tagBuyOther, tagIncome, tagReinvest:
			return parseInvestmentTransaction(c, se, statement)
		case tagInvBankTran:
			return parseBankTransaction(c, se, statement)
		default:
			return c.unknown(tagInvTranList, se)
		}
	})
}

// parseBankTransaction reads a STMTTRN element, or an INVBANKTRAN element
// wrapping one, and appends the transaction to the statement.
func parseBankTransaction(c *cursor, start xml.StartElement, statement *Statement) error {
	txn := Transaction{Origin: BankOrigin}
	err := c.walk(start, func(se xml.StartElement) error {
		switch se.Name.Local {
		case tagTrnType:
			var s string
			if err := c.textTo(se, &s); err != nil {
				return err
			}
			txn.Type = TransactionType(s)
			return nil
		case tagDTPosted:
			return c.dateTo(se, &txn.DatePosted)
		case tagDTUser:
			return c.dateTo(se, &txn.DateUser)
		case tagTrnAmt:
			return c.amountTo(se, &txn.Amount)
		case tagSubAcctFund: // transfer into or out of an investment account
			return c.textTo(se, &txn.SubAccount)
		case tagSTMTTRN: // wrapped by INVBANKTRAN
			return nil
		case tagDTAvail, tagBankAcctTo, tagCCAcctTo:
			return c.skip(se)
		default:
			return parseCommonField(c, se, &txn, start.Name.Local)
		}
	})
	if err != nil {
		return err
	}
	statement.AddTransaction(txn)
	return nil
}

// parseInvestmentTransaction reads a BUYMF, BUYOTHER, BUYSTOCK, INCOME or
// REINVEST element and appends the transaction to the statement. The action
// is derived from the element name; only purchases are classified.
func parseInvestmentTransaction(c *cursor, start xml.StartElement, statement *Statement) error {
	txn := Transaction{Origin: InvestmentOrigin}
	switch start.Name.Local {
	case tagBuyMF, tagBuyOther, tagBuyStock:
		txn.Action = BuyShare
	}
	err := c.walk(start, func(se xml.StartElement) error {
		switch se.Name.Local {
		case tagDTSettle:
			return c.dateTo(se, &txn.DateSettle)
		case tagDTTrade:
			return c.dateTo(se, &txn.DateTrade)
		case tagTotal:
			return c.amountTo(se, &txn.Total)
		case tagUniqueID: // the security of the transaction
			return c.textTo(se, &txn.SecurityID)
		case tagUnits:
			return c.amountTo(se, &txn.Units)
		case tagUnitPrice:
			return c.amountTo(se, &txn.UnitPrice)
		case tagCommission:
			return c.amountTo(se, &txn.Commission)
		case tagSubAcctSec:
			return c.textTo(se, &txn.SubAccountSec)
		case tagSubAcctFrom, tagSubAcctTo, tagSubAcctFund:
			return c.textTo(se, &txn.SubAccount)
		case tagInvBuy, tagInvTran, tagSecID:
			return nil
		case tagBuyType, tagIncomeType, tagUniqueIDType, tagFees, tagTaxes, tagLoad,
			tagMarkup, tagWithholding, tagTaxExempt, tagInv401KSrc:
			return c.skip(se)
		default:
			return parseCommonField(c, se, &txn, start.Name.Local)
		}
	})
	if err != nil {
		return err
	}
	statement.AddTransaction(txn)
	return nil
}

// parseCommonField reads the fields bank and investment transactions share.
func parseCommonField(c *cursor, se xml.StartElement, txn *Transaction, parent string) error {
	switch se.Name.Local {
	case tagFITID:
		return c.textTo(se, &txn.ID)
	case tagCheckNum:
		return c.textTo(se, &txn.CheckNumber)
	case tagName, tagPayee: // either PAYEE or NAME will be used
		s, err := c.textPreferring(se, tagName)
		if err != nil {
			return err
		}
		txn.Payee = CollapseSpace(s)
		return nil
	case tagMemo:
		return c.collapsedTo(se, &txn.Memo)
	case tagCategory, tagSIC: // some banks send CATEGORY instead of SIC
		return c.textTo(se, &txn.SIC)
	case tagRefNum:
		return c.textTo(se, &txn.RefNum)
	case tagPayeeID:
		return c.collapsedTo(se, &txn.PayeeID)
	case tagCurrency, tagOrigCurrency:
		s, err := c.textPreferring(se, tagCurSym)
		if err != nil {
			return err
		}
		txn.Currency = strings.TrimSpace(s)
		return nil
	default:
		return c.unknown(parent, se)
	}
}

// parseSecurity reads a SECINFO element and appends the security to the
// statement. CURRENCY and ORIGCURRENCY are absorbed so CURSYM and CURRATE
// are read as direct fields.
func parseSecurity(c *cursor, start xml.StartElement, statement *Statement) error {
	var security Security
	err := c.walk(start, func(se xml.StartElement) error {
		switch se.Name.Local {
		case tagUniqueIDType:
			return c.textTo(se, &security.IDType)
		case tagUniqueID:
			return c.textTo(se, &security.ID)
		case tagSecName:
			return c.textTo(se, &security.Name)
		case tagTicker:
			return c.textTo(se, &security.Ticker)
		case tagUnitPrice:
			return c.amountTo(se, &security.UnitPrice)
		case tagDTAsOf:
			return c.dateTo(se, &security.DateAsOf)
		case tagCurSym:
			return c.textTo(se, &security.Currency)
		case tagCurRate:
			return c.amountTo(se, &security.CurrencyRate)
		case tagSecID, tagCurrency, tagOrigCurrency:
			return nil
		case tagFIID, tagRating, tagMemo:
			return c.skip(se)
		default:
			return c.unknown(tagSecInfo, se)
		}
	})
	if err != nil {
		return err
	}
	statement.AddSecurity(security)
	return nil
}
