package ofxstream

import (
	"encoding/xml"
)

// Message set readers. Each reads one message set aggregate up to its end
// tag. Transaction and statement wrappers are absorbed without action, so
// their children are read by the message set loop itself.

// parseSignOnMessageSet reads a SIGNONMSGSRSV1 element.
func parseSignOnMessageSet(c *cursor, start xml.StartElement, so *signOn) error {
	return c.walk(start, func(se xml.StartElement) error {
		switch se.Name.Local {
		case tagSONRS:
			return nil
		case tagStatus:
			return parseStatus(c, se, &so.status)
		case tagLanguage:
			var language string
			if err := c.textTo(se, &language); err != nil {
				return err
			}
			if language != "" {
				so.language = language
			}
			return nil
		case tagDTServer, tagDTProfUp, tagDTAcctUp, tagFI, tagIntuBID, tagIntuUserID,
			tagSessCookie, tagAccessKey:
			return c.skip(se)
		default:
			return c.unknown(tagSignOnMsgSet, se)
		}
	})
}

// parseBankMessageSet reads a BANKMSGSRSV1 element.
func parseBankMessageSet(c *cursor, start xml.StartElement, statement *Statement) error {
	return parseBankingMessageSet(c, start, statement, tagBankAcctFrom)
}

// parseCreditCardMessageSet reads a CREDITCARDMSGSRSV1 element. It has the
// shape of the bank message set with a CCACCTFROM account.
func parseCreditCardMessageSet(c *cursor, start xml.StartElement, statement *Statement) error {
	return parseBankingMessageSet(c, start, statement, tagCCAcctFrom)
}

func parseBankingMessageSet(c *cursor, start xml.StartElement, statement *Statement, accountTag string) error {
	return c.walk(start, func(se xml.StartElement) error {
		switch se.Name.Local {
		case tagStatus:
			return parseStatus(c, se, &statement.Status)
		case tagCurDef:
			return c.textTo(se, &statement.Currency)
		case tagLedgerBal:
			return parseBalance(c, se, &statement.LedgerBalance, &statement.LedgerBalanceDate)
		case tagAvailBal:
			return parseBalance(c, se, &statement.AvailableBalance, &statement.AvailableBalanceDate)
		case accountTag:
			return parseAccountInfo(c, se, statement)
		case tagBankTranList:
			return parseBankTransactionList(c, se, statement)
		case tagSTMTTRNRS, tagSTMTRS, tagCCSTMTTRNRS, tagCCSTMTRS, tagTRNUID, tagCltCookie:
			return nil
		case tagMktgInfo, tagBalList:
			return c.skip(se)
		default:
			return c.unknown(start.Name.Local, se)
		}
	})
}

// parseInvestmentMessageSet reads an INVSTMTMSGSRSV1 element.
func parseInvestmentMessageSet(c *cursor, start xml.StartElement, statement *Statement) error {
	return c.walk(start, func(se xml.StartElement) error {
		switch se.Name.Local {
		case tagStatus:
			return parseStatus(c, se, &statement.Status)
		case tagCurDef:
			return c.textTo(se, &statement.Currency)
		case tagInvAcctFrom:
			return parseAccountInfo(c, se, statement)
		case tagInvTranList:
			return parseInvestmentTransactionList(c, se, statement)
		case tagINVSTMTTRNRS, tagINVSTMTRS, tagTRNUID, tagCltCookie:
			return nil
		case tagDTAsOf: // statement date
			return c.skip(se)
		// Positions and balances are not modeled yet.
		case tagInvPosList, tagInvBal, tagInvOOList, tagInv401K, tagInv401KBal, tagMktgInfo:
			return c.skip(se)
		default:
			return c.unknown(tagInvMsgSet, se)
		}
	})
}

// parseSecuritiesMessageSet reads a SECLISTMSGSRSV1 element.
func parseSecuritiesMessageSet(c *cursor, start xml.StartElement, statement *Statement) error {
	return c.walk(start, func(se xml.StartElement) error {
		switch se.Name.Local {
		case tagSecList:
			return parseSecuritiesList(c, se, statement)
		case tagSecListTRNRS:
			return c.skip(se)
		default:
			return c.unknown(tagSecListMsgSet, se)
		}
	})
}

// parseSecuritiesList reads a SECLIST element. The per type wrappers are
// absorbed so their SECINFO is found, their other fields are not read.
func parseSecuritiesList(c *cursor, start xml.StartElement, statement *Statement) error {
	return c.walk(start, func(se xml.StartElement) error {
		switch se.Name.Local {
		case tagSecInfo:
			return parseSecurity(c, se, statement)
		case tagMFInfo, tagStockInfo, tagOptInfo, tagDebtInfo, tagOtherInfo:
			return nil
		case tagSecID: // underlying security of an option
			return c.skip(se)
		case tagAssetClass, tagFIAssetClass, tagMFAssetClass, tagFIMFAssetCls,
			tagOptType, tagStrikePrice, tagDTExpire, tagShPerCtrct,
			tagYield, tagDTYieldAsOf, tagMFType, tagStockType,
			tagParValue, tagDebtType, tagTypeDesc, tagUniqueID, tagUniqueIDType:
			return c.skip(se)
		default:
			return c.unknown(tagSecList, se)
		}
	})
}
