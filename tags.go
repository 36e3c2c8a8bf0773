package ofxstream

// OFX element names read by the parser.
const (
	tagOFX = "OFX"

	// Message sets.
	tagSignOnMsgSet     = "SIGNONMSGSRSV1"
	tagBankMsgSet       = "BANKMSGSRSV1"
	tagCreditCardMsgSet = "CREDITCARDMSGSRSV1"
	tagInvMsgSet        = "INVSTMTMSGSRSV1"
	tagSecListMsgSet    = "SECLISTMSGSRSV1"

	// Sign-on.
	tagSONRS      = "SONRS"
	tagStatus     = "STATUS"
	tagCode       = "CODE"
	tagSeverity   = "SEVERITY"
	tagMessage    = "MESSAGE"
	tagDTServer   = "DTSERVER"
	tagLanguage   = "LANGUAGE"
	tagDTProfUp   = "DTPROFUP"
	tagDTAcctUp   = "DTACCTUP"
	tagFI         = "FI"
	tagIntuBID    = "INTU.BID"
	tagIntuUserID = "INTU.USERID"
	tagSessCookie = "SESSCOOKIE"
	tagAccessKey  = "ACCESSKEY"

	// Statement wrappers.
	tagSTMTTRNRS    = "STMTTRNRS"
	tagSTMTRS       = "STMTRS"
	tagCCSTMTTRNRS  = "CCSTMTTRNRS"
	tagCCSTMTRS     = "CCSTMTRS"
	tagINVSTMTTRNRS = "INVSTMTTRNRS"
	tagINVSTMTRS    = "INVSTMTRS"
	tagTRNUID       = "TRNUID"
	tagCltCookie    = "CLTCOOKIE"
	tagCurDef       = "CURDEF"
	tagMktgInfo     = "MKTGINFO"
	tagBalList      = "BALLIST"
	tagBal          = "BAL"

	// Accounts.
	tagBankAcctFrom = "BANKACCTFROM"
	tagCCAcctFrom   = "CCACCTFROM"
	tagInvAcctFrom  = "INVACCTFROM"
	tagBankAcctTo   = "BANKACCTTO"
	tagCCAcctTo     = "CCACCTTO"
	tagBankID       = "BANKID"
	tagBrokerID     = "BROKERID"
	tagBranchID     = "BRANCHID"
	tagAcctID       = "ACCTID"
	tagAcctType     = "ACCTTYPE"
	tagAcctKey      = "ACCTKEY"

	// Balances.
	tagLedgerBal = "LEDGERBAL"
	tagAvailBal  = "AVAILBAL"
	tagBalAmt    = "BALAMT"
	tagDTAsOf    = "DTASOF"

	// Bank transactions.
	tagBankTranList = "BANKTRANLIST"
	tagDTStart      = "DTSTART"
	tagDTEnd        = "DTEND"
	tagSTMTTRN      = "STMTTRN"
	tagTrnType      = "TRNTYPE"
	tagDTPosted     = "DTPOSTED"
	tagDTUser       = "DTUSER"
	tagDTAvail      = "DTAVAIL"
	tagTrnAmt       = "TRNAMT"
	tagFITID        = "FITID"
	tagCheckNum     = "CHECKNUM"
	tagName         = "NAME"
	tagPayee        = "PAYEE"
	tagMemo         = "MEMO"
	tagCategory     = "CATEGORY"
	tagSIC          = "SIC"
	tagRefNum       = "REFNUM"
	tagPayeeID      = "PAYEEID"
	tagCurrency     = "CURRENCY"
	tagOrigCurrency = "ORIGCURRENCY"
	tagCurSym       = "CURSYM"
	tagCurRate      = "CURRATE"
	tagSubAcctFund  = "SUBACCTFUND"

	// Investment statements.
	tagInvTranList = "INVTRANLIST"
	tagInvPosList  = "INVPOSLIST"
	tagInvBal      = "INVBAL"
	tagInvOOList   = "INVOOLIST"
	tagInv401K     = "INV401K"
	tagInv401KBal  = "INV401KBAL"
	tagInvBankTran = "INVBANKTRAN"
	tagBuyMF       = "BUYMF"
	tagBuyOther    = "BUYOTHER"
	tagBuyStock    = "BUYSTOCK"
	tagIncome      = "INCOME"
	tagReinvest    = "REINVEST"
	tagInvBuy      = "INVBUY"
	tagInvTran     = "INVTRAN"
	tagDTSettle    = "DTSETTLE"
	tagDTTrade     = "DTTRADE"
	tagTotal       = "TOTAL"
	tagUnits       = "UNITS"
	tagUnitPrice   = "UNITPRICE"
	tagCommission  = "COMMISSION"
	tagFees        = "FEES"
	tagTaxes       = "TAXES"
	tagLoad        = "LOAD"
	tagMarkup      = "MARKUP"
	tagWithholding = "WITHHOLDING"
	tagTaxExempt   = "TAXEXEMPT"
	tagBuyType     = "BUYTYPE"
	tagIncomeType  = "INCOMETYPE"
	tagSubAcctSec  = "SUBACCTSEC"
	tagSubAcctFrom = "SUBACCTFROM"
	tagSubAcctTo   = "SUBACCTTO"
	tagInv401KSrc  = "INV401KSOURCE"
	tagInvSell     = "INVSELL"
	tagSellMF      = "SELLMF"
	tagSellOther   = "SELLOTHER"
	tagSellStock   = "SELLSTOCK"
	tagInvPos      = "INVPOS"
	tagPosMF       = "POSMF"
	tagPosStock    = "POSSTOCK"

	// Securities.
	tagSecList      = "SECLIST"
	tagSecListTRNRS = "SECLISTTRNRS"
	tagSecInfo      = "SECINFO"
	tagMFInfo       = "MFINFO"
	tagStockInfo    = "STOCKINFO"
	tagOptInfo      = "OPTINFO"
	tagDebtInfo     = "DEBTINFO"
	tagOtherInfo    = "OTHERINFO"
	tagSecID        = "SECID"
	tagUniqueID     = "UNIQUEID"
	tagUniqueIDType = "UNIQUEIDTYPE"
	tagSecName      = "SECNAME"
	tagTicker       = "TICKER"
	tagFIID         = "FIID"
	tagRating       = "RATING"
	tagAssetClass   = "ASSETCLASS"
	tagFIAssetClass = "FIASSETCLASS"
	tagMFAssetClass = "MFASSETCLASS"
	tagFIMFAssetCls = "FIMFASSETCLASS"
	tagPortion      = "PORTION"
	tagOptType      = "OPTTYPE"
	tagStrikePrice  = "STRIKEPRICE"
	tagDTExpire     = "DTEXPIRE"
	tagShPerCtrct   = "SHPERCTRCT"
	tagYield        = "YIELD"
	tagDTYieldAsOf  = "DTYIELDASOF"
	tagMFType       = "MFTYPE"
	tagStockType    = "STOCKTYPE"
	tagParValue     = "PARVALUE"
	tagDebtType     = "DEBTTYPE"
	tagTypeDesc     = "TYPEDESC"
)
