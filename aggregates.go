package ofxstream

import "sync"

var aggregatesMap map[string]struct{}
var initAggregatesMap sync.Once

// GetAggregates returns the singleton set of OFX aggregate tags, the elements
// that hold nested elements rather than character data.
// The set is not exhaustive: the cleaner also treats an element followed
// directly by a start tag as an aggregate. PAYEE is left out since banks
// send it both as text and as an aggregate.
func GetAggregates() map[string]struct{} {
	initAggregatesMap.Do(func() {
		var aggregates = []string{
			tagOFX,
			tagSignOnMsgSet, tagSONRS, tagStatus, tagFI,
			tagBankMsgSet, tagSTMTTRNRS, tagSTMTRS, tagBankAcctFrom,
			tagBankTranList, tagSTMTTRN, tagLedgerBal, tagAvailBal, tagBalList, tagBal,
			tagBankAcctTo, tagCurrency, tagOrigCurrency,
			tagCreditCardMsgSet, tagCCSTMTTRNRS, tagCCSTMTRS, tagCCAcctFrom, tagCCAcctTo,
			tagInvMsgSet, tagINVSTMTTRNRS, tagINVSTMTRS, tagInvAcctFrom,
			tagInvTranList, tagInvPosList, tagInvBal, tagInvOOList, tagInv401K, tagInv401KBal,
			tagInvBankTran, tagBuyMF, tagBuyOther, tagBuyStock, tagIncome, tagReinvest,
			tagInvBuy, tagInvTran, tagSecID,
			tagSellMF, tagSellOther, tagSellStock, tagInvSell,
			tagPosMF, tagPosStock, tagInvPos,
			tagSecListMsgSet, tagSecList, tagSecInfo,
			tagMFInfo, tagStockInfo, tagOptInfo, tagDebtInfo, tagOtherInfo,
			tagMFAssetClass, tagFIMFAssetCls, tagPortion,
		}
		aggregatesMap = make(map[string]struct{}, len(aggregates))
		for _, a := range aggregates {
			aggregatesMap[a] = struct{}{}
		}
	})
	return aggregatesMap
}

// IsAggregate returns true if the given tag is a known aggregate tag.
func IsAggregate(tag string) bool {
	_, found := GetAggregates()[tag]
	return found
}
