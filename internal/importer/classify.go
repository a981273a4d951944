package importer

import "strings"

// Keyword cues for classification, checked in order. First match wins.
var (
	liabilityCues  = []string{"credit", "visa", "mastercard", "amex", "card", "loan", "mortgage", "debt", "owe"}
	longTermCues   = []string{"mortgage", "home loan", "car loan", "student loan", "auto loan"}
	retirementCues = []string{"401k", "401(k)", "ira", "roth", "pension", "retirement", "super", "sss", "pag-ibig", "pagibig"}
	investmentCues = []string{"invest", "brokerage", "stock", "etf", "fund", "portfolio", "trading"}
	realEstateCues = []string{"property", "real estate", "house", "home", "condo", "apartment", "land"}
	liquidCues     = []string{"check", "saving", "cash", "wallet", "emergency", "petty", "current account"}
)

// Classify infers a balance-sheet category and liquidity tier from an
// account name and the source document's optional asset/liability tag.
// Total function: an unmatched name falls back to a liquid current asset.
func Classify(name string, src SourceType) (Category, AccessType) {
	n := strings.ToLower(name)

	if src == SourceLiability || matchesAny(n, liabilityCues) {
		if matchesAny(n, longTermCues) {
			return CategoryNonCurrentLiability, AccessIlliquid
		}
		return CategoryCurrentLiability, AccessLiquid
	}
	if matchesAny(n, retirementCues) {
		return CategoryNonCurrentAsset, AccessRetirement
	}
	if matchesAny(n, investmentCues) {
		return CategoryNonCurrentAsset, AccessLiquid
	}
	if matchesAny(n, realEstateCues) {
		return CategoryNonCurrentAsset, AccessIlliquid
	}
	if matchesAny(n, liquidCues) {
		return CategoryCurrentAsset, AccessLiquid
	}
	return CategoryCurrentAsset, AccessLiquid
}

func matchesAny(name string, cues []string) bool {
	for _, cue := range cues {
		if strings.Contains(name, cue) {
			return true
		}
	}
	return false
}
