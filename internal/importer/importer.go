// Package importer parses YNAB-style CSV exports into account balances.
// Two report shapes are recognised: the Net Worth Report (Month, Account,
// Account Type, Balance) and the Register (Account, Inflow, Outflow).
package importer

import (
	"errors"
	"time"
)

// Format identifies the detected report shape.
type Format string

const (
	FormatRegister Format = "register"
	FormatNetWorth Format = "networth"
	FormatNone     Format = ""
)

// SourceType is the asset/liability tag carried by the source document,
// present only when the format encodes it (Net Worth Report).
type SourceType string

const (
	SourceUnknown   SourceType = ""
	SourceAsset     SourceType = "asset"
	SourceLiability SourceType = "liability"
)

// Category is the balance-sheet classification of an account.
type Category string

const (
	CategoryCurrentAsset        Category = "current_asset"
	CategoryNonCurrentAsset     Category = "non_current_asset"
	CategoryCurrentLiability    Category = "current_liability"
	CategoryNonCurrentLiability Category = "non_current_liability"
)

// IsAsset reports whether the category sits on the asset side.
func (c Category) IsAsset() bool {
	return c == CategoryCurrentAsset || c == CategoryNonCurrentAsset
}

// AccessType is the liquidity tier of an account.
type AccessType string

const (
	AccessLiquid     AccessType = "liquid"
	AccessIlliquid   AccessType = "illiquid"
	AccessRetirement AccessType = "retirement"
)

// ParsedAccount is one account extracted from the document. Balance is in
// the source document's currency, un-converted.
type ParsedAccount struct {
	Name                string
	Balance             float64
	SourceType          SourceType
	SuggestedCategory   Category
	SuggestedAccessType AccessType
}

// ParseResult is the output of Parse. Accounts are unique by name, in
// first-appearance order. CollapsedDuplicates counts rows that were
// overwritten by a later row for the same account name.
type ParseResult struct {
	Format              Format
	Accounts            []ParsedAccount
	CollapsedDuplicates int
	ParsedAt            time.Time
}

// Terminal parse failures. Everything recoverable (bad numbers, stray
// quotes, blank lines) is normalised silently instead.
var (
	ErrEmptyDocument      = errors.New("document contains no rows")
	ErrUnrecognizedFormat = errors.New("unrecognized CSV format: expected a Net Worth Report or Register export")
	ErrMissingColumns     = errors.New("missing required columns")
	ErrNoAccountsFound    = errors.New("no accounts found in document")
)

// Parse runs the full pipeline over raw CSV text: tokenize, detect the
// format, aggregate rows into per-account balances and classify each
// account. It holds no state; concurrent calls are safe.
func Parse(text string) (ParseResult, error) {
	rows := Tokenize(text)
	if len(rows) == 0 {
		return ParseResult{}, ErrEmptyDocument
	}

	format := Detect(rows[0])

	var (
		accounts []ParsedAccount
		dupes    int
		err      error
	)
	switch format {
	case FormatNetWorth:
		accounts, dupes, err = aggregateNetWorth(rows)
	case FormatRegister:
		accounts, err = aggregateRegister(rows)
	default:
		return ParseResult{}, ErrUnrecognizedFormat
	}
	if err != nil {
		return ParseResult{}, err
	}
	if len(accounts) == 0 {
		return ParseResult{}, ErrNoAccountsFound
	}

	return ParseResult{
		Format:              format,
		Accounts:            accounts,
		CollapsedDuplicates: dupes,
		ParsedAt:            time.Now().UTC(),
	}, nil
}
