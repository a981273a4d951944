package importer

import (
	"fmt"
	"strings"
)

// aggregateNetWorth reduces Net Worth Report rows to one balance per
// account. When a month column is present only the latest month (rows are
// ISO-sortable month strings, so lexicographic max) is kept, found in an
// explicit first pass. Within the kept rows the last row for an account
// name wins; overwrites are counted and surfaced to the caller.
func aggregateNetWorth(rows [][]string) ([]ParsedAccount, int, error) {
	if len(rows) < 2 {
		return nil, 0, nil
	}
	header := rows[0]
	accountCol := columnIndex(header, "account")
	balanceCol := columnIndex(header, "balance")
	if balanceCol < 0 {
		balanceCol = columnContaining(header, "balance")
	}
	if accountCol < 0 || balanceCol < 0 {
		return nil, 0, fmt.Errorf("%w: net worth report needs Account and Balance columns", ErrMissingColumns)
	}
	monthCol := columnIndex(header, "month")
	typeCol := columnIndex(header, "account type")

	data := rows[1:]

	latest := ""
	if monthCol >= 0 {
		for _, row := range data {
			if m := cell(row, monthCol); m > latest {
				latest = m
			}
		}
	}

	type entry struct {
		balance    float64
		sourceType SourceType
	}
	byName := make(map[string]entry)
	var order []string
	dupes := 0
	for _, row := range data {
		if monthCol >= 0 && cell(row, monthCol) != latest {
			continue
		}
		name := cell(row, accountCol)
		if name == "" {
			continue
		}
		if _, seen := byName[name]; seen {
			dupes++
		} else {
			order = append(order, name)
		}
		byName[name] = entry{
			balance:    ParseAmount(cell(row, balanceCol)),
			sourceType: parseSourceType(cell(row, typeCol)),
		}
	}

	accounts := make([]ParsedAccount, 0, len(order))
	for _, name := range order {
		e := byName[name]
		accounts = append(accounts, newParsedAccount(name, e.balance, e.sourceType))
	}
	return accounts, dupes, nil
}

// aggregateRegister folds Register rows into running totals: balance per
// account is the sum of inflow minus outflow over all of its rows, keyed
// by exact trimmed name.
func aggregateRegister(rows [][]string) ([]ParsedAccount, error) {
	if len(rows) < 2 {
		return nil, nil
	}
	header := rows[0]
	accountCol := columnIndex(header, "account")
	inflowCol := columnIndex(header, "inflow")
	outflowCol := columnIndex(header, "outflow")
	if accountCol < 0 || inflowCol < 0 || outflowCol < 0 {
		return nil, fmt.Errorf("%w: register needs Account, Inflow and Outflow columns", ErrMissingColumns)
	}

	totals := make(map[string]float64)
	var order []string
	for _, row := range rows[1:] {
		name := cell(row, accountCol)
		if name == "" {
			continue
		}
		if _, seen := totals[name]; !seen {
			order = append(order, name)
		}
		totals[name] += ParseAmount(cell(row, inflowCol)) - ParseAmount(cell(row, outflowCol))
	}

	accounts := make([]ParsedAccount, 0, len(order))
	for _, name := range order {
		accounts = append(accounts, newParsedAccount(name, totals[name], SourceUnknown))
	}
	return accounts, nil
}

func newParsedAccount(name string, balance float64, src SourceType) ParsedAccount {
	category, access := Classify(name, src)
	return ParsedAccount{
		Name:                name,
		Balance:             balance,
		SourceType:          src,
		SuggestedCategory:   category,
		SuggestedAccessType: access,
	}
}

func parseSourceType(s string) SourceType {
	switch strings.ToLower(s) {
	case "asset":
		return SourceAsset
	case "liability":
		return SourceLiability
	}
	return SourceUnknown
}
