package service

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jask/networth/internal/database/repository"
	"github.com/jask/networth/internal/importer"
	"github.com/jask/networth/internal/match"
)

// MatchType tags a mapping decision.
type MatchType string

const (
	MatchExact MatchType = "exact"
	MatchFuzzy MatchType = "fuzzy"
	MatchNew   MatchType = "new"
)

// DefaultFuzzyThreshold is the minimum similarity for a fuzzy candidate.
const DefaultFuzzyThreshold = 0.6

// MatchOptions tunes reconciliation.
type MatchOptions struct {
	FuzzyThreshold  float64
	DefaultCurrency string
}

func (o MatchOptions) normalized() MatchOptions {
	if o.FuzzyThreshold <= 0 {
		o.FuzzyThreshold = DefaultFuzzyThreshold
	}
	if o.DefaultCurrency == "" {
		o.DefaultCurrency = "USD"
	}
	return o
}

// Candidate is an existing account scored against a parsed one.
type Candidate struct {
	Account repository.Account
	Score   float64
}

// AccountMapping is the reconciliation decision for one parsed account.
// Matched is set for exact matches and for fuzzy matches once a candidate
// is confirmed; Candidates is populated for fuzzy matches only, sorted by
// descending score. Category, AccessType and Currency are the values a
// commit will apply.
type AccountMapping struct {
	Parsed     importer.ParsedAccount
	MatchType  MatchType
	Matched    *repository.Account
	Candidates []Candidate
	SelectedID string
	Include    bool
	Category   importer.Category
	AccessType importer.AccessType
	Currency   string
}

// Reconcile cross-references parsed accounts against existing ones and
// returns one mapping per parsed account. Exact name matches (first wins,
// in existing-account order) copy the existing account's attributes; the
// rest collect fuzzy candidates at or above the threshold or fall through
// to a new-account decision seeded from the classifier's suggestion.
func Reconcile(parsed []importer.ParsedAccount, existing []repository.Account, opts MatchOptions) []AccountMapping {
	opts = opts.normalized()
	mappings := make([]AccountMapping, 0, len(parsed))
	for _, p := range parsed {
		mappings = append(mappings, mapAccount(p, existing, opts))
	}
	return mappings
}

func mapAccount(p importer.ParsedAccount, existing []repository.Account, opts MatchOptions) AccountMapping {
	for i := range existing {
		if strings.EqualFold(strings.TrimSpace(existing[i].Name), strings.TrimSpace(p.Name)) {
			a := existing[i]
			return AccountMapping{
				Parsed:     p,
				MatchType:  MatchExact,
				Matched:    &a,
				Include:    true,
				Category:   importer.Category(a.Category),
				AccessType: importer.AccessType(a.AccessType),
				Currency:   a.Currency,
			}
		}
	}

	var candidates []Candidate
	for _, a := range existing {
		if score := match.Similarity(p.Name, a.Name); score >= opts.FuzzyThreshold {
			candidates = append(candidates, Candidate{Account: a, Score: score})
		}
	}
	// stable keeps existing-account order for equal scores
	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].Score > candidates[j].Score })

	m := AccountMapping{
		Parsed:     p,
		MatchType:  MatchNew,
		Include:    true,
		Category:   p.SuggestedCategory,
		AccessType: p.SuggestedAccessType,
		Currency:   opts.DefaultCurrency,
	}
	if len(candidates) > 0 {
		m.MatchType = MatchFuzzy
		m.Candidates = candidates
	}
	return m
}

// SelectMatch confirms the fuzzy candidate with the given id, adopting its
// category, access type and currency. The empty id is the treat-as-new
// sentinel: the mapping reverts to a new-account decision seeded from the
// classifier's suggestion and the default currency. Candidates are kept so
// the caller can re-select. Returns false for an unknown id.
func (m *AccountMapping) SelectMatch(id, defaultCurrency string) bool {
	if id == "" {
		m.MatchType = MatchNew
		m.Matched = nil
		m.SelectedID = ""
		m.Category = m.Parsed.SuggestedCategory
		m.AccessType = m.Parsed.SuggestedAccessType
		m.Currency = defaultCurrency
		return true
	}
	for i := range m.Candidates {
		if m.Candidates[i].Account.ID == id {
			a := m.Candidates[i].Account
			m.MatchType = MatchFuzzy
			m.Matched = &a
			m.SelectedID = id
			m.Category = importer.Category(a.Category)
			m.AccessType = importer.AccessType(a.AccessType)
			m.Currency = a.Currency
			return true
		}
	}
	return false
}

// ImportReady reports whether the mapping's commit decision is fully
// determined: excluded, exact, new, or fuzzy with a confirmed selection.
func (m *AccountMapping) ImportReady() bool {
	if !m.Include {
		return true
	}
	switch m.MatchType {
	case MatchExact, MatchNew:
		return true
	case MatchFuzzy:
		return m.SelectedID != ""
	}
	return false
}

// Summary aggregates a mapping set: counts of included mappings by match
// type, balance sums split by balance-sheet side, and the commit gate.
type Summary struct {
	Exact       int
	Fuzzy       int
	New         int
	Assets      decimal.Decimal
	Liabilities decimal.Decimal
	Ready       bool
}

// Summarize computes the on-demand summary over a mapping set.
func Summarize(mappings []AccountMapping) Summary {
	s := Summary{Ready: true}
	for i := range mappings {
		m := &mappings[i]
		if !m.ImportReady() {
			s.Ready = false
		}
		if !m.Include {
			continue
		}
		switch m.MatchType {
		case MatchExact:
			s.Exact++
		case MatchFuzzy:
			s.Fuzzy++
		case MatchNew:
			s.New++
		}
		balance := decimal.NewFromFloat(m.Parsed.Balance)
		if m.Category.IsAsset() {
			s.Assets = s.Assets.Add(balance)
		} else {
			s.Liabilities = s.Liabilities.Add(balance)
		}
	}
	return s
}
