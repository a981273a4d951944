package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jask/networth/internal/database/repository"
	"github.com/jask/networth/internal/importer"
)

func existingAccounts() []repository.Account {
	return []repository.Account{
		{
			ID:         "a1",
			Name:       "Chase Checking",
			Category:   string(importer.CategoryCurrentAsset),
			AccessType: string(importer.AccessLiquid),
			Currency:   "USD",
			Balance:    decimal.NewFromInt(1200),
		},
		{
			ID:         "a2",
			Name:       "Amex Card",
			Category:   string(importer.CategoryCurrentLiability),
			AccessType: string(importer.AccessLiquid),
			Currency:   "USD",
			Balance:    decimal.NewFromInt(300),
		},
	}
}

func parsed(name string, balance float64) importer.ParsedAccount {
	category, access := importer.Classify(name, importer.SourceUnknown)
	return importer.ParsedAccount{
		Name:                name,
		Balance:             balance,
		SuggestedCategory:   category,
		SuggestedAccessType: access,
	}
}

func TestReconcileExactMatchIsCaseAndSpaceInsensitive(t *testing.T) {
	t.Parallel()

	mappings := Reconcile([]importer.ParsedAccount{parsed("  chase checking ", 1300)}, existingAccounts(), MatchOptions{})
	require.Len(t, mappings, 1)

	m := mappings[0]
	require.Equal(t, MatchExact, m.MatchType)
	require.NotNil(t, m.Matched)
	require.Equal(t, "a1", m.Matched.ID)
	require.Empty(t, m.Candidates)
	require.True(t, m.Include)
	// attributes copied from the matched account, overriding suggestions
	require.Equal(t, importer.CategoryCurrentAsset, m.Category)
	require.Equal(t, "USD", m.Currency)
	require.True(t, m.ImportReady())
}

func TestReconcileFuzzyMatchRequiresConfirmation(t *testing.T) {
	t.Parallel()

	opts := MatchOptions{DefaultCurrency: "EUR"}
	mappings := Reconcile([]importer.ParsedAccount{parsed("Chase Checkng", 50)}, existingAccounts(), opts)
	require.Len(t, mappings, 1)

	m := &mappings[0]
	require.Equal(t, MatchFuzzy, m.MatchType)
	require.Nil(t, m.Matched)
	require.NotEmpty(t, m.Candidates)
	require.Equal(t, "a1", m.Candidates[0].Account.ID)
	require.GreaterOrEqual(t, m.Candidates[0].Score, DefaultFuzzyThreshold)
	// unconfirmed fuzzy keeps the classifier suggestion and default currency
	require.Equal(t, importer.CategoryCurrentAsset, m.Category)
	require.Equal(t, "EUR", m.Currency)
	require.False(t, m.ImportReady())

	// candidates sorted descending
	for i := 1; i < len(m.Candidates); i++ {
		require.GreaterOrEqual(t, m.Candidates[i-1].Score, m.Candidates[i].Score)
	}

	require.False(t, m.SelectMatch("nope", "EUR"))
	require.True(t, m.SelectMatch("a1", "EUR"))
	require.Equal(t, MatchFuzzy, m.MatchType)
	require.NotNil(t, m.Matched)
	require.Equal(t, "a1", m.SelectedID)
	require.Equal(t, "USD", m.Currency) // adopted from the selected account
	require.True(t, m.ImportReady())

	// sentinel reverts to a new-account decision
	require.True(t, m.SelectMatch("", "EUR"))
	require.Equal(t, MatchNew, m.MatchType)
	require.Nil(t, m.Matched)
	require.Empty(t, m.SelectedID)
	require.Equal(t, "EUR", m.Currency)
	require.NotEmpty(t, m.Candidates) // kept for re-selection
	require.True(t, m.ImportReady())
}

func TestReconcileNewAccount(t *testing.T) {
	t.Parallel()

	mappings := Reconcile([]importer.ParsedAccount{parsed("Landlord Deposit", 900)}, existingAccounts(), MatchOptions{})
	require.Len(t, mappings, 1)

	m := mappings[0]
	require.Equal(t, MatchNew, m.MatchType)
	require.Nil(t, m.Matched)
	require.Empty(t, m.Candidates)
	require.Equal(t, "USD", m.Currency) // normalized default
	require.True(t, m.ImportReady())
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	accounts := []importer.ParsedAccount{
		parsed("chase checking", 1300), // exact
		parsed("Amex Crd", -150),       // fuzzy (typo)
		parsed("Beach House", 250000),  // new, illiquid asset
	}
	mappings := Reconcile(accounts, existingAccounts(), MatchOptions{})
	require.Len(t, mappings, 3)
	require.Equal(t, MatchExact, mappings[0].MatchType)
	require.Equal(t, MatchFuzzy, mappings[1].MatchType)
	require.Equal(t, MatchNew, mappings[2].MatchType)

	s := Summarize(mappings)
	require.False(t, s.Ready, "unresolved fuzzy mapping must block commit")
	require.Equal(t, 1, s.Exact)
	require.Equal(t, 1, s.Fuzzy)
	require.Equal(t, 1, s.New)
	require.True(t, s.Assets.Equal(decimal.NewFromInt(251300)), "assets: %s", s.Assets)
	require.True(t, s.Liabilities.Equal(decimal.NewFromInt(-150)), "liabilities: %s", s.Liabilities)

	// excluding the fuzzy mapping unblocks the commit
	mappings[1].Include = false
	s = Summarize(mappings)
	require.True(t, s.Ready)
	require.Equal(t, 0, s.Fuzzy)

	// so does resolving it
	mappings[1].Include = true
	require.True(t, mappings[1].SelectMatch("a2", "USD"))
	s = Summarize(mappings)
	require.True(t, s.Ready)
	require.Equal(t, 1, s.Fuzzy)
	require.True(t, s.Liabilities.Equal(decimal.NewFromInt(-150)))
}
