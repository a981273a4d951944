package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jask/networth/internal/database/repository"
	"github.com/jask/networth/internal/importer"
)

// ImportService runs the CSV import flow: parse a document, reconcile it
// against stored accounts, and commit a confirmed mapping set.
type ImportService struct {
	Accounts *repository.AccountRepo
	Options  MatchOptions
}

// ImportPreview is a parsed document plus its reconciliation proposals,
// awaiting user confirmation.
type ImportPreview struct {
	Result   importer.ParseResult
	Mappings []AccountMapping
}

// ErrNotReady blocks committing a mapping set with unresolved fuzzy matches.
var ErrNotReady = errors.New("unresolved fuzzy matches remain")

// Preview parses the document and reconciles it against existing accounts.
func (s *ImportService) Preview(ctx context.Context, text string) (ImportPreview, error) {
	result, err := importer.Parse(text)
	if err != nil {
		return ImportPreview{}, err
	}
	existing, err := s.Accounts.List(ctx)
	if err != nil {
		return ImportPreview{}, fmt.Errorf("list accounts: %w", err)
	}
	return ImportPreview{
		Result:   result,
		Mappings: Reconcile(result.Accounts, existing, s.Options),
	}, nil
}

// CommitResult counts applied mappings.
type CommitResult struct {
	Created int
	Updated int
	Skipped int
}

// Commit applies a confirmed mapping set: matched mappings update the
// matched account, new mappings create one under a name-derived id so
// re-imports land on the same row, excluded mappings are skipped.
func (s *ImportService) Commit(ctx context.Context, mappings []AccountMapping) (CommitResult, error) {
	if !Summarize(mappings).Ready {
		return CommitResult{}, ErrNotReady
	}
	var res CommitResult
	for i := range mappings {
		m := &mappings[i]
		if !m.Include {
			res.Skipped++
			continue
		}
		if m.Matched != nil {
			a := *m.Matched
			a.Category = string(m.Category)
			a.AccessType = string(m.AccessType)
			a.Currency = m.Currency
			a.Balance = decimal.NewFromFloat(m.Parsed.Balance)
			if err := s.Accounts.Upsert(ctx, a); err != nil {
				return res, fmt.Errorf("update account %s: %w", a.Name, err)
			}
			res.Updated++
			continue
		}
		a := repository.Account{
			ID:         deterministicAccountID(m.Parsed.Name),
			Name:       m.Parsed.Name,
			Category:   string(m.Category),
			AccessType: string(m.AccessType),
			Currency:   m.Currency,
			Balance:    decimal.NewFromFloat(m.Parsed.Balance),
		}
		if err := s.Accounts.Upsert(ctx, a); err != nil {
			return res, fmt.Errorf("create account %s: %w", a.Name, err)
		}
		res.Created++
	}
	return res, nil
}

func deterministicAccountID(name string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("account:"+key)).String()
}
