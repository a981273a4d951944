package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jask/networth/internal/database"
	"github.com/jask/networth/internal/database/repository"
	"github.com/jask/networth/internal/importer"
)

// SnapshotService computes net worth over stored accounts and records it.
type SnapshotService struct {
	Accounts  *repository.AccountRepo
	Snapshots *repository.SnapshotRepo
}

// Totals is a point-in-time net-worth computation.
type Totals struct {
	Assets      decimal.Decimal
	Liabilities decimal.Decimal
	NetWorth    decimal.Decimal
}

// NetWorth sums stored balances by balance-sheet side.
func (s *SnapshotService) NetWorth(ctx context.Context) (Totals, error) {
	accounts, err := s.Accounts.List(ctx)
	if err != nil {
		return Totals{}, fmt.Errorf("list accounts: %w", err)
	}
	var t Totals
	for _, a := range accounts {
		if importer.Category(a.Category).IsAsset() {
			t.Assets = t.Assets.Add(a.Balance)
		} else {
			t.Liabilities = t.Liabilities.Add(a.Balance)
		}
	}
	t.NetWorth = t.Assets.Sub(t.Liabilities)
	return t, nil
}

// Record stores the current net worth as a history row.
func (s *SnapshotService) Record(ctx context.Context) (repository.Snapshot, error) {
	t, err := s.NetWorth(ctx)
	if err != nil {
		return repository.Snapshot{}, err
	}
	snap := repository.Snapshot{
		ID:          uuid.NewString(),
		TakenAt:     database.Now(),
		Assets:      t.Assets,
		Liabilities: t.Liabilities,
		NetWorth:    t.NetWorth,
	}
	if err := s.Snapshots.Insert(ctx, snap); err != nil {
		return repository.Snapshot{}, fmt.Errorf("insert snapshot: %w", err)
	}
	return snap, nil
}

// History lists recorded snapshots oldest first.
func (s *SnapshotService) History(ctx context.Context) ([]repository.Snapshot, error) {
	return s.Snapshots.List(ctx)
}
