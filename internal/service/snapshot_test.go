package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jask/networth/internal/database/repository"
)

func TestSnapshotRecordAndHistory(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	acctRepo, snapRepo := newTestDB(t)
	svc := &SnapshotService{Accounts: acctRepo, Snapshots: snapRepo}

	seed := []repository.Account{
		{ID: "a1", Name: "Checking", Category: "current_asset", AccessType: "liquid", Currency: "USD", Balance: decimal.NewFromInt(1500)},
		{ID: "a2", Name: "Beach House", Category: "non_current_asset", AccessType: "illiquid", Currency: "USD", Balance: decimal.NewFromInt(250000)},
		{ID: "a3", Name: "Visa Card", Category: "current_liability", AccessType: "liquid", Currency: "USD", Balance: decimal.NewFromInt(300)},
	}
	for _, a := range seed {
		require.NoError(t, acctRepo.Upsert(ctx, a))
	}

	totals, err := svc.NetWorth(ctx)
	require.NoError(t, err)
	require.True(t, totals.Assets.Equal(decimal.NewFromInt(251500)), "assets: %s", totals.Assets)
	require.True(t, totals.Liabilities.Equal(decimal.NewFromInt(300)), "liabilities: %s", totals.Liabilities)
	require.True(t, totals.NetWorth.Equal(decimal.NewFromInt(251200)), "net worth: %s", totals.NetWorth)

	snap, err := svc.Record(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, snap.ID)
	require.False(t, snap.TakenAt.IsZero())

	history, err := svc.History(ctx)
	require.NoError(t, err)
	require.Len(t, history, 1)
	require.Equal(t, snap.ID, history[0].ID)
	require.True(t, history[0].NetWorth.Equal(decimal.NewFromInt(251200)), "net worth: %s", history[0].NetWorth)
}

func TestSnapshotEmptyDatabase(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	acctRepo, snapRepo := newTestDB(t)
	svc := &SnapshotService{Accounts: acctRepo, Snapshots: snapRepo}

	totals, err := svc.NetWorth(ctx)
	require.NoError(t, err)
	require.True(t, totals.NetWorth.IsZero())
}
