package repository

import (
	"context"
	"database/sql"
)

// SnapshotRepo handles net-worth history.
type SnapshotRepo struct {
	db *sql.DB
}

func NewSnapshotRepo(db *sql.DB) *SnapshotRepo {
	return &SnapshotRepo{db: db}
}

func (r *SnapshotRepo) Insert(ctx context.Context, s Snapshot) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO snapshots(id, taken_at, assets, liabilities, net_worth)
	VALUES (?, ?, ?, ?, ?);
	`, s.ID, s.TakenAt, s.Assets, s.Liabilities, s.NetWorth)
	return err
}

func (r *SnapshotRepo) List(ctx context.Context) ([]Snapshot, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, taken_at, assets, liabilities, net_worth FROM snapshots ORDER BY taken_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Snapshot
	for rows.Next() {
		var s Snapshot
		if err := rows.Scan(&s.ID, &s.TakenAt, &s.Assets, &s.Liabilities, &s.NetWorth); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
