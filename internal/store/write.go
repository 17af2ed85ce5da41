package store

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/sree181/SMJ-sub004/internal/aggregate"
)

// observationID computes the content-addressed ID for one observation.
// The domain-separation prefix and the field separator keep distinct field
// values from colliding ("ab"+"c" vs "a"+"bc").
func observationID(obs aggregate.Observation) string {
	h := sha256.New()
	fmt.Fprintf(h, "observation\x00%s\x00%d\x00%s\x00%s\x00%s",
		obs.PaperID, obs.Year, obs.Kind, obs.Name, obs.Phenomenon)
	return hex.EncodeToString(h.Sum(nil))
}

// WriteObservations inserts a batch of observations in one transaction.
// Duplicate observations (same content ID) are silently skipped, so
// re-importing a file is idempotent. Returns the number of rows actually
// inserted.
func (s *Store) WriteObservations(ctx context.Context, observations []aggregate.Observation) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin write: %w", err)
	}
	// Rollback after a successful commit is a no-op.
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO observations (id, paper_id, year, kind, name, phenomenon)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`)
	if err != nil {
		return 0, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	inserted := 0
	for _, obs := range observations {
		res, err := stmt.ExecContext(ctx,
			observationID(obs),
			obs.PaperID,
			obs.Year,
			string(obs.Kind),
			obs.Name,
			obs.Phenomenon,
		)
		if err != nil {
			return 0, fmt.Errorf("insert observation (paper=%s, name=%s): %w", obs.PaperID, obs.Name, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("rows affected: %w", err)
		}
		inserted += int(n)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit write: %w", err)
	}

	return inserted, nil
}
