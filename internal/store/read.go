package store

import (
	"context"
	"fmt"

	"github.com/sree181/SMJ-sub004/internal/aggregate"
)

// ReadRange returns all observations of the given kind with a year inside
// [startYear, endYear], ordered deterministically: year ASC, name ASC,
// id ASC COLLATE BINARY.
//
// Returns an empty slice (not nil) when nothing matches.
func (s *Store) ReadRange(ctx context.Context, kind aggregate.Kind, startYear, endYear int) ([]aggregate.Observation, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT paper_id, year, kind, name, phenomenon
		FROM observations
		WHERE kind = ? AND year >= ? AND year <= ?
		ORDER BY year ASC, name ASC, id COLLATE BINARY ASC
	`, string(kind), startYear, endYear)
	if err != nil {
		return nil, fmt.Errorf("query observations: %w", err)
	}
	defer rows.Close()

	observations := []aggregate.Observation{}
	for rows.Next() {
		var obs aggregate.Observation
		var kindStr string
		if err := rows.Scan(&obs.PaperID, &obs.Year, &kindStr, &obs.Name, &obs.Phenomenon); err != nil {
			return nil, fmt.Errorf("scan observation: %w", err)
		}
		obs.Kind = aggregate.Kind(kindStr)
		observations = append(observations, obs)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate observations: %w", err)
	}

	return observations, nil
}

// CountObservations returns the total number of stored observations.
// Used by the import command for reporting.
func (s *Store) CountObservations(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM observations").Scan(&count); err != nil {
		return 0, fmt.Errorf("count observations: %w", err)
	}
	return count, nil
}
