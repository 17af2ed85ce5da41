package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sree181/SMJ-sub004/internal/aggregate"
	"github.com/sree181/SMJ-sub004/internal/testutil"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "observations.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, s.Close())
	})
	return s
}

func TestOpen_CreatesSchema(t *testing.T) {
	s := openTestStore(t)

	count, err := s.CountObservations(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestWriteObservations_Idempotent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	inserted, err := s.WriteObservations(ctx, testutil.SampleObservations())
	require.NoError(t, err)
	assert.Equal(t, 7, inserted)

	// Same batch again: all rows conflict on content ID.
	inserted, err = s.WriteObservations(ctx, testutil.SampleObservations())
	require.NoError(t, err)
	assert.Zero(t, inserted)

	count, err := s.CountObservations(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7, count)
}

func TestReadRange_FiltersKindAndYears(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.WriteObservations(ctx, testutil.SampleObservations())
	require.NoError(t, err)

	theories, err := s.ReadRange(ctx, aggregate.KindTheory, 1990, 1994)
	require.NoError(t, err)
	require.Len(t, theories, 3)
	assert.Equal(t, "RBV", theories[0].Name)
	assert.Equal(t, "TCE", theories[1].Name)
	assert.Equal(t, "RBV", theories[2].Name)

	methods, err := s.ReadRange(ctx, aggregate.KindMethod, 1990, 1999)
	require.NoError(t, err)
	require.Len(t, methods, 1)
	assert.Equal(t, "Event Study", methods[0].Name)
}

func TestReadRange_EmptyResultIsNotNil(t *testing.T) {
	s := openTestStore(t)

	observations, err := s.ReadRange(context.Background(), aggregate.KindTheory, 1990, 1999)
	require.NoError(t, err)
	assert.NotNil(t, observations)
	assert.Empty(t, observations)
}

func TestReadRange_DeterministicOrder(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	// Insert in scrambled order; reads must come back year-then-name sorted.
	scrambled := []aggregate.Observation{
		{PaperID: "p9", Year: 1993, Kind: aggregate.KindTheory, Name: "Agency"},
		{PaperID: "p1", Year: 1991, Kind: aggregate.KindTheory, Name: "TCE"},
		{PaperID: "p5", Year: 1991, Kind: aggregate.KindTheory, Name: "RBV"},
	}
	_, err := s.WriteObservations(ctx, scrambled)
	require.NoError(t, err)

	got, err := s.ReadRange(ctx, aggregate.KindTheory, 1990, 1994)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "RBV", got[0].Name)
	assert.Equal(t, "TCE", got[1].Name)
	assert.Equal(t, "Agency", got[2].Name)
}

func TestObservationID_DistinguishesFields(t *testing.T) {
	a := aggregate.Observation{PaperID: "ab", Year: 1990, Kind: aggregate.KindTheory, Name: "c"}
	b := aggregate.Observation{PaperID: "a", Year: 1990, Kind: aggregate.KindTheory, Name: "bc"}

	assert.NotEqual(t, observationID(a), observationID(b))
	assert.Equal(t, observationID(a), observationID(a))
}
