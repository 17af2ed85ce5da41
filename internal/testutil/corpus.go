// Package testutil provides shared corpus fixtures for tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sree181/SMJ-sub004/internal/aggregate"
)

// CorpusYAML is a small valid observation file covering two five-year
// windows and two category kinds. Kept deliberately tiny so tests can
// reason about exact counts.
const CorpusYAML = `observations:
  - {paper_id: p1, year: 1991, kind: theory, name: RBV, phenomenon: diversification}
  - {paper_id: p2, year: 1992, kind: theory, name: TCE}
  - {paper_id: p3, year: 1993, kind: theory, name: RBV}
  - {paper_id: p4, year: 1996, kind: theory, name: RBV, phenomenon: alliances}
  - {paper_id: p5, year: 1997, kind: theory, name: DynamicCapabilities}
  - {paper_id: p6, year: 1998, kind: theory, name: TCE}
  - {paper_id: p7, year: 1997, kind: method, name: Event Study}
`

// SampleObservations returns the fixture corpus as decoded observations:
// three theory mentions in 1990-1994, three in 1995-1999, one method.
func SampleObservations() []aggregate.Observation {
	return []aggregate.Observation{
		{PaperID: "p1", Year: 1991, Kind: aggregate.KindTheory, Name: "RBV", Phenomenon: "diversification"},
		{PaperID: "p2", Year: 1992, Kind: aggregate.KindTheory, Name: "TCE"},
		{PaperID: "p3", Year: 1993, Kind: aggregate.KindTheory, Name: "RBV"},
		{PaperID: "p4", Year: 1996, Kind: aggregate.KindTheory, Name: "RBV", Phenomenon: "alliances"},
		{PaperID: "p5", Year: 1997, Kind: aggregate.KindTheory, Name: "DynamicCapabilities"},
		{PaperID: "p6", Year: 1998, Kind: aggregate.KindTheory, Name: "TCE"},
		{PaperID: "p7", Year: 1997, Kind: aggregate.KindMethod, Name: "Event Study"},
	}
}

// WriteYAML writes content to a temp file and returns its path.
// The file is cleaned up with the test's temp dir.
func WriteYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "observations.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
