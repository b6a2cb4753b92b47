package table

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRoundTrip(t *testing.T) {
	dir := t.TempDir()
	d := &Dataset{
		Headers: []string{"name", "lat", "lng"},
		Rows: []Row{
			{"name": "nyc", "lat": "40.7", "lng": "-74.0"},
			{"name": "paris", "lat": "48.85", "lng": "2.35"},
		},
		Source: "https://example.com/cities.csv",
	}
	require.NoError(t, SaveSnapshot(dir, d))

	got, err := LoadSnapshot(dir, d.Source)
	require.NoError(t, err)
	assert.Equal(t, d, got)
}

func TestLoadSnapshotMissing(t *testing.T) {
	_, err := LoadSnapshot(t.TempDir(), "https://example.com/never-seen.csv")
	assert.True(t, os.IsNotExist(err))
}
