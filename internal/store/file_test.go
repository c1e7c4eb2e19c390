package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadFile_MissingFileWritesSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "recs_data.json")
	seed := []rec{{ID: "REC-001", Name: "seed"}}

	recs, err := loadFile(path, seed)
	require.NoError(t, err)
	require.Len(t, recs, 1)

	// the seed is now the on-disk state
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(b), "REC-001")
	require.True(t, strings.HasSuffix(string(b), "\n"))
}

func TestLoadFile_CorruptFileFallsBackToSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recs_data.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	recs, err := loadFile(path, []rec{{ID: "REC-001"}, {ID: "REC-002"}})
	require.NoError(t, err)
	require.Len(t, recs, 2)

	// corrupt content was replaced with the serialized seed
	again, err := loadFile[rec](path, nil)
	require.NoError(t, err)
	require.Len(t, again, 2)
}

func TestSaveFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recs_data.json")
	in := []rec{
		{ID: "REC-001", Name: "하나", Code: "A-1"},
		{ID: "REC-002", Name: "둘", Code: "B-2"},
	}
	require.NoError(t, saveFile(path, in))

	out, err := loadFile[rec](path, nil)
	require.NoError(t, err)
	require.Equal(t, in, out)
}
