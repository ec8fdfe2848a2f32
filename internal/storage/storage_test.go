package storage

import (
	"os"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

func openTestStorage(t *testing.T) *Storage {
	t.Helper()
	tmpDir, err := os.MkdirTemp("", "chesscompare-test-*")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(tmpDir) })

	opts := badger.DefaultOptions(tmpDir)
	opts.Logger = nil
	db, err := badger.Open(opts)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &Storage{db: db}
}

func TestSaveAndListRuns(t *testing.T) {
	s := openTestStorage(t)

	first := Record{Timestamp: time.Unix(1000, 0), ModulesA: 0x1, ModulesB: 0x3, Pairs: 10, AWins: 6, BWins: 3, Draws: 1}
	second := Record{Timestamp: time.Unix(2000, 0), ModulesA: 0x7, ModulesB: 0x1, Pairs: 20, AWins: 12, BWins: 7, Draws: 1}

	require.NoError(t, s.SaveRun(first))
	require.NoError(t, s.SaveRun(second))

	runs, err := s.ListRuns()
	require.NoError(t, err)
	require.Len(t, runs, 2)
	require.Equal(t, first.ModulesA, runs[0].ModulesA)
	require.Equal(t, second.ModulesA, runs[1].ModulesA)
}

func TestLastRunEmpty(t *testing.T) {
	s := openTestStorage(t)

	_, ok, err := s.LastRun()
	require.NoError(t, err)
	require.False(t, ok)
}

func TestLastRunReturnsMostRecent(t *testing.T) {
	s := openTestStorage(t)

	require.NoError(t, s.SaveRun(Record{Timestamp: time.Unix(1000, 0), Pairs: 5}))
	require.NoError(t, s.SaveRun(Record{Timestamp: time.Unix(3000, 0), Pairs: 9}))

	last, ok, err := s.LastRun()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 9, last.Pairs)
}

func TestDataPaths(t *testing.T) {
	dataDir, err := GetDataDir()
	require.NoError(t, err)
	require.NotEmpty(t, dataDir)

	_, err = os.Stat(dataDir)
	require.NoError(t, err)
}
