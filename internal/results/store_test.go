package results

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicli/scl90/internal/scoring"
)

func storePath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "results.json")
}

func buildAt(t *testing.T, participant string, ts time.Time, rs scoring.ResponseSet) *Record {
	t.Helper()
	timeNow = func() time.Time { return ts }
	defer func() { timeNow = time.Now }()
	rec, err := Build(participant, rs)
	require.NoError(t, err)
	return rec
}

func TestOpenMissingFile(t *testing.T) {
	s, err := Open(storePath(t))
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())
}

func TestAppendAndReload(t *testing.T) {
	path := storePath(t)

	s, err := Open(path)
	require.NoError(t, err)

	rec := buildAt(t, "alice", time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC), completeResponses(1))
	require.NoError(t, s.Append(rec))

	reloaded, err := Open(path)
	require.NoError(t, err)
	require.Equal(t, 1, reloaded.Len())

	got := reloaded.All()[0]
	assert.Equal(t, rec.ID, got.ID)
	assert.Equal(t, "alice", got.Participant)
	assert.True(t, got.Timestamp.Equal(rec.Timestamp))
	assert.Equal(t, rec.Responses, got.Responses)
	assert.Equal(t, rec.Questions, got.Questions)
	assert.Equal(t, rec.Scores.Global, got.Scores.Global)
	assert.Equal(t, rec.Scores.Dimensions, got.Scores.Dimensions)
}

func TestOpenCorruptFile(t *testing.T) {
	path := storePath(t)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	s, err := Open(path)
	assert.ErrorIs(t, err, ErrStorageUnreadable)
	assert.Equal(t, 0, s.Len(), "corrupt store must open empty and usable")

	// The store stays writable after a soft-failed load.
	rec := buildAt(t, "bob", time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC), scoring.ResponseSet{1: 2})
	require.NoError(t, s.Append(rec))

	reloaded, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, 1, reloaded.Len())
}

func TestOpenSchemaViolation(t *testing.T) {
	path := storePath(t)
	// Valid JSON, wrong shape: responses out of scale range.
	doc := `{"version":1,"results":[{"participant":"x","timestamp":"2026-01-01T00:00:00Z","responses":{"1":9},"questions":{},"scores":{"global_indices":{"gsi":0,"pst":0,"psdi":0}}}]}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	s, err := Open(path)
	assert.ErrorIs(t, err, ErrStorageUnreadable)
	assert.Equal(t, 0, s.Len())
}

func TestQueryInsertionOrder(t *testing.T) {
	s, err := Open(storePath(t))
	require.NoError(t, err)

	// Append out of chronological order; Query must preserve insertion order.
	later := buildAt(t, "alice", time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), scoring.ResponseSet{1: 1})
	earlier := buildAt(t, "alice", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), scoring.ResponseSet{1: 2})
	other := buildAt(t, "bob", time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), scoring.ResponseSet{1: 3})

	require.NoError(t, s.Append(later))
	require.NoError(t, s.Append(other))
	require.NoError(t, s.Append(earlier))

	got := s.Query("alice")
	require.Len(t, got, 2)
	assert.Equal(t, later.ID, got[0].ID)
	assert.Equal(t, earlier.ID, got[1].ID)

	assert.Empty(t, s.Query("nobody"))
}

func TestLatest(t *testing.T) {
	s, err := Open(storePath(t))
	require.NoError(t, err)

	old := buildAt(t, "alice", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), scoring.ResponseSet{1: 1})
	newer := buildAt(t, "alice", time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC), scoring.ResponseSet{1: 2})
	require.NoError(t, s.Append(newer))
	require.NoError(t, s.Append(old))

	got := s.Latest("alice")
	require.NotNil(t, got)
	assert.Equal(t, newer.ID, got.ID)

	assert.Nil(t, s.Latest("nobody"))
}

func TestExportRoundTrip(t *testing.T) {
	path := storePath(t)
	s, err := Open(path)
	require.NoError(t, err)

	// Non-ASCII text must survive export untouched.
	rec := buildAt(t, "José Müller–测试", time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC), completeResponses(3))
	require.NoError(t, s.Append(rec))

	dest := filepath.Join(t.TempDir(), "export.json")
	require.NoError(t, s.ExportAll(dest))

	original, err := os.ReadFile(path)
	require.NoError(t, err)
	exported, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, original, exported, "export must match the store document byte for byte")

	reloaded, err := Open(dest)
	require.NoError(t, err)
	require.Equal(t, 1, reloaded.Len())
	got := reloaded.All()[0]
	assert.Equal(t, "José Müller–测试", got.Participant)
	assert.Equal(t, rec.Scores.Global, got.Scores.Global)
}

func TestExportWriteFailure(t *testing.T) {
	s, err := Open(storePath(t))
	require.NoError(t, err)

	err = s.ExportAll(filepath.Join(t.TempDir(), "no", "such", "dir", "out.json"))
	require.Error(t, err)
}

func TestAppendRollbackOnFlushFailure(t *testing.T) {
	// Point the store at a path whose parent cannot be created.
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	s, err := Open(filepath.Join(blocker, "results.json"))
	if err != nil {
		// Reading through a file as a directory errors; store is empty either way.
		assert.True(t, errors.Is(err, ErrStorageUnreadable))
	}

	rec := buildAt(t, "alice", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), scoring.ResponseSet{1: 1})
	require.Error(t, s.Append(rec))
	assert.Equal(t, 0, s.Len(), "failed append must not leave the record in memory")
}

func TestDefaultDataPath(t *testing.T) {
	t.Setenv("SCL90_DATA", "/tmp/custom/results.json")
	p, err := DefaultDataPath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom/results.json", p)

	t.Setenv("SCL90_DATA", "")
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg")
	p, err = DefaultDataPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/xdg", "scl90", "results.json"), p)
}
