package history

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/nodelaunch/internal/launcher"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func newRun(id, name string, started time.Time) *launcher.Run {
	return &launcher.Run{
		ID:         id,
		Name:       name,
		Command:    name + " start",
		PID:        4242,
		ExitCode:   0,
		StartedAt:  started,
		FinishedAt: started.Add(time.Second),
	}
}

func TestRecordAndRecent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, s.Record(ctx, newRun("r1", "chainlink", base)))
	require.NoError(t, s.Record(ctx, newRun("r2", "adapter", base.Add(time.Minute))))

	failed := newRun("r3", "chainlink", base.Add(2*time.Minute))
	failed.ExitCode = 1
	failed.Err = errors.New("exit status 1")
	require.NoError(t, s.Record(ctx, failed))

	entries, err := s.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, []string{"r3", "r2", "r1"}, []string{entries[0].ID, entries[1].ID, entries[2].ID})

	assert.Equal(t, "exit status 1", entries[0].Error)
	assert.Equal(t, 1, entries[0].ExitCode)
	assert.Empty(t, entries[1].Error)
	assert.Equal(t, base, entries[2].Started())

	limited, err := s.Recent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "r3", limited[0].ID)
}

func TestByName(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, s.Record(ctx, newRun("r1", "chainlink", base)))
	require.NoError(t, s.Record(ctx, newRun("r2", "adapter", base.Add(time.Minute))))
	require.NoError(t, s.Record(ctx, newRun("r3", "chainlink", base.Add(2*time.Minute))))

	entries, err := s.ByName(ctx, "chainlink", 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "r3", entries[0].ID)
	assert.Equal(t, "r1", entries[1].ID)

	none, err := s.ByName(ctx, "missing", 10)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestRecord_DuplicateIDFails(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	run := newRun("r1", "chainlink", time.Now().UTC())

	require.NoError(t, s.Record(ctx, run))
	err := s.Record(ctx, run)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "r1")
}

func TestOpen_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	ctx := context.Background()

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Record(ctx, newRun("r1", "chainlink", time.Now().UTC())))
	require.NoError(t, s.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	entries, err := reopened.Recent(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
