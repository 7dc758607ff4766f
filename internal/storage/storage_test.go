package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "datastore.json"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestManagerRole(t *testing.T) {
	s := newTestStorage(t)

	role, err := s.ManagerRole("guild-1")
	require.NoError(t, err)
	require.Empty(t, role)

	require.NoError(t, s.SetManagerRole("guild-1", "role-9"))
	role, err = s.ManagerRole("guild-1")
	require.NoError(t, err)
	require.Equal(t, "role-9", role)

	require.NoError(t, s.SetManagerRole("guild-1", ""))
	role, err = s.ManagerRole("guild-1")
	require.NoError(t, err)
	require.Empty(t, role)
}

func TestCommandHistoryBounded(t *testing.T) {
	s := newTestStorage(t)

	for i := 0; i < commandHistoryLimit+10; i++ {
		require.NoError(t, s.AppendCommandHistory("guild-1", CommandHistoryRecord{
			Command:  "say",
			Username: "user",
			Datetime: time.Now(),
		}))
	}

	history, err := s.CommandHistory("guild-1")
	require.NoError(t, err)
	require.Len(t, history, commandHistoryLimit)
}
