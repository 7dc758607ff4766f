package middleware

import (
	"context"
	"path/filepath"
	"testing"

	"server-herald/internal/command"
	"server-herald/internal/storage"
	"server-herald/pkg/cmd"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type recordingCommand struct {
	calls int
}

func (c *recordingCommand) Name() string        { return "probe" }
func (c *recordingCommand) Description() string { return "probe" }

func (c *recordingCommand) Run(_ context.Context, _ *cmd.Invocation) error {
	c.calls++
	return nil
}

func TestWithCommandLoggerRecordsHistory(t *testing.T) {
	store, err := storage.New(filepath.Join(t.TempDir(), "datastore.json"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	inner := &recordingCommand{}
	wrapped := cmd.Apply(inner, WithCommandLogger())

	mctx := &command.MessageContext{
		Storage: store,
		Log:     zerolog.Nop(),
		Event: &discordgo.MessageCreate{Message: &discordgo.Message{
			GuildID:   "guild-1",
			ChannelID: "chan-1",
			Author:    &discordgo.User{ID: "u1", Username: "tester"},
		}},
	}

	require.NoError(t, wrapped.Run(context.Background(), &cmd.Invocation{Raw: "-c hi", Data: mctx}))
	require.Equal(t, 1, inner.calls)

	history, err := store.CommandHistory("guild-1")
	require.NoError(t, err)
	require.Len(t, history, 1)
	require.Equal(t, "probe", history[0].Command)
	require.Equal(t, "-c hi", history[0].Param)
	require.Equal(t, "tester", history[0].Username)
}

func TestWithCommandLoggerPassthrough(t *testing.T) {
	inner := &recordingCommand{}
	wrapped := cmd.Apply(inner, WithCommandLogger())

	// Non-message invocations (e.g. from the CLI harness) run untouched.
	require.NoError(t, wrapped.Run(context.Background(), &cmd.Invocation{Raw: "x"}))
	require.Equal(t, 1, inner.calls)
}
