package middleware

import (
	"context"
	"time"

	"server-herald/internal/command"
	"server-herald/internal/storage"
	"server-herald/pkg/cmd"
)

// WithCommandLogger records every guild invocation in the datastore and
// the structured log before running the command.
func WithCommandLogger() cmd.Middleware {
	return func(c cmd.Command) cmd.Command {
		return cmd.Wrap(c, func(ctx context.Context, inv *cmd.Invocation) error {
			m, ok := inv.Data.(*command.MessageContext)
			if !ok {
				return c.Run(ctx, inv)
			}

			m.Log.Info().
				Str("command", c.Name()).
				Str("user", m.Event.Author.Username).
				Str("guild", m.Event.GuildID).
				Msg("command invoked")

			if m.Event.GuildID != "" {
				err := m.Storage.AppendCommandHistory(m.Event.GuildID, storage.CommandHistoryRecord{
					ChannelID: m.Event.ChannelID,
					UserID:    m.Event.Author.ID,
					Username:  m.Event.Author.Username,
					Command:   c.Name(),
					Param:     inv.Raw,
					Datetime:  time.Now(),
				})
				if err != nil {
					m.Log.Warn().Err(err).Msg("failed to log command")
				}
			}

			return c.Run(ctx, inv)
		})
	}
}
