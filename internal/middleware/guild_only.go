package middleware

import (
	"context"

	"server-herald/internal/command"
	"server-herald/pkg/cmd"
)

// GuildOnly is implemented by commands that must not run in direct
// messages.
type GuildOnly interface {
	GuildOnly() bool
}

// WithGuildOnly drops guild-only commands invoked from a direct message.
func WithGuildOnly() cmd.Middleware {
	return func(c cmd.Command) cmd.Command {
		return cmd.Wrap(c, func(ctx context.Context, inv *cmd.Invocation) error {
			m, ok := inv.Data.(*command.MessageContext)
			if !ok {
				return c.Run(ctx, inv)
			}
			g, ok := cmd.Root(c).(GuildOnly)
			if !ok || !g.GuildOnly() {
				return c.Run(ctx, inv)
			}
			if m.Event.GuildID == "" {
				m.Reply("This command only works in a server.")
				return nil
			}
			return c.Run(ctx, inv)
		})
	}
}
