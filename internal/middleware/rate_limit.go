package middleware

import (
	"context"
	"sync"

	"server-herald/internal/command"
	"server-herald/pkg/cmd"

	"golang.org/x/time/rate"
)

// WithRateLimit caps how fast a single user may invoke commands. Limiters
// are created lazily per user and shared across commands wrapped by the
// same middleware value.
func WithRateLimit(r rate.Limit, burst int) cmd.Middleware {
	var mu sync.Mutex
	limiters := make(map[string]*rate.Limiter)

	limiterFor := func(userID string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()
		l, ok := limiters[userID]
		if !ok {
			l = rate.NewLimiter(r, burst)
			limiters[userID] = l
		}
		return l
	}

	return func(c cmd.Command) cmd.Command {
		return cmd.Wrap(c, func(ctx context.Context, inv *cmd.Invocation) error {
			m, ok := inv.Data.(*command.MessageContext)
			if !ok {
				return c.Run(ctx, inv)
			}
			if !limiterFor(m.Event.Author.ID).Allow() {
				m.Reply("Slow down, you're sending commands too fast.")
				return nil
			}
			return c.Run(ctx, inv)
		})
	}
}
