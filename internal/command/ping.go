package command

import (
	"context"
	"fmt"

	"server-herald/pkg/cmd"
)

type PingCommand struct{}

func (c *PingCommand) Name() string        { return "ping" }
func (c *PingCommand) Description() string { return "Pong!" }
func (c *PingCommand) Aliases() []string   { return nil }
func (c *PingCommand) Category() string    { return "Information" }
func (c *PingCommand) ManagerOnly() bool   { return false }

func (c *PingCommand) Run(_ context.Context, inv *cmd.Invocation) error {
	m, ok := inv.Data.(*MessageContext)
	if !ok {
		return nil
	}
	latency := m.Session.HeartbeatLatency().Milliseconds()
	m.Reply(fmt.Sprintf("🏓 Pong! Response time: `%dms`", latency))
	return nil
}
