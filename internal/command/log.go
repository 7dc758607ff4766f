package command

import (
	"context"
	"fmt"
	"strings"

	"server-herald/pkg/cmd"

	embed "github.com/clinet/discordgo-embed"
)

const logDisplayLimit = 15

// LogCommand shows the most recent command invocations for the guild.
type LogCommand struct{}

func (c *LogCommand) Name() string        { return "log" }
func (c *LogCommand) Description() string { return "Show recent command activity for this server." }
func (c *LogCommand) Aliases() []string   { return []string{"history"} }
func (c *LogCommand) Category() string    { return "Settings" }
func (c *LogCommand) ManagerOnly() bool   { return true }
func (c *LogCommand) GuildOnly() bool     { return true }

func (c *LogCommand) Run(_ context.Context, inv *cmd.Invocation) error {
	m, ok := inv.Data.(*MessageContext)
	if !ok {
		return nil
	}
	history, err := m.Storage.CommandHistory(m.Event.GuildID)
	if err != nil {
		return fmt.Errorf("read command history: %w", err)
	}
	if len(history) == 0 {
		m.Reply("No commands logged yet.")
		return nil
	}

	if len(history) > logDisplayLimit {
		history = history[len(history)-logDisplayLimit:]
	}

	var b strings.Builder
	for i := len(history) - 1; i >= 0; i-- {
		rec := history[i]
		fmt.Fprintf(&b, "`%s` **%s** by %s", rec.Datetime.Format("2006-01-02 15:04"), rec.Command, rec.Username)
		if rec.Param != "" {
			fmt.Fprintf(&b, ": `%s`", rec.Param)
		}
		b.WriteString("\n")
	}

	m.ReplyEmbed(embed.NewEmbed().
		SetColor(embedColor).
		SetDescription(fmt.Sprintf("📒 Recent commands\n\n%s", b.String())).
		MessageEmbed)
	return nil
}
