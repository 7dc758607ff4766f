package command

import (
	"context"
	"fmt"
	"strings"
	"time"

	"server-herald/internal/version"
	"server-herald/pkg/cmd"

	embed "github.com/clinet/discordgo-embed"
)

type AboutCommand struct{}

func (c *AboutCommand) Name() string        { return "about" }
func (c *AboutCommand) Description() string { return "Shows info about the bot." }
func (c *AboutCommand) Aliases() []string   { return nil }
func (c *AboutCommand) Category() string    { return "Information" }
func (c *AboutCommand) ManagerOnly() bool   { return false }

func (c *AboutCommand) Run(_ context.Context, inv *cmd.Invocation) error {
	m, ok := inv.Data.(*MessageContext)
	if !ok {
		return nil
	}

	buildDate := "unknown"
	if version.BuildDate != "" {
		if t, err := time.Parse(time.RFC3339, version.BuildDate); err == nil {
			buildDate = t.Format("2006-01-02")
		} else {
			buildDate = "invalid date"
		}
	}

	msg := embed.NewEmbed().
		SetColor(embedColor).
		SetDescription(fmt.Sprintf("ℹ️ About\n\n**%s** — %s", version.AppName, version.AppDescription)).
		AddField("Release", fmt.Sprintf("%s %s (Go %s)", version.Version, buildDate, strings.TrimPrefix(version.GoVersion, "go")))

	m.ReplyEmbed(msg.MessageEmbed)
	return nil
}
