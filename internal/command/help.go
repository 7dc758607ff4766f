package command

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"server-herald/pkg/cmd"

	embed "github.com/clinet/discordgo-embed"
)

// HelpCommand lists every registered command grouped by category.
type HelpCommand struct{}

func (c *HelpCommand) Name() string        { return "help" }
func (c *HelpCommand) Description() string { return "Show this overview." }
func (c *HelpCommand) Aliases() []string   { return []string{"h"} }
func (c *HelpCommand) Category() string    { return "Information" }
func (c *HelpCommand) ManagerOnly() bool   { return false }

func (c *HelpCommand) Run(_ context.Context, inv *cmd.Invocation) error {
	m, ok := inv.Data.(*MessageContext)
	if !ok {
		return nil
	}

	byCategory := map[string][]cmd.Command{}
	for _, registered := range m.Registry.GetAll() {
		category := "Other"
		if meta, ok := cmd.Root(registered).(Meta); ok {
			category = meta.Category()
		}
		byCategory[category] = append(byCategory[category], registered)
	}

	categories := make([]string, 0, len(byCategory))
	for category := range byCategory {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	msg := embed.NewEmbed().
		SetColor(embedColor).
		SetDescription(fmt.Sprintf("ℹ️ Commands (prefix `%s`)", m.Config.CommandPrefix))
	for _, category := range categories {
		var lines []string
		for _, registered := range byCategory[category] {
			lines = append(lines, fmt.Sprintf("**%s** %s", registered.Name(), registered.Description()))
		}
		msg = msg.AddField(category, strings.Join(lines, "\n"))
	}

	m.ReplyEmbed(msg.MessageEmbed)
	return nil
}
