package command

import (
	"context"
	"fmt"

	"server-herald/internal/compose"
	"server-herald/pkg/argline"
	"server-herald/pkg/cmd"
)

// EditCommand amends an existing bot message in place. The edit grammar
// additionally understands -insert, which copies the original content and
// embed before further flags amend them.
type EditCommand struct{}

func (c *EditCommand) Name() string        { return "edit" }
func (c *EditCommand) Description() string { return "Edit a previously sent message: edit <#channel> <messageID> <flags>. Supports -insert to start from the original." }
func (c *EditCommand) Aliases() []string   { return []string{"amend"} }
func (c *EditCommand) Category() string    { return "Publishing" }
func (c *EditCommand) ManagerOnly() bool   { return true }

func (c *EditCommand) Run(ctx context.Context, inv *cmd.Invocation) error {
	m, ok := inv.Data.(*MessageContext)
	if !ok {
		return nil
	}

	cur := argline.NewCursor(inv.Raw)
	channelToken, err := cur.NextArg()
	if err != nil {
		return err
	}
	ch, err := compose.ParseChannel(ctx, m.Client, channelToken)
	if err != nil {
		return err
	}
	messageID, err := cur.NextArg()
	if err != nil {
		return err
	}

	msg, err := m.Client.Message(ctx, ch.ID, messageID)
	if err != nil {
		return argline.Usagef("couldn't find message with id %s", messageID)
	}

	orig := compose.Original{Content: msg.Content}
	if len(msg.Embeds) > 0 {
		orig.Embed = msg.Embeds[0]
	}

	req, err := compose.ParseEdit(ctx, cur.TakeRest(), m.Author(), orig)
	if err != nil {
		return err
	}
	if req.Empty() {
		return argline.Usagef("nothing to change; give me -c, -insert or -embed")
	}

	if err := m.Client.EditMessage(ctx, ch.ID, messageID, req); err != nil {
		return fmt.Errorf("edit message: %w", err)
	}
	return nil
}
