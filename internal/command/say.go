package command

import (
	"context"
	"fmt"
	"strings"

	"server-herald/internal/compose"
	"server-herald/pkg/argline"
	"server-herald/pkg/cmd"
)

// SayCommand composes a message from flag arguments and sends it to the
// current channel, or to a channel named by a leading mention.
type SayCommand struct{}

func (c *SayCommand) Name() string        { return "say" }
func (c *SayCommand) Description() string { return "Compose and send a message. Flags: -c/-txt, -att/-f, -embed (-title, -footer, -footerme, -footericon, -author, -authorme, -authoricon, -time, -url, -col, -image)." }
func (c *SayCommand) Aliases() []string   { return []string{"send"} }
func (c *SayCommand) Category() string    { return "Publishing" }
func (c *SayCommand) ManagerOnly() bool   { return true }

func (c *SayCommand) Run(ctx context.Context, inv *cmd.Invocation) error {
	m, ok := inv.Data.(*MessageContext)
	if !ok {
		return nil
	}

	cur := argline.NewCursor(inv.Raw)
	channelID := m.Event.ChannelID
	if strings.HasPrefix(cur.Rest(), "<#") {
		token, err := cur.NextArg()
		if err != nil {
			return err
		}
		ch, err := compose.ParseChannel(ctx, m.Client, token)
		if err != nil {
			return err
		}
		channelID = ch.ID
	}

	req, err := compose.Parse(ctx, cur.TakeRest(), m.Author())
	if err != nil {
		return err
	}
	if req.Empty() {
		return argline.Usagef("nothing to send; give me -c, -att or -embed")
	}

	if _, err := m.Client.SendMessage(ctx, channelID, req); err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	return nil
}
