package command

import (
	"context"
	"fmt"

	"server-herald/internal/compose"
	"server-herald/pkg/argline"
	"server-herald/pkg/cmd"
)

// DMCommand composes a message and delivers it to a user's direct-message
// channel.
type DMCommand struct{}

func (c *DMCommand) Name() string        { return "dm" }
func (c *DMCommand) Description() string { return "Send a composed message to a user directly: dm <@user> <flags>." }
func (c *DMCommand) Aliases() []string   { return []string{"whisper"} }
func (c *DMCommand) Category() string    { return "Publishing" }
func (c *DMCommand) ManagerOnly() bool   { return true }

func (c *DMCommand) Run(ctx context.Context, inv *cmd.Invocation) error {
	m, ok := inv.Data.(*MessageContext)
	if !ok {
		return nil
	}

	cur := argline.NewCursor(inv.Raw)
	userToken, err := cur.NextArg()
	if err != nil {
		return err
	}
	user, err := compose.ParseUser(ctx, m.Client, userToken)
	if err != nil {
		return err
	}

	req, err := compose.Parse(ctx, cur.TakeRest(), m.Author())
	if err != nil {
		return err
	}
	if req.Empty() {
		return argline.Usagef("nothing to send; give me -c, -att or -embed")
	}

	dm, err := m.Client.UserChannel(ctx, user.ID)
	if err != nil {
		return fmt.Errorf("open direct message channel: %w", err)
	}
	if _, err := m.Client.SendMessage(ctx, dm.ID, req); err != nil {
		return fmt.Errorf("send direct message: %w", err)
	}
	return nil
}
