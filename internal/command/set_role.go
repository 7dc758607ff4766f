package command

import (
	"context"
	"fmt"
	"regexp"

	"server-herald/pkg/argline"
	"server-herald/pkg/cmd"
)

var roleMention = regexp.MustCompile(`^<@&(\d+)>$`)

// SetRoleCommand stores the per-guild manager role, overriding the
// MANAGER_ROLES whitelist from the environment.
type SetRoleCommand struct{}

func (c *SetRoleCommand) Name() string        { return "set-role" }
func (c *SetRoleCommand) Description() string { return "Set the role allowed to use publishing commands: set-role <@role|roleID|none>." }
func (c *SetRoleCommand) Aliases() []string   { return nil }
func (c *SetRoleCommand) Category() string    { return "Settings" }
func (c *SetRoleCommand) ManagerOnly() bool   { return true }
func (c *SetRoleCommand) GuildOnly() bool     { return true }

func (c *SetRoleCommand) Run(ctx context.Context, inv *cmd.Invocation) error {
	m, ok := inv.Data.(*MessageContext)
	if !ok {
		return nil
	}
	cur := argline.NewCursor(inv.Raw)
	token, err := cur.NextArg()
	if err != nil {
		return err
	}

	if token == "none" {
		if err := m.Storage.SetManagerRole(m.Event.GuildID, ""); err != nil {
			return fmt.Errorf("clear manager role: %w", err)
		}
		m.Reply("Manager role cleared; falling back to the configured whitelist.")
		return nil
	}

	roleID := token
	if match := roleMention.FindStringSubmatch(token); match != nil {
		roleID = match[1]
	}

	roles, err := m.Session.GuildRoles(m.Event.GuildID)
	if err != nil {
		return fmt.Errorf("list guild roles: %w", err)
	}
	found := false
	for _, r := range roles {
		if r.ID == roleID {
			found = true
			break
		}
	}
	if !found {
		return argline.Usagef("couldn't find role with id %s", roleID)
	}

	if err := m.Storage.SetManagerRole(m.Event.GuildID, roleID); err != nil {
		return fmt.Errorf("store manager role: %w", err)
	}
	m.Reply(fmt.Sprintf("Manager role set to <@&%s>.", roleID))
	return nil
}
