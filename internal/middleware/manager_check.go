// Package middleware provides cross-cutting wrappers for prefix commands:
// authorization, guild gating, rate limiting, and invocation logging.
package middleware

import (
	"context"
	"fmt"

	"server-herald/internal/command"
	"server-herald/pkg/cmd"

	"github.com/bwmarrin/discordgo"
)

// WithManagerCheck blocks manager-only commands for everyone except
// administrators, the configured developer, holders of the per-guild
// manager role, and holders of a whitelisted role from the environment.
func WithManagerCheck() cmd.Middleware {
	return func(c cmd.Command) cmd.Command {
		return cmd.Wrap(c, func(ctx context.Context, inv *cmd.Invocation) error {
			m, ok := inv.Data.(*command.MessageContext)
			if !ok {
				return c.Run(ctx, inv)
			}
			meta, ok := cmd.Root(c).(command.Meta)
			if !ok || !meta.ManagerOnly() {
				return c.Run(ctx, inv)
			}

			allowed, err := isManager(m)
			if err != nil {
				return fmt.Errorf("manager check: %w", err)
			}
			if !allowed {
				m.Reply("You are not allowed to use this command.")
				return nil
			}
			return c.Run(ctx, inv)
		})
	}
}

func isManager(m *command.MessageContext) (bool, error) {
	if m.Event.Author.ID == m.Config.DeveloperID && m.Config.DeveloperID != "" {
		return true, nil
	}
	if m.Event.GuildID == "" || m.Event.Member == nil {
		return false, nil
	}

	perms, err := m.Session.UserChannelPermissions(m.Event.Author.ID, m.Event.ChannelID)
	if err != nil {
		return false, fmt.Errorf("get user permissions: %w", err)
	}
	if perms&discordgo.PermissionAdministrator != 0 {
		return true, nil
	}

	managerRole, err := m.Storage.ManagerRole(m.Event.GuildID)
	if err != nil {
		return false, err
	}

	whitelist := make(map[string]bool, len(m.Config.ManagerRoles)+1)
	for _, entry := range m.Config.ManagerRoles {
		whitelist[entry] = true
	}
	if managerRole != "" {
		whitelist[managerRole] = true
	}
	if len(whitelist) == 0 {
		return false, nil
	}

	// Whitelist entries match by role ID or by role name.
	guildRoles, err := m.Session.GuildRoles(m.Event.GuildID)
	if err != nil {
		return false, fmt.Errorf("list guild roles: %w", err)
	}
	nameByID := make(map[string]string, len(guildRoles))
	for _, r := range guildRoles {
		nameByID[r.ID] = r.Name
	}

	for _, roleID := range m.Event.Member.Roles {
		if whitelist[roleID] || whitelist[nameByID[roleID]] {
			return true, nil
		}
	}
	return false, nil
}
