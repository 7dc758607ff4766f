// Package command holds the concrete prefix commands and the context the
// Discord adapter hands them.
package command

import (
	"server-herald/internal/compose"
	"server-herald/internal/config"
	"server-herald/internal/storage"
	"server-herald/pkg/cmd"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
)

// MessageContext is what the runtime hands a prefix command: the session,
// the triggering message, and the shared collaborators.
type MessageContext struct {
	Session  *discordgo.Session
	Event    *discordgo.MessageCreate
	Storage  *storage.Storage
	Config   *config.Config
	Client   compose.Client
	Registry *cmd.Registry
	Log      zerolog.Logger
}

// Meta is implemented by commands that carry Discord-facing metadata
// beyond the universal contract.
type Meta interface {
	Category() string
	ManagerOnly() bool
}

// Author derives the composer identity from the invoking message: the
// member nickname when present, else the username, plus the avatar URL.
func (m *MessageContext) Author() compose.Author {
	name := m.Event.Author.Username
	if m.Event.Member != nil && m.Event.Member.Nick != "" {
		name = m.Event.Member.Nick
	}
	return compose.Author{
		DisplayName: name,
		AvatarURL:   m.Event.Author.AvatarURL(""),
	}
}

// Reply sends plain text back to the originating channel.
func (m *MessageContext) Reply(text string) {
	_, _ = m.Session.ChannelMessageSend(m.Event.ChannelID, text)
}

// ReplyEmbed sends an embed back to the originating channel.
func (m *MessageContext) ReplyEmbed(embed *discordgo.MessageEmbed) {
	_, _ = m.Session.ChannelMessageSendEmbed(m.Event.ChannelID, embed)
}
