package compose

import (
	"context"
	"regexp"
	"strings"

	"server-herald/pkg/argline"

	"github.com/bwmarrin/discordgo"
)

// Client is the chat-platform capability surface the command layer needs.
// Implemented by the discordgo adapter; lookups here are the only points
// where parsing touches the network.
type Client interface {
	Channel(ctx context.Context, id string) (*discordgo.Channel, error)
	User(ctx context.Context, id string) (*discordgo.User, error)
	Message(ctx context.Context, channelID, messageID string) (*discordgo.Message, error)
	UserChannel(ctx context.Context, userID string) (*discordgo.Channel, error)
	SendMessage(ctx context.Context, channelID string, req *Request) (*discordgo.Message, error)
	EditMessage(ctx context.Context, channelID, messageID string, req *Request) error
}

var (
	channelMention = regexp.MustCompile(`^<#(\d+)>$`)
	userMention    = regexp.MustCompile(`^<@!?(\d+)>$`)
)

// ParseChannel resolves a channel from a <#id> mention or a raw ID. A
// failed lookup surfaces as a usage error, never as a platform error.
func ParseChannel(ctx context.Context, cl Client, token string) (*discordgo.Channel, error) {
	id := token
	if m := channelMention.FindStringSubmatch(token); m != nil {
		id = m[1]
	}
	ch, err := cl.Channel(ctx, id)
	if err != nil {
		return nil, argline.Usagef("couldn't find channel with id %s", id)
	}
	return ch, nil
}

// ParseUser resolves a user from a <@id> or <@!id> mention or a raw ID.
func ParseUser(ctx context.Context, cl Client, token string) (*discordgo.User, error) {
	id := token
	if m := userMention.FindStringSubmatch(token); m != nil {
		id = m[1]
	}
	u, err := cl.User(ctx, id)
	if err != nil {
		return nil, argline.Usagef("couldn't find user with id %s", id)
	}
	return u, nil
}

// ParseURL strips the <...> wrapping Discord uses to suppress link
// previews. No validation beyond that.
func ParseURL(token string) string {
	if strings.HasPrefix(token, "<") && strings.HasSuffix(token, ">") {
		return token[1 : len(token)-1]
	}
	return token
}
