package discord

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"path"
	"time"

	"server-herald/internal/compose"

	"github.com/bwmarrin/discordgo"
)

const attachmentFetchTimeout = 20 * time.Second

// sessionClient implements compose.Client on top of a discordgo session.
type sessionClient struct {
	s *discordgo.Session
}

func (c *sessionClient) Channel(_ context.Context, id string) (*discordgo.Channel, error) {
	if ch, err := c.s.State.Channel(id); err == nil {
		return ch, nil
	}
	return c.s.Channel(id)
}

func (c *sessionClient) User(_ context.Context, id string) (*discordgo.User, error) {
	return c.s.User(id)
}

func (c *sessionClient) Message(_ context.Context, channelID, messageID string) (*discordgo.Message, error) {
	return c.s.ChannelMessage(channelID, messageID)
}

func (c *sessionClient) UserChannel(_ context.Context, userID string) (*discordgo.Channel, error) {
	return c.s.UserChannelCreate(userID)
}

func (c *sessionClient) SendMessage(ctx context.Context, channelID string, req *compose.Request) (*discordgo.Message, error) {
	send := &discordgo.MessageSend{Content: req.Content}
	if req.Embed != nil {
		send.Embeds = []*discordgo.MessageEmbed{req.Embed}
	}

	files, err := fetchAttachments(ctx, req.Files)
	if err != nil {
		return nil, err
	}
	send.Files = files

	return c.s.ChannelMessageSendComplex(channelID, send)
}

func (c *sessionClient) EditMessage(ctx context.Context, channelID, messageID string, req *compose.Request) error {
	edit := discordgo.NewMessageEdit(channelID, messageID)
	edit.Content = &req.Content
	embeds := []*discordgo.MessageEmbed{}
	if req.Embed != nil {
		embeds = append(embeds, req.Embed)
	}
	edit.Embeds = &embeds

	files, err := fetchAttachments(ctx, req.Files)
	if err != nil {
		return err
	}
	edit.Files = files

	_, err = c.s.ChannelMessageEditComplex(edit)
	return err
}

// fetchAttachments downloads each attachment reference so it can be sent
// as a file upload. Composition stays network-free; this runs only at
// send/edit time.
func fetchAttachments(ctx context.Context, urls []string) ([]*discordgo.File, error) {
	if len(urls) == 0 {
		return nil, nil
	}

	client := &http.Client{Timeout: attachmentFetchTimeout}
	files := make([]*discordgo.File, 0, len(urls))
	for _, url := range urls {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, fmt.Errorf("fetch attachment %s: %w", url, err)
		}
		resp, err := client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("fetch attachment %s: %w", url, err)
		}
		data, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("read attachment %s: %w", url, err)
		}
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("fetch attachment %s: unexpected status %s", url, resp.Status)
		}

		name := path.Base(req.URL.Path)
		if name == "." || name == "/" {
			name = "attachment"
		}
		files = append(files, &discordgo.File{
			Name:        name,
			ContentType: resp.Header.Get("Content-Type"),
			Reader:      bytes.NewReader(data),
		})
	}
	return files, nil
}
