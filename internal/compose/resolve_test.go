package compose

import (
	"context"
	"errors"
	"testing"

	"server-herald/pkg/argline"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	channels map[string]*discordgo.Channel
	users    map[string]*discordgo.User
}

func (f *fakeClient) Channel(_ context.Context, id string) (*discordgo.Channel, error) {
	if ch, ok := f.channels[id]; ok {
		return ch, nil
	}
	return nil, errors.New("HTTP 404 Not Found")
}

func (f *fakeClient) User(_ context.Context, id string) (*discordgo.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, errors.New("HTTP 404 Not Found")
}

func (f *fakeClient) Message(_ context.Context, _, _ string) (*discordgo.Message, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeClient) UserChannel(_ context.Context, _ string) (*discordgo.Channel, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeClient) SendMessage(_ context.Context, _ string, _ *Request) (*discordgo.Message, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeClient) EditMessage(_ context.Context, _, _ string, _ *Request) error {
	return errors.New("not implemented")
}

func TestParseChannel(t *testing.T) {
	t.Parallel()
	cl := &fakeClient{channels: map[string]*discordgo.Channel{
		"123": {ID: "123", Name: "general"},
	}}

	ch, err := ParseChannel(context.Background(), cl, "<#123>")
	require.NoError(t, err)
	require.Equal(t, "general", ch.Name)

	ch, err = ParseChannel(context.Background(), cl, "123")
	require.NoError(t, err)
	require.Equal(t, "123", ch.ID)

	_, err = ParseChannel(context.Background(), cl, "<#999>")
	require.True(t, argline.IsUsage(err))
	require.EqualError(t, err, "couldn't find channel with id 999")
}

func TestParseUser(t *testing.T) {
	t.Parallel()
	cl := &fakeClient{users: map[string]*discordgo.User{
		"42": {ID: "42", Username: "someone"},
	}}

	for _, token := range []string{"<@42>", "<@!42>", "42"} {
		u, err := ParseUser(context.Background(), cl, token)
		require.NoError(t, err, token)
		require.Equal(t, "someone", u.Username)
	}

	_, err := ParseUser(context.Background(), cl, "7")
	require.True(t, argline.IsUsage(err))
	require.EqualError(t, err, "couldn't find user with id 7")
}

func TestParseURL(t *testing.T) {
	t.Parallel()
	require.Equal(t, "http://x/y", ParseURL("<http://x/y>"))
	require.Equal(t, "http://x/y", ParseURL("http://x/y"))
}
