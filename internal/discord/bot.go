// Package discord adapts the command core to a discordgo session: it owns
// the connection lifecycle, dispatches prefix commands, and implements the
// client capabilities the composer needs.
package discord

import (
	"context"
	"fmt"
	"strings"

	"server-herald/internal/command"
	"server-herald/internal/config"
	"server-herald/internal/storage"
	"server-herald/pkg/argline"
	"server-herald/pkg/cmd"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
)

// Bot is the Discord front end.
type Bot struct {
	dg       *discordgo.Session
	cfg      *config.Config
	storage  *storage.Storage
	registry *cmd.Registry
	log      zerolog.Logger
}

// NewBot wires the bot; Run opens the session.
func NewBot(cfg *config.Config, store *storage.Storage, registry *cmd.Registry, log zerolog.Logger) *Bot {
	return &Bot{cfg: cfg, storage: store, registry: registry, log: log}
}

// Run opens the Discord session and blocks until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	dg, err := discordgo.New("Bot " + b.cfg.DiscordToken)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	b.dg = dg

	dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentMessageContent

	dg.AddHandler(b.onReady)
	dg.AddHandler(b.onMessageCreate)

	if err := dg.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}
	defer dg.Close()

	<-ctx.Done()
	b.log.Info().Msg("shutdown signal received, closing session")
	return nil
}

func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	b.log.Info().
		Str("username", r.User.Username).
		Int("guilds", len(r.Guilds)).
		Str("prefix", b.cfg.CommandPrefix).
		Msg("bot is running")
	_ = s.UpdateGameStatus(0, b.cfg.CommandPrefix+"help")
}

func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}
	if !strings.HasPrefix(m.Content, b.cfg.CommandPrefix) {
		return
	}

	invocation := strings.TrimPrefix(m.Content, b.cfg.CommandPrefix)
	name, raw := splitCommand(invocation)
	if name == "" {
		return
	}

	c := b.registry.Get(name)
	if c == nil {
		// Not every prefixed message is for us.
		return
	}

	mctx := &command.MessageContext{
		Session:  s,
		Event:    m,
		Storage:  b.storage,
		Config:   b.cfg,
		Client:   &sessionClient{s: s},
		Registry: b.registry,
		Log:      b.log,
	}

	err := c.Run(context.Background(), &cmd.Invocation{Raw: raw, Data: mctx})
	switch {
	case err == nil:
	case argline.IsUsage(err):
		mctx.Reply(err.Error())
	default:
		b.log.Error().Err(err).Str("command", name).Msg("command failed")
		mctx.Reply("Unknown error: " + err.Error())
	}
}

// splitCommand separates the command token from the raw argument text.
func splitCommand(s string) (name, raw string) {
	s = strings.TrimSpace(s)
	if i := strings.IndexFunc(s, func(r rune) bool { return r == ' ' || r == '\n' || r == '\t' }); i >= 0 {
		return s[:i], strings.TrimSpace(s[i:])
	}
	return s, ""
}
