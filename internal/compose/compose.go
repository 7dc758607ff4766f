// Package compose turns one freeform argument string into a validated
// message-send or message-edit request: plain content, attachment
// references, and at most one embed. Parsing is fully speculative; nothing
// reaches Discord until the caller hands the request to the client.
package compose

import (
	"context"

	"server-herald/pkg/argline"

	"github.com/bwmarrin/discordgo"
)

// Author identifies the invoking member, used by the -footerme and
// -authorme shorthands.
type Author struct {
	DisplayName string
	AvatarURL   string
}

// Request is the composed payload handed to the send/edit capability.
// Files holds attachment references (URLs) in insertion order; duplicates
// are allowed.
type Request struct {
	Content string
	Files   []string
	Embed   *discordgo.MessageEmbed
}

// Empty reports whether nothing was composed at all.
func (r *Request) Empty() bool {
	return r.Content == "" && len(r.Files) == 0 && r.Embed == nil
}

// Original is the message being amended when editing, consumed by -insert.
type Original struct {
	Content string
	Embed   *discordgo.MessageEmbed
}

type parser struct {
	claims argline.Claims
	author Author
	orig   *Original
	req    Request
}

// Parse parses args into a new-message request.
func Parse(ctx context.Context, args string, author Author) (*Request, error) {
	p := &parser{claims: argline.NewClaims(), author: author}
	if err := argline.Dispatch(ctx, argline.NewCursor(args), p.composeTable()); err != nil {
		return nil, err
	}
	return &p.req, nil
}

// ParseEdit parses args for amending orig; the insert flag becomes
// available on top of the compose grammar.
func ParseEdit(ctx context.Context, args string, author Author, orig Original) (*Request, error) {
	p := &parser{claims: argline.NewClaims(), author: author, orig: &orig}
	if err := argline.Dispatch(ctx, argline.NewCursor(args), p.editTable()); err != nil {
		return nil, err
	}
	return &p.req, nil
}

// composeTable is the flag grammar for a new message.
func (p *parser) composeTable() argline.Table {
	t := argline.Table{
		"content":      p.contentFlag,
		"txt":          p.contentFlag,
		"c":            p.contentFlag,
		"att":          p.attachmentFlag,
		"f":            p.attachmentFlag,
		"attttachment": p.attachmentFlag,
		"embed":        p.embedFlag,
		argline.Rest:   p.restFlag,
	}
	return t
}

// editTable extends the compose grammar with the insert convenience.
func (p *parser) editTable() argline.Table {
	t := p.composeTable()
	t["insert"] = p.insertFlag
	t["ins"] = p.insertFlag
	return t
}

func (p *parser) contentFlag(_ context.Context, c *argline.Cursor) error {
	if err := p.claims.Claim("Content"); err != nil {
		return err
	}
	arg, err := c.NextArg()
	if err != nil {
		return err
	}
	p.req.Content = arg
	return nil
}

func (p *parser) attachmentFlag(_ context.Context, c *argline.Cursor) error {
	arg, err := c.NextArg()
	if err != nil {
		return err
	}
	p.req.Files = append(p.req.Files, ParseURL(arg))
	return nil
}

func (p *parser) insertFlag(_ context.Context, _ *argline.Cursor) error {
	if err := p.claims.Claim("Content"); err != nil {
		return err
	}
	p.req.Content = p.orig.Content
	if p.orig.Embed != nil {
		p.req.Embed = cloneEmbed(p.orig.Embed)
	}
	return nil
}

func (p *parser) restFlag(_ context.Context, c *argline.Cursor) error {
	if err := p.claims.Claim("Content"); err != nil {
		return err
	}
	p.req.Content = c.TakeRest()
	return nil
}
