package compose

import (
	"context"
	"strconv"
	"strings"
	"time"

	"server-herald/pkg/argline"

	"github.com/bwmarrin/discordgo"
)

// timeLayouts are tried in order by the -time flag; the literal "now"
// (any case) maps to the current instant instead.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// embedFlag recurses into the embed sub-grammar over the same cursor. The
// document is seeded from a previously supplied embed (insert followed by
// embed amends the inherited one) or starts empty.
func (p *parser) embedFlag(ctx context.Context, c *argline.Cursor) error {
	if p.req.Embed == nil {
		p.req.Embed = &discordgo.MessageEmbed{}
	}
	return argline.Dispatch(ctx, c, p.embedTable(p.req.Embed))
}

func (p *parser) embedTable(e *discordgo.MessageEmbed) argline.Table {
	title := func(_ context.Context, c *argline.Cursor) error {
		if err := p.claims.Claim("Embed title"); err != nil {
			return err
		}
		arg, err := c.NextArg()
		if err != nil {
			return err
		}
		e.Title = arg
		return nil
	}

	description := func(_ context.Context, c *argline.Cursor) error {
		if err := p.claims.Claim("Embed content"); err != nil {
			return err
		}
		arg, err := c.NextArg()
		if err != nil {
			return err
		}
		e.Description = arg
		return nil
	}

	rest := func(_ context.Context, c *argline.Cursor) error {
		if err := p.claims.Claim("Embed content"); err != nil {
			return err
		}
		e.Description = c.TakeRest()
		return nil
	}

	footer := func(_ context.Context, c *argline.Cursor) error {
		if err := p.claims.Claim("Embed footer"); err != nil {
			return err
		}
		arg, err := c.NextArg()
		if err != nil {
			return err
		}
		e.Footer = &discordgo.MessageEmbedFooter{Text: arg}
		return nil
	}

	// footerme claims text and icon atomically, so the ordering check
	// below never applies to it.
	footerMe := func(_ context.Context, _ *argline.Cursor) error {
		if err := p.claims.Claim("Embed footer"); err != nil {
			return err
		}
		if err := p.claims.Claim("Embed footer icon"); err != nil {
			return err
		}
		e.Footer = &discordgo.MessageEmbedFooter{
			Text:    p.author.DisplayName,
			IconURL: p.author.AvatarURL,
		}
		return nil
	}

	footerIcon := func(_ context.Context, c *argline.Cursor) error {
		if err := p.claims.Claim("Embed footer icon"); err != nil {
			return err
		}
		if e.Footer == nil || e.Footer.Text == "" {
			return argline.Usagef("footer text needs to be set before the footer icon")
		}
		arg, err := c.NextArg()
		if err != nil {
			return err
		}
		e.Footer.IconURL = arg
		return nil
	}

	author := func(_ context.Context, c *argline.Cursor) error {
		if err := p.claims.Claim("Embed author"); err != nil {
			return err
		}
		arg, err := c.NextArg()
		if err != nil {
			return err
		}
		e.Author = &discordgo.MessageEmbedAuthor{Name: arg}
		return nil
	}

	authorMe := func(_ context.Context, _ *argline.Cursor) error {
		if err := p.claims.Claim("Embed author"); err != nil {
			return err
		}
		if err := p.claims.Claim("Embed author icon"); err != nil {
			return err
		}
		e.Author = &discordgo.MessageEmbedAuthor{
			Name:    p.author.DisplayName,
			IconURL: p.author.AvatarURL,
		}
		return nil
	}

	authorIcon := func(_ context.Context, c *argline.Cursor) error {
		if err := p.claims.Claim("Embed author icon"); err != nil {
			return err
		}
		if e.Author == nil || e.Author.Name == "" {
			return argline.Usagef("author name needs to be set before the author icon")
		}
		arg, err := c.NextArg()
		if err != nil {
			return err
		}
		e.Author.IconURL = arg
		return nil
	}

	timestamp := func(_ context.Context, c *argline.Cursor) error {
		if err := p.claims.Claim("Embed timestamp"); err != nil {
			return err
		}
		arg, err := c.NextArg()
		if err != nil {
			return err
		}
		ts, err := parseTimestamp(arg)
		if err != nil {
			return err
		}
		e.Timestamp = ts.Format(time.RFC3339)
		return nil
	}

	url := func(_ context.Context, c *argline.Cursor) error {
		if err := p.claims.Claim("Embed url"); err != nil {
			return err
		}
		arg, err := c.NextArg()
		if err != nil {
			return err
		}
		e.URL = ParseURL(arg)
		return nil
	}

	color := func(_ context.Context, c *argline.Cursor) error {
		if err := p.claims.Claim("Embed color"); err != nil {
			return err
		}
		arg, err := c.NextArg()
		if err != nil {
			return err
		}
		v, err := strconv.ParseInt(strings.TrimPrefix(arg, "#"), 16, 32)
		if err != nil {
			return argline.Usagef("couldn't parse color from %s", arg)
		}
		e.Color = int(v)
		return nil
	}

	image := func(_ context.Context, c *argline.Cursor) error {
		if err := p.claims.Claim("Embed image"); err != nil {
			return err
		}
		arg, err := c.NextArg()
		if err != nil {
			return err
		}
		e.Image = &discordgo.MessageEmbedImage{URL: ParseURL(arg)}
		return nil
	}

	return argline.Table{
		"title":      title,
		"content":    description,
		"txt":        description,
		"c":          description,
		"footer":     footer,
		"footerme":   footerMe,
		"footericon": footerIcon,
		"author":     author,
		"authorme":   authorMe,
		"authoricon": authorIcon,
		"time":       timestamp,
		"url":        url,
		"color":      color,
		"col":        color,
		"image":      image,
		argline.Rest: rest,
	}
}

func parseTimestamp(arg string) (time.Time, error) {
	if strings.EqualFold(arg, "now") {
		return time.Now().UTC(), nil
	}
	for _, layout := range timeLayouts {
		if ts, err := time.Parse(layout, arg); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, argline.Usagef("couldn't parse time from %s", arg)
}

// cloneEmbed copies an embed so amending an inherited document never
// mutates the original message.
func cloneEmbed(e *discordgo.MessageEmbed) *discordgo.MessageEmbed {
	out := *e
	if e.Footer != nil {
		f := *e.Footer
		out.Footer = &f
	}
	if e.Author != nil {
		a := *e.Author
		out.Author = &a
	}
	if e.Image != nil {
		img := *e.Image
		out.Image = &img
	}
	if e.Thumbnail != nil {
		th := *e.Thumbnail
		out.Thumbnail = &th
	}
	if len(e.Fields) > 0 {
		out.Fields = make([]*discordgo.MessageEmbedField, len(e.Fields))
		for i, f := range e.Fields {
			fc := *f
			out.Fields[i] = &fc
		}
	}
	return &out
}
