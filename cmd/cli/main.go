// Command cli is an offline harness for the composition grammar: it parses
// an argument string exactly the way the bot would and prints the
// resulting request as JSON, without touching Discord.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"server-herald/internal/compose"
	"server-herald/internal/version"

	"github.com/urfave/cli/v2"
)

func newApp(out *os.File) *cli.App {
	return &cli.App{
		Name:    "herald-cli",
		Usage:   "Dry-run the message composition grammar",
		Version: version.Version,
		Commands: []*cli.Command{
			composeCmd(out),
			editCmd(out),
		},
	}
}

func composeCmd(out *os.File) *cli.Command {
	return &cli.Command{
		Name:      "compose",
		Usage:     "Parse compose flags and print the resulting request",
		ArgsUsage: `"-c \"hello world\" -att http://x/y.png"`,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "author", Value: "cli", Usage: "Display name for -footerme/-authorme"},
			&cli.StringFlag{Name: "avatar", Usage: "Avatar URL for -footerme/-authorme"},
		},
		Action: func(c *cli.Context) error {
			req, err := compose.Parse(context.Background(), argText(c), author(c))
			if err != nil {
				return err
			}
			return printJSON(out, req)
		},
	}
}

func editCmd(out *os.File) *cli.Command {
	return &cli.Command{
		Name:      "edit",
		Usage:     "Parse edit flags (with -insert available) against a fake original",
		ArgsUsage: `"-insert -embed -title Updated"`,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "author", Value: "cli", Usage: "Display name for -footerme/-authorme"},
			&cli.StringFlag{Name: "avatar", Usage: "Avatar URL for -footerme/-authorme"},
			&cli.StringFlag{Name: "original", Usage: "Content of the message being edited"},
		},
		Action: func(c *cli.Context) error {
			orig := compose.Original{Content: c.String("original")}
			req, err := compose.ParseEdit(context.Background(), argText(c), author(c), orig)
			if err != nil {
				return err
			}
			return printJSON(out, req)
		},
	}
}

func author(c *cli.Context) compose.Author {
	return compose.Author{
		DisplayName: c.String("author"),
		AvatarURL:   c.String("avatar"),
	}
}

func argText(c *cli.Context) string {
	return strings.Join(c.Args().Slice(), " ")
}

func printJSON(out *os.File, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
