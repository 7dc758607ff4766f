// Package cmd provides a transport-agnostic command core: a command is
// something with a name, description, and Run(ctx, invocation). How it is
// registered and dispatched (Discord prefix message, CLI) is defined by
// adapters that wrap this.
package cmd

import "context"

// Invocation carries the minimal input any command runner can pass: the
// raw, unparsed argument text and an opaque payload. Adapters set Data to
// their context (e.g. *discordgo.Session + event).
type Invocation struct {
	Raw  string
	Data interface{}
}

// Command is the universal contract: identity plus execution. Aliases,
// permission gates, and transport-specific details stay in adapters.
type Command interface {
	Name() string
	Description() string
	Run(ctx context.Context, inv *Invocation) error
}

// Aliaser is implemented by commands reachable under alternate names.
type Aliaser interface {
	Aliases() []string
}
