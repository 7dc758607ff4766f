package cmd

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

type stubCommand struct {
	name    string
	aliases []string
	calls   int
}

func (c *stubCommand) Name() string        { return c.name }
func (c *stubCommand) Description() string { return "stub" }
func (c *stubCommand) Aliases() []string   { return c.aliases }

func (c *stubCommand) Run(_ context.Context, _ *Invocation) error {
	c.calls++
	return nil
}

func TestRegistryAliases(t *testing.T) {
	t.Parallel()
	r := NewRegistry()
	say := &stubCommand{name: "say", aliases: []string{"send", "s"}}
	r.Register(say)

	for _, name := range []string{"say", "send", "s"} {
		require.NotNil(t, r.Get(name), name)
	}
	require.Nil(t, r.Get("missing"))
	require.Len(t, r.GetAll(), 1)
}

func TestRegistryAliasesThroughWrap(t *testing.T) {
	t.Parallel()
	r := NewRegistry()
	inner := &stubCommand{name: "say", aliases: []string{"s"}}
	wrapped := Apply(inner, func(c Command) Command {
		return Wrap(c, func(ctx context.Context, inv *Invocation) error {
			return c.Run(ctx, inv)
		})
	})
	r.Register(wrapped)

	got := r.Get("s")
	require.NotNil(t, got)
	require.NoError(t, got.Run(context.Background(), &Invocation{Raw: "hello"}))
	require.Equal(t, 1, inner.calls)
	require.Same(t, inner, Root(got))
}
