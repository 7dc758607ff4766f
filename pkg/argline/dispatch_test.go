package argline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDispatch(t *testing.T) {
	t.Parallel()

	t.Run("flags and rest", func(t *testing.T) {
		t.Parallel()
		var got struct {
			a, b, rest string
		}
		table := Table{
			"a": func(_ context.Context, c *Cursor) error {
				v, err := c.NextArg()
				got.a = v
				return err
			},
			"b": func(_ context.Context, c *Cursor) error {
				v, err := c.NextArg()
				got.b = v
				return err
			},
			Rest: func(_ context.Context, c *Cursor) error {
				got.rest = c.TakeRest()
				return nil
			},
		}
		c := NewCursor(`-a one -b "two three" and the rest`)
		require.NoError(t, Dispatch(context.Background(), c, table))
		require.Equal(t, "one", got.a)
		require.Equal(t, "two three", got.b)
		require.Equal(t, "and the rest", got.rest)
		require.True(t, c.Empty())
	})

	t.Run("unknown flag", func(t *testing.T) {
		t.Parallel()
		table := Table{
			"a": func(_ context.Context, c *Cursor) error {
				_, err := c.NextArg()
				return err
			},
		}
		err := Dispatch(context.Background(), NewCursor("-nope x"), table)
		require.True(t, IsUsage(err))
		require.Contains(t, err.Error(), "-nope")
	})

	t.Run("rest not in table", func(t *testing.T) {
		t.Parallel()
		err := Dispatch(context.Background(), NewCursor("trailing"), Table{})
		require.True(t, IsUsage(err))
		require.Contains(t, err.Error(), "trailing")
	})

	t.Run("empty input runs nothing", func(t *testing.T) {
		t.Parallel()
		calls := 0
		table := Table{
			Rest: func(_ context.Context, c *Cursor) error {
				calls++
				c.TakeRest()
				return nil
			},
		}
		require.NoError(t, Dispatch(context.Background(), NewCursor("   "), table))
		require.Zero(t, calls)
	})

	t.Run("lone dash goes to rest", func(t *testing.T) {
		t.Parallel()
		var rest string
		table := Table{
			Rest: func(_ context.Context, c *Cursor) error {
				rest = c.TakeRest()
				return nil
			},
		}
		require.NoError(t, Dispatch(context.Background(), NewCursor("- b"), table))
		require.Equal(t, "- b", rest)
	})

	t.Run("handler error aborts", func(t *testing.T) {
		t.Parallel()
		table := Table{
			"a": func(_ context.Context, _ *Cursor) error {
				return Usagef("bad value")
			},
			Rest: func(_ context.Context, c *Cursor) error {
				c.TakeRest()
				return nil
			},
		}
		err := Dispatch(context.Background(), NewCursor("-a tail"), table)
		require.EqualError(t, err, "bad value")
	})
}

func TestClaims(t *testing.T) {
	t.Parallel()
	cl := NewClaims()
	require.NoError(t, cl.Claim("Content"))
	require.NoError(t, cl.Claim("Embed content"))
	err := cl.Claim("Content")
	require.True(t, IsUsage(err))
	require.EqualError(t, err, "Content set more than once")
}
